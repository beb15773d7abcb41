package realtime

import (
	"sync"
)

// Hub is the fan-out registry for live connections. Each user id names a
// channel; publishing to a channel delivers the payload to every connection
// currently joined to it.
//
// A connection holds at most one channel membership at a time: joining a
// second channel evicts the first.
type Hub struct {
	mu          sync.RWMutex
	conns       map[string]*Connection            // connectionID -> connection
	channels    map[string]map[string]*Connection // channel userID -> connectionID -> connection
	memberships map[string]string                 // connectionID -> channel userID
}

// NewHub constructs an initialized Hub.
func NewHub() *Hub {
	return &Hub{
		conns:       make(map[string]*Connection),
		channels:    make(map[string]map[string]*Connection),
		memberships: make(map[string]string),
	}
}

// Attach registers a connection with the hub and starts its write loop.
// The connection belongs to no channel until it joins one.
func (h *Hub) Attach(conn *Connection) {
	h.mu.Lock()
	h.conns[conn.ID] = conn
	h.mu.Unlock()

	conn.Start()
}

// Detach removes a connection from the hub and from any channel it joined.
func (h *Hub) Detach(conn *Connection) {
	h.mu.Lock()
	h.detachLocked(conn.ID)
	h.mu.Unlock()
}

// Join adds the connection to the channel identified by channelUserID,
// leaving its previous channel if it had one. Unattached connections are
// ignored.
func (h *Hub) Join(channelUserID string, conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[conn.ID]; !ok {
		return
	}

	if prev, ok := h.memberships[conn.ID]; ok {
		if prev == channelUserID {
			return
		}
		h.leaveLocked(conn.ID)
	}

	members := h.channels[channelUserID]
	if members == nil {
		members = make(map[string]*Connection)
		h.channels[channelUserID] = members
	}
	members[conn.ID] = conn
	h.memberships[conn.ID] = channelUserID
}

// Leave removes the connection from its current channel, if any.
func (h *Hub) Leave(conn *Connection) {
	h.mu.Lock()
	h.leaveLocked(conn.ID)
	h.mu.Unlock()
}

// Publish delivers payload to every connection currently joined to the
// channel and returns the number of successful deliveries. An empty channel
// is a no-op, not an error.
func (h *Hub) Publish(channelUserID string, payload []byte) int {
	h.mu.RLock()
	members := h.channels[channelUserID]
	if len(members) == 0 {
		h.mu.RUnlock()
		return 0
	}
	snapshot := make([]*Connection, 0, len(members))
	for _, conn := range members {
		snapshot = append(snapshot, conn)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, conn := range snapshot {
		if err := conn.Send(payload); err == nil {
			delivered++
		}
	}
	return delivered
}

// Members returns the number of connections currently joined to the channel.
func (h *Hub) Members(channelUserID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[channelUserID])
}

// Close terminates all tracked connections and clears hub state.
func (h *Hub) Close() {
	h.mu.Lock()
	conns := make([]*Connection, 0, len(h.conns))
	for _, conn := range h.conns {
		conns = append(conns, conn)
	}
	h.conns = make(map[string]*Connection)
	h.channels = make(map[string]map[string]*Connection)
	h.memberships = make(map[string]string)
	h.mu.Unlock()

	for _, conn := range conns {
		conn.Close(1001, "hub shutdown")
	}
}

func (h *Hub) detachLocked(connectionID string) {
	if _, ok := h.conns[connectionID]; !ok {
		return
	}
	h.leaveLocked(connectionID)
	delete(h.conns, connectionID)
}

func (h *Hub) leaveLocked(connectionID string) {
	channelID, ok := h.memberships[connectionID]
	if !ok {
		return
	}
	delete(h.memberships, connectionID)
	members := h.channels[channelID]
	if members == nil {
		return
	}
	delete(members, connectionID)
	if len(members) == 0 {
		delete(h.channels, channelID)
	}
}
