package realtime

import (
	"fmt"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestConnectionSendAfterClose(t *testing.T) {
	conn := NewConnection("user-1", nil)
	conn.Close(websocket.CloseNormalClosure, "bye")

	for i := 0; i < 128; i++ {
		assert.NotPanics(t, func() {
			assert.Error(t, conn.Send([]byte("payload")))
		})
	}
}

func TestConnectionCloseIsIdempotent(t *testing.T) {
	conn := NewConnection("user-1", nil)
	assert.NotPanics(t, func() {
		conn.Close(websocket.CloseNormalClosure, "bye")
		conn.Close(websocket.CloseNormalClosure, "bye again")
	})
}

func TestConnectionSendCloseRace(t *testing.T) {
	// A connection detached mid-publish may be closed while other goroutines
	// still hold it; concurrent Send must never panic the process.
	for i := 0; i < 200; i++ {
		conn := NewConnection("user-1", nil)

		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			for j := 0; j < 16; j++ {
				_ = conn.Send([]byte(fmt.Sprintf("msg-%d", j)))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 16; j++ {
				_ = conn.Send([]byte(fmt.Sprintf("msg-%d", j)))
			}
		}()
		go func() {
			defer wg.Done()
			conn.Close(websocket.CloseGoingAway, "detached")
		}()
		wg.Wait()

		assert.Error(t, conn.Send([]byte("late")))
	}
}

func TestConnectionSendBufferOverflowClosesConnection(t *testing.T) {
	// No write loop draining, so the buffer fills and the next send must
	// close the connection instead of blocking.
	conn := NewConnection("user-1", nil)

	for i := 0; i < sendBufferSize; i++ {
		assert.NoError(t, conn.Send([]byte("payload")))
	}

	assert.Error(t, conn.Send([]byte("overflow")))
	assert.Error(t, conn.Send([]byte("after close")))
}
