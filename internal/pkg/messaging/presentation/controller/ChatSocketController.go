package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ricky944902/classmate-web/internal/infrastructure/realtime"
	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	"github.com/Ricky944902/classmate-web/internal/pkg/messaging/application/usecase"
	adapter "github.com/Ricky944902/classmate-web/internal/pkg/messaging/persistence/repository/adapter"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// ChatSocketController owns the websocket endpoint: it authenticates the
// socket, manages channel membership on the hub and feeds inbound sendMessage
// frames into the message pipeline.
type ChatSocketController struct {
	hub             *realtime.Hub
	jwt             *security.JWTManager
	sendUC          *usecase.SendMessageUseCase
	inflightTimeout time.Duration
}

func NewChatSocketController(pool *pgxpool.Pool, hub *realtime.Hub, jm *security.JWTManager, words usecase.WordSource) *ChatSocketController {
	repo := adapter.NewPgMessageRepository(pool)
	return &ChatSocketController{
		hub:             hub,
		jwt:             jm,
		sendUC:          usecase.NewSendMessageUseCase(repo, words, hub),
		inflightTimeout: 5 * time.Second,
	}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Browsers cannot set Authorization headers on websocket upgrades, so
		// origin filtering is left to the deployment's proxy.
		return true
	},
}

type inboundFrame struct {
	Type          string `json:"type"`
	Recipient     string `json:"recipient,omitempty"`
	Content       string `json:"content,omitempty"`
	EncryptionKey string `json:"encryptionKey,omitempty"`
}

type ackFrame struct {
	Type    string `json:"type"`
	Channel string `json:"channel,omitempty"`
}

type messageErrorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

const defaultReadTimeout = 60 * time.Second

// Handle upgrades the HTTP connection and processes frames until the client
// disconnects. The token travels as a query parameter.
func (ctl *ChatSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := ctl.jwt.Verify(c.Query("token"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response; nothing more to do.
			return
		}

		conn := realtime.NewConnection(claims.UserID, ws)
		ctl.hub.Attach(conn)
		defer func() {
			ctl.hub.Detach(conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		ws.SetReadLimit(1 << 20)
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		if payload, err := json.Marshal(ackFrame{Type: "connected"}); err == nil {
			_ = conn.Send(payload)
		}

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) ||
					errors.Is(err, websocket.ErrCloseSent) {
					return
				}
				return
			}

			var frame inboundFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				ctl.replyError(conn, "invalid payload")
				continue
			}

			switch frame.Type {
			case "join":
				ctl.handleJoin(conn)
			case "leave":
				ctl.hub.Leave(conn)
				if payload, err := json.Marshal(ackFrame{Type: "left"}); err == nil {
					_ = conn.Send(payload)
				}
			case "sendMessage":
				ctl.handleSendMessage(c, conn, claims.UserID, frame)
			default:
				ctl.replyError(conn, "unknown frame type")
			}
		}
	}
}

// handleJoin subscribes the connection to its own user channel; messages for
// this user fan out to every connection joined here.
func (ctl *ChatSocketController) handleJoin(conn *realtime.Connection) {
	ctl.hub.Join(conn.UserID, conn)
	if payload, err := json.Marshal(ackFrame{Type: "joined", Channel: conn.UserID}); err == nil {
		_ = conn.Send(payload)
	}
}

func (ctl *ChatSocketController) handleSendMessage(c *gin.Context, conn *realtime.Connection, senderID string, frame inboundFrame) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctl.inflightTimeout)
	defer cancel()

	_, err := ctl.sendUC.Execute(ctx, usecase.SendMessageInput{
		SenderID:      senderID,
		RecipientID:   frame.Recipient,
		Content:       frame.Content,
		EncryptionKey: frame.EncryptionKey,
	})
	if err != nil {
		ctl.replyError(conn, errorMessage(err))
	}
	// On success the pipeline already pushed messageReceived/messageSent.
}

func (ctl *ChatSocketController) replyError(conn *realtime.Connection, message string) {
	frame := messageErrorFrame{Type: "messageError", Message: message}
	if payload, err := json.Marshal(frame); err == nil {
		_ = conn.Send(payload)
	}
}

func errorMessage(err error) string {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeModerated:
		return "message contains a blocked word"
	case apperrors.CodeInvalidArgument:
		return err.Error()
	default:
		return "failed to send message"
	}
}
