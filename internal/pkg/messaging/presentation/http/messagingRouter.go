package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ricky944902/classmate-web/internal/infrastructure/realtime"
	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	"github.com/Ricky944902/classmate-web/internal/pkg/messaging/application/usecase"
	"github.com/Ricky944902/classmate-web/internal/pkg/messaging/presentation/controller"
)

// RegisterRoutes registers messaging endpoints under the given router group.
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, hub *realtime.Hub, jm *security.JWTManager, words usecase.WordSource) {
	historyCtl := controller.NewGetHistoryController(pool)
	socketCtl := controller.NewChatSocketController(pool, hub, jm, words)

	// GET /api/v1/messages/:userId -> conversation history with that user
	g.GET("/messages/:userId", security.Auth(jm), historyCtl.Handle())

	// GET /api/v1/chat/ws -> websocket endpoint for realtime chat
	g.GET("/chat/ws", socketCtl.Handle())
}
