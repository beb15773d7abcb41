package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	"github.com/Ricky944902/classmate-web/internal/pkg/contacts/presentation/controller"
)

// RegisterRoutes registers contact endpoints under the given router group.
// All of them require an authenticated user.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, jm *security.JWTManager) {
	auth := security.Auth(jm)

	g.GET("/contacts", auth, controller.NewListContactsController(pool).Handle())
	g.GET("/contacts/requests", auth, controller.NewListPendingRequestsController(pool).Handle())
	g.POST("/contacts/request", auth, controller.NewRequestContactController(pool).Handle())
	g.PUT("/contacts/accept/:id", auth, controller.NewAcceptRequestController(pool).Handle())
	g.DELETE("/contacts/reject/:id", auth, controller.NewRejectRequestController(pool).Handle())
	g.DELETE("/contacts/:id", auth, controller.NewRemoveContactController(pool).Handle())
}
