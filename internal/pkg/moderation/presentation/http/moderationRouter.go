package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	"github.com/Ricky944902/classmate-web/internal/pkg/moderation/application/usecase"
	"github.com/Ricky944902/classmate-web/internal/pkg/moderation/presentation/controller"
)

// RegisterRoutes registers the blocked-word admin endpoints under the given
// router group. All of them require an admin session.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, cache usecase.WordCache, jm *security.JWTManager) {
	auth := security.Auth(jm)
	admin := security.AdminOnly()

	g.GET("/profanity", auth, admin, controller.NewListWordsController(pool).Handle())
	g.POST("/profanity", auth, admin, controller.NewAddWordController(pool, cache).Handle())
	g.DELETE("/profanity/:id", auth, admin, controller.NewRemoveWordController(pool, cache).Handle())
}
