package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	queueport "github.com/Ricky944902/classmate-web/internal/infrastructure/queue/port"
	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	"github.com/Ricky944902/classmate-web/internal/pkg/verification/presentation/controller"
)

// RegisterRoutes registers the two-factor endpoints under the given router
// group. Both are public; possession of the emailed code is the credential.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, queue queueport.Client, jm *security.JWTManager) {
	g.POST("/two-factor/send", controller.NewSendCodeController(pool, queue).Handle())
	g.POST("/two-factor/verify", controller.NewVerifyCodeController(pool, jm).Handle())
}
