package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	"github.com/Ricky944902/classmate-web/internal/pkg/identity/presentation/controller"
)

// RegisterRoutes registers account endpoints under the given router group.
// Registration and login are public; user management requires an admin.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, jm *security.JWTManager) {
	auth := security.Auth(jm)
	admin := security.AdminOnly()

	g.POST("/register", controller.NewRegisterController(pool).Handle())
	g.POST("/login", controller.NewLoginController(pool, jm).Handle())

	g.GET("/users/search", auth, controller.NewSearchUsersController(pool).Handle())
	g.GET("/users", auth, admin, controller.NewListUsersController(pool).Handle())
	g.PUT("/users/:id/role", auth, admin, controller.NewSetUserRoleController(pool).Handle())
	g.DELETE("/users/:id", auth, admin, controller.NewDeleteUserController(pool).Handle())
}
