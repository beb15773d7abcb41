package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ricky944902/classmate-web/internal/pkg/identity/application/usecase"
	adapter "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/adapter"
)

// ListUsersController handles the admin user table.
type ListUsersController struct {
	UC *usecase.ListUsersUseCase
}

func NewListUsersController(pool *pgxpool.Pool) *ListUsersController {
	return &ListUsersController{UC: usecase.NewListUsersUseCase(adapter.NewPgUserRepository(pool))}
}

func (h *ListUsersController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		out, err := h.UC.Execute(ctx)
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
