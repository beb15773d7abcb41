package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	"github.com/Ricky944902/classmate-web/internal/pkg/identity/application/usecase"
	adapter "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/adapter"
)

// DeleteUserController handles admin account deletion.
type DeleteUserController struct {
	UC *usecase.DeleteUserUseCase
}

func NewDeleteUserController(pool *pgxpool.Pool) *DeleteUserController {
	return &DeleteUserController{UC: usecase.NewDeleteUserUseCase(adapter.NewPgUserRepository(pool))}
}

func (h *DeleteUserController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		err := h.UC.Execute(ctx, usecase.DeleteUserInput{
			ActorID:  security.UserID(c),
			TargetID: c.Param("id"),
		})
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
