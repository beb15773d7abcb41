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

// SetUserRoleController handles granting and revoking the admin role.
type SetUserRoleController struct {
	UC *usecase.SetUserRoleUseCase
}

func NewSetUserRoleController(pool *pgxpool.Pool) *SetUserRoleController {
	return &SetUserRoleController{UC: usecase.NewSetUserRoleUseCase(adapter.NewPgUserRepository(pool))}
}

type setRoleBody struct {
	IsAdmin *bool `json:"isAdmin" binding:"required"`
}

func (h *SetUserRoleController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body setRoleBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "isAdmin is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		err := h.UC.Execute(ctx, usecase.SetUserRoleInput{
			ActorID:  security.UserID(c),
			TargetID: c.Param("id"),
			IsAdmin:  *body.IsAdmin,
		})
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}
