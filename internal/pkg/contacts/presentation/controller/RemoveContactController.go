package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	"github.com/Ricky944902/classmate-web/internal/pkg/contacts/application/usecase"
	adapter "github.com/Ricky944902/classmate-web/internal/pkg/contacts/persistence/repository/adapter"
)

// RemoveContactController handles dropping an existing contact by edge id.
type RemoveContactController struct {
	UC *usecase.RemoveContactUseCase
}

func NewRemoveContactController(pool *pgxpool.Pool) *RemoveContactController {
	return &RemoveContactController{UC: usecase.NewRemoveContactUseCase(adapter.NewPgContactRepository(pool))}
}

func (h *RemoveContactController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		edgeID := c.Param("id")
		if edgeID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "contact id is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		err := h.UC.Execute(ctx, usecase.RemoveContactInput{
			UserID: security.UserID(c),
			EdgeID: edgeID,
		})
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "removed"})
	}
}
