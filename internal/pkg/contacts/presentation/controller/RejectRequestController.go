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

// RejectRequestController handles rejecting a pending contact request.
type RejectRequestController struct {
	UC *usecase.RejectRequestUseCase
}

func NewRejectRequestController(pool *pgxpool.Pool) *RejectRequestController {
	return &RejectRequestController{UC: usecase.NewRejectRequestUseCase(adapter.NewPgContactRepository(pool))}
}

func (h *RejectRequestController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Param("id")
		if requestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "request id is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		err := h.UC.Execute(ctx, usecase.RejectRequestInput{
			UserID:    security.UserID(c),
			RequestID: requestID,
		})
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "rejected"})
	}
}
