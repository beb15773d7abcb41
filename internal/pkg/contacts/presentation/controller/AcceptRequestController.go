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

// AcceptRequestController handles accepting a pending contact request.
type AcceptRequestController struct {
	UC *usecase.AcceptRequestUseCase
}

func NewAcceptRequestController(pool *pgxpool.Pool) *AcceptRequestController {
	return &AcceptRequestController{UC: usecase.NewAcceptRequestUseCase(adapter.NewPgContactRepository(pool))}
}

func (h *AcceptRequestController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Param("id")
		if requestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "request id is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		err := h.UC.Execute(ctx, usecase.AcceptRequestInput{
			UserID:    security.UserID(c),
			RequestID: requestID,
		})
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "accepted"})
	}
}
