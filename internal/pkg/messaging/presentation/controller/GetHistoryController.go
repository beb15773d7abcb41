package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	"github.com/Ricky944902/classmate-web/internal/pkg/messaging/application/usecase"
	adapter "github.com/Ricky944902/classmate-web/internal/pkg/messaging/persistence/repository/adapter"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// GetHistoryController handles fetching the message history with one peer
// (one controller per endpoint).
type GetHistoryController struct {
	UC *usecase.GetHistoryUseCase
}

func NewGetHistoryController(pool *pgxpool.Pool) *GetHistoryController {
	repo := adapter.NewPgMessageRepository(pool)
	return &GetHistoryController{UC: usecase.NewGetHistoryUseCase(repo)}
}

func (h *GetHistoryController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		peerID := c.Param("userId")
		if peerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msgs, err := h.UC.Execute(ctx, usecase.GetHistoryInput{
			UserID: security.UserID(c),
			PeerID: peerID,
		})
		if err != nil {
			status := http.StatusBadRequest
			if apperrors.Is(err, apperrors.CodeUnavailable) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, gin.H{
				"id":          m.ID,
				"senderId":    m.SenderID,
				"recipientId": m.RecipientID,
				"content":     m.Content,
				"isEncrypted": m.IsEncrypted,
				"createdAt":   m.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}
