package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ricky944902/classmate-web/internal/pkg/moderation/application/usecase"
	adapter "github.com/Ricky944902/classmate-web/internal/pkg/moderation/persistence/repository/adapter"
)

// RemoveWordController handles deleting a blocked word.
type RemoveWordController struct {
	UC *usecase.RemoveWordUseCase
}

func NewRemoveWordController(pool *pgxpool.Pool, cache usecase.WordCache) *RemoveWordController {
	return &RemoveWordController{UC: usecase.NewRemoveWordUseCase(adapter.NewPgWordRepository(pool), cache)}
}

func (h *RemoveWordController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "word id is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, usecase.RemoveWordInput{ID: id}); err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "removed"})
	}
}
