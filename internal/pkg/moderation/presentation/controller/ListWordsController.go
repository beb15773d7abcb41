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

// ListWordsController handles listing the blocked words.
type ListWordsController struct {
	UC *usecase.ListWordsUseCase
}

func NewListWordsController(pool *pgxpool.Pool) *ListWordsController {
	return &ListWordsController{UC: usecase.NewListWordsUseCase(adapter.NewPgWordRepository(pool))}
}

func (h *ListWordsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		words, err := h.UC.Execute(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list words"})
			return
		}

		out := make([]gin.H, 0, len(words))
		for _, w := range words {
			out = append(out, gin.H{"id": w.ID, "word": w.Word, "createdAt": w.CreatedAt})
		}
		c.JSON(http.StatusOK, out)
	}
}
