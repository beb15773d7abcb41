package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ricky944902/classmate-web/internal/pkg/moderation/application/usecase"
	adapter "github.com/Ricky944902/classmate-web/internal/pkg/moderation/persistence/repository/adapter"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// AddWordController handles adding a blocked word.
type AddWordController struct {
	UC *usecase.AddWordUseCase
}

func NewAddWordController(pool *pgxpool.Pool, cache usecase.WordCache) *AddWordController {
	return &AddWordController{UC: usecase.NewAddWordUseCase(adapter.NewPgWordRepository(pool), cache)}
}

type addWordBody struct {
	Word string `json:"word" binding:"required"`
}

func (h *AddWordController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body addWordBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "word is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		w, err := h.UC.Execute(ctx, usecase.AddWordInput{Word: body.Word})
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": w.ID, "word": w.Word, "createdAt": w.CreatedAt})
	}
}

func httpStatus(err error) int {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeInvalidArgument:
		return http.StatusBadRequest
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodeAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
