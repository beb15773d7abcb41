package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	queueport "github.com/Ricky944902/classmate-web/internal/infrastructure/queue/port"
	identityadapter "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/adapter"
	"github.com/Ricky944902/classmate-web/internal/pkg/verification/application/usecase"
	adapter "github.com/Ricky944902/classmate-web/internal/pkg/verification/persistence/repository/adapter"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// SendCodeController handles requesting a fresh one-time code.
type SendCodeController struct {
	UC *usecase.IssueCodeUseCase
}

func NewSendCodeController(pool *pgxpool.Pool, queue queueport.Client) *SendCodeController {
	codes := adapter.NewPgCodeRepository(pool)
	users := identityadapter.NewPgUserRepository(pool)
	return &SendCodeController{UC: usecase.NewIssueCodeUseCase(codes, users, queue)}
}

type sendCodeBody struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *SendCodeController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body sendCodeBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "a valid email is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, usecase.IssueCodeInput{Email: body.Email}); err != nil {
			status := http.StatusInternalServerError
			switch apperrors.CodeOf(err) {
			case apperrors.CodeNotFound:
				status = http.StatusNotFound
			case apperrors.CodeInvalidArgument:
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "code sent"})
	}
}
