package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	identityadapter "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/adapter"
	"github.com/Ricky944902/classmate-web/internal/pkg/verification/application/usecase"
	adapter "github.com/Ricky944902/classmate-web/internal/pkg/verification/persistence/repository/adapter"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

// VerifyCodeController handles redeeming a one-time code for a session token.
type VerifyCodeController struct {
	UC *usecase.VerifyCodeUseCase
}

func NewVerifyCodeController(pool *pgxpool.Pool, jm *security.JWTManager) *VerifyCodeController {
	codes := adapter.NewPgCodeRepository(pool)
	users := identityadapter.NewPgUserRepository(pool)
	return &VerifyCodeController{UC: usecase.NewVerifyCodeUseCase(codes, users, jm)}
}

type verifyCodeBody struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

func (h *VerifyCodeController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body verifyCodeBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and code are required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		out, err := h.UC.Execute(ctx, usecase.VerifyCodeInput{Email: body.Email, Code: body.Code})
		if err != nil {
			status := http.StatusInternalServerError
			switch apperrors.CodeOf(err) {
			case apperrors.CodeInvalidArgument:
				status = http.StatusBadRequest
			case apperrors.CodeExpired:
				status = http.StatusGone
			case apperrors.CodeNotFound:
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": out.Token, "user": out.User})
	}
}
