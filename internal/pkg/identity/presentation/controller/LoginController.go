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

// LoginController handles password login and session token issuance.
type LoginController struct {
	UC *usecase.LoginUseCase
}

func NewLoginController(pool *pgxpool.Pool, jm *security.JWTManager) *LoginController {
	return &LoginController{UC: usecase.NewLoginUseCase(adapter.NewPgUserRepository(pool), jm)}
}

type loginBody struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

func (h *LoginController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body loginBody
		if err := c.ShouldBindJSON(&body); err != nil || (body.Email == "" && body.Username == "") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "an email or username and a password are required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		out, err := h.UC.Execute(ctx, usecase.LoginInput{Email: body.Email, Username: body.Username, Password: body.Password})
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": out.Token, "user": out.User})
	}
}
