package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ricky944902/classmate-web/internal/pkg/identity/application/usecase"
	adapter "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/adapter"
)

// RegisterController handles account creation.
type RegisterController struct {
	UC *usecase.RegisterUserUseCase
}

func NewRegisterController(pool *pgxpool.Pool) *RegisterController {
	return &RegisterController{UC: usecase.NewRegisterUserUseCase(adapter.NewPgUserRepository(pool))}
}

type registerBody struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *RegisterController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body registerBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		profile, err := h.UC.Execute(ctx, usecase.RegisterUserInput{
			Username: body.Username,
			Email:    body.Email,
			Password: body.Password,
		})
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, profile)
	}
}
