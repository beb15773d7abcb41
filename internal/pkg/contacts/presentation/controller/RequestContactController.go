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
	identityadapter "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/adapter"
)

// RequestContactController handles creating a new contact request.
type RequestContactController struct {
	UC *usecase.RequestContactUseCase
}

func NewRequestContactController(pool *pgxpool.Pool) *RequestContactController {
	repo := adapter.NewPgContactRepository(pool)
	users := identityadapter.NewPgUserRepository(pool)
	return &RequestContactController{UC: usecase.NewRequestContactUseCase(repo, users)}
}

type requestContactBody struct {
	ContactID string `json:"contactId" binding:"required"`
}

func (h *RequestContactController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body requestContactBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "contactId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		edge, err := h.UC.Execute(ctx, usecase.RequestContactInput{
			RequesterID: security.UserID(c),
			TargetID:    body.ContactID,
		})
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":        edge.ID,
			"contactId": edge.ContactID,
			"status":    edge.Status,
			"createdAt": edge.CreatedAt,
		})
	}
}
