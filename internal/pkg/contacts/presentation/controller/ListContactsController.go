package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	"github.com/Ricky944902/classmate-web/internal/pkg/contacts/application/usecase"
	contacts "github.com/Ricky944902/classmate-web/internal/pkg/contacts/domain"
	adapter "github.com/Ricky944902/classmate-web/internal/pkg/contacts/persistence/repository/adapter"
)

// ListContactsController handles listing the user's accepted contacts.
type ListContactsController struct {
	UC *usecase.ListContactsUseCase
}

func NewListContactsController(pool *pgxpool.Pool) *ListContactsController {
	return &ListContactsController{UC: usecase.NewListContactsUseCase(adapter.NewPgContactRepository(pool))}
}

func (h *ListContactsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		views, err := h.UC.Execute(ctx, security.UserID(c))
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, renderViews(views))
	}
}

func renderViews(views []contacts.ContactView) []gin.H {
	out := make([]gin.H, 0, len(views))
	for _, v := range views {
		out = append(out, gin.H{
			"id":        v.ID,
			"userId":    v.UserID,
			"contactId": v.ContactID,
			"status":    v.Status,
			"createdAt": v.CreatedAt,
			"username":  v.PeerUsername,
			"email":     v.PeerEmail,
		})
	}
	return out
}
