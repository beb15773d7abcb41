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
)

// ListPendingRequestsController handles listing incoming pending requests.
type ListPendingRequestsController struct {
	UC *usecase.ListPendingRequestsUseCase
}

func NewListPendingRequestsController(pool *pgxpool.Pool) *ListPendingRequestsController {
	return &ListPendingRequestsController{UC: usecase.NewListPendingRequestsUseCase(adapter.NewPgContactRepository(pool))}
}

func (h *ListPendingRequestsController) Handle() gin.HandlerFunc {
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
