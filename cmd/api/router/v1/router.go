package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/Ricky944902/classmate-web/internal/infrastructure/cache/port"
	qport "github.com/Ricky944902/classmate-web/internal/infrastructure/queue/port"
	"github.com/Ricky944902/classmate-web/internal/infrastructure/realtime"
	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	contactsHTTP "github.com/Ricky944902/classmate-web/internal/pkg/contacts/presentation/http"
	identityHTTP "github.com/Ricky944902/classmate-web/internal/pkg/identity/presentation/http"
	messagingHTTP "github.com/Ricky944902/classmate-web/internal/pkg/messaging/presentation/http"
	moderationUC "github.com/Ricky944902/classmate-web/internal/pkg/moderation/application/usecase"
	moderationAdapter "github.com/Ricky944902/classmate-web/internal/pkg/moderation/persistence/repository/adapter"
	moderationHTTP "github.com/Ricky944902/classmate-web/internal/pkg/moderation/presentation/http"
	verificationHTTP "github.com/Ricky944902/classmate-web/internal/pkg/verification/presentation/http"
)

// RegisterRoutes mounts all version 1 API routes under /api/v1.
func RegisterRoutes(r *gin.Engine, pool *pgxpool.Pool, hub *realtime.Hub, jm *security.JWTManager, cache cacheport.Cache, queue qport.Client) {
	v1 := r.Group("/api/v1")

	// The message pipeline reads the blocked-word list through the cached
	// word source; the moderation admin surface shares the same cache so
	// mutations invalidate it.
	words := moderationUC.NewWordSource(moderationAdapter.NewPgWordRepository(pool), cache)

	identityHTTP.RegisterRoutes(v1, pool, jm)
	verificationHTTP.RegisterRoutes(v1, pool, queue, jm)
	contactsHTTP.RegisterRoutes(v1, pool, jm)
	messagingHTTP.RegisterRoutes(v1, pool, hub, jm, words)
	moderationHTTP.RegisterRoutes(v1, pool, cache, jm)
}
