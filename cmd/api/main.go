package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	v1 "github.com/Ricky944902/classmate-web/cmd/api/router/v1"
	cacheadapter "github.com/Ricky944902/classmate-web/internal/infrastructure/cache/adapter"
	cacheport "github.com/Ricky944902/classmate-web/internal/infrastructure/cache/port"
	"github.com/Ricky944902/classmate-web/internal/infrastructure/database"
	"github.com/Ricky944902/classmate-web/internal/infrastructure/notify"
	queueadapter "github.com/Ricky944902/classmate-web/internal/infrastructure/queue/adapter"
	"github.com/Ricky944902/classmate-web/internal/infrastructure/realtime"
	"github.com/Ricky944902/classmate-web/internal/infrastructure/security"
	identity "github.com/Ricky944902/classmate-web/internal/pkg/identity/domain"
	identityadapter "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/adapter"
	"github.com/Ricky944902/classmate-web/internal/pkg/verification/application/task"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(rootCtx, 5*time.Second)
	defer cancel()

	pool, err := database.NewPoolFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	var cache cacheport.Cache
	if redisCache, err := cacheadapter.NewRedisAdapter(); err != nil {
		log.Printf("Warning: redis unavailable, word cache disabled: %v", err)
	} else {
		cache = redisCache
		defer redisCache.Close()
	}

	queueClient, err := queueadapter.NewAsynqClientFromEnv()
	if err != nil {
		log.Fatalf("failed to create queue client: %v", err)
	}
	defer queueClient.Close()

	queueServer, err := queueadapter.NewAsynqServer()
	if err != nil {
		log.Fatalf("failed to create queue server: %v", err)
	}
	queueServer.Register(task.TypeSendCode, task.NewSendCodeEmailHandler(notify.NewMailerFromEnv()))
	go func() {
		if err := queueServer.Run(rootCtx); err != nil {
			log.Printf("queue server stopped: %v", err)
		}
	}()

	if err := bootstrapAdmin(ctx, pool); err != nil {
		log.Fatalf("failed to bootstrap admin account: %v", err)
	}

	hub := realtime.NewHub()
	defer hub.Close()

	jm := security.NewJWTManagerFromEnv()

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	v1.RegisterRoutes(r, pool, hub, jm, cache, queueClient)

	srv := &http.Server{Addr: listenAddr(), Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()
	log.Printf("listening on %s", srv.Addr)

	<-rootCtx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
}

// bootstrapAdmin makes sure the seed admin account exists. It reconciles on
// every startup instead of running a one-off migration, so a deleted admin
// reappears on the next boot.
func bootstrapAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	users := identityadapter.NewPgUserRepository(pool)

	username := getenv("ADMIN_USERNAME", "admin")
	if _, err := users.FindByUsername(ctx, username); err == nil {
		return nil
	} else if !apperrors.Is(err, apperrors.CodeNotFound) {
		return err
	}

	hash, err := security.HashPassword(getenv("ADMIN_PASSWORD", "admin123"))
	if err != nil {
		return err
	}
	_, err = users.Create(ctx, &identity.User{
		Username:     username,
		Email:        getenv("ADMIN_EMAIL", "admin@example.com"),
		PasswordHash: hash,
		IsAdmin:      true,
		IsVerified:   true,
	})
	if apperrors.Is(err, apperrors.CodeAlreadyExists) {
		// Another instance won the race; the account is there either way.
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("seeded admin account %q", username)
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func listenAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}
