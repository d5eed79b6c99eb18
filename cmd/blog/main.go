package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ipapMaster/newsSimpleProject/internal/config"
	"github.com/ipapMaster/newsSimpleProject/internal/crypto"
	"github.com/ipapMaster/newsSimpleProject/internal/handler"
	"github.com/ipapMaster/newsSimpleProject/internal/repository"
	"github.com/ipapMaster/newsSimpleProject/internal/service"
	"github.com/ipapMaster/newsSimpleProject/internal/session"
	"github.com/ipapMaster/newsSimpleProject/internal/view"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	slog.SetDefault(newLogger(cfg.Env))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := repository.NewDB(ctx, cfg.DBDriver, cfg.DatabaseDSN)
	if err == nil {
		err = repository.Migrate(ctx, db, cfg.DBDriver)
	}
	cancel()
	if err != nil {
		slog.Error("database setup failed", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	sessions := session.NewManager(sessionRepo, userRepo, session.Options{
		Secret:      cfg.SessionSecret,
		CookieName:  cfg.CookieName,
		Secure:      cfg.CookieSecure,
		SessionTTL:  cfg.SessionTTL,
		RememberTTL: cfg.RememberTTL,
	})

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	r := handler.NewRouter(appCtx, handler.Deps{
		Auth:          service.NewAuthService(userRepo, crypto.NewPasswordHasher(crypto.DefaultHashParams())),
		News:          service.NewNewsService(repository.NewNewsRepository(db)),
		Categories:    service.NewCategoryService(repository.NewCategoryRepository(db)),
		Sessions:      sessions,
		View:          view.JSONRenderer{},
		AuthRateLimit: cfg.AuthRateLimit,
		AuthRateBurst: cfg.AuthRateBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	stopApp()
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newLogger logs text at debug level while developing and JSON otherwise.
func newLogger(env string) *slog.Logger {
	if env == "development" || env == "local" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
