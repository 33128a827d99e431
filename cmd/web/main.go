package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/investa-app/webclient/internal/invest"
	"github.com/investa-app/webclient/internal/investapi"
	"github.com/investa-app/webclient/internal/session"
	"github.com/investa-app/webclient/internal/web"
	"github.com/investa-app/webclient/internal/web/handler"
	"github.com/investa-app/webclient/pkg/config"
	"github.com/investa-app/webclient/pkg/logger"

	"github.com/redis/go-redis/v9"
)

func main() {
	// Create context that listens for termination signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewDefault(cfg.Env)
	log.Info("Starting Investa web client",
		"env", cfg.Env,
		"port", cfg.Port,
		"api_url", cfg.APIURL,
	)

	// Session store: Redis when configured, in-memory otherwise
	var sessions session.Store
	if cfg.RedisURL != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisURL,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		sessions = session.NewRedisStore(redisClient, cfg.SessionTTL, log)
		log.Info("Redis session store initialized")
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
		log.Info("In-memory session store initialized")
	}

	// Remote API client; the per-request token comes off the session context
	api := investapi.NewClient(cfg.APIURL, session.ContextTokenSource{}, log)

	// Submission flow
	submitter := invest.NewSubmitter(api, log)

	// Template renderer
	render, err := handler.NewRenderer(log)
	if err != nil {
		log.Error("Failed to parse templates", "error", err)
		os.Exit(1)
	}

	// HTTP handlers
	authHandler := handler.NewAuthHandler(api, sessions, render, log, cfg.SessionTTL, cfg.IsProduction())
	walletHandler := handler.NewWalletHandler(api, render, log)
	companyHandler := handler.NewCompanyHandler(api, render, log)
	investHandler := handler.NewInvestHandler(api, submitter, render, log)
	portfolioHandler := handler.NewPortfolioHandler(api, render, log)
	profileHandler := handler.NewProfileHandler(api, sessions, render, log)

	// Create HTTP router
	r := web.NewRouter(web.Config{
		Logger:           log,
		AllowedOrigins:   cfg.AllowedOrigins,
		Sessions:         sessions,
		AuthHandler:      authHandler,
		WalletHandler:    walletHandler,
		CompanyHandler:   companyHandler,
		InvestHandler:    investHandler,
		PortfolioHandler: portfolioHandler,
		ProfileHandler:   profileHandler,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for termination signal
	<-ctx.Done()
	log.Info("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("Server stopped gracefully")
}
