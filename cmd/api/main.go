package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meenakannan/portfolio-api/internal/api"
	"github.com/meenakannan/portfolio-api/internal/config"
	"github.com/meenakannan/portfolio-api/internal/db"
	"github.com/meenakannan/portfolio-api/internal/logger"
	"github.com/meenakannan/portfolio-api/internal/mailer"
	"github.com/meenakannan/portfolio-api/internal/metrics"
	"github.com/meenakannan/portfolio-api/internal/repository/postgres"
	"github.com/meenakannan/portfolio-api/internal/services"
	"github.com/meenakannan/portfolio-api/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	projectSvc := services.NewProjectService(repos.Projects)
	blogSvc := services.NewBlogService(repos.Posts)
	contactSvc := services.NewContactService(repos.Contacts, mailer.NewSMTP(cfg), wp, cfg.EmailUser)

	metrics.Init()
	r := api.NewRouter(cfg, projectSvc, blogSvc, contactSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
