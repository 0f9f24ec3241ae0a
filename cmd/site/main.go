package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/automatelabs-site/internal/config"
	"github.com/octobees/automatelabs-site/internal/form"
	"github.com/octobees/automatelabs-site/internal/handler"
	"github.com/octobees/automatelabs-site/internal/lead"
	"github.com/octobees/automatelabs-site/internal/logger"
	middlewarepkg "github.com/octobees/automatelabs-site/internal/middleware"
	"github.com/octobees/automatelabs-site/internal/router"
	"github.com/octobees/automatelabs-site/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "text").Error("failed to load config", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if missing := cfg.Supabase.Missing(); len(missing) > 0 {
		log.Error("supabase configuration missing, submissions will fail", "missing", missing)
	} else {
		log.Info("supabase configured", "host", cfg.Supabase.Host())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Inserts are bounded by the request context and the form instance only.
	client := supabase.NewClient(cfg.Supabase, nil, log)

	registry := form.NewRegistry(client, cfg.Forms, log)
	go registry.Run(ctx)

	page := handler.PageConfigFor(cfg)
	inspector := lead.NewInspector(cfg.PhoneRegion)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(log))
	e.Use(echoMiddleware.Recover())

	router.RegisterSite(e, cfg, router.Handlers{
		Pages: handler.NewPagesHandler(page, cfg.Forms.AuditSchema),
		Forms: handler.NewFormsHandler(registry, inspector, cfg.Forms.AuditSchema, page, log),
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info("site listening", "port", cfg.Port)
		serverErr <- e.Start(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-serverErr:
		registry.Shutdown()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", logger.Error(err))
			os.Exit(1)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", logger.Error(err))
	}
	registry.Shutdown()
}
