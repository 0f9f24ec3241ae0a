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
	"github.com/octobees/automatelabs-site/internal/handler"
	"github.com/octobees/automatelabs-site/internal/lead"
	"github.com/octobees/automatelabs-site/internal/logger"
	middlewarepkg "github.com/octobees/automatelabs-site/internal/middleware"
	"github.com/octobees/automatelabs-site/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "text").Error("failed to load config", logger.Error(err))
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(log))
	e.Use(echoMiddleware.Recover())

	router.RegisterStub(e, handler.NewStubHandler(cfg.Stub, lead.NewInspector(cfg.PhoneRegion), log))

	serverErr := make(chan error, 1)
	go func() {
		log.Info("stub server listening", "url", "http://localhost:"+cfg.Stub.Port)
		serverErr <- e.Start(":" + cfg.Stub.Port)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", logger.Error(err))
			os.Exit(1)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", logger.Error(err))
	}
}
