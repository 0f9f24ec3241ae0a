package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/automatelabs-site/internal/logger"
)

// Logging writes a concise structured line for each HTTP request and exposes
// a request-scoped logger to handlers.
func Logging(log *slog.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Scope("http"))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			rid := RequestIDFromContext(c)
			reqLog := log
			if rid != "" {
				reqLog = log.With("request_id", rid)
			}
			c.Set(ContextKeyLogger, reqLog)

			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"latency", latency,
				"remote_ip", c.RealIP(),
			}
			if err != nil {
				reqLog.Error("request failed", append(attrs, logger.Error(err))...)
			} else {
				reqLog.Info("request", attrs...)
			}

			return err
		}
	}
}

// LoggerFromContext returns the request-scoped logger, or fallback.
func LoggerFromContext(c echo.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := c.Get(ContextKeyLogger).(*slog.Logger); ok && l != nil {
		return l
	}
	if fallback == nil {
		return logger.Discard()
	}
	return fallback
}
