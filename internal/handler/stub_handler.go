package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/automatelabs-site/internal/config"
	"github.com/octobees/automatelabs-site/internal/lead"
	"github.com/octobees/automatelabs-site/internal/logger"
	middleware "github.com/octobees/automatelabs-site/internal/middleware"
)

// StubResponse is the body shape of the development stub endpoints.
type StubResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// StubHandler imitates the lead endpoints for local frontend work. Nothing
// is persisted; every request is logged and answered after a fixed delay.
type StubHandler struct {
	delay      time.Duration
	auditDelay time.Duration
	inspector  *lead.Inspector
	log        *slog.Logger
}

func NewStubHandler(cfg config.StubConfig, inspector *lead.Inspector, log *slog.Logger) *StubHandler {
	if log == nil {
		log = logger.Discard()
	}
	if inspector == nil {
		inspector = lead.NewInspector("")
	}
	return &StubHandler{
		delay:      cfg.Delay,
		auditDelay: cfg.AuditDelay,
		inspector:  inspector,
		log:        log.With(logger.Scope("stub")),
	}
}

// Contact handles POST /api/contact. name, email and message are required;
// company and phone are optional.
func (h *StubHandler) Contact(c echo.Context) error {
	payload, ok := h.bind(c, lead.KindContact)
	if !ok {
		return nil
	}
	if !h.wait(c.Request().Context(), h.delay) {
		return nil
	}

	if !present(payload, "name") || !present(payload, "email") || !present(payload, "message") {
		return c.JSON(http.StatusBadRequest, StubResponse{Success: false, Message: "Missing required fields"})
	}
	return c.JSON(http.StatusOK, StubResponse{Success: true, Message: "Submission received"})
}

// Audit handles POST /api/audit.
func (h *StubHandler) Audit(c echo.Context) error {
	if _, ok := h.bind(c, lead.KindAudit); !ok {
		return nil
	}
	if !h.wait(c.Request().Context(), h.auditDelay) {
		return nil
	}
	return c.JSON(http.StatusOK, StubResponse{Success: true, Message: "Audit request received"})
}

// Callback handles POST /api/callback.
func (h *StubHandler) Callback(c echo.Context) error {
	if _, ok := h.bind(c, lead.KindCallback); !ok {
		return nil
	}
	if !h.wait(c.Request().Context(), h.delay) {
		return nil
	}
	return c.JSON(http.StatusOK, StubResponse{Success: true})
}

// bind decodes the JSON body and logs it. On malformed input it writes the
// 400 response itself and reports false.
func (h *StubHandler) bind(c echo.Context, kind lead.Kind) (map[string]any, bool) {
	payload := map[string]any{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &payload); err != nil {
		_ = c.JSON(http.StatusBadRequest, StubResponse{Success: false, Message: "Invalid JSON payload"})
		return nil, false
	}

	log := middleware.LoggerFromContext(c, h.log)
	phone, _ := payload["phone"].(string)
	email, _ := payload["email"].(string)
	attrs := append([]any{"kind", string(kind), "payload", payload}, h.inspector.Annotate(phone, email).LogAttrs()...)
	log.Info("stub received submission", attrs...)
	return payload, true
}

// wait blocks for d or until ctx is done. It reports whether the full delay
// elapsed.
func (h *StubHandler) wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		h.log.Debug("client went away during stub delay")
		return false
	}
}

func present(payload map[string]any, key string) bool {
	switch v := payload[key].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	default:
		return true
	}
}
