package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/automatelabs-site/internal/form"
	"github.com/octobees/automatelabs-site/internal/lead"
	"github.com/octobees/automatelabs-site/internal/logger"
	middleware "github.com/octobees/automatelabs-site/internal/middleware"
	"github.com/octobees/automatelabs-site/internal/view"
)

// FormsHandler drives the lead forms: it binds a submission, runs it through
// the instance's state machine and reports the outcome as JSON for scripted
// clients or as a rendered page for plain form posts.
type FormsHandler struct {
	registry    *form.Registry
	inspector   *lead.Inspector
	auditSchema string
	page        view.PageConfig
	log         *slog.Logger
}

func NewFormsHandler(registry *form.Registry, inspector *lead.Inspector, auditSchema string, page view.PageConfig, log *slog.Logger) *FormsHandler {
	if log == nil {
		log = logger.Discard()
	}
	if inspector == nil {
		inspector = lead.NewInspector("")
	}
	return &FormsHandler{
		registry:    registry,
		inspector:   inspector,
		auditSchema: auditSchema,
		page:        page,
		log:         log,
	}
}

// FormStatus is the data payload of the form endpoints.
type FormStatus struct {
	FormID       string `json:"form_id"`
	Kind         string `json:"kind"`
	State        string `json:"state"`
	ResetAfterMS int64  `json:"reset_after_ms,omitempty"`
	Title        string `json:"title,omitempty"`
	Body         string `json:"body,omitempty"`
}

// Submit handles POST /forms/:kind.
func (h *FormsHandler) Submit(c echo.Context) error {
	kind, err := lead.ParseKind(c.Param("kind"))
	if err != nil {
		return h.fail(c, http.StatusNotFound, "", "unknown form", nil)
	}

	values := map[string]string{}
	if err := c.Bind(&values); err != nil {
		return h.fail(c, http.StatusBadRequest, kind, "invalid payload", nil)
	}
	delete(values, "kind")
	for k, v := range values {
		values[k] = strings.TrimSpace(v)
	}

	formID := values["form_id"]
	if formID == "" {
		formID = form.NewID()
	}
	delete(values, "form_id")

	machine, err := h.registry.Get(formID, kind)
	switch {
	case errors.Is(err, form.ErrInvalidID):
		return h.fail(c, http.StatusBadRequest, kind, "invalid form id", nil)
	case errors.Is(err, form.ErrKindMismatch):
		return h.fail(c, http.StatusConflict, kind, "form id belongs to another form", nil)
	case err != nil:
		return h.fail(c, http.StatusInternalServerError, kind, "failed to prepare form", nil)
	}

	record, err := lead.Record(kind, values, h.auditSchema)
	if err != nil {
		return h.fail(c, http.StatusNotFound, "", "unknown form", nil)
	}

	log := middleware.LoggerFromContext(c, h.log)
	annotation := h.inspector.Annotate(values["phone"], values["email"])
	log.Info("lead submitted", append([]any{"kind", string(kind), "form_id", machine.ID()}, annotation.LogAttrs()...)...)

	state, err := machine.Submit(c.Request().Context(), record)
	switch {
	case errors.Is(err, form.ErrBusy):
		return h.fail(c, http.StatusConflict, kind, "This form is already being submitted.", nil)
	case errors.Is(err, form.ErrClosed):
		return h.fail(c, http.StatusGone, kind, "This form was closed before the request finished.", nil)
	case err != nil:
		return h.fail(c, http.StatusInternalServerError, kind, "submission failed", nil)
	}

	if state != form.StateSuccess {
		log.Warn("lead submission failed", "kind", string(kind), "form_id", machine.ID())
		values["form_id"] = machine.ID()
		return h.fail(c, http.StatusBadGateway, kind, view.RetryMessage, values)
	}

	log.Info("lead stored", "kind", string(kind), "form_id", machine.ID(), "table", kind.Table())
	if wantsJSON(c) {
		title, body := view.SuccessCopy(kind)
		return Success(c, http.StatusOK, "submission received", FormStatus{
			FormID:       machine.ID(),
			Kind:         string(kind),
			State:        string(state),
			ResetAfterMS: machine.ResetDelay().Milliseconds(),
			Title:        title,
			Body:         body,
		})
	}
	return renderHTML(c, http.StatusOK, view.FormResult(view.ResultData{
		Page:    h.page,
		Kind:    kind,
		Success: true,
	}))
}

// Status handles GET /forms/:id.
func (h *FormsHandler) Status(c echo.Context) error {
	machine, ok := h.registry.Lookup(c.Param("id"))
	if !ok {
		return Error(c, http.StatusNotFound, "form not found")
	}
	return Success(c, http.StatusOK, "", FormStatus{
		FormID: machine.ID(),
		Kind:   string(machine.Kind()),
		State:  string(machine.State()),
	})
}

// Close handles DELETE /forms/:id. Any submission still in flight for the
// instance is canceled.
func (h *FormsHandler) Close(c echo.Context) error {
	if !h.registry.Close(c.Param("id")) {
		return Error(c, http.StatusNotFound, "form not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// fail reports an unsuccessful submission. Plain form posts get the form
// back with the inline error when values are available.
func (h *FormsHandler) fail(c echo.Context, status int, kind lead.Kind, message string, values map[string]string) error {
	if wantsJSON(c) {
		return Error(c, status, message)
	}

	if kind != "" && values != nil {
		return renderHTML(c, status, view.FormResult(view.ResultData{
			Page:        h.page,
			Kind:        kind,
			Form:        view.FormState{ID: values["form_id"], Values: values, Error: message},
			AuditSchema: h.auditSchema,
		}))
	}
	return renderHTML(c, status, view.Message(h.page, http.StatusText(status), message))
}
