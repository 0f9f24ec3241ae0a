package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/automatelabs-site/internal/config"
	"github.com/octobees/automatelabs-site/internal/form"
	"github.com/octobees/automatelabs-site/internal/view"
)

// PagesHandler renders the landing page and the static pages.
type PagesHandler struct {
	page        view.PageConfig
	auditSchema string
}

func NewPagesHandler(page view.PageConfig, auditSchema string) *PagesHandler {
	return &PagesHandler{page: page, auditSchema: auditSchema}
}

// PageConfigFor derives the shared page settings, including the connection
// banner, from the site configuration.
func PageConfigFor(cfg *config.Config) view.PageConfig {
	return view.PageConfig{
		Banner: view.Banner{
			Missing:   cfg.Supabase.Missing(),
			Debug:     cfg.DebugBanner,
			Host:      cfg.Supabase.Host(),
			KeyLoaded: len(cfg.Supabase.AnonKey) > 10,
		},
	}
}

// Home renders the landing page. Every render gets fresh form instance ids.
func (h *PagesHandler) Home(c echo.Context) error {
	return renderHTML(c, http.StatusOK, view.Home(view.HomeData{
		Page:        h.page,
		CallbackID:  form.NewID(),
		AuditID:     form.NewID(),
		ContactID:   form.NewID(),
		AuditSchema: h.auditSchema,
	}))
}

func (h *PagesHandler) About(c echo.Context) error {
	return renderHTML(c, http.StatusOK, view.About(h.page))
}

func (h *PagesHandler) Careers(c echo.Context) error {
	return renderHTML(c, http.StatusOK, view.Careers(h.page))
}

func (h *PagesHandler) CaseStudies(c echo.Context) error {
	return renderHTML(c, http.StatusOK, view.CaseStudies(h.page))
}

func (h *PagesHandler) Privacy(c echo.Context) error {
	return renderHTML(c, http.StatusOK, view.Privacy(h.page))
}

// NotFound renders the not found page for unknown routes.
func (h *PagesHandler) NotFound(c echo.Context) error {
	return renderHTML(c, http.StatusNotFound, view.Message(h.page, "Page not found", "The page you were looking for does not exist."))
}
