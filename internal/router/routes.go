package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/automatelabs-site/internal/config"
	"github.com/octobees/automatelabs-site/internal/handler"
	middlewarepkg "github.com/octobees/automatelabs-site/internal/middleware"
	"github.com/octobees/automatelabs-site/internal/view"
)

// Handlers aggregates HTTP handlers used by the site router.
type Handlers struct {
	Pages *handler.PagesHandler
	Forms *handler.FormsHandler
}

// RegisterSite wires the public site: pages, static assets and the lead forms.
func RegisterSite(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.IPExtractor = middlewarepkg.ClientIPExtractor(cfg.TrustProxyHeaders)

	e.GET("/healthz", handler.Health)

	e.GET("/", handlers.Pages.Home)
	e.GET("/about", handlers.Pages.About)
	e.GET("/careers", handlers.Pages.Careers)
	e.GET("/case-studies", handlers.Pages.CaseStudies)
	e.GET("/privacy", handlers.Pages.Privacy)
	e.RouteNotFound("/*", handlers.Pages.NotFound)

	e.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", http.FileServer(http.FS(view.Static())))))

	forms := e.Group("/forms")
	forms.POST("/:kind", handlers.Forms.Submit, middlewarepkg.FormRateLimiter(cfg.RateLimitForms))
	forms.GET("/:id", handlers.Forms.Status)
	forms.DELETE("/:id", handlers.Forms.Close)
}

// RegisterStub wires the development stub endpoints. Any origin may call
// them so a frontend dev server on another port can reach them.
func RegisterStub(e *echo.Echo, stub *handler.StubHandler) {
	api := e.Group("/api", echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	api.POST("/contact", stub.Contact)
	api.POST("/audit", stub.Audit)
	api.POST("/callback", stub.Callback)
	api.OPTIONS("/*", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	e.GET("/healthz", handler.Health)
}
