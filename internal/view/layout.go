package view

import (
	"strconv"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/octobees/automatelabs-site/internal/lead"
)

const (
	defaultTitle       = "AutomateLabs - Intelligent Automation Systems"
	defaultDescription = "We engineer sophisticated AI automations and custom SaaS solutions that streamline workflows, eliminate inefficiencies, and unlock new levels of productivity."
)

// Banner describes the connection status strip shown above every page.
type Banner struct {
	// Missing lists configuration variables that are not set.
	Missing []string
	// Debug enables the connection details strip when nothing is missing.
	Debug     bool
	Host      string
	KeyLoaded bool
}

type PageConfig struct {
	Title       string
	Description string
	Banner      Banner
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = defaultTitle
	}
	if config.Description == "" {
		config.Description = defaultDescription
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("stylesheet"), Href("/static/site.css")),
			),
			Body(
				ConfigBanner(config.Banner),
				g.Group(content),
				Script(Src("/static/forms.js"), Defer()),
			),
		),
	})
}

// ConfigBanner renders the configuration error strip, or the debug strip
// when enabled. It renders nothing otherwise.
func ConfigBanner(b Banner) g.Node {
	if len(b.Missing) > 0 {
		return Div(
			Class("banner banner-error"),
			g.Attr("role", "alert"),
			g.Text("CONFIG ERROR: Supabase keys missing ("+strings.Join(b.Missing, ", ")+"). Check the .env file and restart the server."),
		)
	}
	if !b.Debug {
		return nil
	}

	keyState := "No"
	if b.KeyLoaded {
		keyState = "Yes"
	}
	return Div(
		Class("banner banner-debug"),
		g.Text("Connected to: "+b.Host),
		Br(),
		g.Text("Key Loaded: "+keyState),
	)
}

func Logo() g.Node {
	return A(
		Class("logo"),
		Href("/"),
		Span(Class("logo-mark"), g.Attr("aria-hidden", "true"), g.Text("⚡")),
		Span(Class("logo-text"), g.Text("AutomateLabs")),
	)
}

func SiteNav() g.Node {
	items := []string{"Services", "Methodology", "Results", "Contact"}

	return Nav(
		Class("site-nav"),
		Div(
			Class("container nav-inner"),
			Logo(),
			Div(
				Class("nav-links"),
				g.Group(g.Map(items, func(item string) g.Node {
					return A(Href("/#"+strings.ToLower(item)), g.Text(item))
				})),
				A(Class("btn btn-dark btn-sm"), Href("#"+ModalID(lead.KindCallback)), g.Attr("data-open", ModalID(lead.KindCallback)), g.Text("Request Callback")),
			),
		),
	)
}

// PageHeader is the hero block of the secondary pages.
func PageHeader(eyebrow, title, highlight, lead string) g.Node {
	return Section(
		Class("page-header"),
		Div(
			Class("container narrow"),
			A(Class("back-link"), Href("/"), g.Text("← Back to Home")),
			g.If(eyebrow != "", Div(Class("eyebrow"), Span(Class("pulse")), g.Text(eyebrow))),
			H1(
				g.Text(title+" "),
				Span(Class("highlight"), g.Text(highlight)),
			),
			g.If(lead != "", P(Class("lead"), g.Text(lead))),
		),
	)
}

// PageFooter is the slim footer of the secondary pages.
func PageFooter() g.Node {
	return Footer(
		Class("page-footer"),
		Div(
			Class("container footer-slim"),
			Logo(),
			Div(Class("muted"), g.Text("© "+copyrightYear()+" AutomateLabs.in • built with intelligent systems")),
		),
	)
}

func copyrightYear() string {
	return strconv.Itoa(time.Now().Year())
}
