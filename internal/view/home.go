package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/octobees/automatelabs-site/internal/lead"
)

// HomeData carries the per-render values of the landing page.
type HomeData struct {
	Page        PageConfig
	CallbackID  string
	AuditID     string
	ContactID   string
	AuditSchema string
}

func Home(data HomeData) g.Node {
	return Layout(
		data.Page,
		Modal(lead.KindAudit, auditAside(), AuditForm(FormState{ID: data.AuditID}, data.AuditSchema)),
		Modal(lead.KindCallback, nil, CallbackForm(FormState{ID: data.CallbackID})),
		SiteNav(),
		Main(
			Hero(),
			Metrics(),
			Services(),
			Testimonials(),
			Process(),
			FinalCTA(),
		),
		SiteFooter(FormState{ID: data.ContactID}),
	)
}

func Hero() g.Node {
	return Section(
		ID("hero"),
		Class("hero"),
		Div(
			Class("container hero-inner"),
			Div(Class("eyebrow"), Span(Class("pulse")), g.Text("Intelligent Automation Systems")),
			H1(
				g.Text("Turn Chaos Into "),
				Br(),
				Span(Class("highlight"), g.Text("Clarity.")),
			),
			P(
				Class("lead"),
				g.Text("We engineer sophisticated AI automations and custom SaaS solutions that streamline workflows, eliminate inefficiencies, and unlock new levels of productivity."),
			),
			Div(
				Class("actions"),
				A(Class("btn btn-dark"), Href("#"+ModalID(lead.KindAudit)), g.Attr("data-open", ModalID(lead.KindAudit)), g.Text("Book Free Audit →")),
				A(Class("btn btn-light"), Href("/case-studies"), g.Text("See Case Studies")),
			),
		),
	)
}

type stat struct {
	Value string
	Label string
}

var metrics = []stat{
	{"500+", "Hours Saved Monthly"},
	{"85%", "Operational Cost Reduction"},
	{"3x", "Faster Deployment Time"},
	{"100%", "Client Satisfaction"},
}

func Metrics() g.Node {
	return Section(
		Class("metrics"),
		Div(
			Class("container stat-grid"),
			g.Group(g.Map(metrics, func(s stat) g.Node {
				return Div(
					Class("stat"),
					Div(Class("stat-value"), g.Text(s.Value)),
					Div(Class("stat-label"), g.Text(s.Label)),
				)
			})),
		),
	)
}

type service struct {
	Title  string
	Desc   string
	Points []string
}

var services = []service{
	{
		Title:  "Intelligent AI Automations",
		Desc:   "Transform manual bottlenecks into self-driving workflows. We implement autonomous agents that work 24/7 to handle your repetitive tasks with zero error rate.",
		Points: []string{"Workflow Analysis & Optimization", "Custom AI Agent Development", "Seamless API Integrations"},
	},
	{
		Title:  "Custom SaaS Solutions",
		Desc:   "Stop settling for off-the-shelf limitations. We architect secure, cloud-native software tailored perfectly to your unique business requirements and compliance needs.",
		Points: []string{"Enterprise-Grade Security", "Scalable Cloud Architecture", "Multi-Tenant Systems"},
	},
	{
		Title:  "High-Performance Web & Mobile",
		Desc:   "Capture your audience instantly. We build lightning-fast, SEO-optimized digital experiences that convert visitors into loyal customers across all devices.",
		Points: []string{"Sub-second Load Times", "Conversion Rate Optimization", "Progressive Web Apps (PWA)"},
	},
}

func SectionHeading(title, subtitle string) g.Node {
	return Div(
		Class("section-heading"),
		H2(g.Text(title)),
		P(g.Text(subtitle)),
	)
}

func Services() g.Node {
	return Section(
		ID("services"),
		Class("section"),
		Div(
			Class("container"),
			SectionHeading("Engineered for Impact", "We don't just write code. We build strategic assets that solve real business problems and drive measurable growth."),
			Div(
				Class("card-grid"),
				g.Group(g.Map(services, func(s service) g.Node {
					return Div(
						Class("card"),
						H3(g.Text(s.Title)),
						P(g.Text(s.Desc)),
						Ul(Class("checklist"), g.Group(g.Map(s.Points, func(p string) g.Node { return Li(g.Text(p)) }))),
					)
				})),
			),
		),
	)
}

type testimonial struct {
	Quote   string
	Author  string
	Role    string
	Company string
	Metric  string
}

var testimonials = []testimonial{
	{
		Quote:   "AutomateLabs didn't just build us a tool; they completely revolutionized how we handle logistics. What used to take 4 people a whole week is now done automatically in 30 minutes.",
		Author:  "Sarah Jenkins",
		Role:    "COO",
		Company: "LogiTech Global",
		Metric:  "500+ Hours Saved / Month",
	},
	{
		Quote:   "The custom SaaS platform they engineered allowed us to scale from 100 to 10,000 users without a single hiccup. Their attention to security and architecture is world-class.",
		Author:  "David Chen",
		Role:    "CTO",
		Company: "FinStream",
		Metric:  "100x User Scaling",
	},
	{
		Quote:   "Our conversion rate doubled within a month of launching the new site. The speed and animation quality is unlike anything else in our industry. Truly premium work.",
		Author:  "Elena Rodriguez",
		Role:    "Marketing Director",
		Company: "LuxRealEstate",
		Metric:  "200% Conversion Increase",
	},
}

func Testimonials() g.Node {
	return Section(
		ID("results"),
		Class("section section-dark"),
		Div(
			Class("container narrow"),
			Div(Class("eyebrow"), g.Text("Success Stories")),
			Div(
				Class("testimonials"),
				g.Attr("data-rotate", "5000"),
				g.Group(g.Map(testimonials, func(t testimonial) g.Node {
					return Figure(
						Class("testimonial"),
						BlockQuote(P(g.Text("\""+t.Quote+"\""))),
						FigCaption(
							H4(g.Text(t.Author)),
							P(Class("muted"), g.Text(t.Role+" @ "+t.Company)),
							Div(Class("badge"), g.Text(t.Metric)),
						),
					)
				})),
			),
		),
	)
}

type step struct {
	ID    string
	Name  string
	Title string
	Desc  string
}

var steps = []step{
	{"01", "Discover", "Deep Dive Audit", "We analyze your current workflows and identify the highest-impact opportunities for automation."},
	{"02", "Design", "Strategic Roadmap", "We architect a custom solution blueprint, selecting the best stack for scalability and security."},
	{"03", "Deploy", "Agile Build", "Our rapid development cycles ensure you get functional tools fast, with rigorous testing phases."},
	{"04", "Optimize", "Continuous Growth", "We track performance metrics post-launch and iterate to ensure your ROI keeps climbing."},
}

func Process() g.Node {
	return Section(
		ID("methodology"),
		Class("section"),
		Div(
			Class("container"),
			SectionHeading("From Concept to Core", "Our proven four-step methodology ensures predictable success and rapid value delivery."),
			Ol(
				Class("steps"),
				g.Group(g.Map(steps, func(s step) g.Node {
					return Li(
						Class("step"),
						Span(Class("step-id"), g.Text(s.ID)),
						H4(g.Text(s.Name)),
						H3(g.Text(s.Title)),
						P(g.Text(s.Desc)),
					)
				})),
			),
		),
	)
}

func FinalCTA() g.Node {
	return Section(
		Class("section cta"),
		Div(
			Class("container narrow"),
			H2(
				g.Text("Stop wasting time on "),
				Br(),
				Span(Class("highlight"), g.Text("manual tasks.")),
			),
			P(g.Text("Join the forward-thinking companies saving thousands of hours every month. Your custom automation roadmap is just one call away.")),
			A(Class("btn btn-light"), Href("#"+ModalID(lead.KindAudit)), g.Attr("data-open", ModalID(lead.KindAudit)), g.Text("Book Your Free Automation Audit")),
			P(Class("muted small"), g.Text("No commitment • 30-min strategy session")),
		),
	)
}

// SiteFooter is the landing page footer hosting the inline contact form.
func SiteFooter(contact FormState) g.Node {
	links := []struct {
		Href  string
		Label string
	}{
		{"/about", "About Us"},
		{"/case-studies", "Case Studies"},
		{"/careers", "Careers"},
		{"/privacy", "Privacy Policy"},
	}

	return Footer(
		ID("contact"),
		Class("site-footer"),
		Div(
			Class("container footer-grid"),
			Div(
				Logo(),
				P(Class("muted"), g.Text("We build the future of business operations through intelligent software and seamless automation.")),
			),
			Div(
				H4(g.Text("Company")),
				Ul(
					Class("link-list"),
					g.Group(g.Map(links, func(l struct {
						Href  string
						Label string
					}) g.Node {
						return Li(A(Href(l.Href), g.Text(l.Label)))
					})),
				),
			),
			Div(
				H4(g.Text("Start Your Project")),
				ContactForm(contact),
			),
		),
		Div(
			Class("container footer-bottom muted"),
			g.Text("© "+copyrightYear()+" AutomateLabs.in. All rights reserved."),
		),
	)
}
