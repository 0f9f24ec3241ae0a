package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/octobees/automatelabs-site/internal/lead"
)

// CareersEmail receives applications from the careers page.
const CareersEmail = "careers@automatelabs.in"

type feature struct {
	Title string
	Desc  string
}

func featureGrid(items []feature) g.Node {
	return Div(
		Class("card-grid"),
		g.Group(g.Map(items, func(f feature) g.Node {
			return Div(Class("card"), H3(g.Text(f.Title)), P(g.Text(f.Desc)))
		})),
	)
}

func About(page PageConfig) g.Node {
	page.Title = "About Us | AutomateLabs"
	approach := []feature{
		{"Deep Analysis", "We thoroughly analyze your workflows to identify the highest-impact automation opportunities."},
		{"Custom Solutions", "Every automation is tailored to your specific business needs, no cookie-cutter solutions."},
		{"Continuous Improvement", "We monitor performance and iterate to ensure your ROI keeps climbing over time."},
	}
	numbers := []stat{
		{"500+", "Hours Saved Monthly"},
		{"85%", "Cost Reduction"},
		{"24/7", "Intelligent Runtime"},
	}

	return Layout(page,
		PageHeader("Our Story", "About", "AutomateLabs", "We build intelligent systems that bridge the gap between human creativity and operational scale."),
		Main(
			Section(
				Class("section"),
				Div(
					Class("container split"),
					Div(
						H2(g.Text("Our Mission")),
						P(g.Text("At AutomateLabs, we believe that repetitive tasks shouldn't consume valuable human time. Our mission is to empower businesses with intelligent automation that works 24/7, allowing teams to focus on what truly matters: innovation and growth.")),
						P(g.Text("We don't just build software; we architect strategic automation systems that solve real business problems and deliver measurable results.")),
					),
					Div(
						Class("card stat-stack"),
						g.Group(g.Map(numbers, func(s stat) g.Node {
							return Div(Div(Class("stat-value"), g.Text(s.Value)), Div(Class("stat-label"), g.Text(s.Label)))
						})),
					),
				),
			),
			Section(
				Class("section"),
				Div(Class("container"), H2(g.Text("Our Approach")), featureGrid(approach)),
			),
		),
		PageFooter(),
	)
}

func Careers(page PageConfig) g.Node {
	page.Title = "Careers | AutomateLabs"
	reasons := []feature{
		{"Cutting-Edge Tech", "Work with the latest AI frameworks and automation engines to build systems that scale."},
		{"Elite Collaboration", "Join a concentrated team of engineers and designers who build world-class assets."},
		{"Real Impact", "Watch your code save thousands of manual hours and transform business bottom lines."},
	}

	return Layout(page,
		PageHeader("Careers", "Join Our", "Team", "Help us build the next generation of autonomous intelligence. We're looking for high-performers ready to redefine modern work."),
		Main(
			Section(
				Class("section"),
				Div(Class("container"), H2(g.Text("Why AutomateLabs?")), featureGrid(reasons)),
			),
			Section(
				Class("section"),
				Div(
					Class("container narrow"),
					H2(g.Text("Open Positions")),
					P(Class("muted"), g.Text("We hunt for the rare 1% who build with purpose.")),
					Div(
						Class("card"),
						H3(g.Text("Join Our Talent Pool")),
						P(g.Text("We're constantly growing. Even if you don't see a specific position, we'd love to hear from elite engineers, designers, and automation specialists.")),
						P(Class("muted small"), g.Text("Send resume & portfolio to")),
						A(Href("mailto:"+CareersEmail), g.Text(CareersEmail)),
					),
				),
			),
		),
		PageFooter(),
	)
}

type caseStudy struct {
	Title       string
	Description string
	Metrics     []string
}

var caseStudies = []caseStudy{
	{
		Title:       "AutomateLabs - General Overview",
		Description: "Comprehensive overview of our intelligent automation solutions and how we transform business operations with AI-powered systems.",
		Metrics:     []string{"Complete solution overview", "AI & Automation expertise", "24/7 intelligent agents"},
	},
	{
		Title:       "AutomateLabs for Influencers",
		Description: "Specialized automation solutions for influencers to streamline content creation, engagement tracking, and brand partnerships.",
		Metrics:     []string{"Content automation", "Engagement tracking", "Partnership management"},
	},
	{
		Title:       "AutomateLabs for Scaled Influencers & Businesses",
		Description: "Enterprise-grade automation for scaled influencers and businesses managing multiple workflows, teams, and revenue streams.",
		Metrics:     []string{"Multi-workflow automation", "Team collaboration", "Revenue optimization"},
	},
	{
		Title:       "E-Commerce Automation",
		Description: "Automated order processing and inventory management for a retail company, reducing processing time by 85%.",
		Metrics:     []string{"500+ hours saved/month", "85% faster processing", "Zero errors"},
	},
	{
		Title:       "CRM Integration & AI Agents",
		Description: "Intelligent AI agents that automatically qualify leads, update CRM, and schedule follow-ups 24/7.",
		Metrics:     []string{"3x lead conversion", "24/7 availability", "100% data accuracy"},
	},
	{
		Title:       "Data Processing Automation",
		Description: "Automated data extraction and reporting for a financial services firm, eliminating manual spreadsheet work.",
		Metrics:     []string{"Weekly reports in 5 min", "95% cost reduction", "Real-time insights"},
	},
}

func CaseStudies(page PageConfig) g.Node {
	page.Title = "Case Studies | AutomateLabs"

	return Layout(page,
		PageHeader("Our Impact", "Case", "Studies", "Discover how we bridge the gap between complex manual tasks and fluid, autonomous intelligence through custom engineering."),
		Main(
			Section(
				Class("section"),
				Div(
					Class("container card-grid"),
					g.Group(g.Map(caseStudies, func(cs caseStudy) g.Node {
						return Article(
							Class("card"),
							H3(g.Text(cs.Title)),
							P(g.Text(cs.Description)),
							Div(Class("tags"), g.Group(g.Map(cs.Metrics, func(m string) g.Node {
								return Span(Class("tag"), g.Text(m))
							}))),
							A(Class("btn btn-light btn-sm"), Href("/#contact"), g.Text("Request the deck")),
						)
					})),
				),
			),
		),
		PageFooter(),
	)
}

func Privacy(page PageConfig) g.Node {
	page.Title = "Privacy Policy | AutomateLabs"
	collected := []string{"Request callback/consultation", "Book a free audit", "Newsletter subscription", "Form interactions"}
	uses := []string{"Respond to service inquiries", "Schedule strategic consultations", "Deliver automation insights via newsletter", "Compliance with legal standards"}

	return Layout(page,
		PageHeader("", "Privacy", "Policy", "Last updated: January 26, 2026"),
		Main(
			Section(
				Class("section"),
				Div(
					Class("container narrow prose"),
					H2(g.Text("1. Introduction")),
					P(g.Text(`AutomateLabs ("we," "our," or "us") is committed to protecting your privacy. This Privacy Policy explains how we collect, use, disclose, and safeguard your information when you visit our website or use our services.`)),

					H2(g.Text("2. Information We Collect")),
					P(g.Text("We collect information voluntarily provided to us when you interact with our platform:")),
					Ul(g.Group(g.Map(collected, func(s string) g.Node { return Li(g.Text(s)) }))),
					P(Strong(g.Text("Collected Data Types: ")), g.Text("Name, Email address, Phone number, Company details, and specific business automation requirements.")),

					H2(g.Text("3. How We Use Data")),
					P(g.Text("We utilize your information to engineer better solutions:")),
					Ol(g.Group(g.Map(uses, func(s string) g.Node { return Li(g.Text(s)) }))),

					H2(g.Text("4. Security")),
					P(g.Text("We implement premium technical measures including AES-256 encryption to protect your strategic business data.")),

					H2(g.Text("5. Data Sharing")),
					P(g.Text("We do not sell data. We only share information with critical service providers under strict NDAs or when legally required.")),

					H2(g.Text("6. Contact")),
					P(g.Text("For data inquiries, reach out to our systems administrator via the main contact channels.")),
				),
			),
		),
		PageFooter(),
	)
}

// ResultData describes the page rendered after a plain form post.
type ResultData struct {
	Page        PageConfig
	Kind        lead.Kind
	Success     bool
	Form        FormState
	AuditSchema string
}

// FormResult renders the outcome of a form post for visitors without
// scripting: the success copy, or the same form with the inline error.
func FormResult(data ResultData) g.Node {
	page := data.Page
	var body g.Node
	if data.Success {
		page.Title = "Thank you | AutomateLabs"
		body = Div(
			FormSuccess(data.Kind),
			A(Class("btn btn-dark"), Href("/"), g.Text("Back to Home")),
		)
	} else {
		page.Title = "Please try again | AutomateLabs"
		body = FormFor(data.Kind, data.Form, data.AuditSchema)
	}

	return Layout(page,
		Main(
			Section(
				Class("section"),
				Div(Class("container narrow card result-card"), body),
			),
		),
		PageFooter(),
	)
}

// Message renders a simple page with a heading and one paragraph, used for
// not found and closed form responses.
func Message(page PageConfig, title, text string) g.Node {
	page.Title = title + " | AutomateLabs"
	return Layout(page,
		PageHeader("", title, "", text),
		PageFooter(),
	)
}
