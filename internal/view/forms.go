package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/octobees/automatelabs-site/internal/lead"
)

// RetryMessage is the single inline error copy shared by every form.
const RetryMessage = "We couldn't send your request. Please check your connection and try again."

// FormState carries what a form needs to render: its instance id, values to
// refill after a failed submission and the inline error, if any.
type FormState struct {
	ID     string
	Values map[string]string
	Error  string
}

func (s FormState) value(name string) string {
	if s.Values == nil {
		return ""
	}
	return s.Values[name]
}

// SuccessCopy returns the heading and body shown after a successful
// submission of the given kind.
func SuccessCopy(kind lead.Kind) (string, string) {
	switch kind {
	case lead.KindCallback:
		return "Request Sent!", "We will call you back shortly."
	case lead.KindAudit:
		return "Request Received!", "We'll be in touch shortly to schedule your audit."
	default:
		return "Message Sent!", "Thanks for reaching out. We'll get back to you soon."
	}
}

// ModalID is the fragment id of the dialog hosting a modal form.
func ModalID(kind lead.Kind) string {
	return "request-" + string(kind)
}

type field struct {
	label       string
	name        string
	typ         string
	placeholder string
	required    bool
	rows        int
}

func (f field) render(state FormState) g.Node {
	id := state.ID + "-" + f.name
	var control g.Node
	if f.rows > 0 {
		control = Textarea(
			ID(id),
			Name(f.name),
			Rows(strconv.Itoa(f.rows)),
			Placeholder(f.placeholder),
			g.If(f.required, Required()),
			g.Text(state.value(f.name)),
		)
	} else {
		typ := f.typ
		if typ == "" {
			typ = "text"
		}
		control = Input(
			ID(id),
			Name(f.name),
			Type(typ),
			Placeholder(f.placeholder),
			g.If(f.required, Required()),
			g.If(state.value(f.name) != "", Value(state.value(f.name))),
		)
	}

	return Div(
		Class("field"),
		g.If(f.label != "", Label(For(id), g.Text(f.label))),
		control,
	)
}

func leadForm(kind lead.Kind, state FormState, submitLabel, busyLabel string, body ...g.Node) g.Node {
	return g.El("form",
		Class("lead-form"),
		Method("post"),
		Action("/forms/"+string(kind)),
		g.Attr("data-form-kind", string(kind)),
		g.Attr("data-busy-label", busyLabel),
		g.Attr("data-retry-message", RetryMessage),
		Input(Type("hidden"), Name("form_id"), Value(state.ID)),
		g.Group(body),
		formStatus(state),
		Button(Type("submit"), Class("btn btn-dark btn-block"), g.Text(submitLabel)),
	)
}

func formStatus(state FormState) g.Node {
	return Div(
		Class("form-status"),
		g.Attr("role", "status"),
		g.Attr("aria-live", "polite"),
		g.If(state.Error != "", P(Class("form-error"), g.Text(state.Error))),
	)
}

// FormSuccess is the confirmation block that replaces a form once its
// submission succeeded.
func FormSuccess(kind lead.Kind) g.Node {
	title, body := SuccessCopy(kind)
	return Div(
		Class("form-success"),
		Div(Class("success-mark"), g.Attr("aria-hidden", "true"), g.Text("✓")),
		H3(g.Text(title)),
		P(g.Text(body)),
	)
}

func CallbackForm(state FormState) g.Node {
	return leadForm(lead.KindCallback, state, "Request Call", "Sending...",
		Div(
			Class("form-heading"),
			H2(g.Text("Request Callback")),
			P(Class("muted"), g.Text("Leave your details and we'll contact you.")),
		),
		field{label: "Name", name: "name", placeholder: "Your Name", required: true}.render(state),
		field{label: "Phone Number", name: "phone", typ: "tel", placeholder: "+1 (555) 000-0000", required: true}.render(state),
		field{label: "Email", name: "email", typ: "email", placeholder: "you@example.com", required: true}.render(state),
		field{label: "Query", name: "query", placeholder: "How can we help?", rows: 2}.render(state),
	)
}

// AuditForm renders the audit request form for the configured payload
// schema. The v2 schema asks for a niche instead of a primary objective.
func AuditForm(state FormState, schema string) g.Node {
	var specific g.Node
	if schema == "v2" {
		specific = field{label: "Niche", name: "niche", placeholder: "Logistics, real estate, e-commerce..."}.render(state)
	} else {
		specific = objectiveSelect(state)
	}

	return leadForm(lead.KindAudit, state, "Book Audit", "Submitting...",
		Div(
			Class("form-heading"),
			H2(g.Text("Configure Your Audit")),
			P(Class("muted"), g.Text("Please provide as much detail as possible.")),
		),
		Div(
			Class("field-grid"),
			field{label: "Full Name", name: "full_name", placeholder: "John Doe", required: true}.render(state),
			field{label: "Work Email", name: "email", typ: "email", placeholder: "john@company.com", required: true}.render(state),
			field{label: "Phone", name: "phone", typ: "tel", placeholder: "+1 (555) 000-0000"}.render(state),
			field{label: "Company Name", name: "company_name", placeholder: "Acme Inc.", required: true}.render(state),
		),
		specific,
		field{label: "Key Bottlenecks", name: "bottlenecks", placeholder: "Describe the manual processes you want to automate...", rows: 3}.render(state),
	)
}

func objectiveSelect(state FormState) g.Node {
	id := state.ID + "-objective"
	current := state.value("objective")
	return Div(
		Class("field"),
		Label(For(id), g.Text("Primary Objective")),
		Select(
			ID(id),
			Name("objective"),
			g.Group(g.Map(lead.Objectives, func(o string) g.Node {
				return Option(Value(o), g.If(o == current, Selected()), g.Text(o))
			})),
		),
	)
}

// ContactForm is the inline "Start Your Project" form of the footer.
func ContactForm(state FormState) g.Node {
	return leadForm(lead.KindContact, state, "Send Message", "Sending...",
		field{name: "name", placeholder: "Name", required: true}.render(state),
		field{name: "email", typ: "email", placeholder: "Email Address", required: true}.render(state),
		field{name: "message", placeholder: "Tell us about your project...", required: true, rows: 3}.render(state),
	)
}

// FormFor renders the form of the given kind.
func FormFor(kind lead.Kind, state FormState, auditSchema string) g.Node {
	switch kind {
	case lead.KindCallback:
		return CallbackForm(state)
	case lead.KindAudit:
		return AuditForm(state, auditSchema)
	default:
		return ContactForm(state)
	}
}

// Modal wraps a form in a dialog opened through its fragment id, so it works
// with and without scripting.
func Modal(kind lead.Kind, aside g.Node, content g.Node) g.Node {
	return Section(
		ID(ModalID(kind)),
		Class("modal"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		A(Class("modal-backdrop"), Href("#"), g.Attr("data-close", ModalID(kind)), g.Attr("aria-label", "Close")),
		Div(
			Class("modal-card"),
			A(Class("modal-close"), Href("#"), g.Attr("data-close", ModalID(kind)), g.Attr("aria-label", "Close"), g.Text("×")),
			aside,
			Div(Class("modal-body"), content),
		),
	)
}

func auditAside() g.Node {
	points := []string{"Free 30-min Consultation", "Custom ROI Analysis", "No Commitment Required"}
	return Div(
		Class("modal-aside"),
		Logo(),
		H3(g.Text("Your Roadmap to Efficiency starts here.")),
		P(g.Text("Tell us about your current operations, and we'll build a custom automation strategy for you.")),
		Ul(Class("checklist"), g.Group(g.Map(points, func(p string) g.Node { return Li(g.Text(p)) }))),
	)
}
