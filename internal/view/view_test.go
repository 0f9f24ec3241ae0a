package view

import (
	"html"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/octobees/automatelabs-site/internal/lead"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestHomeRendersSectionsAndForms(t *testing.T) {
	out := render(t, Home(HomeData{
		CallbackID:  "cb-id",
		AuditID:     "audit-id",
		ContactID:   "contact-id",
		AuditSchema: "v1",
	}))

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	for _, want := range []string{
		"Turn Chaos Into",
		"Hours Saved Monthly",
		"Engineered for Impact",
		"Sarah Jenkins",
		"From Concept to Core",
		"manual tasks.",
		"AutomateLabs.in",
		`action="/forms/callback"`,
		`action="/forms/audit"`,
		`action="/forms/contact"`,
		`name="form_id" value="cb-id"`,
		`name="form_id" value="audit-id"`,
		`name="form_id" value="contact-id"`,
		`id="request-callback"`,
		`id="request-audit"`,
		`href="/static/site.css"`,
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "banner-error")
}

func TestAuditFormSchemaVariants(t *testing.T) {
	v1 := render(t, AuditForm(FormState{ID: "a"}, "v1"))
	assert.Contains(t, v1, `name="objective"`)
	assert.NotContains(t, v1, `name="niche"`)
	for _, o := range lead.Objectives {
		assert.Contains(t, v1, o)
	}

	v2 := render(t, AuditForm(FormState{ID: "a"}, "v2"))
	assert.Contains(t, v2, `name="niche"`)
	assert.NotContains(t, v2, `name="objective"`)
	assert.Contains(t, v2, `name="company_name"`)
}

func TestFormsMarkRequiredFields(t *testing.T) {
	out := render(t, CallbackForm(FormState{ID: "x"}))
	assert.Contains(t, out, `name="name" type="text" placeholder="Your Name" required`)
	assert.Contains(t, out, `name="email" type="email"`)
	assert.Contains(t, out, `name="query"`)

	contact := render(t, ContactForm(FormState{ID: "y"}))
	assert.Equal(t, 3, strings.Count(contact, "required"))
}

func TestFormRefillsValuesAndShowsError(t *testing.T) {
	out := render(t, ContactForm(FormState{
		ID:     "z",
		Values: map[string]string{"name": "Jane", "email": "jane@x.com", "message": "hello <there>"},
		Error:  RetryMessage,
	}))

	assert.Contains(t, out, `value="Jane"`)
	assert.Contains(t, out, `value="jane@x.com"`)
	assert.Contains(t, out, "hello &lt;there&gt;")
	assert.Contains(t, out, `class="form-error"`)
	assert.Contains(t, out, html.EscapeString(RetryMessage))
}

func TestObjectiveSelectKeepsChoice(t *testing.T) {
	out := render(t, AuditForm(FormState{ID: "a", Values: map[string]string{"objective": "Scale Operations"}}, "v1"))
	assert.Contains(t, out, `<option value="Scale Operations" selected>`)
}

func TestConfigBanner(t *testing.T) {
	assert.Nil(t, ConfigBanner(Banner{}))

	missing := render(t, ConfigBanner(Banner{Missing: []string{"SUPABASE_URL"}, Debug: true}))
	assert.Contains(t, missing, "CONFIG ERROR")
	assert.Contains(t, missing, "SUPABASE_URL")

	debug := render(t, ConfigBanner(Banner{Debug: true, Host: "abc.supabase.co", KeyLoaded: true}))
	assert.Contains(t, debug, "Connected to: abc.supabase.co")
	assert.Contains(t, debug, "Key Loaded: Yes")
}

func TestStaticPages(t *testing.T) {
	cases := []struct {
		name string
		node g.Node
		want []string
	}{
		{"about", About(PageConfig{}), []string{"Our Mission", "Our Approach", "Intelligent Runtime"}},
		{"careers", Careers(PageConfig{}), []string{"Why AutomateLabs?", "mailto:" + CareersEmail}},
		{"case studies", CaseStudies(PageConfig{}), []string{"E-Commerce Automation", "Data Processing Automation"}},
		{"privacy", Privacy(PageConfig{}), []string{"Last updated: January 26, 2026", "5. Data Sharing"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := render(t, tc.node)
			for _, want := range tc.want {
				assert.Contains(t, out, want)
			}
			assert.Contains(t, out, "Back to Home")
		})
	}
}

func TestFormResult(t *testing.T) {
	ok := render(t, FormResult(ResultData{Kind: lead.KindCallback, Success: true}))
	assert.Contains(t, ok, "Request Sent!")
	assert.NotContains(t, ok, "<form")

	failed := render(t, FormResult(ResultData{
		Kind:        lead.KindAudit,
		Form:        FormState{ID: "id-1", Error: RetryMessage},
		AuditSchema: "v2",
	}))
	assert.Contains(t, failed, `action="/forms/audit"`)
	assert.Contains(t, failed, `name="niche"`)
	assert.Contains(t, failed, html.EscapeString(RetryMessage))
}

func TestStaticAssetsEmbedded(t *testing.T) {
	for _, name := range []string{"site.css", "forms.js"} {
		data, err := fs.ReadFile(Static(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data)
	}
}

func TestFormsScriptDropsClosedSubmissions(t *testing.T) {
	data, err := fs.ReadFile(Static(), "forms.js")
	require.NoError(t, err)
	script := string(data)

	assert.Contains(t, script, "status === 410", "a 410 answer belongs to a closed modal and is not shown")
	assert.Contains(t, script, "if (stale(res.status)) return;")
	assert.Equal(t, 2, strings.Count(script, "form.dataset.generation = "), "submit and close both advance the generation")
}
