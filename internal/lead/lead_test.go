package lead

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, raw := range []string{"callback", "Audit", " contact "} {
		k, err := ParseKind(raw)
		require.NoError(t, err, raw)
		assert.NotEmpty(t, k.Table())
	}

	_, err := ParseKind("newsletter")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindTables(t *testing.T) {
	assert.Equal(t, TableCallbacks, KindCallback.Table())
	assert.Equal(t, TableAudits, KindAudit.Table())
	assert.Equal(t, TableNewsletter, KindContact.Table())
	assert.Empty(t, Kind("other").Table())

	assert.True(t, KindCallback.Modal())
	assert.True(t, KindAudit.Modal())
	assert.False(t, KindContact.Modal())
}

func TestCallbackRequestJSON(t *testing.T) {
	body, err := json.Marshal(CallbackRequest{Name: "Jane", Phone: "5551234", Email: "jane@x.com", Query: "pricing"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Jane","phone":"5551234","email":"jane@x.com","query":"pricing"}`, string(body))
}

func TestContactSubmissionOmitsOptionalFields(t *testing.T) {
	body, err := json.Marshal(ContactSubmission{Name: "Jane", Email: "jane@x.com", Message: "hi"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Jane","email":"jane@x.com","message":"hi"}`, string(body))
}

func TestAuditPayloadVariants(t *testing.T) {
	req := AuditRequest{
		FullName:    "John Doe",
		Email:       "john@acme.com",
		Phone:       "+1 555 000 0000",
		CompanyName: "Acme Inc.",
		Objective:   "Scale Operations",
		Niche:       "Logistics",
		Bottlenecks: "manual invoicing",
	}

	v1 := req.Payload("v1")
	assert.Equal(t, map[string]string{
		"full_name":    "John Doe",
		"email":        "john@acme.com",
		"phone":        "+1 555 000 0000",
		"company_name": "Acme Inc.",
		"objective":    "Scale Operations",
		"bottlenecks":  "manual invoicing",
	}, v1)

	v2 := req.Payload("v2")
	assert.Equal(t, "Acme Inc.", v2["companyName"])
	assert.Equal(t, "Logistics", v2["niche"])
	assert.NotContains(t, v2, "objective")
	assert.NotContains(t, v2, "company_name")

	assert.Equal(t, v1, req.Payload("unknown"))
}

func TestInspectorAnnotate(t *testing.T) {
	in := NewInspector("us")

	a := in.Annotate(" (415) 555-1234 ", "Jane@Example.com")
	assert.Equal(t, "+14155551234", a.PhoneE164)
	assert.Equal(t, "example.com", a.EmailDomain)
	assert.Equal(t, []any{"phone_e164", "+14155551234", "email_domain", "example.com"}, a.LogAttrs())

	a = in.Annotate("5551234", "not-an-email")
	assert.Empty(t, a.PhoneE164)
	assert.Empty(t, a.EmailDomain)
	assert.Empty(t, a.LogAttrs())
}

func TestEmailDomainIDNA(t *testing.T) {
	assert.Equal(t, "xn--bcher-kva.example", emailDomain("info@bücher.example"))
	assert.Empty(t, emailDomain("user@-bad-.com"))
	assert.Empty(t, emailDomain(""))
}

func TestNewInspectorDefaultsRegion(t *testing.T) {
	assert.Equal(t, defaultPhoneRegion, NewInspector("  ").region)
}

func TestRecord(t *testing.T) {
	values := map[string]string{
		"form_id": "ignored",
		"name":    "Jane",
		"phone":   "5551234",
		"email":   "jane@x.com",
		"query":   "pricing",
	}

	rec, err := Record(KindCallback, values, "v1")
	require.NoError(t, err)
	body, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Jane","phone":"5551234","email":"jane@x.com","query":"pricing"}`, string(body))

	rec, err = Record(KindContact, map[string]string{"name": "A", "email": "a@b.com", "message": "hi"}, "")
	require.NoError(t, err)
	assert.Equal(t, ContactSubmission{Name: "A", Email: "a@b.com", Message: "hi"}, rec)

	rec, err = Record(KindAudit, map[string]string{"full_name": "John", "company_name": "Acme", "niche": "Retail"}, "v2")
	require.NoError(t, err)
	payload := rec.(map[string]string)
	assert.Equal(t, "Acme", payload["companyName"])
	assert.Equal(t, "Retail", payload["niche"])

	_, err = Record(Kind("nope"), values, "v1")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
