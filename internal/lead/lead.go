package lead

import (
	"errors"
	"strings"
)

// ErrUnknownKind is returned when a form kind does not map to a table.
var ErrUnknownKind = errors.New("unknown lead kind")

// Kind identifies one of the lead-capture forms.
type Kind string

const (
	KindCallback Kind = "callback"
	KindAudit    Kind = "audit"
	KindContact  Kind = "contact"
)

// Destination tables on the hosted REST endpoint.
const (
	TableCallbacks  = "callbacks"
	TableAudits     = "audits"
	TableNewsletter = "newsletter"
)

// Kinds lists every supported form kind.
var Kinds = []Kind{KindCallback, KindAudit, KindContact}

// ParseKind resolves a route parameter into a Kind.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	switch k {
	case KindCallback, KindAudit, KindContact:
		return k, nil
	default:
		return "", ErrUnknownKind
	}
}

// Table returns the destination table for the kind.
func (k Kind) Table() string {
	switch k {
	case KindCallback:
		return TableCallbacks
	case KindAudit:
		return TableAudits
	case KindContact:
		return TableNewsletter
	default:
		return ""
	}
}

// Modal reports whether the form is hosted in a modal dialog. Modal forms
// close themselves once the success copy has been shown.
func (k Kind) Modal() bool {
	return k == KindCallback || k == KindAudit
}

// CallbackRequest is submitted by the "Request Callback" form.
type CallbackRequest struct {
	Name  string `json:"name" form:"name"`
	Phone string `json:"phone" form:"phone"`
	Email string `json:"email" form:"email"`
	Query string `json:"query" form:"query"`
}

// ContactSubmission is submitted by the footer "Start Your Project" form.
type ContactSubmission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
	Company string `json:"company,omitempty" form:"company"`
	Phone   string `json:"phone,omitempty" form:"phone"`
}

// AuditRequest collects every field either audit form variant may send.
// Payload picks the subset for the configured schema.
type AuditRequest struct {
	FullName    string `json:"full_name" form:"full_name"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone" form:"phone"`
	CompanyName string `json:"company_name" form:"company_name"`
	Objective   string `json:"objective" form:"objective"`
	Niche       string `json:"niche" form:"niche"`
	Bottlenecks string `json:"bottlenecks" form:"bottlenecks"`
}

// Payload returns the flat record sent to the audits table for the given
// schema variant ("v1" or "v2"). Unknown variants fall back to v1.
func (r AuditRequest) Payload(schema string) map[string]string {
	if schema == "v2" {
		return map[string]string{
			"full_name":   r.FullName,
			"email":       r.Email,
			"phone":       r.Phone,
			"companyName": r.CompanyName,
			"niche":       r.Niche,
			"bottlenecks": r.Bottlenecks,
		}
	}
	return map[string]string{
		"full_name":    r.FullName,
		"email":        r.Email,
		"phone":        r.Phone,
		"company_name": r.CompanyName,
		"objective":    r.Objective,
		"bottlenecks":  r.Bottlenecks,
	}
}

// Objectives are the choices offered by the audit form.
var Objectives = []string{
	"Reduce Operational Costs",
	"Save Employee Time",
	"Scale Operations",
	"Improve Data Accuracy",
}

// Record builds the row inserted for kind from submitted form values. Values
// are passed through untouched; auditSchema selects the audit payload
// variant.
func Record(kind Kind, values map[string]string, auditSchema string) (any, error) {
	switch kind {
	case KindCallback:
		return CallbackRequest{
			Name:  values["name"],
			Phone: values["phone"],
			Email: values["email"],
			Query: values["query"],
		}, nil
	case KindAudit:
		return AuditRequest{
			FullName:    values["full_name"],
			Email:       values["email"],
			Phone:       values["phone"],
			CompanyName: values["company_name"],
			Objective:   values["objective"],
			Niche:       values["niche"],
			Bottlenecks: values["bottlenecks"],
		}.Payload(auditSchema), nil
	case KindContact:
		return ContactSubmission{
			Name:    values["name"],
			Email:   values["email"],
			Message: values["message"],
			Company: values["company"],
			Phone:   values["phone"],
		}, nil
	default:
		return nil, ErrUnknownKind
	}
}
