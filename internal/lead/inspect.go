package lead

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

var (
	emailPattern = regexp.MustCompile(`^[\p{L}0-9._%+\-']+@[\p{L}0-9.-]+\.[\p{L}]{2,}$`)
	idnaProfile  = idna.Lookup
)

const defaultPhoneRegion = "US"

// Annotation carries log-only hints derived from a submitted lead. Leads
// are never rewritten with these values; the table receives what the
// visitor typed.
type Annotation struct {
	PhoneE164   string
	EmailDomain string
}

// LogAttrs renders the annotation as slog key/value pairs, skipping empty
// values.
func (a Annotation) LogAttrs() []any {
	attrs := make([]any, 0, 4)
	if a.PhoneE164 != "" {
		attrs = append(attrs, "phone_e164", a.PhoneE164)
	}
	if a.EmailDomain != "" {
		attrs = append(attrs, "email_domain", a.EmailDomain)
	}
	return attrs
}

// Inspector derives diagnostics for incoming leads.
type Inspector struct {
	region string
}

// NewInspector builds an inspector that parses national phone numbers
// against the given region.
func NewInspector(region string) *Inspector {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &Inspector{region: region}
}

// Annotate returns what could be learned from the phone and email values.
func (i *Inspector) Annotate(phone, email string) Annotation {
	return Annotation{
		PhoneE164:   normalizePhone(phone, i.region),
		EmailDomain: emailDomain(email),
	}
}

func normalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if region == "" {
		region = defaultPhoneRegion
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

// emailDomain returns the ASCII form of the address's domain, or "" when
// the address does not look like one.
func emailDomain(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || !emailPattern.MatchString(email) {
		return ""
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	if !isDomainValid(domain) {
		return ""
	}
	ascii, err := idnaProfile.ToASCII(domain)
	if err != nil {
		return ""
	}
	return ascii
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}
