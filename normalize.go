package mailaddr

import (
	"regexp"
	"strings"
)

// Collapses runs of dots when normalizing the local part.
var dotRunRegex = regexp.MustCompile(`\.+`)

// Normalize cleans up the most common user-input mistakes: surrounding
// whitespace, uppercase letters, and stray dots in the local part
// (consecutive runs collapse to one, boundary dots are dropped). It is an
// opt-in pre-construction step; New itself never alters its input, so
// callers that want the normalized form must normalize first (or use
// NewNormalized). Strings without exactly one '@' are returned unchanged
// apart from trimming and lowercasing.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	at := strings.IndexByte(s, '@')
	if at < 0 || strings.IndexByte(s[at+1:], '@') >= 0 {
		return s
	}

	local := dotRunRegex.ReplaceAllString(s[:at], ".")
	local = strings.Trim(local, ".")

	return local + s[at:]
}

// NewNormalized runs Normalize on s before the checked construction. It
// accepts exactly the inputs for which New(Normalize(s)) succeeds; the
// returned ValidationError carries the normalized form, since that is what
// was rejected.
func NewNormalized(s string) (Email, error) {
	return New(Normalize(s))
}

// Masked returns the address with all but the first character of the local
// part replaced by asterisks, e.g. "j***@example.com". The full domain stays
// visible so users can still recognize their own address; use it whenever an
// address ends up in logs or UI shown to third parties.
func (e Email) Masked() string {
	if e.value == "" {
		return ""
	}

	at := strings.IndexByte(e.value, '@')
	local, domain := e.value[:at], e.value[at:]

	if len(local) == 1 {
		return "*" + domain
	}
	return local[:1] + strings.Repeat("*", len(local)-1) + domain
}
