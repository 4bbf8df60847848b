package mailaddr

import "strings"

// Length bounds enforced by IsValid. They follow the practical SMTP limits
// (64-octet local part, 255-octet domain) rather than the full RFC 5322
// grammar. Changing any of them changes the set of accepted addresses, which
// breaks compatibility for previously validated or persisted data, so treat
// them as frozen policy.
const (
	// MaxLocalPartLength is the maximum length of the part before '@'.
	MaxLocalPartLength = 64
	// MaxDomainLength is the maximum length of the part after '@'.
	MaxDomainLength = 255
	// MaxAddressLength is the maximum total length of an address.
	MaxAddressLength = 320
)

// IsValid reports whether s is a structurally valid email address.
//
// The grammar is deliberately the practical web-form subset, not full
// RFC 5322: exactly one '@'; a non-empty local part of letters, digits and
// ._%+- with no leading, trailing or consecutive dots; a dotted domain of
// letters, digits and hyphens whose labels are non-empty and do not start or
// end with a hyphen; and a final label that is alphabetic and at least two
// characters. Quoted local parts, comments and internationalized addresses
// are rejected. Validation never normalizes: it is case-insensitive where
// the grammar is, and whitespace anywhere makes the address invalid.
//
// The check is a pure function of s, never panics, and completes in time
// proportional to len(s).
func IsValid(s string) bool {
	if len(s) > MaxAddressLength {
		return false
	}

	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	// A second separator anywhere after the first makes the split ambiguous.
	if strings.IndexByte(s[at+1:], '@') >= 0 {
		return false
	}

	return validLocalPart(s[:at]) && validDomain(s[at+1:])
}

func validLocalPart(local string) bool {
	if local == "" || len(local) > MaxLocalPartLength {
		return false
	}
	if local[0] == '.' || local[len(local)-1] == '.' {
		return false
	}

	prevDot := false
	for i := 0; i < len(local); i++ {
		c := local[i]
		switch {
		case c == '.':
			if prevDot {
				return false
			}
			prevDot = true
		case isAlphanumeric(c) || c == '_' || c == '%' || c == '+' || c == '-':
			prevDot = false
		default:
			return false
		}
	}
	return true
}

func validDomain(domain string) bool {
	if domain == "" || len(domain) > MaxDomainLength {
		return false
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !validDomainLabel(label) {
			return false
		}
	}
	return validTopLevelLabel(labels[len(labels)-1])
}

func validDomainLabel(label string) bool {
	if label == "" {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		if c := label[i]; !isAlphanumeric(c) && c != '-' {
			return false
		}
	}
	return true
}

// validTopLevelLabel enforces the extra rules for the final label: purely
// alphabetic and at least two characters, which rules out single-label hosts
// and numeric pseudo-TLDs.
func validTopLevelLabel(label string) bool {
	if len(label) < 2 {
		return false
	}
	for i := 0; i < len(label); i++ {
		if !isAlpha(label[i]) {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}
