package mailaddr_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailaddr"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "simple address",
			input: "test@example.com",
			want:  true,
		},
		{
			name:  "dotted local part",
			input: "user.name@example.com",
			want:  true,
		},
		{
			name:  "plus tag and multi-label domain",
			input: "user+tag@example.co.uk",
			want:  true,
		},
		{
			name:  "dotted local with plus tag on a subdomain",
			input: "john.doe+tag@sub.example.co",
			want:  true,
		},
		{
			name:  "underscore and digits",
			input: "user_123@mail.example.org",
			want:  true,
		},
		{
			name:  "single character local part",
			input: "x@test.org",
			want:  true,
		},
		{
			name:  "full punctuation set in local part",
			input: "u.x_y%z+w-v@example.com",
			want:  true,
		},
		{
			name:  "hyphenated domain label",
			input: "user@exa-mple.com",
			want:  true,
		},
		{
			name:  "deep subdomains",
			input: "user@a.b.c.example.io",
			want:  true,
		},
		{
			name:  "uppercase preserved and accepted",
			input: "John.Doe@Example.COM",
			want:  true,
		},
		{
			name:  "digit-only inner label",
			input: "user@123.example.com",
			want:  true,
		},
		{
			name:  "empty string",
			input: "",
			want:  false,
		},
		{
			name:  "missing at sign",
			input: "plainaddress",
			want:  false,
		},
		{
			name:  "missing local part",
			input: "@example.com",
			want:  false,
		},
		{
			name:  "missing domain",
			input: "test@",
			want:  false,
		},
		{
			name:  "bare at sign",
			input: "@",
			want:  false,
		},
		{
			name:  "double at sign",
			input: "test@@example.com",
			want:  false,
		},
		{
			name:  "second at sign in domain",
			input: "a@b@c.example.com",
			want:  false,
		},
		{
			name:  "single-label domain",
			input: "user@localhost",
			want:  false,
		},
		{
			name:  "consecutive dots in domain",
			input: "test@example..com",
			want:  false,
		},
		{
			name:  "leading dot in domain",
			input: "user@.example.com",
			want:  false,
		},
		{
			name:  "trailing dot in domain",
			input: "user@example.com.",
			want:  false,
		},
		{
			name:  "leading dot in local part",
			input: ".user@example.com",
			want:  false,
		},
		{
			name:  "trailing dot in local part",
			input: "user.@example.com",
			want:  false,
		},
		{
			name:  "consecutive dots in local part",
			input: "user..name@example.com",
			want:  false,
		},
		{
			name:  "domain label starts with hyphen",
			input: "user@-example.com",
			want:  false,
		},
		{
			name:  "domain label ends with hyphen",
			input: "user@example-.com",
			want:  false,
		},
		{
			name:  "single character top-level label",
			input: "user@example.c",
			want:  false,
		},
		{
			name:  "numeric top-level label",
			input: "user@example.123",
			want:  false,
		},
		{
			name:  "digit inside top-level label",
			input: "user@example.c0m",
			want:  false,
		},
		{
			name:  "space inside local part",
			input: "user name@example.com",
			want:  false,
		},
		{
			name:  "leading whitespace",
			input: " user@example.com",
			want:  false,
		},
		{
			name:  "trailing whitespace",
			input: "user@example.com ",
			want:  false,
		},
		{
			name:  "embedded newline",
			input: "user\n@example.com",
			want:  false,
		},
		{
			name:  "embedded tab in domain",
			input: "user@exam\tple.com",
			want:  false,
		},
		{
			name:  "disallowed punctuation in local part",
			input: "user!name@example.com",
			want:  false,
		},
		{
			name:  "underscore in domain",
			input: "user@exam_ple.com",
			want:  false,
		},
		{
			name:  "non-ascii local part",
			input: "usér@example.com",
			want:  false,
		},
		{
			name:  "non-ascii domain",
			input: "user@exämple.com",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mailaddr.IsValid(tt.input))
		})
	}
}

func TestIsValidLengthBounds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "local part at the 64 character cap",
			input: strings.Repeat("a", 64) + "@example.com",
			want:  true,
		},
		{
			name:  "local part one over the cap",
			input: strings.Repeat("a", 65) + "@example.com",
			want:  false,
		},
		{
			name:  "domain at the 255 character cap",
			input: "user@" + strings.Repeat("a", 251) + ".com",
			want:  true,
		},
		{
			name:  "domain one over the cap",
			input: "user@" + strings.Repeat("a", 252) + ".com",
			want:  false,
		},
		{
			name:  "address at the 320 character cap",
			input: strings.Repeat("a", 64) + "@" + strings.Repeat("b", 251) + ".com",
			want:  true,
		},
		{
			name:  "address over the total cap",
			input: strings.Repeat("a", 65) + "@" + strings.Repeat("b", 252) + ".com",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mailaddr.IsValid(tt.input))
		})
	}
}
