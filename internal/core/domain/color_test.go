package domain

import (
	"errors"
	"testing"
	"time"
)

func timeMustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return ts
}

func TestNormalizeHexCode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "#FF0000", "#FF0000"},
		{"lowercase", "#aabbcc", "#AABBCC"},
		{"missing hash", "aabbcc", "#AABBCC"},
		{"short form", "abc", "#ABC"},
		{"mixed case with spaces", "  #AbC123 ", "#ABC123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeHexCode(tc.in)
			if err != nil {
				t.Fatalf("NormalizeHexCode(%q) returned error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("NormalizeHexCode(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeHexCode_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#1234567", "zzz", "#GG0000"} {
		if _, err := NormalizeHexCode(in); !errors.Is(err, ErrValidation) {
			t.Fatalf("NormalizeHexCode(%q): expected validation error, got %v", in, err)
		}
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("ADMIN"); !ok || r != RoleAdmin {
		t.Fatalf("expected ADMIN to parse")
	}
	if r, ok := ParseRole("USER"); !ok || r != RoleUser {
		t.Fatalf("expected USER to parse")
	}
	if _, ok := ParseRole("user"); ok {
		t.Fatalf("roles are case-sensitive")
	}
	if _, ok := ParseRole("SUPERADMIN"); ok {
		t.Fatalf("unknown role must not parse")
	}
}

func TestConfirmationExpiry(t *testing.T) {
	deadline := timeMustParse(t, "2026-01-02T15:04:05Z")
	c := &RegistrationConfirmation{AllowedUpTo: deadline}

	// The deadline instant itself still counts as valid.
	if c.Expired(deadline) {
		t.Fatalf("deadline instant must not be expired")
	}
	if !c.Expired(deadline.Add(1)) {
		t.Fatalf("one nanosecond past the deadline must be expired")
	}
	if c.Confirmed() {
		t.Fatalf("fresh confirmation must not be confirmed")
	}
}
