package validation

import (
	"strings"
	"testing"
)

func TestSanitizeInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{"<script>alert(1)</script>", "scriptalert(1)/script"},
		{"a < b > c", "a  b  c"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeInput(tc.in); got != tc.want {
			t.Errorf("SanitizeInput(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.com", "aisha.patel@example.com", "x+y@sub.domain.org"}
	invalid := []string{"", "not-an-email", "a@b", "a b@c.com", "@b.com"}

	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+44 1234 567890", "441234567890", "+1 (555) 123-4567"}
	invalid := []string{"", "0123", "phone", "+0 1234"}

	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("expected %q to be valid", phone)
		}
	}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("expected %q to be invalid", phone)
		}
	}
}

func TestValidateMessage(t *testing.T) {
	if res := ValidateMessage("hello"); !res.IsValid || res.Error != "" {
		t.Fatalf("expected valid result, got %+v", res)
	}
	if res := ValidateMessage("   "); res.IsValid || res.Error == "" {
		t.Fatalf("expected empty message rejection, got %+v", res)
	}
	if res := ValidateMessage(strings.Repeat("x", MaxMessageLength+1)); res.IsValid {
		t.Fatalf("expected over-length rejection, got %+v", res)
	}
	if res := ValidateMessage(strings.Repeat("x", MaxMessageLength)); !res.IsValid {
		t.Fatalf("expected exactly max length to pass, got %+v", res)
	}
}
