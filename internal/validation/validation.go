// Package validation holds the input checks the dashboard applies before a
// mutation reaches a store.
package validation

import (
	"regexp"
	"strings"
)

const MaxMessageLength = 1000

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern     = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	phoneSeparators  = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	htmlAnglePattern = regexp.MustCompile(`[<>]`)
)

type Result struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

// SanitizeInput strips angle brackets and surrounding whitespace.
func SanitizeInput(input string) string {
	return strings.TrimSpace(htmlAnglePattern.ReplaceAllString(input, ""))
}

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phoneSeparators.Replace(phone))
}

// ValidateMessage checks a reply body. Failures come back as a structured
// result rather than an error: the caller decides whether to surface or just
// log them.
func ValidateMessage(message string) Result {
	if strings.TrimSpace(message) == "" {
		return Result{IsValid: false, Error: "Message cannot be empty"}
	}
	if len(message) > MaxMessageLength {
		return Result{IsValid: false, Error: "Message is too long (max 1000 characters)"}
	}
	return Result{IsValid: true}
}
