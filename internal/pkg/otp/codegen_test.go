package otp

import (
	"regexp"
	"testing"
)

func TestGeneratorNumericIsFixedWidth(t *testing.T) {
	gen := NewGenerator()
	pattern := regexp.MustCompile(`^[0-9]{6}$`)

	for range 200 {
		code, err := gen.Numeric()
		if err != nil {
			t.Fatalf("numeric: %v", err)
		}
		if !pattern.MatchString(code) {
			t.Fatalf("expected 6 decimal digits, got %q", code)
		}
	}
}

func TestGeneratorTokenIsHexEncoded(t *testing.T) {
	gen := NewGenerator()

	token, err := gen.Token()
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	if !regexp.MustCompile(`^[0-9a-f]{64}$`).MatchString(token) {
		t.Fatalf("expected 64 hex chars, got %q", token)
	}

	other, err := gen.Token()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token == other {
		t.Fatal("two tokens must not collide")
	}
}
