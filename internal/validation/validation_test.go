package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestCityValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "London", "London"},
		{"surrounding whitespace trimmed", "  London  ", "London"},
		{"internal space preserved", "New York", "New York"},
		{"unicode letters", "München", "München"},
		{"minimum length", "Ba", "Ba"},
		{"maximum length", strings.Repeat("a", 50), strings.Repeat("a", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := City(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("City(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCityInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "A"},
		{"too long", strings.Repeat("a", 51)},
		{"digits", "London123"},
		{"punctuation", "St. Petersburg"},
		{"hyphenated", "Stratford-upon-Avon"},
		{"only spaces", "    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := City(tt.in)
			if err == nil {
				t.Fatalf("City(%q): expected error, got nil", tt.in)
			}

			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("City(%q): expected *Error, got %T", tt.in, err)
			}
			if len(verr.Violations) == 0 {
				t.Fatal("expected at least one violation")
			}
			for _, v := range verr.Violations {
				if v.Field != "city" {
					t.Errorf("violation field = %q, want city", v.Field)
				}
				if v.Message == "" {
					t.Error("expected non-empty violation message")
				}
			}
		})
	}
}

func TestCityErrorMessage(t *testing.T) {
	_, err := City("x")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "city:") {
		t.Errorf("error message %q should name the field", err.Error())
	}
}
