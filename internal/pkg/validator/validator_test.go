package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-02-28"); !ok {
		t.Error("IsValidDate(2025-02-28) = false, want true")
	}
	for _, s := range []string{"2025-13-01", "28-02-2025", "2025-02-30", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	cases := []struct {
		year, month int
		want        bool
	}{
		{2025, 1, true},
		{2025, 12, true},
		{2025, 0, false},
		{2025, 13, false},
		{1999, 6, false},
		{2101, 6, false},
	}
	for _, c := range cases {
		if got := IsValidPeriod(c.year, c.month); got != c.want {
			t.Errorf("IsValidPeriod(%d, %d) = %v, want %v", c.year, c.month, got, c.want)
		}
	}
}

func TestIsNonNegativeDecimal(t *testing.T) {
	if _, ok := IsNonNegativeDecimal("8.00"); !ok {
		t.Error("IsNonNegativeDecimal(8.00) = false, want true")
	}
	if _, ok := IsNonNegativeDecimal("0"); !ok {
		t.Error("IsNonNegativeDecimal(0) = false, want true")
	}
	if _, ok := IsNonNegativeDecimal("-0.01"); ok {
		t.Error("IsNonNegativeDecimal(-0.01) = true, want false")
	}
	if _, ok := IsNonNegativeDecimal("abc"); ok {
		t.Error("IsNonNegativeDecimal(abc) = true, want false")
	}
}

func TestIsValidHours(t *testing.T) {
	if !IsValidHours(decimal.NewFromFloat(8.5)) {
		t.Error("IsValidHours(8.5) = false, want true")
	}
	if !IsValidHours(decimal.NewFromInt(24)) {
		t.Error("IsValidHours(24) = false, want true")
	}
	if IsValidHours(decimal.NewFromFloat(24.01)) {
		t.Error("IsValidHours(24.01) = true, want false")
	}
	if IsValidHours(decimal.NewFromInt(-1)) {
		t.Error("IsValidHours(-1) = true, want false")
	}
}
