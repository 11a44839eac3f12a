package validator

import (
	"testing"
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
	invalid := []string{"test@", "@example.com", "test@com", "test@domain", " ", ""}
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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-06-02"); !ok {
		t.Error("IsValidDate(2025-06-02) = false, want true")
	}
	date, ok := IsValidDate("2025-02-28")
	if !ok || date.Month() != 2 || date.Day() != 28 {
		t.Errorf("IsValidDate(2025-02-28) parsed wrong: %v", date)
	}
	for _, s := range []string{"2025-13-01", "2025-02-30", "06/02/2025", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"Pending", "Processing", "Paid", "On Hold"}
	if !IsInSlice("Paid", statuses) {
		t.Error("IsInSlice(Paid) = false, want true")
	}
	if IsInSlice("Archived", statuses) {
		t.Error("IsInSlice(Archived) = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_id", Message: "is required"},
		{Field: "cash_advance", Message: "must be non-negative"},
	}

	msg := errs.Error()
	if msg != "employee_id: is required; cash_advance: must be non-negative" {
		t.Errorf("Error() = %q", msg)
	}

	m := errs.ToMap()
	if m["employee_id"] != "is required" || m["cash_advance"] != "must be non-negative" {
		t.Errorf("ToMap() = %v", m)
	}
}
