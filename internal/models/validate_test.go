package models

import (
	"errors"
	"testing"
)

func TestValidateSecurityID(t *testing.T) {
	valid := []string{"1", "1333", "11536", "999999999999"}
	for _, id := range valid {
		if err := ValidateSecurityID(id); err != nil {
			t.Errorf("ValidateSecurityID(%q) = %v, want nil", id, err)
		}
	}

	invalid := []string{"", "RELIANCE", "13 33", "-1", "1333333333333"}
	for _, id := range invalid {
		err := ValidateSecurityID(id)
		if err == nil {
			t.Errorf("ValidateSecurityID(%q) = nil, want error", id)
			continue
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("ValidateSecurityID(%q) returned %T, want *ValidationError", id, err)
		}
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("from_date", "2025-01-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, bad := range []string{"", "15-01-2025", "2025/01/15", "2025-1-5", "2025-01-15 09:15:00"} {
		if err := ValidateDate("from_date", bad); err == nil {
			t.Errorf("ValidateDate(%q) = nil, want error", bad)
		}
	}
}

func TestValidateDateTime(t *testing.T) {
	if err := ValidateDateTime("from_date", "2025-01-15 09:15:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, bad := range []string{"2025-01-15", "2025-01-15T09:15:00", "09:15:00"} {
		if err := ValidateDateTime("from_date", bad); err == nil {
			t.Errorf("ValidateDateTime(%q) = nil, want error", bad)
		}
	}
}

func TestValidateDateOrder(t *testing.T) {
	if err := ValidateDateOrder("2025-01-01", "2025-01-31"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateDateOrder("2025-02-01", "2025-01-31"); err == nil {
		t.Fatal("expected error for inverted range")
	}
	if err := ValidateDateOrder("2025-01-15", "2025-01-15"); err != nil {
		t.Fatalf("same-day range should be allowed: %v", err)
	}
}

func TestValidateOrderID(t *testing.T) {
	if err := ValidateOrderID("orderId", "112111182198"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, bad := range []string{"", "order id with spaces", "a/b"} {
		if err := ValidateOrderID("orderId", bad); err == nil {
			t.Errorf("ValidateOrderID(%q) = nil, want error", bad)
		}
	}
}
