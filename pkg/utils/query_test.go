package utils

import "testing"

func TestDateRangeParamsValues(t *testing.T) {
	values, err := DateRangeParams{FromDate: "2025-01-01", ToDate: "2025-01-31"}.Values()
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if got := values.Encode(); got != "from-date=2025-01-01&to-date=2025-01-31" {
		t.Errorf("Encode() = %q", got)
	}
}
