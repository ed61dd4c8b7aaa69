package models

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	datePattern       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	securityIDPattern = regexp.MustCompile(`^\d{1,12}$`)
	orderIDPattern    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)
)

// ValidationError reports a malformed tool argument. It is returned before
// any network call is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidateSecurityID checks a broker security identifier (numeric string).
func ValidateSecurityID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid("securityId", "security id is required")
	}
	if !securityIDPattern.MatchString(id) {
		return invalid("securityId", "security id must be numeric, got %q", id)
	}
	return nil
}

// ValidateOrderID checks a broker or correlation order identifier.
func ValidateOrderID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid(field, "%s is required", field)
	}
	if !orderIDPattern.MatchString(id) {
		return invalid(field, "invalid %s format", field)
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(field, date string) error {
	if date == "" {
		return invalid(field, "%s is required", field)
	}
	if !datePattern.MatchString(date) {
		return invalid(field, "%s must be in YYYY-MM-DD format, got %q", field, date)
	}
	return nil
}

// ValidateDateTime checks a "YYYY-MM-DD HH:MM:SS" timestamp string.
func ValidateDateTime(field, ts string) error {
	if ts == "" {
		return invalid(field, "%s is required", field)
	}
	if !dateTimePattern.MatchString(ts) {
		return invalid(field, "%s must be in YYYY-MM-DD HH:MM:SS format, got %q", field, ts)
	}
	return nil
}

// ValidateDateOrder rejects ranges where from sorts after to. Both values
// must already be format-checked; lexicographic comparison is correct for
// ISO dates.
func ValidateDateOrder(from, to string) error {
	if from > to {
		return invalid("fromDate", "from date %q is after to date %q", from, to)
	}
	return nil
}
