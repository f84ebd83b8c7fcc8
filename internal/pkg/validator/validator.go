package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidUUID accepts any RFC 4122 UUID in canonical form.
func IsValidUUID(id string) bool {
	return len(id) == 36 && uuid.Validate(id) == nil
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidDateRange parses both dates and checks start <= end.
func IsValidDateRange(startStr, endStr string) (start, end time.Time, ok bool) {
	start, okStart := IsValidDate(startStr)
	end, okEnd := IsValidDate(endStr)
	if !okStart || !okEnd || end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Business codes (NIK): 1-32 chars of letters, digits, '.', '-', '/'
var businessCodeRegex = regexp.MustCompile(`^[A-Za-z0-9./-]{1,32}$`)

func IsValidBusinessCode(code string) bool {
	return businessCodeRegex.MatchString(code)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
