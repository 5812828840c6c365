package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a record ID does not exist in a list.
	ErrNotFound = errors.New("record not found")
	// ErrQuotaExceeded is returned by a KVStore that has no room for a value.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// ValidationErrors maps form field names to user-facing messages.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a message for field, keeping the first one reported.
func (v ValidationErrors) Add(field, message string) {
	if _, ok := v[field]; !ok {
		v[field] = message
	}
}

// OrNil returns nil when there are no errors so callers can return it directly.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// AsValidationErrors extracts ValidationErrors from err.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
