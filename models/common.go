package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(ve.GetMessages(), ", ")
}

// add appends a field error
func (ve *ValidationErrors) add(field, message string) {
	*ve = append(*ve, ValidationError{Field: field, Message: message})
}

// orNil returns nil when there are no errors so callers can return it as error
func (ve ValidationErrors) orNil() error {
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// expiryLayouts are the accepted formats for expiry dates, most specific first
var expiryLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseExpiry parses an expiry date. An empty string means no expiry.
func ParseExpiry(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}

	return nil, fmt.Errorf("invalid expiry date %q", value)
}

// OptionalTime distinguishes an absent JSON field from an explicit null or
// empty value. Set is true whenever the field was present in the payload.
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

// UnmarshalJSON accepts null, "" or any ParseExpiry layout
func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("expiresAt must be a string or null")
	}

	t, err := ParseExpiry(raw)
	if err != nil {
		return err
	}
	o.Value = t
	return nil
}

// DashboardStats holds the aggregate numbers shown on the admin dashboard
type DashboardStats struct {
	TotalFiles            int `json:"totalFiles"`
	TotalAccessRequests   int `json:"totalAccessRequests"`
	TotalWhitelistedIPs   int `json:"totalWhitelistedIps"`
	NewFilesThisWeek      int `json:"newFilesThisWeek"`
	DeniedRequestsLast24h int `json:"deniedRequestsLast24h"`
	RecentlyAddedIPs      int `json:"recentlyAddedIps"`
}
