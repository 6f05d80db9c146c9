package models

import (
	"errors"
	"time"
)

// EventType classifies an access log record
type EventType string

const (
	EventFileAccess EventType = "file_access"
	EventFileUpload EventType = "file_upload"
	EventUserLogin  EventType = "user_login"
	EventAdminLogin EventType = "admin_login"
)

// Valid reports whether the event type is known
func (t EventType) Valid() bool {
	switch t {
	case EventFileAccess, EventFileUpload, EventUserLogin, EventAdminLogin:
		return true
	}
	return false
}

// AccessStatus is the outcome recorded for an event
type AccessStatus string

const (
	StatusSuccessful AccessStatus = "successful"
	StatusDenied     AccessStatus = "denied"
	StatusUpload     AccessStatus = "upload"
)

// Valid reports whether the status is known
func (s AccessStatus) Valid() bool {
	switch s {
	case StatusSuccessful, StatusDenied, StatusUpload:
		return true
	}
	return false
}

// AccessLogEntry is a single append-only audit record
type AccessLogEntry struct {
	ID        int64        `json:"id"`
	IPAddress string       `json:"ipAddress"`
	FileID    *int64       `json:"fileId"`
	Timestamp time.Time    `json:"timestamp"`
	EventType EventType    `json:"eventType"`
	Status    AccessStatus `json:"status"`
	Details   string       `json:"details,omitempty"`

	// Filename is the original name of the referenced file, resolved at read time
	Filename *string `json:"filename"`
}

// NewAccessLogEntry builds a validated audit record. The timestamp is left
// for the store to assign.
func NewAccessLogEntry(ip string, fileID *int64, eventType EventType, status AccessStatus, details string) (*AccessLogEntry, error) {
	if ip == "" {
		return nil, errors.New("access log entry requires an IP address")
	}
	if !eventType.Valid() {
		return nil, errors.New("unknown access log event type: " + string(eventType))
	}
	if !status.Valid() {
		return nil, errors.New("unknown access log status: " + string(status))
	}

	return &AccessLogEntry{
		IPAddress: ip,
		FileID:    fileID,
		EventType: eventType,
		Status:    status,
		Details:   details,
	}, nil
}

// AccessLogFilter narrows a log listing. Empty fields match everything.
type AccessLogFilter struct {
	EventType EventType
	Status    AccessStatus
}

// Matches reports whether the entry satisfies every set filter field
func (f AccessLogFilter) Matches(e *AccessLogEntry) bool {
	if f.EventType != "" && e.EventType != f.EventType {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	return true
}
