package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// Test the single allow/deny rule
func TestWhitelistEntryPermits(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	cases := []struct {
		name  string
		entry *WhitelistEntry
		want  bool
	}{
		{"nil entry", nil, false},
		{"inactive without expiry", &WhitelistEntry{IsActive: false}, false},
		{"inactive with future expiry", &WhitelistEntry{IsActive: false, ExpiresAt: &tomorrow}, false},
		{"inactive with past expiry", &WhitelistEntry{IsActive: false, ExpiresAt: &yesterday}, false},
		{"active with past expiry", &WhitelistEntry{IsActive: true, ExpiresAt: &yesterday}, false},
		{"active with future expiry", &WhitelistEntry{IsActive: true, ExpiresAt: &tomorrow}, true},
		{"active without expiry", &WhitelistEntry{IsActive: true}, true},
	}

	for _, tc := range cases {
		if got := tc.entry.Permits(now); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

// Test WhitelistForm validation
func TestWhitelistFormValidation(t *testing.T) {
	valid := WhitelistForm{IPAddress: "1.2.3.4", Description: "office"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no errors for valid form, got: %v", err)
	}

	invalid := WhitelistForm{IPAddress: strings.Repeat("1", 46), Description: "  "}
	err := invalid.Validate()
	if err == nil {
		t.Fatal("Expected errors for invalid form")
	}
	if ve, ok := err.(ValidationErrors); !ok || len(ve) != 2 {
		t.Errorf("Expected 2 validation errors, got: %v", err)
	}
}

func TestNewWhitelistEntryDefaultsActive(t *testing.T) {
	entry, err := NewWhitelistEntry(&WhitelistForm{IPAddress: " 1.2.3.4 ", Description: "x"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !entry.IsActive {
		t.Error("Expected new entry to default to active")
	}
	if entry.IPAddress != "1.2.3.4" {
		t.Errorf("Expected trimmed IP, got %q", entry.IPAddress)
	}

	inactive := false
	entry, err = NewWhitelistEntry(&WhitelistForm{IPAddress: "1.2.3.4", Description: "x", IsActive: &inactive})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if entry.IsActive {
		t.Error("Expected explicit inactive flag to be kept")
	}
}

func TestWhitelistUpdateApply(t *testing.T) {
	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	entry := &WhitelistEntry{Description: "old", IsActive: true, ExpiresAt: &expiry}

	var update WhitelistUpdate
	if err := json.Unmarshal([]byte(`{"description":"new","expiresAt":""}`), &update); err != nil {
		t.Fatalf("Failed to decode update: %v", err)
	}
	update.Apply(entry)

	if entry.Description != "new" {
		t.Errorf("Expected description 'new', got %q", entry.Description)
	}
	if !entry.IsActive {
		t.Error("Expected isActive to stay untouched")
	}
	if entry.ExpiresAt != nil {
		t.Error("Expected empty expiresAt to clear the expiry")
	}

	var keep WhitelistUpdate
	if err := json.Unmarshal([]byte(`{"isActive":false}`), &keep); err != nil {
		t.Fatalf("Failed to decode update: %v", err)
	}
	entry.ExpiresAt = &expiry
	keep.Apply(entry)
	if entry.ExpiresAt == nil {
		t.Error("Expected absent expiresAt to leave the expiry untouched")
	}
	if entry.IsActive {
		t.Error("Expected isActive to be false")
	}
}

func TestParseExpiry(t *testing.T) {
	for _, value := range []string{"2030-01-02", "2030-01-02T10:30", "2030-01-02T10:30:00Z"} {
		got, err := ParseExpiry(value)
		if err != nil || got == nil {
			t.Errorf("Expected %q to parse, got %v", value, err)
			continue
		}
		if got.Year() != 2030 || got.Day() != 2 {
			t.Errorf("Unexpected parse result for %q: %v", value, got)
		}
	}

	if got, err := ParseExpiry(""); err != nil || got != nil {
		t.Errorf("Expected empty expiry to mean none, got %v, %v", got, err)
	}
	if _, err := ParseExpiry("next tuesday"); err == nil {
		t.Error("Expected invalid expiry to fail")
	}
}

func TestNewAccessLogEntry(t *testing.T) {
	entry, err := NewAccessLogEntry("10.0.0.1", nil, EventFileAccess, StatusDenied, "IP not whitelisted")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if entry.Status != StatusDenied || entry.EventType != EventFileAccess {
		t.Errorf("Unexpected entry: %+v", entry)
	}

	if _, err := NewAccessLogEntry("", nil, EventFileAccess, StatusDenied, ""); err == nil {
		t.Error("Expected missing IP to fail")
	}
	if _, err := NewAccessLogEntry("10.0.0.1", nil, "download", StatusDenied, ""); err == nil {
		t.Error("Expected unknown event type to fail")
	}
	if _, err := NewAccessLogEntry("10.0.0.1", nil, EventFileAccess, "maybe", ""); err == nil {
		t.Error("Expected unknown status to fail")
	}
}

func TestAccessLogFilterMatches(t *testing.T) {
	entry := &AccessLogEntry{EventType: EventFileAccess, Status: StatusDenied}

	if !(AccessLogFilter{}).Matches(entry) {
		t.Error("Expected empty filter to match")
	}
	if !(AccessLogFilter{EventType: EventFileAccess, Status: StatusDenied}).Matches(entry) {
		t.Error("Expected full filter to match")
	}
	if (AccessLogFilter{EventType: EventFileAccess, Status: StatusSuccessful}).Matches(entry) {
		t.Error("Expected status mismatch to exclude entry")
	}
}

func TestUserFormValidation(t *testing.T) {
	form := UserForm{Username: "alice", Password: "secret1"}
	if err := form.Validate(); err != nil {
		t.Errorf("Expected no errors, got: %v", err)
	}
	if form.Role != RoleUser {
		t.Errorf("Expected default role user, got %s", form.Role)
	}

	bad := UserForm{Username: "al", Password: "123", Role: "root"}
	err := bad.Validate()
	if ve, ok := err.(ValidationErrors); !ok || len(ve) != 3 {
		t.Errorf("Expected 3 validation errors, got: %v", err)
	}
}

func TestIsVIPScript(t *testing.T) {
	if !IsVIPScript("premium-script-1.vip.js") {
		t.Error("Expected .vip.js file to be accepted")
	}
	for _, name := range []string{"script.js", "script.vip.ts", "script.vip.js.exe"} {
		if IsVIPScript(name) {
			t.Errorf("Expected %s to be rejected", name)
		}
	}
}
