package models

import (
	"strings"
	"time"
)

const (
	maxIPAddressLength   = 45
	maxDescriptionLength = 255
)

// WhitelistEntry is an IP address allowed to fetch protected scripts
type WhitelistEntry struct {
	ID          int64      `json:"id"`
	IPAddress   string     `json:"ipAddress"`
	Description string     `json:"description"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	CreatedBy   *int64     `json:"createdBy"`
}

// Permits reports whether the entry grants access at the given instant.
// This is the only place the active/expiry rule is evaluated.
func (e *WhitelistEntry) Permits(now time.Time) bool {
	if e == nil || !e.IsActive {
		return false
	}
	if e.ExpiresAt != nil && e.ExpiresAt.Before(now) {
		return false
	}
	return true
}

// WhitelistForm represents the payload for creating a whitelist entry
type WhitelistForm struct {
	IPAddress   string     `json:"ipAddress"`
	Description string     `json:"description"`
	IsActive    *bool      `json:"isActive,omitempty"`
	ExpiresAt   *time.Time `json:"-"`
	CreatedBy   *int64     `json:"-"`
}

// Validate validates the whitelist form data
func (f *WhitelistForm) Validate() error {
	var errs ValidationErrors

	ip := strings.TrimSpace(f.IPAddress)
	if ip == "" {
		errs.add("ipAddress", "IP address is required")
	} else if len(ip) > maxIPAddressLength {
		errs.add("ipAddress", "IP address must be at most 45 characters")
	}

	desc := strings.TrimSpace(f.Description)
	if desc == "" {
		errs.add("description", "Description is required")
	} else if len(desc) > maxDescriptionLength {
		errs.add("description", "Description must be at most 255 characters")
	}

	return errs.orNil()
}

// NewWhitelistEntry validates the form and builds an entry ready to be stored.
// IsActive defaults to true when the form leaves it unset.
func NewWhitelistEntry(form *WhitelistForm) (*WhitelistEntry, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	active := true
	if form.IsActive != nil {
		active = *form.IsActive
	}

	return &WhitelistEntry{
		IPAddress:   strings.TrimSpace(form.IPAddress),
		Description: strings.TrimSpace(form.Description),
		IsActive:    active,
		ExpiresAt:   form.ExpiresAt,
		CreatedBy:   form.CreatedBy,
	}, nil
}

// WhitelistUpdate carries the fields an administrator may change.
// Nil pointers leave the stored value untouched; ExpiresAt.Set with a nil
// Value clears the expiry.
type WhitelistUpdate struct {
	Description *string      `json:"description"`
	IsActive    *bool        `json:"isActive"`
	ExpiresAt   OptionalTime `json:"expiresAt"`
}

// Validate validates the update payload
func (u *WhitelistUpdate) Validate() error {
	var errs ValidationErrors

	if u.Description != nil {
		desc := strings.TrimSpace(*u.Description)
		if desc == "" {
			errs.add("description", "Description cannot be empty")
		} else if len(desc) > maxDescriptionLength {
			errs.add("description", "Description must be at most 255 characters")
		}
	}

	return errs.orNil()
}

// Apply copies the set fields of the update onto the entry
func (u *WhitelistUpdate) Apply(e *WhitelistEntry) {
	if u.Description != nil {
		e.Description = strings.TrimSpace(*u.Description)
	}
	if u.IsActive != nil {
		e.IsActive = *u.IsActive
	}
	if u.ExpiresAt.Set {
		e.ExpiresAt = u.ExpiresAt.Value
	}
}
