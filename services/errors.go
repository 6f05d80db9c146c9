package services

import "errors"

var (
	// ErrInvalidCredentials is returned for unknown users, wrong passwords
	// and role mismatches alike
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAdminLimit is returned when creating an admin beyond the configured cap
	ErrAdminLimit = errors.New("admin limit reached")

	// ErrInvalidFile is returned for uploads that are not VIP scripts
	ErrInvalidFile = errors.New("only VIP.js files are allowed")
)
