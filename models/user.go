package models

import (
	"strings"
)

// Role is the authorization role of a user
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents an account that can sign in
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserForm represents form data for creating users
type UserForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Validate validates the user form and applies the default role
func (f *UserForm) Validate() error {
	var errs ValidationErrors

	f.Username = strings.TrimSpace(f.Username)
	validateUsername(&errs, f.Username)
	validatePassword(&errs, f.Password)

	if f.Role == "" {
		f.Role = RoleUser
	}
	if f.Role != RoleAdmin && f.Role != RoleUser {
		errs.add("role", "Role must be admin or user")
	}

	return errs.orNil()
}

// UserUpdateForm represents form data for updating users
type UserUpdateForm struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// Validate validates the set fields of the update form
func (f *UserUpdateForm) Validate() error {
	var errs ValidationErrors

	if f.Username != nil {
		name := strings.TrimSpace(*f.Username)
		f.Username = &name
		validateUsername(&errs, name)
	}
	if f.Password != nil {
		validatePassword(&errs, *f.Password)
	}

	return errs.orNil()
}

// LoginForm represents the credentials posted to the login routes
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the login form
func (f *LoginForm) Validate() error {
	var errs ValidationErrors
	if f.Username == "" || f.Password == "" {
		errs.add("username", "Username and password are required")
	}
	return errs.orNil()
}

func validateUsername(errs *ValidationErrors, name string) {
	if len(name) < 3 || len(name) > 50 {
		errs.add("username", "Username must be between 3 and 50 characters")
	}
}

func validatePassword(errs *ValidationErrors, password string) {
	if len(password) < 6 || len(password) > 100 {
		errs.add("password", "Password must be between 6 and 100 characters")
	}
}
