package domain

import (
	"regexp"
	"time"
)

const (
	MaxUsernameLength = 150
	MinPasswordLength = 8
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// ValidUsername reports whether s is an acceptable username: 1-150 letters,
// digits or @ . + - _ characters.
func ValidUsername(s string) bool {
	return len(s) <= MaxUsernameLength && usernamePattern.MatchString(s)
}

// User models an account that can authenticate against the API.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Groups       []string  `json:"groups"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"date_joined"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate checks the invariants every persisted user must hold.
func (u *User) Validate() error {
	ve := &ValidationError{}
	if u.Username == "" {
		ve.Add("username", "this field may not be blank")
	} else if !ValidUsername(u.Username) {
		ve.Add("username", "enter a valid username: letters, digits and @/./+/-/_ only, at most 150 characters")
	}
	if u.PasswordHash == "" {
		ve.Add("password", "this field may not be blank")
	}
	return ve.OrNil()
}
