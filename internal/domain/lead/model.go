package lead

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength    = 120
	MaxEmailLength   = 254
	MaxMessageLength = 4000
)

// Domain errors
var (
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrEmptyEmail     = errors.New("email cannot be empty")
	ErrInvalidEmail   = errors.New("email must contain '@'")
	ErrMessageTooLong = errors.New("message cannot exceed 4000 characters")
	ErrNameTooLong    = errors.New("name cannot exceed 120 characters")
	ErrEmailTooLong   = errors.New("email cannot exceed 254 characters")
	ErrLeadNotFound   = errors.New("lead not found")
)

// Lead is one inbound contact request from the public site.
type Lead struct {
	ID        string
	Name      string
	Email     string
	Business  string // optional company or project name
	Message   string
	CreatedAt time.Time
}

// Validate checks if the Lead has valid data.
// PRE: Lead struct is populated
// POST: Returns nil if valid, error otherwise
func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyName
	}
	if len(l.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if strings.TrimSpace(l.Email) == "" {
		return ErrEmptyEmail
	}
	if len(l.Email) > MaxEmailLength {
		return ErrEmailTooLong
	}
	if !strings.Contains(l.Email, "@") {
		return ErrInvalidEmail
	}
	if len(l.Message) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}
