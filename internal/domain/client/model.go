package client

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Dashboard type constants. Each client account unlocks exactly one
// dashboard.
const (
	DashboardPadel = "padel"
	DashboardSales = "sales"
)

// ValidDashboards contains all valid dashboard type values.
var ValidDashboards = []string{DashboardPadel, DashboardSales}

// Domain errors
var (
	ErrEmptyName        = errors.New("client name cannot be empty")
	ErrInvalidDashboard = errors.New("dashboard must be one of: padel, sales")
	ErrEmptyAccessCode  = errors.New("access code cannot be empty")
	ErrWrongAccessCode  = errors.New("incorrect access code")
)

// Client holds state for one portal client account.
type Client struct {
	ID         string
	Name       string
	Dashboard  string // padel, sales
	AccessHash string
}

// Validate checks if the Client has valid data.
// PRE: Client struct is populated
// POST: Returns nil if valid, error otherwise
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if !isValidDashboard(c.Dashboard) {
		return ErrInvalidDashboard
	}
	return nil
}

// SetAccessCode hashes and stores an access code using bcrypt with cost 12.
// Codes are case-insensitive, so the canonical form is hashed.
// PRE: code is non-empty
// POST: AccessHash is set to the bcrypt hash of the canonical code
func (c *Client) SetAccessCode(code string) error {
	canonical := CanonicalCode(code)
	if canonical == "" {
		return ErrEmptyAccessCode
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(canonical), 12)
	if err != nil {
		return err
	}
	c.AccessHash = string(hash)
	return nil
}

// CheckAccessCode verifies an access code against the stored hash.
// INVARIANT: Client fields are not mutated
func (c *Client) CheckAccessCode(code string) error {
	if c.AccessHash == "" {
		return ErrWrongAccessCode
	}
	err := bcrypt.CompareHashAndPassword([]byte(c.AccessHash), []byte(CanonicalCode(code)))
	if err != nil {
		return ErrWrongAccessCode
	}
	return nil
}

// CanonicalCode trims and uppercases an access code.
func CanonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func isValidDashboard(dashboard string) bool {
	for _, d := range ValidDashboards {
		if d == dashboard {
			return true
		}
	}
	return false
}
