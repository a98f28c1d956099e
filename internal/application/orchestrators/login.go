package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"datao/internal/domain/client"
)

// ClientStoreForLogin defines the store interface needed by Login.
type ClientStoreForLogin interface {
	List(ctx context.Context) ([]client.Client, error)
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	AccessCode string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	ClientID   string
	ClientName string
	Dashboard  string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	ClientStore ClientStoreForLogin
}

var ErrInvalidAccessCode = errors.New("invalid access code")

// ExecuteLogin matches an access code against the client directory and
// returns client info for session creation. Codes are case-insensitive.
// PRE: deps.ClientStore is non-nil
// POST: Returns client info on success; callers cannot distinguish an
// unknown code from a wrong one
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if strings.TrimSpace(input.AccessCode) == "" {
		return LoginResult{}, ErrInvalidAccessCode
	}

	clients, err := deps.ClientStore.List(ctx)
	if err != nil {
		return LoginResult{}, fmt.Errorf("load client directory: %w", err)
	}

	for _, c := range clients {
		if c.CheckAccessCode(input.AccessCode) != nil {
			continue
		}
		slog.Info("auth_event", "event", "login_success", "client", c.ID, "dashboard", c.Dashboard)
		return LoginResult{
			ClientID:   c.ID,
			ClientName: c.Name,
			Dashboard:  c.Dashboard,
		}, nil
	}

	slog.Info("auth_event", "event", "login_failed", "reason", "unknown_code")
	return LoginResult{}, ErrInvalidAccessCode
}
