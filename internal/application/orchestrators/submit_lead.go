package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"datao/internal/adapters/email"
	"datao/internal/domain/lead"
)

// LeadStoreForSubmit defines the store interface needed by SubmitLead.
type LeadStoreForSubmit interface {
	Save(ctx context.Context, l lead.Lead) error
}

// SubmitLeadInput carries input for the lead submission orchestrator.
type SubmitLeadInput struct {
	Name     string
	Email    string
	Business string
	Message  string
}

// ErrInvalidLead wraps the domain validation failure so callers can map it
// to a client error.
var ErrInvalidLead = errors.New("invalid lead")

// SubmitLeadDeps holds dependencies for SubmitLead.
type SubmitLeadDeps struct {
	LeadStore  LeadStoreForSubmit
	Email      email.Sender
	NotifyTo   string // inbox for new-lead notifications; empty disables them
	GenerateID func() string
	Now        func() time.Time
}

func (d *SubmitLeadDeps) fill() {
	if d.GenerateID == nil {
		d.GenerateID = func() string { return uuid.New().String() }
	}
	if d.Now == nil {
		d.Now = time.Now
	}
}

// ExecuteSubmitLead validates and stores an inbound contact request, then
// notifies the team inbox. Notification failures are logged, not returned:
// the lead is already persisted.
// PRE: deps.LeadStore is non-nil
// POST: lead saved on success; notification attempted when configured
func ExecuteSubmitLead(ctx context.Context, input SubmitLeadInput, deps SubmitLeadDeps) (lead.Lead, error) {
	deps.fill()

	l := lead.Lead{
		ID:        deps.GenerateID(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Business:  strings.TrimSpace(input.Business),
		Message:   strings.TrimSpace(input.Message),
		CreatedAt: deps.Now(),
	}
	if err := l.Validate(); err != nil {
		return lead.Lead{}, fmt.Errorf("%w: %w", ErrInvalidLead, err)
	}

	if err := deps.LeadStore.Save(ctx, l); err != nil {
		return lead.Lead{}, fmt.Errorf("save lead: %w", err)
	}

	slog.Info("lead_event", "event", "lead_created", "lead_id", l.ID, "business", l.Business)

	if deps.Email != nil && deps.NotifyTo != "" {
		_, err := deps.Email.Send(ctx, email.SendRequest{
			To:      []string{deps.NotifyTo},
			Subject: fmt.Sprintf("New lead: %s", l.Name),
			HTML:    leadNotificationHTML(l),
			ReplyTo: l.Email,
		})
		if err != nil {
			slog.Error("lead_event", "event", "notify_failed", "lead_id", l.ID, "error", err)
		}
	}

	return l, nil
}

func leadNotificationHTML(l lead.Lead) string {
	var b strings.Builder
	b.WriteString("<h2>New lead</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(l.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(l.Email))
	if l.Business != "" {
		fmt.Fprintf(&b, "<p><strong>Business:</strong> %s</p>", html.EscapeString(l.Business))
	}
	if l.Message != "" {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(l.Message))
	}
	return b.String()
}
