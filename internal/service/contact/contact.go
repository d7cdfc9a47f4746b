package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Alijeyrad/datalux_backend/internal/notify"
	"github.com/Alijeyrad/datalux_backend/internal/repo"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Email   string  `json:"email" validate:"required,max=255,email"`
	Company *string `json:"company" validate:"omitempty,max=255"`
	Service *string `json:"service" validate:"omitempty,max=255"`
	Message string  `json:"message" validate:"required"`

	// Request metadata, never client supplied. Empty means unknown.
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Submit(ctx context.Context, req CreateRequest) (*repo.ContactSubmission, error)
}

type Store interface {
	CreateContactSubmission(ctx context.Context, n repo.NewContactSubmission) (*repo.ContactSubmission, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	store     Store
	notifiers []notify.Notifier

	submissions   metric.Int64Counter
	notifications metric.Int64Counter
}

func New(store Store, notifiers ...notify.Notifier) Service {
	meter := otel.Meter("github.com/Alijeyrad/datalux_backend/internal/service/contact")
	submissions, _ := meter.Int64Counter(
		"contact_submissions_total",
		metric.WithDescription("Contact form submissions by result"),
	)
	notifications, _ := meter.Int64Counter(
		"contact_notifications_total",
		metric.WithDescription("Notification attempts by channel and status"),
	)
	return &contactService{
		store:         store,
		notifiers:     notifiers,
		submissions:   submissions,
		notifications: notifications,
	}
}

// Submit validates, persists, then notifies. Only validation and storage
// failures are returned; notification outcomes are logged and dropped.
func (s *contactService) Submit(ctx context.Context, req CreateRequest) (*repo.ContactSubmission, error) {
	if err := req.Validate(); err != nil {
		s.countSubmission(ctx, "invalid")
		return nil, err
	}

	// A client hanging up must not abort the write or the notifications.
	ctx = context.WithoutCancel(ctx)

	rec, err := s.store.CreateContactSubmission(ctx, repo.NewContactSubmission{
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Service:   req.Service,
		Message:   req.Message,
		IPAddress: metadata(req.IPAddress, repo.MaxIPAddressLen),
		UserAgent: metadata(req.UserAgent, repo.MaxUserAgentLen),
	})
	if err != nil {
		s.countSubmission(ctx, "error")
		slog.ErrorContext(ctx, "error processing contact form", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.countSubmission(ctx, "saved")
	slog.InfoContext(ctx, "contact form submission saved", "id", rec.ID, "name", rec.Name)

	s.notifyAll(ctx, notify.Contact{
		Name:    rec.Name,
		Email:   rec.Email,
		Company: rec.Company,
		Service: rec.Service,
		Message: rec.Message,
	})

	return rec, nil
}

// notifyAll runs every notifier concurrently and waits for all of them.
// Each notifier bounds its own call.
func (s *contactService) notifyAll(ctx context.Context, c notify.Contact) {
	var wg conc.WaitGroup
	for _, n := range s.notifiers {
		wg.Go(func() {
			s.record(ctx, n.Notify(ctx, c))
		})
	}
	if r := wg.WaitAndRecover(); r != nil {
		slog.ErrorContext(ctx, "notifier panicked", "panic", r.Value, "stack", string(r.Stack))
	}
}

func (s *contactService) record(ctx context.Context, out notify.Outcome) {
	s.notifications.Add(ctx, 1, metric.WithAttributes(
		attribute.String("channel", out.Channel),
		attribute.String("status", string(out.Status)),
	))
	if out.Failed() {
		slog.ErrorContext(ctx, "notification failed", "channel", out.Channel, "error", out.Err)
	}
}

func (s *contactService) countSubmission(ctx context.Context, result string) {
	s.submissions.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// metadata trims server-derived values to their column size instead of
// rejecting the request.
func metadata(v string, limit int) *string {
	if v == "" {
		return nil
	}
	if r := []rune(v); len(r) > limit {
		v = string(r[:limit])
	}
	return &v
}
