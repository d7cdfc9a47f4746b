// Package notify delivers best-effort operator alerts about new contact
// submissions. Notifiers never return errors to the caller; every attempt
// ends in an Outcome that the caller logs and counts.
package notify

import (
	"context"
	"fmt"
)

type Status string

const (
	StatusSent    Status = "sent"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Contact is the submission content a notifier renders.
type Contact struct {
	Name    string
	Email   string
	Company *string
	Service *string
	Message string
}

// Outcome records how a single notification attempt ended. Err is set only
// when Status is StatusFailed.
type Outcome struct {
	Channel string
	Status  Status
	Err     error
}

func (o Outcome) Failed() bool { return o.Status == StatusFailed }

// NotificationError is a configured channel whose outbound call failed.
type NotificationError struct {
	Channel string
	Err     error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("%s notification failed: %v", e.Channel, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }

type Notifier interface {
	Name() string
	Notify(ctx context.Context, c Contact) Outcome
}

func sent(channel string) Outcome {
	return Outcome{Channel: channel, Status: StatusSent}
}

func skipped(channel string) Outcome {
	return Outcome{Channel: channel, Status: StatusSkipped}
}

func failed(channel string, err error) Outcome {
	return Outcome{Channel: channel, Status: StatusFailed, Err: &NotificationError{Channel: channel, Err: err}}
}
