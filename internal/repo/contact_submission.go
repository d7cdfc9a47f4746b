package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// ContactSubmission is a persisted contact-form record. Records are
// append-only; nothing in this service updates or deletes them.
type ContactSubmission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   *string   `json:"company"`
	Service   *string   `json:"service"`
	Message   string    `json:"message"`
	IPAddress *string   `json:"-"`
	UserAgent *string   `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContactSubmission is a validated payload plus request metadata that has
// not been assigned an id yet.
type NewContactSubmission struct {
	Name      string
	Email     string
	Company   *string
	Service   *string
	Message   string
	IPAddress *string
	UserAgent *string
}

// CreateContactSubmission inserts the record and returns it with the id and
// created_at assigned. A single INSERT ... RETURNING statement leaves no
// partial row behind on failure.
func (c *Client) CreateContactSubmission(ctx context.Context, n NewContactSubmission) (*ContactSubmission, error) {
	now := time.Now().UTC()

	query, args := entsql.Dialect(dialect.Postgres).
		Insert(TableContactSubmissions).
		Columns(FieldName, FieldEmail, FieldCompany, FieldService, FieldMessage, FieldIPAddress, FieldUserAgent, FieldCreatedAt).
		Values(n.Name, n.Email, n.Company, n.Service, n.Message, n.IPAddress, n.UserAgent, now).
		Returning(FieldID, FieldCreatedAt).
		Query()

	var rows entsql.Rows
	if err := c.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("%w: insert contact submission: %w", ErrStorage, err)
	}
	defer rows.Close()

	if !rows.Next() {
		err := rows.Err()
		if err == nil {
			err = errors.New("no row returned")
		}
		return nil, fmt.Errorf("%w: insert contact submission: %w", ErrStorage, err)
	}

	out := &ContactSubmission{
		Name:      n.Name,
		Email:     n.Email,
		Company:   n.Company,
		Service:   n.Service,
		Message:   n.Message,
		IPAddress: n.IPAddress,
		UserAgent: n.UserAgent,
	}
	if err := rows.Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: scan contact submission: %w", ErrStorage, err)
	}
	return out, nil
}
