package repo

import (
	"context"
	"database/sql"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/Alijeyrad/datalux_backend/pkg/database"
)

// Client is the Postgres-backed submission store.
type Client struct {
	db  *sql.DB
	drv *entsql.Driver
}

func NewClient(db *sql.DB) *Client {
	return &Client{db: db, drv: database.NewDriver(db)}
}

// Driver exposes the ent driver for schema migration.
func (c *Client) Driver() *entsql.Driver {
	return c.drv
}

func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Client) Close() error {
	return c.drv.Close()
}
