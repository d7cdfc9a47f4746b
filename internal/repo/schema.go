package repo

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	TableContactSubmissions = "contact_submissions"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldCompany   = "company"
	FieldService   = "service"
	FieldMessage   = "message"
	FieldIPAddress = "ip_address"
	FieldUserAgent = "user_agent"
	FieldCreatedAt = "created_at"
)

// Column limits shared with request validation.
const (
	MaxNameLen      = 255
	MaxEmailLen     = 255
	MaxCompanyLen   = 255
	MaxServiceLen   = 255
	MaxIPAddressLen = 45 // IPv6 textual form
	MaxUserAgentLen = 500
)

var (
	// ContactSubmissionsColumns holds the columns for the "contact_submissions" table.
	ContactSubmissionsColumns = []*schema.Column{
		{Name: FieldID, Type: field.TypeInt64, Increment: true},
		{Name: FieldName, Type: field.TypeString, Size: MaxNameLen},
		{Name: FieldEmail, Type: field.TypeString, Size: MaxEmailLen},
		{Name: FieldCompany, Type: field.TypeString, Nullable: true, Size: MaxCompanyLen},
		{Name: FieldService, Type: field.TypeString, Nullable: true, Size: MaxServiceLen},
		{Name: FieldMessage, Type: field.TypeString, Size: 2147483647},
		{Name: FieldIPAddress, Type: field.TypeString, Nullable: true, Size: MaxIPAddressLen},
		{Name: FieldUserAgent, Type: field.TypeString, Nullable: true, Size: MaxUserAgentLen},
		{Name: FieldCreatedAt, Type: field.TypeTime, SchemaType: map[string]string{dialect.Postgres: "timestamptz"}},
	}
	// ContactSubmissionsTable holds the schema information for the "contact_submissions" table.
	ContactSubmissionsTable = &schema.Table{
		Name:       TableContactSubmissions,
		Columns:    ContactSubmissionsColumns,
		PrimaryKey: []*schema.Column{ContactSubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contactsubmission_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactSubmissionsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContactSubmissionsTable,
	}
)

// Migrate creates or upgrades every table. Columns and indexes are never
// dropped.
func Migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("run migration: %w", err)
	}
	return nil
}
