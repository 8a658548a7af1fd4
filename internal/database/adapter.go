package database

import (
	"context"

	"github.com/fquintieri/storegen/internal/database/common"
	"github.com/fquintieri/storegen/internal/database/mysql"
	"github.com/fquintieri/storegen/internal/database/postgres"
	"github.com/fquintieri/storegen/internal/database/sqlite"
)

// Tables lists the generated tables in insertion (dependency) order.
var Tables = common.Tables

type Adapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// Schema management
	ApplySchema(ctx context.Context) error
	DropSchema(ctx context.Context) error
	TruncateAll(ctx context.Context) error

	// Read-side helpers for verification and summaries
	CountRows(ctx context.Context, table string) (int64, error)
	QueryValue(ctx context.Context, query string, args ...interface{}) (int64, error)

	// Begin opens the single transaction a generation run writes through.
	Begin(ctx context.Context) (common.Batch, error)
}

func NewAdapter(provider string) Adapter {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New()
	case "mysql":
		return mysql.New()
	case "sqlite", "sqlite3":
		return sqlite.New()
	default:
		return postgres.New()
	}
}
