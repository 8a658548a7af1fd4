package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/fquintieri/storegen/internal/database/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

type Adapter struct {
	pool *pgxpool.Pool
	qb   squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	p.pool = pool
	return nil
}

func (p *Adapter) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Adapter) ApplySchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (p *Adapter) DropSchema(ctx context.Context) error {
	for i := len(common.Tables) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", common.Tables[i])
		if _, err := p.pool.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", common.Tables[i], err)
		}
	}
	_, err := p.pool.Exec(ctx, "DROP FUNCTION IF EXISTS refresh_product_updated_at()")
	return err
}

func (p *Adapter) TruncateAll(ctx context.Context) error {
	for i := len(common.Tables) - 1; i >= 0; i-- {
		query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", common.Tables[i])
		if _, err := p.pool.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", common.Tables[i], err)
		}
	}
	return nil
}

func (p *Adapter) CountRows(ctx context.Context, table string) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := p.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

func (p *Adapter) QueryValue(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var value int64
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return 0, err
	}
	return value, nil
}

func (p *Adapter) Begin(ctx context.Context) (common.Batch, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &Batch{tx: tx, qb: p.qb}, nil
}

// Batch writes through a single pgx transaction, using COPY for bulk loads.
type Batch struct {
	tx pgx.Tx
	qb squirrel.StatementBuilderType
}

func (b *Batch) InsertRows(ctx context.Context, table string, columns []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := b.tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy into %s: %w", table, err)
	}
	return nil
}

func (b *Batch) UpdateOrderTotal(ctx context.Context, orderID int, total float64) error {
	query, args, err := b.qb.
		Update("orders").
		Set("total_amount", total).
		Where(squirrel.Eq{"order_id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update for order %d: %w", orderID, err)
	}
	if _, err := b.tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update total for order %d: %w", orderID, err)
	}
	return nil
}

func (b *Batch) SetSequence(ctx context.Context, table, column string, value int) error {
	query := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', '%s'), %d, true)", table, column, value)
	if _, err := b.tx.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to advance sequence for %s.%s: %w", table, column, err)
	}
	return nil
}

func (b *Batch) Commit(ctx context.Context) error {
	return b.tx.Commit(ctx)
}

func (b *Batch) Rollback(ctx context.Context) error {
	return b.tx.Rollback(ctx)
}
