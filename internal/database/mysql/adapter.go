package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/fquintieri/storegen/internal/database/common"
	_ "github.com/go-sql-driver/mysql"
)

type Adapter struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (m *Adapter) Connect(ctx context.Context, url string) error {
	dsn := strings.TrimPrefix(url, "mysql://")
	if !strings.Contains(dsn, "parseTime") {
		if strings.Contains(dsn, "?") {
			dsn += "&parseTime=true"
		} else {
			dsn += "?parseTime=true"
		}
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(15 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping MySQL: %w", err)
	}

	m.db = db
	return nil
}

func (m *Adapter) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *Adapter) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *Adapter) ApplySchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (m *Adapter) DropSchema(ctx context.Context) error {
	for i := len(common.Tables) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", common.Tables[i])
		if _, err := m.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", common.Tables[i], err)
		}
	}
	return nil
}

func (m *Adapter) TruncateAll(ctx context.Context) error {
	// TRUNCATE refuses tables referenced by foreign keys, so delete in
	// reverse dependency order and reset the counters instead.
	for i := len(common.Tables) - 1; i >= 0; i-- {
		table := common.Tables[i]
		if _, err := m.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
		if _, err := m.db.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s AUTO_INCREMENT = 1", table)); err != nil {
			return fmt.Errorf("failed to reset auto_increment on %s: %w", table, err)
		}
	}
	return nil
}

func (m *Adapter) CountRows(ctx context.Context, table string) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := m.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

func (m *Adapter) QueryValue(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var value int64
	if err := m.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		return 0, err
	}
	return value, nil
}

func (m *Adapter) Begin(ctx context.Context) (common.Batch, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &Batch{tx: tx, qb: m.qb}, nil
}

type Batch struct {
	tx *sql.Tx
	qb squirrel.StatementBuilderType
}

func (b *Batch) InsertRows(ctx context.Context, table string, columns []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	builder := b.qb.Insert(table).Columns(columns...)
	for _, row := range rows {
		builder = builder.Values(row...)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", table, err)
	}
	if _, err := b.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
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
	if _, err := b.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update total for order %d: %w", orderID, err)
	}
	return nil
}

// SetSequence is a no-op: InnoDB advances AUTO_INCREMENT past explicitly
// inserted ids on its own, and ALTER TABLE would implicitly commit the
// surrounding transaction.
func (b *Batch) SetSequence(ctx context.Context, table, column string, value int) error {
	return nil
}

func (b *Batch) Commit(ctx context.Context) error {
	return b.tx.Commit()
}

func (b *Batch) Rollback(ctx context.Context) error {
	return b.tx.Rollback()
}
