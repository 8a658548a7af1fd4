package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/fquintieri/storegen/internal/database/common"
	_ "github.com/mattn/go-sqlite3"
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

func (s *Adapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dbPath, "?") {
		dbPath += "?cache=shared&_journal_mode=WAL&_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// A single writer keeps the whole run on one connection, so the
	// transaction spans every stage.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping SQLite: %w", err)
	}

	s.db = db
	return nil
}

func (s *Adapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Adapter) ApplySchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (s *Adapter) DropSchema(ctx context.Context) error {
	for i := len(common.Tables) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", common.Tables[i])
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", common.Tables[i], err)
		}
	}
	return nil
}

func (s *Adapter) TruncateAll(ctx context.Context) error {
	for i := len(common.Tables) - 1; i >= 0; i-- {
		table := common.Tables[i]
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
		// Reset the rowid counter; the table may never have had one.
		s.db.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = ?", table)
	}
	return nil
}

func (s *Adapter) CountRows(ctx context.Context, table string) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

func (s *Adapter) QueryValue(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var value int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		return 0, err
	}
	return value, nil
}

func (s *Adapter) Begin(ctx context.Context) (common.Batch, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &Batch{tx: tx, qb: s.qb}, nil
}

type Batch struct {
	tx *sql.Tx
	qb squirrel.StatementBuilderType
}

// maxHostParameters is SQLite's default bound-parameter limit per statement;
// inserts are chunked to stay under it.
const maxHostParameters = 999

func (b *Batch) InsertRows(ctx context.Context, table string, columns []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	chunkRows := maxHostParameters / len(columns)
	if chunkRows < 1 {
		chunkRows = 1
	}

	for start := 0; start < len(rows); start += chunkRows {
		end := start + chunkRows
		if end > len(rows) {
			end = len(rows)
		}

		builder := b.qb.Insert(table).Columns(columns...)
		for _, row := range rows[start:end] {
			builder = builder.Values(row...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert for %s: %w", table, err)
		}
		if _, err := b.tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
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

// SetSequence is a no-op: SQLite's next rowid is always max(rowid)+1, which
// already follows the explicitly assigned ids.
func (b *Batch) SetSequence(ctx context.Context, table, column string, value int) error {
	return nil
}

func (b *Batch) Commit(ctx context.Context) error {
	return b.tx.Commit()
}

func (b *Batch) Rollback(ctx context.Context) error {
	return b.tx.Rollback()
}
