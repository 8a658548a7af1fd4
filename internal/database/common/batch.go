// Package common holds the types shared by the provider adapters.
package common

import "context"

// Tables lists the generated tables in insertion (dependency) order.
// Truncation and drops walk it in reverse.
var Tables = []string{"categories", "customers", "products", "orders", "order_items"}

// Batch is the transactional write surface of one generation run. Nothing
// written through it is visible until Commit.
type Batch interface {
	InsertRows(ctx context.Context, table string, columns []string, rows [][]interface{}) error
	UpdateOrderTotal(ctx context.Context, orderID int, total float64) error

	// SetSequence advances the identity sequence of a table past the
	// explicitly assigned ids. Providers whose engines track the maximum
	// inserted id themselves treat this as a no-op.
	SetSequence(ctx context.Context, table, column string, value int) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
