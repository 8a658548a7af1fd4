// Package verify runs invariant checks against a populated dataset: the
// reserved dead entities exist, sampling exclusions held, and reconciled
// totals match their lines.
package verify

import (
	"context"
	"strconv"

	"github.com/fquintieri/storegen/internal/database"
)

type Check struct {
	Name  string
	Query string
	Args  []interface{}
	Want  int64
}

type Result struct {
	Check Check
	Got   int64
	Err   error
}

func (r Result) Passed() bool {
	return r.Err == nil && r.Got == r.Check.Want
}

// Checks builds the invariant checks. deadProducts is the configured count
// of trailing never-sold product ids.
func Checks(deadProducts int) []Check {
	return []Check{
		{
			Name: "exactly one customer has no orders",
			Query: `SELECT COUNT(*) FROM customers c
				WHERE NOT EXISTS (SELECT 1 FROM orders o WHERE o.customer_id = c.customer_id)`,
			Want: 1,
		},
		{
			Name: "the order-less customer has the highest id",
			Query: `SELECT COUNT(*) FROM orders o
				WHERE o.customer_id = (SELECT MAX(customer_id) FROM customers)`,
			Want: 0,
		},
		{
			Name: "exactly one category has no products",
			Query: `SELECT COUNT(*) FROM categories c
				WHERE NOT EXISTS (SELECT 1 FROM products p WHERE p.category_id = c.category_id)`,
			Want: 1,
		},
		{
			Name: "the empty category has the highest id",
			Query: `SELECT COUNT(*) FROM products p
				WHERE p.category_id = (SELECT MAX(category_id) FROM categories)`,
			Want: 0,
		},
		{
			Name: "no order line references the dead product range",
			Query: `SELECT COUNT(*) FROM order_items oi
				WHERE oi.product_id > (SELECT MAX(product_id) FROM products) - ? - 1`,
			Args: []interface{}{deadProducts},
			Want: 0,
		},
		{
			Name: "every order has at least one line",
			Query: `SELECT COUNT(*) FROM orders o
				WHERE NOT EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.order_id)`,
			Want: 0,
		},
		{
			Name: "every order total matches the sum of its lines",
			Query: `SELECT COUNT(*) FROM orders o
				WHERE ABS(o.total_amount - (SELECT COALESCE(SUM(oi.quantity * oi.unit_price), -1)
					FROM order_items oi WHERE oi.order_id = o.order_id)) > 0.005`,
			Want: 0,
		},
		{
			Name: "every line quantity lies within [1, 10]",
			Query: `SELECT COUNT(*) FROM order_items
				WHERE quantity < 1 OR quantity > 10`,
			Want: 0,
		},
	}
}

// Run executes every check and reports per-check results plus overall pass.
func Run(ctx context.Context, adapter database.Adapter, provider string, deadProducts int) ([]Result, bool) {
	checks := Checks(deadProducts)
	results := make([]Result, 0, len(checks))
	ok := true

	for _, check := range checks {
		query := check.Query
		if provider == "postgresql" || provider == "postgres" {
			query = rebindDollar(query)
		}
		got, err := adapter.QueryValue(ctx, query, check.Args...)
		result := Result{Check: check, Got: got, Err: err}
		if !result.Passed() {
			ok = false
		}
		results = append(results, result)
	}

	return results, ok
}

// rebindDollar rewrites ? placeholders as $1, $2, ... for pgx.
func rebindDollar(query string) string {
	var out []byte
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			out = append(out, '$')
			out = append(out, strconv.Itoa(n)...)
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}
