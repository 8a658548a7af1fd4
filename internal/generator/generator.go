// Package generator populates the store schema with a randomized but
// internally consistent dataset: long-tail customer and product selection,
// controlled null injection, and deliberately unreferenced rows. One run is
// one transaction; a failed run leaves nothing behind.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/fquintieri/storegen/internal/config"
	"github.com/fquintieri/storegen/internal/database"
	"github.com/fquintieri/storegen/internal/database/common"
)

type Generator struct {
	cfg     config.Generator
	adapter database.Adapter
	rng     *rand.Rand
	seed    int64
	now     time.Time
}

// line is one generated order line, kept in memory so the reconciliation
// pass can re-derive order totals without re-reading the database.
type line struct {
	orderID   int
	productID int
	quantity  int
	unitCents int
}

func New(cfg *config.Config, adapter database.Adapter, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg:     cfg.Generator,
		adapter: adapter,
		rng:     rand.New(rand.NewSource(seed)),
		seed:    seed,
		now:     time.Now().UTC(),
	}
}

// PlanOnly resolves the run sizes without touching the database.
func (g *Generator) PlanOnly() (Plan, error) {
	return PlanSizes(g.cfg, g.rng)
}

// Run executes the full generation batch: plan sizes, generate all five
// tables in dependency order, reconcile order totals, commit. Any failure
// (or context cancellation) rolls the whole run back.
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	plan, err := PlanSizes(g.cfg, g.rng)
	if err != nil {
		return nil, err
	}

	color.Cyan("🌱 Generating dataset (seed %d)", g.seed)
	color.Green("📊 Planned sizes: %d categories, %d customers, %d products, %d orders", plan.Categories, plan.Customers, plan.Products, plan.Orders)

	batch, err := g.adapter.Begin(ctx)
	if err != nil {
		return nil, err
	}
	color.Cyan("🔒 Transaction started")

	summary, err := g.generate(ctx, batch, plan)
	if err != nil {
		color.Yellow("🔄 Rolling back transaction...")
		if rbErr := batch.Rollback(ctx); rbErr != nil {
			return nil, fmt.Errorf("generation failed and rollback failed: %v (original: %w)", rbErr, err)
		}
		return nil, err
	}

	if err := batch.Commit(ctx); err != nil {
		batch.Rollback(ctx)
		return nil, fmt.Errorf("failed to commit generation: %w", err)
	}
	color.Cyan("🔓 Transaction committed")
	color.Green("\n✅ Dataset generated successfully")

	return summary, nil
}

func (g *Generator) generate(ctx context.Context, batch common.Batch, plan Plan) (*Summary, error) {
	stages := []struct {
		name string
		fn   func(context.Context, common.Batch, Plan) error
	}{
		{"categories", g.generateCategories},
		{"customers", g.generateCustomers},
	}
	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := stage.fn(ctx, batch, plan); err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", stage.name, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prices, err := g.generateProducts(ctx, batch, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to generate products: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.generateOrders(ctx, batch, plan); err != nil {
		return nil, fmt.Errorf("failed to generate orders: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lines, err := g.generateOrderItems(ctx, batch, plan, prices)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order items: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.reconcileTotals(ctx, batch, plan, lines); err != nil {
		return nil, fmt.Errorf("failed to reconcile order totals: %w", err)
	}

	return &Summary{
		Seed:        g.seed,
		GeneratedAt: g.now,
		Categories:  plan.Categories + 1,
		Customers:   plan.Customers,
		Products:    plan.Products,
		Orders:      plan.Orders,
		OrderItems:  len(lines),
	}, nil
}

// generateCategories inserts ids [1, C] plus the deliberately unreferenced
// empty category at C+1.
func (g *Generator) generateCategories(ctx context.Context, batch common.Batch, plan Plan) error {
	color.Cyan("  📝 Generating categories (%d + 1 empty)...", plan.Categories)

	rows := make([][]interface{}, 0, plan.Categories+1)
	for id := 1; id <= plan.Categories+1; id++ {
		rows = append(rows, []interface{}{
			id,
			categoryName(id),
			fmt.Sprintf("Everything in the %s department.", categoryName(id)),
		})
	}

	if err := g.insertChunked(ctx, batch, "categories", categoryColumns, rows); err != nil {
		return err
	}
	if err := batch.SetSequence(ctx, "categories", "category_id", plan.Categories+1); err != nil {
		return err
	}

	color.Green("  ✅ categories done")
	return nil
}

// generateCustomers inserts ids [1, N]. Customer N is reserved: order
// generation never samples it.
func (g *Generator) generateCustomers(ctx context.Context, batch common.Batch, plan Plan) error {
	color.Cyan("  📝 Generating customers (%d)...", plan.Customers)

	rows := make([][]interface{}, 0, plan.Customers)
	for id := 1; id <= plan.Customers; id++ {
		var phone interface{}
		if g.rng.Float64() >= g.cfg.PhoneNullRate {
			phone = randomPhone(g.rng)
		}
		rows = append(rows, []interface{}{
			id,
			customerName(id),
			customerEmail(id),
			phone,
			pastTimestamp(g.rng, g.now, g.cfg.SignupWindowDays),
			false,
		})
	}

	if err := g.insertChunked(ctx, batch, "customers", customerColumns, rows); err != nil {
		return err
	}
	if err := batch.SetSequence(ctx, "customers", "customer_id", plan.Customers); err != nil {
		return err
	}

	color.Green("  ✅ customers done")
	return nil
}

// generateProducts inserts ids [1, P], assigning categories only from the
// non-empty range [1, C]. It returns the generated price of every product in
// cents, indexed by product id, for the order line price snapshot.
func (g *Generator) generateProducts(ctx context.Context, batch common.Batch, plan Plan) ([]int, error) {
	color.Cyan("  📝 Generating products (%d, last %d never sold)...", plan.Products, plan.DeadProducts)

	prices := make([]int, plan.Products+1)
	rows := make([][]interface{}, 0, plan.Products)
	for id := 1; id <= plan.Products; id++ {
		cents := priceCents(g.rng, g.cfg.PriceMinCents, g.cfg.PriceMaxCents)
		prices[id] = cents

		var description interface{}
		if g.rng.Float64() >= g.cfg.DescriptionNullRate {
			description = randomSentence(g.rng, 6+g.rng.Intn(6))
		}

		rows = append(rows, []interface{}{
			id,
			productName(id),
			description,
			centsToAmount(cents),
			g.rng.Intn(g.cfg.StockMax + 1),
			1 + g.rng.Intn(plan.Categories),
			g.now,
		})
	}

	if err := g.insertChunked(ctx, batch, "products", productColumns, rows); err != nil {
		return nil, err
	}
	if err := batch.SetSequence(ctx, "products", "product_id", plan.Products); err != nil {
		return nil, err
	}

	color.Green("  ✅ products done")
	return prices, nil
}

// generateOrders inserts ids [1, O] with totals left at zero; the
// reconciliation pass fills them in once all lines exist. Customer selection
// is power-law skewed over [1, N-1].
func (g *Generator) generateOrders(ctx context.Context, batch common.Batch, plan Plan) error {
	color.Cyan("  📝 Generating order headers (%d)...", plan.Orders)

	rows := make([][]interface{}, 0, plan.Orders)
	for id := 1; id <= plan.Orders; id++ {
		rows = append(rows, []interface{}{
			id,
			powerLawID(g.rng, plan.OrderableCustomers()),
			pastDate(g.rng, g.now, g.cfg.OrderWindowDays),
			0.0,
		})
	}

	if err := g.insertChunked(ctx, batch, "orders", orderColumns, rows); err != nil {
		return err
	}
	if err := batch.SetSequence(ctx, "orders", "order_id", plan.Orders); err != nil {
		return err
	}

	color.Green("  ✅ order headers done")
	return nil
}

// generateOrderItems draws a line count per order, then a quantity and a
// power-law product id per line, restricted to the sellable range. Unit
// prices are snapshots of the product price at generation time. Line ids are
// a single dense counter across all orders. An order repeating the same
// product on two lines is accepted as-is.
func (g *Generator) generateOrderItems(ctx context.Context, batch common.Batch, plan Plan, prices []int) ([]line, error) {
	color.Cyan("  📝 Generating order lines...")

	var lines []line
	var rows [][]interface{}
	lineID := 0
	for orderID := 1; orderID <= plan.Orders; orderID++ {
		count := lineCount(g.rng)
		for i := 0; i < count; i++ {
			productID := powerLawID(g.rng, plan.SellableProducts())
			qty := quantity(g.rng)
			lineID++

			lines = append(lines, line{
				orderID:   orderID,
				productID: productID,
				quantity:  qty,
				unitCents: prices[productID],
			})
			rows = append(rows, []interface{}{
				lineID,
				orderID,
				productID,
				qty,
				centsToAmount(prices[productID]),
			})
		}
	}

	if err := g.insertChunked(ctx, batch, "order_items", orderItemColumns, rows); err != nil {
		return nil, err
	}
	if err := batch.SetSequence(ctx, "order_items", "order_item_id", lineID); err != nil {
		return nil, err
	}

	color.Green("  ✅ order lines done (%d)", lineID)
	return lines, nil
}

// reconcileTotals is the second pass over the generated lines: sum
// quantity × unit price per order in integer cents and write each header's
// total exactly once.
func (g *Generator) reconcileTotals(ctx context.Context, batch common.Batch, plan Plan, lines []line) error {
	color.Cyan("  📝 Reconciling order totals...")

	totals := make(map[int]int, plan.Orders)
	for _, l := range lines {
		totals[l.orderID] += l.quantity * l.unitCents
	}

	for orderID := 1; orderID <= plan.Orders; orderID++ {
		if err := batch.UpdateOrderTotal(ctx, orderID, centsToAmount(totals[orderID])); err != nil {
			return err
		}
	}

	color.Green("  ✅ totals reconciled")
	return nil
}

func (g *Generator) insertChunked(ctx context.Context, batch common.Batch, table string, columns []string, rows [][]interface{}) error {
	size := g.cfg.BatchSize
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		if err := batch.InsertRows(ctx, table, columns, rows[start:end]); err != nil {
			return err
		}
	}
	return nil
}
