package generator

import (
	"fmt"
	"math/rand"

	"github.com/fquintieri/storegen/internal/config"
)

// Plan fixes every randomized size for one generation run. It is resolved
// once, before any insert, and passed by value to every stage so all stages
// agree on totals and reserved ids.
type Plan struct {
	Categories   int
	Customers    int
	Products     int
	Orders       int
	DeadProducts int

	// EmptyCategoryID is the one category no product ever references.
	EmptyCategoryID int

	// OrderlessCustomerID is the one customer no order ever references.
	OrderlessCustomerID int
}

// PlanSizes draws the per-entity totals uniformly from the configured bounds
// and derives the reserved ids.
func PlanSizes(cfg config.Generator, rng *rand.Rand) (Plan, error) {
	if err := cfg.Validate(); err != nil {
		return Plan{}, fmt.Errorf("invalid generator bounds: %w", err)
	}

	plan := Plan{
		Categories:   drawBetween(rng, cfg.Categories),
		Customers:    drawBetween(rng, cfg.Customers),
		Products:     drawBetween(rng, cfg.Products),
		Orders:       drawBetween(rng, cfg.Orders),
		DeadProducts: cfg.DeadProducts,
	}
	plan.EmptyCategoryID = plan.Categories + 1
	plan.OrderlessCustomerID = plan.Customers

	if plan.SellableProducts() < 1 {
		return Plan{}, fmt.Errorf("dead product count %d leaves no sellable products out of %d", plan.DeadProducts, plan.Products)
	}

	return plan, nil
}

// SellableProducts is the size of the product id domain order lines may draw
// from. The id just below the dead zone is excluded along with the zone
// itself, so the domain is [1, P-K-1].
func (p Plan) SellableProducts() int {
	return p.Products - p.DeadProducts - 1
}

// OrderableCustomers is the size of the customer id domain order headers may
// draw from, excluding the reserved order-less customer.
func (p Plan) OrderableCustomers() int {
	return p.Customers - 1
}

func drawBetween(rng *rand.Rand, r config.Range) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}
