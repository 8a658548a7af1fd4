package generator

import (
	"math/rand"
	"testing"

	"github.com/fquintieri/storegen/internal/config"
)

func fixedBounds() config.Generator {
	return config.Generator{
		Categories:          config.Range{Min: 10, Max: 10},
		Customers:           config.Range{Min: 100, Max: 100},
		Products:            config.Range{Min: 200, Max: 200},
		Orders:              config.Range{Min: 50, Max: 50},
		DeadProducts:        20,
		PhoneNullRate:       0.30,
		DescriptionNullRate: 0.20,
		SignupWindowDays:    730,
		OrderWindowDays:     365,
		PriceMinCents:       99,
		PriceMaxCents:       99999,
		StockMax:            500,
		BatchSize:           100,
	}
}

func TestPlanSizesFixedBounds(t *testing.T) {
	plan, err := PlanSizes(fixedBounds(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("PlanSizes failed: %v", err)
	}

	if plan.Categories != 10 {
		t.Errorf("expected 10 categories, got %d", plan.Categories)
	}
	if plan.EmptyCategoryID != 11 {
		t.Errorf("expected empty category id 11, got %d", plan.EmptyCategoryID)
	}
	if plan.Customers != 100 {
		t.Errorf("expected 100 customers, got %d", plan.Customers)
	}
	if plan.OrderlessCustomerID != 100 {
		t.Errorf("expected order-less customer id 100, got %d", plan.OrderlessCustomerID)
	}
	if plan.OrderableCustomers() != 99 {
		t.Errorf("expected orderable customer domain of 99, got %d", plan.OrderableCustomers())
	}
	if plan.SellableProducts() != 179 {
		t.Errorf("expected sellable product domain of 179, got %d", plan.SellableProducts())
	}
}

func TestPlanSizesWithinBounds(t *testing.T) {
	cfg := fixedBounds()
	cfg.Categories = config.Range{Min: 8, Max: 15}
	cfg.Orders = config.Range{Min: 40, Max: 90}

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		plan, err := PlanSizes(cfg, rng)
		if err != nil {
			t.Fatalf("PlanSizes failed: %v", err)
		}
		if plan.Categories < 8 || plan.Categories > 15 {
			t.Fatalf("categories %d outside bounds [8, 15]", plan.Categories)
		}
		if plan.Orders < 40 || plan.Orders > 90 {
			t.Fatalf("orders %d outside bounds [40, 90]", plan.Orders)
		}
		if plan.EmptyCategoryID != plan.Categories+1 {
			t.Fatalf("empty category id %d does not follow category count %d", plan.EmptyCategoryID, plan.Categories)
		}
	}
}

func TestPlanSizesRejectsBadBounds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Generator)
	}{
		{"min above max", func(g *config.Generator) { g.Customers = config.Range{Min: 50, Max: 10} }},
		{"zero min", func(g *config.Generator) { g.Orders = config.Range{Min: 0, Max: 10} }},
		{"dead zone swallows products", func(g *config.Generator) { g.DeadProducts = 199 }},
		{"negative dead zone", func(g *config.Generator) { g.DeadProducts = -1 }},
		{"single customer", func(g *config.Generator) { g.Customers = config.Range{Min: 1, Max: 1} }},
		{"bad null rate", func(g *config.Generator) { g.PhoneNullRate = 1.5 }},
		{"inverted prices", func(g *config.Generator) { g.PriceMinCents = 1000; g.PriceMaxCents = 10 }},
	}

	for _, tc := range cases {
		cfg := fixedBounds()
		tc.mutate(&cfg)
		if _, err := PlanSizes(cfg, rand.New(rand.NewSource(1))); err == nil {
			t.Errorf("%s: expected PlanSizes to fail, but it succeeded", tc.name)
		}
	}
}

func TestPlanSizesDifferentSeedsDifferentSizes(t *testing.T) {
	cfg := fixedBounds()
	cfg.Categories = config.Range{Min: 8, Max: 15}
	cfg.Customers = config.Range{Min: 800, Max: 1200}
	cfg.Products = config.Range{Min: 1500, Max: 2500}
	cfg.Orders = config.Range{Min: 4000, Max: 6000}

	a, err := PlanSizes(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("PlanSizes failed: %v", err)
	}
	b, err := PlanSizes(cfg, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("PlanSizes failed: %v", err)
	}

	if a == b {
		t.Errorf("two differently seeded plans produced identical sizes: %+v", a)
	}
}
