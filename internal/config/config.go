package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Version   string    `json:"version" mapstructure:"version"`
	Database  Database  `json:"database" mapstructure:"database"`
	Generator Generator `json:"generator" mapstructure:"generator"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

// Range is an inclusive [Min, Max] bound for a randomized row count.
type Range struct {
	Min int `json:"min" mapstructure:"min"`
	Max int `json:"max" mapstructure:"max"`
}

type Generator struct {
	Categories Range `json:"categories" mapstructure:"categories"`
	Customers  Range `json:"customers" mapstructure:"customers"`
	Products   Range `json:"products" mapstructure:"products"`
	Orders     Range `json:"orders" mapstructure:"orders"`

	// DeadProducts is the count of trailing product ids that never appear
	// in any order line.
	DeadProducts int `json:"dead_products" mapstructure:"dead_products"`

	PhoneNullRate       float64 `json:"phone_null_rate" mapstructure:"phone_null_rate"`
	DescriptionNullRate float64 `json:"description_null_rate" mapstructure:"description_null_rate"`

	SignupWindowDays int `json:"signup_window_days" mapstructure:"signup_window_days"`
	OrderWindowDays  int `json:"order_window_days" mapstructure:"order_window_days"`

	// Prices are uniform over [PriceMinCents, PriceMaxCents], kept in
	// integer cents so reconciled totals stay exact.
	PriceMinCents int `json:"price_min_cents" mapstructure:"price_min_cents"`
	PriceMaxCents int `json:"price_max_cents" mapstructure:"price_max_cents"`

	StockMax  int `json:"stock_max" mapstructure:"stock_max"`
	BatchSize int `json:"batch_size" mapstructure:"batch_size"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}

	g := &cfg.Generator
	if g.Categories == (Range{}) {
		g.Categories = Range{Min: 8, Max: 15}
	}
	if g.Customers == (Range{}) {
		g.Customers = Range{Min: 800, Max: 1200}
	}
	if g.Products == (Range{}) {
		g.Products = Range{Min: 1500, Max: 2500}
	}
	if g.Orders == (Range{}) {
		g.Orders = Range{Min: 4000, Max: 6000}
	}
	if g.DeadProducts == 0 {
		g.DeadProducts = 100
	}
	if g.PhoneNullRate == 0 {
		g.PhoneNullRate = 0.30
	}
	if g.DescriptionNullRate == 0 {
		g.DescriptionNullRate = 0.20
	}
	if g.SignupWindowDays == 0 {
		g.SignupWindowDays = 730
	}
	if g.OrderWindowDays == 0 {
		g.OrderWindowDays = 365
	}
	if g.PriceMinCents == 0 {
		g.PriceMinCents = 99
	}
	if g.PriceMaxCents == 0 {
		g.PriceMaxCents = 99999
	}
	if g.StockMax == 0 {
		g.StockMax = 500
	}
	if g.BatchSize == 0 {
		g.BatchSize = 500
	}
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	return c.Generator.Validate()
}

// Validate fails fast on bounds that would corrupt the generated skew,
// before any rows are inserted.
func (g *Generator) Validate() error {
	ranges := []struct {
		name string
		r    Range
	}{
		{"categories", g.Categories},
		{"customers", g.Customers},
		{"products", g.Products},
		{"orders", g.Orders},
	}
	for _, e := range ranges {
		if e.r.Min < 1 {
			return fmt.Errorf("%s: min count must be at least 1, got %d", e.name, e.r.Min)
		}
		if e.r.Min > e.r.Max {
			return fmt.Errorf("%s: min %d exceeds max %d", e.name, e.r.Min, e.r.Max)
		}
	}

	if g.DeadProducts < 0 {
		return fmt.Errorf("dead_products must not be negative, got %d", g.DeadProducts)
	}
	// The sellable range [1, P-K-1] must stay non-empty for every possible P.
	if g.DeadProducts >= g.Products.Min-1 {
		return fmt.Errorf("dead_products %d leaves no sellable products (products min is %d)", g.DeadProducts, g.Products.Min)
	}

	// Customers.Min must leave at least one orderable customer besides the
	// reserved order-less one.
	if g.Customers.Min < 2 {
		return fmt.Errorf("customers: min count must be at least 2 to reserve an order-less customer")
	}

	if g.PhoneNullRate < 0 || g.PhoneNullRate > 1 {
		return fmt.Errorf("phone_null_rate must be within [0, 1], got %v", g.PhoneNullRate)
	}
	if g.DescriptionNullRate < 0 || g.DescriptionNullRate > 1 {
		return fmt.Errorf("description_null_rate must be within [0, 1], got %v", g.DescriptionNullRate)
	}
	if g.PriceMinCents < 1 || g.PriceMinCents > g.PriceMaxCents {
		return fmt.Errorf("invalid price range [%d, %d] cents", g.PriceMinCents, g.PriceMaxCents)
	}
	if g.SignupWindowDays < 1 || g.OrderWindowDays < 1 {
		return fmt.Errorf("date windows must be at least 1 day")
	}

	return nil
}
