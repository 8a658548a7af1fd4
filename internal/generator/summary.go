package generator

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Summary holds the final row counts of a completed run, the only
// machine-readable output the generator produces.
type Summary struct {
	Seed        int64     `yaml:"seed"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Categories  int       `yaml:"categories"`
	Customers   int       `yaml:"customers"`
	Products    int       `yaml:"products"`
	Orders      int       `yaml:"orders"`
	OrderItems  int       `yaml:"order_items"`
}

func (s *Summary) Print() {
	fmt.Println()
	color.Cyan("📦 Row counts:")
	color.White("  categories:  %d", s.Categories)
	color.White("  customers:   %d", s.Customers)
	color.White("  products:    %d", s.Products)
	color.White("  orders:      %d", s.Orders)
	color.White("  order_items: %d", s.OrderItems)
}

// WriteReport writes the summary as YAML.
func (s *Summary) WriteReport(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
