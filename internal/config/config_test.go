package config

import "testing"

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	if cfg.Database.Provider != "postgresql" {
		t.Errorf("Expected database provider to be 'postgresql', got '%s'", cfg.Database.Provider)
	}
	if cfg.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", cfg.Database.URLEnv)
	}
	if cfg.Generator.DeadProducts != 100 {
		t.Errorf("Expected 100 dead products, got %d", cfg.Generator.DeadProducts)
	}
	if cfg.Generator.Categories != (Range{Min: 8, Max: 15}) {
		t.Errorf("Unexpected default category bounds: %+v", cfg.Generator.Categories)
	}
	if cfg.Generator.PhoneNullRate != 0.30 {
		t.Errorf("Expected phone null rate 0.30, got %v", cfg.Generator.PhoneNullRate)
	}
	if cfg.Generator.BatchSize != 500 {
		t.Errorf("Expected batch size 500, got %d", cfg.Generator.BatchSize)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)
	cfg.Database.Provider = "oracle"

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation to fail for unsupported provider")
	}
}

func TestGeneratorValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Generator)
		wantErr bool
	}{
		{"defaults", func(g *Generator) {}, false},
		{"min above max", func(g *Generator) { g.Products = Range{Min: 100, Max: 50} }, true},
		{"zero min", func(g *Generator) { g.Categories = Range{Min: 0, Max: 5} }, true},
		{"dead zone too large", func(g *Generator) { g.DeadProducts = 2000 }, true},
		{"negative dead zone", func(g *Generator) { g.DeadProducts = -5 }, true},
		{"null rate above one", func(g *Generator) { g.DescriptionNullRate = 1.2 }, true},
		{"inverted price range", func(g *Generator) { g.PriceMinCents = 500; g.PriceMaxCents = 100 }, true},
		{"negative date window", func(g *Generator) { g.OrderWindowDays = -1 }, true},
	}

	for _, tc := range cases {
		var cfg Config
		applyDefaults(&cfg)
		tc.mutate(&cfg.Generator)

		err := cfg.Generator.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected validation to fail", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: expected validation to pass, got %v", tc.name, err)
		}
	}
}
