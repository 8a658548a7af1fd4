package generator

import (
	"math/rand"
	"testing"
	"time"
)

func TestPowerLawIDStaysInDomain(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		id := powerLawID(rng, 100)
		if id < 1 || id > 100 {
			t.Fatalf("powerLawID returned %d, want within [1, 100]", id)
		}
	}

	// A domain of one id has only one possible answer.
	for i := 0; i < 100; i++ {
		if id := powerLawID(rng, 1); id != 1 {
			t.Fatalf("powerLawID over domain 1 returned %d", id)
		}
	}
}

func TestPowerLawIDConcentratesNearLowEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	const draws = 20000
	const domain = 1000

	lowQuarter := 0
	for i := 0; i < draws; i++ {
		if powerLawID(rng, domain) <= domain/4 {
			lowQuarter++
		}
	}

	// The product of two uniforms lands in the lowest quarter of the domain
	// about 59.7% of the time; a uniform sampler would manage only 25%.
	ratio := float64(lowQuarter) / draws
	if ratio < 0.55 {
		t.Errorf("expected at least 55%% of draws in the low quarter, got %.1f%%", ratio*100)
	}
}

func TestLineCountDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	const draws = 20000
	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		n := lineCount(rng)
		if n < 1 || n > 10 {
			t.Fatalf("lineCount returned %d, want within [1, 10]", n)
		}
		counts[n]++
	}

	single := float64(counts[1]) / draws
	if single < 0.42 || single > 0.48 {
		t.Errorf("expected ~45%% single-line orders, got %.1f%%", single*100)
	}

	tail := 0
	for n := 6; n <= 10; n++ {
		tail += counts[n]
	}
	tailRatio := float64(tail) / draws
	if tailRatio < 0.002 || tailRatio > 0.02 {
		t.Errorf("expected ~1%% orders with 6-10 lines, got %.2f%%", tailRatio*100)
	}
}

func TestQuantityDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	const draws = 20000
	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		q := quantity(rng)
		if q < 1 || q > 5 {
			t.Fatalf("quantity returned %d, want within [1, 5]", q)
		}
		counts[q]++
	}

	single := float64(counts[1]) / draws
	if single < 0.77 || single > 0.83 {
		t.Errorf("expected ~80%% single-unit lines, got %.1f%%", single*100)
	}
}

func TestPriceCentsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 1000; i++ {
		cents := priceCents(rng, 99, 99999)
		if cents < 99 || cents > 99999 {
			t.Fatalf("priceCents returned %d, want within [99, 99999]", cents)
		}
	}

	if cents := priceCents(rng, 500, 500); cents != 500 {
		t.Errorf("degenerate price range returned %d, want 500", cents)
	}
}

func TestPastDateWithinWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	now := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		d := pastDate(rng, now, 365)
		if d.After(now) {
			t.Fatalf("pastDate returned future date %v", d)
		}
		if now.Sub(d) > 366*24*time.Hour {
			t.Fatalf("pastDate returned %v, outside the 365-day window", d)
		}
		if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
			t.Fatalf("pastDate returned %v, want midnight", d)
		}
	}
}

func TestPastTimestampWithinWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	now := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		ts := pastTimestamp(rng, now, 730)
		if ts.After(now) {
			t.Fatalf("pastTimestamp returned future time %v", ts)
		}
		if now.Sub(ts) > 730*24*time.Hour {
			t.Fatalf("pastTimestamp returned %v, outside the 730-day window", ts)
		}
	}
}

func TestCentsToAmount(t *testing.T) {
	if got := centsToAmount(3500); got != 35.00 {
		t.Errorf("centsToAmount(3500) = %v, want 35.00", got)
	}
	if got := centsToAmount(99); got != 0.99 {
		t.Errorf("centsToAmount(99) = %v, want 0.99", got)
	}
}
