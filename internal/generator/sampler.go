package generator

import (
	"math/rand"
	"time"
)

// powerLawID returns an id in [1, n], skewed toward low values: the product
// of two independent uniforms concentrates near zero, so low ids are drawn
// far more often than high ones. This is the "few heavy buyers / few hot
// products" long tail, with no rejection loop.
func powerLawID(rng *rand.Rand, n int) int {
	id := int(rng.Float64()*rng.Float64()*float64(n)) + 1
	if id > n {
		id = n
	}
	return id
}

// lineCount draws the number of lines for one order header:
// 1→0.45, 2→0.30, 3→0.13, 4→0.07, 5→0.04, otherwise uniform in [6, 10].
func lineCount(rng *rand.Rand) int {
	u := rng.Float64()
	switch {
	case u < 0.45:
		return 1
	case u < 0.75:
		return 2
	case u < 0.88:
		return 3
	case u < 0.95:
		return 4
	case u < 0.99:
		return 5
	default:
		return 6 + rng.Intn(5)
	}
}

// quantity draws the units for one order line:
// 1→0.80, 2→0.15, 3→0.04, otherwise uniform in [4, 5].
func quantity(rng *rand.Rand) int {
	u := rng.Float64()
	switch {
	case u < 0.80:
		return 1
	case u < 0.95:
		return 2
	case u < 0.99:
		return 3
	default:
		return 4 + rng.Intn(2)
	}
}

func priceCents(rng *rand.Rand, minCents, maxCents int) int {
	return minCents + rng.Intn(maxCents-minCents+1)
}

// pastTimestamp returns now minus a uniform offset of up to maxDays days,
// with second granularity.
func pastTimestamp(rng *rand.Rand, now time.Time, maxDays int) time.Time {
	offset := time.Duration(rng.Intn(maxDays*24*3600)) * time.Second
	return now.Add(-offset)
}

// pastDate returns a random day within the last maxDays, truncated to
// midnight UTC. Day-to-day volume variance falls out of the uniform draw and
// is left uncorrected.
func pastDate(rng *rand.Rand, now time.Time, maxDays int) time.Time {
	t := now.AddDate(0, 0, -rng.Intn(maxDays))
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func centsToAmount(cents int) float64 {
	return float64(cents) / 100
}
