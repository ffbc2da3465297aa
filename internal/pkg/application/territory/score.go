package territory

import (
	"fmt"
	"math"

	"github.com/gyeongmae/auction-map/pkg/types"
	"github.com/samber/lo"
)

const (
	RatioWeight        float64 = 0.3
	DensityWeight      float64 = 0.3
	PriceWeight        float64 = 0.2
	PricePerAreaWeight float64 = 0.2

	DensityCap    int = 5
	MinProperties int = 2

	// scores are rounded to this precision so that groups with equal
	// averages score equally regardless of group size
	scorePrecision float64 = 1e12
)

// Signals are the normalized inputs of a competition score, each in [0,1].
type Signals struct {
	Ratio        float64
	Density      float64
	Price        float64
	PricePerArea float64
}

func (s Signals) Score() float64 {
	score := RatioWeight*s.Ratio +
		DensityWeight*s.Density +
		PriceWeight*s.Price +
		PricePerAreaWeight*s.PricePerArea

	return clamp(math.Round(score*scorePrecision)/scorePrecision, 0, 1)
}

// SignalsFor computes the normalized signals of a group of properties. Groups
// smaller than MinProperties are not scored.
func (c Config) SignalsFor(properties []types.AuctionProperty) (Signals, bool) {
	n := len(properties)
	if n < MinProperties {
		return Signals{}, false
	}

	c = c.WithDefaults()

	ratio := lo.SumBy(properties, func(p types.AuctionProperty) float64 {
		return clamp(p.BidRatio(), 0, 1)
	}) / float64(n)

	density := float64(min(n, DensityCap)) / float64(DensityCap)

	avgPrice := lo.SumBy(properties, func(p types.AuctionProperty) float64 {
		return float64(p.MinimumBidPrice)
	}) / float64(n)

	return Signals{
		Ratio:        ratio,
		Density:      density,
		Price:        clamp(avgPrice/c.PriceCap, 0, 1),
		PricePerArea: clamp(averagePricePerArea(properties)/c.PricePerAreaCap, 0, 1),
	}, true
}

// Score returns the competition score of a group of properties sharing a cell.
func (c Config) Score(properties []types.AuctionProperty) (float64, bool) {
	s, ok := c.SignalsFor(properties)
	if !ok {
		return 0, false
	}
	return s.Score(), true
}

// averagePricePerArea skips properties without a usable area and returns 0 when none has one.
func averagePricePerArea(properties []types.AuctionProperty) float64 {
	total, count := 0.0, 0
	for _, p := range properties {
		if ppa, ok := p.PricePerArea(); ok {
			total += ppa
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// Color interpolates linearly from green (score 0) to red (score 1).
func Color(score float64) string {
	s := clamp(score, 0, 1)
	r := int(math.Round(255 * s))
	g := int(math.Round(255 * (1 - s)))
	return fmt.Sprintf("#%02x%02x00", r, g)
}

const (
	LevelVeryHigh string = "very-high"
	LevelHigh     string = "high"
	LevelMedium   string = "medium"
	LevelLow      string = "low"
)

func CompetitionLevel(score float64) string {
	switch {
	case score > 0.7:
		return LevelVeryHigh
	case score > 0.5:
		return LevelHigh
	case score > 0.3:
		return LevelMedium
	default:
		return LevelLow
	}
}

func clamp(v, floor, ceil float64) float64 {
	if math.IsNaN(v) {
		return floor
	}
	return math.Max(floor, math.Min(ceil, v))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
