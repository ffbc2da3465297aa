package territory

import (
	"fmt"
	"sort"

	"github.com/gyeongmae/auction-map/pkg/types"
	"github.com/paulmach/orb"
	"github.com/samber/lo"
)

type Territory struct {
	Row        int
	Col        int
	Bound      orb.Bound
	Center     orb.Point
	Properties []types.AuctionProperty
	Signals    Signals
	Score      float64
}

func (t Territory) ID() string {
	return fmt.Sprintf("cell_%d_%d", t.Row, t.Col)
}

func (t Territory) Polygon() orb.Polygon {
	return t.Bound.ToPolygon()
}

func (t Territory) Color() string {
	return Color(t.Score)
}

func (t Territory) Level() string {
	return CompetitionLevel(t.Score)
}

func (t Territory) Summary() types.TerritorySummary {
	n := float64(len(t.Properties))
	if n == 0 {
		return types.TerritorySummary{PropertyTypes: []types.TypeShare{}}
	}

	avgPrice := lo.SumBy(t.Properties, func(p types.AuctionProperty) float64 {
		return float64(p.MinimumBidPrice)
	}) / n

	avgRatio := lo.SumBy(t.Properties, func(p types.AuctionProperty) float64 {
		return p.BidRatio()
	}) / n

	groups := lo.GroupBy(t.Properties, func(p types.AuctionProperty) string {
		return p.PropertyType
	})

	shares := make([]types.TypeShare, 0, len(groups))
	for propertyType, members := range groups {
		shares = append(shares, types.TypeShare{
			PropertyType: propertyType,
			Count:        len(members),
			Share:        float64(len(members)) / n,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].PropertyType < shares[j].PropertyType
	})

	return types.TerritorySummary{
		AverageBidPrice:     avgPrice,
		AverageBidPriceText: types.FormatPrice(int64(avgPrice)),
		AverageBidRatio:     avgRatio,
		AveragePricePerArea: averagePricePerArea(t.Properties),
		PropertyTypes:       shares,
	}
}

type Analysis struct {
	Level       int
	Divisions   int
	Cells       int
	Scored      int
	Territories []Territory
}

// Hot returns the territories whose score reaches the threshold.
func (a Analysis) Hot(threshold float64) []Territory {
	return lo.Filter(a.Territories, func(t Territory, _ int) bool {
		return t.Score >= threshold
	})
}

type Analyzer struct {
	cfg Config
}

func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg.WithDefaults()}
}

func (a *Analyzer) Config() Config {
	return a.cfg
}

// Analyze partitions the viewport, scores every cell holding at least
// MinProperties properties and keeps the territories scoring at least minScore.
// Nothing is cached, every call recomputes the grid from scratch.
func (a *Analyzer) Analyze(bounds types.Bounds, level int, minScore float64, properties []types.AuctionProperty) (Analysis, error) {
	cells, err := Partition(bounds, level, properties)
	if err != nil {
		return Analysis{}, err
	}

	d, _ := Divisions(level)

	result := Analysis{
		Level:       level,
		Divisions:   d,
		Cells:       len(cells),
		Territories: []Territory{},
	}

	for _, c := range cells {
		signals, ok := a.cfg.SignalsFor(c.Properties)
		if !ok {
			continue
		}
		result.Scored++

		score := signals.Score()
		if score < minScore {
			continue
		}

		result.Territories = append(result.Territories, Territory{
			Row:        c.Row,
			Col:        c.Col,
			Bound:      c.Bound,
			Center:     centroid(c.Properties),
			Properties: c.Properties,
			Signals:    signals,
			Score:      score,
		})
	}

	sort.SliceStable(result.Territories, func(i, j int) bool {
		ti, tj := result.Territories[i], result.Territories[j]
		if ti.Row != tj.Row {
			return ti.Row < tj.Row
		}
		return ti.Col < tj.Col
	})

	return result, nil
}

func centroid(properties []types.AuctionProperty) orb.Point {
	var lat, lng float64
	for _, p := range properties {
		lat += p.Latitude
		lng += p.Longitude
	}
	n := float64(len(properties))
	return orb.Point{lng / n, lat / n}
}
