package territory

import (
	"github.com/gyeongmae/auction-map/pkg/types"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/samber/lo"
)

func MapToModel(t Territory) types.Territory {
	ring := t.Polygon()[0]

	return types.Territory{
		ID:  t.ID(),
		Row: t.Row,
		Col: t.Col,
		Bounds: types.Bounds{
			SouthWest: toLatLng(t.Bound.Min),
			NorthEast: toLatLng(t.Bound.Max),
		},
		Center: toLatLng(t.Center),
		Polygon: lo.Map(ring, func(p orb.Point, _ int) types.LatLng {
			return toLatLng(p)
		}),
		PropertyIDs: lo.Map(t.Properties, func(p types.AuctionProperty, _ int) string {
			return p.ID
		}),
		Count:            len(t.Properties),
		CompetitionScore: t.Score,
		CompetitionLevel: t.Level(),
		Color:            t.Color(),
		Summary:          t.Summary(),
	}
}

func (a Analysis) ToModel() types.TerritoryAnalysis {
	return types.TerritoryAnalysis{
		Level:       a.Level,
		Divisions:   a.Divisions,
		Cells:       a.Cells,
		Scored:      a.Scored,
		Territories: lo.Map(a.Territories, func(t Territory, _ int) types.Territory { return MapToModel(t) }),
	}
}

// FeatureCollection renders the territories as GeoJSON polygons so that a map
// front end can draw them as overlays without further processing.
func (a Analysis) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, t := range a.Territories {
		f := geojson.NewFeature(t.Polygon())
		f.ID = t.ID()
		f.Properties["count"] = len(t.Properties)
		f.Properties["competitionScore"] = t.Score
		f.Properties["competitionLevel"] = t.Level()
		f.Properties["color"] = t.Color()
		f.Properties["center"] = []float64{t.Center.Lon(), t.Center.Lat()}
		fc.Append(f)
	}

	return fc
}

func toLatLng(p orb.Point) types.LatLng {
	return types.LatLng{Lat: p.Lat(), Lng: p.Lon()}
}
