package territory

import (
	"errors"
	"math"

	"github.com/gyeongmae/auction-map/pkg/types"
	"github.com/paulmach/orb"
)

var ErrInvalidBounds = errors.New("invalid viewport bounds")
var ErrInvalidLevel = errors.New("invalid zoom level")

// Zoom levels follow the Kakao map convention where 1 is the closest view.
const (
	MinLevel int = 1
	MaxLevel int = 14

	minDivisions int = 2
	maxDivisions int = 15
)

// Divisions returns the number of grid cells along each axis of the viewport
// for a zoom level. Wider views get a coarser grid.
func Divisions(level int) (int, error) {
	if level < MinLevel || level > MaxLevel {
		return 0, ErrInvalidLevel
	}

	d := 16 - level
	if d < minDivisions {
		d = minDivisions
	}
	if d > maxDivisions {
		d = maxDivisions
	}

	return d, nil
}

type Cell struct {
	Row        int
	Col        int
	Bound      orb.Bound
	Properties []types.AuctionProperty
}

// Partition splits the viewport into equal lat/lng cells and assigns every
// property inside the viewport to exactly one of them. Cells are returned
// row major starting in the south west corner.
func Partition(bounds types.Bounds, level int, properties []types.AuctionProperty) ([]Cell, error) {
	if !bounds.Valid() {
		return nil, ErrInvalidBounds
	}

	d, err := Divisions(level)
	if err != nil {
		return nil, err
	}

	sw, ne := bounds.SouthWest, bounds.NorthEast
	cellH := (ne.Lat - sw.Lat) / float64(d)
	cellW := (ne.Lng - sw.Lng) / float64(d)

	cells := make([]Cell, 0, d*d)
	for row := 0; row < d; row++ {
		for col := 0; col < d; col++ {
			minLat := sw.Lat + float64(row)*cellH
			minLng := sw.Lng + float64(col)*cellW
			maxLat, maxLng := minLat+cellH, minLng+cellW
			if row == d-1 {
				maxLat = ne.Lat
			}
			if col == d-1 {
				maxLng = ne.Lng
			}

			cells = append(cells, Cell{
				Row: row,
				Col: col,
				Bound: orb.Bound{
					Min: orb.Point{minLng, minLat},
					Max: orb.Point{maxLng, maxLat},
				},
			})
		}
	}

	for _, p := range properties {
		if !bounds.Contains(p.Location()) {
			continue
		}

		row := cellIndex(p.Latitude, sw.Lat, cellH, d)
		col := cellIndex(p.Longitude, sw.Lng, cellW, d)

		idx := row*d + col
		cells[idx].Properties = append(cells[idx].Properties, p)
	}

	return cells, nil
}

func cellIndex(v, origin, size float64, d int) int {
	i := int(math.Floor((v - origin) / size))
	if i < 0 {
		return 0
	}
	if i >= d {
		return d - 1
	}
	return i
}
