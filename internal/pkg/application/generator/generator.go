package generator

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gyeongmae/auction-map/pkg/types"
)

type area struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

var gangnam = area{MinLat: 37.4850, MaxLat: 37.5150, MinLng: 127.0200, MaxLng: 127.0500}

// properties around Teheran-ro are denser and priced higher
var teheran = area{MinLat: 37.5000, MaxLat: 37.5080, MinLng: 127.0280, MaxLng: 127.0400}

const teheranShare = 0.4

var propertyTypes = []string{"아파트", "오피스텔", "상가", "빌딩"}
var courts = []string{"서울중앙지방법원", "서울남부지방법원"}
var statuses = []string{"진행중", "예정"}

const placeholderImage = "https://via.placeholder.com/500x300"

type Config struct {
	Seed  int64 `yaml:"seed"`
	Count int   `yaml:"count"`
	Year  int   `yaml:"year"`
}

const (
	DefaultCount int = 50
	DefaultYear  int = 2024
)

type Generator struct {
	rnd  *rand.Rand
	year int
}

func New(cfg Config) *Generator {
	year := cfg.Year
	if year == 0 {
		year = DefaultYear
	}

	return &Generator{
		rnd:  rand.New(rand.NewSource(cfg.Seed)),
		year: year,
	}
}

// Bounds returns the area that generated properties are placed in.
func Bounds() types.Bounds {
	return types.Bounds{
		SouthWest: types.LatLng{Lat: gangnam.MinLat, Lng: gangnam.MinLng},
		NorthEast: types.LatLng{Lat: gangnam.MaxLat, Lng: gangnam.MaxLng},
	}
}

func (g *Generator) Generate(count int) []types.AuctionProperty {
	if count <= 0 {
		count = DefaultCount
	}

	properties := make([]types.AuctionProperty, 0, count)
	for i := 0; i < count; i++ {
		properties = append(properties, g.property(i))
	}

	return properties
}

func (g *Generator) property(i int) types.AuctionProperty {
	r := g.rnd

	isTeheran := r.Float64() < teheranShare
	box := gangnam
	if isTeheran {
		box = teheran
	}

	lat := box.MinLat + r.Float64()*(box.MaxLat-box.MinLat)
	lng := box.MinLng + r.Float64()*(box.MaxLng-box.MinLng)

	bid := g.price(isTeheran)
	appraised := int64(math.Round(float64(bid) * (1 + r.Float64()*0.3)))

	propertyType := propertyTypes[r.Intn(len(propertyTypes))]
	totalArea := math.Round(baseArea(r, propertyType)*10) / 10

	street := "강남대로"
	if isTeheran {
		street = "테헤란로"
	}
	address := fmt.Sprintf("서울시 강남구 %s %d길 %d", street, r.Intn(100), r.Intn(100))

	p := types.AuctionProperty{
		ID:               fmt.Sprintf("%d-%04d", g.year, i+1),
		CaseNumber:       fmt.Sprintf("%d타경%d", g.year, r.Intn(10000)),
		Status:           statuses[r.Intn(len(statuses))],
		PropertyType:     propertyType,
		Address:          address,
		Court:            courts[r.Intn(len(courts))],
		MinimumBidPrice:  bid,
		AppraisedValue:   appraised,
		TotalArea:        &totalArea,
		AuctionDate:      time.Date(g.year, time.Month(r.Intn(12)+1), r.Intn(28)+1, 0, 0, 0, 0, time.UTC),
		Latitude:         lat,
		Longitude:        lng,
		Images:           []string{placeholderImage},
		ParkingSpaces:    intPtr(r.Intn(5)),
		ConstructionYear: intPtr(1990 + r.Intn(34)),
		Floor:            fmt.Sprintf("%d층", r.Intn(20)+1),
		BidCount:         intPtr(r.Intn(10)),
	}

	if propertyType == "아파트" || propertyType == "오피스텔" {
		p.Rooms = intPtr(r.Intn(4) + 1)
	}

	if isTeheran {
		p.Notes = "테헤란로 인근 우량매물"
	}

	return p
}

// price returns a minimum bid in KRW.
func (g *Generator) price(isTeheran bool) int64 {
	base, variation := 500_000_000.0, 300_000_000.0
	if isTeheran {
		base, variation = 1_000_000_000.0, 500_000_000.0
	}
	return int64(math.Round(base + g.rnd.Float64()*variation))
}

func baseArea(r *rand.Rand, propertyType string) float64 {
	switch propertyType {
	case "아파트":
		return 60 + r.Float64()*140
	case "오피스텔":
		return 20 + r.Float64()*40
	case "상가":
		return 30 + r.Float64()*70
	case "빌딩":
		return 200 + r.Float64()*300
	}
	return 0
}

func intPtr(i int) *int {
	return &i
}
