package types

import (
	"math"
	"time"
)

type AuctionProperty struct {
	ID              string    `json:"id"`
	CaseNumber      string    `json:"caseNumber"`
	Court           string    `json:"court"`
	Address         string    `json:"address"`
	PropertyType    string    `json:"propertyType"`
	MinimumBidPrice int64     `json:"minimumBidPrice"`
	AppraisedValue  int64     `json:"appraisedValue"`
	AuctionDate     time.Time `json:"auctionDate"`
	Status          string    `json:"status"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`

	TotalArea        *float64 `json:"totalArea,omitempty"`
	BuildingArea     *float64 `json:"buildingArea,omitempty"`
	LandArea         *float64 `json:"landArea,omitempty"`
	Usage            string   `json:"usage,omitempty"`
	Rooms            *int     `json:"rooms,omitempty"`
	ParkingSpaces    *int     `json:"parkingSpaces,omitempty"`
	ConstructionYear *int     `json:"constructionYear,omitempty"`
	Floor            string   `json:"floor,omitempty"`

	BidCount    *int       `json:"bidCount,omitempty"`
	NextBidDate *time.Time `json:"nextBidDate,omitempty"`
	Notes       string     `json:"notes,omitempty"`

	Images []string `json:"images,omitempty"`
}

// BidRatio returns the minimum bid as a fraction of the appraised value.
func (p AuctionProperty) BidRatio() float64 {
	if p.AppraisedValue <= 0 {
		return 0
	}
	return float64(p.MinimumBidPrice) / float64(p.AppraisedValue)
}

func (p AuctionProperty) PricePerArea() (float64, bool) {
	if p.TotalArea == nil || *p.TotalArea <= 0 {
		return 0, false
	}
	return float64(p.MinimumBidPrice) / *p.TotalArea, true
}

func (p AuctionProperty) Location() LatLng {
	return LatLng{Lat: p.Latitude, Lng: p.Longitude}
}

const (
	DefaultPage     int = 1
	DefaultPageSize int = 10
	MaxPageSize     int = 100
)

type SearchParams struct {
	Court        string `json:"court,omitempty"`
	PropertyType string `json:"propertyType,omitempty"`
	MinPrice     *int64 `json:"minPrice,omitempty"`
	MaxPrice     *int64 `json:"maxPrice,omitempty"`
	Status       string `json:"status,omitempty"`
	Keyword      string `json:"keyword,omitempty"`
	Page         int    `json:"page,omitempty"`
	PageSize     int    `json:"pageSize,omitempty"`
}

// Normalized returns a copy with paging defaults applied.
func (p SearchParams) Normalized() SearchParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p SearchParams) Offset() int {
	n := p.Normalized()
	return (n.Page - 1) * n.PageSize
}

type SearchResult struct {
	Items    []AuctionProperty `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	HasMore  bool              `json:"hasMore"`
}

func NewSearchResult(items []AuctionProperty, total int64, params SearchParams) SearchResult {
	params = params.Normalized()
	if items == nil {
		items = []AuctionProperty{}
	}
	return SearchResult{
		Items:    items,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		HasMore:  int64(params.Page*params.PageSize) < total,
	}
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is the visible area of a map, given by its south west and north east corners.
type Bounds struct {
	SouthWest LatLng `json:"southWest"`
	NorthEast LatLng `json:"northEast"`
}

func (b Bounds) Valid() bool {
	for _, f := range []float64{b.SouthWest.Lat, b.SouthWest.Lng, b.NorthEast.Lat, b.NorthEast.Lng} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return b.SouthWest.Lat < b.NorthEast.Lat && b.SouthWest.Lng < b.NorthEast.Lng
}

func (b Bounds) Contains(p LatLng) bool {
	return p.Lat >= b.SouthWest.Lat && p.Lat <= b.NorthEast.Lat &&
		p.Lng >= b.SouthWest.Lng && p.Lng <= b.NorthEast.Lng
}
