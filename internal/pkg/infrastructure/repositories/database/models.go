package database

import (
	"time"

	"gorm.io/gorm"
)

type Property struct {
	gorm.Model

	Identifier      string `gorm:"uniqueIndex;<-:create"`
	CaseNumber      string
	Court           string `gorm:"index"`
	Address         string
	PropertyType    string `gorm:"index"`
	MinimumBidPrice int64  `gorm:"index"`
	AppraisedValue  int64
	AuctionDate     time.Time
	Status          string  `gorm:"index"`
	Latitude        float64 `gorm:"index"`
	Longitude       float64 `gorm:"index"`

	TotalArea        *float64
	BuildingArea     *float64
	LandArea         *float64
	Usage            string
	Rooms            *int
	ParkingSpaces    *int
	ConstructionYear *int
	Floor            string

	BidCount    *int
	NextBidDate *time.Time
	Notes       string

	Images []PropertyImage `gorm:"constraint:OnDelete:CASCADE;"`
}

type PropertyImage struct {
	gorm.Model

	PropertyID uint
	Position   int
	URL        string
}
