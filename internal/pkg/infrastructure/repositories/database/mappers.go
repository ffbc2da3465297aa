package database

import (
	"sort"

	"github.com/gyeongmae/auction-map/pkg/types"
)

func MapToModel(p Property) types.AuctionProperty {
	images := make([]PropertyImage, len(p.Images))
	copy(images, p.Images)
	sort.Slice(images, func(i, j int) bool { return images[i].Position < images[j].Position })

	var urls []string
	for _, img := range images {
		urls = append(urls, img.URL)
	}

	return types.AuctionProperty{
		ID:               p.Identifier,
		CaseNumber:       p.CaseNumber,
		Court:            p.Court,
		Address:          p.Address,
		PropertyType:     p.PropertyType,
		MinimumBidPrice:  p.MinimumBidPrice,
		AppraisedValue:   p.AppraisedValue,
		AuctionDate:      p.AuctionDate.UTC(),
		Status:           p.Status,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		TotalArea:        p.TotalArea,
		BuildingArea:     p.BuildingArea,
		LandArea:         p.LandArea,
		Usage:            p.Usage,
		Rooms:            p.Rooms,
		ParkingSpaces:    p.ParkingSpaces,
		ConstructionYear: p.ConstructionYear,
		Floor:            p.Floor,
		BidCount:         p.BidCount,
		NextBidDate:      p.NextBidDate,
		Notes:            p.Notes,
		Images:           urls,
	}
}

func MapToModels(properties []Property) []types.AuctionProperty {
	models := make([]types.AuctionProperty, 0, len(properties))
	for _, p := range properties {
		models = append(models, MapToModel(p))
	}
	return models
}

func MapFromModel(p types.AuctionProperty) Property {
	images := make([]PropertyImage, 0, len(p.Images))
	for i, url := range p.Images {
		images = append(images, PropertyImage{Position: i, URL: url})
	}

	return Property{
		Identifier:       p.ID,
		CaseNumber:       p.CaseNumber,
		Court:            p.Court,
		Address:          p.Address,
		PropertyType:     p.PropertyType,
		MinimumBidPrice:  p.MinimumBidPrice,
		AppraisedValue:   p.AppraisedValue,
		AuctionDate:      p.AuctionDate,
		Status:           p.Status,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		TotalArea:        p.TotalArea,
		BuildingArea:     p.BuildingArea,
		LandArea:         p.LandArea,
		Usage:            p.Usage,
		Rooms:            p.Rooms,
		ParkingSpaces:    p.ParkingSpaces,
		ConstructionYear: p.ConstructionYear,
		Floor:            p.Floor,
		BidCount:         p.BidCount,
		NextBidDate:      p.NextBidDate,
		Notes:            p.Notes,
		Images:           images,
	}
}
