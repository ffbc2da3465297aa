package auctions

import (
	"context"
	"errors"
	"fmt"

	"github.com/gyeongmae/auction-map/internal/pkg/application/territory"
	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/repositories/database"
	"github.com/gyeongmae/auction-map/pkg/types"
	"github.com/samber/lo"
)

// Courts holding auctions in the Seoul area, listed before any court found in storage.
var Courts = []string{
	"서울중앙지방법원",
	"서울동부지방법원",
	"서울남부지방법원",
	"서울북부지방법원",
	"서울서부지방법원",
}

var PropertyTypes = []string{
	"아파트",
	"단독주택",
	"다가구주택",
	"오피스텔",
	"상가",
	"토지",
	"공장",
}

var ErrPropertyNotFound = fmt.Errorf("property not found")

//go:generate moq -rm -out auctions_mock.go . AuctionService

type AuctionService interface {
	SearchProperties(ctx context.Context, params types.SearchParams) (types.SearchResult, error)
	GetPropertyDetail(ctx context.Context, propertyID string) (types.AuctionProperty, error)
	GetCourts(ctx context.Context) ([]string, error)
	GetPropertyTypes(ctx context.Context) ([]string, error)
	PropertiesWithin(ctx context.Context, bounds types.Bounds) ([]types.AuctionProperty, error)
}

type auctionSvc struct {
	storage database.PropertyRepository
}

func New(storage database.PropertyRepository) AuctionService {
	return &auctionSvc{
		storage: storage,
	}
}

func (svc auctionSvc) SearchProperties(ctx context.Context, params types.SearchParams) (types.SearchResult, error) {
	params = params.Normalized()

	items, total, err := svc.storage.Search(ctx, params)
	if err != nil {
		return types.SearchResult{}, fmt.Errorf("failed to search properties: %w", err)
	}

	return types.NewSearchResult(items, total, params), nil
}

func (svc auctionSvc) GetPropertyDetail(ctx context.Context, propertyID string) (types.AuctionProperty, error) {
	p, err := svc.storage.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, database.ErrPropertyNotFound) {
			return types.AuctionProperty{}, fmt.Errorf("%w: %s", ErrPropertyNotFound, propertyID)
		}
		return types.AuctionProperty{}, err
	}

	return p, nil
}

func (svc auctionSvc) GetCourts(ctx context.Context) ([]string, error) {
	stored, err := svc.storage.Courts(ctx)
	if err != nil {
		return nil, err
	}

	return merge(Courts, stored), nil
}

func (svc auctionSvc) GetPropertyTypes(ctx context.Context) ([]string, error) {
	stored, err := svc.storage.PropertyTypes(ctx)
	if err != nil {
		return nil, err
	}

	return merge(PropertyTypes, stored), nil
}

func (svc auctionSvc) PropertiesWithin(ctx context.Context, bounds types.Bounds) ([]types.AuctionProperty, error) {
	if !bounds.Valid() {
		return nil, territory.ErrInvalidBounds
	}

	return svc.storage.Within(ctx, bounds)
}

func merge(reference, stored []string) []string {
	values := append(append([]string{}, reference...), stored...)
	return lo.Uniq(lo.Filter(values, func(v string, _ int) bool {
		return v != ""
	}))
}
