package database

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/logging"
	"github.com/gyeongmae/auction-map/pkg/types"
	"gorm.io/gorm"
)

//go:generate moq -rm -out propertyrepository_mock.go . PropertyRepository

type PropertyRepository interface {
	Search(ctx context.Context, params types.SearchParams) ([]types.AuctionProperty, int64, error)
	GetByID(ctx context.Context, propertyID string) (types.AuctionProperty, error)
	Within(ctx context.Context, bounds types.Bounds) ([]types.AuctionProperty, error)
	Courts(ctx context.Context) ([]string, error)
	PropertyTypes(ctx context.Context) ([]string, error)

	Add(ctx context.Context, property types.AuctionProperty) error
	SeedProperties(ctx context.Context, properties []types.AuctionProperty) (int, error)
	Seed(ctx context.Context, reader io.Reader) (int, error)
}

var ErrPropertyNotFound = fmt.Errorf("property not found")
var ErrPropertyAlreadyExists = fmt.Errorf("property already exists")
var ErrRepositoryError = fmt.Errorf("could not fetch data from repository")

type propertyRepository struct {
	db *gorm.DB
}

func New(connect ConnectorFunc) (PropertyRepository, error) {
	impl, _, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&Property{}, &PropertyImage{})
	if err != nil {
		return nil, err
	}

	return &propertyRepository{
		db: impl,
	}, nil
}

func (r *propertyRepository) Search(ctx context.Context, params types.SearchParams) ([]types.AuctionProperty, int64, error) {
	logger := logging.GetLoggerFromContext(ctx)

	params = params.Normalized()

	var total int64
	result := applyFilters(r.db.WithContext(ctx).Model(&Property{}), params).Count(&total)
	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("failed to count properties")
		return nil, 0, ErrRepositoryError
	}

	var properties []Property
	result = applyFilters(r.db.WithContext(ctx), params).
		Preload("Images").
		Order("auction_date ASC, identifier ASC").
		Offset(params.Offset()).
		Limit(params.PageSize).
		Find(&properties)
	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("failed to search properties")
		return nil, 0, ErrRepositoryError
	}

	return MapToModels(properties), total, nil
}

func applyFilters(query *gorm.DB, params types.SearchParams) *gorm.DB {
	if params.Court != "" {
		query = query.Where("court = ?", params.Court)
	}
	if params.PropertyType != "" {
		query = query.Where("property_type = ?", params.PropertyType)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.MinPrice != nil {
		query = query.Where("minimum_bid_price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("minimum_bid_price <= ?", *params.MaxPrice)
	}
	if kw := strings.TrimSpace(params.Keyword); kw != "" {
		like := "%" + escapeLike(strings.ToLower(kw)) + "%"
		query = query.Where(
			`(lower(address) LIKE ? ESCAPE '\' OR lower(case_number) LIKE ? ESCAPE '\' OR lower(notes) LIKE ? ESCAPE '\')`,
			like, like, like,
		)
	}
	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern using \ as escape character.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *propertyRepository) GetByID(ctx context.Context, propertyID string) (types.AuctionProperty, error) {
	logger := logging.GetLoggerFromContext(ctx)

	if propertyID == "" {
		return types.AuctionProperty{}, ErrPropertyNotFound
	}

	var property Property

	result := r.db.WithContext(ctx).
		Preload("Images").
		Where(&Property{Identifier: propertyID}).
		First(&property)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return types.AuctionProperty{}, ErrPropertyNotFound
		}

		logger.Error().Err(result.Error).Msg("gorm error")

		return types.AuctionProperty{}, ErrRepositoryError
	}

	return MapToModel(property), nil
}

func (r *propertyRepository) Within(ctx context.Context, bounds types.Bounds) ([]types.AuctionProperty, error) {
	logger := logging.GetLoggerFromContext(ctx)

	var properties []Property

	result := r.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", bounds.SouthWest.Lat, bounds.NorthEast.Lat).
		Where("longitude BETWEEN ? AND ?", bounds.SouthWest.Lng, bounds.NorthEast.Lng).
		Order("identifier ASC").
		Find(&properties)

	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("failed to query properties within bounds")
		return nil, ErrRepositoryError
	}

	return MapToModels(properties), nil
}

func (r *propertyRepository) Courts(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "court")
}

func (r *propertyRepository) PropertyTypes(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "property_type")
}

func (r *propertyRepository) distinct(ctx context.Context, column string) ([]string, error) {
	var values []string

	result := r.db.WithContext(ctx).
		Model(&Property{}).
		Distinct().
		Order(column).
		Pluck(column, &values)

	if result.Error != nil {
		logger := logging.GetLoggerFromContext(ctx)
		logger.Error().Err(result.Error).Str("column", column).Msg("failed to fetch distinct values")
		return nil, ErrRepositoryError
	}

	return values, nil
}

func (r *propertyRepository) Add(ctx context.Context, property types.AuctionProperty) error {
	exists, err := r.exists(ctx, property.ID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrPropertyAlreadyExists, property.ID)
	}

	p := MapFromModel(property)
	return r.db.WithContext(ctx).Create(&p).Error
}

func (r *propertyRepository) exists(ctx context.Context, propertyID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&Property{}).Where("identifier = ?", propertyID).Count(&count)
	if result.Error != nil {
		return false, ErrRepositoryError
	}
	return count > 0, nil
}

// SeedProperties stores the properties that are not already present and
// returns the number of rows that were added.
func (r *propertyRepository) SeedProperties(ctx context.Context, properties []types.AuctionProperty) (int, error) {
	added := 0

	for _, p := range properties {
		err := r.Add(ctx, p)
		if errors.Is(err, ErrPropertyAlreadyExists) {
			continue
		}
		if err != nil {
			return added, err
		}
		added++
	}

	return added, nil
}

func (r *propertyRepository) Seed(ctx context.Context, reader io.Reader) (int, error) {
	c := csv.NewReader(reader)
	c.Comma = ';'

	rows, err := c.ReadAll()
	if err != nil {
		return 0, err
	}

	properties, err := getPropertiesFromRows(rows)
	if err != nil {
		return 0, err
	}

	return r.SeedProperties(ctx, properties)
}

const (
	colID int = iota
	colCaseNumber
	colCourt
	colAddress
	colPropertyType
	colMinimumBidPrice
	colAppraisedValue
	colAuctionDate
	colStatus
	colLatitude
	colLongitude
	colTotalArea
	colNotes
	csvColumns
)

func getPropertiesFromRows(rows [][]string) ([]types.AuctionProperty, error) {
	properties := []types.AuctionProperty{}
	seen := map[string]struct{}{}

	for i, row := range rows {
		if i == 0 {
			continue
		}

		p, err := newPropertyFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("row %d: duplicate property id %s", i, p.ID)
		}
		seen[p.ID] = struct{}{}

		properties = append(properties, p)
	}

	return properties, nil
}

func newPropertyFromRow(r []string) (types.AuctionProperty, error) {
	if len(r) < csvColumns {
		return types.AuctionProperty{}, fmt.Errorf("expected %d columns, got %d", csvColumns, len(r))
	}

	id := strings.TrimSpace(r[colID])
	if id == "" {
		return types.AuctionProperty{}, fmt.Errorf("missing property id")
	}

	bid, err := strconv.ParseInt(r[colMinimumBidPrice], 10, 64)
	if err != nil || bid < 0 {
		return types.AuctionProperty{}, fmt.Errorf("invalid minimum bid price %q", r[colMinimumBidPrice])
	}

	appraised, err := strconv.ParseInt(r[colAppraisedValue], 10, 64)
	if err != nil || appraised < 0 {
		return types.AuctionProperty{}, fmt.Errorf("invalid appraised value %q", r[colAppraisedValue])
	}

	date, err := time.Parse("2006-01-02", r[colAuctionDate])
	if err != nil {
		return types.AuctionProperty{}, fmt.Errorf("invalid auction date %q", r[colAuctionDate])
	}

	lat, err := strconv.ParseFloat(r[colLatitude], 64)
	if err != nil || math.IsNaN(lat) || lat < -90 || lat > 90 {
		return types.AuctionProperty{}, fmt.Errorf("invalid latitude %q", r[colLatitude])
	}

	lon, err := strconv.ParseFloat(r[colLongitude], 64)
	if err != nil || math.IsNaN(lon) || lon < -180 || lon > 180 {
		return types.AuctionProperty{}, fmt.Errorf("invalid longitude %q", r[colLongitude])
	}

	p := types.AuctionProperty{
		ID:              id,
		CaseNumber:      r[colCaseNumber],
		Court:           r[colCourt],
		Address:         r[colAddress],
		PropertyType:    r[colPropertyType],
		MinimumBidPrice: bid,
		AppraisedValue:  appraised,
		AuctionDate:     date,
		Status:          r[colStatus],
		Latitude:        lat,
		Longitude:       lon,
		Notes:           r[colNotes],
	}

	if s := strings.TrimSpace(r[colTotalArea]); s != "" {
		area, err := strconv.ParseFloat(s, 64)
		if err != nil || area <= 0 {
			return types.AuctionProperty{}, fmt.Errorf("invalid total area %q", s)
		}
		p.TotalArea = &area
	}

	return p, nil
}
