package database

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/gyeongmae/auction-map/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestThatSeedLoadsAllRows(t *testing.T) {
	is, ctx, repo := testSetup(t)

	count, err := repo.Seed(ctx, bytes.NewBufferString(csvMock))
	is.NoErr(err)
	is.Equal(count, 2)

	p, err := repo.GetByID(ctx, "2024-1234")
	is.NoErr(err)
	is.Equal(p.CaseNumber, "2024타경1234")
	is.Equal(p.MinimumBidPrice, int64(500000000))
	is.Equal(p.AppraisedValue, int64(650000000))
	is.True(p.TotalArea != nil)
	is.Equal(*p.TotalArea, 84.5)
	is.Equal(p.AuctionDate.Format("2006-01-02"), "2024-03-15")
}

func TestThatSeedSkipsExistingProperties(t *testing.T) {
	is, ctx, repo := testSetup(t)

	_, err := repo.Seed(ctx, bytes.NewBufferString(csvMock))
	is.NoErr(err)

	count, err := repo.Seed(ctx, bytes.NewBufferString(csvMock))
	is.NoErr(err)
	is.Equal(count, 0)
}

func TestThatLoadFailsOnDuplicateID(t *testing.T) {
	is, ctx, repo := testSetup(t)
	_, err := repo.Seed(ctx, bytes.NewBufferString(csvWithDuplicates))
	is.True(err != nil)
}

func TestThatLoadFailsOnBadLatitude(t *testing.T) {
	is, ctx, repo := testSetup(t)
	_, err := repo.Seed(ctx, bytes.NewBufferString(csvWithBadLatitude))
	is.True(err != nil)
}

func TestThatLoadFailsOnBadLongitude(t *testing.T) {
	is, ctx, repo := testSetup(t)
	_, err := repo.Seed(ctx, bytes.NewBufferString(csvWithBadLongitude))
	is.True(err != nil)
}

func TestThatLoadFailsOnBadPrice(t *testing.T) {
	is, ctx, repo := testSetup(t)
	_, err := repo.Seed(ctx, bytes.NewBufferString(csvWithBadPrice))
	is.True(err != nil)
}

func TestThatLoadFailsOnBadDate(t *testing.T) {
	is, ctx, repo := testSetup(t)
	_, err := repo.Seed(ctx, bytes.NewBufferString(csvWithBadDate))
	is.True(err != nil)
}

func TestGetByIDReturnsNotFound(t *testing.T) {
	is, ctx, repo := testSetup(t)

	_, err := repo.GetByID(ctx, "missing")
	is.True(errors.Is(err, ErrPropertyNotFound))
}

func TestAddRejectsDuplicates(t *testing.T) {
	is, ctx, repo := testSetup(t)

	p := types.AuctionProperty{ID: "1", Court: "서울중앙지방법원", Images: []string{"a.jpg", "b.jpg"}}
	is.NoErr(repo.Add(ctx, p))

	err := repo.Add(ctx, p)
	is.True(errors.Is(err, ErrPropertyAlreadyExists))

	stored, err := repo.GetByID(ctx, "1")
	is.NoErr(err)
	is.Equal(stored.Images, []string{"a.jpg", "b.jpg"})
}

func TestSearchFilters(t *testing.T) {
	is, ctx, repo := testSetup(t)

	_, err := repo.Seed(ctx, bytes.NewBufferString(csvMock))
	is.NoErr(err)

	items, total, err := repo.Search(ctx, types.SearchParams{})
	is.NoErr(err)
	is.Equal(total, int64(2))
	is.Equal(items[0].ID, "2024-1234") // earliest auction date first

	items, total, err = repo.Search(ctx, types.SearchParams{PropertyType: "오피스텔"})
	is.NoErr(err)
	is.Equal(total, int64(1))
	is.Equal(items[0].ID, "2024-5678")

	minPrice := int64(400000000)
	items, total, err = repo.Search(ctx, types.SearchParams{MinPrice: &minPrice})
	is.NoErr(err)
	is.Equal(total, int64(1))
	is.Equal(items[0].ID, "2024-1234")

	_, total, err = repo.Search(ctx, types.SearchParams{Keyword: "역삼동"})
	is.NoErr(err)
	is.Equal(total, int64(1))

	_, total, err = repo.Search(ctx, types.SearchParams{Court: "서울남부지방법원"})
	is.NoErr(err)
	is.Equal(total, int64(0))
}

func TestSearchKeywordIsCaseInsensitive(t *testing.T) {
	is, ctx, repo := testSetup(t)

	is.NoErr(repo.Add(ctx, types.AuctionProperty{ID: "1", Address: "Teheran-ro 152, Gangnam-gu"}))
	is.NoErr(repo.Add(ctx, types.AuctionProperty{ID: "2", Address: "서울 서초구", Notes: "near TEHERAN station"}))

	for _, kw := range []string{"teheran", "TEHERAN", "Teheran"} {
		_, total, err := repo.Search(ctx, types.SearchParams{Keyword: kw})
		is.NoErr(err)
		is.Equal(total, int64(2))
	}
}

func TestSearchKeywordMatchesWildcardsLiterally(t *testing.T) {
	is, ctx, repo := testSetup(t)

	is.NoErr(repo.Add(ctx, types.AuctionProperty{ID: "1", Address: "서울 강남구", Notes: "지분 50% 매각"}))
	is.NoErr(repo.Add(ctx, types.AuctionProperty{ID: "2", Address: "서울 서초구", Notes: "unit_7 rooftop"}))
	is.NoErr(repo.Add(ctx, types.AuctionProperty{ID: "3", Address: "서울 송파구", Notes: "unit 7"}))

	items, total, err := repo.Search(ctx, types.SearchParams{Keyword: "%"})
	is.NoErr(err)
	is.Equal(total, int64(1))
	is.Equal(items[0].ID, "1")

	items, total, err = repo.Search(ctx, types.SearchParams{Keyword: "unit_7"})
	is.NoErr(err)
	is.Equal(total, int64(1))
	is.Equal(items[0].ID, "2")

	_, total, err = repo.Search(ctx, types.SearchParams{Keyword: `\`})
	is.NoErr(err)
	is.Equal(total, int64(0))
}

func TestEscapeLike(t *testing.T) {
	is := is.New(t)
	is.Equal(escapeLike(`50%_off\`), `50\%\_off\\`)
	is.Equal(escapeLike("역삼동"), "역삼동")
}

func TestSearchPaging(t *testing.T) {
	is, ctx, repo := testSetup(t)

	_, err := repo.Seed(ctx, bytes.NewBufferString(csvMock))
	is.NoErr(err)

	items, total, err := repo.Search(ctx, types.SearchParams{Page: 2, PageSize: 1})
	is.NoErr(err)
	is.Equal(total, int64(2))
	is.Equal(len(items), 1)
	is.Equal(items[0].ID, "2024-5678")
}

func TestWithinReturnsOnlyPropertiesInsideBounds(t *testing.T) {
	is, ctx, repo := testSetup(t)

	_, err := repo.Seed(ctx, bytes.NewBufferString(csvMock))
	is.NoErr(err)

	items, err := repo.Within(ctx, types.Bounds{
		SouthWest: types.LatLng{Lat: 37.505, Lng: 127.05},
		NorthEast: types.LatLng{Lat: 37.51, Lng: 127.06},
	})
	is.NoErr(err)
	is.Equal(len(items), 1)
	is.Equal(items[0].ID, "2024-1234")
}

func TestDistinctValues(t *testing.T) {
	is, ctx, repo := testSetup(t)

	_, err := repo.Seed(ctx, bytes.NewBufferString(csvMock))
	is.NoErr(err)

	courts, err := repo.Courts(ctx)
	is.NoErr(err)
	is.Equal(courts, []string{"서울중앙지방법원"})

	propertyTypes, err := repo.PropertyTypes(ctx)
	is.NoErr(err)
	is.Equal(propertyTypes, []string{"아파트", "오피스텔"})
}

func testSetup(t *testing.T) (*is.I, context.Context, PropertyRepository) {
	is := is.New(t)
	repo, err := New(NewSQLiteConnector(zerolog.Logger{}))
	is.NoErr(err)
	return is, context.Background(), repo
}

const csvMock string = `id;caseNumber;court;address;propertyType;minimumBidPrice;appraisedValue;auctionDate;status;lat;lon;totalArea;notes
2024-1234;2024타경1234;서울중앙지방법원;서울특별시 강남구 삼성동 123-45;아파트;500000000;650000000;2024-03-15;진행중;37.508855;127.056183;84.5;
2024-5678;2024타경5678;서울중앙지방법원;서울특별시 강남구 역삼동 678-90;오피스텔;300000000;380000000;2024-03-20;진행중;37.501033;127.037386;;테헤란로 인근`

const csvWithDuplicates string = `id;caseNumber;court;address;propertyType;minimumBidPrice;appraisedValue;auctionDate;status;lat;lon;totalArea;notes
2024-1234;2024타경1234;서울중앙지방법원;삼성동;아파트;500000000;650000000;2024-03-15;진행중;37.5;127.0;;
2024-1234;2024타경1235;서울중앙지방법원;삼성동;아파트;500000000;650000000;2024-03-15;진행중;37.5;127.0;;`

const csvWithBadLatitude string = `id;caseNumber;court;address;propertyType;minimumBidPrice;appraisedValue;auctionDate;status;lat;lon;totalArea;notes
2024-1234;2024타경1234;서울중앙지방법원;삼성동;아파트;500000000;650000000;2024-03-15;진행중;gurka;127.0;;`

const csvWithBadLongitude string = `id;caseNumber;court;address;propertyType;minimumBidPrice;appraisedValue;auctionDate;status;lat;lon;totalArea;notes
2024-1234;2024타경1234;서울중앙지방법원;삼성동;아파트;500000000;650000000;2024-03-15;진행중;37.5;200.0;;`

const csvWithBadPrice string = `id;caseNumber;court;address;propertyType;minimumBidPrice;appraisedValue;auctionDate;status;lat;lon;totalArea;notes
2024-1234;2024타경1234;서울중앙지방법원;삼성동;아파트;gurka;650000000;2024-03-15;진행중;37.5;127.0;;`

const csvWithBadDate string = `id;caseNumber;court;address;propertyType;minimumBidPrice;appraisedValue;auctionDate;status;lat;lon;totalArea;notes
2024-1234;2024타경1234;서울중앙지방법원;삼성동;아파트;500000000;650000000;15/03/2024;진행중;37.5;127.0;;`
