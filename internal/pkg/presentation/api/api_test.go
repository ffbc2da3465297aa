package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gyeongmae/auction-map/internal/pkg/application/auctions"
	"github.com/gyeongmae/auction-map/internal/pkg/application/events"
	"github.com/gyeongmae/auction-map/internal/pkg/application/territory"
	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/metrics"
	"github.com/gyeongmae/auction-map/pkg/types"
	"github.com/matryer/is"
	"github.com/paulmach/orb/geojson"
)

func TestHealthHandler(t *testing.T) {
	is, server, _, _ := testSetup(t)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/health", nil)
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestSearchPropertiesHandler(t *testing.T) {
	is, server, svc, _ := testSetup(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/v0/properties?court=%EC%84%9C%EC%9A%B8%EC%A4%91%EC%95%99%EC%A7%80%EB%B0%A9%EB%B2%95%EC%9B%90&minPrice=100&maxPrice=900&q=%EC%82%BC%EC%84%B1&page=2&pageSize=5", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	calls := svc.SearchPropertiesCalls()
	is.Equal(len(calls), 1)
	is.Equal(calls[0].Params.Court, "서울중앙지방법원")
	is.Equal(*calls[0].Params.MinPrice, int64(100))
	is.Equal(*calls[0].Params.MaxPrice, int64(900))
	is.Equal(calls[0].Params.Keyword, "삼성")
	is.Equal(calls[0].Params.Page, 2)
	is.Equal(calls[0].Params.PageSize, 5)

	result := types.SearchResult{}
	is.NoErr(json.Unmarshal([]byte(body), &result))
	is.Equal(len(result.Items), 4)
}

func TestSearchPropertiesRejectsBadParameters(t *testing.T) {
	is, server, svc, _ := testSetup(t)
	defer server.Close()

	for _, query := range []string{"minPrice=abc", "page=0", "pageSize=-1", "minPrice=10&maxPrice=5"} {
		resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/properties?"+query, nil)
		is.Equal(resp.StatusCode, http.StatusBadRequest)
	}

	is.Equal(len(svc.SearchPropertiesCalls()), 0)
}

func TestGetPropertyHandler(t *testing.T) {
	is, server, _, _ := testSetup(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/v0/properties/p1", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	p := types.AuctionProperty{}
	is.NoErr(json.Unmarshal([]byte(body), &p))
	is.Equal(p.ID, "p1")
}

func TestGetPropertyHandlerReturnsNotFound(t *testing.T) {
	is, server, _, _ := testSetup(t)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/properties/unknown", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestListHandlers(t *testing.T) {
	is, server, _, _ := testSetup(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/v0/courts", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	courts := []string{}
	is.NoErr(json.Unmarshal([]byte(body), &courts))
	is.Equal(courts, auctions.Courts)

	resp, body = testRequest(is, server, http.MethodGet, "/api/v0/property-types", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	propertyTypes := []string{}
	is.NoErr(json.Unmarshal([]byte(body), &propertyTypes))
	is.Equal(propertyTypes, auctions.PropertyTypes)
}

func TestTerritoriesHandler(t *testing.T) {
	is, server, _, sender := testSetup(t)
	defer server.Close()

	sent := make(chan types.HotTerritoryDetected, 1)
	sender.SendHotTerritoryFunc = func(ctx context.Context, message types.HotTerritoryDetected) error {
		sent <- message
		return nil
	}

	resp, body := testRequest(is, server, http.MethodGet, "/api/v0/territories?"+viewport+"&level=14", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "application/json")

	analysis := types.TerritoryAnalysis{}
	is.NoErr(json.Unmarshal([]byte(body), &analysis))
	is.Equal(analysis.Cells, 4)
	is.Equal(analysis.Scored, 1)
	is.Equal(len(analysis.Territories), 1)
	is.Equal(analysis.Territories[0].ID, "cell_0_0")
	is.Equal(analysis.Territories[0].Count, 3)
	is.Equal(analysis.Territories[0].CompetitionLevel, "very-high")
	is.Equal(len(analysis.Territories[0].Polygon), 5)

	select {
	case msg := <-sent:
		is.Equal(msg.TerritoryID, "cell_0_0")
		is.Equal(msg.Level, 14)
	case <-time.After(2 * time.Second):
		t.Fatal("hot territory event was never sent")
	}
}

func TestTerritoriesHandlerDoesNotWaitForSubscribers(t *testing.T) {
	is, server, _, sender := testSetup(t)
	defer server.Close()

	release := make(chan struct{})
	sent := make(chan string, 1)

	sender.SendHotTerritoryFunc = func(ctx context.Context, message types.HotTerritoryDetected) error {
		select {
		case <-release:
		case <-ctx.Done():
			return ctx.Err()
		}
		sent <- message.TerritoryID
		return nil
	}

	start := time.Now()
	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/territories?"+viewport+"&level=14", nil)
	elapsed := time.Since(start)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(elapsed < time.Second)

	close(release)

	select {
	case id := <-sent:
		is.Equal(id, "cell_0_0")
	case <-time.After(2 * time.Second):
		t.Fatal("hot territory event was never sent")
	}
}

func TestHotTerritoryEventsOutliveTheRequest(t *testing.T) {
	is, server, _, sender := testSetup(t)
	defer server.Close()

	type sendContext struct {
		err         error
		hasDeadline bool
	}

	observed := make(chan sendContext, 1)
	sender.SendHotTerritoryFunc = func(ctx context.Context, message types.HotTerritoryDetected) error {
		// give the handler time to return and the request context to be cancelled
		time.Sleep(100 * time.Millisecond)
		_, hasDeadline := ctx.Deadline()
		observed <- sendContext{err: ctx.Err(), hasDeadline: hasDeadline}
		return nil
	}

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/territories?"+viewport+"&level=14", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	select {
	case sc := <-observed:
		is.NoErr(sc.err)
		is.True(sc.hasDeadline)
	case <-time.After(2 * time.Second):
		t.Fatal("hot territory event was never sent")
	}
}

func TestTerritoriesHandlerFiltersOnMinScore(t *testing.T) {
	is, server, _, _ := testSetup(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/v0/territories?"+viewport+"&level=14&minScore=0.95", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	analysis := types.TerritoryAnalysis{}
	is.NoErr(json.Unmarshal([]byte(body), &analysis))
	is.Equal(analysis.Scored, 1)
	is.Equal(len(analysis.Territories), 0)
}

func TestTerritoriesHandlerReturnsGeoJSON(t *testing.T) {
	is, server, _, _ := testSetup(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/v0/territories?"+viewport+"&level=14", map[string]string{
		"Accept": GeoJSONContentType,
	})
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), GeoJSONContentType)

	fc, err := geojson.UnmarshalFeatureCollection([]byte(body))
	is.NoErr(err)
	is.Equal(len(fc.Features), 1)
	is.Equal(fc.Features[0].Properties["color"], territory.Color(fc.Features[0].Properties.MustFloat64("competitionScore")))
}

func TestTerritoriesHandlerRejectsInvalidViewport(t *testing.T) {
	is, server, svc, _ := testSetup(t)
	defer server.Close()

	for _, query := range []string{
		"level=14",
		viewport,
		viewport + "&level=0",
		viewport + "&level=15",
		viewport + "&level=14&minScore=2",
		"swLat=37.51&swLng=127.02&neLat=37.49&neLng=127.06&level=14",
	} {
		resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/territories?"+query, nil)
		is.Equal(resp.StatusCode, http.StatusBadRequest)
	}

	is.Equal(len(svc.PropertiesWithinCalls()), 0)
}

func TestMetricsAreExposed(t *testing.T) {
	is, server, _, _ := testSetup(t)
	defer server.Close()

	testRequest(is, server, http.MethodGet, "/api/v0/territories?"+viewport+"&level=14", nil)

	resp, body := testRequest(is, server, http.MethodGet, "/metrics", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, "auction_map_hot_territories_total 1"))
}

const viewport string = "swLat=37.49&swLng=127.02&neLat=37.51&neLng=127.06"

func testSetup(t *testing.T) (*is.I, *httptest.Server, *auctions.AuctionServiceMock, *events.EventSenderMock) {
	is := is.New(t)

	area := 50.0
	hotProperty := func(id string, lat, lng float64) types.AuctionProperty {
		return types.AuctionProperty{
			ID:              id,
			PropertyType:    "아파트",
			MinimumBidPrice: 2_000_000_000,
			AppraisedValue:  2_000_000_000,
			Latitude:        lat,
			Longitude:       lng,
			TotalArea:       &area,
		}
	}

	properties := []types.AuctionProperty{
		hotProperty("p1", 37.492, 127.022),
		hotProperty("p2", 37.493, 127.025),
		hotProperty("p3", 37.495, 127.03),
		hotProperty("p4", 37.505, 127.05),
	}

	svc := &auctions.AuctionServiceMock{
		SearchPropertiesFunc: func(ctx context.Context, params types.SearchParams) (types.SearchResult, error) {
			return types.NewSearchResult(properties, int64(len(properties)), params), nil
		},
		GetPropertyDetailFunc: func(ctx context.Context, propertyID string) (types.AuctionProperty, error) {
			for _, p := range properties {
				if p.ID == propertyID {
					return p, nil
				}
			}
			return types.AuctionProperty{}, fmt.Errorf("%w: %s", auctions.ErrPropertyNotFound, propertyID)
		},
		GetCourtsFunc: func(ctx context.Context) ([]string, error) {
			return auctions.Courts, nil
		},
		GetPropertyTypesFunc: func(ctx context.Context) ([]string, error) {
			return auctions.PropertyTypes, nil
		},
		PropertiesWithinFunc: func(ctx context.Context, bounds types.Bounds) ([]types.AuctionProperty, error) {
			return properties, nil
		},
	}

	sender := &events.EventSenderMock{
		HasSubscribersFunc: func(eventType string) bool {
			return true
		},
		SendHotTerritoryFunc: func(ctx context.Context, message types.HotTerritoryDetected) error {
			return nil
		},
	}

	m := metrics.New()
	r := chi.NewRouter()
	r.Use(m.Middleware)

	RegisterHandlers(context.Background(), r, svc, territory.NewAnalyzer(territory.DefaultConfig()), sender, m)

	return is, httptest.NewServer(r), svc, sender
}

func testRequest(is *is.I, ts *httptest.Server, method, path string, headers map[string]string) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	return resp, string(respBody)
}
