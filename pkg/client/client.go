package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/logging"
	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/tracing"
	"github.com/gyeongmae/auction-map/pkg/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

//go:generate moq -rm -out client_mock.go . AuctionMapClient

type AuctionMapClient interface {
	SearchProperties(ctx context.Context, params types.SearchParams) (types.SearchResult, error)
	GetProperty(ctx context.Context, propertyID string) (types.AuctionProperty, error)
	GetCourts(ctx context.Context) ([]string, error)
	GetPropertyTypes(ctx context.Context) ([]string, error)
	GetTerritories(ctx context.Context, bounds types.Bounds, level int, minScore float64) (types.TerritoryAnalysis, error)

	// Properties pages through the complete property listing.
	Properties(ctx context.Context) ([]types.AuctionProperty, error)
}

var ErrNotFound = errors.New("not found")

type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.Body)
}

const (
	DefaultMaxAttempts     int           = 5
	DefaultInitialInterval time.Duration = 200 * time.Millisecond
	DefaultMaxInterval     time.Duration = 5 * time.Second
)

type Option func(*auctionMapClient)

func WithHTTPClient(c *http.Client) Option {
	return func(amc *auctionMapClient) {
		amc.httpClient = c
	}
}

func WithMaxAttempts(n int) Option {
	return func(amc *auctionMapClient) {
		if n > 0 {
			amc.maxAttempts = n
		}
	}
}

func WithInitialInterval(d time.Duration) Option {
	return func(amc *auctionMapClient) {
		amc.initialInterval = d
	}
}

type auctionMapClient struct {
	url             string
	httpClient      *http.Client
	maxAttempts     int
	initialInterval time.Duration
}

var tracer = otel.Tracer("auction-map-client")

func New(serviceURL string, opts ...Option) AuctionMapClient {
	c := &auctionMapClient{
		url: strings.TrimSuffix(serviceURL, "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		maxAttempts:     DefaultMaxAttempts,
		initialInterval: DefaultInitialInterval,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *auctionMapClient) SearchProperties(ctx context.Context, params types.SearchParams) (types.SearchResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "search-properties")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	params = params.Normalized()

	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("court", params.Court)
	set("type", params.PropertyType)
	set("status", params.Status)
	set("q", params.Keyword)
	if params.MinPrice != nil {
		q.Set("minPrice", strconv.FormatInt(*params.MinPrice, 10))
	}
	if params.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatInt(*params.MaxPrice, 10))
	}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("pageSize", strconv.Itoa(params.PageSize))

	result := types.SearchResult{}
	err = c.get(ctx, "/api/v0/properties?"+q.Encode(), &result)

	return result, err
}

func (c *auctionMapClient) GetProperty(ctx context.Context, propertyID string) (types.AuctionProperty, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-property")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p := types.AuctionProperty{}
	err = c.get(ctx, "/api/v0/properties/"+url.PathEscape(propertyID), &p)

	return p, err
}

func (c *auctionMapClient) GetCourts(ctx context.Context) ([]string, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-courts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	courts := []string{}
	err = c.get(ctx, "/api/v0/courts", &courts)

	return courts, err
}

func (c *auctionMapClient) GetPropertyTypes(ctx context.Context) ([]string, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-property-types")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	propertyTypes := []string{}
	err = c.get(ctx, "/api/v0/property-types", &propertyTypes)

	return propertyTypes, err
}

func (c *auctionMapClient) GetTerritories(ctx context.Context, bounds types.Bounds, level int, minScore float64) (types.TerritoryAnalysis, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-territories")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	q := url.Values{}
	q.Set("swLat", f(bounds.SouthWest.Lat))
	q.Set("swLng", f(bounds.SouthWest.Lng))
	q.Set("neLat", f(bounds.NorthEast.Lat))
	q.Set("neLng", f(bounds.NorthEast.Lng))
	q.Set("level", strconv.Itoa(level))
	if minScore > 0 {
		q.Set("minScore", f(minScore))
	}

	analysis := types.TerritoryAnalysis{}
	err = c.get(ctx, "/api/v0/territories?"+q.Encode(), &analysis)

	return analysis, err
}

func (c *auctionMapClient) Properties(ctx context.Context) ([]types.AuctionProperty, error) {
	properties := []types.AuctionProperty{}
	params := types.SearchParams{Page: 1, PageSize: types.MaxPageSize}

	for {
		result, err := c.SearchProperties(ctx, params)
		if err != nil {
			return nil, err
		}

		properties = append(properties, result.Items...)

		if !result.HasMore || len(result.Items) == 0 {
			return properties, nil
		}

		params.Page++
	}
}

// get retries transport errors and 5xx responses with capped exponential
// backoff. Any 4xx response fails immediately.
func (c *auctionMapClient) get(ctx context.Context, path string, result any) error {
	log := logging.GetLoggerFromContext(ctx)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval
	b.MaxInterval = DefaultMaxInterval
	b.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxAttempts-1)), ctx)

	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+path, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create http request: %w", err))
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode == http.StatusNotFound {
			return backoff.Permanent(fmt.Errorf("%w: %s", ErrNotFound, path))
		}

		if resp.StatusCode >= http.StatusBadRequest {
			statusErr := &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
			if resp.StatusCode < http.StatusInternalServerError {
				return backoff.Permanent(statusErr)
			}
			return statusErr
		}

		return nil
	}

	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("path", path).Msgf("request failed, retrying in %s", wait)
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}
