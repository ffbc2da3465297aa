package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gyeongmae/auction-map/internal/pkg/application/auctions"
	"github.com/gyeongmae/auction-map/internal/pkg/application/events"
	"github.com/gyeongmae/auction-map/internal/pkg/application/territory"
	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/logging"
	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/metrics"
	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/tracing"
	"github.com/gyeongmae/auction-map/pkg/types"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("auction-map/api")

const GeoJSONContentType string = "application/geo+json"

// NotificationTimeout bounds the delivery of all hot territory events raised by one analysis.
const NotificationTimeout time.Duration = 10 * time.Second

var errBadRequest = errors.New("bad request")

func RegisterHandlers(ctx context.Context, router *chi.Mux, svc auctions.AuctionService, analyzer *territory.Analyzer, sender events.EventSender, m *metrics.Metrics) *chi.Mux {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	if m != nil {
		router.Method(http.MethodGet, "/metrics", m.Handler())
	}

	log := logging.GetLoggerFromContext(ctx)

	router.Route("/api/v0", func(r chi.Router) {
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", searchPropertiesHandler(log, svc))
			r.Get("/{propertyID}", getPropertyHandler(log, svc))
		})

		r.Get("/courts", listHandler(log, "get-courts", svc.GetCourts))
		r.Get("/property-types", listHandler(log, "get-property-types", svc.GetPropertyTypes))

		r.Get("/territories", territoriesHandler(log, svc, analyzer, sender, m))
	})

	return router
}

func searchPropertiesHandler(log zerolog.Logger, svc auctions.AuctionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "search-properties")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		params, err := searchParamsFromQuery(r)
		if err != nil {
			requestLogger.Debug().Err(err).Msg("invalid search parameters")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result, err := svc.SearchProperties(ctx, params)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to search properties")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, result)
	}
}

func getPropertyHandler(log zerolog.Logger, svc auctions.AuctionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-property")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		propertyID := chi.URLParam(r, "propertyID")
		requestLogger = requestLogger.With().Str("property_id", propertyID).Logger()

		property, err := svc.GetPropertyDetail(ctx, propertyID)
		if errors.Is(err, auctions.ErrPropertyNotFound) {
			requestLogger.Debug().Msg("property not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error().Err(err).Msg("could not fetch data")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, property)
	}
}

func listHandler(log zerolog.Logger, operation string, list func(context.Context) ([]string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), operation)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		values, err := list(ctx)
		if err != nil {
			requestLogger.Error().Err(err).Msg("could not fetch data")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, values)
	}
}

func territoriesHandler(log zerolog.Logger, svc auctions.AuctionService, analyzer *territory.Analyzer, sender events.EventSender, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "analyze-territories")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		bounds, level, minScore, err := viewportFromQuery(r)
		if err != nil {
			requestLogger.Debug().Err(err).Msg("invalid viewport")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		properties, err := svc.PropertiesWithin(ctx, bounds)
		if errors.Is(err, territory.ErrInvalidBounds) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			requestLogger.Error().Err(err).Msg("could not fetch properties within viewport")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		analysis, err := analyzer.Analyze(bounds, level, minScore, properties)
		if errors.Is(err, territory.ErrInvalidBounds) || errors.Is(err, territory.ErrInvalidLevel) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			requestLogger.Error().Err(err).Msg("territory analysis failed")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		hot := analysis.Hot(analyzer.Config().HotThreshold)

		if m != nil {
			m.RecordAnalysis(analysis.Scored, len(hot))
		}

		notifyHotTerritories(ctx, requestLogger, sender, hot, level)

		requestLogger.Debug().
			Int("level", level).
			Int("properties", len(properties)).
			Int("scored", analysis.Scored).
			Int("territories", len(analysis.Territories)).
			Msg("territory analysis complete")

		if strings.Contains(r.Header.Get("Accept"), GeoJSONContentType) {
			b, err := analysis.FeatureCollection().MarshalJSON()
			if err != nil {
				requestLogger.Error().Err(err).Msg("unable to marshal feature collection")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			w.Header().Add("Content-Type", GeoJSONContentType)
			w.WriteHeader(http.StatusOK)
			w.Write(b)
			return
		}

		writeJSON(w, requestLogger, analysis.ToModel())
	}
}

// notifyHotTerritories sends events in the background, detached from the
// request so that slow subscribers never delay the response.
func notifyHotTerritories(ctx context.Context, log zerolog.Logger, sender events.EventSender, hot []territory.Territory, level int) {
	if sender == nil || len(hot) == 0 {
		return
	}

	if !sender.HasSubscribers((&types.HotTerritoryDetected{}).TopicName()) {
		return
	}

	now := time.Now().UTC()

	messages := make([]types.HotTerritoryDetected, 0, len(hot))
	for _, t := range hot {
		model := territory.MapToModel(t)
		messages = append(messages, types.HotTerritoryDetected{
			TerritoryID:      model.ID,
			Center:           model.Center,
			Bounds:           model.Bounds,
			Count:            model.Count,
			CompetitionScore: model.CompetitionScore,
			CompetitionLevel: model.CompetitionLevel,
			Level:            level,
			Timestamp:        now,
		})
	}

	detached := trace.ContextWithSpanContext(context.Background(), trace.SpanContextFromContext(ctx))
	detached = logging.NewContextWithLogger(detached, log)

	go func() {
		sendCtx, cancel := context.WithTimeout(detached, NotificationTimeout)
		defer cancel()

		for _, msg := range messages {
			err := sender.SendHotTerritory(sendCtx, msg)
			if err != nil {
				log.Warn().Err(err).Str("territory_id", msg.TerritoryID).Msg("could not send hot territory event")
			}
		}
	}()
}

func searchParamsFromQuery(r *http.Request) (types.SearchParams, error) {
	q := r.URL.Query()

	params := types.SearchParams{
		Court:        q.Get("court"),
		PropertyType: q.Get("type"),
		Status:       q.Get("status"),
		Keyword:      q.Get("q"),
	}

	var err error

	if params.MinPrice, err = optionalInt64(q.Get("minPrice"), "minPrice"); err != nil {
		return params, err
	}
	if params.MaxPrice, err = optionalInt64(q.Get("maxPrice"), "maxPrice"); err != nil {
		return params, err
	}
	if params.MinPrice != nil && params.MaxPrice != nil && *params.MinPrice > *params.MaxPrice {
		return params, fmt.Errorf("%w: minPrice exceeds maxPrice", errBadRequest)
	}

	if params.Page, err = optionalInt(q.Get("page"), "page"); err != nil {
		return params, err
	}
	if params.PageSize, err = optionalInt(q.Get("pageSize"), "pageSize"); err != nil {
		return params, err
	}

	return params.Normalized(), nil
}

func viewportFromQuery(r *http.Request) (types.Bounds, int, float64, error) {
	q := r.URL.Query()

	var coords [4]float64
	for i, name := range []string{"swLat", "swLng", "neLat", "neLng"} {
		v, err := strconv.ParseFloat(q.Get(name), 64)
		if err != nil {
			return types.Bounds{}, 0, 0, fmt.Errorf("%w: %s must be a number", errBadRequest, name)
		}
		coords[i] = v
	}

	bounds := types.Bounds{
		SouthWest: types.LatLng{Lat: coords[0], Lng: coords[1]},
		NorthEast: types.LatLng{Lat: coords[2], Lng: coords[3]},
	}
	if !bounds.Valid() {
		return types.Bounds{}, 0, 0, territory.ErrInvalidBounds
	}

	level, err := strconv.Atoi(q.Get("level"))
	if err != nil || level < territory.MinLevel || level > territory.MaxLevel {
		return types.Bounds{}, 0, 0, territory.ErrInvalidLevel
	}

	minScore := 0.0
	if s := q.Get("minScore"); s != "" {
		minScore, err = strconv.ParseFloat(s, 64)
		if err != nil || minScore < 0 || minScore > 1 {
			return types.Bounds{}, 0, 0, fmt.Errorf("%w: minScore must be between 0 and 1", errBadRequest)
		}
	}

	return bounds, level, minScore, nil
}

func optionalInt64(s, name string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("%w: %s must be a non-negative integer", errBadRequest, name)
	}
	return &v, nil
}

func optionalInt(s, name string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", errBadRequest, name)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, log zerolog.Logger, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		log.Error().Err(err).Msg("unable to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
