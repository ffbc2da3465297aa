package mapview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gyeongmae/auction-map/internal/pkg/application/debounce"
	"github.com/gyeongmae/auction-map/internal/pkg/application/territory"
	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/logging"
	"github.com/gyeongmae/auction-map/pkg/types"
)

type Source interface {
	Properties(ctx context.Context) ([]types.AuctionProperty, error)
}

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var ErrClosed = errors.New("map view is closed")

const (
	DefaultLoadAttempts int           = 3
	DefaultLoadInterval time.Duration = 500 * time.Millisecond
	maxLoadInterval     time.Duration = 5 * time.Second
)

type Option func(*MapView)

func WithDelay(d time.Duration) Option {
	return func(v *MapView) {
		v.debouncer = debounce.New(d)
	}
}

func WithConfig(cfg territory.Config) Option {
	return func(v *MapView) {
		v.analyzer = territory.NewAnalyzer(cfg)
	}
}

func WithMinScore(score float64) Option {
	return func(v *MapView) {
		v.minScore = score
	}
}

func WithLoadRetry(attempts int, initialInterval time.Duration) Option {
	return func(v *MapView) {
		if attempts > 0 {
			v.loadAttempts = attempts
		}
		if initialInterval > 0 {
			v.loadInterval = initialInterval
		}
	}
}

// OnTerritories registers the callback receiving every recomputed analysis.
func OnTerritories(fn func(types.TerritoryAnalysis)) Option {
	return func(v *MapView) {
		v.onTerritories = fn
	}
}

func OnError(fn func(error)) Option {
	return func(v *MapView) {
		v.onError = fn
	}
}

type viewport struct {
	bounds types.Bounds
	level  int
}

// MapView keeps the property list of a map front end and recomputes the
// territory analysis after the viewport has settled.
type MapView struct {
	source        Source
	analyzer      *territory.Analyzer
	debouncer     *debounce.Debouncer
	onTerritories func(types.TerritoryAnalysis)
	onError       func(error)
	loadAttempts  int
	loadInterval  time.Duration

	mu         sync.Mutex
	state      State
	err        error
	loaded     chan struct{}
	closed     bool
	minScore   float64
	properties []types.AuctionProperty
	viewport   *viewport
	latest     *types.TerritoryAnalysis
}

func New(source Source, opts ...Option) *MapView {
	v := &MapView{
		source:        source,
		analyzer:      territory.NewAnalyzer(territory.DefaultConfig()),
		debouncer:     debounce.New(debounce.DefaultDelay),
		onTerritories: func(types.TerritoryAnalysis) {},
		onError:       func(error) {},
		loadAttempts:  DefaultLoadAttempts,
		loadInterval:  DefaultLoadInterval,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Load fetches the property list. Only the first call performs the fetch,
// concurrent and later callers wait for and share its outcome.
func (v *MapView) Load(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	if v.loaded != nil {
		done := v.loaded
		v.mu.Unlock()

		select {
		case <-done:
			return v.Err()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	v.loaded = make(chan struct{})
	v.state = StateLoading
	v.mu.Unlock()

	properties, err := v.fetch(ctx)

	v.mu.Lock()
	if err != nil {
		v.state = StateFailed
		v.err = err
	} else {
		v.state = StateReady
		v.properties = properties
	}
	pending := v.viewport != nil && !v.closed
	close(v.loaded)
	v.mu.Unlock()

	if err != nil {
		logger := logging.GetLoggerFromContext(ctx)
		logger.Error().Err(err).Msg("failed to load properties")
		v.onError(err)
		return err
	}

	if pending {
		v.debouncer.Trigger(v.recompute)
	}

	return nil
}

func (v *MapView) fetch(ctx context.Context) ([]types.AuctionProperty, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = v.loadInterval
	b.MaxInterval = maxLoadInterval
	b.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(v.loadAttempts-1)), ctx)

	var properties []types.AuctionProperty

	err := backoff.Retry(func() error {
		var err error
		properties, err = v.source.Properties(ctx)
		return err
	}, policy)

	return properties, err
}

func (v *MapView) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Err returns the error that made the load fail, if it did.
func (v *MapView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// SetViewport records the visible area and schedules a debounced recompute.
// Invalid bounds or levels are rejected without touching the current viewport.
func (v *MapView) SetViewport(bounds types.Bounds, level int) error {
	if !bounds.Valid() {
		return territory.ErrInvalidBounds
	}
	if _, err := territory.Divisions(level); err != nil {
		return err
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	v.viewport = &viewport{bounds: bounds, level: level}
	ready := v.state == StateReady
	v.mu.Unlock()

	if ready {
		v.debouncer.Trigger(v.recompute)
	}

	return nil
}

func (v *MapView) SetMinScore(score float64) {
	v.mu.Lock()
	v.minScore = score
	ready := v.state == StateReady && v.viewport != nil && !v.closed
	v.mu.Unlock()

	if ready {
		v.debouncer.Trigger(v.recompute)
	}
}

// Territories returns the most recent analysis, if any has completed.
func (v *MapView) Territories() (types.TerritoryAnalysis, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.latest == nil {
		return types.TerritoryAnalysis{}, false
	}
	return *v.latest, true
}

func (v *MapView) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()

	v.debouncer.Stop()
}

func (v *MapView) recompute() {
	v.mu.Lock()
	if v.closed || v.state != StateReady || v.viewport == nil {
		v.mu.Unlock()
		return
	}
	vp := *v.viewport
	minScore := v.minScore
	properties := v.properties
	v.mu.Unlock()

	analysis, err := v.analyzer.Analyze(vp.bounds, vp.level, minScore, properties)
	if err != nil {
		v.onError(err)
		return
	}

	model := analysis.ToModel()

	v.mu.Lock()
	v.latest = &model
	v.mu.Unlock()

	v.onTerritories(model)
}
