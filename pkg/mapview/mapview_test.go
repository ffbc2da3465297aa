package mapview

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gyeongmae/auction-map/internal/pkg/application/territory"
	"github.com/gyeongmae/auction-map/pkg/client"
	"github.com/gyeongmae/auction-map/pkg/types"
	"github.com/matryer/is"
)

type sourceFunc func(ctx context.Context) ([]types.AuctionProperty, error)

func (f sourceFunc) Properties(ctx context.Context) ([]types.AuctionProperty, error) {
	return f(ctx)
}

func TestLoadFetchesOnlyOnce(t *testing.T) {
	is := is.New(t)

	var calls int32
	release := make(chan struct{})
	source := sourceFunc(func(ctx context.Context) ([]types.AuctionProperty, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return testProperties(), nil
	})

	v := New(source)
	defer v.Close()

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- v.Load(context.Background())
		}()
	}

	time.Sleep(20 * time.Millisecond)
	is.Equal(v.State(), StateLoading)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		is.NoErr(err)
	}

	is.NoErr(v.Load(context.Background()))
	is.Equal(atomic.LoadInt32(&calls), int32(1))
	is.Equal(v.State(), StateReady)
}

func TestLoadRetriesAndSurfacesFailure(t *testing.T) {
	is := is.New(t)

	var calls int32
	boom := errors.New("script failed to load")
	source := sourceFunc(func(ctx context.Context) ([]types.AuctionProperty, error) {
		atomic.AddInt32(&calls, 1)
		return nil, boom
	})

	var reported error
	v := New(source, WithLoadRetry(3, time.Millisecond), OnError(func(err error) { reported = err }))
	defer v.Close()

	err := v.Load(context.Background())
	is.True(errors.Is(err, boom))
	is.Equal(v.State(), StateFailed)
	is.True(errors.Is(v.Err(), boom))
	is.True(errors.Is(reported, boom))
	is.Equal(atomic.LoadInt32(&calls), int32(3))

	// the failure is terminal
	is.True(errors.Is(v.Load(context.Background()), boom))
	is.Equal(atomic.LoadInt32(&calls), int32(3))
}

func TestLoadSucceedsAfterTransientFailure(t *testing.T) {
	is := is.New(t)

	var calls int32
	source := sourceFunc(func(ctx context.Context) ([]types.AuctionProperty, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, errors.New("temporarily unavailable")
		}
		return testProperties(), nil
	})

	v := New(source, WithLoadRetry(3, time.Millisecond))
	defer v.Close()

	is.NoErr(v.Load(context.Background()))
	is.Equal(v.State(), StateReady)
	is.Equal(atomic.LoadInt32(&calls), int32(2))
}

func TestLoadFromAuctionMapClient(t *testing.T) {
	is := is.New(t)

	c := &client.AuctionMapClientMock{
		PropertiesFunc: func(ctx context.Context) ([]types.AuctionProperty, error) {
			return testProperties(), nil
		},
	}

	v := New(c)
	defer v.Close()

	is.NoErr(v.Load(context.Background()))
	is.Equal(v.State(), StateReady)
	is.Equal(len(c.PropertiesCalls()), 1)
}

func TestRapidViewportChangesRecomputeOnce(t *testing.T) {
	is := is.New(t)

	results := make(chan types.TerritoryAnalysis, 10)
	v := New(staticSource(), WithDelay(30*time.Millisecond), OnTerritories(func(a types.TerritoryAnalysis) {
		results <- a
	}))
	defer v.Close()

	is.NoErr(v.Load(context.Background()))

	for level := 1; level <= 14; level++ {
		is.NoErr(v.SetViewport(gangnam, level))
	}

	select {
	case a := <-results:
		is.Equal(a.Level, 14)
		is.Equal(a.Cells, 4)
	case <-time.After(time.Second):
		t.Fatal("no territories were computed")
	}

	select {
	case <-results:
		t.Fatal("superseded viewport was recomputed")
	case <-time.After(100 * time.Millisecond):
	}

	latest, ok := v.Territories()
	is.True(ok)
	is.Equal(latest.Level, 14)
}

func TestViewportSetBeforeLoadIsComputedAfterLoad(t *testing.T) {
	is := is.New(t)

	results := make(chan types.TerritoryAnalysis, 1)
	v := New(staticSource(), WithDelay(5*time.Millisecond), OnTerritories(func(a types.TerritoryAnalysis) {
		results <- a
	}))
	defer v.Close()

	is.NoErr(v.SetViewport(gangnam, 14))
	is.NoErr(v.Load(context.Background()))

	select {
	case a := <-results:
		is.Equal(a.Scored, 1)
		is.Equal(len(a.Territories), 1)
	case <-time.After(time.Second):
		t.Fatal("no territories were computed")
	}
}

func TestSetViewportRejectsInvalidInput(t *testing.T) {
	is := is.New(t)

	v := New(staticSource())
	defer v.Close()

	err := v.SetViewport(types.Bounds{SouthWest: gangnam.NorthEast, NorthEast: gangnam.SouthWest}, 5)
	is.True(errors.Is(err, territory.ErrInvalidBounds))

	err = v.SetViewport(gangnam, 20)
	is.True(errors.Is(err, territory.ErrInvalidLevel))
}

func TestCloseCancelsPendingRecompute(t *testing.T) {
	is := is.New(t)

	var computed int32
	v := New(staticSource(), WithDelay(30*time.Millisecond), OnTerritories(func(types.TerritoryAnalysis) {
		atomic.AddInt32(&computed, 1)
	}))

	is.NoErr(v.Load(context.Background()))
	is.NoErr(v.SetViewport(gangnam, 14))
	v.Close()

	time.Sleep(80 * time.Millisecond)
	is.Equal(atomic.LoadInt32(&computed), int32(0))
	is.True(errors.Is(v.SetViewport(gangnam, 14), ErrClosed))
}

var gangnam = types.Bounds{
	SouthWest: types.LatLng{Lat: 37.49, Lng: 127.02},
	NorthEast: types.LatLng{Lat: 37.51, Lng: 127.06},
}

func staticSource() Source {
	return sourceFunc(func(ctx context.Context) ([]types.AuctionProperty, error) {
		return testProperties(), nil
	})
}

func testProperties() []types.AuctionProperty {
	p := func(id string, lat, lng float64) types.AuctionProperty {
		return types.AuctionProperty{
			ID:              id,
			MinimumBidPrice: 500_000_000,
			AppraisedValue:  650_000_000,
			Latitude:        lat,
			Longitude:       lng,
		}
	}

	return []types.AuctionProperty{
		p("1", 37.492, 127.022),
		p("2", 37.495, 127.03),
		p("3", 37.505, 127.05),
	}
}
