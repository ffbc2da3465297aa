package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestOnlyTheLastTriggerFires(t *testing.T) {
	is := is.New(t)
	d := New(20 * time.Millisecond)

	var calls int32
	var last int32

	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Trigger(func() {
			atomic.AddInt32(&calls, 1)
			atomic.StoreInt32(&last, n)
		})
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	is.Equal(atomic.LoadInt32(&calls), int32(1))
	is.Equal(atomic.LoadInt32(&last), int32(5))
}

func TestSeparatedTriggersFireEach(t *testing.T) {
	is := is.New(t)
	d := New(10 * time.Millisecond)

	var calls int32

	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	time.Sleep(60 * time.Millisecond)
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	time.Sleep(60 * time.Millisecond)

	is.Equal(atomic.LoadInt32(&calls), int32(2))
}

func TestStopCancelsPendingCall(t *testing.T) {
	is := is.New(t)
	d := New(20 * time.Millisecond)

	var calls int32
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })

	is.True(d.Stop())
	time.Sleep(60 * time.Millisecond)

	is.Equal(atomic.LoadInt32(&calls), int32(0))
	is.True(!d.Stop())
}

func TestDefaultDelay(t *testing.T) {
	is := is.New(t)
	is.Equal(New(0).Delay(), DefaultDelay)
}
