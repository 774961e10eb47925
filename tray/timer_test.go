package tray

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshTimerTicksRepeatedly(t *testing.T) {
	var ticks int32
	timer := NewRefreshTimer(10*time.Millisecond, func(uint64) { atomic.AddInt32(&ticks, 1) })
	assert.False(t, timer.Running())

	timer.Start()
	assert.True(t, timer.Running())

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&ticks) >= 3 }, 2*time.Second, 5*time.Millisecond)
	timer.Stop()
	assert.False(t, timer.Running())
}

func TestRefreshTimerStopPreventsTicks(t *testing.T) {
	var ticks int32
	timer := NewRefreshTimer(50*time.Millisecond, func(uint64) { atomic.AddInt32(&ticks, 1) })

	timer.Start()
	timer.Stop()
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, int32(0), atomic.LoadInt32(&ticks))
}

func TestRefreshTimerStartIsIdempotent(t *testing.T) {
	timer := NewRefreshTimer(time.Hour, func(uint64) {})
	defer timer.Stop()

	timer.Start()
	first := timer.timer
	timer.Start()

	assert.Same(t, first, timer.timer)
}

func TestRefreshTimerSetInterval(t *testing.T) {
	timer := NewRefreshTimer(time.Hour, func(uint64) {})
	timer.SetInterval(time.Minute)

	assert.Equal(t, time.Minute, timer.Interval())
}

func TestRefreshTimerZeroIntervalNeverStarts(t *testing.T) {
	timer := NewRefreshTimer(0, func(uint64) {})
	timer.Start()

	assert.False(t, timer.Running())
}

func TestRefreshTimerTicksCarryGeneration(t *testing.T) {
	gens := make(chan uint64, 8)
	timer := NewRefreshTimer(10*time.Millisecond, func(gen uint64) {
		select {
		case gens <- gen:
		default:
		}
	})
	defer timer.Stop()

	timer.Start()
	first := timer.Generation()
	select {
	case gen := <-gens:
		assert.Equal(t, first, gen)
	case <-time.After(2 * time.Second):
		t.Fatal("no tick")
	}

	timer.Stop()
	assert.NotEqual(t, first, timer.Generation())
}
