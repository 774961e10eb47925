package tray

import (
	"sync"
	"time"
)

// Timer is a restartable periodic timer
type Timer interface {
	Start()
	Stop()
	SetInterval(d time.Duration)
	Running() bool
	Generation() uint64
}

// RefreshTimer calls onTick every interval until stopped, passing the
// generation the tick belongs to. Stop followed by Start begins a full new
// period in a new generation.
type RefreshTimer struct {
	mu       sync.Mutex
	interval time.Duration
	onTick   func(gen uint64)
	timer    *time.Timer
	gen      uint64 // bumped on Stop so fires of an old timer are ignored
}

// NewRefreshTimer creates a stopped timer
func NewRefreshTimer(interval time.Duration, onTick func(gen uint64)) *RefreshTimer {
	return &RefreshTimer{interval: interval, onTick: onTick}
}

// Start starts the timer if it is not already running
func (t *RefreshTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil || t.interval <= 0 {
		return
	}
	t.schedule()
}

// Stop stops the timer; a tick already in flight is discarded
func (t *RefreshTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
}

// SetInterval changes the period used from the next Start on
func (t *RefreshTimer) SetInterval(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.interval = d
}

// Interval returns the current period
func (t *RefreshTimer) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.interval
}

// Running reports whether a tick is scheduled
func (t *RefreshTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.timer != nil
}

// Generation identifies the current run; it changes on every Stop
func (t *RefreshTimer) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.gen
}

// schedule must be called with mu held
func (t *RefreshTimer) schedule() {
	gen := t.gen
	t.timer = time.AfterFunc(t.interval, func() {
		t.mu.Lock()
		if gen != t.gen || t.timer == nil {
			t.mu.Unlock()
			return
		}
		t.schedule()
		t.mu.Unlock()

		t.onTick(gen)
	})
}
