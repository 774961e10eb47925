package tray

import (
	"context"
	"errors"
	"sync"
	"time"

	"chucktray/models"
	"chucktray/notify"
	"chucktray/quote"
	"chucktray/storage"

	"github.com/sirupsen/logrus"
)

// NotificationTitle is the title of every joke notification
const NotificationTitle = "Chuck fact..."

const eventBuffer = 32

// View is the GUI surface driven by the controller
type View interface {
	SetSettingsVisible(visible bool)
	SetRepeatEnabled(enabled bool)
	Quit()
}

// Config holds the controller dependencies
type Config struct {
	Store    *storage.Manager
	Fetcher  quote.Fetcher
	Notifier notify.Notifier
	View     View
	Logger   *logrus.Logger

	// NewTimer builds the refresh timer; defaults to NewRefreshTimer
	NewTimer func(interval time.Duration, onTick func(gen uint64)) Timer

	// OnDiagnostic is called from the event loop for every swallowed
	// persistence failure
	OnDiagnostic func(storage.Diagnostic)
}

// Controller owns the tray application state. All events are handled
// serially, either by Run or by a direct Dispatch call.
type Controller struct {
	store        *storage.Manager
	fetcher      quote.Fetcher
	notifier     notify.Notifier
	view         View
	timer        Timer
	log          *logrus.Entry
	onDiagnostic func(storage.Diagnostic)

	handlers map[EventKind]func(Event)
	events   chan Event
	done     chan struct{}
	ctx      context.Context

	stateMu         sync.RWMutex
	settings        models.Settings
	settingsVisible bool
	repeatEnabled   bool

	quoteMu   sync.Mutex
	lastQuote string
}

// NewController loads the settings and wires the dispatch table. The timer
// is created stopped; Run starts it.
func NewController(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	c := &Controller{
		store:        cfg.Store,
		fetcher:      cfg.Fetcher,
		notifier:     cfg.Notifier,
		view:         cfg.View,
		log:          logger.WithField("component", "tray"),
		onDiagnostic: cfg.OnDiagnostic,
		events:       make(chan Event, eventBuffer),
		done:         make(chan struct{}),
		ctx:          context.Background(),
	}
	c.settings = *c.store.LoadSettings()

	newTimer := cfg.NewTimer
	if newTimer == nil {
		newTimer = func(interval time.Duration, onTick func(gen uint64)) Timer {
			return NewRefreshTimer(interval, onTick)
		}
	}
	c.timer = newTimer(c.settings.Interval(), func(gen uint64) {
		c.Post(Event{Kind: EventTick, Gen: gen})
	})

	c.handlers = map[EventKind]func(Event){
		EventToggleSettings:   c.toggleSettings,
		EventShowSettings:     c.showSettings,
		EventHideSettings:     c.hideSettings,
		EventIntervalSelected: c.changeInterval,
		EventSilentToggled:    c.changeSilent,
		EventTick:             c.nextQuote,
		EventNextQuote:        c.nextQuote,
		EventRepeatLastQuote:  c.repeatLastQuote,
		EventExit:             c.exit,
	}

	return c
}

// Run starts the refresh timer and handles posted events until Exit is
// handled or ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	c.ctx = ctx
	defer close(c.done)
	defer c.timer.Stop()

	c.log.WithField("interval", c.Settings().Interval()).Info("tray started")
	c.timer.Start()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d := <-c.store.Diagnostics():
			if c.onDiagnostic != nil {
				c.onDiagnostic(d)
			}
		case ev := <-c.events:
			c.Dispatch(ev)
			if ev.Kind == EventExit {
				return nil
			}
		}
	}
}

// Post queues an event for Run. It is safe to call from any goroutine and
// returns immediately once the loop has ended.
func (c *Controller) Post(ev Event) {
	select {
	case c.events <- ev:
	case <-c.done:
	}
}

// Dispatch handles one event on the calling goroutine
func (c *Controller) Dispatch(ev Event) {
	handler, ok := c.handlers[ev.Kind]
	if !ok {
		c.log.WithField("event", ev.Kind.String()).Warn("no handler for event")
		return
	}
	c.log.WithField("event", ev.Kind.String()).Debug("dispatch")
	handler(ev)
}

// Settings returns a copy of the current settings
func (c *Controller) Settings() models.Settings {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.settings
}

// SettingsVisible reports whether the settings window is shown
func (c *Controller) SettingsVisible() bool {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.settingsVisible
}

// RepeatEnabled reports whether "Repeat last quote" is enabled
func (c *Controller) RepeatEnabled() bool {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.repeatEnabled
}

// TimerRunning reports whether the refresh timer is scheduled
func (c *Controller) TimerRunning() bool {
	return c.timer.Running()
}

// LastQuote returns the most recently shown joke
func (c *Controller) LastQuote() (string, bool) {
	c.quoteMu.Lock()
	defer c.quoteMu.Unlock()
	return c.lastQuote, c.lastQuote != ""
}

func (c *Controller) toggleSettings(Event) {
	c.setSettingsVisible(!c.SettingsVisible())
}

func (c *Controller) showSettings(Event) {
	c.setSettingsVisible(true)
}

func (c *Controller) hideSettings(Event) {
	c.setSettingsVisible(false)
}

func (c *Controller) setSettingsVisible(visible bool) {
	c.stateMu.Lock()
	c.settingsVisible = visible
	c.stateMu.Unlock()

	c.view.SetSettingsVisible(visible)
}

func (c *Controller) changeInterval(ev Event) {
	choice, ok := models.IntervalAt(ev.Index)
	if !ok {
		c.log.WithField("index", ev.Index).Warn("ignoring unknown interval")
		return
	}

	c.log.WithFields(logrus.Fields{
		"label":  choice.Label,
		"millis": choice.Millis,
	}).Info("refresh interval changed")

	c.timer.Stop()
	c.store.SaveInterval(choice.Millis)

	c.stateMu.Lock()
	c.settings.RefreshInterval = choice.Millis
	interval := c.settings.Interval()
	c.stateMu.Unlock()

	c.timer.SetInterval(interval)
	c.timer.Start()
}

func (c *Controller) changeSilent(ev Event) {
	c.store.SaveSilent(ev.On)

	c.stateMu.Lock()
	c.settings.Silent = ev.On
	c.stateMu.Unlock()
}

// nextQuote fetches and shows a joke. The timer is paused for the whole
// fetch so ticks never overlap, and restarted whatever the outcome. A tick
// queued before the timer was last stopped is dropped.
func (c *Controller) nextQuote(ev Event) {
	if ev.Kind == EventTick && ev.Gen != c.timer.Generation() {
		c.log.WithField("gen", ev.Gen).Debug("dropping stale tick")
		return
	}

	c.timer.Stop()
	defer c.timer.Start()

	joke, err := c.fetcher.Fetch(c.ctx)
	if err != nil {
		entry := c.log.WithField("event", ev.Kind.String()).WithError(err)
		if errors.Is(err, quote.ErrNoShortJoke) {
			entry.Info("skipping cycle")
		} else {
			entry.Debug("fetch failed")
		}
		return
	}

	c.quoteMu.Lock()
	c.lastQuote = joke.Value
	c.quoteMu.Unlock()

	c.stateMu.Lock()
	wasEnabled := c.repeatEnabled
	c.repeatEnabled = true
	c.stateMu.Unlock()
	if !wasEnabled {
		c.view.SetRepeatEnabled(true)
	}

	c.show(joke.Value)
}

func (c *Controller) repeatLastQuote(Event) {
	text, ok := c.LastQuote()
	if !ok {
		return
	}

	c.timer.Stop()
	c.show(text)
	c.timer.Start()
}

func (c *Controller) show(text string) {
	n := notify.Notification{
		Title:   NotificationTitle,
		Message: text,
		Silent:  c.Settings().Silent,
	}
	if err := c.notifier.Notify(n); err != nil {
		c.log.WithError(err).Warn("notification failed")
	}
}

func (c *Controller) exit(Event) {
	c.log.Info("exiting")
	c.timer.Stop()
	c.view.Quit()
}
