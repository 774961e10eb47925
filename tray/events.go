package tray

// EventKind identifies a user or timer action
type EventKind int

const (
	EventToggleSettings EventKind = iota
	EventShowSettings
	EventHideSettings
	EventIntervalSelected
	EventSilentToggled
	EventTick
	EventNextQuote
	EventRepeatLastQuote
	EventExit
)

var eventNames = map[EventKind]string{
	EventToggleSettings:   "toggle-settings",
	EventShowSettings:     "show-settings",
	EventHideSettings:     "hide-settings",
	EventIntervalSelected: "interval-selected",
	EventSilentToggled:    "silent-toggled",
	EventTick:             "tick",
	EventNextQuote:        "next-quote",
	EventRepeatLastQuote:  "repeat-last-quote",
	EventExit:             "exit",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is posted to the controller by the GUI and the timer
type Event struct {
	Kind  EventKind
	Index int    // catalog index for EventIntervalSelected
	On    bool   // new value for EventSilentToggled
	Gen   uint64 // timer generation for EventTick
}

// IntervalSelected builds the event for a dropdown change
func IntervalSelected(index int) Event {
	return Event{Kind: EventIntervalSelected, Index: index}
}

// SilentToggled builds the event for the silent check box
func SilentToggled(on bool) Event {
	return Event{Kind: EventSilentToggled, On: on}
}
