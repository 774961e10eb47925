package models

const (
	second = 1000
	minute = 60 * second

	// DefaultIntervalMillis is the refresh interval used when nothing is stored.
	DefaultIntervalMillis uint32 = 10 * second
)

// IntervalChoice is one entry of the refresh interval dropdown
type IntervalChoice struct {
	Label  string
	Millis uint32
}

// String returns the label shown in the dropdown
func (c IntervalChoice) String() string {
	return c.Label
}

// Intervals returns the fixed catalog of refresh intervals, shortest first.
// A fresh slice is returned on every call so callers cannot mutate the catalog.
func Intervals() []IntervalChoice {
	return []IntervalChoice{
		{"Every 10 seconds", 10 * second},
		{"Every 15 seconds", 15 * second},
		{"Every 20 seconds", 20 * second},
		{"Every 30 seconds", 30 * second},
		{"Every 45 seconds", 45 * second},
		{"Every minute", minute},
		{"Every 2 minutes", 2 * minute},
		{"Every 5 minutes", 5 * minute},
		{"Every 10 minutes", 10 * minute},
		{"Every 15 minutes", 15 * minute},
		{"Every 20 minutes", 20 * minute},
		{"Every 30 minutes", 30 * minute},
		{"Every 45 minutes", 45 * minute},
		{"Every hour", 60 * minute},
	}
}

// IntervalLabels returns the dropdown labels in catalog order
func IntervalLabels() []string {
	choices := Intervals()
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}
	return labels
}

// IndexForInterval returns the catalog index whose duration equals millis,
// or the index of the 10 second entry when nothing matches.
func IndexForInterval(millis uint32) int {
	for i, c := range Intervals() {
		if c.Millis == millis {
			return i
		}
	}
	return defaultIntervalIndex()
}

// IntervalAt returns the catalog entry at index
func IntervalAt(index int) (IntervalChoice, bool) {
	choices := Intervals()
	if index < 0 || index >= len(choices) {
		return IntervalChoice{}, false
	}
	return choices[index], true
}

// IndexForLabel returns the catalog index of label, or -1
func IndexForLabel(label string) int {
	for i, c := range Intervals() {
		if c.Label == label {
			return i
		}
	}
	return -1
}

func defaultIntervalIndex() int {
	for i, c := range Intervals() {
		if c.Millis == DefaultIntervalMillis {
			return i
		}
	}
	return 0
}
