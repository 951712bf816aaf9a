package theme

import "github.com/muesli/termenv"

// Signal reports whether the surrounding environment prefers a dark
// color scheme, and notifies subscribers when that preference changes.
type Signal interface {
	// Dark returns the current preference.
	Dark() bool

	// Subscribe registers fn to run on every preference change and
	// returns a function that removes the registration.
	Subscribe(fn func(dark bool)) (cancel func())
}

// TermSignal reads the preference from the terminal background via
// termenv. Terminals do not deliver background-change events, so the
// subscription never fires; the preference is re-read on each process
// start instead.
type TermSignal struct{}

// Dark implements Signal.
func (TermSignal) Dark() bool {
	return termenv.HasDarkBackground()
}

// Subscribe implements Signal.
func (TermSignal) Subscribe(func(dark bool)) (cancel func()) {
	return func() {}
}
