package testutil

// FakeSignal is a controllable environment color-scheme signal for tests.
type FakeSignal struct {
	dark bool
	subs []func(dark bool)
}

// NewFakeSignal creates a signal with the given initial preference.
func NewFakeSignal(dark bool) *FakeSignal {
	return &FakeSignal{dark: dark}
}

// Dark implements theme.Signal.
func (f *FakeSignal) Dark() bool { return f.dark }

// Subscribe implements theme.Signal.
func (f *FakeSignal) Subscribe(fn func(dark bool)) (cancel func()) {
	f.subs = append(f.subs, fn)
	i := len(f.subs) - 1
	return func() { f.subs[i] = nil }
}

// Flip changes the preference and notifies subscribers.
func (f *FakeSignal) Flip(dark bool) {
	f.dark = dark
	for _, fn := range f.subs {
		if fn != nil {
			fn(dark)
		}
	}
}
