// Package theme owns the user's theme preference and the concrete
// light/dark value derived from it.
package theme

import (
	"encoding/json"

	"go.uber.org/zap"

	"taskdeck/internal/storage"
)

// Choice is the user's declared preference.
type Choice string

const (
	Light  Choice = "light"
	Dark   Choice = "dark"
	System Choice = "system"
)

// StorageKey is the fixed key the preference persists under. The envelope
// shape {"state":{"theme":...}} is part of the storage contract; external
// readers of this key depend on it.
const StorageKey = "theme-storage"

type envelope struct {
	State struct {
		Theme Choice `json:"theme"`
	} `json:"state"`
}

// Store owns theme and resolvedTheme. The resolved value is never
// persisted independently; it is recomputed from the preference and the
// environment signal at every resolution point: construction, SetTheme,
// and signal changes while the preference is System.
type Store struct {
	store  storage.Store
	signal Signal
	apply  func(resolved Choice)
	log    *zap.Logger
	cancel func()

	theme    Choice
	resolved Choice
}

// New rehydrates the preference from storage (absent or malformed entries
// degrade to System), resolves it against the current signal, applies the
// result, and subscribes to signal changes for the life of the store.
func New(store storage.Store, signal Signal, apply func(resolved Choice), log *zap.Logger) *Store {
	if apply == nil {
		apply = func(Choice) {}
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		store:  store,
		signal: signal,
		apply:  apply,
		log:    log,
		theme:  System,
	}

	if raw, ok := store.Get(StorageKey); ok {
		var env envelope
		if err := json.Unmarshal([]byte(raw), &env); err == nil && valid(env.State.Theme) {
			s.theme = env.State.Theme
		} else {
			log.Debug("ignoring malformed theme entry")
		}
	}

	// Re-resolve rather than trusting anything persisted: the environment
	// may have changed since the entry was written.
	s.resolve()
	s.apply(s.resolved)

	s.cancel = signal.Subscribe(func(dark bool) {
		if s.theme == System {
			s.SetTheme(System)
		}
	})
	return s
}

// SetTheme records the preference, resolves it immediately, applies the
// resolved value, and persists the preference. Failures to persist degrade
// silently; no error reaches the caller.
func (s *Store) SetTheme(choice Choice) {
	if !valid(choice) {
		return
	}
	s.theme = choice
	s.resolve()
	s.apply(s.resolved)

	data, err := json.Marshal(envelopeFor(s.theme))
	if err == nil {
		err = s.store.Set(StorageKey, string(data))
	}
	if err != nil {
		s.log.Debug("theme persist failed", zap.Error(err))
	}
	s.log.Debug("theme set",
		zap.String("theme", string(s.theme)),
		zap.String("resolved", string(s.resolved)))
}

// Theme returns the declared preference.
func (s *Store) Theme() Choice { return s.theme }

// Resolved returns the effective light/dark value.
func (s *Store) Resolved() Choice { return s.resolved }

// Close tears down the signal subscription.
func (s *Store) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Store) resolve() {
	if s.theme == System {
		if s.signal.Dark() {
			s.resolved = Dark
		} else {
			s.resolved = Light
		}
		return
	}
	s.resolved = s.theme
}

func valid(c Choice) bool {
	return c == Light || c == Dark || c == System
}

func envelopeFor(c Choice) envelope {
	var env envelope
	env.State.Theme = c
	return env
}
