package theme_test

import (
	"errors"
	"testing"

	"taskdeck/internal/storage"
	"taskdeck/internal/testutil"
	"taskdeck/internal/theme"
)

var errTest = errors.New("disk full")

func newStore(t *testing.T, kv storage.Store, sig theme.Signal) (*theme.Store, *[]theme.Choice) {
	t.Helper()
	var applied []theme.Choice
	s := theme.New(kv, sig, func(resolved theme.Choice) {
		applied = append(applied, resolved)
	}, nil)
	t.Cleanup(s.Close)
	return s, &applied
}

func TestDefaultsToSystem(t *testing.T) {
	s, applied := newStore(t, storage.NewMemStore(), testutil.NewFakeSignal(true))

	if s.Theme() != theme.System {
		t.Errorf("theme = %q, want system", s.Theme())
	}
	if s.Resolved() != theme.Dark {
		t.Errorf("resolved = %q, want dark", s.Resolved())
	}
	if len(*applied) != 1 || (*applied)[0] != theme.Dark {
		t.Errorf("applied = %v", *applied)
	}
}

func TestSetThemeResolvesAndPersists(t *testing.T) {
	kv := storage.NewMemStore()
	s, applied := newStore(t, kv, testutil.NewFakeSignal(true))

	s.SetTheme(theme.Light)

	if s.Theme() != theme.Light || s.Resolved() != theme.Light {
		t.Errorf("theme=%q resolved=%q", s.Theme(), s.Resolved())
	}
	if last := (*applied)[len(*applied)-1]; last != theme.Light {
		t.Errorf("last applied = %q, want light", last)
	}

	raw, ok := kv.Get(theme.StorageKey)
	if !ok {
		t.Fatal("expected persisted entry")
	}
	if raw != `{"state":{"theme":"light"}}` {
		t.Errorf("persisted envelope = %s", raw)
	}
}

func TestSetThemeSystemFollowsSignal(t *testing.T) {
	sig := testutil.NewFakeSignal(false)
	s, _ := newStore(t, storage.NewMemStore(), sig)

	s.SetTheme(theme.Dark)
	s.SetTheme(theme.System)
	if s.Resolved() != theme.Light {
		t.Errorf("resolved = %q, want light", s.Resolved())
	}
}

func TestSignalChangeWhileSystem(t *testing.T) {
	kv := storage.NewMemStore()
	sig := testutil.NewFakeSignal(false)
	s, applied := newStore(t, kv, sig)

	sig.Flip(true)

	if s.Resolved() != theme.Dark {
		t.Errorf("resolved = %q, want dark", s.Resolved())
	}
	if last := (*applied)[len(*applied)-1]; last != theme.Dark {
		t.Errorf("last applied = %q, want dark", last)
	}
	// The re-resolution persists as if SetTheme(system) were called.
	if raw, _ := kv.Get(theme.StorageKey); raw != `{"state":{"theme":"system"}}` {
		t.Errorf("persisted envelope = %s", raw)
	}
}

func TestSignalChangeIgnoredForExplicitChoice(t *testing.T) {
	sig := testutil.NewFakeSignal(false)
	s, applied := newStore(t, storage.NewMemStore(), sig)

	s.SetTheme(theme.Light)
	before := len(*applied)
	sig.Flip(true)

	if s.Resolved() != theme.Light {
		t.Errorf("resolved = %q, want light", s.Resolved())
	}
	if len(*applied) != before {
		t.Errorf("signal change for explicit choice re-applied: %v", *applied)
	}
}

func TestRehydrationReResolves(t *testing.T) {
	kv := storage.NewMemStore()
	if err := kv.Set(theme.StorageKey, `{"state":{"theme":"light"}}`); err != nil {
		t.Fatal(err)
	}

	// Dark environment must not override a persisted explicit choice.
	s, _ := newStore(t, kv, testutil.NewFakeSignal(true))
	if s.Theme() != theme.Light || s.Resolved() != theme.Light {
		t.Errorf("theme=%q resolved=%q, want light/light", s.Theme(), s.Resolved())
	}
}

func TestRehydrationSystemUsesCurrentSignal(t *testing.T) {
	kv := storage.NewMemStore()
	if err := kv.Set(theme.StorageKey, `{"state":{"theme":"system"}}`); err != nil {
		t.Fatal(err)
	}

	s, _ := newStore(t, kv, testutil.NewFakeSignal(true))
	if s.Resolved() != theme.Dark {
		t.Errorf("resolved = %q, want dark", s.Resolved())
	}
}

func TestMalformedStorageDegradesToDefault(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"corrupt json", `{"state":{`},
		{"unknown choice", `{"state":{"theme":"sepia"}}`},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemStore()
			if err := kv.Set(theme.StorageKey, tt.raw); err != nil {
				t.Fatal(err)
			}
			s, _ := newStore(t, kv, testutil.NewFakeSignal(false))
			if s.Theme() != theme.System {
				t.Errorf("theme = %q, want system", s.Theme())
			}
			if s.Resolved() != theme.Light {
				t.Errorf("resolved = %q, want light", s.Resolved())
			}
		})
	}
}

func TestPersistFailureDegradesSilently(t *testing.T) {
	kv := storage.NewMemStore()
	kv.SetErr = errTest
	s, _ := newStore(t, kv, testutil.NewFakeSignal(false))

	s.SetTheme(theme.Dark)
	if s.Theme() != theme.Dark || s.Resolved() != theme.Dark {
		t.Errorf("theme=%q resolved=%q, want dark/dark", s.Theme(), s.Resolved())
	}
}

func TestInterleavedSetsAndSignalChanges(t *testing.T) {
	sig := testutil.NewFakeSignal(false)
	s, _ := newStore(t, storage.NewMemStore(), sig)

	type step struct {
		set      theme.Choice // "" means flip the signal instead
		flipDark bool
		want     theme.Choice
	}
	steps := []step{
		{set: theme.Dark, want: theme.Dark},
		{flipDark: true, want: theme.Dark},
		{set: theme.System, want: theme.Dark},
		{flipDark: false, want: theme.Light},
		{set: theme.Light, want: theme.Light},
		{flipDark: true, want: theme.Light},
		{set: theme.System, want: theme.Dark},
	}
	for i, st := range steps {
		if st.set != "" {
			s.SetTheme(st.set)
		} else {
			sig.Flip(st.flipDark)
		}
		if s.Resolved() != st.want {
			t.Errorf("step %d: resolved = %q, want %q", i, s.Resolved(), st.want)
		}
	}
}
