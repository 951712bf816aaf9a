// Package session owns the authenticated identity and token, persisted
// across invocations.
package session

import (
	"encoding/json"

	"go.uber.org/zap"

	"taskdeck/internal/service"
	"taskdeck/internal/storage"
)

// StorageKey is the fixed key the session persists under.
const StorageKey = "auth-storage"

// Invalidator receives the drop-everything signal when the identity
// behind cached results goes away.
type Invalidator interface {
	InvalidateAll()
}

type envelope struct {
	State struct {
		User  *service.User `json:"user"`
		Token string        `json:"token"`
	} `json:"state"`
}

// Store holds the current session. Authenticated if and only if a token is
// present, and a user is present if and only if a token is: there is no
// anonymous-token state. The store itself lives for the whole run,
// representing "no session" rather than being absent.
type Store struct {
	store storage.Store
	inv   Invalidator
	log   *zap.Logger

	user  *service.User
	token string
}

// New rehydrates the session from storage. A well-formed persisted token
// restores the identity without contacting the backend; token expiry is
// the HTTP layer's concern and surfaces later as an unauthenticated error.
// Corrupt or partial entries (token without user, or the reverse) are
// treated as absent.
func New(store storage.Store, inv Invalidator, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{store: store, inv: inv, log: log}

	raw, ok := store.Get(StorageKey)
	if !ok {
		return s
	}
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		log.Debug("ignoring malformed session entry", zap.Error(err))
		return s
	}
	if env.State.Token == "" || env.State.User == nil {
		return s
	}
	s.user = env.State.User
	s.token = env.State.Token
	return s
}

// Login overwrites the session with the given identity and persists it.
// Repeated calls with the same arguments are idempotent.
func (s *Store) Login(user service.User, token string) error {
	s.user = &user
	s.token = token
	return s.persist()
}

// Logout clears the session. The persisted state is cleared first, then
// the cache is told to drop everything, so no reader of storage can
// observe a cleared memory state alongside a still-logged-in entry.
func (s *Store) Logout() error {
	s.user = nil
	s.token = ""
	err := s.persist()
	if s.inv != nil {
		s.inv.InvalidateAll()
	}
	return err
}

// Authenticated reports whether a token is present.
func (s *Store) Authenticated() bool { return s.token != "" }

// User returns the identity, or the zero User when logged out.
func (s *Store) User() service.User {
	if s.user == nil {
		return service.User{}
	}
	return *s.user
}

// Token returns the credential, "" when logged out.
func (s *Store) Token() string { return s.token }

func (s *Store) persist() error {
	var env envelope
	env.State.User = s.user
	env.State.Token = s.token
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	if err := s.store.Set(StorageKey, string(data)); err != nil {
		s.log.Debug("session persist failed", zap.Error(err))
		return err
	}
	return nil
}
