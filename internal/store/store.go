// Package store keeps the console state that the i18n loader reads at call time.
package store

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/consolei18n/pkg/i18n"
)

// ErrNotInitialized is returned when the state is read before the first write.
var ErrNotInitialized = errors.New("store: state is not initialized")

// State is an immutable snapshot of the console state.
type State struct {
	Config Config
}

// Config is the configuration slice of the state.
type Config struct {
	I18n i18n.LocaleConfig
}

func (s State) clone() State {
	s.Config.I18n = s.Config.I18n.Clone()
	return s
}

// Store publishes State snapshots. Reads are lock-free; writes are serialized.
type Store struct {
	state atomic.Pointer[State]
	mu    sync.Mutex
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// GetState returns a copy of the current state.
func (s *Store) GetState() (State, error) {
	st := s.state.Load()
	if st == nil {
		return State{}, ErrNotInitialized
	}
	return st.clone(), nil
}

// I18nConfig returns the locale configuration of the current state.
func (s *Store) I18nConfig() (i18n.LocaleConfig, error) {
	st, err := s.GetState()
	if err != nil {
		return i18n.LocaleConfig{}, err
	}
	return st.Config.I18n, nil
}

// SetI18nConfig publishes a new state carrying cfg.
func (s *Store) SetI18nConfig(cfg i18n.LocaleConfig) {
	s.update(func(st *State) {
		st.Config.I18n = cfg.Clone()
	})
}

func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next State
	if cur := s.state.Load(); cur != nil {
		next = cur.clone()
	}
	fn(&next)
	s.state.Store(&next)
}
