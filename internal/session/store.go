// ABOUTME: Session store holding the client's belief about the signed-in user
// ABOUTME: Single source of truth consulted by the route guard and all pages

package session

import (
	"sync"

	"github.com/liubkkkko/taskManager/internal/api"
)

// State is the client-local session state
type State struct {
	Authenticated bool
	Username      string
	Loading       bool
}

// Store is the single mutable session state for the application.
// Every write bumps a generation counter so a slow bootstrap cannot
// overwrite a logout that happened while it was in flight.
type Store struct {
	mu        sync.Mutex
	state     State
	gen       uint64
	listeners []func(State)
}

// NewStore creates a store in the initial loading state
func NewStore() *Store {
	return &Store{state: State{Loading: true}}
}

// Get returns a copy of the current state
func (s *Store) Get() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Generation returns the current write generation
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Subscribe registers a listener invoked after every state change.
// The returned function removes the listener.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, fn)
	idx := len(s.listeners) - 1
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if idx < len(s.listeners) {
			s.listeners[idx] = nil
		}
	}
}

// Login records a successful authentication. It accepts a plain nickname
// string or an author value and normalizes to a string, defaulting to "".
// Loading is left untouched; only the bootstrap resolves it.
func (s *Store) Login(user any) {
	nick := nicknameOf(user)
	s.write(func(st *State) {
		st.Authenticated = true
		st.Username = nick
	})
}

// Logout clears the local session state. It always succeeds; remote logout
// is the caller's best-effort concern. Loading is forced false so the app
// never sticks in the indeterminate state after an explicit sign-out.
func (s *Store) Logout() {
	s.write(func(st *State) {
		st.Authenticated = false
		st.Username = ""
		st.Loading = false
	})
}

// resolve records the bootstrap outcome and ends the loading phase
func (s *Store) resolve(authenticated bool, username string) {
	s.write(func(st *State) {
		st.Authenticated = authenticated
		st.Username = username
		st.Loading = false
	})
}

// resolveIf applies the bootstrap outcome only when no other write happened
// since generation start. A stale bootstrap still terminates the loading
// phase, but its identity outcome is discarded.
func (s *Store) resolveIf(start uint64, authenticated bool, username string) bool {
	s.mu.Lock()
	if s.gen != start {
		stale := s.state.Loading
		if stale {
			s.state.Loading = false
		}
		state := s.state
		listeners := s.snapshotListeners()
		s.mu.Unlock()
		if stale {
			notify(listeners, state)
		}
		return false
	}
	s.mu.Unlock()

	s.resolve(authenticated, username)
	return true
}

// write applies a mutation, bumps the generation, and notifies listeners
func (s *Store) write(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	s.gen++
	state := s.state
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners, state)
}

// snapshotListeners copies listeners under the lock
func (s *Store) snapshotListeners() []func(State) {
	out := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		if fn != nil {
			out = append(out, fn)
		}
	}
	return out
}

func notify(listeners []func(State), state State) {
	for _, fn := range listeners {
		fn(state)
	}
}

// nicknameOf normalizes the login argument to a nickname string
func nicknameOf(v any) string {
	switch u := v.(type) {
	case string:
		return u
	case *api.Author:
		if u != nil {
			return u.Nickname
		}
	case api.Author:
		return u.Nickname
	}
	return ""
}
