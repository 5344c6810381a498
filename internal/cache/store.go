package cache

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bassista/go_unis/internal/university"
)

// State is what is currently on display.
type State struct {
	Universities []university.University `json:"universities"`
	Error        string                  `json:"error,omitempty"`
	LastUpdate   int64                   `json:"lastUpdate"` // unix millis of the last successful load
	Selected     *university.University  `json:"selected,omitempty"`
}

// Store keeps the displayed list, the last error and the selection.
type Store struct {
	mu    sync.RWMutex
	state State
	now   func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{state: State{Universities: []university.University{}}, now: time.Now}
}

// GetLastUpdate returns the time of the last successful Replace in unix millis.
func (s *Store) GetLastUpdate() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.LastUpdate
}

// Snapshot returns a deep copy of the state.
func (s *Store) Snapshot() (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.state)
}

// Replace swaps the displayed list and clears any error. The selection is
// kept only if the selected record is still listed.
func (s *Store) Replace(unis []university.University) error {
	cloned, err := clone(unis)
	if err != nil {
		return err
	}
	if cloned == nil {
		cloned = []university.University{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Universities = cloned
	s.state.Error = ""
	s.state.LastUpdate = s.now().UnixMilli()
	if s.state.Selected != nil {
		if u, ok := s.find(s.state.Selected.ID); ok {
			s.state.Selected = &u
		} else {
			s.state.Selected = nil
		}
	}
	return nil
}

// Fail clears the list and the selection and records message.
func (s *Store) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Universities = []university.University{}
	s.state.Error = message
	s.state.Selected = nil
}

// Select marks the displayed record with id as selected.
func (s *Store) Select(id string) (university.University, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.find(id)
	if !ok {
		return university.University{}, false
	}
	s.state.Selected = &u
	return cloneUniversity(u), true
}

func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Selected = nil
}

// Find returns a copy of the displayed record with id.
func (s *Store) Find(id string) (university.University, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.find(id)
	if !ok {
		return university.University{}, false
	}
	return cloneUniversity(u), true
}

// find must be called with mu held.
func (s *Store) find(id string) (university.University, bool) {
	for _, u := range s.state.Universities {
		if u.ID == id {
			return u, true
		}
	}
	return university.University{}, false
}

// clone deep-copies v so callers never share slices or pointers with the store.
func clone[T any](v T) (T, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		var zero T
		return zero, err
	}
	var copy T
	if err := json.Unmarshal(bytes, &copy); err != nil {
		var zero T
		return zero, err
	}
	return copy, nil
}

// cloneUniversity cannot fail: University holds only strings and string slices.
func cloneUniversity(u university.University) university.University {
	c, _ := clone(u)
	return c
}
