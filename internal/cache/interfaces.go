package cache

import "github.com/bassista/go_unis/internal/university"

// ReadOnlyStore is the cache API for read-only controllers.
type ReadOnlyStore interface {
	Snapshot() (State, error)
	Find(id string) (university.University, bool)
}

// DisplayStore is the cache API the presenters write through.
type DisplayStore interface {
	ReadOnlyStore
	Replace(unis []university.University) error
	Fail(message string)
	Select(id string) (university.University, bool)
	ClearSelection()
}
