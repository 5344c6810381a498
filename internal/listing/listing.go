// Package listing drives the universities list and detail screens: the
// interactors run the repository in the background and the presenters turn
// the outcome into display state and view calls.
package listing

import (
	"context"

	"github.com/bassista/go_unis/internal/university"
)

// Repository is the synchronizing source of universities.
type Repository interface {
	FetchUniversities(ctx context.Context) ([]university.University, error)
	RefreshData(ctx context.Context) ([]university.University, error)
}

// Output receives the outcome of a list load.
type Output interface {
	UniversitiesFetched(unis []university.University)
	UniversitiesFetchingFailed(message string)
}

// View renders the list screen.
type View interface {
	ShowUniversities(unis []university.University)
	ShowError(message string)
}

// DetailsView renders the detail screen.
type DetailsView interface {
	ShowUniversity(u university.University)
	Dismiss()
}
