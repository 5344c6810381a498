package listing

import (
	"context"

	"github.com/bassista/go_unis/internal/cache"
	"github.com/bassista/go_unis/internal/task"
	"github.com/bassista/go_unis/internal/university"
)

// Refresher restarts a list load.
type Refresher interface {
	RefreshData(ctx context.Context) *task.Task[[]university.University]
}

// DetailsInteractor holds the university shown on the detail screen.
type DetailsInteractor struct {
	university university.University
	refresher  Refresher
}

func NewDetailsInteractor(u university.University, refresher Refresher) *DetailsInteractor {
	return &DetailsInteractor{university: u, refresher: refresher}
}

func (d *DetailsInteractor) University() university.University { return d.university }

func (d *DetailsInteractor) RefreshList(ctx context.Context) *task.Task[[]university.University] {
	return d.refresher.RefreshData(ctx)
}

// DetailsPresenter connects the detail screen to its interactor.
type DetailsPresenter struct {
	interactor *DetailsInteractor
	view       DetailsView
	store      cache.DisplayStore
}

func NewDetailsPresenter(interactor *DetailsInteractor, view DetailsView, store cache.DisplayStore) *DetailsPresenter {
	return &DetailsPresenter{interactor: interactor, view: view, store: store}
}

// Show renders the university.
func (p *DetailsPresenter) Show() {
	p.view.ShowUniversity(p.interactor.University())
}

// Retry leaves the detail screen and reloads the list from scratch.
func (p *DetailsPresenter) Retry(ctx context.Context) *task.Task[[]university.University] {
	p.store.ClearSelection()
	p.view.Dismiss()
	return p.interactor.RefreshList(ctx)
}
