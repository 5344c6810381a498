package listing

import (
	"github.com/bassista/go_unis/internal/cache"
	"github.com/bassista/go_unis/internal/logger"
	"github.com/bassista/go_unis/internal/university"
)

// Presenter keeps the display state current and forwards it to a View.
type Presenter struct {
	store cache.DisplayStore
	view  View
}

// NewPresenter uses a LogView when view is nil.
func NewPresenter(store cache.DisplayStore, view View) *Presenter {
	if view == nil {
		view = LogView{}
	}
	return &Presenter{store: store, view: view}
}

func (p *Presenter) UniversitiesFetched(unis []university.University) {
	if err := p.store.Replace(unis); err != nil {
		msg := UserMessage(err)
		p.store.Fail(msg)
		p.view.ShowError(msg)
		return
	}
	p.view.ShowUniversities(unis)
}

// UniversitiesFetchingFailed empties the displayed list and shows message.
func (p *Presenter) UniversitiesFetchingFailed(message string) {
	p.store.Fail(message)
	p.view.ShowError(message)
}

// Select marks a displayed university as the one whose details are shown.
func (p *Presenter) Select(id string) (university.University, bool) {
	return p.store.Select(id)
}

// LogView writes list updates to the log.
type LogView struct{}

func (LogView) ShowUniversities(unis []university.University) {
	logger.WithComponent("listing").Infof("showing %d universities", len(unis))
}

func (LogView) ShowError(message string) {
	logger.WithComponent("listing").Warnf("showing error: %s", message)
}

var (
	_ Output = (*Presenter)(nil)
	_ View   = LogView{}
)
