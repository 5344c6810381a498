package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/bassista/go_unis/internal/cache"
	"github.com/bassista/go_unis/internal/listing"
	"github.com/bassista/go_unis/internal/logger"
	"github.com/bassista/go_unis/internal/task"
	"github.com/bassista/go_unis/internal/university"
	"github.com/manifoldco/promptui"
)

const (
	refreshItem = "↻ Refresh"
	quitItem    = "✕ Quit"
	backItem    = "← Back"
	retryItem   = "↻ Retry"
)

// Selector asks the user to pick one of items and returns its index.
type Selector interface {
	Select(label string, items []string) (int, error)
}

// Loader starts list loads. *listing.ListInteractor implements it.
type Loader interface {
	FetchUniversities(ctx context.Context) *task.Task[[]university.University]
	RefreshData(ctx context.Context) *task.Task[[]university.University]
}

// Browser runs the list and detail screens until the user quits.
type Browser struct {
	loader    Loader
	presenter *listing.Presenter
	state     cache.DisplayStore
	view      listing.DetailsView
	selector  Selector
}

func NewBrowser(loader Loader, presenter *listing.Presenter, state cache.DisplayStore, view listing.DetailsView, selector Selector) *Browser {
	if selector == nil {
		selector = PromptSelector{}
	}
	return &Browser{
		loader:    loader,
		presenter: presenter,
		state:     state,
		view:      view,
		selector:  selector,
	}
}

// Run loads the list once, then loops on the list screen. It returns nil when
// the user quits or interrupts the prompt.
func (b *Browser) Run(ctx context.Context) error {
	if err := b.await(ctx, b.loader.FetchUniversities(ctx)); err != nil {
		return err
	}

	for {
		snap, err := b.state.Snapshot()
		if err != nil {
			return fmt.Errorf("read display state: %w", err)
		}

		label := fmt.Sprintf("Universities (%d)", len(snap.Universities))
		if snap.Error != "" {
			label = snap.Error
		}
		items := append(formatListItems(snap.Universities), refreshItem, quitItem)

		idx, err := b.selector.Select(label, items)
		if err != nil {
			return quitOnInterrupt(err)
		}

		switch n := len(snap.Universities); {
		case idx == n:
			err = b.await(ctx, b.loader.RefreshData(ctx))
		case idx == n+1:
			return nil
		case idx >= 0 && idx < n:
			err = b.details(ctx, snap.Universities[idx].ID)
		default:
			err = errors.New("invalid selection")
		}
		if err != nil {
			return err
		}
	}
}

// details shows one university until the user goes back or retries.
func (b *Browser) details(ctx context.Context, id string) error {
	u, ok := b.presenter.Select(id)
	if !ok {
		return nil
	}

	presenter := listing.NewDetailsPresenter(listing.NewDetailsInteractor(u, b.loader), b.view, b.state)
	presenter.Show()

	idx, err := b.selector.Select(u.Name, []string{backItem, retryItem})
	if err != nil {
		return quitOnInterrupt(err)
	}
	if idx == 1 {
		return b.await(ctx, presenter.Retry(ctx))
	}
	b.state.ClearSelection()
	b.view.Dismiss()
	return nil
}

// await waits for a load. Load failures are already in the display state, so
// only a canceled wait is returned.
func (b *Browser) await(ctx context.Context, t *task.Task[[]university.University]) error {
	_, err := t.Wait(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		logger.WithComponent("ui").Debugf("load finished with error: %v", err)
	}
	return nil
}

func quitOnInterrupt(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return nil
	}
	return err
}

// PromptSelector is the interactive promptui list.
type PromptSelector struct{}

func (PromptSelector) Select(label string, items []string) (int, error) {
	prompt := promptui.Select{
		Label:             label,
		Items:             items,
		Size:              15,
		StartInSearchMode: false,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}:",
			Active:   "▶ {{ . | cyan }}",
			Inactive: "  {{ . }}",
			Selected: "✅ {{ . | green }}",
			Help:     "{{ \"Navigate:\" | faint }} {{ .NextKey }} {{ .PrevKey }} {{ .PageDownKey }} {{ .PageUpKey }} {{ \"|\" | faint }} {{ \"Exit:\" | faint }} Ctrl + C",
		},
	}

	index, _, err := prompt.Run()
	return index, err
}
