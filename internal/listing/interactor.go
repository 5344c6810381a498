package listing

import (
	"context"

	"github.com/bassista/go_unis/internal/logger"
	"github.com/bassista/go_unis/internal/task"
	"github.com/bassista/go_unis/internal/university"
)

// ListInteractor loads the list through the repository and reports to an Output.
type ListInteractor struct {
	repo   Repository
	output Output
}

func NewListInteractor(repo Repository, output Output) *ListInteractor {
	return &ListInteractor{repo: repo, output: output}
}

// FetchUniversities starts a load on its own goroutine. The output is
// notified before the task finishes.
func (i *ListInteractor) FetchUniversities(ctx context.Context) *task.Task[[]university.University] {
	return i.run(ctx, "fetch", i.repo.FetchUniversities)
}

// RefreshData starts a forced reload.
func (i *ListInteractor) RefreshData(ctx context.Context) *task.Task[[]university.University] {
	return i.run(ctx, "refresh", i.repo.RefreshData)
}

func (i *ListInteractor) run(
	ctx context.Context,
	op string,
	load func(context.Context) ([]university.University, error),
) *task.Task[[]university.University] {
	return task.Run(ctx, func(ctx context.Context) ([]university.University, error) {
		unis, err := load(ctx)
		if err != nil {
			logger.WithComponent("listing").Debugf("%s failed: %v", op, err)
			i.output.UniversitiesFetchingFailed(UserMessage(err))
			return nil, err
		}
		i.output.UniversitiesFetched(unis)
		return unis, nil
	})
}
