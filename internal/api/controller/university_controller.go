package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/bassista/go_unis/internal/cache"
	"github.com/bassista/go_unis/internal/listing"
	"github.com/bassista/go_unis/internal/logger"
	"github.com/bassista/go_unis/internal/network"
	"github.com/bassista/go_unis/internal/task"
	"github.com/bassista/go_unis/internal/university"
	"github.com/gin-gonic/gin"
)

// Loader starts list loads. *listing.ListInteractor implements it.
type Loader interface {
	FetchUniversities(ctx context.Context) *task.Task[[]university.University]
	RefreshData(ctx context.Context) *task.Task[[]university.University]
}

// RecordReader looks a university up in the persistent store.
type RecordReader interface {
	Read(ctx context.Context, key string) (university.University, bool, error)
}

// UniversitiesResponse is the body of list endpoints.
type UniversitiesResponse struct {
	Universities []university.University `json:"universities"`
	Error        string                  `json:"error,omitempty"`
}

// UniversityController serves the universities list and details.
//
// Loads run on baseCtx so that a client giving up, or the request deadline,
// only ends the wait; the load itself completes and updates the display state.
type UniversityController struct {
	baseCtx context.Context
	loader  Loader
	state   cache.ReadOnlyStore
	records RecordReader
}

func NewUniversityController(baseCtx context.Context, loader Loader, state cache.ReadOnlyStore, records RecordReader) *UniversityController {
	return &UniversityController{baseCtx: baseCtx, loader: loader, state: state, records: records}
}

// AllUniversities handles GET /universities.
func (uc *UniversityController) AllUniversities(c *gin.Context) {
	logger.WithComponent("university-controller").Debugf("GET /universities handler called")
	uc.respond(c, uc.loader.FetchUniversities(uc.baseCtx))
}

// Refresh handles POST /universities/refresh.
func (uc *UniversityController) Refresh(c *gin.Context) {
	logger.WithComponent("university-controller").Debugf("POST /universities/refresh handler called")
	uc.respond(c, uc.loader.RefreshData(uc.baseCtx))
}

// GetUniversity handles GET /universities/:id. Displayed records are served
// first; the persistent store is the fallback.
func (uc *UniversityController) GetUniversity(c *gin.Context) {
	id := c.Param("id")
	if u, ok := uc.state.Find(id); ok {
		c.JSON(http.StatusOK, u)
		return
	}

	u, ok, err := uc.records.Read(c.Request.Context(), id)
	if err != nil {
		logger.WithComponent("university-controller").Errorf("read university %s: %v", id, err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": listing.UserMessage(err)})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "university not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// State handles GET /universities/state.
func (uc *UniversityController) State(c *gin.Context) {
	snap, err := uc.state.Snapshot()
	if err != nil {
		logger.WithComponent("university-controller").Errorf("snapshot display state: %v", err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read display state"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// respond waits for t within the request's lifetime. When the wait is cut
// short nothing is written, leaving the answer to the timeout middleware.
func (uc *UniversityController) respond(c *gin.Context, t *task.Task[[]university.University]) {
	ctx := c.Request.Context()
	unis, err := t.Wait(ctx)
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		logger.WithComponent("university-controller").Debugf("stopped waiting for load: %v", err)
		return
	}
	if err != nil {
		status := http.StatusInternalServerError
		var reqErr *network.RequestError
		if errors.As(err, &reqErr) {
			status = http.StatusServiceUnavailable
		}
		_ = c.Error(err)
		c.JSON(status, UniversitiesResponse{Universities: []university.University{}, Error: listing.UserMessage(err)})
		return
	}
	if unis == nil {
		unis = []university.University{}
	}
	c.JSON(http.StatusOK, UniversitiesResponse{Universities: unis})
}
