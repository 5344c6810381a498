package network

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/bassista/go_unis/internal/logger"
)

// Connectivity reports whether the network is currently reachable.
type Connectivity interface {
	IsConnected() bool
}

// Transport performs a request and returns the raw response body.
type Transport interface {
	Perform(ctx context.Context, req Request) ([]byte, error)
}

// HTTPDoer is the subset of *http.Client the APIClient needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIClient is the HTTP transport. It makes a single attempt per call and
// applies no timeout of its own; deadlines come from ctx.
type APIClient struct {
	endpoint     Endpoint
	connectivity Connectivity
	http         HTTPDoer
}

// NewAPIClient creates a transport for endpoint. A nil doer selects a
// plain &http.Client{}.
func NewAPIClient(endpoint Endpoint, connectivity Connectivity, doer HTTPDoer) *APIClient {
	if doer == nil {
		doer = &http.Client{}
	}
	return &APIClient{endpoint: endpoint, connectivity: connectivity, http: doer}
}

// Perform checks connectivity, then the request descriptor, then sends.
func (c *APIClient) Perform(ctx context.Context, req Request) ([]byte, error) {
	if c.connectivity != nil && !c.connectivity.IsConnected() {
		return nil, ErrNoInternetConnection
	}

	httpReq, err := c.endpoint.NewHTTPRequest(ctx, req)
	if err != nil {
		logger.WithComponent("network").Debugf("cannot build request: %v", err)
		return nil, ErrInvalidURL
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		// Cancellation is reported as such, not as a server failure.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.WithComponent("network").Errorf("error while fetching data: %v", err)
		return nil, ErrInvalidServerResponse
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.WithComponent("network").Warnf("unexpected status code: %d", resp.StatusCode)
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &UnexpectedStatusCodeError{Code: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		logger.WithComponent("network").Errorf("error while reading body: %v", err)
		return nil, ErrInvalidServerResponse
	}
	if len(data) == 0 {
		return nil, ErrNoData
	}

	logger.WithComponent("network").Debugf("%s %s -> %d (%d bytes)", httpReq.Method, httpReq.URL.Path, resp.StatusCode, len(data))
	return data, nil
}
