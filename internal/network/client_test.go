package network

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticConnectivity bool

func (s staticConnectivity) IsConnected() bool { return bool(s) }

type failingDoer struct{ err error }

func (f failingDoer) Do(*http.Request) (*http.Response, error) { return nil, f.err }

func endpointFor(t *testing.T, srv *httptest.Server) Endpoint {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return Endpoint{Scheme: u.Scheme, Host: u.Host}
}

func TestAPIClient_Perform_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "UAE", r.URL.Query().Get("country"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewAPIClient(endpointFor(t, srv), staticConnectivity(true), srv.Client())
	data, err := c.Perform(context.Background(), testRequest{path: "/search", query: url.Values{"country": {"UAE"}}})

	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestAPIClient_Perform_NoConnection(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewAPIClient(endpointFor(t, srv), staticConnectivity(false), srv.Client())
	_, err := c.Perform(context.Background(), testRequest{path: "/search"})

	assert.ErrorIs(t, err, ErrNoInternetConnection)
	assert.False(t, called, "no request must be sent while offline")
}

func TestAPIClient_Perform_ConnectivityCheckedBeforeURL(t *testing.T) {
	c := NewAPIClient(Endpoint{}, staticConnectivity(false), nil)
	_, err := c.Perform(context.Background(), testRequest{path: "bad"})

	assert.ErrorIs(t, err, ErrNoInternetConnection)
}

func TestAPIClient_Perform_InvalidURL(t *testing.T) {
	c := NewAPIClient(Endpoint{Scheme: "http"}, staticConnectivity(true), nil)
	_, err := c.Perform(context.Background(), testRequest{path: "/search"})

	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestAPIClient_Perform_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("down"))
	}))
	defer srv.Close()

	c := NewAPIClient(endpointFor(t, srv), staticConnectivity(true), srv.Client())
	_, err := c.Perform(context.Background(), testRequest{path: "/search"})

	var statusErr *UnexpectedStatusCodeError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	assert.Contains(t, err.Error(), "503")
}

func TestAPIClient_Perform_NoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewAPIClient(endpointFor(t, srv), staticConnectivity(true), srv.Client())
	_, err := c.Perform(context.Background(), testRequest{path: "/search"})

	assert.ErrorIs(t, err, ErrNoData)
}

func TestAPIClient_Perform_TransportFailure(t *testing.T) {
	c := NewAPIClient(Endpoint{Scheme: "http", Host: "example.com"}, staticConnectivity(true), failingDoer{err: errors.New("connection refused")})
	_, err := c.Perform(context.Background(), testRequest{path: "/search"})

	assert.ErrorIs(t, err, ErrInvalidServerResponse)
}

func TestAPIClient_Perform_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewAPIClient(Endpoint{Scheme: "http", Host: "example.com"}, staticConnectivity(true), failingDoer{err: errors.New("canceled")})
	_, err := c.Perform(ctx, testRequest{path: "/search"})

	assert.ErrorIs(t, err, context.Canceled)
}

type stubTransport struct {
	data []byte
	err  error
}

func (s stubTransport) Perform(context.Context, Request) ([]byte, error) { return s.data, s.err }

type item struct {
	Name *string `json:"name" validate:"required"`
}

func TestPerform_Decodes(t *testing.T) {
	m := NewRequestManager(stubTransport{data: []byte(`[{"name":"x"}]`)}, nil)

	items, err := Perform[[]item](context.Background(), m, testRequest{path: "/"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "x", *items[0].Name)
}

func TestPerform_WrapsNetworkError(t *testing.T) {
	m := NewRequestManager(stubTransport{err: ErrNoData}, nil)

	_, err := Perform[[]item](context.Background(), m, testRequest{path: "/"})

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, OriginNetwork, reqErr.Origin)
	assert.ErrorIs(t, err, ErrNoData)
	assert.Equal(t, ErrNoData.Error(), err.Error())
}

func TestPerform_WrapsParsingError(t *testing.T) {
	m := NewRequestManager(stubTransport{data: []byte(`[{}]`)}, nil)

	_, err := Perform[[]item](context.Background(), m, testRequest{path: "/"})

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, OriginParsing, reqErr.Origin)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid data"))
}
