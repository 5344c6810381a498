package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Method is an HTTP verb accepted by the transport.
type Method string

const (
	GET    Method = http.MethodGet
	POST   Method = http.MethodPost
	PUT    Method = http.MethodPut
	DELETE Method = http.MethodDelete
)

// Request describes one API call relative to an Endpoint.
type Request interface {
	Path() string
	Method() Method
	Query() url.Values
}

// HeaderProvider is implemented by requests that carry extra headers.
type HeaderProvider interface {
	Headers() map[string]string
}

// BodyProvider is implemented by requests that send a JSON body.
type BodyProvider interface {
	Params() map[string]any
}

// Endpoint is the scheme and host every request is resolved against.
type Endpoint struct {
	Scheme string
	Host   string
}

// URL resolves req against the endpoint. It fails with ErrInvalidURL unless
// the result is absolute: http(s) scheme, a host and a rooted path.
func (e Endpoint) URL(req Request) (*url.URL, error) {
	if req == nil {
		return nil, ErrInvalidURL
	}
	scheme := strings.ToLower(e.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, e.Scheme)
	}
	if e.Host == "" || strings.ContainsAny(e.Host, "/?# ") {
		return nil, fmt.Errorf("%w: bad host %q", ErrInvalidURL, e.Host)
	}
	path := req.Path()
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("%w: path %q is not absolute", ErrInvalidURL, path)
	}

	u := &url.URL{Scheme: scheme, Host: e.Host, Path: path}
	if q := req.Query(); len(q) > 0 {
		u.RawQuery = q.Encode()
	}

	// Round-trip through the parser to catch anything url.URL accepts
	// structurally but cannot be sent, e.g. a bad port.
	parsed, err := url.Parse(u.String())
	if err != nil || parsed.Hostname() == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	return parsed, nil
}

// NewHTTPRequest builds the outgoing *http.Request for req.
func (e Endpoint) NewHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	u, err := e.URL(req)
	if err != nil {
		return nil, err
	}

	method := req.Method()
	if method == "" {
		method = GET
	}

	var body io.Reader
	if bp, ok := req.(BodyProvider); ok {
		if params := bp.Params(); len(params) > 0 {
			payload, err := json.Marshal(params)
			if err != nil {
				return nil, fmt.Errorf("%w: encode body: %v", ErrInvalidURL, err)
			}
			body = bytes.NewReader(payload)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(method), u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if hp, ok := req.(HeaderProvider); ok {
		for k, v := range hp.Headers() {
			httpReq.Header.Set(k, v)
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	return httpReq, nil
}
