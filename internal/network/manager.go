package network

import (
	"context"

	"github.com/bassista/go_unis/internal/parser"
)

// RequestManager pairs a transport with a decoder.
type RequestManager struct {
	transport Transport
	decoder   *parser.Decoder
}

func NewRequestManager(transport Transport, decoder *parser.Decoder) *RequestManager {
	if decoder == nil {
		decoder = parser.NewDecoder()
	}
	return &RequestManager{transport: transport, decoder: decoder}
}

// Perform runs req and decodes the body into a T. Failures are returned as
// *RequestError tagged with the stage that failed.
func Perform[T any](ctx context.Context, m *RequestManager, req Request) (T, error) {
	var zero T
	data, err := m.transport.Perform(ctx, req)
	if err != nil {
		return zero, &RequestError{Origin: OriginNetwork, Err: err}
	}
	model, err := parser.Parse[T](m.decoder, data)
	if err != nil {
		return zero, &RequestError{Origin: OriginParsing, Err: err}
	}
	return model, nil
}
