// Package tracer is a small tracing abstraction over OpenTelemetry used by the
// synchronizing repository. The noop implementation serves tests and the
// terminal browser; the OTel adapter serves the HTTP server.
package tracer

import (
	"context"
	"time"
)

// Span is an active trace span. End must be called exactly once.
type Span interface {
	// End completes the span, marking it failed when err is non-nil.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key/value pair attached to a span or an event.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute { return Attribute{Key: key, Value: value} }

func Bool(key string, value bool) Attribute { return Attribute{Key: key, Value: value} }

func Int(key string, value int) Attribute { return Attribute{Key: key, Value: int64(value)} }

// Duration is recorded in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

const (
	SpanFetch   = "universities.fetch"
	SpanRefresh = "universities.refresh"
	SpanRequest = "universities.request"
	SpanReplace = "universities.store.replace"
	SpanCache   = "universities.store.fetch_all"
)

const (
	AttrCountry = "country"
	AttrSource  = "source"
	AttrRecords = "records"
	AttrOrigin  = "error.origin"
)

const (
	EventFallback = "cache.fallback"
	EventCleared  = "store.cleared"
)
