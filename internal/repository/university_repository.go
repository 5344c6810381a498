// Package repository keeps the persistent store in sync with the remote
// universities API and falls back to the stored records when the API fails.
package repository

import (
	"context"
	"errors"

	"github.com/bassista/go_unis/internal/logger"
	"github.com/bassista/go_unis/internal/metrics"
	"github.com/bassista/go_unis/internal/network"
	"github.com/bassista/go_unis/internal/tracer"
	"github.com/bassista/go_unis/internal/university"
)

// DefaultCountry is the country filter used when none is configured.
const DefaultCountry = "United Arab Emirates"

const (
	opFetch   = "fetch"
	opRefresh = "refresh"
)

// UniversityRepository fetches universities and mirrors them into a Store.
type UniversityRepository struct {
	requests *network.RequestManager
	store    Store
	country  string
	metrics  Recorder
	tracer   tracer.Tracer
}

type Option func(*UniversityRepository)

func WithMetrics(r Recorder) Option {
	return func(u *UniversityRepository) { u.metrics = r }
}

func WithTracer(t tracer.Tracer) Option {
	return func(u *UniversityRepository) { u.tracer = t }
}

// WithCountry overrides DefaultCountry. An empty value is ignored.
func WithCountry(country string) Option {
	return func(u *UniversityRepository) {
		if country != "" {
			u.country = country
		}
	}
}

func NewUniversityRepository(requests *network.RequestManager, store Store, opts ...Option) *UniversityRepository {
	r := &UniversityRepository{
		requests: requests,
		store:    store,
		country:  DefaultCountry,
		metrics:  noopRecorder{},
		tracer:   tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Country returns the filter sent with every request.
func (r *UniversityRepository) Country() string { return r.country }

// FetchUniversities requests the universities of the configured country.
//
// On success the store is replaced by the fetched set; a failing replace
// fails the call. When the request fails, the stored records are returned
// instead if there are any; otherwise the request error is returned.
func (r *UniversityRepository) FetchUniversities(ctx context.Context) ([]university.University, error) {
	ctx, span := r.tracer.Start(ctx, tracer.SpanFetch, tracer.String(tracer.AttrCountry, r.country))
	unis, err := r.sync(ctx, span, opFetch)
	span.End(err)
	return unis, err
}

// RefreshData clears the store and then behaves like FetchUniversities.
//
// Because the store is emptied first, a failing request after a refresh has
// nothing to fall back to and its error is returned even if records were
// stored before the call.
func (r *UniversityRepository) RefreshData(ctx context.Context) ([]university.University, error) {
	ctx, span := r.tracer.Start(ctx, tracer.SpanRefresh, tracer.String(tracer.AttrCountry, r.country))
	if err := r.store.DeleteAll(ctx); err != nil {
		r.metrics.RecordFetch(opRefresh, metrics.OutcomeError)
		span.End(err)
		return nil, err
	}
	r.metrics.SetCachedRecords(0)
	span.AddEvent(tracer.EventCleared)

	unis, err := r.sync(ctx, span, opRefresh)
	span.End(err)
	return unis, err
}

func (r *UniversityRepository) sync(ctx context.Context, span tracer.Span, op string) ([]university.University, error) {
	log := logger.WithComponent("repository")

	unis, reqErr := r.request(ctx)
	if reqErr == nil {
		if err := r.replace(ctx, unis); err != nil {
			log.Errorf("%s: storing %d universities failed: %v", op, len(unis), err)
			r.metrics.RecordFetch(op, metrics.OutcomeError)
			return nil, err
		}
		r.metrics.RecordFetch(op, metrics.OutcomeNetwork)
		r.metrics.SetCachedRecords(len(unis))
		span.SetAttributes(tracer.String(tracer.AttrSource, metrics.OutcomeNetwork), tracer.Int(tracer.AttrRecords, len(unis)))
		log.Debugf("%s: %d universities from the API", op, len(unis))
		return unis, nil
	}

	var requestErr *network.RequestError
	if errors.As(reqErr, &requestErr) {
		r.metrics.RecordRequestError(requestErr.Origin.String())
		span.SetAttributes(tracer.String(tracer.AttrOrigin, requestErr.Origin.String()))
	}

	cached, err := r.cached(ctx)
	if err != nil {
		log.Errorf("%s: request failed (%v) and reading the store failed: %v", op, reqErr, err)
		r.metrics.RecordFetch(op, metrics.OutcomeError)
		return nil, err
	}
	if len(cached) == 0 {
		log.Warnf("%s: request failed with nothing stored: %v", op, reqErr)
		r.metrics.RecordFetch(op, metrics.OutcomeError)
		return nil, reqErr
	}

	log.Warnf("%s: request failed, serving %d stored universities: %v", op, len(cached), reqErr)
	r.metrics.RecordFetch(op, metrics.OutcomeFallback)
	span.AddEvent(tracer.EventFallback, tracer.Int(tracer.AttrRecords, len(cached)))
	span.SetAttributes(tracer.String(tracer.AttrSource, metrics.OutcomeFallback), tracer.Int(tracer.AttrRecords, len(cached)))
	return cached, nil
}

func (r *UniversityRepository) request(ctx context.Context) (unis []university.University, err error) {
	ctx, span := r.tracer.Start(ctx, tracer.SpanRequest, tracer.String(tracer.AttrCountry, r.country))
	defer func() { span.End(err) }()

	payloads, err := network.Perform[[]university.Payload](ctx, r.requests, university.SearchRequest{Country: r.country})
	if err != nil {
		return nil, err
	}
	return university.FromPayloads(payloads), nil
}

func (r *UniversityRepository) replace(ctx context.Context, unis []university.University) (err error) {
	ctx, span := r.tracer.Start(ctx, tracer.SpanReplace, tracer.Int(tracer.AttrRecords, len(unis)))
	defer func() { span.End(err) }()
	return r.store.ReplaceAll(ctx, unis)
}

func (r *UniversityRepository) cached(ctx context.Context) (unis []university.University, err error) {
	ctx, span := r.tracer.Start(ctx, tracer.SpanCache)
	defer func() { span.End(err) }()
	return r.store.FetchAll(ctx)
}
