package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/bassista/go_unis/internal/cache"
	"github.com/bassista/go_unis/internal/config"
	"github.com/bassista/go_unis/internal/listing"
	"github.com/bassista/go_unis/internal/logger"
	"github.com/bassista/go_unis/internal/metrics"
	"github.com/bassista/go_unis/internal/network"
	"github.com/bassista/go_unis/internal/parser"
	"github.com/bassista/go_unis/internal/repository"
	"github.com/bassista/go_unis/internal/store"
	"github.com/bassista/go_unis/internal/tracer"
	"github.com/bassista/go_unis/internal/university"
	"github.com/prometheus/client_golang/prometheus"
)

// App is the application container (immutable dependencies + lifecycle context).
// It is not a request context; handlers should still use gin's request context.
type App struct {
	Config    *config.Config
	Store     *store.Manager[university.University]
	Monitor   *network.Monitor
	Repo      *repository.UniversityRepository
	Cache     *cache.Store
	Presenter *listing.Presenter
	List      *listing.ListInteractor
	Metrics   *metrics.Metrics

	BaseCtx context.Context
	Cancel  context.CancelFunc
}

type Option func(*options)

type options struct {
	view       listing.View
	registerer prometheus.Registerer
	tracer     tracer.Tracer
	doer       network.HTTPDoer
	prober     network.Prober
}

// WithView renders list updates; the default logs them.
func WithView(v listing.View) Option { return func(o *options) { o.view = v } }

// WithRegisterer registers metrics somewhere other than the default registry.
func WithRegisterer(r prometheus.Registerer) Option { return func(o *options) { o.registerer = r } }

func WithTracer(t tracer.Tracer) Option { return func(o *options) { o.tracer = t } }

// WithHTTPClient replaces the plain http.Client used for API calls.
func WithHTTPClient(d network.HTTPDoer) Option { return func(o *options) { o.doer = d } }

// WithProber replaces the TCP dial probe of the connectivity monitor.
func WithProber(p network.Prober) Option { return func(o *options) { o.prober = p } }

// New wires every component from cfg and opens the persistent store.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	o := options{tracer: tracer.NewNoop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.prober == nil {
		o.prober = network.DialProber{Address: cfg.Network.ProbeAddress, Timeout: cfg.Network.ProbeTimeout}
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := metrics.New(o.registerer)

	db, err := store.New(ctx, store.Configuration{
		Path:               cfg.Store.Path,
		InMemoryIdentifier: cfg.Store.InMemoryIdentifier,
	}, university.Collection, store.WithObserver(m))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("open store: %w", err)
	}

	monitor := network.NewMonitor(o.prober, cfg.Network.ProbeInterval)
	client := network.NewAPIClient(network.Endpoint{Scheme: cfg.API.Scheme, Host: cfg.API.Host}, monitor, o.doer)
	repo := repository.NewUniversityRepository(
		network.NewRequestManager(client, parser.NewDecoder()),
		db,
		repository.WithCountry(cfg.API.Country),
		repository.WithMetrics(m),
		repository.WithTracer(o.tracer),
	)

	display := cache.NewStore()
	presenter := listing.NewPresenter(display, o.view)

	return &App{
		Config:    cfg,
		Store:     db,
		Monitor:   monitor,
		Repo:      repo,
		Cache:     display,
		Presenter: presenter,
		List:      listing.NewListInteractor(repo, presenter),
		Metrics:   m,
		BaseCtx:   ctx,
		Cancel:    cancel,
	}, nil
}

// Shutdown cancels the base context and closes the store.
func (a *App) Shutdown() {
	if a == nil || a.Cancel == nil {
		return
	}
	a.Cancel()
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			logger.WithComponent("app").Warnf("closing store: %v", err)
		}
	}
}

// StartWatchers starts the connectivity monitor and the config file watcher.
func (a *App) StartWatchers() {
	a.Monitor.Start(a.BaseCtx)

	if config.Watch(a.applyConfig) {
		logger.WithComponent("app").Debugf("watching config file for changes")
	}
}

// applyConfig applies the settings that can change without a restart.
func (a *App) applyConfig(cfg *config.Config) {
	if err := logger.SetLevel(cfg.Misc.LogLevel); err != nil {
		logger.WithComponent("app").Warnf("keeping log level: %v", err)
		return
	}
	logger.WithComponent("app").Infof("log level set to %s", cfg.Misc.LogLevel)
}
