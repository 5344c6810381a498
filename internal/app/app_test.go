package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bassista/go_unis/internal/config"
	"github.com/bassista/go_unis/internal/network"
	"github.com/bassista/go_unis/internal/university"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

const apiBody = `[{"alpha_two_code":"AE","country":"United Arab Emirates","domains":["a.ac.ae"],"name":"Alpha University","state-province":null,"web_pages":["http://a.ac.ae"]}]`

func testConfig(t *testing.T, host string) *config.Config {
	t.Helper()
	return &config.Config{
		API: config.APIConfig{Scheme: "http", Host: host, Country: "United Arab Emirates"},
		Network: config.NetworkConfig{
			ProbeAddress:  "127.0.0.1:1",
			ProbeInterval: time.Hour,
			ProbeTimeout:  time.Second,
		},
		Store: config.StoreConfig{InMemoryIdentifier: strings.ReplaceAll(t.Name(), "/", "_")},
		Misc:  config.MiscConfig{LogLevel: "info"},
	}
}

func online(context.Context) bool  { return true }
func offline(context.Context) bool { return false }

func newTestApp(t *testing.T, host string, prober network.ProberFunc) *App {
	t.Helper()
	a, err := New(testConfig(t, host), WithRegisterer(prometheus.NewRegistry()), WithProber(prober))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(a.Shutdown)
	return a
}

func apiServer(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" || r.URL.Query().Get("country") != "United Arab Emirates" {
			t.Errorf("unexpected request %s", r.URL)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	u, _ := url.Parse(srv.URL)
	return u.Host
}

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestNew_WiresComponents(t *testing.T) {
	a := newTestApp(t, "localhost", online)

	if a.Store == nil || a.Monitor == nil || a.Repo == nil || a.Cache == nil || a.List == nil || a.Metrics == nil {
		t.Fatalf("expected every component to be set: %+v", a)
	}
	if a.Repo.Country() != "United Arab Emirates" {
		t.Errorf("expected configured country, got %q", a.Repo.Country())
	}
	if a.BaseCtx.Err() != nil {
		t.Error("expected base context to be live")
	}
}

func TestStartWatchers_StartsMonitor(t *testing.T) {
	a := newTestApp(t, "localhost", online)
	if a.Monitor.IsConnected() {
		t.Fatal("expected disconnected before the first probe")
	}

	a.StartWatchers()

	if !a.Monitor.IsConnected() {
		t.Error("expected monitor to have probed on start")
	}
}

func TestStartWatchers_DoesNotLoadOnItsOwn(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(apiBody))
	}))
	t.Cleanup(srv.Close)
	u, _ := url.Parse(srv.URL)

	a := newTestApp(t, u.Host, online)
	a.StartWatchers()
	time.Sleep(100 * time.Millisecond)

	if n := hits.Load(); n != 0 {
		t.Errorf("expected no API call without a user action, got %d", n)
	}
	snap, _ := a.Cache.Snapshot()
	if len(snap.Universities) != 0 || snap.LastUpdate != 0 {
		t.Errorf("expected untouched display state, got %+v", snap)
	}
}

func TestApp_LoadUpdatesDisplayAndStore(t *testing.T) {
	a := newTestApp(t, apiServer(t, http.StatusOK, apiBody), online)
	a.StartWatchers()

	unis, err := a.List.FetchUniversities(a.BaseCtx).Wait(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unis) != 1 || unis[0].Name != "Alpha University" {
		t.Fatalf("unexpected universities: %+v", unis)
	}

	snap, _ := a.Cache.Snapshot()
	if len(snap.Universities) != 1 {
		t.Errorf("expected display state to hold 1 university, got %d", len(snap.Universities))
	}
	stored, err := a.Store.FetchAll(context.Background())
	if err != nil || len(stored) != 1 {
		t.Errorf("expected 1 stored university, got %d (%v)", len(stored), err)
	}
	if got := testutil.ToFloat64(a.Metrics.FetchesTotal.WithLabelValues("fetch", "network")); got != 1 {
		t.Errorf("expected one network fetch recorded, got %v", got)
	}
}

func TestApp_OfflineFallsBackToStore(t *testing.T) {
	a := newTestApp(t, "localhost", offline)
	a.StartWatchers()

	seed := university.University{ID: "seed", Country: "United Arab Emirates", Domains: []string{}, Name: "Seeded"}
	if err := a.Store.Save(context.Background(), seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	unis, err := a.List.FetchUniversities(a.BaseCtx).Wait(context.Background())
	if err != nil {
		t.Fatalf("expected fallback to stored records, got %v", err)
	}
	if len(unis) != 1 || unis[0].ID != "seed" {
		t.Errorf("unexpected universities: %+v", unis)
	}
}

func TestApp_OfflineEmptyStoreShowsError(t *testing.T) {
	a := newTestApp(t, "localhost", offline)
	a.StartWatchers()

	_, err := a.List.FetchUniversities(a.BaseCtx).Wait(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	snap, _ := a.Cache.Snapshot()
	if snap.Error != "No Internet connection, please try again later" {
		t.Errorf("unexpected display error %q", snap.Error)
	}
}

func TestShutdown(t *testing.T) {
	a, err := New(testConfig(t, "localhost"), WithRegisterer(prometheus.NewRegistry()), WithProber(network.ProberFunc(online)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.StartWatchers()
	a.Shutdown()

	if a.BaseCtx.Err() == nil {
		t.Error("expected base context to be cancelled")
	}
	select {
	case <-a.Monitor.Done():
	case <-time.After(time.Second):
		t.Error("expected monitor to stop")
	}
	if _, err := a.Store.FetchAll(context.Background()); err == nil {
		t.Error("expected store to be closed")
	}

	var nilApp *App
	nilApp.Shutdown()
}
