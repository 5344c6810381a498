package network

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bassista/go_unis/internal/logger"
)

// Prober answers whether the network is reachable right now.
type Prober interface {
	Probe(ctx context.Context) bool
}

// ProberFunc adapts a function to Prober.
type ProberFunc func(ctx context.Context) bool

func (f ProberFunc) Probe(ctx context.Context) bool { return f(ctx) }

// DialProber considers the network up when a TCP connection to Address
// can be opened within Timeout.
type DialProber struct {
	Address string
	Timeout time.Duration
}

func (p DialProber) Probe(ctx context.Context) bool {
	d := net.Dialer{Timeout: p.Timeout}
	conn, err := d.DialContext(ctx, "tcp", p.Address)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// Monitor tracks connectivity in the background.
//
// One Monitor is created per process by the app container and injected
// where needed. Start launches the only goroutine that writes the flag;
// IsConnected is safe from any goroutine. The flag is false until the first
// probe completes.
type Monitor struct {
	prober    Prober
	interval  time.Duration
	connected atomic.Bool
	startOnce sync.Once
	done      chan struct{}
}

func NewMonitor(prober Prober, interval time.Duration) *Monitor {
	return &Monitor{prober: prober, interval: interval, done: make(chan struct{})}
}

// IsConnected returns the most recently probed state.
func (m *Monitor) IsConnected() bool {
	return m.connected.Load()
}

// Done is closed once the watch goroutine has exited.
func (m *Monitor) Done() <-chan struct{} {
	return m.done
}

// Start probes once synchronously so callers see a real value on return,
// then keeps probing every interval until ctx is canceled. Calling Start
// again is a no-op.
func (m *Monitor) Start(ctx context.Context) {
	m.startOnce.Do(func() {
		logger.WithComponent("monitor").Debugf("starting connectivity monitor with interval: %v", m.interval)
		m.tick(ctx)

		ticker := time.NewTicker(m.interval)
		go func() {
			defer close(m.done)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					logger.WithComponent("monitor").Info("connectivity monitor stopped")
					return
				case <-ticker.C:
					m.tick(ctx)
				}
			}
		}()
	})
}

func (m *Monitor) tick(ctx context.Context) {
	up := m.prober.Probe(ctx)
	if prev := m.connected.Swap(up); prev != up {
		if up {
			logger.WithComponent("monitor").Info("network connection established")
		} else {
			logger.WithComponent("monitor").Warn("network connection lost")
		}
	}
}
