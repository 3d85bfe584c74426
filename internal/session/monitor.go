package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/voyagedesk/voyagedesk/internal/domain"
)

// Monitor keeps a live countdown of the session's remaining lifetime and
// forces a logout the moment it reaches zero. It follows the store: a
// login starts a fresh countdown, a logout anywhere stops it. At most one
// ticker runs at a time; stale tickers are cancelled before a new one
// starts.
type Monitor struct {
	store  *Store
	period time.Duration
	now    func() time.Time
	onTick func(countdown string)

	mu   sync.Mutex
	stop chan struct{}
}

// MonitorOption configures a Monitor.
type MonitorOption func(*Monitor)

// WithPeriod overrides the tick period. Defaults to one second.
func WithPeriod(d time.Duration) MonitorOption {
	return func(m *Monitor) {
		m.period = d
	}
}

// WithCountdownFunc installs the view-model callback receiving the
// remaining time formatted as m:ss on every tick.
func WithCountdownFunc(fn func(countdown string)) MonitorOption {
	return func(m *Monitor) {
		m.onTick = fn
	}
}

// WithMonitorClock overrides the time source, for tests.
func WithMonitorClock(now func() time.Time) MonitorOption {
	return func(m *Monitor) {
		m.now = now
	}
}

func NewMonitor(store *Store, opts ...MonitorOption) *Monitor {
	m := &Monitor{store: store, period: time.Second, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start subscribes the monitor to session changes and begins counting if
// a session is already present.
func (m *Monitor) Start() {
	m.store.OnChange(m.sessionChanged)
	if sess := m.store.Current(); sess != nil {
		m.restart(sess.Expiry)
	}
}

// Stop cancels any active countdown. Idempotent; used on teardown of the
// owning view.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
}

// Counting reports whether a countdown is currently active.
func (m *Monitor) Counting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop != nil
}

func (m *Monitor) sessionChanged(sess *domain.Session) {
	if sess == nil {
		m.Stop()
		return
	}
	m.restart(sess.Expiry)
}

func (m *Monitor) restart(expiry time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
	stop := make(chan struct{})
	m.stop = stop
	go m.run(expiry, stop)
}

func (m *Monitor) stopLocked() {
	if m.stop != nil {
		close(m.stop)
		m.stop = nil
	}
}

// clear detaches a finished run, but only if it is still the active one.
func (m *Monitor) clear(stop chan struct{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stop == stop {
		m.stop = nil
	}
}

func (m *Monitor) run(expiry time.Time, stop chan struct{}) {
	ticker := time.NewTicker(m.period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			remaining := expiry.Sub(m.now())
			if remaining <= 0 {
				m.clear(stop)
				m.store.Logout()
				return
			}
			if m.onTick != nil {
				m.onTick(FormatCountdown(remaining))
			}
		}
	}
}

// FormatCountdown renders a duration as m:ss with zero-padded seconds,
// the way the topbar displays it.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
