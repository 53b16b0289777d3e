package ledger

import (
	"sync"
	"time"

	"github.com/ticktock-project/ticktock/pkg/logging"
)

// Autosaver triggers a save callback on a fixed cadence. An explicit save
// resets the cadence via Reset so the next tick fires a full interval after
// it. The store's own mutex keeps ticks from interleaving with explicit
// saves mid-write.
type Autosaver struct {
	interval time.Duration
	save     func() error

	mu      sync.Mutex
	reset   chan struct{}
	stop    chan struct{}
	done    chan struct{}
	running bool
}

// NewAutosaver builds an autosaver firing every intervalSeconds.
func NewAutosaver(intervalSeconds int, save func() error) *Autosaver {
	return &Autosaver{
		interval: time.Duration(intervalSeconds) * time.Second,
		save:     save,
	}
}

// Start launches the cadence goroutine. Starting a running autosaver is a
// no-op.
func (a *Autosaver) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running {
		return
	}
	a.reset = make(chan struct{}, 1)
	a.stop = make(chan struct{})
	a.done = make(chan struct{})
	a.running = true
	go a.loop(a.reset, a.stop, a.done)
}

func (a *Autosaver) loop(reset, stop, done chan struct{}) {
	defer close(done)
	timer := time.NewTimer(a.interval)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			if err := a.save(); err != nil {
				logging.ErrorErr("autosave failed", err)
			}
			timer.Reset(a.interval)
		case <-reset:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(a.interval)
		case <-stop:
			return
		}
	}
}

// Reset restarts the cadence, typically after an explicit save.
func (a *Autosaver) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return
	}
	select {
	case a.reset <- struct{}{}:
	default:
	}
}

// Stop terminates the cadence goroutine and waits for it to exit.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.running = false
	close(a.stop)
	done := a.done
	a.mu.Unlock()
	<-done
}
