// Package timer is the state machine that turns start/stop tracking
// operations into accumulated per-day durations on ledger entities.
//
// Durations are measured on the monotonic clock, so a system time change
// during a session cannot corrupt the accounting; the wall clock is used
// only to bucket accumulated seconds into calendar dates.
package timer

import (
	"sync"
	"time"

	"github.com/ticktock-project/ticktock/internal/ledger"
	"github.com/ticktock-project/ticktock/pkg/logging"
	"github.com/ticktock-project/ticktock/pkg/model"
)

// Status describes the engine state for callers: idle, or running with the
// target and the live elapsed time of the session.
type Status struct {
	Running bool
	Target  string
	Elapsed time.Duration
}

type session struct {
	target *model.Target
	// anchor carries the monotonic reading elapsed time is measured from.
	anchor time.Time
	// wallStart is where date bucketing begins; re-set on checkpoint.
	wallStart time.Time
	// committed is the session's already-bucketed time, kept so Status
	// reports the full session duration across checkpoints.
	committed time.Duration
}

// Recovery reports time credited from a session that was still active when
// a previous process terminated. The stored start is wall clock only, so
// the credited amount is best effort, not an exact guarantee.
type Recovery struct {
	Target  string
	Seconds int64
}

// Engine drives at most one active session against one ledger.
type Engine struct {
	mu      sync.Mutex
	ledger  *model.Ledger
	store   *ledger.Store
	session *session
	now     func() time.Time
}

// NewEngine builds an engine over a loaded ledger. If the ledger records a
// session that was active when the previous process terminated, the
// session is resumed: the already-elapsed time since the stored wall-clock
// start is committed into its day buckets and the session re-anchors at
// now. The returned Recovery describes what was credited, nil when there
// was nothing to recover.
func NewEngine(l *model.Ledger, store *ledger.Store) (*Engine, *Recovery) {
	e := &Engine{ledger: l, store: store, now: time.Now}
	return e, e.resumePersistedSession()
}

func (e *Engine) resumePersistedSession() *Recovery {
	target := e.ledger.CurrentTarget()
	if target == nil || e.ledger.ActiveSince == nil {
		e.ledger.ActiveSince = nil
		return nil
	}

	now := e.now()
	start := *e.ledger.ActiveSince
	elapsed := int64(now.Sub(start) / time.Second)

	e.session = &session{target: target, anchor: now, wallStart: now}
	wall := now
	e.ledger.ActiveSince = &wall

	if elapsed <= 0 {
		// A negative interval means the wall clock moved backwards since
		// the last process ran; there is nothing trustworthy to credit.
		logging.Warn("resumed session but discarded non-positive elapsed time",
			map[string]any{"target": target.Alias(), "seconds": elapsed})
		return nil
	}

	distribute(target.Records(), start.In(time.Local), elapsed)
	e.session.committed = time.Duration(elapsed) * time.Second
	logging.Info("resumed persisted session", map[string]any{
		"target": target.Alias(), "seconds": elapsed,
	})
	return &Recovery{Target: target.Alias(), Seconds: elapsed}
}

// Start begins tracking the named target, implicitly stopping any active
// session first. Both the stop and the new anchor use the same instant, so
// switching targets leaves no gap and no overlap.
func (e *Engine) Start(targetName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	target, err := e.ledger.ResolveTarget(targetName)
	if err != nil {
		return err
	}

	now := e.now()
	if e.session != nil {
		e.commit(now)
	}

	e.session = &session{target: target, anchor: now, wallStart: now}
	e.ledger.SetCurrentTarget(target)
	wall := now
	e.ledger.ActiveSince = &wall

	logging.Info("tracking started", map[string]any{"target": target.Alias()})
	return e.persist()
}

// Stop ends the active session and commits its elapsed time into per-day
// buckets. Stopping while idle is a no-op.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return nil
	}
	target := e.session.target.Alias()
	e.commit(e.now())
	e.session = nil
	e.ledger.ClearCurrentTarget()

	logging.Info("tracking stopped", map[string]any{"target": target})
	return e.persist()
}

// Checkpoint commits the elapsed time accumulated so far and re-anchors
// the running session, then persists. Called before autosave so a crash
// loses at most one autosave interval. No-op while idle.
func (e *Engine) Checkpoint() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return nil
	}
	now := e.now()
	e.commit(now)
	e.session.anchor = now
	e.session.wallStart = now
	wall := now
	e.ledger.ActiveSince = &wall
	return e.persist()
}

// Status reports the live engine state. Elapsed is computed from the
// monotonic anchor on every call, never from a stored value.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return Status{}
	}
	return Status{
		Running: true,
		Target:  e.session.target.Alias(),
		Elapsed: e.session.committed + e.now().Sub(e.session.anchor),
	}
}

// commit buckets the session's un-committed elapsed seconds. Caller holds
// the lock.
func (e *Engine) commit(now time.Time) {
	elapsed := now.Sub(e.session.anchor)
	seconds := int64(elapsed / time.Second)
	if seconds > 0 {
		distribute(e.session.target.Records(), e.session.wallStart, seconds)
	}
	e.session.committed += elapsed
}

func (e *Engine) persist() error {
	if e.store == nil {
		return nil
	}
	return e.store.Save(e.ledger)
}
