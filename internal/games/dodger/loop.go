package dodger

import (
	"time"

	"github.com/vovakirdan/neon-dodger/internal/core"
)

// Clock supplies frame timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ClampDelta bounds a frame delta to [0, max].
func ClampDelta(d, max time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > max {
		return max
	}
	return d
}

// Loop drives a Session from a Clock. Frontends call Frame once per
// display frame and keep scheduling frames only while it reports true.
type Loop struct {
	session  *Session
	clock    Clock
	maxDelta time.Duration
	last     time.Time
	haveLast bool
	frames   uint64
}

// NewLoop creates a loop for the session. A nil clock uses SystemClock.
func NewLoop(s *Session, clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	maxDelta := time.Duration(s.cfg.Physics.MaxDeltaMS) * time.Millisecond
	if maxDelta <= 0 {
		maxDelta = 32 * time.Millisecond
	}
	return &Loop{session: s, clock: clock, maxDelta: maxDelta}
}

// Start begins a run from Idle or GameOver.
func (l *Loop) Start() bool {
	if !l.session.Start() {
		return false
	}
	l.haveLast = false
	return true
}

// Restart begins a new run from any state.
func (l *Loop) Restart() {
	l.session.Restart()
	l.haveLast = false
}

// TogglePause pauses or resumes. No time accrues while paused.
func (l *Loop) TogglePause() bool {
	if !l.session.TogglePause() {
		return false
	}
	l.haveLast = false
	return true
}

// Frame applies control actions, advances the session by the clamped time
// since the previous frame and reports whether another frame is needed.
func (l *Loop) Frame(in core.InputFrame) (Snapshot, bool) {
	for _, a := range in.Actions {
		switch a {
		case core.ActionStart, core.ActionConfirm:
			l.Start()
		case core.ActionPause:
			l.TogglePause()
		case core.ActionRestart:
			l.Restart()
		}
	}

	now := l.clock.Now()
	if l.session.State() != StateRunning {
		l.haveLast = false
		return l.session.Snapshot(), false
	}

	var delta time.Duration
	if l.haveLast {
		delta = ClampDelta(now.Sub(l.last), l.maxDelta)
	}
	l.last = now
	l.haveLast = true

	snap := l.session.Step(delta, in)
	l.frames++
	return snap, snap.State == StateRunning
}

// Session returns the driven session.
func (l *Loop) Session() *Session { return l.session }

// Frames returns how many frames stepped the simulation.
func (l *Loop) Frames() uint64 { return l.frames }
