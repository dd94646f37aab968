// Package session owns the countdown state machine: drift-resistant ticking,
// multi-segment plans, and reconciliation of live state from a persisted
// snapshot after a restart.
package session

import (
	"math"
	"time"

	"questa/internal/config"
	"questa/internal/models"
	"questa/internal/util"
)

// Awards receives completion events from the timer. Live completions are
// worth the full rate; partial credits (a non-discarding reset) are worth the
// retroactive rate.
type Awards interface {
	FocusCompleted(minutes int, at time.Time)
	FocusCredited(minutes int, at time.Time)
}

// Timer is the countdown state machine. It is mutated by a single owner;
// invalid commands (starting a running timer, pausing a stopped one) are
// silent no-ops since double-fired UI events are expected.
//
// Invariants: startedAt is non-zero iff running; segmentIndex is always in
// range while a plan is set.
type Timer struct {
	mode      models.TimerMode
	remaining int
	running   bool
	startedAt time.Time
	lastTick  time.Time

	plan         []models.TimerMode
	segmentIndex int

	focusMin     int
	breakMin     int
	longBreakMin int

	version int64
	awards  Awards
	persist func(models.TimerSnapshot)
}

// NewTimer returns an idle focus timer with default lengths. awards and
// persist may be nil.
func NewTimer(awards Awards, persist func(models.TimerSnapshot)) *Timer {
	return &Timer{
		mode:         models.ModeFocus,
		remaining:    config.DefaultFocusMinutes * 60,
		focusMin:     config.DefaultFocusMinutes,
		breakMin:     config.DefaultBreakMinutes,
		longBreakMin: config.DefaultLongBreakMinutes,
		awards:       awards,
		persist:      persist,
	}
}

// Start begins the countdown. No-op if already running.
func (t *Timer) Start(now time.Time) {
	if t.running || t.remaining <= 0 {
		return
	}
	t.running = true
	t.startedAt = now
	t.lastTick = now
	t.persistNow()
}

// Pause stops the countdown, folding in time elapsed since the last tick so
// remaining reflects this exact instant. No-op if not running.
func (t *Timer) Pause(now time.Time) {
	if !t.running {
		return
	}
	t.applyElapsed(now)
	if !t.running {
		// applyElapsed hit zero and completed the segment.
		return
	}
	t.running = false
	t.startedAt = time.Time{}
	t.persistNow()
}

// Tick advances the countdown while running. Drift-resistant: it subtracts
// the real time elapsed since the previous tick, rounded to whole seconds,
// rather than assuming a fixed cadence. A process suspended for 40 seconds
// loses 40 on the next tick, not 1.
func (t *Timer) Tick(now time.Time) {
	if !t.running {
		return
	}
	t.applyElapsed(now)
}

func (t *Timer) applyElapsed(now time.Time) {
	seconds := int(math.Round(now.Sub(t.lastTick).Seconds()))
	if seconds <= 0 {
		return
	}
	t.lastTick = now
	t.remaining -= seconds
	if t.remaining <= 0 {
		t.remaining = 0
		t.completeSegment(now)
	}
}

// Reset abandons the current session and returns to an idle focus timer at
// the default for the configured focus length. When a focus segment is
// mid-flight and discardPartial is false, the elapsed whole minutes are first
// credited at the retroactive rate.
func (t *Timer) Reset(discardPartial bool, now time.Time) {
	if t.running {
		// Fold in elapsed time first; this may complete the segment, which
		// already resets plan position on plan exhaustion.
		t.applyElapsed(now)
	}

	full := models.SegmentSeconds(t.mode, t.focusMin, t.breakMin, t.longBreakMin)
	partial := t.mode == models.ModeFocus && t.remaining > 0 && t.remaining < full
	if partial && !discardPartial && t.awards != nil {
		elapsedMinutes := (full - t.remaining) / 60
		if elapsedMinutes > 0 {
			t.awards.FocusCredited(elapsedMinutes, now)
		}
	}

	t.plan = nil
	t.segmentIndex = 0
	t.mode = models.ModeFocus
	t.remaining = t.focusMin * 60
	t.running = false
	t.startedAt = time.Time{}
	t.persistNow()
}

// SetPlan installs a segment plan, positioned at its first segment, stopped.
// An empty plan clears back to an idle focus timer.
func (t *Timer) SetPlan(plan []models.TimerMode) {
	t.plan = append([]models.TimerMode(nil), plan...)
	t.segmentIndex = 0
	t.running = false
	t.startedAt = time.Time{}
	if len(t.plan) > 0 {
		t.mode = t.plan[0]
	} else {
		t.mode = models.ModeFocus
	}
	t.remaining = models.SegmentSeconds(t.mode, t.focusMin, t.breakMin, t.longBreakMin)
	t.persistNow()
}

// SetDurations updates the configured segment lengths. If the timer is idle
// in focus mode the displayed countdown resets to the new focus length.
// Non-positive lengths are ignored.
func (t *Timer) SetDurations(focusMin, breakMin, longBreakMin int) {
	if focusMin <= 0 || breakMin <= 0 || longBreakMin <= 0 {
		return
	}
	idleFocus := !t.running && t.mode == models.ModeFocus && t.remaining == t.focusMin*60
	t.focusMin = focusMin
	t.breakMin = breakMin
	t.longBreakMin = longBreakMin
	if idleFocus {
		t.remaining = focusMin * 60
	}
	t.persistNow()
}

// completeSegment handles a countdown reaching zero while running: award the
// finished focus block, then advance to the next segment. The next segment
// never auto-starts; the user starts it explicitly.
func (t *Timer) completeSegment(now time.Time) {
	t.running = false
	t.startedAt = time.Time{}

	if t.mode == models.ModeFocus && t.awards != nil {
		t.awards.FocusCompleted(t.focusMin, now)
	}

	if len(t.plan) > 0 {
		next := t.segmentIndex + 1
		if next >= len(t.plan) {
			// Plan finished.
			t.plan = nil
			t.segmentIndex = 0
			t.mode = models.ModeFocus
		} else {
			t.segmentIndex = next
			t.mode = t.plan[next]
		}
	} else if t.mode == models.ModeFocus {
		t.mode = models.ModeBreak
	} else {
		t.mode = models.ModeFocus
	}

	t.remaining = models.SegmentSeconds(t.mode, t.focusMin, t.breakMin, t.longBreakMin)
	t.persistNow()
}

// Reconcile rebuilds live state from a persisted snapshot. For a snapshot
// that was running, the countdown is reconstructed from the persisted start
// instant plus the real-time gap, never replayed per second. A fully
// elapsed segment goes straight through the completion path. A snapshot
// claiming to run without a start instant is restored as paused.
func (t *Timer) Reconcile(snap models.TimerSnapshot, now time.Time) {
	if snap.FocusMinutes > 0 {
		t.focusMin = snap.FocusMinutes
	}
	if snap.BreakMinutes > 0 {
		t.breakMin = snap.BreakMinutes
	}
	if snap.LongBreakMinutes > 0 {
		t.longBreakMin = snap.LongBreakMinutes
	}

	t.plan = append([]models.TimerMode(nil), snap.Plan...)
	t.segmentIndex = util.Clamp(snap.SegmentIndex, 0, maxIndex(len(t.plan)))
	switch snap.Mode {
	case models.ModeBreak, models.ModeLongBreak:
		t.mode = snap.Mode
	default:
		t.mode = models.ModeFocus
	}
	t.version = snap.Version

	remaining := snap.RemainingSeconds
	if remaining < 0 {
		remaining = 0
	}

	if snap.Running && snap.StartedAt != nil {
		elapsed := int(now.Sub(*snap.StartedAt).Seconds())
		if elapsed > 0 {
			remaining -= elapsed
		}
		if remaining <= 0 {
			t.remaining = 0
			t.completeSegment(now)
			return
		}
		t.remaining = remaining
		t.running = true
		t.startedAt = now
		t.lastTick = now
		t.persistNow()
		return
	}

	// Stopped, or claiming to run with no start instant, which is restored
	// as stopped rather than rejected.
	t.remaining = remaining
	t.running = false
	t.startedAt = time.Time{}
}

// Snapshot returns the durable form of the current state.
func (t *Timer) Snapshot() models.TimerSnapshot {
	snap := models.TimerSnapshot{
		Mode:             t.mode,
		RemainingSeconds: t.remaining,
		Running:          t.running,
		Plan:             append([]models.TimerMode(nil), t.plan...),
		SegmentIndex:     t.segmentIndex,
		FocusMinutes:     t.focusMin,
		BreakMinutes:     t.breakMin,
		LongBreakMinutes: t.longBreakMin,
		Version:          t.version,
	}
	if t.running {
		snap.StartedAt = util.Ptr(t.startedAt)
	}
	return snap
}

// Mode returns the current segment mode.
func (t *Timer) Mode() models.TimerMode { return t.mode }

// Remaining returns the seconds left in the current segment.
func (t *Timer) Remaining() int { return t.remaining }

// Running reports whether the countdown is live.
func (t *Timer) Running() bool { return t.running }

// Plan returns the current segment plan.
func (t *Timer) Plan() []models.TimerMode {
	return append([]models.TimerMode(nil), t.plan...)
}

// SegmentIndex returns the position within the plan.
func (t *Timer) SegmentIndex() int { return t.segmentIndex }

// Durations returns the configured focus, break, and long-break minutes.
func (t *Timer) Durations() (focusMin, breakMin, longBreakMin int) {
	return t.focusMin, t.breakMin, t.longBreakMin
}

// SegmentSeconds returns the full length of the current segment.
func (t *Timer) SegmentSeconds() int {
	return models.SegmentSeconds(t.mode, t.focusMin, t.breakMin, t.longBreakMin)
}

func (t *Timer) persistNow() {
	t.version++
	if t.persist != nil {
		t.persist(t.Snapshot())
	}
}

func maxIndex(n int) int {
	if n == 0 {
		return 0
	}
	return n - 1
}
