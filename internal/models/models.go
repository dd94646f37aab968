package models

import "time"

// TimerMode enumerates the kinds of countdown segments.
type TimerMode string

const (
	ModeFocus     TimerMode = "focus"
	ModeBreak     TimerMode = "break"
	ModeLongBreak TimerMode = "long-break"
)

// SegmentSeconds returns the full length of a segment of the given mode for
// the configured minute lengths.
func SegmentSeconds(mode TimerMode, focusMin, breakMin, longBreakMin int) int {
	switch mode {
	case ModeBreak:
		return breakMin * 60
	case ModeLongBreak:
		return longBreakMin * 60
	default:
		return focusMin * 60
	}
}

// TimerSnapshot is the durable form of the countdown state. StartedAt is set
// iff Running; Version increases monotonically with every persisted change so
// that a stale async write can never clobber a newer row.
type TimerSnapshot struct {
	Mode             TimerMode
	RemainingSeconds int
	Running          bool
	StartedAt        *time.Time
	Plan             []TimerMode
	SegmentIndex     int
	FocusMinutes     int
	BreakMinutes     int
	LongBreakMinutes int
	Version          int64
}

// Progression is the durable ledger row. Level is derived from Experience and
// recomputed on every change; the stored value is a cache, never truth.
type Progression struct {
	Experience int64
	Level      int
	Currency   int64
	Version    int64
}

// Boost kinds understood by the ledger.
const (
	BoostXPMultiplier       = "xp-multiplier"
	BoostCurrencyMultiplier = "currency-multiplier"
)

// Boost is a temporary multiplier effect. Instances are immutable and expire
// purely by comparing ExpiresAt to the current time at read time.
type Boost struct {
	ID        int64
	Kind      string
	Factor    float64
	ExpiresAt time.Time
}

// Active reports whether the boost has not yet expired.
func (b Boost) Active(now time.Time) bool {
	return b.ExpiresAt.After(now)
}

// Habit is a trackable daily habit. Completions hold YYYY-MM-DD date strings;
// Streak is derived from them and recomputed whole, never patched.
type Habit struct {
	ID          string // uuid
	Title       string
	XPReward    int64
	Position    int
	Completions []string
	Streak      int
	CreatedAt   time.Time
}

// Session log sources.
const (
	SourceLive   = "live"
	SourceManual = "manual"
)

// SessionLog records one completed focus session.
type SessionLog struct {
	ID              int64
	CompletedAt     time.Time
	DurationMinutes int
	Source          string
}

// InventoryItem is a purchased reward.
type InventoryItem struct {
	ID         int64
	ItemID     string
	AcquiredAt time.Time
}
