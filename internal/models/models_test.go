package models

import (
	"testing"
	"time"
)

func TestTimerModeConstants(t *testing.T) {
	if ModeFocus != "focus" {
		t.Fatalf("ModeFocus = %q", ModeFocus)
	}
	if ModeBreak != "break" {
		t.Fatalf("ModeBreak = %q", ModeBreak)
	}
	if ModeLongBreak != "long-break" {
		t.Fatalf("ModeLongBreak = %q", ModeLongBreak)
	}
}

func TestSegmentSeconds(t *testing.T) {
	if got := SegmentSeconds(ModeFocus, 25, 5, 15); got != 1500 {
		t.Fatalf("focus seconds = %d, want 1500", got)
	}
	if got := SegmentSeconds(ModeBreak, 25, 5, 15); got != 300 {
		t.Fatalf("break seconds = %d, want 300", got)
	}
	if got := SegmentSeconds(ModeLongBreak, 25, 5, 15); got != 900 {
		t.Fatalf("long break seconds = %d, want 900", got)
	}
}

func TestBoostActive(t *testing.T) {
	now := time.Now()
	b := Boost{Kind: BoostXPMultiplier, Factor: 2, ExpiresAt: now.Add(time.Minute)}
	if !b.Active(now) {
		t.Fatalf("boost should be active before expiry")
	}
	if b.Active(now.Add(time.Minute)) {
		t.Fatalf("boost should be inactive at its expiry instant")
	}
}

func TestRewardByID(t *testing.T) {
	r, ok := RewardByID("power-xp2")
	if !ok {
		t.Fatalf("expected power-xp2 in catalog")
	}
	if r.BoostKind != BoostXPMultiplier || r.BoostFactor != 2 {
		t.Fatalf("unexpected boost config: %+v", r)
	}
	if _, ok := RewardByID("nope"); ok {
		t.Fatalf("unknown ID should not resolve")
	}
}
