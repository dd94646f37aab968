package config

import "testing"

func TestConstants(t *testing.T) {
	if DefaultFocusMinutes <= 0 || DefaultBreakMinutes <= 0 || DefaultLongBreakMinutes <= 0 {
		t.Fatalf("default segment lengths must be positive")
	}
	if LiveXPPerMinute != 2*ManualXPPerMinute {
		t.Fatalf("retroactive rate must be exactly half the live rate")
	}
	if XPCurveBase <= 0 || CurrencyPerLevel <= 0 {
		t.Fatalf("economy constants must be positive")
	}
	if FocusBlocksPerLongBreak <= 1 {
		t.Fatalf("FocusBlocksPerLongBreak must exceed 1")
	}
	if AppName == "" || DBFileName == "" {
		t.Fatalf("application identifiers should not be empty")
	}
}
