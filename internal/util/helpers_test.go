package util

import "testing"

func TestBoolIntRoundTrip(t *testing.T) {
	if BoolToInt(true) != 1 || BoolToInt(false) != 0 {
		t.Fatalf("BoolToInt mapping wrong")
	}
	if !IntToBool(1) || IntToBool(0) {
		t.Fatalf("IntToBool mapping wrong")
	}
}

func TestDeref(t *testing.T) {
	v := 42
	if Deref(&v) != 42 {
		t.Fatalf("Deref of pointer should return value")
	}
	if Deref[int](nil) != 0 {
		t.Fatalf("Deref of nil should return zero value")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Fatalf("in-range value should pass through")
	}
	if Clamp(-1, 0, 10) != 0 {
		t.Fatalf("low value should clamp to min")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Fatalf("high value should clamp to max")
	}
}
