package telemetry

import (
	"math"
	"testing"
)

func TestIsValidCoordinate(t *testing.T) {
	if !IsValidCoordinate(14.0, 120.0) {
		t.Fatal("expected in-range coordinate to be valid")
	}
	if !IsValidCoordinate(-89.9, 179.9) {
		t.Fatal("expected southern-hemisphere coordinate to be valid")
	}
	if IsValidCoordinate(91, 0) {
		t.Fatal("expected out-of-range latitude to be rejected")
	}
	if IsValidCoordinate(0, 181) {
		t.Fatal("expected out-of-range longitude to be rejected")
	}
	if IsValidCoordinate(math.NaN(), 120) {
		t.Fatal("expected NaN latitude to be rejected")
	}
	if IsValidCoordinate(14, math.Inf(1)) {
		t.Fatal("expected infinite longitude to be rejected")
	}
}

func TestIsValidCoordinateNoFixSentinel(t *testing.T) {
	if IsValidCoordinate(0, 0) {
		t.Fatal("expected exact (0,0) to be treated as no fix")
	}
	if IsValidCoordinate(0.00005, -0.00005) {
		t.Fatal("expected near-origin pair to be treated as no fix")
	}
	// Only one axis near zero is a legitimate reading.
	if !IsValidCoordinate(0, 120) {
		t.Fatal("expected equator crossing to be valid")
	}
	if !IsValidCoordinate(14, 0) {
		t.Fatal("expected prime-meridian crossing to be valid")
	}
}

func TestAsFloatCoercion(t *testing.T) {
	if f, ok := AsFloat("14.5"); !ok || f != 14.5 {
		t.Fatalf("string coercion failed: got=%v ok=%v", f, ok)
	}
	if f, ok := AsFloat(float64(3)); !ok || f != 3 {
		t.Fatalf("float64 passthrough failed: got=%v ok=%v", f, ok)
	}
	if _, ok := AsFloat("garbage"); ok {
		t.Fatal("expected non-numeric string to fail coercion")
	}
	if _, ok := AsFloat(nil); ok {
		t.Fatal("expected nil to fail coercion")
	}
}
