package utils

import (
	"math"
	"testing"
)

func AssertTrue(t *testing.T, a bool) {
	t.Helper()
	if !a {
		t.Fatalf("Expected true, got false")
	}
}

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		t.Fatalf("Expected equal: %v != %v\n", a, b)
	}
}

func AssertClose(t *testing.T, a float64, b float64, eps float64) {
	t.Helper()
	if math.Abs(a-b) > eps {
		t.Fatalf("Expected within %g: %v != %v\n", eps, a, b)
	}
}
