package utils

import (
	"math"
	"testing"
)

func AssertTrue(t *testing.T, a bool) {
	if !a {
		t.Fatalf("Expected true, got false")
	}
}

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	if a != b {
		t.Fatalf("Expected equal: %v != %v\n", a, b)
	}
}

func AssertClose(t *testing.T, a, b, eps float64) {
	if math.Abs(a-b) > eps {
		t.Fatalf("Expected within %v: %v != %v\n", eps, a, b)
	}
}
