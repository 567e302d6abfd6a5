package util

import "testing"

func TestEasing(t *testing.T) {
	for _, name := range EasingNames() {
		f, err := Easing(name)
		if err != nil {
			t.Fatalf("Expected %s to resolve: %v", name, err)
		}
		if v := f(1); v < 0.999 || v > 1.001 {
			t.Errorf("Expected %s(1) = 1, got %v", name, v)
		}
	}

	f, err := Easing("")
	if err != nil || f(0.5) != 0.5 {
		t.Errorf("Expected empty name to be linear")
	}
	if _, err := Easing("wobble"); err == nil {
		t.Errorf("Expected unknown easing to fail")
	}
}
