package utils

import "testing"

func TestPRNGRanges(t *testing.T) {
	s := NewPRNGService(99)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := s.IntRange(5, 9)
		if v < 5 || v > 9 {
			t.Fatalf("IntRange(5, 9) = %d", v)
		}
		seen[v] = true

		if n := s.Int63n(1 << 32); n < 0 || n >= 1<<32 {
			t.Fatalf("Int63n = %d", n)
		}
	}
	if len(seen) != 5 {
		t.Errorf("expected all of 5..9, saw %v", seen)
	}
	if got := s.IntRange(7, 7); got != 7 {
		t.Errorf("IntRange(7, 7) = %d", got)
	}
}

func TestPRNGSeeded(t *testing.T) {
	a, b := NewPRNGService(5), NewPRNGService(5)
	for i := 0; i < 10; i++ {
		if a.Int63n(1000) != b.Int63n(1000) {
			t.Fatal("same seed must give the same sequence")
		}
	}
}
