package utils

import (
	"math"
	"testing"
)

func TestTrimOldest(t *testing.T) {
	tests := []struct {
		name     string
		items    []int
		max      int
		expected []int
	}{
		{"Under cap", []int{1, 2}, 5, []int{1, 2}},
		{"At cap", []int{1, 2, 3}, 3, []int{1, 2, 3}},
		{"Over cap", []int{1, 2, 3, 4, 5}, 2, []int{4, 5}},
		{"Zero cap", []int{1, 2}, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimOldest(append([]int(nil), tt.items...), tt.max)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}

func TestRemoveIfKeepsOrder(t *testing.T) {
	got := RemoveIf([]int{1, 2, 3, 4, 5, 6}, func(v int) bool { return v%2 == 0 })
	expected := []int{1, 3, 5}
	if len(got) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, got)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	}
}

func TestSeededPRNGIsDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("Same seed must give same sequence")
		}
	}
	if a.Intn(0) != 0 {
		t.Error("Intn(0) must not panic and return 0")
	}
}

func TestIntRange(t *testing.T) {
	r := &SequenceRandom{Ints: []int{0, 40, 41}}
	if v := IntRange(r, 10, 50); v != 10 {
		t.Errorf("Expected 10, got %d", v)
	}
	if v := IntRange(r, 10, 50); v != 50 {
		t.Errorf("Expected 50, got %d", v)
	}
	if v := IntRange(r, 10, 50); v != 10 {
		t.Errorf("Expected wrap to 10, got %d", v)
	}
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	if math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
		t.Errorf("Expected (0.6, 0.8), got (%v, %v)", x, y)
	}
	x, y = Normalize(0, 0)
	if x != 0 || y != 0 {
		t.Error("Zero vector must stay zero")
	}
}
