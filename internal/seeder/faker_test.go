package seeder

import (
	"testing"
	"time"
)

func TestDataGeneratorIsDeterministic(t *testing.T) {
	a := NewDataGenerator(342)
	b := NewDataGenerator(342)

	for i := 0; i < 50; i++ {
		if got, want := a.Name(), b.Name(); got != want {
			t.Fatalf("Name diverged at %d: %q vs %q", i, got, want)
		}
		if got, want := a.Phone(), b.Phone(); got != want {
			t.Fatalf("Phone diverged at %d: %q vs %q", i, got, want)
		}
		if got, want := a.IntRange(1, 100), b.IntRange(1, 100); got != want {
			t.Fatalf("IntRange diverged at %d: %d vs %d", i, got, want)
		}
	}
}

func TestUUIDIsNotSeeded(t *testing.T) {
	a := NewDataGenerator(1)
	b := NewDataGenerator(1)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		for _, id := range []string{a.UUID(), b.UUID()} {
			if seen[id] {
				t.Fatalf("Duplicate identifier %s", id)
			}
			seen[id] = true
		}
	}
}

func TestIntRangeIsInclusive(t *testing.T) {
	g := NewDataGenerator(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := g.IntRange(1, 3)
		if v < 1 || v > 3 {
			t.Fatalf("IntRange(1, 3) returned %d", v)
		}
		seen[v] = true
	}
	for _, want := range []int{1, 2, 3} {
		if !seen[want] {
			t.Errorf("IntRange(1, 3) never returned %d", want)
		}
	}
}

func TestDateOfBirthRespectsAgeBounds(t *testing.T) {
	g := NewDataGenerator(11)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		dob := g.DateOfBirth(now, 18, 75)
		oldest := now.AddDate(-76, 0, 0)
		youngest := now.AddDate(-18, 0, 0)
		if dob.Before(oldest) || dob.After(youngest) {
			t.Fatalf("Date of birth %v outside the 18-75 window", dob)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0}, // 1.005*100 lands just under 100.5
		{2.675, 2.68},
		{10.0, 10.0},
		{7.126, 7.13},
		{7.124, 7.12},
	}
	for _, c := range cases {
		if got := round2(c.in); got != c.want {
			t.Errorf("round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
