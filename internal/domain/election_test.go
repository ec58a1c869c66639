package domain

import (
	"testing"
	"time"
)

func TestDeriveStatus(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	cases := []struct {
		name    string
		current ElectionStatus
		now     time.Time
		want    ElectionStatus
	}{
		{"before start", ElectionScheduled, start.Add(-time.Minute), ElectionScheduled},
		{"at start", ElectionScheduled, start, ElectionRunning},
		{"inside window", ElectionScheduled, start.Add(30 * time.Minute), ElectionRunning},
		{"at end", ElectionRunning, end, ElectionRunning},
		{"after end", ElectionRunning, end.Add(time.Second), ElectionEnded},
		{"stale scheduled after end", ElectionScheduled, end.Add(time.Hour), ElectionEnded},
		{"winner pending survives end", ElectionWinnerPending, end.Add(time.Hour), ElectionWinnerPending},
		{"winner pending before start is recomputed", ElectionWinnerPending, start.Add(-time.Minute), ElectionScheduled},
		{"confirmed is terminal", ElectionWinnerConfirmed, start.Add(30 * time.Minute), ElectionWinnerConfirmed},
		{"confirmed is terminal after end", ElectionWinnerConfirmed, end.Add(time.Hour), ElectionWinnerConfirmed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := Election{StartDate: start, EndDate: end, Status: tc.current}
			if got := DeriveStatus(e, tc.now); got != tc.want {
				t.Fatalf("expected %s got %s", tc.want, got)
			}
		})
	}
}

func TestIsRunning(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	e := Election{StartDate: start, EndDate: end}

	if e.IsRunning(start.Add(-time.Second)) {
		t.Fatalf("should not run before start")
	}
	if !e.IsRunning(start) {
		t.Fatalf("should run at start")
	}
	if !e.IsRunning(end) {
		t.Fatalf("should run at end")
	}
	if e.IsRunning(end.Add(time.Second)) {
		t.Fatalf("should not run after end")
	}
}
