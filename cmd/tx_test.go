package cmd

import (
	"testing"
	"time"

	"github.com/etnz/finances"
)

func TestParseRange(t *testing.T) {
	// No flags means the full ledger.
	r, err := parseRange("", "", "")
	if err != nil {
		t.Fatalf("parseRange() failed: %v", err)
	}
	if !r.IsZero() {
		t.Errorf("parseRange(empty) = %v, want zero range", r)
	}

	// An explicit range.
	r, err = parseRange("", "2025-03-01", "2025-03-31")
	if err != nil {
		t.Fatalf("parseRange() failed: %v", err)
	}
	want := finances.NewRange(finances.NewDate(2025, time.March, 1), finances.NewDate(2025, time.March, 31))
	if r != want {
		t.Errorf("parseRange(from, to) = %v, want %v", r, want)
	}

	// A period ending today.
	r, err = parseRange("month", "", "")
	if err != nil {
		t.Fatalf("parseRange() failed: %v", err)
	}
	if r.To != finances.Today() {
		t.Errorf("parseRange(month).To = %v, want today", r.To)
	}
	if r.From.Day() != 1 {
		t.Errorf("parseRange(month).From = %v, want a first of month", r.From)
	}

	if _, err := parseRange("fortnight", "", ""); err == nil {
		t.Errorf("parseRange accepted an unknown period")
	}
	if _, err := parseRange("", "not a date", ""); err == nil {
		t.Errorf("parseRange accepted a bad date")
	}
}
