package finances

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"2025-07-01", NewDate(2025, time.July, 1)},
		{"2025-7-1", NewDate(2025, time.July, 1)},
		{"2024-02-29", NewDate(2024, time.February, 29)},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseDate("not a date"); err == nil {
		t.Errorf("ParseDate accepted garbage")
	}
	if got, want := NewDate(2025, time.July, 1).String(), "2025-07-01"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDateArithmetic(t *testing.T) {
	// Day and month arithmetic normalize across boundaries.
	if got, want := NewDate(2025, time.January, 31).Add(1), NewDate(2025, time.February, 1); got != want {
		t.Errorf("Add(1) = %v, want %v", got, want)
	}
	if got, want := NewDate(2025, time.December, 15).AddMonths(2), NewDate(2026, time.February, 15); got != want {
		t.Errorf("AddMonths(2) = %v, want %v", got, want)
	}
	if got, want := NewDate(2025, time.March, 10).Add(-10), NewDate(2025, time.February, 28); got != want {
		t.Errorf("Add(-10) = %v, want %v", got, want)
	}
}

func TestStartOf(t *testing.T) {
	d := NewDate(2025, time.August, 14) // a Thursday
	testCases := []struct {
		period Period
		want   Date
	}{
		{Daily, d},
		{Weekly, NewDate(2025, time.August, 11)},
		{Monthly, NewDate(2025, time.August, 1)},
		{Quarterly, NewDate(2025, time.July, 1)},
		{Yearly, NewDate(2025, time.January, 1)},
	}
	for _, tc := range testCases {
		if got := d.StartOf(tc.period); got != tc.want {
			t.Errorf("StartOf(%v) = %v, want %v", tc.period, got, tc.want)
		}
	}
}

func TestPeriodSince(t *testing.T) {
	end := NewDate(2025, time.February, 10)
	testCases := []struct {
		period Period
		want   Range
	}{
		{Daily, Range{end, end}},
		{Weekly, Range{NewDate(2025, time.February, 3), end}},
		{Monthly, Range{NewDate(2025, time.February, 1), end}},
		{Quarterly, Range{NewDate(2024, time.November, 1), end}},
		{Yearly, Range{NewDate(2025, time.January, 1), end}},
	}
	for _, tc := range testCases {
		if got := tc.period.Since(end); got != tc.want {
			t.Errorf("%v.Since(%v) = %v, want %v", tc.period, end, got, tc.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{
		"daily": Daily, "week": Weekly, "Monthly": Monthly, "quarter": Quarterly, "year": Yearly,
	} {
		got, err := ParsePeriod(in)
		if err != nil {
			t.Errorf("ParsePeriod(%q) failed: %v", in, err)
		}
		if got != want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Errorf("ParsePeriod accepted an unknown period")
	}
}

func TestRange(t *testing.T) {
	r := NewRange(NewDate(2025, time.March, 31), NewDate(2025, time.March, 1)) // swapped on purpose
	if r.From.After(r.To) {
		t.Fatalf("NewRange did not swap: %v", r)
	}

	// Boundaries are included.
	for _, d := range []Date{r.From, r.To, NewDate(2025, time.March, 15)} {
		if !r.Contains(d) {
			t.Errorf("Contains(%v) = false, want true", d)
		}
	}
	for _, d := range []Date{r.From.Add(-1), r.To.Add(1)} {
		if r.Contains(d) {
			t.Errorf("Contains(%v) = true, want false", d)
		}
	}

	if !(Range{}).IsZero() {
		t.Errorf("zero range IsZero() = false")
	}
	if r.IsZero() {
		t.Errorf("non-zero range IsZero() = true")
	}
}
