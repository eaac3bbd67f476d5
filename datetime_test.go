package main

import "testing"

func TestParseComposeRoundTrip(t *testing.T) {
	cases := []int64{0, 1000, 86400000, 1700000000000, -86400000}
	for _, ms := range cases {
		c := Parse(ms)
		got := Compose(c.Year, c.Month, c.Day, c.Hour, c.Min, c.Sec, c.Msec, 0)
		if got != ms {
			t.Errorf("Compose(Parse(%d)) = %d, want %d", ms, got, ms)
		}
	}
}

func TestParseKnownDate(t *testing.T) {
	// 2024-01-01T00:00:00Z is a Monday.
	ms := Compose(2024, 1, 1, 0, 0, 0, 0, 0)
	c := Parse(ms)
	if c.Year != 2024 || c.Month != 1 || c.Day != 1 {
		t.Fatalf("got %+v", c)
	}
	if c.DOW != 1 {
		t.Errorf("DOW = %d, want 1 (Monday)", c.DOW)
	}
	if c.DOY != 1 {
		t.Errorf("DOY = %d, want 1", c.DOY)
	}
}

func TestIsLeapGregorian(t *testing.T) {
	cases := map[int]bool{2000: true, 1900: false, 2024: true, 2023: false, 2400: true}
	for y, want := range cases {
		if got := IsLeapGregorian(y); got != want {
			t.Errorf("IsLeapGregorian(%d) = %v, want %v", y, got, want)
		}
	}
}

func TestIsEUDSTBoundaries(t *testing.T) {
	// Last Sunday of March 2024 is the 31st; DST starts 01:00 UTC.
	before := Compose(2024, 3, 31, 0, 59, 0, 0, 0)
	after := Compose(2024, 3, 31, 1, 0, 0, 0, 0)

	if summer, _ := IsEUDST(before); summer {
		t.Error("expected winter time just before the changeover")
	}
	if summer, _ := IsEUDST(after); !summer {
		t.Error("expected summer time just after the changeover")
	}
}

func TestIsEUDSTFarFromChangeover(t *testing.T) {
	mid := Compose(2024, 6, 15, 12, 0, 0, 0, 0)
	_, inMins := IsEUDST(mid)
	if inMins != -1 {
		t.Errorf("inMins = %d, want -1 far from any changeover", inMins)
	}
}

func TestIsUSDSTTransitionDayReportsBoth(t *testing.T) {
	// Second Sunday of March 2024 is the 10th.
	dayStart := Compose(2024, 3, 10, 0, 0, 0, 0, 0)
	start, end := IsUSDST(dayStart)
	if start {
		t.Error("expected DST not yet in effect at the start of the UTC transition day")
	}
	if end == nil {
		t.Fatal("expected a reported end-of-day status on a transition day")
	}
	if !*end {
		t.Error("expected DST in effect by the end of the UTC transition day")
	}
}

func TestIsUSDSTOrdinaryDayReportsOnlyStart(t *testing.T) {
	mid := Compose(2024, 7, 4, 0, 0, 0, 0, 0)
	_, end := IsUSDST(mid)
	if end != nil {
		t.Error("expected nil end-of-day status on a non-transition day")
	}
}
