package production

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	t.Parallel()

	day, err := ParseDay("2025-09-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != (Day{2025, time.September, 12}) {
		t.Fatalf("unexpected day %v", day)
	}
	if day.String() != "2025-09-12" {
		t.Fatalf("round trip mismatch: %s", day)
	}

	if _, err := ParseDay("2025-9-12"); err == nil {
		t.Fatal("expected error for non-padded date")
	}
	if _, err := ParseDay("nonsense"); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestDayOfIgnoresTime(t *testing.T) {
	t.Parallel()

	morning := time.Date(2025, time.September, 12, 7, 30, 0, 0, time.Local)
	night := time.Date(2025, time.September, 12, 23, 59, 59, 0, time.Local)
	if DayOf(morning) != DayOf(night) {
		t.Fatal("same calendar day must compare equal")
	}
}

func TestDayNext(t *testing.T) {
	t.Parallel()

	if got := (Day{2025, time.September, 30}).Next(); got != (Day{2025, time.October, 1}) {
		t.Fatalf("month rollover broken: %v", got)
	}
	if got := (Day{2025, time.December, 31}).Next(); got != (Day{2026, time.January, 1}) {
		t.Fatalf("year rollover broken: %v", got)
	}
}
