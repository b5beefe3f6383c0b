package schedule

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	valid := []string{"2026-03-14", "2024-02-29", "1999-12-31"}
	for _, s := range valid {
		d, err := ParseDate(s)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", s, err)
			continue
		}
		if FormatDate(d) != s {
			t.Errorf("ParseDate(%q) round-tripped to %q", s, FormatDate(d))
		}
	}

	invalid := []string{
		"",
		"14-03-2026",
		"2026/03/14",
		"2026-3-14",
		"2026-02-30",
		"2025-02-29",
		"2026-13-01",
		"2026-03-14T00:00:00Z",
		"tomorrow",
	}
	for _, s := range invalid {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q): expected error", s)
		}
	}
}

func TestParseTime(t *testing.T) {
	h, m, err := ParseTime("09:05")
	if err != nil || h != 9 || m != 5 {
		t.Errorf("ParseTime(09:05) = %d:%d, %v", h, m, err)
	}
	h, m, err = ParseTime("23:59")
	if err != nil || h != 23 || m != 59 {
		t.Errorf("ParseTime(23:59) = %d:%d, %v", h, m, err)
	}
	if _, _, err := ParseTime("00:00"); err != nil {
		t.Errorf("ParseTime(00:00): %v", err)
	}

	invalid := []string{"", "9:30", "24:00", "10:60", "10:00:00", "10.30", "10:00 AM"}
	for _, s := range invalid {
		if _, _, err := ParseTime(s); err == nil {
			t.Errorf("ParseTime(%q): expected error", s)
		}
	}
}

func TestStartOf(t *testing.T) {
	got, err := StartOf("2026-03-14", "10:30")
	if err != nil {
		t.Fatalf("StartOf: %v", err)
	}
	want := time.Date(2026, 3, 14, 10, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("StartOf = %v, want %v", got, want)
	}

	if _, err := StartOf("bad", "10:30"); err == nil {
		t.Error("bad date accepted")
	}
	if _, err := StartOf("2026-03-14", "bad"); err == nil {
		t.Error("bad time accepted")
	}
}

func TestSameDay(t *testing.T) {
	midnight := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	lastSecond := time.Date(2026, 3, 14, 23, 59, 59, 0, time.Local)

	if !SameDay("2026-03-14", midnight) || !SameDay("2026-03-14", lastSecond) {
		t.Error("time of day leaked into date comparison")
	}
	if SameDay("2026-03-15", lastSecond) {
		t.Error("different dates compared equal")
	}
}
