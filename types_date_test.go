package kopilka

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},

		{"", today, false},
		{"0d", today, false},
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"-2m", today.AddMonth(-2), false},
		{"+1y", NewDate(today.Year()+1, today.Month(), today.Day()), false},
		{"1d", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateNormalization(t *testing.T) {
	// Out-of-range components roll over like time.Date.
	if got, want := NewDate(2024, time.January, 32), NewDate(2024, time.February, 1); got != want {
		t.Errorf("NewDate(2024, 1, 32) = %v, want %v", got, want)
	}
	if got, want := NewDate(2024, time.March, 0), NewDate(2024, time.February, 29); got != want {
		t.Errorf("NewDate(2024, 3, 0) = %v, want %v", got, want)
	}
}

func TestDateArithmetic(t *testing.T) {
	d := MustDate("2024-01-31")

	if got, want := d.Add(1), MustDate("2024-02-01"); got != want {
		t.Errorf("Add(1) = %v, want %v", got, want)
	}
	if got := MustDate("2024-01-01").DaysUntil(MustDate("2024-01-10")); got != 9 {
		t.Errorf("DaysUntil = %d, want 9", got)
	}
	if got := MustDate("2024-01-10").DaysUntil(MustDate("2024-01-01")); got != -9 {
		t.Errorf("DaysUntil = %d, want -9", got)
	}
}

func TestStartEndOf(t *testing.T) {
	d := MustDate("2024-02-15")

	if got, want := d.StartOf(Monthly), MustDate("2024-02-01"); got != want {
		t.Errorf("StartOf(Monthly) = %v, want %v", got, want)
	}
	if got, want := d.EndOf(Monthly), MustDate("2024-02-29"); got != want {
		t.Errorf("EndOf(Monthly) = %v, want %v", got, want)
	}
	if got, want := d.StartOf(Yearly), MustDate("2024-01-01"); got != want {
		t.Errorf("StartOf(Yearly) = %v, want %v", got, want)
	}
	if got, want := d.EndOf(Yearly), MustDate("2024-12-31"); got != want {
		t.Errorf("EndOf(Yearly) = %v, want %v", got, want)
	}
}

func TestDateJSON(t *testing.T) {
	d := MustDate("2024-03-05")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-03-05"` {
		t.Errorf("Marshal = %s, want \"2024-03-05\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &back); err == nil {
		t.Error("Unmarshal of invalid date did not fail")
	}
}

func TestRange(t *testing.T) {
	rng := NewRange(MustDate("2024-01-10"), MustDate("2024-01-01"))
	if rng.From != MustDate("2024-01-01") || rng.To != MustDate("2024-01-10") {
		t.Errorf("NewRange did not swap endpoints: %v", rng)
	}
	if got := rng.Len(); got != 10 {
		t.Errorf("Len() = %d, want 10", got)
	}

	prev := rng.Previous()
	if prev.From != MustDate("2023-12-22") || prev.To != MustDate("2023-12-31") {
		t.Errorf("Previous() = %v, want 2023-12-22..2023-12-31", prev)
	}
	if got := prev.Len(); got != rng.Len() {
		t.Errorf("Previous().Len() = %d, want %d", got, rng.Len())
	}

	var days []Date
	for d := range rng.Days() {
		days = append(days, d)
	}
	if len(days) != 10 || days[0] != rng.From || days[9] != rng.To {
		t.Errorf("Days() yielded %v", days)
	}
}
