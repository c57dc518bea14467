package timemath_test

import (
	"testing"
	"time"

	"github.com/JellyPork/bunflow/pkg/timemath"
)

func TestNextAtTime(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		hour int
		min  int
		want time.Time
	}{
		{
			name: "same day when time has not passed",
			from: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			hour: 14, min: 30,
			want: time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "next day when time has passed",
			from: time.Date(2025, 1, 15, 16, 0, 0, 0, time.UTC),
			hour: 14, min: 30,
			want: time.Date(2025, 1, 16, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "next day when exactly at the requested time",
			from: time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC),
			hour: 14, min: 30,
			want: time.Date(2025, 1, 16, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "next day when within the one second buffer",
			from: time.Date(2025, 1, 15, 14, 29, 59, 500_000_000, time.UTC),
			hour: 14, min: 30,
			want: time.Date(2025, 1, 16, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "month boundary",
			from: time.Date(2025, 1, 31, 16, 0, 0, 0, time.UTC),
			hour: 14, min: 30,
			want: time.Date(2025, 2, 1, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "year boundary",
			from: time.Date(2024, 12, 31, 16, 0, 0, 0, time.UTC),
			hour: 14, min: 30,
			want: time.Date(2025, 1, 1, 14, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timemath.NextAtTime(tt.hour, tt.min, tt.from)
			if !got.Equal(tt.want) {
				t.Errorf("NextAtTime() = %v, want %v", got, tt.want)
			}
			if got.Second() != 0 || got.Nanosecond() != 0 {
				t.Errorf("NextAtTime() seconds/nanos not zeroed: %v", got)
			}
		})
	}
}

func TestNextWeekday(t *testing.T) {
	// Monday, Jan 13 2025
	monday := time.Date(2025, 1, 13, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		from    time.Time
		weekday time.Weekday
		hour    int
		min     int
		want    time.Time
	}{
		{
			name: "later in the same week",
			from: monday, weekday: time.Friday, hour: 14, min: 30,
			want: time.Date(2025, 1, 17, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "same weekday today, time not yet passed",
			from: monday, weekday: time.Monday, hour: 14, min: 30,
			want: time.Date(2025, 1, 13, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "same weekday, time already passed, pushes a week",
			from: time.Date(2025, 1, 13, 16, 0, 0, 0, time.UTC), weekday: time.Monday, hour: 14, min: 30,
			want: time.Date(2025, 1, 20, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "exactly at the requested instant pushes a week",
			from: time.Date(2025, 1, 13, 14, 30, 0, 0, time.UTC), weekday: time.Monday, hour: 14, min: 30,
			want: time.Date(2025, 1, 20, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "saturday wraps to sunday",
			from: time.Date(2025, 1, 18, 10, 0, 0, 0, time.UTC), weekday: time.Sunday, hour: 14, min: 30,
			want: time.Date(2025, 1, 19, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "sunday wraps to monday",
			from: time.Date(2025, 1, 19, 10, 0, 0, 0, time.UTC), weekday: time.Monday, hour: 14, min: 30,
			want: time.Date(2025, 1, 20, 14, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timemath.NextWeekday(tt.weekday, tt.hour, tt.min, tt.from)
			if !got.Equal(tt.want) {
				t.Errorf("NextWeekday() = %v, want %v", got, tt.want)
			}
			if got.Weekday() != tt.weekday {
				t.Errorf("NextWeekday() landed on %v, want %v", got.Weekday(), tt.weekday)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	got := timemath.EndOfDay(time.Date(2025, 6, 6, 8, 15, 0, 0, time.UTC))
	want := time.Date(2025, 6, 6, 23, 59, 59, 999_000_000, time.UTC)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() = %v, want %v", got, want)
	}
}

func TestWeekdayFromName(t *testing.T) {
	tests := []struct {
		in   string
		want time.Weekday
		ok   bool
	}{
		{"monday", time.Monday, true},
		{"Mon", time.Monday, true},
		{"TUES", time.Tuesday, true},
		{"thurs", time.Thursday, true},
		{"sunday", time.Sunday, true},
		{"Sun", time.Sunday, true},
		{"fri", time.Friday, true},
		{"funday", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := timemath.WeekdayFromName(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("WeekdayFromName(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
