package datemath_test

import (
	"testing"
	"time"

	"github.com/JellyPork/bunflow/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Europe/Amsterdam"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestInterpret(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	// Wednesday, May 1, 2024, 15:30
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		text      string
		want      time.Time
		wantClock bool
		wantOK    bool
	}{
		{
			name:   "today",
			text:   "finish report today",
			want:   startOfBase,
			wantOK: true,
		},
		{
			name:   "tomorrow",
			text:   "buy groceries tomorrow",
			want:   startOfBase.AddDate(0, 0, 1),
			wantOK: true,
		},
		{
			name:      "tomorrow with am time",
			text:      "meeting tomorrow at 3pm",
			want:      time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC),
			wantClock: true,
			wantOK:    true,
		},
		{
			name:      "time with minutes",
			text:      "appointment at 2:30pm",
			want:      time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC),
			wantClock: true,
			wantOK:    true,
		},
		{
			name:      "midnight and noon are exact",
			text:      "flight at 12am",
			want:      startOfBase,
			wantClock: true,
			wantOK:    true,
		},
		{
			name:      "24 hour clock",
			text:      "standup at 14:05",
			want:      time.Date(2024, 5, 1, 14, 5, 0, 0, time.UTC),
			wantClock: true,
			wantOK:    true,
		},
		{
			name:   "in 3 days",
			text:   "review in 3 days",
			want:   startOfBase.AddDate(0, 0, 3),
			wantOK: true,
		},
		{
			name:   "in 2 weeks",
			text:   "follow up in 2 weeks",
			want:   startOfBase.AddDate(0, 0, 14),
			wantOK: true,
		},
		{
			name:   "in 1 month",
			text:   "renew in 1 month",
			want:   startOfBase.AddDate(0, 1, 0),
			wantOK: true,
		},
		{
			name:   "next monday from wednesday",
			text:   "kickoff next monday",
			want:   startOfBase.AddDate(0, 0, 5),
			wantOK: true,
		},
		{
			name:   "next wednesday from wednesday is a week out",
			text:   "sync next wednesday",
			want:   startOfBase.AddDate(0, 0, 7),
			wantOK: true,
		},
		{
			name:   "bare weekday resolves to upcoming occurrence",
			text:   "friday",
			want:   startOfBase.AddDate(0, 0, 2),
			wantOK: true,
		},
		{
			name:   "month day with ordinal",
			text:   "june 6th",
			want:   time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "past month day rolls to next year",
			text:   "march 1st",
			want:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "nothing date-like",
			text:   "buy milk",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Interpret(tt.text, base)
			if ok != tt.wantOK {
				t.Fatalf("Interpret() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !got.At.Equal(tt.want) {
				t.Errorf("Interpret() at = %v, want %v", got.At, tt.want)
			}
			if got.HasClockTime != tt.wantClock {
				t.Errorf("Interpret() hasClockTime = %v, want %v", got.HasClockTime, tt.wantClock)
			}
			if len(got.Spans) == 0 {
				t.Errorf("Interpret() returned no spans")
			}
		})
	}
}
