package recurringService

import (
	"testing"
	"time"

	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
)

func TestIsDue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		frequency      string
		startDate      time.Time
		lastExecutedAt *time.Time
		want           bool
	}{
		{
			name:      "never executed and start date passed",
			frequency: string(entity.RecurringDaily),
			startDate: now.Add(-24 * time.Hour),
			want:      true,
		},
		{
			name:      "never executed and start date is now",
			frequency: string(entity.RecurringDaily),
			startDate: now,
			want:      true,
		},
		{
			name:      "never executed and start date in the future",
			frequency: string(entity.RecurringDaily),
			startDate: now.Add(time.Hour),
			want:      false,
		},
		{
			name:           "daily executed yesterday",
			frequency:      string(entity.RecurringDaily),
			startDate:      now.AddDate(0, -1, 0),
			lastExecutedAt: timePtr(now.AddDate(0, 0, -1)),
			want:           true,
		},
		{
			name:           "daily executed an hour ago",
			frequency:      string(entity.RecurringDaily),
			startDate:      now.AddDate(0, -1, 0),
			lastExecutedAt: timePtr(now.Add(-time.Hour)),
			want:           false,
		},
		{
			name:           "weekly executed six days ago",
			frequency:      string(entity.RecurringWeekly),
			startDate:      now.AddDate(0, -1, 0),
			lastExecutedAt: timePtr(now.AddDate(0, 0, -6)),
			want:           false,
		},
		{
			name:           "weekly executed seven days ago",
			frequency:      string(entity.RecurringWeekly),
			startDate:      now.AddDate(0, -1, 0),
			lastExecutedAt: timePtr(now.AddDate(0, 0, -7)),
			want:           true,
		},
		{
			name:           "monthly executed last month",
			frequency:      string(entity.RecurringMonthly),
			startDate:      now.AddDate(-1, 0, 0),
			lastExecutedAt: timePtr(now.AddDate(0, -1, 0)),
			want:           true,
		},
		{
			name:           "monthly executed two weeks ago",
			frequency:      string(entity.RecurringMonthly),
			startDate:      now.AddDate(-1, 0, 0),
			lastExecutedAt: timePtr(now.AddDate(0, 0, -14)),
			want:           false,
		},
		{
			name:           "yearly executed last year",
			frequency:      string(entity.RecurringYearly),
			startDate:      now.AddDate(-2, 0, 0),
			lastExecutedAt: timePtr(now.AddDate(-1, 0, 0)),
			want:           true,
		},
		{
			name:           "unknown frequency never comes due",
			frequency:      "fortnightly",
			startDate:      now.AddDate(-2, 0, 0),
			lastExecutedAt: timePtr(now.AddDate(-1, 0, 0)),
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template := entity.RecurringTransaction{
				Frequency:      tt.frequency,
				StartDate:      tt.startDate,
				LastExecutedAt: tt.lastExecutedAt,
			}

			got := isDue(template, now)
			if got != tt.want {
				t.Errorf("isDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	last := time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		frequency string
		want      time.Time
	}{
		{
			name:      "daily",
			frequency: string(entity.RecurringDaily),
			want:      time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			name:      "weekly",
			frequency: string(entity.RecurringWeekly),
			want:      time.Date(2025, 2, 7, 8, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly normalizes past month end",
			frequency: string(entity.RecurringMonthly),
			want:      time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC),
		},
		{
			name:      "yearly",
			frequency: string(entity.RecurringYearly),
			want:      time.Date(2026, 1, 31, 8, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextOccurrence(tt.frequency, last)
			if !got.Equal(tt.want) {
				t.Errorf("nextOccurrence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
