package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t time.Time) *time.Time { return &t }
func intPtr(v int) *int              { return &v }

func TestReminderDaysLeft(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

	t.Run("no due date", func(t *testing.T) {
		r := &Reminder{}
		assert.Nil(t, r.DaysLeft(now))
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		r := &Reminder{DueDate: datePtr(time.Date(2024, 6, 15, 2, 0, 0, 0, time.UTC))}
		days := r.DaysLeft(now)
		require.NotNil(t, days)
		assert.Equal(t, 0, *days)
	})

	t.Run("past date is negative", func(t *testing.T) {
		r := &Reminder{DueDate: datePtr(time.Date(2024, 6, 14, 23, 0, 0, 0, time.UTC))}
		days := r.DaysLeft(now)
		require.NotNil(t, days)
		assert.Equal(t, -1, *days)
	})

	t.Run("spring-forward day still counts as one", func(t *testing.T) {
		berlin, err := time.LoadLocation("Europe/Berlin")
		require.NoError(t, err)
		// March 31 2024 is only 23 wall-clock hours long in Berlin.
		r := &Reminder{DueDate: datePtr(time.Date(2024, 3, 31, 12, 0, 0, 0, berlin))}
		days := r.DaysLeft(time.Date(2024, 4, 1, 12, 0, 0, 0, berlin))
		require.NotNil(t, days)
		assert.Equal(t, -1, *days)
	})

	t.Run("fall-back day still counts as one", func(t *testing.T) {
		berlin, err := time.LoadLocation("Europe/Berlin")
		require.NoError(t, err)
		r := &Reminder{DueDate: datePtr(time.Date(2024, 10, 28, 12, 0, 0, 0, berlin))}
		days := r.DaysLeft(time.Date(2024, 10, 27, 12, 0, 0, 0, berlin))
		require.NotNil(t, days)
		assert.Equal(t, 1, *days)
	})
}

func TestReminderClassifyAcrossDSTChange(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, berlin)

	r := Reminder{DueDate: datePtr(time.Date(2024, 3, 31, 12, 0, 0, 0, berlin))}
	assert.Equal(t, Overdue, r.Classify(now, 0, DefaultUrgencyConfig()))
}

func TestReminderClassify(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	cfg := DefaultUrgencyConfig()

	tests := []struct {
		name     string
		reminder Reminder
		odometer int
		want     Urgency
	}{
		{
			name:     "no due date or odometer",
			reminder: Reminder{},
			want:     Upcoming,
		},
		{
			name:     "due date far out",
			reminder: Reminder{DueDate: datePtr(now.AddDate(0, 1, 0))},
			want:     Upcoming,
		},
		{
			name:     "due within the warning window",
			reminder: Reminder{DueDate: datePtr(now.AddDate(0, 0, 3))},
			want:     DueSoon,
		},
		{
			name:     "due today",
			reminder: Reminder{DueDate: datePtr(now)},
			want:     DueToday,
		},
		{
			name:     "due yesterday",
			reminder: Reminder{DueDate: datePtr(now.AddDate(0, 0, -1))},
			want:     Overdue,
		},
		{
			name:     "odometer within the warning window",
			reminder: Reminder{DueOdometer: intPtr(5200)},
			odometer: 5000,
			want:     DueSoon,
		},
		{
			name:     "odometer reached",
			reminder: Reminder{DueOdometer: intPtr(5000)},
			odometer: 5000,
			want:     Overdue,
		},
		{
			name:     "odometer passed",
			reminder: Reminder{DueOdometer: intPtr(5000)},
			odometer: 5300,
			want:     Overdue,
		},
		{
			name: "date in three days and odometer close",
			reminder: Reminder{
				DueDate:     datePtr(now.AddDate(0, 0, 3)),
				DueOdometer: intPtr(5200),
			},
			odometer: 5000,
			want:     DueSoon,
		},
		{
			name: "due today beats a merely close odometer",
			reminder: Reminder{
				DueDate:     datePtr(now),
				DueOdometer: intPtr(5200),
			},
			odometer: 5000,
			want:     DueToday,
		},
		{
			name: "overdue odometer beats an upcoming date",
			reminder: Reminder{
				DueDate:     datePtr(now.AddDate(0, 2, 0)),
				DueOdometer: intPtr(5000),
			},
			odometer: 5100,
			want:     Overdue,
		},
		{
			name: "completed wins over everything",
			reminder: Reminder{
				DueDate:     datePtr(now.AddDate(0, 0, -10)),
				DueOdometer: intPtr(4000),
				IsCompleted: true,
			},
			odometer: 5000,
			want:     Completed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.reminder.Classify(now, tt.odometer, cfg))
		})
	}
}

func TestUrgencyString(t *testing.T) {
	assert.Equal(t, "upcoming", Upcoming.String())
	assert.Equal(t, "due-soon", DueSoon.String())
	assert.Equal(t, "due-today", DueToday.String())
	assert.Equal(t, "overdue", Overdue.String())
	assert.Equal(t, "completed", Completed.String())
}
