package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextServiceReminder(t *testing.T) {
	serviceDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("nothing scheduled means no reminder", func(t *testing.T) {
		record := &ServiceRecord{ServiceType: "General Service", ServiceDate: serviceDate}
		assert.Nil(t, record.NextServiceReminder())
	})

	t.Run("next date spawns a reminder", func(t *testing.T) {
		nextDate := serviceDate.AddDate(0, 6, 0)
		record := &ServiceRecord{
			BikeID:          uuid.New(),
			UserID:          uuid.New(),
			ServiceType:     "Oil Change",
			ServiceDate:     serviceDate,
			NextServiceDate: &nextDate,
		}

		reminder := record.NextServiceReminder()
		require.NotNil(t, reminder)
		assert.Equal(t, record.BikeID, reminder.BikeID)
		assert.Equal(t, record.UserID, reminder.UserID)
		assert.Equal(t, ReminderService, reminder.ReminderType)
		assert.Equal(t, "Next Service Due - Oil Change", reminder.Title)
		assert.Equal(t, PriorityMedium, reminder.Priority)
		assert.Equal(t, &nextDate, reminder.DueDate)
		assert.Nil(t, reminder.DueOdometer)
	})

	t.Run("next odometer alone is enough", func(t *testing.T) {
		nextKM := 8200
		record := &ServiceRecord{
			ServiceType:   "General Service",
			ServiceDate:   serviceDate,
			NextServiceKM: &nextKM,
		}

		reminder := record.NextServiceReminder()
		require.NotNil(t, reminder)
		assert.Nil(t, reminder.DueDate)
		require.NotNil(t, reminder.DueOdometer)
		assert.Equal(t, 8200, *reminder.DueOdometer)
	})
}
