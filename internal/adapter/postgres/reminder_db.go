package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mototrack/mototrack_service/internal/core/domain"
	"github.com/mototrack/mototrack_service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ReminderRepository struct {
	db *sql.DB
}

func NewReminderRepository(db *sql.DB) *ReminderRepository {
	return &ReminderRepository{
		db,
	}
}

const reminderColumns = `reminder_id, bike_id, user_id, reminder_type, title, description,
	due_date, due_odometer, priority, is_completed, completed_date, created_at`

func scanReminder(row interface{ Scan(...interface{}) error }) (*domain.Reminder, error) {
	reminder := &domain.Reminder{}
	var dueDate, completedDate sql.NullTime
	var dueOdometer sql.NullInt64
	err := row.Scan(
		&reminder.ReminderID,
		&reminder.BikeID,
		&reminder.UserID,
		&reminder.ReminderType,
		&reminder.Title,
		&reminder.Description,
		&dueDate,
		&dueOdometer,
		&reminder.Priority,
		&reminder.IsCompleted,
		&completedDate,
		&reminder.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dueDate.Valid {
		reminder.DueDate = &dueDate.Time
	}
	if dueOdometer.Valid {
		v := int(dueOdometer.Int64)
		reminder.DueOdometer = &v
	}
	if completedDate.Valid {
		reminder.CompletedDate = &completedDate.Time
	}
	return reminder, nil
}

func (r *ReminderRepository) CreateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	query := `INSERT INTO reminders (reminder_id, bike_id, user_id, reminder_type, title, description,
		due_date, due_odometer, priority)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		reminder.ReminderID, reminder.BikeID, reminder.UserID, reminder.ReminderType, reminder.Title,
		reminder.Description, reminder.DueDate, reminder.DueOdometer, reminder.Priority,
	).Scan(&reminder.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, fmt.Errorf("required field is missing")
			case "23503":
				return nil, fmt.Errorf("bike does not exist")
			default:
				return nil, err
			}
		}
		return nil, err
	}
	return reminder, nil
}

func (r *ReminderRepository) GetReminderByID(ctx context.Context, reminderID, userID uuid.UUID) (*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE reminder_id = $1 AND user_id = $2`

	reminder, err := scanReminder(r.db.QueryRowContext(ctx, query, reminderID, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

// ListReminders orders incomplete first, then by due date ascending with
// undated reminders last, then High > Medium > Low. Priority is ranked with
// a CASE expression because the labels do not sort usefully as text.
func (r *ReminderRepository) ListReminders(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID, filter ports.ReminderFilter) ([]*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE user_id = $1`
	args := []interface{}{userID}
	if bikeID != nil {
		query += fmt.Sprintf(` AND bike_id = $%d`, len(args)+1)
		args = append(args, *bikeID)
	}

	switch filter {
	case ports.FilterPending:
		query += ` AND is_completed = FALSE`
	case ports.FilterCompleted:
		query += ` AND is_completed = TRUE`
	}

	query += ` ORDER BY is_completed ASC, due_date ASC NULLS LAST,
		CASE priority WHEN 'High' THEN 3 WHEN 'Medium' THEN 2 ELSE 1 END DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []*domain.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *ReminderRepository) UpdateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	query := `UPDATE reminders
		SET bike_id=$1, reminder_type=$2, title=$3, description=$4, due_date=$5, due_odometer=$6, priority=$7
		WHERE reminder_id=$8 AND user_id=$9
		RETURNING ` + reminderColumns

	updated, err := scanReminder(r.db.QueryRowContext(ctx, query,
		reminder.BikeID, reminder.ReminderType, reminder.Title, reminder.Description,
		reminder.DueDate, reminder.DueOdometer, reminder.Priority,
		reminder.ReminderID, reminder.UserID,
	))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *ReminderRepository) CompleteReminder(ctx context.Context, reminderID, userID uuid.UUID) error {
	query := `UPDATE reminders SET is_completed = TRUE, completed_date = CURRENT_DATE
		WHERE reminder_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, reminderID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ReminderRepository) DeleteReminder(ctx context.Context, reminderID, userID uuid.UUID) error {
	query := `DELETE FROM reminders WHERE reminder_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, reminderID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
