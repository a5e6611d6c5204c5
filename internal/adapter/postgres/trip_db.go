package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TripRepository struct {
	db *sql.DB
}

func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{
		db,
	}
}

const tripColumns = `trip_id, bike_id, user_id, trip_date, start_odometer, end_odometer, distance,
	start_location, end_location, trip_purpose, notes, created_at`

func scanTrip(row interface{ Scan(...interface{}) error }) (*domain.Trip, error) {
	trip := &domain.Trip{}
	err := row.Scan(
		&trip.TripID,
		&trip.BikeID,
		&trip.UserID,
		&trip.TripDate,
		&trip.StartOdometer,
		&trip.EndOdometer,
		&trip.Distance,
		&trip.StartLocation,
		&trip.EndLocation,
		&trip.TripPurpose,
		&trip.Notes,
		&trip.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return trip, nil
}

func (r *TripRepository) CreateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	query := `INSERT INTO trips (trip_id, bike_id, user_id, trip_date, start_odometer, end_odometer,
		distance, start_location, end_location, trip_purpose, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		trip.TripID, trip.BikeID, trip.UserID, trip.TripDate, trip.StartOdometer, trip.EndOdometer,
		trip.Distance, trip.StartLocation, trip.EndLocation, trip.TripPurpose, trip.Notes,
	).Scan(&trip.CreatedAt)
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
	return trip, nil
}

func (r *TripRepository) GetTripByID(ctx context.Context, tripID, userID uuid.UUID) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE trip_id = $1 AND user_id = $2`

	trip, err := scanTrip(r.db.QueryRowContext(ctx, query, tripID, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return trip, nil
}

func (r *TripRepository) ListTrips(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE user_id = $1`
	args := []interface{}{userID}
	if bikeID != nil {
		query += ` AND bike_id = $2`
		args = append(args, *bikeID)
	}
	query += ` ORDER BY trip_date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) UpdateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	query := `UPDATE trips
		SET bike_id=$1, trip_date=$2, start_odometer=$3, end_odometer=$4, distance=$5,
			start_location=$6, end_location=$7, trip_purpose=$8, notes=$9
		WHERE trip_id=$10 AND user_id=$11
		RETURNING ` + tripColumns

	updated, err := scanTrip(r.db.QueryRowContext(ctx, query,
		trip.BikeID, trip.TripDate, trip.StartOdometer, trip.EndOdometer, trip.Distance,
		trip.StartLocation, trip.EndLocation, trip.TripPurpose, trip.Notes,
		trip.TripID, trip.UserID,
	))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *TripRepository) DeleteTrip(ctx context.Context, tripID, userID uuid.UUID) error {
	query := `DELETE FROM trips WHERE trip_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, tripID, userID)
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
