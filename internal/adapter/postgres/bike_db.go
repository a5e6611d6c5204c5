package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BikeRepository struct {
	db *sql.DB
}

func NewBikeRepository(db *sql.DB) *BikeRepository {
	return &BikeRepository{
		db,
	}
}

func (r *BikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	query := `INSERT INTO bikes (bike_id, user_id, bike_name, manufacturer, model, year, registration_number,
		engine_capacity, purchase_date, purchase_price, current_odometer, initial_odometer, fuel_tank_capacity)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		bike.BikeID, bike.UserID, bike.BikeName, bike.Manufacturer, bike.Model, bike.Year,
		bike.RegistrationNumber, bike.EngineCapacity, bike.PurchaseDate, bike.PurchasePrice,
		bike.CurrentOdometer, bike.InitialOdometer, bike.FuelTankCapacity,
	).Scan(
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, fmt.Errorf("required field is missing")
			case "23503":
				return nil, fmt.Errorf("user does not exist")
			default:
				return nil, err
			}
		}
		return nil, err
	}
	return bike, nil
}

func (r *BikeRepository) GetBikeByID(ctx context.Context, bikeID, userID uuid.UUID) (*domain.Bike, error) {
	query := `SELECT bike_id, user_id, bike_name, manufacturer, model, year, registration_number,
		engine_capacity, purchase_date, purchase_price, current_odometer, initial_odometer,
		fuel_tank_capacity, created_at, updated_at
	FROM bikes WHERE bike_id = $1 AND user_id = $2`

	bike := &domain.Bike{}
	err := r.db.QueryRowContext(ctx, query, bikeID, userID).Scan(
		&bike.BikeID,
		&bike.UserID,
		&bike.BikeName,
		&bike.Manufacturer,
		&bike.Model,
		&bike.Year,
		&bike.RegistrationNumber,
		&bike.EngineCapacity,
		&bike.PurchaseDate,
		&bike.PurchasePrice,
		&bike.CurrentOdometer,
		&bike.InitialOdometer,
		&bike.FuelTankCapacity,
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return bike, nil
}

func (r *BikeRepository) GetBikesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Bike, error) {
	query := `SELECT bike_id, user_id, bike_name, manufacturer, model, year, registration_number,
		engine_capacity, purchase_date, purchase_price, current_odometer, initial_odometer,
		fuel_tank_capacity, created_at, updated_at
	FROM bikes WHERE user_id = $1 ORDER BY bike_name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bikes []*domain.Bike

	for rows.Next() {
		bike := &domain.Bike{}
		err := rows.Scan(
			&bike.BikeID,
			&bike.UserID,
			&bike.BikeName,
			&bike.Manufacturer,
			&bike.Model,
			&bike.Year,
			&bike.RegistrationNumber,
			&bike.EngineCapacity,
			&bike.PurchaseDate,
			&bike.PurchasePrice,
			&bike.CurrentOdometer,
			&bike.InitialOdometer,
			&bike.FuelTankCapacity,
			&bike.CreatedAt,
			&bike.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		bikes = append(bikes, bike)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *BikeRepository) UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	query := `UPDATE bikes
		SET
			bike_name = COALESCE(NULLIF($1, ''), bike_name),
			manufacturer = COALESCE(NULLIF($2, ''), manufacturer),
			model = COALESCE(NULLIF($3, ''), model),
			year = COALESCE(NULLIF($4, 0), year),
			registration_number = COALESCE(NULLIF($5, ''), registration_number),
			engine_capacity = COALESCE(NULLIF($6, 0), engine_capacity),
			purchase_price = COALESCE(NULLIF($7, 0.0), purchase_price),
			fuel_tank_capacity = COALESCE(NULLIF($8, 0.0), fuel_tank_capacity),
			updated_at = CURRENT_TIMESTAMP
		WHERE bike_id = $9 AND user_id = $10
		RETURNING bike_id, user_id, bike_name, manufacturer, model, year, registration_number,
			engine_capacity, purchase_date, purchase_price, current_odometer, initial_odometer,
			fuel_tank_capacity, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		bike.BikeName,
		bike.Manufacturer,
		bike.Model,
		bike.Year,
		bike.RegistrationNumber,
		bike.EngineCapacity,
		bike.PurchasePrice,
		bike.FuelTankCapacity,
		bike.BikeID,
		bike.UserID,
	).Scan(
		&bike.BikeID,
		&bike.UserID,
		&bike.BikeName,
		&bike.Manufacturer,
		&bike.Model,
		&bike.Year,
		&bike.RegistrationNumber,
		&bike.EngineCapacity,
		&bike.PurchaseDate,
		&bike.PurchasePrice,
		&bike.CurrentOdometer,
		&bike.InitialOdometer,
		&bike.FuelTankCapacity,
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23502" {
			return nil, fmt.Errorf("required field is missing")
		}
		return nil, fmt.Errorf("error updating bike: %w", err)
	}

	return bike, nil
}

func (r *BikeRepository) DeleteBike(ctx context.Context, bikeID, userID uuid.UUID) error {
	query := `DELETE FROM bikes WHERE bike_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, bikeID, userID)
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

// AdvanceOdometer is the conditional odometer write: a single statement so
// concurrent submissions for the same bike cannot interleave a read-compare-
// write and lose the higher reading. Zero rows affected just means the
// stored value was already at or past the new reading.
func (r *BikeRepository) AdvanceOdometer(ctx context.Context, bikeID, userID uuid.UUID, reading int) error {
	query := `UPDATE bikes SET current_odometer = $1, updated_at = CURRENT_TIMESTAMP
		WHERE bike_id = $2 AND user_id = $3 AND current_odometer < $1`

	_, err := r.db.ExecContext(ctx, query, reading, bikeID, userID)
	return err
}

func (r *BikeRepository) EarliestReading(ctx context.Context, bikeID uuid.UUID) (*int, error) {
	query := `SELECT MIN(reading) FROM (
		SELECT start_odometer AS reading FROM trips WHERE bike_id = $1
		UNION ALL
		SELECT odometer_reading AS reading FROM fuel_logs WHERE bike_id = $1
	) AS combined`

	var earliest sql.NullInt64
	if err := r.db.QueryRowContext(ctx, query, bikeID).Scan(&earliest); err != nil {
		return nil, err
	}
	if !earliest.Valid {
		return nil, nil
	}
	v := int(earliest.Int64)
	return &v, nil
}
