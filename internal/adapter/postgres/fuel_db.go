package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type FuelLogRepository struct {
	db *sql.DB
}

func NewFuelLogRepository(db *sql.DB) *FuelLogRepository {
	return &FuelLogRepository{
		db,
	}
}

const fuelLogColumns = `fuel_id, bike_id, user_id, fill_date, odometer_reading, fuel_quantity,
	fuel_cost, price_per_liter, fuel_type, is_full_tank, fuel_station, mileage, notes, created_at`

func scanFuelLog(row interface{ Scan(...interface{}) error }) (*domain.FuelLog, error) {
	log := &domain.FuelLog{}
	var mileage sql.NullFloat64
	err := row.Scan(
		&log.FuelID,
		&log.BikeID,
		&log.UserID,
		&log.FillDate,
		&log.OdometerReading,
		&log.FuelQuantity,
		&log.FuelCost,
		&log.PricePerLiter,
		&log.FuelType,
		&log.IsFullTank,
		&log.FuelStation,
		&mileage,
		&log.Notes,
		&log.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if mileage.Valid {
		log.Mileage = &mileage.Float64
	}
	return log, nil
}

func (r *FuelLogRepository) CreateFuelLog(ctx context.Context, log *domain.FuelLog) (*domain.FuelLog, error) {
	query := `INSERT INTO fuel_logs (fuel_id, bike_id, user_id, fill_date, odometer_reading, fuel_quantity,
		fuel_cost, price_per_liter, fuel_type, is_full_tank, fuel_station, mileage, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	RETURNING created_at`

	var mileage sql.NullFloat64
	if log.Mileage != nil {
		mileage = sql.NullFloat64{Float64: *log.Mileage, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		log.FuelID, log.BikeID, log.UserID, log.FillDate, log.OdometerReading, log.FuelQuantity,
		log.FuelCost, log.PricePerLiter, log.FuelType, log.IsFullTank, log.FuelStation, mileage, log.Notes,
	).Scan(&log.CreatedAt)
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
	return log, nil
}

func (r *FuelLogRepository) GetFuelLogByID(ctx context.Context, fuelID, userID uuid.UUID) (*domain.FuelLog, error) {
	query := `SELECT ` + fuelLogColumns + ` FROM fuel_logs WHERE fuel_id = $1 AND user_id = $2`

	log, err := scanFuelLog(r.db.QueryRowContext(ctx, query, fuelID, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}

func (r *FuelLogRepository) ListFuelLogs(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) ([]*domain.FuelLog, error) {
	query := `SELECT ` + fuelLogColumns + ` FROM fuel_logs WHERE user_id = $1`
	args := []interface{}{userID}
	if bikeID != nil {
		query += ` AND bike_id = $2`
		args = append(args, *bikeID)
	}
	query += ` ORDER BY fill_date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.FuelLog
	for rows.Next() {
		log, err := scanFuelLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *FuelLogRepository) UpdateFuelLog(ctx context.Context, log *domain.FuelLog) (*domain.FuelLog, error) {
	query := `UPDATE fuel_logs
		SET bike_id=$1, fill_date=$2, odometer_reading=$3, fuel_quantity=$4, fuel_cost=$5,
			price_per_liter=$6, fuel_type=$7, is_full_tank=$8, fuel_station=$9, notes=$10
		WHERE fuel_id=$11 AND user_id=$12
		RETURNING ` + fuelLogColumns

	updated, err := scanFuelLog(r.db.QueryRowContext(ctx, query,
		log.BikeID, log.FillDate, log.OdometerReading, log.FuelQuantity, log.FuelCost,
		log.PricePerLiter, log.FuelType, log.IsFullTank, log.FuelStation, log.Notes,
		log.FuelID, log.UserID,
	))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *FuelLogRepository) DeleteFuelLog(ctx context.Context, fuelID, userID uuid.UUID) error {
	query := `DELETE FROM fuel_logs WHERE fuel_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, fuelID, userID)
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

// PreviousFill picks the fill that mileage will be attributed against: the
// log with the largest odometer reading strictly below the new one, in a
// single query so duplicate readings and racing submissions cannot make a
// read-then-compare round trip pick a different row.
func (r *FuelLogRepository) PreviousFill(ctx context.Context, bikeID uuid.UUID, beforeReading int) (*domain.FuelLog, error) {
	query := `SELECT ` + fuelLogColumns + ` FROM fuel_logs
		WHERE bike_id = $1 AND odometer_reading < $2
		ORDER BY odometer_reading DESC
		LIMIT 1`

	log, err := scanFuelLog(r.db.QueryRowContext(ctx, query, bikeID, beforeReading))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}
