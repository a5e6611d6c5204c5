package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/google/uuid"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{
		db,
	}
}

// ownerFilter builds the WHERE tail shared by every aggregate: always scoped
// to the user, optionally narrowed to one bike.
func ownerFilter(userID uuid.UUID, bikeID *uuid.UUID) (string, []interface{}) {
	if bikeID != nil {
		return `WHERE user_id = $1 AND bike_id = $2`, []interface{}{userID, *bikeID}
	}
	return `WHERE user_id = $1`, []interface{}{userID}
}

func (r *ReportRepository) FuelStats(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) (*domain.FuelStats, error) {
	where, args := ownerFilter(userID, bikeID)
	query := `SELECT COALESCE(SUM(fuel_quantity), 0), COALESCE(SUM(fuel_cost), 0),
		COALESCE(AVG(price_per_liter), 0), AVG(mileage), COUNT(*)
	FROM fuel_logs ` + where

	stats := &domain.FuelStats{}
	var avgMileage sql.NullFloat64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalFuel,
		&stats.TotalCost,
		&stats.AvgPrice,
		&avgMileage,
		&stats.TotalFills,
	)
	if err != nil {
		return nil, err
	}
	if avgMileage.Valid {
		stats.AvgMileage = &avgMileage.Float64
	}
	return stats, nil
}

func (r *ReportRepository) ServiceStats(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) (*domain.ServiceStats, error) {
	where, args := ownerFilter(userID, bikeID)
	query := `SELECT COALESCE(SUM(service_cost), 0), COUNT(*) FROM service_records ` + where

	stats := &domain.ServiceStats{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalCost,
		&stats.TotalServices,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *ReportRepository) TripStats(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) (*domain.TripStats, error) {
	where, args := ownerFilter(userID, bikeID)
	query := `SELECT COUNT(*), COALESCE(SUM(distance), 0), AVG(distance) FROM trips ` + where

	stats := &domain.TripStats{}
	var avgDistance sql.NullFloat64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalTrips,
		&stats.LoggedDistance,
		&avgDistance,
	)
	if err != nil {
		return nil, err
	}
	if avgDistance.Valid {
		stats.AvgDistance = &avgDistance.Float64
	}
	return stats, nil
}

func (r *ReportRepository) MonthlyFuel(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID, months int) ([]domain.MonthlyFuel, error) {
	where, args := ownerFilter(userID, bikeID)
	query := fmt.Sprintf(`SELECT to_char(fill_date, 'YYYY-MM') AS month,
		COALESCE(SUM(fuel_quantity), 0), COALESCE(SUM(fuel_cost), 0), AVG(mileage)
	FROM fuel_logs %s
	GROUP BY month
	ORDER BY month DESC
	LIMIT $%d`, where, len(args)+1)
	args = append(args, months)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var monthly []domain.MonthlyFuel
	for rows.Next() {
		var m domain.MonthlyFuel
		var avgMileage sql.NullFloat64
		if err := rows.Scan(&m.Month, &m.TotalFuel, &m.TotalCost, &avgMileage); err != nil {
			return nil, err
		}
		if avgMileage.Valid {
			m.AvgMileage = &avgMileage.Float64
		}
		monthly = append(monthly, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return monthly, nil
}

func (r *ReportRepository) TripPurposes(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) ([]domain.TripPurposeStat, error) {
	where, args := ownerFilter(userID, bikeID)
	query := `SELECT trip_purpose, COUNT(*), COALESCE(SUM(distance), 0)
	FROM trips ` + where + `
	GROUP BY trip_purpose`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purposes []domain.TripPurposeStat
	for rows.Next() {
		var p domain.TripPurposeStat
		if err := rows.Scan(&p.Purpose, &p.Count, &p.Distance); err != nil {
			return nil, err
		}
		purposes = append(purposes, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return purposes, nil
}

func (r *ReportRepository) SumOdometerDistance(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `SELECT COALESCE(SUM(current_odometer - initial_odometer), 0) FROM bikes WHERE user_id = $1`

	var total int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
