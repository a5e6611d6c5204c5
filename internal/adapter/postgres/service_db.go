package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mototrack/mototrack_service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ServiceRecordRepository struct {
	db *sql.DB
}

func NewServiceRecordRepository(db *sql.DB) *ServiceRecordRepository {
	return &ServiceRecordRepository{
		db,
	}
}

const serviceColumns = `service_id, bike_id, user_id, service_date, odometer_reading, service_type,
	service_center, service_cost, parts_replaced, next_service_km, next_service_date,
	description, invoice_number, created_at`

func scanServiceRecord(row interface{ Scan(...interface{}) error }) (*domain.ServiceRecord, error) {
	record := &domain.ServiceRecord{}
	var nextKM sql.NullInt64
	var nextDate sql.NullTime
	err := row.Scan(
		&record.ServiceID,
		&record.BikeID,
		&record.UserID,
		&record.ServiceDate,
		&record.OdometerReading,
		&record.ServiceType,
		&record.ServiceCenter,
		&record.ServiceCost,
		&record.PartsReplaced,
		&nextKM,
		&nextDate,
		&record.Description,
		&record.InvoiceNumber,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if nextKM.Valid {
		v := int(nextKM.Int64)
		record.NextServiceKM = &v
	}
	if nextDate.Valid {
		record.NextServiceDate = &nextDate.Time
	}
	return record, nil
}

func (r *ServiceRecordRepository) CreateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	query := `INSERT INTO service_records (service_id, bike_id, user_id, service_date, odometer_reading,
		service_type, service_center, service_cost, parts_replaced, next_service_km, next_service_date,
		description, invoice_number)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		record.ServiceID, record.BikeID, record.UserID, record.ServiceDate, record.OdometerReading,
		record.ServiceType, record.ServiceCenter, record.ServiceCost, record.PartsReplaced,
		record.NextServiceKM, record.NextServiceDate, record.Description, record.InvoiceNumber,
	).Scan(&record.CreatedAt)
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
	return record, nil
}

func (r *ServiceRecordRepository) GetServiceRecordByID(ctx context.Context, serviceID, userID uuid.UUID) (*domain.ServiceRecord, error) {
	query := `SELECT ` + serviceColumns + ` FROM service_records WHERE service_id = $1 AND user_id = $2`

	record, err := scanServiceRecord(r.db.QueryRowContext(ctx, query, serviceID, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *ServiceRecordRepository) ListServiceRecords(ctx context.Context, userID uuid.UUID, bikeID *uuid.UUID) ([]*domain.ServiceRecord, error) {
	query := `SELECT ` + serviceColumns + ` FROM service_records WHERE user_id = $1`
	args := []interface{}{userID}
	if bikeID != nil {
		query += ` AND bike_id = $2`
		args = append(args, *bikeID)
	}
	query += ` ORDER BY service_date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.ServiceRecord
	for rows.Next() {
		record, err := scanServiceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ServiceRecordRepository) UpdateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	query := `UPDATE service_records
		SET bike_id=$1, service_date=$2, odometer_reading=$3, service_type=$4, service_center=$5,
			service_cost=$6, parts_replaced=$7, next_service_km=$8, next_service_date=$9,
			description=$10, invoice_number=$11
		WHERE service_id=$12 AND user_id=$13
		RETURNING ` + serviceColumns

	updated, err := scanServiceRecord(r.db.QueryRowContext(ctx, query,
		record.BikeID, record.ServiceDate, record.OdometerReading, record.ServiceType, record.ServiceCenter,
		record.ServiceCost, record.PartsReplaced, record.NextServiceKM, record.NextServiceDate,
		record.Description, record.InvoiceNumber,
		record.ServiceID, record.UserID,
	))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *ServiceRecordRepository) DeleteServiceRecord(ctx context.Context, serviceID, userID uuid.UUID) error {
	query := `DELETE FROM service_records WHERE service_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, serviceID, userID)
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
