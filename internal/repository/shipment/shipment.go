package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shipment-service/internal/entities"
	"shipment-service/internal/repository"
	"shipment-service/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = "id, device_id, shipment_id, status, current_location, destination_location, notes, created_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)
	query := `INSERT INTO shipments (device_id, shipment_id, status, current_location, destination_location, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + shipmentColumns

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shipmentModifyModel.DeviceID,
		shipmentModifyModel.ShipmentID,
		shipmentModifyModel.Status,
		shipmentModifyModel.CurrentLocation,
		shipmentModifyModel.DestinationLocation,
		shipmentModifyModel.Notes,
		shipmentModifyModel.CreatedAt,
	).Scan(
		&shipmentModel.ID,
		&shipmentModel.DeviceID,
		&shipmentModel.ShipmentID,
		&shipmentModel.Status,
		&shipmentModel.CurrentLocation,
		&shipmentModel.DestinationLocation,
		&shipmentModel.Notes,
		&shipmentModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrConflict
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1`

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&shipmentModel.ID,
			&shipmentModel.DeviceID,
			&shipmentModel.ShipmentID,
			&shipmentModel.Status,
			&shipmentModel.CurrentLocation,
			&shipmentModel.DestinationLocation,
			&shipmentModel.Notes,
			&shipmentModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) GetByDeviceID(ctx context.Context, deviceID string) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE device_id = $1`

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, deviceID).
		Scan(
			&shipmentModel.ID,
			&shipmentModel.DeviceID,
			&shipmentModel.ShipmentID,
			&shipmentModel.Status,
			&shipmentModel.CurrentLocation,
			&shipmentModel.DestinationLocation,
			&shipmentModel.Notes,
			&shipmentModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrDeviceNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository getbydeviceid error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Shipment, error) {
	query := `
	SELECT ` + shipmentColumns + `
	FROM shipments
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		var shipmentModel ShipmentDB
		err := rows.Scan(
			&shipmentModel.ID,
			&shipmentModel.DeviceID,
			&shipmentModel.ShipmentID,
			&shipmentModel.Status,
			&shipmentModel.CurrentLocation,
			&shipmentModel.DestinationLocation,
			&shipmentModel.Notes,
			&shipmentModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
		}
		shipmentModels = append(shipmentModels, shipmentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}

	return ToDomainList(shipmentModels), nil
}

// Update полная замена записи по id. id и created_at никогда не трогаем,
// notes выставляется всегда (nil -> NULL, замена целиком).
func (r *Repository) Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)

	builder := qb.
		Update("shipments")

	if shipmentModifyModel.DeviceID != nil {
		builder = builder.Set("device_id", shipmentModifyModel.DeviceID)
	}
	if shipmentModifyModel.ShipmentID != nil {
		builder = builder.Set("shipment_id", shipmentModifyModel.ShipmentID)
	}
	if shipmentModifyModel.Status != nil {
		builder = builder.Set("status", shipmentModifyModel.Status)
	}
	if shipmentModifyModel.CurrentLocation != nil {
		builder = builder.Set("current_location", shipmentModifyModel.CurrentLocation)
	}
	if shipmentModifyModel.DestinationLocation != nil {
		builder = builder.Set("destination_location", shipmentModifyModel.DestinationLocation)
	}
	builder = builder.Set("notes", shipmentModifyModel.Notes)

	builder = builder.
		Where(sq.Eq{"id": shipmentModifyModel.ID}).
		Suffix("RETURNING " + shipmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	var shipmentModel ShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&shipmentModel.ID,
			&shipmentModel.DeviceID,
			&shipmentModel.ShipmentID,
			&shipmentModel.Status,
			&shipmentModel.CurrentLocation,
			&shipmentModel.DestinationLocation,
			&shipmentModel.Notes,
			&shipmentModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrConflict
		}

		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) UpdateByDeviceID(ctx context.Context, telemetry entities.ShipmentTelemetry) (*entities.Shipment, error) {
	query := `UPDATE shipments
		SET current_location = $1, status = $2
		WHERE device_id = $3
		RETURNING ` + shipmentColumns

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, telemetry.CurrentLocation, telemetry.Status, telemetry.DeviceID).
		Scan(
			&shipmentModel.ID,
			&shipmentModel.DeviceID,
			&shipmentModel.ShipmentID,
			&shipmentModel.Status,
			&shipmentModel.CurrentLocation,
			&shipmentModel.DestinationLocation,
			&shipmentModel.Notes,
			&shipmentModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrDeviceNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository updatebydeviceid error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `DELETE FROM shipments
		WHERE id = $1
		RETURNING ` + shipmentColumns

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&shipmentModel.ID,
			&shipmentModel.DeviceID,
			&shipmentModel.ShipmentID,
			&shipmentModel.Status,
			&shipmentModel.CurrentLocation,
			&shipmentModel.DestinationLocation,
			&shipmentModel.Notes,
			&shipmentModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository delete error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	query := `
	SELECT status, COUNT(*)
	FROM shipments
	GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository countbystatus error: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository countbystatus error: %w", err)
		}
		counts[status] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository countbystatus error: %w", err)
	}

	return counts, nil
}
