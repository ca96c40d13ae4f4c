package shipment

import (
	"context"
	"fmt"
	"time"

	"shipment-service/internal/entities"
)

type Shipment struct {
	repository  Repository
	credentials CredentialsFactory
	txManager   TxManager
}

func New(repository Repository, credentials CredentialsFactory, txManager TxManager) *Shipment {
	return &Shipment{
		repository:  repository,
		credentials: credentials,
		txManager:   txManager,
	}
}

// CreateShipment создает новую запись. device_id и shipment_id либо оба заданы,
// либо оба отсутствуют - тогда пара генерируется фабрикой. Ровно одно из двух
// полей считается ошибкой валидации, а не поводом догенерировать второе.
func (s *Shipment) CreateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	if !isPresent(shipmentModify.Status) ||
		!isPresent(shipmentModify.CurrentLocation) ||
		!isPresent(shipmentModify.DestinationLocation) {
		return nil, ErrMissingRequiredFields
	}

	hasDeviceID := isPresent(shipmentModify.DeviceID)
	hasShipmentID := isPresent(shipmentModify.ShipmentID)
	switch {
	case !hasDeviceID && !hasShipmentID:
		deviceID, shipmentID := s.credentials.NewIdentifiers()
		shipmentModify.DeviceID = &deviceID
		shipmentModify.ShipmentID = &shipmentID
	case hasDeviceID != hasShipmentID:
		return nil, ErrMissingRequiredFields
	}

	if !isPresent(shipmentModify.CreatedAt) {
		createdAt := s.credentials.CreatedAt(time.Now())
		shipmentModify.CreatedAt = &createdAt
	}

	var created *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, shipmentModify)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	return created, nil
}

func (s *Shipment) GetShipment(ctx context.Context, id int64) (*entities.Shipment, error) {
	if id <= 0 {
		return nil, ErrInvalidShipmentID
	}

	shipmentEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	return shipmentEntity, nil
}

func (s *Shipment) GetShipments(ctx context.Context) ([]entities.Shipment, error) {
	shipments, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipments: %w", err)
	}

	return shipments, nil
}

// ReplaceShipment полная замена записи по id. Все поля кроме notes обязательны,
// id и created_at не меняются никогда.
func (s *Shipment) ReplaceShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	if shipmentModify.ID == nil || *shipmentModify.ID <= 0 {
		return nil, ErrInvalidShipmentID
	}

	if !isPresent(shipmentModify.DeviceID) ||
		!isPresent(shipmentModify.ShipmentID) ||
		!isPresent(shipmentModify.Status) ||
		!isPresent(shipmentModify.CurrentLocation) ||
		!isPresent(shipmentModify.DestinationLocation) {
		return nil, ErrMissingRequiredFields
	}

	// created_at выставляется ровно один раз при создании
	shipmentModify.CreatedAt = nil

	updated, err := s.repository.Update(ctx, shipmentModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update shipment: %w", err)
	}

	return updated, nil
}

func (s *Shipment) DeleteShipment(ctx context.Context, id int64) (*entities.Shipment, error) {
	if id <= 0 {
		return nil, ErrInvalidShipmentID
	}

	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete shipment: %w", err)
	}

	return deleted, nil
}

// UpdateDeviceStatus узкий путь обновления для IoT устройств:
// меняет только status и current_location записи с данным device_id.
func (s *Shipment) UpdateDeviceStatus(ctx context.Context, telemetry entities.ShipmentTelemetry) (*entities.Shipment, error) {
	if !isPresentValue(telemetry.DeviceID) ||
		!isPresentValue(telemetry.CurrentLocation) ||
		!isPresentValue(telemetry.Status) {
		return nil, ErrMissingRequiredFields
	}

	updated, err := s.repository.UpdateByDeviceID(ctx, telemetry)
	if err != nil {
		return nil, fmt.Errorf("failed to update device status: %w", err)
	}

	return updated, nil
}

func (s *Shipment) CountShipmentsByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count shipments: %w", err)
	}

	return counts, nil
}
