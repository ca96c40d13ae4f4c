//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"shipment-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	GetByDeviceID(ctx context.Context, deviceID string) (*entities.Shipment, error)
	GetAll(ctx context.Context) ([]entities.Shipment, error)
	Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)
	UpdateByDeviceID(ctx context.Context, telemetry entities.ShipmentTelemetry) (*entities.Shipment, error)
	Delete(ctx context.Context, id int64) (*entities.Shipment, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type CredentialsFactory interface {
	NewIdentifiers() (deviceID string, shipmentID string)
	CreatedAt(now time.Time) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
