//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_put_test
package shipment_put

import (
	"context"

	"shipment-service/internal/entities"
	"shipment-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ReplaceShipment(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)
}
