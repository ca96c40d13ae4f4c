//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=iot_data_post_test
package iot_data_post

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
	UpdateDeviceStatus(ctx context.Context, telemetry entities.ShipmentTelemetry) (*entities.Shipment, error)
}
