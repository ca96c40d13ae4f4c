//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"shipment-service/internal/handlers/tasks/status_metrics"
	"shipment-service/internal/pkg/config"
	"shipment-service/internal/pkg/factory/shipment_credentials"

	shipmentRepo "shipment-service/internal/repository/shipment"
	shipmentService "shipment-service/internal/service/shipment"

	"shipment-service/pkg/logger"
	"shipment-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatusMetricsInterval,

		provideShipmentRepository,
		shipment_credentials.New,

		provideServiceShipment,

		provideStatusMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.CredentialsFactory), new(*shipment_credentials.CredentialsFactory)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(status_metrics.Service), new(*shipmentService.Shipment)),
	)
	return &Application{}, nil
}

// InitializeTelemetryWorkerApp для Kafka воркера (cmd/worker-iot-telemetry)
func InitializeTelemetryWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*TelemetryWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideShipmentRepository,
		shipment_credentials.New,

		provideServiceShipment,

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.CredentialsFactory), new(*shipment_credentials.CredentialsFactory)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(TelemetryWorkerApp), "*"),
	)
	return nil, nil
}
