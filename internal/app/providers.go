package app

import (
	"context"
	"time"

	iot_data_post "shipment-service/internal/handlers/rest/iot_data_post"
	shipment_delete "shipment-service/internal/handlers/rest/shipment_delete"
	shipment_get "shipment-service/internal/handlers/rest/shipment_get"
	shipment_post "shipment-service/internal/handlers/rest/shipment_post"
	shipment_put "shipment-service/internal/handlers/rest/shipment_put"
	shipments_get "shipment-service/internal/handlers/rest/shipments_get"
	"shipment-service/internal/handlers/tasks/status_metrics"
	"shipment-service/internal/pkg/config"

	shipmentRepo "shipment-service/internal/repository/shipment"
	shipmentService "shipment-service/internal/service/shipment"

	"shipment-service/pkg/background"
	"shipment-service/pkg/logger"
	"shipment-service/pkg/querier"
	"shipment-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StatusMetricsInterval time.Duration
)

type Application struct {
	ServiceShipment   ServiceShipment
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipments_get.Service
	shipment_get.Service
	shipment_post.Service
	shipment_put.Service
	shipment_delete.Service
	iot_data_post.Service
}

// TelemetryWorkerApp для Kafka воркера (cmd/worker-iot-telemetry)
type TelemetryWorkerApp struct {
	ShipmentService *shipmentService.Shipment
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	credentials shipmentService.CredentialsFactory,
	txManager shipmentService.TxManager,
) *shipmentService.Shipment {
	return shipmentService.New(repository, credentials, txManager)
}

func provideStatusMetricsInterval(cfg *config.Config) StatusMetricsInterval {
	return StatusMetricsInterval(cfg.Tasks.StatusMetricsInterval)
}

func provideStatusMetricsTask(
	log logger.Logger,
	shipmentService status_metrics.Service,
	interval StatusMetricsInterval,
) *status_metrics.StatusMetrics {
	return status_metrics.NewStatusMetrics(log, shipmentService, time.Duration(interval))
}

func provideTaskList(
	statusMetricsTask *status_metrics.StatusMetrics,
) []background.Task {
	return []background.Task{
		statusMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
