package status_metrics

import (
	"context"
	"time"

	"shipment-service/pkg/logger"
)

type Service interface {
	CountShipmentsByStatus(ctx context.Context) (map[string]int64, error)
}

type StatusMetrics struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStatusMetrics(log logger.Logger, service Service, interval time.Duration) *StatusMetrics {
	return &StatusMetrics{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StatusMetrics) TTL() time.Duration {
	return s.interval
}

func (s *StatusMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	counts, err := s.service.CountShipmentsByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	// статусы могут исчезать между циклами, поэтому сбрасываем вектор целиком
	ShipmentsByStatus.Reset()
	var total int64
	for status, count := range counts {
		ShipmentsByStatus.WithLabelValues(status).Set(float64(count))
		total += count
	}

	s.log.With(
		logger.NewField("total", total),
	).Info("shipment status metrics")

	return nil
}

func (s *StatusMetrics) Info() string {
	return "shipment status metrics"
}
