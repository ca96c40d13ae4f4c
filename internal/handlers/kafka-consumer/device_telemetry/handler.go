package device_telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"shipment-service/internal/entities"
	shipmentservice "shipment-service/internal/service/shipment"
	"shipment-service/pkg/logger"
)

// telemetryEvent полезная нагрузка сообщения топика device.telemetry,
// тот же контракт что и у POST /api/iot-data.
type telemetryEvent struct {
	DeviceID        string `json:"device_id"`
	CurrentLocation string `json:"current_location"`
	Status          string `json:"status"`
}

type Handler struct {
	shipmentService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, shipmentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		shipmentService:          shipmentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("device.telemetry: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("device.telemetry: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event telemetryEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("device.telemetry handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("device", event.DeviceID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("device.telemetry processing")

	telemetry := entities.ShipmentTelemetry{
		DeviceID:        event.DeviceID,
		CurrentLocation: event.CurrentLocation,
		Status:          event.Status,
	}

	updated, err := h.shipmentService.UpdateDeviceStatus(ctx, telemetry)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("device.telemetry handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shipmentservice.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("device.telemetry handler incomplete event")

		case errors.Is(err, shipmentservice.ErrDeviceNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("device.telemetry handler unknown device")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("device.telemetry handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("device", updated.DeviceID),
		logger.NewField("shipment", updated.ShipmentID),
		logger.NewField("current_status", updated.Status),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("device.telemetry: processed")

	sess.MarkMessage(message, "")
	return false
}
