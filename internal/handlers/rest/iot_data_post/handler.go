package iot_data_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipment-service/internal/dto"
	"shipment-service/internal/entities"
	"shipment-service/internal/service/shipment"
	"shipment-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var iotDataDTO dto.IoTData
	err := json.NewDecoder(r.Body).Decode(&iotDataDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if iotDataDTO.DeviceID == nil || iotDataDTO.CurrentLocation == nil || iotDataDTO.Status == nil {
		h.writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	telemetry := entities.ShipmentTelemetry{
		DeviceID:        *iotDataDTO.DeviceID,
		CurrentLocation: *iotDataDTO.CurrentLocation,
		Status:          *iotDataDTO.Status,
	}

	updated, err := h.service.UpdateDeviceStatus(r.Context(), telemetry)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields):
			h.writeError(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, shipment.ErrDeviceNotFound):
			h.writeError(w, http.StatusNotFound, "No shipment found for the given device ID")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("device_id", telemetry.DeviceID),
			).Error("update device status")
			h.writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	shipmentDTO := dto.Shipment{
		ID:                  updated.ID,
		DeviceID:            updated.DeviceID,
		ShipmentID:          updated.ShipmentID,
		Status:              updated.Status,
		CurrentLocation:     updated.CurrentLocation,
		DestinationLocation: updated.DestinationLocation,
		Notes:               updated.Notes,
		CreatedAt:           updated.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(shipmentDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: message}); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
