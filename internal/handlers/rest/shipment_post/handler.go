package shipment_post

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
	var shipmentCreateDTO dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&shipmentCreateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	shipmentModifyEntity := entities.ShipmentModify{
		DeviceID:            shipmentCreateDTO.DeviceID,
		ShipmentID:          shipmentCreateDTO.ShipmentID,
		Status:              shipmentCreateDTO.Status,
		CurrentLocation:     shipmentCreateDTO.CurrentLocation,
		DestinationLocation: shipmentCreateDTO.DestinationLocation,
		Notes:               shipmentCreateDTO.Notes,
		CreatedAt:           shipmentCreateDTO.CreatedAt,
	}

	created, err := h.service.CreateShipment(r.Context(), shipmentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields):
			h.writeError(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, shipment.ErrConflict):
			h.writeError(w, http.StatusConflict, "Shipment with this device_id or shipment_id already exists")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create shipment")
			h.writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	shipmentDTO := toDTO(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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

func toDTO(shipmentEntity *entities.Shipment) dto.Shipment {
	return dto.Shipment{
		ID:                  shipmentEntity.ID,
		DeviceID:            shipmentEntity.DeviceID,
		ShipmentID:          shipmentEntity.ShipmentID,
		Status:              shipmentEntity.Status,
		CurrentLocation:     shipmentEntity.CurrentLocation,
		DestinationLocation: shipmentEntity.DestinationLocation,
		Notes:               shipmentEntity.Notes,
		CreatedAt:           shipmentEntity.CreatedAt,
	}
}
