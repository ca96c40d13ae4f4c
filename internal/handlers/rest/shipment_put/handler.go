package shipment_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid shipment id")
		return
	}

	var shipmentUpdateDTO dto.ShipmentUpdate
	err = json.NewDecoder(r.Body).Decode(&shipmentUpdateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	shipmentModifyEntity := entities.ShipmentModify{
		ID:                  &id,
		DeviceID:            shipmentUpdateDTO.DeviceID,
		ShipmentID:          shipmentUpdateDTO.ShipmentID,
		Status:              shipmentUpdateDTO.Status,
		CurrentLocation:     shipmentUpdateDTO.CurrentLocation,
		DestinationLocation: shipmentUpdateDTO.DestinationLocation,
		Notes:               shipmentUpdateDTO.Notes,
	}

	updated, err := h.service.ReplaceShipment(r.Context(), shipmentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields):
			h.writeError(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, shipment.ErrInvalidShipmentID):
			h.writeError(w, http.StatusBadRequest, "Invalid shipment id")
		case errors.Is(err, shipment.ErrShipmentNotFound):
			h.writeError(w, http.StatusNotFound, "Shipment not found")
		case errors.Is(err, shipment.ErrConflict):
			h.writeError(w, http.StatusConflict, "Shipment with this device_id or shipment_id already exists")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("id", id),
			).Error("update shipment")
			h.writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	shipmentDTO := toDTO(updated)

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
