package shipment_delete

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipment-service/internal/dto"
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

	deleted, err := h.service.DeleteShipment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			h.writeError(w, http.StatusNotFound, "Shipment not found")
		case errors.Is(err, shipment.ErrInvalidShipmentID):
			h.writeError(w, http.StatusBadRequest, "Invalid shipment id")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("id", id),
			).Error("delete shipment")
			h.writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	// удаленная запись возвращается в ответе, как в исходном Postgres бэкенде
	response := dto.ShipmentDeleteResponse{
		Message: "Shipment deleted successfully",
		DeletedShipment: dto.Shipment{
			ID:                  deleted.ID,
			DeviceID:            deleted.DeviceID,
			ShipmentID:          deleted.ShipmentID,
			Status:              deleted.Status,
			CurrentLocation:     deleted.CurrentLocation,
			DestinationLocation: deleted.DestinationLocation,
			Notes:               deleted.Notes,
			CreatedAt:           deleted.CreatedAt,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
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
