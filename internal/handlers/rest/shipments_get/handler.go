package shipments_get

import (
	"encoding/json"
	"net/http"

	"shipment-service/internal/dto"
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
	shipmentEntities, err := h.service.GetShipments(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("get shipments")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		if err := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Internal Server Error"}); err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("encode JSON response")
		}
		return
	}

	shipmentDTOs := make([]dto.Shipment, len(shipmentEntities))
	for i, shipmentEntity := range shipmentEntities {
		shipmentDTOs[i].ID = shipmentEntity.ID
		shipmentDTOs[i].DeviceID = shipmentEntity.DeviceID
		shipmentDTOs[i].ShipmentID = shipmentEntity.ShipmentID
		shipmentDTOs[i].Status = shipmentEntity.Status
		shipmentDTOs[i].CurrentLocation = shipmentEntity.CurrentLocation
		shipmentDTOs[i].DestinationLocation = shipmentEntity.DestinationLocation
		shipmentDTOs[i].Notes = shipmentEntity.Notes
		shipmentDTOs[i].CreatedAt = shipmentEntity.CreatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(shipmentDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
