package root_get

import (
	"net/http"

	"shipment-service/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err := w.Write([]byte("Welcome to the Shipment Tracking Backend!"))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write greeting response")
	}
}
