// Package dto содержит транспортные структуры REST API.
// Имена JSON полей совпадают с колонками таблицы shipments,
// их менять нельзя - на них завязан фронтенд и IoT клиенты.
package dto

type Shipment struct {
	ID                  int64   `json:"id"`
	DeviceID            string  `json:"device_id"`
	ShipmentID          string  `json:"shipment_id"`
	Status              string  `json:"status"`
	CurrentLocation     string  `json:"current_location"`
	DestinationLocation string  `json:"destination_location"`
	Notes               *string `json:"notes"`
	CreatedAt           string  `json:"created_at"`
}

type ShipmentCreate struct {
	DeviceID            *string `json:"device_id"`
	ShipmentID          *string `json:"shipment_id"`
	Status              *string `json:"status"`
	CurrentLocation     *string `json:"current_location"`
	DestinationLocation *string `json:"destination_location"`
	Notes               *string `json:"notes"`
	CreatedAt           *string `json:"created_at"`
}

type ShipmentUpdate struct {
	DeviceID            *string `json:"device_id"`
	ShipmentID          *string `json:"shipment_id"`
	Status              *string `json:"status"`
	CurrentLocation     *string `json:"current_location"`
	DestinationLocation *string `json:"destination_location"`
	Notes               *string `json:"notes"`
}

type IoTData struct {
	DeviceID        *string `json:"device_id"`
	CurrentLocation *string `json:"current_location"`
	Status          *string `json:"status"`
}

type ShipmentDeleteResponse struct {
	Message         string   `json:"message"`
	DeletedShipment Shipment `json:"deletedShipment"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
