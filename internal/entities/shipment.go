package entities

type Shipment struct {
	ID                  int64
	DeviceID            string
	ShipmentID          string
	Status              string
	CurrentLocation     string
	DestinationLocation string
	Notes               *string
	CreatedAt           string
}

// Канонические статусы для дашборда. Ядро их не валидирует,
// статус остается свободной строкой.
const (
	StatusPending        = "Pending"
	StatusInTransit      = "In Transit"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
)

type ShipmentModify struct {
	ID                  *int64
	DeviceID            *string
	ShipmentID          *string
	Status              *string
	CurrentLocation     *string
	DestinationLocation *string
	Notes               *string
	CreatedAt           *string
}

// ShipmentTelemetry частичное обновление от IoT устройства,
// адресуется по device_id и меняет только статус и текущую локацию.
type ShipmentTelemetry struct {
	DeviceID        string
	CurrentLocation string
	Status          string
}
