package shipment

type ShipmentDB struct {
	ID                  int64
	DeviceID            string
	ShipmentID          string
	Status              string
	CurrentLocation     string
	DestinationLocation string
	Notes               *string
	CreatedAt           string
}

type ShipmentModifyDB struct {
	ID                  *int64
	DeviceID            *string
	ShipmentID          *string
	Status              *string
	CurrentLocation     *string
	DestinationLocation *string
	Notes               *string
	CreatedAt           *string
}
