package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidShipmentID     = errors.New("invalid shipment id")

	ErrShipmentNotFound = errors.New("shipment not found")
	ErrDeviceNotFound   = errors.New("no shipment found for the given device id")
	ErrConflict         = errors.New("resource already exists")
)
