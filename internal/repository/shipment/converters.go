package shipment

import (
	"shipment-service/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	return &entities.Shipment{
		ID:                  s.ID,
		DeviceID:            s.DeviceID,
		ShipmentID:          s.ShipmentID,
		Status:              s.Status,
		CurrentLocation:     s.CurrentLocation,
		DestinationLocation: s.DestinationLocation,
		Notes:               s.Notes,
		CreatedAt:           s.CreatedAt,
	}
}

func FromDomainModify(shipmentModify *entities.ShipmentModify) *ShipmentModifyDB {
	if shipmentModify == nil {
		return nil
	}

	return &ShipmentModifyDB{
		ID:                  shipmentModify.ID,
		DeviceID:            shipmentModify.DeviceID,
		ShipmentID:          shipmentModify.ShipmentID,
		Status:              shipmentModify.Status,
		CurrentLocation:     shipmentModify.CurrentLocation,
		DestinationLocation: shipmentModify.DestinationLocation,
		Notes:               shipmentModify.Notes,
		CreatedAt:           shipmentModify.CreatedAt,
	}
}

func ToDomainList(shipmentsDB []ShipmentDB) []entities.Shipment {
	if len(shipmentsDB) == 0 {
		return []entities.Shipment{}
	}

	result := make([]entities.Shipment, len(shipmentsDB))
	for i, shipmentDB := range shipmentsDB {
		result[i] = *ToDomain(&shipmentDB)
	}
	return result
}
