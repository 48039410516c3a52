// Package entity contains the core business objects of the project.
package entity

// ShipmentStatus represents the lifecycle state of a shipment.
//
// pending is the sole initial state. No transition graph is enforced: an
// admin may overwrite any status with any other recognized status, including
// moving a delivered shipment back to pending.
type ShipmentStatus string

const (
	// StatusPending is assigned to every newly created shipment.
	StatusPending ShipmentStatus = "pending"
	// StatusInTransit marks a shipment that has left the origin facility.
	StatusInTransit ShipmentStatus = "in_transit"
	// StatusDelivered marks a shipment received by the recipient.
	StatusDelivered ShipmentStatus = "delivered"
	// StatusCancelled marks a shipment withdrawn before delivery.
	StatusCancelled ShipmentStatus = "cancelled"
)

// String returns the string representation of the ShipmentStatus.
func (s ShipmentStatus) String() string {
	return string(s)
}

// IsValid checks if the ShipmentStatus is one of the recognized values.
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}
