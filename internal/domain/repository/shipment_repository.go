package repository

import (
	"context"
	"errors"

	"courier/internal/domain/entity"
)

// ErrShipmentNotFound is a domain-specific error returned when a shipment is not found.
var ErrShipmentNotFound = errors.New("shipment not found")

// ShipmentRepository defines the standard operations for shipment persistence.
type ShipmentRepository interface {
	// Create persists a new shipment and fills in the store-assigned ID and
	// timestamps. The tracking number must already be set by the caller.
	Create(ctx context.Context, shipment *entity.Shipment) error

	// FindByTracking retrieves a shipment by its exact tracking number.
	// Case-sensitivity follows the storage collation.
	FindByTracking(ctx context.Context, trackingNumber string) (*entity.Shipment, error)

	// ListByUser returns all shipments owned by the given user,
	// newest-created first.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Shipment, error)

	// ListAll returns every shipment in the system, newest-created first,
	// with the owner's display name and email populated.
	ListAll(ctx context.Context) ([]*entity.Shipment, error)

	// UpdateStatus overwrites the status of the shipment with the given ID
	// and refreshes its updated_at timestamp, returning the updated record.
	UpdateStatus(ctx context.Context, shipmentID int64, status entity.ShipmentStatus) (*entity.Shipment, error)
}
