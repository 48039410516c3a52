package usecase

import (
	"context"
	"time"

	"courier/internal/domain/entity"
	"courier/internal/domain/service"
)

// --- Input DTOs ---

// CreateShipmentInput defines the data a caller supplies to create a
// shipment. The sender identity fields are never taken from the caller; they
// are snapshotted from the authenticated user's stored profile. The optional
// sender location fields supplement the profile, which stores only a single
// address line.
type CreateShipmentInput struct {
	SenderCity    string `json:"sender_city"`
	SenderState   string `json:"sender_state"`
	SenderZip     string `json:"sender_zip"`
	SenderCountry string `json:"sender_country"`

	RecipientName    string `json:"recipient_name" validate:"required"`
	RecipientEmail   string `json:"recipient_email" validate:"omitempty,email"`
	RecipientPhone   string `json:"recipient_phone"`
	RecipientAddress string `json:"recipient_address" validate:"required"`
	RecipientCity    string `json:"recipient_city" validate:"required"`
	RecipientState   string `json:"recipient_state" validate:"required"`
	RecipientZip     string `json:"recipient_zip" validate:"required"`
	RecipientCountry string `json:"recipient_country"`

	PackageType         string  `json:"package_type"`
	Weight              float64 `json:"weight" validate:"required,gt=0"`
	Length              float64 `json:"length" validate:"omitempty,gt=0"`
	Width               float64 `json:"width" validate:"omitempty,gt=0"`
	Height              float64 `json:"height" validate:"omitempty,gt=0"`
	Description         string  `json:"description" validate:"required"`
	DeclaredValue       float64 `json:"declared_value"`
	SpecialInstructions string  `json:"special_instructions"`
	DeliveryNotes       string  `json:"delivery_notes"`

	ShippingMethod        string    `json:"shipping_method" validate:"omitempty,oneof=standard priority express"`
	Insurance             bool      `json:"insurance"`
	SignatureRequired     bool      `json:"signature_required"`
	ShippingCost          float64   `json:"shipping_cost"`
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date"`
}

// UpdateStatusInput defines the admin request to overwrite a shipment status.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// QuoteInput defines the parameters of a shipping cost estimate.
type QuoteInput struct {
	Weight         float64 `json:"weight" validate:"required,gt=0"`
	ShippingMethod string  `json:"shipping_method" validate:"omitempty,oneof=standard priority express"`
}

// --- Output DTOs ---

// QuoteOutput returns a shipping cost estimate and the projected delivery date.
type QuoteOutput struct {
	ShippingCost          float64   `json:"shipping_cost"`
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date"`
}

// ShipmentUsecase defines the interface for shipment-related business operations.
type ShipmentUsecase interface {
	// Create validates the input, snapshots the caller's profile as the
	// sender block, assigns a tracking number, and persists the shipment
	// with pending status. Ownership is always stamped from the caller's
	// claims.
	Create(ctx context.Context, caller *service.Claims, input *CreateShipmentInput) (*entity.Shipment, error)

	// ListForUser returns the given user's shipments, newest-created first.
	// Non-admin callers may only list their own shipments.
	ListForUser(ctx context.Context, caller *service.Claims, userID int64) ([]*entity.Shipment, error)

	// Track looks up a shipment by its exact tracking number.
	Track(ctx context.Context, trackingNumber string) (*entity.Shipment, error)

	// TrackingQR renders a PNG QR code for an existing shipment's tracking
	// number.
	TrackingQR(ctx context.Context, trackingNumber string) ([]byte, error)

	// Quote estimates shipping cost and delivery date for a weight and
	// method without creating anything.
	Quote(input *QuoteInput) (*QuoteOutput, error)

	// ListAll returns every shipment with owner display fields. Admin only;
	// the role check lives in the delivery layer's access gate.
	ListAll(ctx context.Context) ([]*entity.Shipment, error)

	// UpdateStatus overwrites a shipment's status. The value must be one of
	// the recognized statuses; no transition graph is enforced.
	UpdateStatus(ctx context.Context, shipmentID int64, input *UpdateStatusInput) (*entity.Shipment, error)
}
