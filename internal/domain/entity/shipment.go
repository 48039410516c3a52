// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Party holds the contact and address fields recorded for one side of a
// shipment. The sender party is snapshotted from the creating user's profile
// at creation time, not kept as a live reference; the recipient party is
// supplied by the caller.
type Party struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// Shipment is a single consignment owned by exactly one user.
//
// TrackingNumber is the externally visible identifier, distinct from the
// internal numeric ID. It is assigned exactly once at creation and never
// changes. Uniqueness is best-effort (random suffix) and deliberately not
// backed by a database constraint.
type Shipment struct {
	ID             int64  `json:"id"`              // Store-assigned numeric identifier.
	TrackingNumber string `json:"tracking_number"` // External identifier, e.g. "CS26K3P9XA".
	UserID         int64  `json:"user_id"`         // Owner; always stamped from the authenticated caller.

	Sender    Party `json:"sender"`
	Recipient Party `json:"recipient"`

	// Package attributes.
	PackageType         string  `json:"package_type,omitempty"`
	Weight              float64 `json:"weight"`           // Kilograms, required > 0.
	Length              float64 `json:"length,omitempty"` // Centimeters, optional.
	Width               float64 `json:"width,omitempty"`
	Height              float64 `json:"height,omitempty"`
	Description         string  `json:"description"`
	DeclaredValue       float64 `json:"declared_value,omitempty"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
	DeliveryNotes       string  `json:"delivery_notes,omitempty"`

	// Shipping attributes.
	ShippingMethod        string    `json:"shipping_method"` // One of standard, priority, express.
	Insurance             bool      `json:"insurance"`
	SignatureRequired     bool      `json:"signature_required"`
	ShippingCost          float64   `json:"shipping_cost"`
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date"`

	Status    ShipmentStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"` // Refreshed on every status change.

	// Owner display fields, populated only by the admin list-all query.
	OwnerName  string `json:"owner_name,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty"`
}
