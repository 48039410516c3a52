package model

import "time"

// ShipmentModel mirrors the 'shipments' table.
//
// tracking_number carries a plain (non-unique) index: the generation scheme
// is best-effort unique by design and adding a constraint would change the
// observable behavior of creation under collision.
type ShipmentModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	TrackingNumber string `gorm:"type:varchar(20);not null;index"`
	UserID         int64  `gorm:"not null;index"`

	SenderName    string `gorm:"type:varchar(100);not null"`
	SenderEmail   string `gorm:"type:varchar(255);not null"`
	SenderPhone   string `gorm:"type:varchar(50)"`
	SenderAddress string `gorm:"type:text;not null"`
	SenderCity    string `gorm:"type:varchar(100)"`
	SenderState   string `gorm:"type:varchar(100)"`
	SenderZip     string `gorm:"type:varchar(20)"`
	SenderCountry string `gorm:"type:varchar(100)"`

	RecipientName    string `gorm:"type:varchar(100);not null"`
	RecipientEmail   string `gorm:"type:varchar(255)"`
	RecipientPhone   string `gorm:"type:varchar(50)"`
	RecipientAddress string `gorm:"type:text;not null"`
	RecipientCity    string `gorm:"type:varchar(100);not null"`
	RecipientState   string `gorm:"type:varchar(100);not null"`
	RecipientZip     string `gorm:"type:varchar(20);not null"`
	RecipientCountry string `gorm:"type:varchar(100)"`

	PackageType         string  `gorm:"type:varchar(50)"`
	Weight              float64 `gorm:"type:numeric(10,2);not null"`
	Length              float64 `gorm:"type:numeric(10,2)"`
	Width               float64 `gorm:"type:numeric(10,2)"`
	Height              float64 `gorm:"type:numeric(10,2)"`
	Description         string  `gorm:"type:text"`
	DeclaredValue       float64 `gorm:"type:numeric(12,2)"`
	SpecialInstructions string  `gorm:"type:text"`
	DeliveryNotes       string  `gorm:"type:text"`

	ShippingMethod        string  `gorm:"type:varchar(20);not null;default:standard"`
	Insurance             bool    `gorm:"not null;default:false"`
	SignatureRequired     bool    `gorm:"not null;default:false"`
	ShippingCost          float64 `gorm:"type:numeric(10,2)"`
	EstimatedDeliveryDate time.Time

	Status    string `gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShipmentModel) TableName() string {
	return "shipments"
}
