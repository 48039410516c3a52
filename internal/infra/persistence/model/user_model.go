// Package model contains the GORM persistence models mirroring the database tables.
package model

import "time"

// UserModel mirrors the 'users' table. IDs are store-assigned bigserial values.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"type:varchar(255);unique;not null"`
	Name      string `gorm:"type:varchar(100);not null"`
	Password  string `gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized outward
	Address   string `gorm:"type:text;not null"`
	Phone     string `gorm:"type:varchar(50)"`
	Role      string `gorm:"type:varchar(20);not null;default:client"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Shipments []ShipmentModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
