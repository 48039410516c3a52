// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity in the system, representing a registered account.
// PasswordHash is internal state and must never be serialized outward; the
// delivery layer returns sanitized DTOs instead of this entity.
type User struct {
	ID           int64     // Store-assigned numeric identifier, immutable after creation.
	Email        string    // Unique login key. Matched case-sensitively.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash of the login password.
	Address      string    // Postal address, snapshotted into shipments as the sender address.
	Phone        string    // Optional contact phone.
	Role         Role      // Either client or admin. Fixed at creation; no role-change operation exists.
	CreatedAt    time.Time // Timestamp of account creation, set by the store.
	UpdatedAt    time.Time // Timestamp of the last modification, set by the store.
}
