// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is the patient account. Identity and credentials live in the external
// identity service; this service keeps the profile and the device links.
type User struct {
	ID        uuid.UUID   `json:"id"`         // Matches the "sub" claim of the access token.
	FirstName string      `json:"first_name"` // Given name.
	LastName  string      `json:"last_name"`  // Family name.
	Email     string      `json:"email"`      // Contact email.
	DeviceIDs []uuid.UUID `json:"device_ids"` // Devices this user has uploaded from. Never shrinks.
	CreatedAt time.Time   `json:"created_at"` // Timestamp of when this user was created.
	UpdatedAt time.Time   `json:"updated_at"` // Timestamp of the last modification to this user's data.
}

// HasDevice reports whether deviceID is linked to the user.
func (u *User) HasDevice(deviceID uuid.UUID) bool {
	return slices.Contains(u.DeviceIDs, deviceID)
}

// AddDevice links deviceID to the user. It returns false if the link already existed.
func (u *User) AddDevice(deviceID uuid.UUID) bool {
	if u.HasDevice(deviceID) {
		return false
	}
	u.DeviceIDs = append(u.DeviceIDs, deviceID)

	return true
}
