package testmodels

import "github.com/go-openapi/strfmt"

// Player is a representative API model used across backend tests.
type Player struct {

	// Timestamp when the player record was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt,omitempty" yaml:"createdAt,omitempty"`

	// Unique identifier for the player.
	// Required: true
	ID string `json:"Id" yaml:"id"`

	// Display name of the player.
	// Required: true
	Name string `json:"Name" yaml:"name"`

	// Current rating points.
	Rating int `json:"Rating,omitempty" yaml:"rating,omitempty"`
}

// GetID exposes the identity key for storage.
func (p Player) GetID() string {
	return p.ID
}
