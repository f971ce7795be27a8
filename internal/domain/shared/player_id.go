package shared

import "fmt"

// PlayerID is a value object representing a player's unique identifier
type PlayerID struct {
	value string
}

// NewPlayerID creates a new PlayerID value object
func NewPlayerID(id string) (PlayerID, error) {
	if id == "" {
		return PlayerID{}, fmt.Errorf("player_id cannot be empty")
	}
	return PlayerID{value: id}, nil
}

// MustNewPlayerID creates a new PlayerID value object, panicking if invalid
// Use this only when you're certain the ID is valid (e.g., from a stored snapshot)
func MustNewPlayerID(id string) PlayerID {
	playerID, err := NewPlayerID(id)
	if err != nil {
		panic(err)
	}
	return playerID
}

// Value returns the raw identifier
func (p PlayerID) Value() string {
	return p.value
}

func (p PlayerID) String() string {
	return p.value
}

// Equals checks if two PlayerIDs are equal
func (p PlayerID) Equals(other PlayerID) bool {
	return p.value == other.value
}

// IsZero checks if the PlayerID is the zero value (uninitialized)
func (p PlayerID) IsZero() bool {
	return p.value == ""
}

// MarshalText lets PlayerID be used as a JSON value and map key in snapshots.
func (p PlayerID) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

func (p *PlayerID) UnmarshalText(text []byte) error {
	p.value = string(text)
	return nil
}
