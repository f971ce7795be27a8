package shared

import (
	"errors"
	"fmt"
)

// Sentinels for the fatal error tier. The typed errors below match them with errors.Is.
var (
	ErrFleetLimitExceeded     = errors.New("fleet limit exceeded")
	ErrShipStackLimitExceeded = errors.New("ship stack limit exceeded")
	ErrMissingFuelData        = errors.New("missing fuel usage data")
	ErrStaleTurn              = errors.New("game has moved past this turn")
)

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Fleet-related errors

type FleetError struct {
	*DomainError
}

func NewFleetError(message string) *FleetError {
	return &FleetError{DomainError: &DomainError{Message: message}}
}

// FleetLimitExceededError is raised when an owner already holds the maximum number of fleets.
type FleetLimitExceededError struct {
	*FleetError
	OwnerID PlayerID
	Limit   int
}

func NewFleetLimitExceededError(ownerID PlayerID, limit int) *FleetLimitExceededError {
	return &FleetLimitExceededError{
		FleetError: NewFleetError(fmt.Sprintf("player %s already owns %d fleets", ownerID, limit)),
		OwnerID:    ownerID,
		Limit:      limit,
	}
}

func (e *FleetLimitExceededError) Is(target error) bool {
	return target == ErrFleetLimitExceeded
}

// ShipStackLimitExceededError is raised when a stack would hold more ships than allowed.
type ShipStackLimitExceededError struct {
	*FleetError
	DesignID  string
	Requested int
	Limit     int
}

func NewShipStackLimitExceededError(designID string, requested, limit int) *ShipStackLimitExceededError {
	return &ShipStackLimitExceededError{
		FleetError: NewFleetError(fmt.Sprintf("stack of %s would hold %d ships, limit is %d", designID, requested, limit)),
		DesignID:   designID,
		Requested:  requested,
		Limit:      limit,
	}
}

func (e *ShipStackLimitExceededError) Is(target error) bool {
	return target == ErrShipStackLimitExceeded
}

// Design data errors

// MissingFuelDataError signals a corrupted design: an engine reference or a fuel
// usage entry the fuel computation needs is absent.
type MissingFuelDataError struct {
	*DomainError
	DesignID string
	EngineID string
	Warp     int
}

func NewMissingFuelDataError(designID, engineID string, warp int) *MissingFuelDataError {
	var msg string
	if engineID == "" {
		msg = fmt.Sprintf("design %s has no engine reference (warp %d)", designID, warp)
	} else {
		msg = fmt.Sprintf("engine %s of design %s has no fuel usage for warp %d", engineID, designID, warp)
	}
	return &MissingFuelDataError{
		DomainError: &DomainError{Message: msg},
		DesignID:    designID,
		EngineID:    engineID,
		Warp:        warp,
	}
}

func (e *MissingFuelDataError) Is(target error) bool {
	return target == ErrMissingFuelData
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Soft tier

// ErrUnknownDesign marks a ship stack whose design no longer resolves. Callers
// treat it as a soft failure and drop the affected order.
var ErrUnknownDesign = errors.New("unknown ship design")

// UnknownDesignError carries the dangling design reference
type UnknownDesignError struct {
	*DomainError
	DesignID string
}

func NewUnknownDesignError(designID string) *UnknownDesignError {
	return &UnknownDesignError{
		DomainError: &DomainError{Message: fmt.Sprintf("design %s does not resolve", designID)},
		DesignID:    designID,
	}
}

func (e *UnknownDesignError) Is(target error) bool {
	return target == ErrUnknownDesign
}
