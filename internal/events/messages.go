package events

import (
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/fuel-server/internal/fuel"
)

// Kind is the routing key of an operation event.
type Kind string

const (
	OperationCreated Kind = "operation.created"
	OperationUpdated Kind = "operation.updated"
	OperationDeleted Kind = "operation.deleted"
)

// OperationEvent describes a committed change to an operation.
type OperationEvent struct {
	Kind        Kind               `json:"kind"`
	OperationID uuid.UUID          `json:"operationID"`
	UserID      uuid.UUID          `json:"userID"`
	Type        fuel.OperationType `json:"type"`
	FuelType    fuel.FuelType      `json:"fuelType"`
	Month       int                `json:"month"`
	Year        int                `json:"year"`
	Quantity    decimal.Decimal    `json:"quantity"`
	TotalValue  decimal.Decimal    `json:"totalValue"`
	OccurredAt  time.Time          `json:"occurredAt"`
}

// ToJSON converts the event to JSON bytes. Decimals are encoded as strings.
func (e *OperationEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// OperationEventFromJSON decodes an event published by ToJSON.
func OperationEventFromJSON(data []byte) (*OperationEvent, error) {
	var e OperationEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
