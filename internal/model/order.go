package model

import "time"

// Order is one imported order record, unrelated to any damage ticket.
// DateImported is assigned by the store at creation, never by the caller.
// Orders carry no uniqueness constraint beyond the system ID.
type Order struct {
	ID             string    `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
	OrderNumber    string    `json:"orderNumber"`
	Produto        Produto   `json:"produto"`
	Carrier        Carrier   `json:"carrier"`
	DateImported   time.Time `json:"dateImported"`
}

// InsertOrder is a validated order candidate.
type InsertOrder struct {
	TrackingNumber string
	OrderNumber    string
	Produto        Produto
	Carrier        Carrier
}
