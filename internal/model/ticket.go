package model

import "time"

// Ticket is one reported shipment-damage incident. ID is server-assigned
// and immutable; TicketID is the externally-assigned identifier, unique
// across live tickets. Nullable fields marshal as JSON null, never as "".
type Ticket struct {
	ID             string       `json:"id"`
	TicketID       string       `json:"ticketId"`
	OrderNumber    string       `json:"orderNumber"`
	TrackingNumber string       `json:"trackingNumber"`
	Carrier        Carrier      `json:"carrier"`
	Service        Service      `json:"service"`
	Produto        Produto      `json:"produto"`
	TicketURL      *string      `json:"ticketUrl"`
	DamageTypes    []DamageType `json:"damageTypes"`
	DateReported   time.Time    `json:"dateReported"`
	Observations   *string      `json:"observations"`
	Notes          *string      `json:"notes"`
}

// InsertTicket is a validated, normalized candidate ready for the store.
// Optional strings are already nil when they were omitted or empty.
type InsertTicket struct {
	TicketID       string
	OrderNumber    string
	TrackingNumber string
	Carrier        Carrier
	Service        Service
	Produto        Produto
	TicketURL      *string
	DamageTypes    []DamageType
	DateReported   time.Time
	Observations   *string
	Notes          *string
}

// TicketPatch is a partial update: nil fields were absent from the request
// and leave the ticket untouched. For TicketURL, Observations and Notes an
// explicit empty string clears the field back to null.
type TicketPatch struct {
	TicketID       *string
	OrderNumber    *string
	TrackingNumber *string
	Carrier        *Carrier
	Service        *Service
	Produto        *Produto
	TicketURL      *string
	DamageTypes    []DamageType
	DateReported   *time.Time
	Observations   *string
	Notes          *string
}
