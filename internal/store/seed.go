package store

import (
	"time"

	"github.com/damage-control/damage-service/internal/model"
)

// SampleTickets returns the demo dataset loaded at startup when
// SEED_SAMPLE_DATA is enabled. Useful for local dashboards and manual
// testing against a fresh, otherwise empty store.
func SampleTickets() []model.InsertTicket {
	return []model.InsertTicket{
		{
			TicketID:       "TICKET-001",
			OrderNumber:    "ORD-12345",
			TrackingNumber: "6129-ABC-DEF",
			Carrier:        "FedEx",
			Service:        "FedEx 2 Day (by end of the day in two days)",
			Produto:        "Longevity",
			TicketURL:      ptr("https://example.com/ticket/001"),
			DamageTypes:    []model.DamageType{"Quebrado", "Embalagem danificada"},
			DateReported:   time.Date(2025, 10, 20, 10, 30, 0, 0, time.UTC),
			Observations:   ptr("Caixa chegou visivelmente danificada com produto quebrado"),
			Notes:          ptr("Cliente reportou imediatamente"),
		},
		{
			TicketID:       "TICKET-002",
			OrderNumber:    "ORD-12346",
			TrackingNumber: "94-XYZ-123",
			Carrier:        "USPS",
			Service:        "USPS Priority Mail Express",
			Produto:        "Glow",
			TicketURL:      ptr("https://example.com/ticket/002"),
			DamageTypes:    []model.DamageType{"Manchado"},
			DateReported:   time.Date(2025, 10, 19, 14, 15, 0, 0, time.UTC),
			Observations:   ptr("Produto com manchas de água"),
			Notes:          ptr("Possível exposição à chuva durante transporte"),
		},
		{
			TicketID:       "TICKET-003",
			OrderNumber:    "ORD-12347",
			TrackingNumber: "1ZC6J-456-789",
			Carrier:        "UPS",
			Service:        "UPS Ground",
			Produto:        "Calm",
			TicketURL:      ptr("https://example.com/ticket/003"),
			DamageTypes:    []model.DamageType{"Amassado"},
			DateReported:   time.Date(2025, 10, 18, 9, 45, 0, 0, time.UTC),
			Observations:   ptr("Embalagem amassada em um dos cantos"),
			Notes:          ptr("Produto interno sem danos"),
		},
		{
			TicketID:       "TICKET-004",
			OrderNumber:    "ORD-12348",
			TrackingNumber: "1LSC-ABC-XYZ",
			Carrier:        "OnTrac",
			Service:        "ShipMonk Economy",
			Produto:        "Lean Muscle",
			TicketURL:      ptr("https://example.com/ticket/004"),
			DamageTypes:    []model.DamageType{"Faltando Produto"},
			DateReported:   time.Date(2025, 10, 17, 16, 20, 0, 0, time.UTC),
			Observations:   ptr("Peça acessória faltando na embalagem"),
			Notes:          ptr("Cliente solicitou envio da peça separadamente"),
		},
		{
			TicketID:       "TICKET-005",
			OrderNumber:    "ORD-12349",
			TrackingNumber: "9261-DEF-456",
			Carrier:        "DHL",
			Service:        "ShipMonk Standard",
			Produto:        "Hydro burn",
			TicketURL:      ptr("https://example.com/ticket/005"),
			DamageTypes:    []model.DamageType{"Quebrado", "Manchado"},
			DateReported:   time.Date(2025, 10, 16, 11, 0, 0, 0, time.UTC),
			Observations:   ptr("Produto quebrado e com manchas"),
			Notes:          ptr("Reembolso total processado"),
		},
	}
}

func ptr(s string) *string {
	return &s
}
