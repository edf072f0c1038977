package bulkimport

import (
	"testing"

	"github.com/damage-control/damage-service/internal/model"
	"github.com/damage-control/damage-service/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawTicket(ticketID string) map[string]any {
	return map[string]any{
		"ticketId":       ticketID,
		"orderNumber":    "ORD-1",
		"trackingNumber": "TRK-1",
		"carrier":        "UPS",
		"service":        "UPS Ground",
		"produto":        "Calm",
		"damageTypes":    []any{"Amassado"},
		"dateReported":   "2025-03-01",
	}
}

func TestRunPartitionsBatch(t *testing.T) {
	committed := map[string]bool{"DUP-1": true}
	items := []any{
		rawTicket("T-1"),           // valid
		"garbage",                  // validation failure
		rawTicket("DUP-1"),         // duplicate against committed state
		rawTicket("T-2"),           // valid
		map[string]any{"notes": 1}, // validation failure
	}

	res := Run(items, schema.ParseInsertTicket,
		func(ins *model.InsertTicket) bool { return committed[ins.TicketID] },
		"Ticket",
		func(ins *model.InsertTicket) string { return "ID: " + ins.TicketID },
	)

	// N=5, K=2 validation failures, M=1 duplicate.
	require.Len(t, res.ValidItems, 2)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, "T-1", res.ValidItems[0].TicketID)
	assert.Equal(t, "T-2", res.ValidItems[1].TicketID)
	assert.Contains(t, res.Errors[0], "Ticket 2: ")
	assert.Equal(t, "Ticket 3 (ID: DUP-1): Duplicate entry", res.Errors[1])
	assert.Contains(t, res.Errors[2], "Ticket 5: ")
}

func TestRunInputOrderPreserved(t *testing.T) {
	items := []any{rawTicket("A"), rawTicket("B"), rawTicket("C")}
	res := Run(items, schema.ParseInsertTicket, nil, "Ticket", nil)
	require.Len(t, res.ValidItems, 3)
	assert.Equal(t, "A", res.ValidItems[0].TicketID)
	assert.Equal(t, "B", res.ValidItems[1].TicketID)
	assert.Equal(t, "C", res.ValidItems[2].TicketID)
	assert.Empty(t, res.Errors)
}

// Same-batch duplicates are not screened: duplicate checks run against
// committed state only, so both items pass the orchestrator and the
// conflict is left for the store's batch insert.
func TestRunAcceptsSameBatchDuplicates(t *testing.T) {
	items := []any{rawTicket("T-1"), rawTicket("T-1")}
	res := Run(items, schema.ParseInsertTicket,
		func(ins *model.InsertTicket) bool { return false },
		"Ticket",
		func(ins *model.InsertTicket) string { return "ID: " + ins.TicketID },
	)
	assert.Len(t, res.ValidItems, 2)
	assert.Empty(t, res.Errors)
}

func TestRunNoDuplicateChecker(t *testing.T) {
	// Orders wire no duplicate checker, so repeats are never rejected.
	items := []any{
		map[string]any{"trackingNumber": "TRK", "orderNumber": "ORD", "produto": "Glow", "carrier": "DHL"},
		map[string]any{"trackingNumber": "TRK", "orderNumber": "ORD", "produto": "Glow", "carrier": "DHL"},
		map[string]any{"trackingNumber": "TRK"},
	}
	res := Run(items, schema.ParseInsertOrder, nil, "Order", nil)
	assert.Len(t, res.ValidItems, 2)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Order 3: ")
}

func TestRunEmptyBatch(t *testing.T) {
	res := Run(nil, schema.ParseInsertTicket, nil, "Ticket", nil)
	assert.Empty(t, res.ValidItems)
	assert.Empty(t, res.Errors)
}
