package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/damage-control/damage-service/internal/handler"
	"github.com/damage-control/damage-service/internal/router"
	"github.com/damage-control/damage-service/internal/searchindex"
	"github.com/damage-control/damage-service/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// eventRecorder stands in for the Kafka producer.
type eventRecorder struct {
	mu     sync.Mutex
	events []string
}

func (r *eventRecorder) ProduceTicketEvent(_ context.Context, event string, _ map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *eventRecorder) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

type testAPI struct {
	handler http.Handler
	tickets *store.TicketStore
	orders  *store.OrderStore
	events  *eventRecorder
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	log := zap.NewNop().Sugar()
	tickets := store.NewTicketStore()
	orders := store.NewOrderStore()
	events := &eventRecorder{}
	search := searchindex.NewClient("", log)
	th := handler.NewTicketHandler(tickets, search, events, log)
	oh := handler.NewOrderHandler(orders, log)
	return &testAPI{
		handler: router.New(th, oh),
		tickets: tickets,
		orders:  orders,
		events:  events,
	}
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func ticketBody(ticketID string) string {
	return fmt.Sprintf(`{
		"ticketId": %q,
		"orderNumber": "ORD-1",
		"trackingNumber": "TRK-1",
		"carrier": "FedEx",
		"service": "FedEx Ground Home Delivery",
		"produto": "Longevity",
		"ticketUrl": "https://example.com/t/1",
		"damageTypes": ["Quebrado"],
		"dateReported": "2025-10-20T10:30:00Z",
		"observations": "caixa danificada"
	}`, ticketID)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateTicket(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/tickets", ticketBody("T-1"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "T-1", body["ticketId"])
	assert.Equal(t, "https://example.com/t/1", body["ticketUrl"])
	assert.Nil(t, body["notes"])
	assert.Contains(t, api.events.recorded(), "ticket.created")
}

func TestCreateTicketValidationError(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/tickets", `{"ticketId":"T-1","damageTypes":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "at least one damage type")
	assert.Equal(t, 0, api.tickets.Count())
}

func TestCreateTicketDuplicate(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/tickets", ticketBody("T-1")).Code)

	rec := api.do(http.MethodPost, "/tickets", ticketBody("T-1"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Ticket ID T-1 already exists", decode(t, rec)["error"])
	assert.Equal(t, 1, api.tickets.Count())
}

func TestGetTicket(t *testing.T) {
	api := newTestAPI(t)
	created := decode(t, api.do(http.MethodPost, "/tickets", ticketBody("T-1")))
	id := created["id"].(string)

	rec := api.do(http.MethodGet, "/tickets/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "T-1", decode(t, rec)["ticketId"])

	rec = api.do(http.MethodGet, "/tickets/missing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Ticket not found", decode(t, rec)["error"])
}

func TestListTickets(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(http.MethodGet, "/tickets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	api.do(http.MethodPost, "/tickets", ticketBody("T-1"))
	api.do(http.MethodPost, "/tickets", ticketBody("T-2"))

	var list []map[string]any
	rec = api.do(http.MethodGet, "/tickets", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "T-1", list[0]["ticketId"])
	assert.Equal(t, "T-2", list[1]["ticketId"])
}

func TestUpdateTicket(t *testing.T) {
	api := newTestAPI(t)
	created := decode(t, api.do(http.MethodPost, "/tickets", ticketBody("T-1")))
	id := created["id"].(string)

	rec := api.do(http.MethodPatch, "/tickets/"+id, `{"notes":"x"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "x", body["notes"])
	assert.Equal(t, "T-1", body["ticketId"])
	assert.Contains(t, api.events.recorded(), "ticket.updated")
}

func TestUpdateTicketNotFound(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(http.MethodPatch, "/tickets/missing", `{"notes":"x"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Ticket not found", decode(t, rec)["error"])
}

func TestUpdateTicketValidationError(t *testing.T) {
	api := newTestAPI(t)
	created := decode(t, api.do(http.MethodPost, "/tickets", ticketBody("T-1")))
	id := created["id"].(string)

	rec := api.do(http.MethodPatch, "/tickets/"+id, `{"carrier":"Correios"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "unknown carrier")
}

func TestUpdateTicketIDConflict(t *testing.T) {
	api := newTestAPI(t)
	created := decode(t, api.do(http.MethodPost, "/tickets", ticketBody("T1")))
	api.do(http.MethodPost, "/tickets", ticketBody("T2"))
	id := created["id"].(string)

	rec := api.do(http.MethodPatch, "/tickets/"+id, `{"ticketId":"T2"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Ticket ID T2 already exists", decode(t, rec)["error"])

	// Original value survives.
	got := decode(t, api.do(http.MethodGet, "/tickets/"+id, ""))
	assert.Equal(t, "T1", got["ticketId"])
}

func TestDeleteTicket(t *testing.T) {
	api := newTestAPI(t)
	created := decode(t, api.do(http.MethodPost, "/tickets", ticketBody("T-1")))
	id := created["id"].(string)

	rec := api.do(http.MethodDelete, "/tickets/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, api.events.recorded(), "ticket.deleted")

	rec = api.do(http.MethodDelete, "/tickets/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteAllTickets(t *testing.T) {
	api := newTestAPI(t)
	api.do(http.MethodPost, "/tickets", ticketBody("T-1"))
	api.do(http.MethodPost, "/tickets", ticketBody("T-2"))

	rec := api.do(http.MethodDelete, "/tickets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decode(t, rec)["deletedCount"])
	assert.Equal(t, 0, api.tickets.Count())
}

func TestBulkImportTickets(t *testing.T) {
	api := newTestAPI(t)
	api.do(http.MethodPost, "/tickets", ticketBody("DUP"))

	body := fmt.Sprintf(`{"tickets":[%s,%s,{"bad":true},%s]}`,
		ticketBody("T-1"), ticketBody("DUP"), ticketBody("T-2"))
	rec := api.do(http.MethodPost, "/tickets/bulk", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode(t, rec)
	assert.Equal(t, float64(2), resp["imported"])
	assert.Equal(t, float64(4), resp["total"])
	errs, ok := resp["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 2)
	assert.Equal(t, "Ticket 2 (ID: DUP): Duplicate entry", errs[0])
	assert.Contains(t, errs[1], "Ticket 3: ")
	assert.Equal(t, 3, api.tickets.Count())
	assert.Contains(t, api.events.recorded(), "tickets.imported")
}

func TestBulkImportTicketsNoErrorsKeyWhenClean(t *testing.T) {
	api := newTestAPI(t)
	body := fmt.Sprintf(`{"tickets":[%s]}`, ticketBody("T-1"))
	rec := api.do(http.MethodPost, "/tickets/bulk", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	_, present := decode(t, rec)["errors"]
	assert.False(t, present)
}

func TestBulkImportTicketsNotArray(t *testing.T) {
	api := newTestAPI(t)
	for _, body := range []string{`{"tickets":"nope"}`, `{"tickets":{}}`, `{}`, `not json`} {
		rec := api.do(http.MethodPost, "/tickets/bulk", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "Invalid request: tickets must be an array", decode(t, rec)["error"])
	}
}

func TestBulkImportTicketsZeroValid(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(http.MethodPost, "/tickets/bulk", `{"tickets":[{"bad":1},{"bad":2}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "No valid tickets to import", resp["error"])
	assert.Len(t, resp["errors"], 2)
	assert.Equal(t, 0, api.tickets.Count())
}

func TestBulkImportSameBatchDuplicateRollsBack(t *testing.T) {
	api := newTestAPI(t)
	body := fmt.Sprintf(`{"tickets":[%s,%s]}`, ticketBody("T-1"), ticketBody("T-1"))
	rec := api.do(http.MethodPost, "/tickets/bulk", body)

	// Both items pass the orchestrator (duplicate checks see committed
	// state only); the store's batch insert trips on the second and rolls
	// back the first, so nothing is imported.
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Contains(t, decode(t, rec)["error"], "T-1")
	assert.Equal(t, 0, api.tickets.Count())
}
