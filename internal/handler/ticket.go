package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/damage-control/damage-service/internal/bulkimport"
	"github.com/damage-control/damage-service/internal/errs"
	"github.com/damage-control/damage-service/internal/kafka"
	"github.com/damage-control/damage-service/internal/metrics"
	"github.com/damage-control/damage-service/internal/model"
	"github.com/damage-control/damage-service/internal/schema"
	"github.com/damage-control/damage-service/internal/searchindex"
	"github.com/damage-control/damage-service/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TicketHandler struct {
	store  *store.TicketStore
	search *searchindex.Client
	events kafka.TicketEventProducer
	log    *zap.SugaredLogger
}

func NewTicketHandler(s *store.TicketStore, search *searchindex.Client, events kafka.TicketEventProducer, log *zap.SugaredLogger) *TicketHandler {
	return &TicketHandler{store: s, search: search, events: events, log: log}
}

func (h *TicketHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetAll())
}

func (h *TicketHandler) Get(c *gin.Context) {
	t, ok := h.store.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TicketHandler) Create(c *gin.Context) {
	var raw any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	ins, err := schema.ParseInsertTicket(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.store.HasTicketID(ins.TicketID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Ticket ID %s already exists", ins.TicketID)})
		return
	}
	t, err := h.store.Create(*ins)
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateTicketID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Ticket ID %s already exists", ins.TicketID)})
			return
		}
		h.log.Errorw("create ticket", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ticket"})
		return
	}
	metrics.TicketsCreatedTotal.Inc()
	h.events.ProduceTicketEvent(c.Request.Context(), "ticket.created", ticketEventPayload(&t))
	h.search.IndexTicketAsync(&t)
	c.JSON(http.StatusCreated, t)
}

func (h *TicketHandler) BulkImport(c *gin.Context) {
	var req struct {
		Tickets any `json:"tickets"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: tickets must be an array"})
		return
	}
	items, ok := req.Tickets.([]any)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: tickets must be an array"})
		return
	}

	res := bulkimport.Run(items, schema.ParseInsertTicket,
		func(t *model.InsertTicket) bool { return h.store.HasTicketID(t.TicketID) },
		"Ticket",
		func(t *model.InsertTicket) string { return "ID: " + t.TicketID },
	)
	metrics.ImportItemsAcceptedTotal.WithLabelValues("ticket").Add(float64(len(res.ValidItems)))
	metrics.ImportItemsRejectedTotal.WithLabelValues("ticket").Add(float64(len(res.Errors)))

	if len(res.ValidItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid tickets to import", "errors": res.Errors})
		return
	}

	created, err := h.store.CreateMany(res.ValidItems)
	if err != nil {
		// A same-batch ticketId collision surfaces here; the store has
		// already rolled the whole batch back.
		if errors.Is(err, errs.ErrDuplicateTicketID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorw("bulk import tickets", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import tickets"})
		return
	}

	h.events.ProduceTicketEvent(c.Request.Context(), "tickets.imported", map[string]interface{}{
		"imported": len(created),
		"total":    len(items),
	})
	for i := range created {
		h.search.IndexTicketAsync(&created[i])
	}

	resp := gin.H{
		"imported": len(created),
		"total":    len(items),
		"tickets":  created,
	}
	if len(res.Errors) > 0 {
		resp["errors"] = res.Errors
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TicketHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var raw any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	patch, err := schema.ParseTicketPatch(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.store.Update(id, *patch)
	if err != nil {
		if errors.Is(err, errs.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
			return
		}
		if errors.Is(err, errs.ErrDuplicateTicketID) && patch.TicketID != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Ticket ID %s already exists", *patch.TicketID)})
			return
		}
		h.log.Errorw("update ticket", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ticket"})
		return
	}
	h.events.ProduceTicketEvent(c.Request.Context(), "ticket.updated", ticketEventPayload(&t))
	h.search.IndexTicketAsync(&t)
	c.JSON(http.StatusOK, t)
}

func (h *TicketHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}
	h.events.ProduceTicketEvent(c.Request.Context(), "ticket.deleted", map[string]interface{}{"id": id})
	h.search.RemoveTicketAsync(id)
	c.Status(http.StatusNoContent)
}

func (h *TicketHandler) DeleteAll(c *gin.Context) {
	count := h.store.DeleteAll()
	h.log.Infow("deleted all tickets", "count", count)
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}

func ticketEventPayload(t *model.Ticket) map[string]interface{} {
	return map[string]interface{}{
		"id":             t.ID,
		"ticketId":       t.TicketID,
		"orderNumber":    t.OrderNumber,
		"trackingNumber": t.TrackingNumber,
		"carrier":        string(t.Carrier),
		"produto":        string(t.Produto),
	}
}
