package handler

import (
	"net/http"

	"github.com/damage-control/damage-service/internal/bulkimport"
	"github.com/damage-control/damage-service/internal/metrics"
	"github.com/damage-control/damage-service/internal/schema"
	"github.com/damage-control/damage-service/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	store *store.OrderStore
	log   *zap.SugaredLogger
}

func NewOrderHandler(s *store.OrderStore, log *zap.SugaredLogger) *OrderHandler {
	return &OrderHandler{store: s, log: log}
}

func (h *OrderHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetAll())
}

// BulkImport has no duplicate checker: orders may legitimately repeat
// tracking and order numbers, so only schema validation filters items.
func (h *OrderHandler) BulkImport(c *gin.Context) {
	var req struct {
		Orders any `json:"orders"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: orders must be an array"})
		return
	}
	items, ok := req.Orders.([]any)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: orders must be an array"})
		return
	}

	res := bulkimport.Run(items, schema.ParseInsertOrder, nil, "Order", nil)
	metrics.ImportItemsAcceptedTotal.WithLabelValues("order").Add(float64(len(res.ValidItems)))
	metrics.ImportItemsRejectedTotal.WithLabelValues("order").Add(float64(len(res.Errors)))

	if len(res.ValidItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid orders to import", "errors": res.Errors})
		return
	}

	created := h.store.CreateMany(res.ValidItems)

	resp := gin.H{
		"imported": len(created),
		"total":    len(items),
		"orders":   created,
	}
	if len(res.Errors) > 0 {
		resp["errors"] = res.Errors
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrderHandler) DeleteAll(c *gin.Context) {
	count := h.store.DeleteAll()
	h.log.Infow("deleted all orders", "count", count)
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}
