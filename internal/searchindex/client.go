package searchindex

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/damage-control/damage-service/internal/model"
	"go.uber.org/zap"
)

// Client posts tickets to search-service for indexing. Best-effort: it
// never blocks or fails an API response.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

// NewClient returns a client. With an empty baseURL all calls are no-ops.
func NewClient(baseURL string, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: baseURL,
		log:     log,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// IndexTicketPayload is the body of POST /search/index/ticket.
type IndexTicketPayload struct {
	ID             string   `json:"id"`
	TicketID       string   `json:"ticketId"`
	OrderNumber    string   `json:"orderNumber"`
	TrackingNumber string   `json:"trackingNumber"`
	Carrier        string   `json:"carrier"`
	Service        string   `json:"service"`
	Produto        string   `json:"produto"`
	DamageTypes    []string `json:"damageTypes"`
	Observations   string   `json:"observations,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

// IndexTicket sends one ticket to search-service.
func (c *Client) IndexTicket(ctx context.Context, t *model.Ticket) {
	if c.baseURL == "" {
		return
	}
	payload := IndexTicketPayload{
		ID:             t.ID,
		TicketID:       t.TicketID,
		OrderNumber:    t.OrderNumber,
		TrackingNumber: t.TrackingNumber,
		Carrier:        string(t.Carrier),
		Service:        string(t.Service),
		Produto:        string(t.Produto),
	}
	for _, d := range t.DamageTypes {
		payload.DamageTypes = append(payload.DamageTypes, string(d))
	}
	if t.Observations != nil {
		payload.Observations = *t.Observations
	}
	if t.Notes != nil {
		payload.Notes = *t.Notes
	}
	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Errorw("searchindex: marshal", "error", err)
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search/index/ticket", bytes.NewReader(body))
	if err != nil {
		c.log.Errorw("searchindex: new request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorw("searchindex: request", "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.log.Warnw("searchindex: unexpected status", "status", resp.StatusCode, "ticket", t.ID)
	}
}

// IndexTicketAsync calls IndexTicket in its own goroutine so the API
// response is never held up.
func (c *Client) IndexTicketAsync(t *model.Ticket) {
	if c.baseURL == "" {
		return
	}
	tc := *t
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.IndexTicket(ctx, &tc)
	}()
}

// RemoveTicketAsync asks search-service to drop a deleted ticket from its
// index.
func (c *Client) RemoveTicketAsync(id string) {
	if c.baseURL == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/search/index/ticket/"+id, nil)
		if err != nil {
			c.log.Errorw("searchindex: new request", "error", err)
			return
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.log.Errorw("searchindex: request", "error", err)
			return
		}
		resp.Body.Close()
	}()
}
