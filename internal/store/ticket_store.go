// Package store owns the canonical in-memory state for tickets and
// orders. Stores are explicit objects handed to the HTTP layer by the
// application; there is no process-wide singleton.
package store

import (
	"fmt"
	"sync"

	"github.com/damage-control/damage-service/internal/errs"
	"github.com/damage-control/damage-service/internal/model"
	"github.com/google/uuid"
)

// TicketStore keeps every live ticket in a single owning map keyed by
// system id, plus a non-owning ticketId -> id index. Both structures and
// the insertion-order slice are mutated together under one mutex, so the
// dual-index invariant can never be observed half-applied. All getters
// return deep copies; no caller ever holds a writable reference into the
// store.
type TicketStore struct {
	mu           sync.RWMutex
	byID         map[string]*model.Ticket
	idByTicketID map[string]string
	order        []string
}

func NewTicketStore() *TicketStore {
	return &TicketStore{
		byID:         make(map[string]*model.Ticket),
		idByTicketID: make(map[string]string),
	}
}

// GetAll returns every live ticket in insertion order.
func (s *TicketStore) GetAll() []model.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Ticket, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneTicket(s.byID[id]))
	}
	return out
}

// GetByID looks a ticket up by its system id.
func (s *TicketStore) GetByID(id string) (model.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.byID[id]
	if !ok {
		return model.Ticket{}, false
	}
	return cloneTicket(t), true
}

// GetByTicketID looks a ticket up by its external ticketId.
func (s *TicketStore) GetByTicketID(ticketID string) (model.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.idByTicketID[ticketID]
	if !ok {
		return model.Ticket{}, false
	}
	return cloneTicket(s.byID[id]), true
}

// HasTicketID reports whether a live ticket already uses ticketID. This is
// the duplicate-check predicate the bulk importer consults.
func (s *TicketStore) HasTicketID(ticketID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.idByTicketID[ticketID]
	return ok
}

// Count returns the number of live tickets.
func (s *TicketStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Create assigns a fresh system id and inserts the ticket. It fails with
// errs.ErrDuplicateTicketID when the ticketId is already live, leaving the
// store unchanged.
func (s *TicketStore) Create(ins model.InsertTicket) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.insertLocked(ins)
	if err != nil {
		return model.Ticket{}, err
	}
	return cloneTicket(t), nil
}

// CreateMany inserts the batch item by item, in order. If any insertion
// conflicts, every record inserted by this call is removed again before
// the error is surfaced: the caller sees all-or-nothing.
func (s *TicketStore) CreateMany(batch []model.InsertTicket) ([]model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := make([]model.Ticket, 0, len(batch))
	for _, ins := range batch {
		t, err := s.insertLocked(ins)
		if err != nil {
			for _, c := range created {
				s.removeLocked(c.ID)
			}
			return nil, err
		}
		created = append(created, cloneTicket(t))
	}
	return created, nil
}

// Update applies a partial update by system id. It returns
// errs.ErrTicketNotFound when the id is absent and
// errs.ErrDuplicateTicketID when the patch moves ticketId onto a value
// another live ticket already uses; in both cases the store is unchanged.
// Field contents are trusted as pre-validated by the schema layer.
func (s *TicketStore) Update(id string, patch model.TicketPatch) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.byID[id]
	if !ok {
		return model.Ticket{}, errs.ErrTicketNotFound
	}

	next := cloneTicket(cur)
	applyPatch(&next, patch)

	if next.TicketID != cur.TicketID {
		if otherID, exists := s.idByTicketID[next.TicketID]; exists && otherID != id {
			return model.Ticket{}, fmt.Errorf("ticket ID %q: %w", next.TicketID, errs.ErrDuplicateTicketID)
		}
		delete(s.idByTicketID, cur.TicketID)
		s.idByTicketID[next.TicketID] = id
	}
	s.byID[id] = &next
	return cloneTicket(&next), nil
}

// Delete removes a ticket by system id and reports whether one was found.
func (s *TicketStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return false
	}
	s.removeLocked(id)
	return true
}

// DeleteAll removes every ticket and returns how many were removed.
func (s *TicketStore) DeleteAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := len(s.byID)
	s.byID = make(map[string]*model.Ticket)
	s.idByTicketID = make(map[string]string)
	s.order = nil
	return count
}

// insertLocked inserts one ticket. Caller holds the write lock.
func (s *TicketStore) insertLocked(ins model.InsertTicket) (*model.Ticket, error) {
	if _, exists := s.idByTicketID[ins.TicketID]; exists {
		return nil, fmt.Errorf("ticket ID %q: %w", ins.TicketID, errs.ErrDuplicateTicketID)
	}
	t := &model.Ticket{
		ID:             uuid.NewString(),
		TicketID:       ins.TicketID,
		OrderNumber:    ins.OrderNumber,
		TrackingNumber: ins.TrackingNumber,
		Carrier:        ins.Carrier,
		Service:        ins.Service,
		Produto:        ins.Produto,
		TicketURL:      cloneStringPtr(ins.TicketURL),
		DamageTypes:    cloneDamageTypes(ins.DamageTypes),
		DateReported:   ins.DateReported,
		Observations:   cloneStringPtr(ins.Observations),
		Notes:          cloneStringPtr(ins.Notes),
	}
	s.byID[t.ID] = t
	s.idByTicketID[t.TicketID] = t.ID
	s.order = append(s.order, t.ID)
	return t, nil
}

// removeLocked removes one ticket from the map, the index and the order
// slice. Caller holds the write lock.
func (s *TicketStore) removeLocked(id string) {
	t, ok := s.byID[id]
	if !ok {
		return
	}
	delete(s.byID, id)
	delete(s.idByTicketID, t.TicketID)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// applyPatch merges the present patch fields into t. An explicit empty
// string for the optional text fields clears them back to null, matching
// the normalization create applies.
func applyPatch(t *model.Ticket, p model.TicketPatch) {
	if p.TicketID != nil {
		t.TicketID = *p.TicketID
	}
	if p.OrderNumber != nil {
		t.OrderNumber = *p.OrderNumber
	}
	if p.TrackingNumber != nil {
		t.TrackingNumber = *p.TrackingNumber
	}
	if p.Carrier != nil {
		t.Carrier = *p.Carrier
	}
	if p.Service != nil {
		t.Service = *p.Service
	}
	if p.Produto != nil {
		t.Produto = *p.Produto
	}
	if p.TicketURL != nil {
		t.TicketURL = normalizeOptional(*p.TicketURL)
	}
	if p.DamageTypes != nil {
		t.DamageTypes = cloneDamageTypes(p.DamageTypes)
	}
	if p.DateReported != nil {
		t.DateReported = *p.DateReported
	}
	if p.Observations != nil {
		t.Observations = normalizeOptional(*p.Observations)
	}
	if p.Notes != nil {
		t.Notes = normalizeOptional(*p.Notes)
	}
}

func normalizeOptional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func cloneTicket(t *model.Ticket) model.Ticket {
	out := *t
	out.TicketURL = cloneStringPtr(t.TicketURL)
	out.DamageTypes = cloneDamageTypes(t.DamageTypes)
	out.Observations = cloneStringPtr(t.Observations)
	out.Notes = cloneStringPtr(t.Notes)
	return out
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := *p
	return &s
}

func cloneDamageTypes(d []model.DamageType) []model.DamageType {
	if d == nil {
		return nil
	}
	out := make([]model.DamageType, len(d))
	copy(out, d)
	return out
}
