package store

import (
	"sync"
	"time"

	"github.com/damage-control/damage-service/internal/model"
	"github.com/google/uuid"
)

// OrderStore is the simpler sibling of TicketStore: orders carry no
// uniqueness constraint beyond the system id, so creation cannot conflict
// and batch insertion needs no rollback path.
type OrderStore struct {
	mu    sync.RWMutex
	byID  map[string]*model.Order
	order []string
}

func NewOrderStore() *OrderStore {
	return &OrderStore{byID: make(map[string]*model.Order)}
}

// GetAll returns every order in insertion order.
func (s *OrderStore) GetAll() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// GetByID looks an order up by its system id.
func (s *OrderStore) GetByID(id string) (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.byID[id]
	if !ok {
		return model.Order{}, false
	}
	return *o, true
}

// Count returns the number of live orders.
func (s *OrderStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Create assigns a fresh system id and the import timestamp. It always
// succeeds.
func (s *OrderStore) Create(ins model.InsertOrder) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(ins)
}

// CreateMany inserts the whole batch; with no uniqueness constraints there
// is nothing to conflict with and nothing to roll back.
func (s *OrderStore) CreateMany(batch []model.InsertOrder) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := make([]model.Order, 0, len(batch))
	for _, ins := range batch {
		created = append(created, s.insertLocked(ins))
	}
	return created
}

// DeleteAll removes every order and returns how many were removed.
func (s *OrderStore) DeleteAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := len(s.byID)
	s.byID = make(map[string]*model.Order)
	s.order = nil
	return count
}

func (s *OrderStore) insertLocked(ins model.InsertOrder) model.Order {
	o := &model.Order{
		ID:             uuid.NewString(),
		TrackingNumber: ins.TrackingNumber,
		OrderNumber:    ins.OrderNumber,
		Produto:        ins.Produto,
		Carrier:        ins.Carrier,
		DateImported:   time.Now().UTC(),
	}
	s.byID[o.ID] = o
	s.order = append(s.order, o.ID)
	return *o
}
