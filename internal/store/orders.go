package store

import (
	"slices"
	"sync"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

// OrderStore owns the order collection. Mutations replace a record by id
// and silently ignore unknown ids.
type OrderStore struct {
	mu     sync.RWMutex
	seed   []model.Order
	orders []model.Order
	opts   Options
}

// NewOrderStore creates a store initialised from seed.
func NewOrderStore(seed []model.Order, opts Options) *OrderStore {
	s := &OrderStore{seed: seed, opts: opts.withDefaults()}
	s.Reset()
	return s
}

// Reset restores the seed collection.
func (s *OrderStore) Reset() {
	orders := make([]model.Order, 0, len(s.seed))
	for _, o := range s.seed {
		o = o.Clone()
		o.Normalize()
		orders = append(orders, o)
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
}

// List returns all orders, newest first.
func (s *OrderStore) List() []model.Order {
	return s.filter(func(model.Order) bool { return true })
}

// ListByStatus returns orders in the given fulfilment status, newest first.
func (s *OrderStore) ListByStatus(status model.OrderStatus) []model.Order {
	return s.filter(func(o model.Order) bool { return o.OrderStatus == status })
}

func (s *OrderStore) filter(keep func(model.Order) bool) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if keep(o) {
			result = append(result, o.Clone())
		}
	}
	slices.SortStableFunc(result, func(a, b model.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return result
}

// GetByID returns the order and whether it exists.
func (s *OrderStore) GetByID(id string) (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.orders[i].Clone(), true
	}
	return model.Order{}, false
}

// UpdateStatus sets the fulfilment status. Any transition is accepted.
func (s *OrderStore) UpdateStatus(id string, status model.OrderStatus) bool {
	return s.replace(id, "order_status_changed", func(o *model.Order) map[string]any {
		from := o.OrderStatus
		o.OrderStatus = status
		return map[string]any{"from": string(from), "to": string(status)}
	})
}

// UpdatePaymentStatus sets the payment status.
func (s *OrderStore) UpdatePaymentStatus(id string, status model.PaymentStatus) bool {
	return s.replace(id, "payment_status_changed", func(o *model.Order) map[string]any {
		from := o.PaymentStatus
		o.PaymentStatus = status
		return map[string]any{"from": string(from), "to": string(status)}
	})
}

// ApproveRefund approves the refund and marks the payment refunded in one step.
func (s *OrderStore) ApproveRefund(id string) bool {
	return s.replace(id, "refund_approved", func(o *model.Order) map[string]any {
		o.RefundStatus = model.RefundStatusApproved
		o.PaymentStatus = model.PaymentStatusRefunded
		return map[string]any{"total": o.Total}
	})
}

// RejectRefund rejects the refund request.
func (s *OrderStore) RejectRefund(id string) bool {
	return s.replace(id, "refund_rejected", func(o *model.Order) map[string]any {
		o.RefundStatus = model.RefundStatusRejected
		return map[string]any{}
	})
}

// UpdateTracking sets tracking details. Empty values unset the field.
func (s *OrderStore) UpdateTracking(id, number, url string) bool {
	return s.replace(id, "tracking_updated", func(o *model.Order) map[string]any {
		o.TrackingNumber = optional(number)
		o.TrackingURL = optional(url)
		return map[string]any{"trackingNumber": number, "trackingUrl": url}
	})
}

func (s *OrderStore) replace(id, kind string, mutate func(*model.Order) map[string]any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	next := s.orders[i].Clone()
	payload := mutate(&next)
	next.UpdatedAt = s.opts.touch(next.UpdatedAt)
	s.orders[i] = next

	s.opts.record(model.JournalStreamOrder, id, kind, payload)
	return true
}

func (s *OrderStore) indexOf(id string) int {
	return slices.IndexFunc(s.orders, func(o model.Order) bool { return o.ID == id })
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
