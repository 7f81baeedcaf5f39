package usecase

import (
	domainErrors "github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/errors"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/repository"
)

// OrderDetails is an order joined with the affiliate commission it earned.
type OrderDetails struct {
	Order      model.Order
	Commission *OrderCommission
}

// OrderCommission identifies the ledger entry credited for an order.
type OrderCommission struct {
	AffiliateID   string
	AffiliateName string
	ReferralCode  string
	Log           model.CommissionLog
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders     repository.OrderRepository
	affiliates repository.AffiliateRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, affiliates repository.AffiliateRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, affiliates: affiliates}
}

// List returns orders newest first, optionally restricted to one status.
func (u *OrderUseCase) List(status string) ([]model.Order, error) {
	if status == "" || status == "all" {
		return u.orders.List(), nil
	}
	s := model.OrderStatus(status)
	if !s.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.orders.ListByStatus(s), nil
}

// Details returns the order and, when present, its commission log entry.
func (u *OrderUseCase) Details(id string) (OrderDetails, error) {
	order, ok := u.orders.GetByID(id)
	if !ok {
		return OrderDetails{}, domainErrors.ErrNotFound
	}
	details := OrderDetails{Order: order}
	if log, a, found := u.affiliates.FindCommissionLog(id); found {
		details.Commission = &OrderCommission{
			AffiliateID:   a.ID,
			AffiliateName: a.Name,
			ReferralCode:  a.ReferralCode,
			Log:           log,
		}
	}
	return details, nil
}

// UpdateStatus sets the fulfilment status.
func (u *OrderUseCase) UpdateStatus(id string, status model.OrderStatus) (model.Order, error) {
	if !status.Valid() {
		return model.Order{}, domainErrors.ErrInvalidStatus
	}
	return u.apply(id, u.orders.UpdateStatus(id, status))
}

// UpdatePaymentStatus sets the payment status.
func (u *OrderUseCase) UpdatePaymentStatus(id string, status model.PaymentStatus) (model.Order, error) {
	if !status.Valid() {
		return model.Order{}, domainErrors.ErrInvalidStatus
	}
	return u.apply(id, u.orders.UpdatePaymentStatus(id, status))
}

// ApproveRefund approves the refund and marks the payment refunded.
func (u *OrderUseCase) ApproveRefund(id string) (model.Order, error) {
	return u.apply(id, u.orders.ApproveRefund(id))
}

// RejectRefund rejects the refund request.
func (u *OrderUseCase) RejectRefund(id string) (model.Order, error) {
	return u.apply(id, u.orders.RejectRefund(id))
}

// UpdateTracking sets or clears tracking details.
func (u *OrderUseCase) UpdateTracking(id, number, url string) (model.Order, error) {
	return u.apply(id, u.orders.UpdateTracking(id, number, url))
}

func (u *OrderUseCase) apply(id string, applied bool) (model.Order, error) {
	if !applied {
		return model.Order{}, domainErrors.ErrNotFound
	}
	order, _ := u.orders.GetByID(id)
	return order, nil
}
