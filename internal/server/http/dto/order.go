package dto

import (
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/usecase"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/view"
)

// StatusRequest carries a target status for any status-changing endpoint.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TrackingRequest sets shipment tracking; empty values clear the field.
type TrackingRequest struct {
	TrackingNumber string `json:"trackingNumber"`
	TrackingURL    string `json:"trackingUrl"`
}

// OrderResponse is an order with display helpers.
type OrderResponse struct {
	model.Order
	TotalDisplay string           `json:"totalDisplay"`
	StatusBadge  view.StatusBadge `json:"statusBadge"`
	PaymentBadge view.StatusBadge `json:"paymentBadge"`
}

// CommissionResponse is the affiliate ledger entry credited for an order.
type CommissionResponse struct {
	AffiliateID   string              `json:"affiliateId"`
	AffiliateName string              `json:"affiliateName"`
	ReferralCode  string              `json:"referralCode"`
	Log           model.CommissionLog `json:"log"`
	AmountDisplay string              `json:"amountDisplay"`
}

// OrderDetailsResponse joins an order with its commission, when any.
type OrderDetailsResponse struct {
	Order      OrderResponse       `json:"order"`
	Commission *CommissionResponse `json:"commission"`
}

// NewOrderResponse decorates o for display.
func NewOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		Order:        o,
		TotalDisplay: view.FormatCurrency(o.Total),
		StatusBadge:  view.Badge(o.OrderStatus),
		PaymentBadge: view.Badge(o.PaymentStatus),
	}
}

// NewOrderResponses decorates every order.
func NewOrderResponses(orders []model.Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, NewOrderResponse(o))
	}
	return resp
}

// NewOrderDetailsResponse converts the use case join.
func NewOrderDetailsResponse(d usecase.OrderDetails) OrderDetailsResponse {
	resp := OrderDetailsResponse{Order: NewOrderResponse(d.Order)}
	if c := d.Commission; c != nil {
		resp.Commission = &CommissionResponse{
			AffiliateID:   c.AffiliateID,
			AffiliateName: c.AffiliateName,
			ReferralCode:  c.ReferralCode,
			Log:           c.Log,
			AmountDisplay: view.FormatCurrency(c.Log.Amount),
		}
	}
	return resp
}
