package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes fulfilment lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusReturned  OrderStatus = "returned"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// PaymentStatus describes settlement state of an order payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// RefundStatus tracks customer refund request handling.
type RefundStatus string

const (
	RefundStatusNone      RefundStatus = "none"
	RefundStatusRequested RefundStatus = "requested"
	RefundStatusApproved  RefundStatus = "approved"
	RefundStatusRejected  RefundStatus = "rejected"
)

// Customer is the snapshot of buyer details taken when the order was placed.
type Customer struct {
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Phone   string `json:"phone" yaml:"phone"`
	Address string `json:"address" yaml:"address"`
}

// OrderLine is a single purchased product inside an order.
type OrderLine struct {
	ProductID   string  `json:"productId" yaml:"productId"`
	ProductName string  `json:"productName" yaml:"productName"`
	Image       string  `json:"image" yaml:"image"`
	UnitPrice   float64 `json:"unitPrice" yaml:"unitPrice"`
	Quantity    int     `json:"quantity" yaml:"quantity"`
	LineTotal   float64 `json:"lineTotal" yaml:"lineTotal"`
}

// Order describes a customer purchase. Total is supplied, never recomputed.
type Order struct {
	ID             string        `json:"id" yaml:"id"`
	Customer       Customer      `json:"customer" yaml:"customer"`
	Items          []OrderLine   `json:"items" yaml:"items"`
	Subtotal       float64       `json:"subtotal" yaml:"subtotal"`
	Discount       float64       `json:"discount" yaml:"discount"`
	Tax            float64       `json:"tax" yaml:"tax"`
	Shipping       float64       `json:"shipping" yaml:"shipping"`
	Total          float64       `json:"total" yaml:"total"`
	PaymentMethod  string        `json:"paymentMethod" yaml:"paymentMethod"`
	PaymentStatus  PaymentStatus `json:"paymentStatus" yaml:"paymentStatus"`
	OrderStatus    OrderStatus   `json:"orderStatus" yaml:"orderStatus"`
	RefundStatus   RefundStatus  `json:"refundStatus" yaml:"refundStatus"`
	TrackingNumber *string       `json:"trackingNumber,omitempty" yaml:"trackingNumber"`
	TrackingURL    *string       `json:"trackingUrl,omitempty" yaml:"trackingUrl"`
	AffiliateCode  string        `json:"affiliateCode,omitempty" yaml:"affiliateCode"`
	CreatedAt      time.Time     `json:"createdAt" yaml:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt" yaml:"updatedAt"`
}

// LineTotal multiplies unit price by quantity rounded to cents.
func LineTotal(unitPrice float64, quantity int) float64 {
	return decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		InexactFloat64()
}

// Normalize fills computed line totals and a missing refund status.
func (o *Order) Normalize() {
	for i := range o.Items {
		if o.Items[i].LineTotal == 0 {
			o.Items[i].LineTotal = LineTotal(o.Items[i].UnitPrice, o.Items[i].Quantity)
		}
	}
	if o.RefundStatus == "" {
		o.RefundStatus = RefundStatusNone
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	o.Items = append([]OrderLine(nil), o.Items...)
	o.TrackingNumber = cloneString(o.TrackingNumber)
	o.TrackingURL = cloneString(o.TrackingURL)
	return o
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
