package repository

import "github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"

// Mutating methods report whether a record changed; unknown ids are silent no-ops.

// OrderRepository manages orders.
type OrderRepository interface {
	List() []model.Order
	ListByStatus(status model.OrderStatus) []model.Order
	GetByID(id string) (model.Order, bool)
	UpdateStatus(id string, status model.OrderStatus) bool
	UpdatePaymentStatus(id string, status model.PaymentStatus) bool
	ApproveRefund(id string) bool
	RejectRefund(id string) bool
	UpdateTracking(id, number, url string) bool
}

// AffiliateRepository manages affiliates, their ledger and withdrawals.
type AffiliateRepository interface {
	List() []model.Affiliate
	GetByID(id string) (model.Affiliate, bool)
	FindByReferralCode(code string) (model.Affiliate, bool)
	FindCommissionLog(orderID string) (model.CommissionLog, model.Affiliate, bool)
	SetStatus(id string, status model.AffiliateStatus) bool
	UpdateCommissionRate(id string, rate float64) bool
	AdjustWallet(id string, amount float64, reason string) bool
	UpdateWithdrawalStatus(affiliateID, withdrawalID string, target model.WithdrawalStatus, notes string) bool
}

// CouponRepository manages coupons.
type CouponRepository interface {
	List() []model.Coupon
	GetByID(id string) (model.Coupon, bool)
	Add(in model.CouponInput) model.Coupon
	Update(id string, patch model.CouponPatch) bool
	ToggleStatus(id string) bool
	Delete(id string) bool
}

// NotificationRepository manages the admin inbox.
type NotificationRepository interface {
	Create(in model.NotificationInput) model.Notification
	MarkAsRead(id string) bool
	MarkAllAsRead() int
	Filter(criterion string) []model.Notification
	UnreadCount() int
}

// ProductRepository manages products.
type ProductRepository interface {
	List() []model.Product
	ListAll() []model.Product
	GetByID(id string) (model.Product, bool)
	Add(in model.ProductInput) model.Product
	Update(id string, patch model.ProductPatch) bool
	SoftDelete(id string) bool
	Restore(id string) bool
}

// ServiceRepository manages bookable services.
type ServiceRepository interface {
	List() []model.Service
	ListAll() []model.Service
	GetByID(id string) (model.Service, bool)
	Add(in model.ServiceInput) model.Service
	Update(id string, patch model.ServicePatch) bool
	SoftDelete(id string) bool
	Restore(id string) bool
}

// UserRepository manages customer profiles.
type UserRepository interface {
	List() []model.User
	GetByID(id string) (model.User, bool)
	SetStatus(id string, status model.UserStatus) bool
	UpdateKYCStatus(id string, status model.KYCStatus) bool
	AppendReturnTimeline(userID, itemID string, entry model.TimelineEntry) bool
	AppendExchangeTimeline(userID, itemID string, entry model.TimelineEntry) bool
}
