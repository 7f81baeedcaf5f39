package handlers

import (
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/usecase"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/view"
)

// DashboardFacade provides headline figures.
type DashboardFacade interface {
	Dashboard() usecase.DashboardSummary
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Orders(status string) ([]model.Order, error)
	OrderDetails(id string) (usecase.OrderDetails, error)
	UpdateOrderStatus(id string, status model.OrderStatus) (model.Order, error)
	UpdatePaymentStatus(id string, status model.PaymentStatus) (model.Order, error)
	ApproveRefund(id string) (model.Order, error)
	RejectRefund(id string) (model.Order, error)
	UpdateTracking(id, number, url string) (model.Order, error)
}

// AffiliateFacade provides affiliate, wallet and withdrawal operations.
type AffiliateFacade interface {
	Affiliates() []model.Affiliate
	Affiliate(id string) (model.Affiliate, error)
	SetAffiliateStatus(id string, status model.AffiliateStatus) (model.Affiliate, error)
	UpdateCommissionRate(id string, rate float64) (model.Affiliate, error)
	AdjustWallet(id string, amount float64, reason string) (model.Affiliate, error)
	UpdateWithdrawal(affiliateID, withdrawalID string, target model.WithdrawalStatus, notes string) (model.Withdrawal, error)
	Withdrawals(status string) ([]view.WithdrawalRow, error)
}

// CouponFacade provides coupon management.
type CouponFacade interface {
	Coupons() []model.Coupon
	Coupon(id string) (model.Coupon, error)
	CreateCoupon(in model.CouponInput) (model.Coupon, error)
	UpdateCoupon(id string, patch model.CouponPatch) (model.Coupon, error)
	ToggleCoupon(id string) (model.Coupon, error)
	DeleteCoupon(id string) error
	GenerateCouponCode() string
	PreviewCoupon(id string, subtotal float64) (float64, error)
}

// NotificationFacade provides the admin inbox.
type NotificationFacade interface {
	Notifications(filter string) ([]model.Notification, error)
	UnreadNotifications() int
	CreateNotification(in model.NotificationInput) (model.Notification, error)
	MarkNotificationRead(id string) error
	MarkAllNotificationsRead() int
}

// CatalogFacade provides product and service management.
type CatalogFacade interface {
	Products(withDeleted bool) []model.Product
	Product(id string) (model.Product, error)
	CreateProduct(in model.ProductInput) (model.Product, error)
	UpdateProduct(id string, patch model.ProductPatch) (model.Product, error)
	DeleteProduct(id string) error
	RestoreProduct(id string) (model.Product, error)
	Services(withDeleted bool) []model.Service
	Service(id string) (model.Service, error)
	CreateService(in model.ServiceInput) (model.Service, error)
	UpdateService(id string, patch model.ServicePatch) (model.Service, error)
	DeleteService(id string) error
	RestoreService(id string) (model.Service, error)
}

// UserFacade provides customer account management.
type UserFacade interface {
	Users() []model.User
	User(id string) (model.User, error)
	SetUserStatus(id string, status model.UserStatus) (model.User, error)
	UpdateKYCStatus(id string, status model.KYCStatus) (model.User, error)
	AppendTimeline(kind usecase.TimelineKind, userID, itemID string, entry model.TimelineEntry) (model.User, error)
}

// AdminFacade aggregates the full set of operations used across handlers.
type AdminFacade interface {
	DashboardFacade
	OrderFacade
	AffiliateFacade
	CouponFacade
	NotificationFacade
	CatalogFacade
	UserFacade
}
