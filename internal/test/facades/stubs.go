// Package facades holds HTTP facade stubs shared by handler and router tests.
package facades

import (
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/usecase"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/view"
)

// DashboardFacadeStub returns a fixed summary.
type DashboardFacadeStub struct {
	Summary usecase.DashboardSummary
}

// Dashboard returns the configured summary.
func (s DashboardFacadeStub) Dashboard() usecase.DashboardSummary {
	return s.Summary
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn   func(status string) ([]model.Order, error)
	DetailsFn  func(id string) (usecase.OrderDetails, error)
	StatusFn   func(id string, status model.OrderStatus) (model.Order, error)
	PaymentFn  func(id string, status model.PaymentStatus) (model.Order, error)
	RefundFn   func(id string, approve bool) (model.Order, error)
	TrackingFn func(id, number, url string) (model.Order, error)
}

// Orders delegates to OrdersFn or returns a single order.
func (s OrderFacadeStub) Orders(status string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(status)
	}
	return []model.Order{{ID: "ORD-1", OrderStatus: model.OrderStatusPending}}, nil
}

// OrderDetails delegates to DetailsFn or returns the order without commission.
func (s OrderFacadeStub) OrderDetails(id string) (usecase.OrderDetails, error) {
	if s.DetailsFn != nil {
		return s.DetailsFn(id)
	}
	return usecase.OrderDetails{Order: model.Order{ID: id}}, nil
}

// UpdateOrderStatus delegates to StatusFn or echoes the status.
func (s OrderFacadeStub) UpdateOrderStatus(id string, status model.OrderStatus) (model.Order, error) {
	if s.StatusFn != nil {
		return s.StatusFn(id, status)
	}
	return model.Order{ID: id, OrderStatus: status}, nil
}

// UpdatePaymentStatus delegates to PaymentFn or echoes the status.
func (s OrderFacadeStub) UpdatePaymentStatus(id string, status model.PaymentStatus) (model.Order, error) {
	if s.PaymentFn != nil {
		return s.PaymentFn(id, status)
	}
	return model.Order{ID: id, PaymentStatus: status}, nil
}

// ApproveRefund delegates to RefundFn.
func (s OrderFacadeStub) ApproveRefund(id string) (model.Order, error) {
	if s.RefundFn != nil {
		return s.RefundFn(id, true)
	}
	return model.Order{ID: id, RefundStatus: model.RefundStatusApproved}, nil
}

// RejectRefund delegates to RefundFn.
func (s OrderFacadeStub) RejectRefund(id string) (model.Order, error) {
	if s.RefundFn != nil {
		return s.RefundFn(id, false)
	}
	return model.Order{ID: id, RefundStatus: model.RefundStatusRejected}, nil
}

// UpdateTracking delegates to TrackingFn or echoes the values.
func (s OrderFacadeStub) UpdateTracking(id, number, url string) (model.Order, error) {
	if s.TrackingFn != nil {
		return s.TrackingFn(id, number, url)
	}
	return model.Order{ID: id, TrackingNumber: &number, TrackingURL: &url}, nil
}

// AffiliateFacadeStub provides controllable behaviour for affiliate endpoints.
type AffiliateFacadeStub struct {
	List          []model.Affiliate
	GetFn         func(id string) (model.Affiliate, error)
	StatusFn      func(id string, status model.AffiliateStatus) (model.Affiliate, error)
	RateFn        func(id string, rate float64) (model.Affiliate, error)
	AdjustFn      func(id string, amount float64, reason string) (model.Affiliate, error)
	WithdrawalFn  func(affiliateID, withdrawalID string, target model.WithdrawalStatus, notes string) (model.Withdrawal, error)
	WithdrawalsFn func(status string) ([]view.WithdrawalRow, error)
}

// Affiliates returns the configured list.
func (s AffiliateFacadeStub) Affiliates() []model.Affiliate {
	return s.List
}

// Affiliate delegates to GetFn or returns a bare affiliate.
func (s AffiliateFacadeStub) Affiliate(id string) (model.Affiliate, error) {
	if s.GetFn != nil {
		return s.GetFn(id)
	}
	return model.Affiliate{ID: id}, nil
}

// SetAffiliateStatus delegates to StatusFn or echoes the status.
func (s AffiliateFacadeStub) SetAffiliateStatus(id string, status model.AffiliateStatus) (model.Affiliate, error) {
	if s.StatusFn != nil {
		return s.StatusFn(id, status)
	}
	return model.Affiliate{ID: id, Status: status}, nil
}

// UpdateCommissionRate delegates to RateFn or echoes the rate.
func (s AffiliateFacadeStub) UpdateCommissionRate(id string, rate float64) (model.Affiliate, error) {
	if s.RateFn != nil {
		return s.RateFn(id, rate)
	}
	return model.Affiliate{ID: id, CommissionRate: rate}, nil
}

// AdjustWallet delegates to AdjustFn or returns the amount as balance.
func (s AffiliateFacadeStub) AdjustWallet(id string, amount float64, reason string) (model.Affiliate, error) {
	if s.AdjustFn != nil {
		return s.AdjustFn(id, amount, reason)
	}
	return model.Affiliate{ID: id, WalletBalance: amount}, nil
}

// UpdateWithdrawal delegates to WithdrawalFn or echoes the target.
func (s AffiliateFacadeStub) UpdateWithdrawal(affiliateID, withdrawalID string, target model.WithdrawalStatus, notes string) (model.Withdrawal, error) {
	if s.WithdrawalFn != nil {
		return s.WithdrawalFn(affiliateID, withdrawalID, target, notes)
	}
	return model.Withdrawal{ID: withdrawalID, Status: target, Notes: notes}, nil
}

// Withdrawals delegates to WithdrawalsFn or returns no rows.
func (s AffiliateFacadeStub) Withdrawals(status string) ([]view.WithdrawalRow, error) {
	if s.WithdrawalsFn != nil {
		return s.WithdrawalsFn(status)
	}
	return []view.WithdrawalRow{}, nil
}

// CouponFacadeStub provides controllable behaviour for coupon endpoints.
type CouponFacadeStub struct {
	List      []model.Coupon
	GetFn     func(id string) (model.Coupon, error)
	CreateFn  func(in model.CouponInput) (model.Coupon, error)
	UpdateFn  func(id string, patch model.CouponPatch) (model.Coupon, error)
	ToggleFn  func(id string) (model.Coupon, error)
	DeleteFn  func(id string) error
	Code      string
	PreviewFn func(id string, subtotal float64) (float64, error)
}

// Coupons returns the configured list.
func (s CouponFacadeStub) Coupons() []model.Coupon {
	return s.List
}

// Coupon delegates to GetFn or returns a bare coupon.
func (s CouponFacadeStub) Coupon(id string) (model.Coupon, error) {
	if s.GetFn != nil {
		return s.GetFn(id)
	}
	return model.Coupon{ID: id}, nil
}

// CreateCoupon delegates to CreateFn or echoes the code.
func (s CouponFacadeStub) CreateCoupon(in model.CouponInput) (model.Coupon, error) {
	if s.CreateFn != nil {
		return s.CreateFn(in)
	}
	return model.Coupon{ID: "cpn_new", Code: in.Code}, nil
}

// UpdateCoupon delegates to UpdateFn.
func (s CouponFacadeStub) UpdateCoupon(id string, patch model.CouponPatch) (model.Coupon, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(id, patch)
	}
	return model.Coupon{ID: id}, nil
}

// ToggleCoupon delegates to ToggleFn.
func (s CouponFacadeStub) ToggleCoupon(id string) (model.Coupon, error) {
	if s.ToggleFn != nil {
		return s.ToggleFn(id)
	}
	return model.Coupon{ID: id, Status: model.CouponStatusDisabled}, nil
}

// DeleteCoupon delegates to DeleteFn.
func (s CouponFacadeStub) DeleteCoupon(id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(id)
	}
	return nil
}

// GenerateCouponCode returns the configured code.
func (s CouponFacadeStub) GenerateCouponCode() string {
	return s.Code
}

// PreviewCoupon delegates to PreviewFn.
func (s CouponFacadeStub) PreviewCoupon(id string, subtotal float64) (float64, error) {
	if s.PreviewFn != nil {
		return s.PreviewFn(id, subtotal)
	}
	return 0, nil
}

// NotificationFacadeStub provides controllable behaviour for the inbox.
type NotificationFacadeStub struct {
	FilterFn   func(filter string) ([]model.Notification, error)
	Unread     int
	CreateFn   func(in model.NotificationInput) (model.Notification, error)
	MarkReadFn func(id string) error
	MarkedAll  int
}

// Notifications delegates to FilterFn or returns no items.
func (s NotificationFacadeStub) Notifications(filter string) ([]model.Notification, error) {
	if s.FilterFn != nil {
		return s.FilterFn(filter)
	}
	return []model.Notification{}, nil
}

// UnreadNotifications returns the configured count.
func (s NotificationFacadeStub) UnreadNotifications() int {
	return s.Unread
}

// CreateNotification delegates to CreateFn or echoes the title.
func (s NotificationFacadeStub) CreateNotification(in model.NotificationInput) (model.Notification, error) {
	if s.CreateFn != nil {
		return s.CreateFn(in)
	}
	return model.Notification{ID: "ntf_new", Title: in.Title, Category: in.Category}, nil
}

// MarkNotificationRead delegates to MarkReadFn.
func (s NotificationFacadeStub) MarkNotificationRead(id string) error {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(id)
	}
	return nil
}

// MarkAllNotificationsRead returns the configured count.
func (s NotificationFacadeStub) MarkAllNotificationsRead() int {
	return s.MarkedAll
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	ProductList     []model.Product
	ServiceList     []model.Service
	ProductFn       func(id string) (model.Product, error)
	CreateProductFn func(in model.ProductInput) (model.Product, error)
	UpdateProductFn func(id string, patch model.ProductPatch) (model.Product, error)
	ServiceFn       func(id string) (model.Service, error)
	CreateServiceFn func(in model.ServiceInput) (model.Service, error)
	UpdateServiceFn func(id string, patch model.ServicePatch) (model.Service, error)
	DeleteFn        func(id string) error
	RestoreFn       func(id string) error
}

// Products returns visible products unless withDeleted is set.
func (s CatalogFacadeStub) Products(withDeleted bool) []model.Product {
	result := make([]model.Product, 0, len(s.ProductList))
	for _, p := range s.ProductList {
		if p.DeletedAt == nil || withDeleted {
			result = append(result, p)
		}
	}
	return result
}

// Product delegates to ProductFn.
func (s CatalogFacadeStub) Product(id string) (model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(id)
	}
	return model.Product{ID: id}, nil
}

// CreateProduct delegates to CreateProductFn or echoes the name.
func (s CatalogFacadeStub) CreateProduct(in model.ProductInput) (model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(in)
	}
	return model.Product{ID: "prod_new", Name: in.Name}, nil
}

// UpdateProduct delegates to UpdateProductFn.
func (s CatalogFacadeStub) UpdateProduct(id string, patch model.ProductPatch) (model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(id, patch)
	}
	return model.Product{ID: id}, nil
}

// DeleteProduct delegates to DeleteFn.
func (s CatalogFacadeStub) DeleteProduct(id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(id)
	}
	return nil
}

// RestoreProduct delegates to RestoreFn.
func (s CatalogFacadeStub) RestoreProduct(id string) (model.Product, error) {
	if s.RestoreFn != nil {
		if err := s.RestoreFn(id); err != nil {
			return model.Product{}, err
		}
	}
	return model.Product{ID: id}, nil
}

// Services returns visible services unless withDeleted is set.
func (s CatalogFacadeStub) Services(withDeleted bool) []model.Service {
	result := make([]model.Service, 0, len(s.ServiceList))
	for _, svc := range s.ServiceList {
		if svc.DeletedAt == nil || withDeleted {
			result = append(result, svc)
		}
	}
	return result
}

// Service delegates to ServiceFn.
func (s CatalogFacadeStub) Service(id string) (model.Service, error) {
	if s.ServiceFn != nil {
		return s.ServiceFn(id)
	}
	return model.Service{ID: id}, nil
}

// CreateService delegates to CreateServiceFn or echoes the name.
func (s CatalogFacadeStub) CreateService(in model.ServiceInput) (model.Service, error) {
	if s.CreateServiceFn != nil {
		return s.CreateServiceFn(in)
	}
	return model.Service{ID: "svc_new", Name: in.Name}, nil
}

// UpdateService delegates to UpdateServiceFn.
func (s CatalogFacadeStub) UpdateService(id string, patch model.ServicePatch) (model.Service, error) {
	if s.UpdateServiceFn != nil {
		return s.UpdateServiceFn(id, patch)
	}
	return model.Service{ID: id}, nil
}

// DeleteService delegates to DeleteFn.
func (s CatalogFacadeStub) DeleteService(id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(id)
	}
	return nil
}

// RestoreService delegates to RestoreFn.
func (s CatalogFacadeStub) RestoreService(id string) (model.Service, error) {
	if s.RestoreFn != nil {
		if err := s.RestoreFn(id); err != nil {
			return model.Service{}, err
		}
	}
	return model.Service{ID: id}, nil
}

// UserFacadeStub provides controllable behaviour for user endpoints.
type UserFacadeStub struct {
	List       []model.User
	GetFn      func(id string) (model.User, error)
	StatusFn   func(id string, status model.UserStatus) (model.User, error)
	KYCFn      func(id string, status model.KYCStatus) (model.User, error)
	TimelineFn func(kind usecase.TimelineKind, userID, itemID string, entry model.TimelineEntry) (model.User, error)
}

// Users returns the configured list.
func (s UserFacadeStub) Users() []model.User {
	return s.List
}

// User delegates to GetFn.
func (s UserFacadeStub) User(id string) (model.User, error) {
	if s.GetFn != nil {
		return s.GetFn(id)
	}
	return model.User{ID: id}, nil
}

// SetUserStatus delegates to StatusFn or echoes the status.
func (s UserFacadeStub) SetUserStatus(id string, status model.UserStatus) (model.User, error) {
	if s.StatusFn != nil {
		return s.StatusFn(id, status)
	}
	return model.User{ID: id, Status: status}, nil
}

// UpdateKYCStatus delegates to KYCFn or echoes the status.
func (s UserFacadeStub) UpdateKYCStatus(id string, status model.KYCStatus) (model.User, error) {
	if s.KYCFn != nil {
		return s.KYCFn(id, status)
	}
	return model.User{ID: id, KYC: model.KYC{Status: status}}, nil
}

// AppendTimeline delegates to TimelineFn.
func (s UserFacadeStub) AppendTimeline(kind usecase.TimelineKind, userID, itemID string, entry model.TimelineEntry) (model.User, error) {
	if s.TimelineFn != nil {
		return s.TimelineFn(kind, userID, itemID, entry)
	}
	return model.User{ID: userID}, nil
}

// AdminFacadeStub combines the per-domain stubs.
type AdminFacadeStub struct {
	DashboardFacadeStub
	OrderFacadeStub
	AffiliateFacadeStub
	CouponFacadeStub
	NotificationFacadeStub
	CatalogFacadeStub
	UserFacadeStub
}
