package app

import (
	"go.uber.org/fx"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/usecase"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/view"
)

// AdminFacade exposes every admin operation to the HTTP layer.
type AdminFacade struct {
	orders        *usecase.OrderUseCase
	affiliates    *usecase.AffiliateUseCase
	coupons       *usecase.CouponUseCase
	notifications *usecase.NotificationUseCase
	catalog       *usecase.CatalogUseCase
	users         *usecase.UserUseCase
	dashboard     *usecase.DashboardUseCase
}

// FacadeParams lists the use cases aggregated by AdminFacade.
type FacadeParams struct {
	fx.In

	Orders        *usecase.OrderUseCase
	Affiliates    *usecase.AffiliateUseCase
	Coupons       *usecase.CouponUseCase
	Notifications *usecase.NotificationUseCase
	Catalog       *usecase.CatalogUseCase
	Users         *usecase.UserUseCase
	Dashboard     *usecase.DashboardUseCase
}

// NewAdminFacade constructs AdminFacade.
func NewAdminFacade(p FacadeParams) *AdminFacade {
	return &AdminFacade{
		orders:        p.Orders,
		affiliates:    p.Affiliates,
		coupons:       p.Coupons,
		notifications: p.Notifications,
		catalog:       p.Catalog,
		users:         p.Users,
		dashboard:     p.Dashboard,
	}
}

func (f *AdminFacade) Dashboard() usecase.DashboardSummary {
	return f.dashboard.Summary()
}

// --- orders ---

func (f *AdminFacade) Orders(status string) ([]model.Order, error) {
	return f.orders.List(status)
}

func (f *AdminFacade) OrderDetails(id string) (usecase.OrderDetails, error) {
	return f.orders.Details(id)
}

func (f *AdminFacade) UpdateOrderStatus(id string, status model.OrderStatus) (model.Order, error) {
	return f.orders.UpdateStatus(id, status)
}

func (f *AdminFacade) UpdatePaymentStatus(id string, status model.PaymentStatus) (model.Order, error) {
	return f.orders.UpdatePaymentStatus(id, status)
}

func (f *AdminFacade) ApproveRefund(id string) (model.Order, error) {
	return f.orders.ApproveRefund(id)
}

func (f *AdminFacade) RejectRefund(id string) (model.Order, error) {
	return f.orders.RejectRefund(id)
}

func (f *AdminFacade) UpdateTracking(id, number, url string) (model.Order, error) {
	return f.orders.UpdateTracking(id, number, url)
}

// --- affiliates ---

func (f *AdminFacade) Affiliates() []model.Affiliate {
	return f.affiliates.List()
}

func (f *AdminFacade) Affiliate(id string) (model.Affiliate, error) {
	return f.affiliates.Get(id)
}

func (f *AdminFacade) SetAffiliateStatus(id string, status model.AffiliateStatus) (model.Affiliate, error) {
	return f.affiliates.SetStatus(id, status)
}

func (f *AdminFacade) UpdateCommissionRate(id string, rate float64) (model.Affiliate, error) {
	return f.affiliates.UpdateCommissionRate(id, rate)
}

func (f *AdminFacade) AdjustWallet(id string, amount float64, reason string) (model.Affiliate, error) {
	return f.affiliates.AdjustWallet(id, amount, reason)
}

func (f *AdminFacade) UpdateWithdrawal(affiliateID, withdrawalID string, target model.WithdrawalStatus, notes string) (model.Withdrawal, error) {
	return f.affiliates.UpdateWithdrawal(affiliateID, withdrawalID, target, notes)
}

func (f *AdminFacade) Withdrawals(status string) ([]view.WithdrawalRow, error) {
	return f.affiliates.Withdrawals(status)
}

// --- coupons ---

func (f *AdminFacade) Coupons() []model.Coupon {
	return f.coupons.List()
}

func (f *AdminFacade) Coupon(id string) (model.Coupon, error) {
	return f.coupons.Get(id)
}

func (f *AdminFacade) CreateCoupon(in model.CouponInput) (model.Coupon, error) {
	return f.coupons.Create(in)
}

func (f *AdminFacade) UpdateCoupon(id string, patch model.CouponPatch) (model.Coupon, error) {
	return f.coupons.Update(id, patch)
}

func (f *AdminFacade) ToggleCoupon(id string) (model.Coupon, error) {
	return f.coupons.Toggle(id)
}

func (f *AdminFacade) DeleteCoupon(id string) error {
	return f.coupons.Delete(id)
}

func (f *AdminFacade) GenerateCouponCode() string {
	return f.coupons.GenerateCode()
}

func (f *AdminFacade) PreviewCoupon(id string, subtotal float64) (float64, error) {
	return f.coupons.Preview(id, subtotal)
}

// --- notifications ---

func (f *AdminFacade) Notifications(filter string) ([]model.Notification, error) {
	return f.notifications.Filter(filter)
}

func (f *AdminFacade) UnreadNotifications() int {
	return f.notifications.UnreadCount()
}

func (f *AdminFacade) CreateNotification(in model.NotificationInput) (model.Notification, error) {
	return f.notifications.Create(in)
}

func (f *AdminFacade) MarkNotificationRead(id string) error {
	return f.notifications.MarkAsRead(id)
}

func (f *AdminFacade) MarkAllNotificationsRead() int {
	return f.notifications.MarkAllAsRead()
}

// --- catalog ---

func (f *AdminFacade) Products(withDeleted bool) []model.Product {
	return f.catalog.Products(withDeleted)
}

func (f *AdminFacade) Product(id string) (model.Product, error) {
	return f.catalog.Product(id)
}

func (f *AdminFacade) CreateProduct(in model.ProductInput) (model.Product, error) {
	return f.catalog.CreateProduct(in)
}

func (f *AdminFacade) UpdateProduct(id string, patch model.ProductPatch) (model.Product, error) {
	return f.catalog.UpdateProduct(id, patch)
}

func (f *AdminFacade) DeleteProduct(id string) error {
	return f.catalog.DeleteProduct(id)
}

func (f *AdminFacade) RestoreProduct(id string) (model.Product, error) {
	return f.catalog.RestoreProduct(id)
}

func (f *AdminFacade) Services(withDeleted bool) []model.Service {
	return f.catalog.Services(withDeleted)
}

func (f *AdminFacade) Service(id string) (model.Service, error) {
	return f.catalog.Service(id)
}

func (f *AdminFacade) CreateService(in model.ServiceInput) (model.Service, error) {
	return f.catalog.CreateService(in)
}

func (f *AdminFacade) UpdateService(id string, patch model.ServicePatch) (model.Service, error) {
	return f.catalog.UpdateService(id, patch)
}

func (f *AdminFacade) DeleteService(id string) error {
	return f.catalog.DeleteService(id)
}

func (f *AdminFacade) RestoreService(id string) (model.Service, error) {
	return f.catalog.RestoreService(id)
}

// --- users ---

func (f *AdminFacade) Users() []model.User {
	return f.users.List()
}

func (f *AdminFacade) User(id string) (model.User, error) {
	return f.users.Get(id)
}

func (f *AdminFacade) SetUserStatus(id string, status model.UserStatus) (model.User, error) {
	return f.users.SetStatus(id, status)
}

func (f *AdminFacade) UpdateKYCStatus(id string, status model.KYCStatus) (model.User, error) {
	return f.users.UpdateKYCStatus(id, status)
}

func (f *AdminFacade) AppendTimeline(kind usecase.TimelineKind, userID, itemID string, entry model.TimelineEntry) (model.User, error) {
	return f.users.AppendTimeline(kind, userID, itemID, entry)
}
