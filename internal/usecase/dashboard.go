package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/repository"
)

// DashboardSummary aggregates headline figures across stores.
type DashboardSummary struct {
	TotalOrders             int
	OrdersByStatus          map[model.OrderStatus]int
	Revenue                 float64
	PendingRefunds          int
	ActiveAffiliates        int
	PendingWithdrawals      int
	PendingWithdrawalAmount float64
	ActiveCoupons           int
	UnreadNotifications     int
	LowStockProducts        int
	OutOfStockProducts      int
	TotalUsers              int
	PendingKYC              int
}

// DashboardUseCase computes the dashboard summary.
type DashboardUseCase struct {
	orders        repository.OrderRepository
	affiliates    repository.AffiliateRepository
	coupons       repository.CouponRepository
	notifications repository.NotificationRepository
	products      repository.ProductRepository
	users         repository.UserRepository
	now           func() time.Time
}

// DashboardDeps lists the repositories the dashboard reads from.
type DashboardDeps struct {
	fx.In

	Orders        repository.OrderRepository
	Affiliates    repository.AffiliateRepository
	Coupons       repository.CouponRepository
	Notifications repository.NotificationRepository
	Products      repository.ProductRepository
	Users         repository.UserRepository
}

// NewDashboardUseCase constructs DashboardUseCase.
func NewDashboardUseCase(d DashboardDeps) *DashboardUseCase {
	return &DashboardUseCase{
		orders:        d.Orders,
		affiliates:    d.Affiliates,
		coupons:       d.Coupons,
		notifications: d.Notifications,
		products:      d.Products,
		users:         d.Users,
		now:           time.Now,
	}
}

// Summary reads every store once and aggregates the figures.
func (u *DashboardUseCase) Summary() DashboardSummary {
	s := DashboardSummary{OrdersByStatus: make(map[model.OrderStatus]int)}

	revenue := decimal.Zero
	for _, o := range u.orders.List() {
		s.TotalOrders++
		s.OrdersByStatus[o.OrderStatus]++
		if o.PaymentStatus == model.PaymentStatusPaid {
			revenue = revenue.Add(decimal.NewFromFloat(o.Total))
		}
		if o.RefundStatus == model.RefundStatusRequested {
			s.PendingRefunds++
		}
	}
	s.Revenue = revenue.Round(2).InexactFloat64()

	pending := decimal.Zero
	for _, a := range u.affiliates.List() {
		if a.Status == model.AffiliateStatusActive {
			s.ActiveAffiliates++
		}
		for _, w := range a.Withdrawals {
			if w.Status == model.WithdrawalStatusPending {
				s.PendingWithdrawals++
				pending = pending.Add(decimal.NewFromFloat(w.Amount))
			}
		}
	}
	s.PendingWithdrawalAmount = pending.Round(2).InexactFloat64()

	now := u.now()
	for _, c := range u.coupons.List() {
		if c.ActiveAt(now) {
			s.ActiveCoupons++
		}
	}

	s.UnreadNotifications = u.notifications.UnreadCount()

	for _, p := range u.products.List() {
		switch p.StockStatus {
		case model.StockStatusLowStock:
			s.LowStockProducts++
		case model.StockStatusOutOfStock:
			s.OutOfStockProducts++
		}
	}

	for _, usr := range u.users.List() {
		s.TotalUsers++
		if usr.KYC.Status == model.KYCStatusPending {
			s.PendingKYC++
		}
	}

	return s
}
