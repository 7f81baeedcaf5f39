package dto

import (
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/usecase"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/view"
)

// DashboardResponse carries headline figures.
type DashboardResponse struct {
	TotalOrders             int                       `json:"totalOrders"`
	OrdersByStatus          map[model.OrderStatus]int `json:"ordersByStatus"`
	Revenue                 float64                   `json:"revenue"`
	RevenueDisplay          string                    `json:"revenueDisplay"`
	PendingRefunds          int                       `json:"pendingRefunds"`
	ActiveAffiliates        int                       `json:"activeAffiliates"`
	PendingWithdrawals      int                       `json:"pendingWithdrawals"`
	PendingWithdrawalAmount float64                   `json:"pendingWithdrawalAmount"`
	PendingWithdrawalLabel  string                    `json:"pendingWithdrawalDisplay"`
	ActiveCoupons           int                       `json:"activeCoupons"`
	UnreadNotifications     int                       `json:"unreadNotifications"`
	LowStockProducts        int                       `json:"lowStockProducts"`
	OutOfStockProducts      int                       `json:"outOfStockProducts"`
	TotalUsers              int                       `json:"totalUsers"`
	PendingKYC              int                       `json:"pendingKyc"`
}

// NewDashboardResponse converts the summary.
func NewDashboardResponse(s usecase.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		TotalOrders:             s.TotalOrders,
		OrdersByStatus:          s.OrdersByStatus,
		Revenue:                 s.Revenue,
		RevenueDisplay:          view.FormatCurrency(s.Revenue),
		PendingRefunds:          s.PendingRefunds,
		ActiveAffiliates:        s.ActiveAffiliates,
		PendingWithdrawals:      s.PendingWithdrawals,
		PendingWithdrawalAmount: s.PendingWithdrawalAmount,
		PendingWithdrawalLabel:  view.FormatCurrency(s.PendingWithdrawalAmount),
		ActiveCoupons:           s.ActiveCoupons,
		UnreadNotifications:     s.UnreadNotifications,
		LowStockProducts:        s.LowStockProducts,
		OutOfStockProducts:      s.OutOfStockProducts,
		TotalUsers:              s.TotalUsers,
		PendingKYC:              s.PendingKYC,
	}
}
