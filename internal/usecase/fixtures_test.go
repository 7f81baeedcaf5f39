package usecase

import (
	"time"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/store"
	testhelpers "github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/test"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func storeOptions() store.Options {
	return store.Options{
		Now:     testhelpers.NewClock(now).Now,
		NewID:   testhelpers.SequenceIDs("id"),
		Journal: &testhelpers.JournalSinkStub{},
	}
}

func floatPtr(v float64) *float64 { return &v }

func validCoupon() model.CouponInput {
	return model.CouponInput{
		Code:          "SAVE20",
		DiscountType:  model.DiscountPercentage,
		DiscountValue: 20,
		StartDate:     now,
		ExpiryDate:    now.AddDate(0, 1, 0),
	}
}

func orderFixtures() []model.Order {
	return []model.Order{
		{ID: "ORD-1", Total: 1000, PaymentStatus: model.PaymentStatusPaid, OrderStatus: model.OrderStatusDelivered, RefundStatus: model.RefundStatusRequested, CreatedAt: now.Add(-2 * time.Hour), AffiliateCode: "PRIYA10"},
		{ID: "ORD-2", Total: 250.5, PaymentStatus: model.PaymentStatusPaid, OrderStatus: model.OrderStatusShipped, CreatedAt: now.Add(-time.Hour)},
		{ID: "ORD-3", Total: 400, PaymentStatus: model.PaymentStatusPending, OrderStatus: model.OrderStatusPending, CreatedAt: now},
		{ID: "ORD-X", Total: 0, PaymentStatus: model.PaymentStatusFailed, OrderStatus: model.OrderStatusCancelled, CreatedAt: now.Add(-3 * time.Hour)},
	}
}

func affiliateFixtures() []model.Affiliate {
	orderID := "ORD-1"
	return []model.Affiliate{
		{
			ID: "aff_1", Name: "Priya", ReferralCode: "PRIYA10", WalletBalance: 7250, Status: model.AffiliateStatusActive,
			CommissionLogs: []model.CommissionLog{{ID: "log_1", Type: model.CommissionLogOrder, Amount: 100, OrderID: &orderID}},
			Withdrawals: []model.Withdrawal{
				{ID: "wd_1", Amount: 3000, RequestedAt: now.Add(-48 * time.Hour), Status: model.WithdrawalStatusPending},
				{ID: "wd_2", Amount: 1500, RequestedAt: now.Add(-24 * time.Hour), Status: model.WithdrawalStatusPending},
			},
		},
		{ID: "aff_2", Name: "Arjun", Status: model.AffiliateStatusBlocked},
	}
}
