package store

import (
	"time"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	testhelpers "github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/test"
)

var baseTime = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

type harness struct {
	clock   *testhelpers.Clock
	journal *testhelpers.JournalSinkStub
	opts    Options
}

func newHarness() harness {
	clock := testhelpers.NewClock(baseTime)
	journal := &testhelpers.JournalSinkStub{}
	return harness{
		clock:   clock,
		journal: journal,
		opts: Options{
			Now:     clock.Now,
			NewID:   testhelpers.SequenceIDs("id"),
			Journal: journal,
		},
	}
}

func seedAffiliates() []model.Affiliate {
	return []model.Affiliate{{
		ID:             "aff_1",
		Name:           "Priya Sharma",
		Email:          "priya@example.com",
		ReferralCode:   "PRIYA10",
		WalletBalance:  7250,
		CommissionRate: 10,
		Status:         model.AffiliateStatusActive,
		JoinedAt:       baseTime.AddDate(0, -6, 0),
		CommissionLogs: []model.CommissionLog{{
			ID:          "log_seed",
			Date:        baseTime.AddDate(0, -1, 0),
			Type:        model.CommissionLogOrder,
			Description: "Commission for ORD-1001",
			Amount:      250,
			OrderID:     strPtr("ORD-1001"),
		}},
		Withdrawals: []model.Withdrawal{
			{ID: "wd_1", Amount: 3000, Method: "bank_transfer", RequestedAt: baseTime.AddDate(0, 0, -2), Status: model.WithdrawalStatusPending},
			{ID: "wd_2", Amount: 1500, Method: "upi", RequestedAt: baseTime.AddDate(0, 0, -1), Status: model.WithdrawalStatusPending},
		},
	}}
}

func seedOrders() []model.Order {
	return []model.Order{
		{
			ID:            "ORD-1001",
			Customer:      model.Customer{Name: "Anita Rao", Email: "anita@example.com"},
			Items:         []model.OrderLine{{ProductID: "p1", ProductName: "Serum", UnitPrice: 499.99, Quantity: 3}},
			Total:         1499.97,
			PaymentStatus: model.PaymentStatusPaid,
			OrderStatus:   model.OrderStatusDelivered,
			RefundStatus:  model.RefundStatusRequested,
			CreatedAt:     baseTime.AddDate(0, 0, -3),
		},
		{
			ID:            "ORD-1002",
			Customer:      model.Customer{Name: "Meera Iyer", Email: "meera@example.com"},
			Total:         899,
			PaymentStatus: model.PaymentStatusPending,
			OrderStatus:   model.OrderStatusPending,
			CreatedAt:     baseTime.AddDate(0, 0, -1),
		},
	}
}

func strPtr(v string) *string { return &v }
