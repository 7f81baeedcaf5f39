package view

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

func TestBadge(t *testing.T) {
	tests := []struct {
		name string
		got  StatusBadge
		want StatusBadge
	}{
		{name: "order delivered", got: Badge(model.OrderStatusDelivered), want: StatusBadge{Label: "Delivered", Class: classSuccess}},
		{name: "payment failed", got: Badge(model.PaymentStatusFailed), want: StatusBadge{Label: "Failed", Class: classDanger}},
		{name: "withdrawal pending", got: Badge(model.WithdrawalStatusPending), want: StatusBadge{Label: "Pending", Class: classWarning}},
		{name: "stock low", got: Badge(model.StockStatusLowStock), want: StatusBadge{Label: "Low Stock", Class: classWarning}},
		{name: "kyc not submitted", got: Badge(model.KYCStatusNotSubmitted), want: StatusBadge{Label: "Not Submitted", Class: classMuted}},
		{name: "refund approved", got: Badge(model.RefundStatusApproved), want: StatusBadge{Label: "Approved", Class: classSuccess}},
		{name: "order refunded", got: Badge(model.OrderStatusRefunded), want: StatusBadge{Label: "Refunded", Class: classAccent}},
		{name: "mixed case", got: Badge(" Shipped "), want: StatusBadge{Label: "Shipped", Class: classInfo}},
		{name: "empty", got: Badge(""), want: StatusBadge{Label: "Unknown", Class: classMuted}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Fatalf("unexpected badge (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{7250, "₹7,250.00"},
		{-3000, "-₹3,000.00"},
		{0, "₹0.00"},
		{1234567.891, "₹12,34,567.89"},
		{100000, "₹1,00,000.00"},
		{-250000.5, "-₹2,50,000.50"},
		{99999, "₹99,999.00"},
		{99.999, "₹100.00"},
		{-0.001, "₹0.00"},
		{math.NaN(), "₹0.00"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Fatalf("FormatCurrency(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFormatDates(t *testing.T) {
	ts := time.Date(2024, 3, 9, 18, 20, 0, 0, time.UTC)

	if got := FormatDate(ts, time.UTC); got != "09 Mar 2024" {
		t.Fatalf("expected 09 Mar 2024, got %q", got)
	}
	if got := FormatDateTime(ts, time.UTC); got != "09 Mar 2024, 06:20 PM" {
		t.Fatalf("expected 09 Mar 2024, 06:20 PM, got %q", got)
	}
	ist := time.FixedZone("IST", 5*3600+1800)
	if got := FormatDateTime(ts, ist); got != "09 Mar 2024, 11:50 PM" {
		t.Fatalf("expected IST conversion, got %q", got)
	}
	if got := FormatDate(time.Time{}, nil); got != "-" {
		t.Fatalf("expected dash for zero time, got %q", got)
	}
	if got := FormatOptionalDate(nil, nil); got != "-" {
		t.Fatalf("expected dash for nil, got %q", got)
	}
	if got := FormatOptionalDate(&ts, nil); got != "09 Mar 2024" {
		t.Fatalf("expected formatted optional date, got %q", got)
	}
}

func TestMasking(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "email", got: MaskEmail("priya.sharma@example.com"), want: "pr**********@example.com"},
		{name: "short email", got: MaskEmail("ab@example.com"), want: "a*@example.com"},
		{name: "invalid email", got: MaskEmail("nobody"), want: "******"},
		{name: "phone", got: MaskPhone("+91 98765 43210"), want: "+** ***** *3210"},
		{name: "short phone", got: MaskPhone("123"), want: "123"},
		{name: "account", got: MaskAccount("1234 5678 9012"), want: "********9012"},
		{name: "short account", got: MaskAccount("12-34"), want: "1234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, tt.got)
			}
		})
	}
}

func TestWithdrawalRows(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	affiliates := []model.Affiliate{
		{
			ID: "a1", Name: "Priya", Email: "priya@example.com", ReferralCode: "PRIYA10", WalletBalance: 7250,
			Withdrawals: []model.Withdrawal{
				{ID: "w1", Amount: 3000, RequestedAt: base.AddDate(0, 0, 1), Status: model.WithdrawalStatusPending},
				{ID: "w2", Amount: 500, RequestedAt: base, Status: model.WithdrawalStatusPaid},
			},
		},
		{
			ID: "a2", Name: "Arjun",
			Withdrawals: []model.Withdrawal{
				{ID: "w3", Amount: 1500, RequestedAt: base.AddDate(0, 0, 3), Status: model.WithdrawalStatusPending},
			},
		},
	}

	ids := func(rows []WithdrawalRow) []string {
		out := make([]string, len(rows))
		for i, r := range rows {
			out[i] = r.Withdrawal.ID
		}
		return out
	}

	if diff := cmp.Diff([]string{"w3", "w1", "w2"}, ids(WithdrawalRows(affiliates, "all"))); diff != "" {
		t.Fatalf("unexpected rows (-want +got):\n%s", diff)
	}
	pending := WithdrawalRows(affiliates, string(model.WithdrawalStatusPending))
	if diff := cmp.Diff([]string{"w3", "w1"}, ids(pending)); diff != "" {
		t.Fatalf("unexpected pending rows (-want +got):\n%s", diff)
	}
	if pending[1].AffiliateName != "Priya" || pending[1].WalletBalance != 7250 {
		t.Fatalf("expected affiliate identity on row, got %+v", pending[1])
	}
	if rows := WithdrawalRows(affiliates, "rejected"); len(rows) != 0 {
		t.Fatalf("expected no rejected rows, got %d", len(rows))
	}
}
