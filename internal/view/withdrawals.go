package view

import (
	"slices"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

// WithdrawalRow is a withdrawal flattened with its affiliate's identity.
type WithdrawalRow struct {
	AffiliateID    string           `json:"affiliateId"`
	AffiliateName  string           `json:"affiliateName"`
	AffiliateEmail string           `json:"affiliateEmail"`
	ReferralCode   string           `json:"referralCode"`
	WalletBalance  float64          `json:"walletBalance"`
	Withdrawal     model.Withdrawal `json:"withdrawal"`
}

// WithdrawalRows flattens withdrawals across affiliates, keeping those in
// statusFilter ("" or "all" keeps everything), newest request first.
func WithdrawalRows(affiliates []model.Affiliate, statusFilter string) []WithdrawalRow {
	rows := make([]WithdrawalRow, 0)
	for _, a := range affiliates {
		for _, w := range a.Withdrawals {
			if statusFilter != "" && statusFilter != "all" && string(w.Status) != statusFilter {
				continue
			}
			rows = append(rows, WithdrawalRow{
				AffiliateID:    a.ID,
				AffiliateName:  a.Name,
				AffiliateEmail: a.Email,
				ReferralCode:   a.ReferralCode,
				WalletBalance:  a.WalletBalance,
				Withdrawal:     w.Clone(),
			})
		}
	}
	slices.SortStableFunc(rows, func(x, y WithdrawalRow) int {
		return y.Withdrawal.RequestedAt.Compare(x.Withdrawal.RequestedAt)
	})
	return rows
}
