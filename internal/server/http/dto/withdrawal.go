package dto

import (
	"time"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/view"
)

// WithdrawalUpdateRequest moves a withdrawal to a new status.
type WithdrawalUpdateRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// WithdrawalResponse is a single withdrawal with display helpers.
type WithdrawalResponse struct {
	model.Withdrawal
	AmountDisplay string           `json:"amountDisplay"`
	Badge         view.StatusBadge `json:"badge"`
}

// WithdrawalRowResponse is a withdrawal flattened with its affiliate.
type WithdrawalRowResponse struct {
	view.WithdrawalRow
	MaskedEmail   string           `json:"maskedEmail"`
	MaskedAccount string           `json:"maskedAccount"`
	AmountDisplay string           `json:"amountDisplay"`
	RequestedOn   string           `json:"requestedOn"`
	WalletDisplay string           `json:"walletDisplay"`
	Badge         view.StatusBadge `json:"badge"`
}

// NewWithdrawalResponse decorates w for display.
func NewWithdrawalResponse(w model.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		Withdrawal:    w,
		AmountDisplay: view.FormatCurrency(w.Amount),
		Badge:         view.Badge(w.Status),
	}
}

// NewWithdrawalRowResponses decorates rows for display in loc.
func NewWithdrawalRowResponses(rows []view.WithdrawalRow, loc *time.Location) []WithdrawalRowResponse {
	resp := make([]WithdrawalRowResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, WithdrawalRowResponse{
			WithdrawalRow: r,
			MaskedEmail:   view.MaskEmail(r.AffiliateEmail),
			MaskedAccount: view.MaskAccount(r.Withdrawal.Account),
			AmountDisplay: view.FormatCurrency(r.Withdrawal.Amount),
			RequestedOn:   view.FormatDateTime(r.Withdrawal.RequestedAt, loc),
			WalletDisplay: view.FormatCurrency(r.WalletBalance),
			Badge:         view.Badge(r.Withdrawal.Status),
		})
	}
	return resp
}
