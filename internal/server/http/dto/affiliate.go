package dto

// CommissionRateRequest sets the affiliate commission percentage.
type CommissionRateRequest struct {
	CommissionRate *float64 `json:"commissionRate" binding:"required"`
}

// WalletAdjustmentRequest credits (positive) or debits (negative) a wallet.
type WalletAdjustmentRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
	Reason string   `json:"reason"`
}
