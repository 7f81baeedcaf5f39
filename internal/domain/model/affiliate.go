package model

import "time"

// AffiliateStatus controls whether an affiliate may earn commission.
type AffiliateStatus string

const (
	AffiliateStatusActive  AffiliateStatus = "active"
	AffiliateStatusBlocked AffiliateStatus = "blocked"
)

// CommissionLogType classifies a ledger entry.
type CommissionLogType string

const (
	CommissionLogOrder      CommissionLogType = "order_commission"
	CommissionLogAdjustment CommissionLogType = "manual_adjustment"
	CommissionLogWithdrawal CommissionLogType = "withdrawal"
)

// CommissionLog is an append-only ledger entry with a signed amount.
type CommissionLog struct {
	ID          string            `json:"id" yaml:"id"`
	Date        time.Time         `json:"date" yaml:"date"`
	Type        CommissionLogType `json:"type" yaml:"type"`
	Description string            `json:"description" yaml:"description"`
	Amount      float64           `json:"amount" yaml:"amount"`
	OrderID     *string           `json:"orderId,omitempty" yaml:"orderId"`
}

// Affiliate is a referral partner. TotalReferrals, TotalOrders and
// TotalCommission are stored counters and are not derived from the ledger.
type Affiliate struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Email           string          `json:"email" yaml:"email"`
	Phone           string          `json:"phone" yaml:"phone"`
	ReferralCode    string          `json:"referralCode" yaml:"referralCode"`
	TotalReferrals  int             `json:"totalReferrals" yaml:"totalReferrals"`
	TotalOrders     int             `json:"totalOrders" yaml:"totalOrders"`
	TotalCommission float64         `json:"totalCommission" yaml:"totalCommission"`
	WalletBalance   float64         `json:"walletBalance" yaml:"walletBalance"`
	CommissionRate  float64         `json:"commissionRate" yaml:"commissionRate"`
	Status          AffiliateStatus `json:"status" yaml:"status"`
	JoinedAt        time.Time       `json:"joinedAt" yaml:"joinedAt"`
	CommissionLogs  []CommissionLog `json:"commissionLogs" yaml:"commissionLogs"`
	Withdrawals     []Withdrawal    `json:"withdrawals" yaml:"withdrawals"`
}

// Clone returns a deep copy of the affiliate including ledger and withdrawals.
func (a Affiliate) Clone() Affiliate {
	logs := make([]CommissionLog, len(a.CommissionLogs))
	for i, l := range a.CommissionLogs {
		l.OrderID = cloneString(l.OrderID)
		logs[i] = l
	}
	a.CommissionLogs = logs

	withdrawals := make([]Withdrawal, len(a.Withdrawals))
	for i, w := range a.Withdrawals {
		withdrawals[i] = w.Clone()
	}
	a.Withdrawals = withdrawals
	return a
}
