package model

import "time"

// WithdrawalStatus describes payout request lifecycle.
// Rejected and paid are terminal.
type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
	WithdrawalStatusPaid     WithdrawalStatus = "paid"
)

// AuditAction names an admin decision recorded on a withdrawal.
type AuditAction string

const (
	AuditActionApproved   AuditAction = "approved"
	AuditActionRejected   AuditAction = "rejected"
	AuditActionMarkedPaid AuditAction = "marked_paid"
)

// WithdrawalAuditEvent records one transition of a withdrawal.
type WithdrawalAuditEvent struct {
	Date   time.Time   `json:"date" yaml:"date"`
	Action AuditAction `json:"action" yaml:"action"`
	Notes  string      `json:"notes,omitempty" yaml:"notes"`
}

// Withdrawal represents an affiliate request to cash out wallet balance.
type Withdrawal struct {
	ID          string                 `json:"id" yaml:"id"`
	Amount      float64                `json:"amount" yaml:"amount"`
	Method      string                 `json:"method" yaml:"method"`
	Account     string                 `json:"account,omitempty" yaml:"account"`
	RequestedAt time.Time              `json:"requestedAt" yaml:"requestedAt"`
	ProcessedAt *time.Time             `json:"processedAt,omitempty" yaml:"processedAt"`
	PaidAt      *time.Time             `json:"paidAt,omitempty" yaml:"paidAt"`
	Status      WithdrawalStatus       `json:"status" yaml:"status"`
	Notes       string                 `json:"notes,omitempty" yaml:"notes"`
	AuditEvents []WithdrawalAuditEvent `json:"auditEvents" yaml:"auditEvents"`
}

// Clone returns a deep copy of the withdrawal.
func (w Withdrawal) Clone() Withdrawal {
	w.ProcessedAt = cloneTime(w.ProcessedAt)
	w.PaidAt = cloneTime(w.PaidAt)
	w.AuditEvents = append([]WithdrawalAuditEvent(nil), w.AuditEvents...)
	return w
}

// CanTransition reports whether the withdrawal may move to target.
func (w Withdrawal) CanTransition(target WithdrawalStatus) bool {
	if w.Status == target {
		return false
	}
	switch target {
	case WithdrawalStatusApproved, WithdrawalStatusRejected:
		return w.Status == WithdrawalStatusPending
	case WithdrawalStatusPaid:
		return w.Status == WithdrawalStatusApproved
	default:
		return false
	}
}
