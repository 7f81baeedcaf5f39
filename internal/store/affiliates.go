package store

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

// DefaultAdjustmentReason describes a wallet adjustment submitted without a reason.
const DefaultAdjustmentReason = "Manual adjustment"

// AffiliateStore owns affiliates together with their commission ledger and
// withdrawals. Every wallet balance change appends exactly one ledger entry
// inside the same critical section.
type AffiliateStore struct {
	mu         sync.RWMutex
	seed       []model.Affiliate
	affiliates []model.Affiliate
	opts       Options
}

// NewAffiliateStore creates a store initialised from seed.
func NewAffiliateStore(seed []model.Affiliate, opts Options) *AffiliateStore {
	s := &AffiliateStore{seed: seed, opts: opts.withDefaults()}
	s.Reset()
	return s
}

// Reset restores the seed collection.
func (s *AffiliateStore) Reset() {
	affiliates := make([]model.Affiliate, 0, len(s.seed))
	for _, a := range s.seed {
		affiliates = append(affiliates, a.Clone())
	}

	s.mu.Lock()
	s.affiliates = affiliates
	s.mu.Unlock()
}

// List returns all affiliates in seed order.
func (s *AffiliateStore) List() []model.Affiliate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Affiliate, 0, len(s.affiliates))
	for _, a := range s.affiliates {
		result = append(result, a.Clone())
	}
	return result
}

// GetByID returns the affiliate and whether it exists.
func (s *AffiliateStore) GetByID(id string) (model.Affiliate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.affiliates[i].Clone(), true
	}
	return model.Affiliate{}, false
}

// FindByReferralCode looks up an affiliate by referral code, ignoring case.
func (s *AffiliateStore) FindByReferralCode(code string) (model.Affiliate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.affiliates {
		if strings.EqualFold(a.ReferralCode, strings.TrimSpace(code)) {
			return a.Clone(), true
		}
	}
	return model.Affiliate{}, false
}

// FindCommissionLog returns the first ledger entry referencing orderID and
// the affiliate that owns it.
func (s *AffiliateStore) FindCommissionLog(orderID string) (model.CommissionLog, model.Affiliate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.affiliates {
		for _, l := range a.CommissionLogs {
			if l.OrderID != nil && *l.OrderID == orderID {
				id := *l.OrderID
				l.OrderID = &id
				return l, a.Clone(), true
			}
		}
	}
	return model.CommissionLog{}, model.Affiliate{}, false
}

// SetStatus changes the affiliate status unconditionally.
func (s *AffiliateStore) SetStatus(id string, status model.AffiliateStatus) bool {
	return s.replace(id, func(a *model.Affiliate) bool {
		from := a.Status
		a.Status = status
		s.opts.record(model.JournalStreamAffiliate, id, "status_changed", map[string]any{"from": string(from), "to": string(status)})
		return true
	})
}

// UpdateCommissionRate stores rate clamped to [0, 100]; non-finite input becomes 0.
func (s *AffiliateStore) UpdateCommissionRate(id string, rate float64) bool {
	rate = ClampCommissionRate(rate)
	return s.replace(id, func(a *model.Affiliate) bool {
		a.CommissionRate = rate
		s.opts.record(model.JournalStreamAffiliate, id, "commission_rate_changed", map[string]any{"rate": rate})
		return true
	})
}

// AdjustWallet adds a signed amount to the wallet and logs a manual adjustment.
// Zero and non-finite amounts are ignored.
func (s *AffiliateStore) AdjustWallet(id string, amount float64, reason string) bool {
	if amount == 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultAdjustmentReason
	}

	return s.replace(id, func(a *model.Affiliate) bool {
		a.WalletBalance += amount
		s.appendLog(a, model.CommissionLog{
			Type:        model.CommissionLogAdjustment,
			Description: reason,
			Amount:      amount,
		})
		return true
	})
}

// UpdateWithdrawalStatus moves a withdrawal along pending→approved→paid or
// pending→rejected. Any other request, including a repeat of the current
// status, leaves the affiliate unchanged and returns false.
func (s *AffiliateStore) UpdateWithdrawalStatus(affiliateID, withdrawalID string, target model.WithdrawalStatus, notes string) bool {
	notes = strings.TrimSpace(notes)
	return s.replace(affiliateID, func(a *model.Affiliate) bool {
		wi := slices.IndexFunc(a.Withdrawals, func(w model.Withdrawal) bool { return w.ID == withdrawalID })
		if wi < 0 {
			return false
		}
		w := a.Withdrawals[wi]
		if !w.CanTransition(target) {
			return false
		}

		now := s.opts.Now()
		var action model.AuditAction
		switch target {
		case model.WithdrawalStatusApproved:
			action = model.AuditActionApproved
			w.ProcessedAt = &now
			a.WalletBalance = math.Max(0, a.WalletBalance-w.Amount)
			s.appendLog(a, model.CommissionLog{
				Type:        model.CommissionLogWithdrawal,
				Description: fmt.Sprintf("Withdrawal %s approved", w.ID),
				Amount:      -w.Amount,
			})
		case model.WithdrawalStatusRejected:
			action = model.AuditActionRejected
			w.ProcessedAt = &now
		case model.WithdrawalStatusPaid:
			action = model.AuditActionMarkedPaid
			w.PaidAt = &now
		}

		w.Status = target
		if notes != "" {
			w.Notes = notes
		}
		event := model.WithdrawalAuditEvent{Date: now, Action: action, Notes: notes}
		w.AuditEvents = append(w.AuditEvents, event)
		a.Withdrawals[wi] = w

		s.opts.record(model.JournalStreamAffiliate, a.ID, "withdrawal_audit", map[string]any{
			"withdrawalId": w.ID,
			"action":       string(action),
			"amount":       w.Amount,
			"notes":        notes,
		})
		return true
	})
}

// appendLog stamps and appends a ledger entry and mirrors it to the journal.
func (s *AffiliateStore) appendLog(a *model.Affiliate, entry model.CommissionLog) {
	entry.ID = "log_" + s.opts.NewID()
	entry.Date = s.opts.Now()
	a.CommissionLogs = append(a.CommissionLogs, entry)

	payload := map[string]any{
		"logId":       entry.ID,
		"type":        string(entry.Type),
		"description": entry.Description,
		"amount":      entry.Amount,
		"balance":     a.WalletBalance,
	}
	if entry.OrderID != nil {
		payload["orderId"] = *entry.OrderID
	}
	s.opts.record(model.JournalStreamAffiliate, a.ID, "commission_log", payload)
}

// replace applies mutate to a copy of the affiliate and stores it only when
// mutate reports a change.
func (s *AffiliateStore) replace(id string, mutate func(*model.Affiliate) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	next := s.affiliates[i].Clone()
	if !mutate(&next) {
		return false
	}
	s.affiliates[i] = next
	return true
}

func (s *AffiliateStore) indexOf(id string) int {
	return slices.IndexFunc(s.affiliates, func(a model.Affiliate) bool { return a.ID == id })
}

// ClampCommissionRate bounds a commission percentage to [0, 100].
func ClampCommissionRate(rate float64) float64 {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0
	}
	return math.Min(100, math.Max(0, rate))
}
