package usecase

import (
	domainErrors "github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/errors"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/repository"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/view"
)

// AffiliateUseCase covers affiliate administration and withdrawal review.
type AffiliateUseCase struct {
	affiliates repository.AffiliateRepository
}

// NewAffiliateUseCase constructs AffiliateUseCase.
func NewAffiliateUseCase(affiliates repository.AffiliateRepository) *AffiliateUseCase {
	return &AffiliateUseCase{affiliates: affiliates}
}

// List returns all affiliates.
func (u *AffiliateUseCase) List() []model.Affiliate {
	return u.affiliates.List()
}

// Get returns the affiliate or ErrNotFound.
func (u *AffiliateUseCase) Get(id string) (model.Affiliate, error) {
	a, ok := u.affiliates.GetByID(id)
	if !ok {
		return model.Affiliate{}, domainErrors.ErrNotFound
	}
	return a, nil
}

// SetStatus blocks or activates the affiliate.
func (u *AffiliateUseCase) SetStatus(id string, status model.AffiliateStatus) (model.Affiliate, error) {
	if !status.Valid() {
		return model.Affiliate{}, domainErrors.ErrInvalidStatus
	}
	if !u.affiliates.SetStatus(id, status) {
		return model.Affiliate{}, domainErrors.ErrNotFound
	}
	return u.Get(id)
}

// UpdateCommissionRate stores the clamped commission rate.
func (u *AffiliateUseCase) UpdateCommissionRate(id string, rate float64) (model.Affiliate, error) {
	if !u.affiliates.UpdateCommissionRate(id, rate) {
		return model.Affiliate{}, domainErrors.ErrNotFound
	}
	return u.Get(id)
}

// AdjustWallet applies a signed manual adjustment. Zero and non-finite
// amounts leave the affiliate unchanged.
func (u *AffiliateUseCase) AdjustWallet(id string, amount float64, reason string) (model.Affiliate, error) {
	a, err := u.Get(id)
	if err != nil {
		return model.Affiliate{}, err
	}
	if !u.affiliates.AdjustWallet(id, amount, reason) {
		return a, nil
	}
	return u.Get(id)
}

// UpdateWithdrawal moves a withdrawal to target. Illegal transitions return
// the withdrawal unchanged without an error.
func (u *AffiliateUseCase) UpdateWithdrawal(affiliateID, withdrawalID string, target model.WithdrawalStatus, notes string) (model.Withdrawal, error) {
	if !target.Valid() {
		return model.Withdrawal{}, domainErrors.ErrInvalidStatus
	}
	if _, err := u.withdrawal(affiliateID, withdrawalID); err != nil {
		return model.Withdrawal{}, err
	}
	u.affiliates.UpdateWithdrawalStatus(affiliateID, withdrawalID, target, notes)
	return u.withdrawal(affiliateID, withdrawalID)
}

// Withdrawals lists withdrawals across affiliates filtered by status.
func (u *AffiliateUseCase) Withdrawals(status string) ([]view.WithdrawalRow, error) {
	if status != "" && status != "all" && !model.WithdrawalStatus(status).Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	return view.WithdrawalRows(u.affiliates.List(), status), nil
}

func (u *AffiliateUseCase) withdrawal(affiliateID, withdrawalID string) (model.Withdrawal, error) {
	a, err := u.Get(affiliateID)
	if err != nil {
		return model.Withdrawal{}, err
	}
	for _, w := range a.Withdrawals {
		if w.ID == withdrawalID {
			return w, nil
		}
	}
	return model.Withdrawal{}, domainErrors.ErrNotFound
}
