package usecase

import (
	"errors"
	"testing"

	domainErrors "github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/errors"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/store"
)

func newAffiliateUseCase() *AffiliateUseCase {
	return NewAffiliateUseCase(store.NewAffiliateStore(affiliateFixtures(), storeOptions()))
}

func TestAffiliateUseCaseUpdateWithdrawal(t *testing.T) {
	uc := newAffiliateUseCase()

	w, err := uc.UpdateWithdrawal("aff_1", "wd_1", model.WithdrawalStatusApproved, "ok")
	if err != nil || w.Status != model.WithdrawalStatusApproved {
		t.Fatalf("unexpected approval: %+v %v", w, err)
	}
	a, _ := uc.Get("aff_1")
	if a.WalletBalance != 4250 {
		t.Fatalf("expected wallet 4250, got %v", a.WalletBalance)
	}

	w, err = uc.UpdateWithdrawal("aff_1", "wd_1", model.WithdrawalStatusApproved, "again")
	if err != nil {
		t.Fatalf("expected illegal transition without error, got %v", err)
	}
	if w.Status != model.WithdrawalStatusApproved || len(w.AuditEvents) != 1 {
		t.Fatalf("expected unchanged withdrawal, got %+v", w)
	}

	if _, err := uc.UpdateWithdrawal("aff_1", "wd_9", model.WithdrawalStatusPaid, ""); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := uc.UpdateWithdrawal("aff_1", "wd_2", "marked_paid", ""); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}

func TestAffiliateUseCaseWithdrawals(t *testing.T) {
	uc := newAffiliateUseCase()

	rows, err := uc.Withdrawals("pending")
	if err != nil || len(rows) != 2 || rows[0].Withdrawal.ID != "wd_2" {
		t.Fatalf("unexpected rows: %+v %v", rows, err)
	}
	if _, err := uc.Withdrawals("lost"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}

func TestAffiliateUseCaseAdministration(t *testing.T) {
	uc := newAffiliateUseCase()

	a, err := uc.UpdateCommissionRate("aff_1", 150)
	if err != nil || a.CommissionRate != 100 {
		t.Fatalf("expected clamped rate, got %+v %v", a.CommissionRate, err)
	}

	a, err = uc.AdjustWallet("aff_1", 0, "")
	if err != nil || a.WalletBalance != 7250 {
		t.Fatalf("expected zero adjustment ignored, got %v %v", a.WalletBalance, err)
	}
	a, _ = uc.AdjustWallet("aff_1", -250, "Chargeback")
	if a.WalletBalance != 7000 {
		t.Fatalf("expected 7000, got %v", a.WalletBalance)
	}

	if _, err := uc.SetStatus("aff_2", "paused"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
	a, err = uc.SetStatus("aff_2", model.AffiliateStatusActive)
	if err != nil || a.Status != model.AffiliateStatusActive {
		t.Fatalf("unexpected status change: %+v %v", a, err)
	}
	if _, err := uc.AdjustWallet("missing", 10, ""); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
