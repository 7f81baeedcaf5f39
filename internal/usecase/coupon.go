package usecase

import (
	"time"

	domainErrors "github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/errors"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/repository"
)

// CouponUseCase validates coupon forms before they reach the store.
type CouponUseCase struct {
	coupons repository.CouponRepository
	now     func() time.Time
	newCode func() string
}

// NewCouponUseCase constructs CouponUseCase.
func NewCouponUseCase(coupons repository.CouponRepository) *CouponUseCase {
	return &CouponUseCase{coupons: coupons, now: time.Now, newCode: GenerateCouponCode}
}

// List returns all coupons.
func (u *CouponUseCase) List() []model.Coupon {
	return u.coupons.List()
}

// Get returns the coupon or ErrNotFound.
func (u *CouponUseCase) Get(id string) (model.Coupon, error) {
	c, ok := u.coupons.GetByID(id)
	if !ok {
		return model.Coupon{}, domainErrors.ErrNotFound
	}
	return c, nil
}

// Create validates in with create rules and stores it.
func (u *CouponUseCase) Create(in model.CouponInput) (model.Coupon, error) {
	if errs := ValidateCoupon(in, ModeCreate, u.now()); len(errs) > 0 {
		return model.Coupon{}, &ValidationError{Fields: errs}
	}
	return u.coupons.Add(in), nil
}

// Update validates the coupon as it would look after patch and applies it.
func (u *CouponUseCase) Update(id string, patch model.CouponPatch) (model.Coupon, error) {
	current, err := u.Get(id)
	if err != nil {
		return model.Coupon{}, err
	}
	merged := applyCouponPatch(inputOf(current), patch)
	if errs := ValidateCoupon(merged, ModeEdit, u.now()); len(errs) > 0 {
		return model.Coupon{}, &ValidationError{Fields: errs}
	}
	u.coupons.Update(id, patch)
	return u.Get(id)
}

// Toggle flips the coupon between active and disabled.
func (u *CouponUseCase) Toggle(id string) (model.Coupon, error) {
	if !u.coupons.ToggleStatus(id) {
		return model.Coupon{}, domainErrors.ErrNotFound
	}
	return u.Get(id)
}

// Delete removes the coupon.
func (u *CouponUseCase) Delete(id string) error {
	if !u.coupons.Delete(id) {
		return domainErrors.ErrNotFound
	}
	return nil
}

// GenerateCode proposes a fresh code that no stored coupon uses.
func (u *CouponUseCase) GenerateCode() string {
	taken := make(map[string]struct{})
	for _, c := range u.coupons.List() {
		taken[c.Code] = struct{}{}
	}
	for {
		code := u.newCode()
		if _, dup := taken[code]; !dup {
			return code
		}
	}
}

// Preview computes the discount the coupon would give on subtotal now.
// Inactive or expired coupons give zero.
func (u *CouponUseCase) Preview(id string, subtotal float64) (float64, error) {
	c, err := u.Get(id)
	if err != nil {
		return 0, err
	}
	if !c.ActiveAt(u.now()) {
		return 0, nil
	}
	return c.DiscountFor(subtotal), nil
}

func inputOf(c model.Coupon) model.CouponInput {
	return model.CouponInput{
		Code:                  c.Code,
		Description:           c.Description,
		DiscountType:          c.DiscountType,
		DiscountValue:         c.DiscountValue,
		MinOrderValue:         c.MinOrderValue,
		MaxDiscountCap:        c.MaxDiscountCap,
		UsageLimitTotal:       c.UsageLimitTotal,
		UsageLimitPerUser:     c.UsageLimitPerUser,
		ApplicableRole:        c.ApplicableRole,
		ApplicableProductIDs:  c.ApplicableProductIDs,
		ApplicableCategoryIDs: c.ApplicableCategoryIDs,
		StartDate:             c.StartDate,
		ExpiryDate:            c.ExpiryDate,
		Status:                c.Status,
	}
}

func applyCouponPatch(in model.CouponInput, p model.CouponPatch) model.CouponInput {
	if p.Code != nil {
		in.Code = *p.Code
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.DiscountType != nil {
		in.DiscountType = *p.DiscountType
	}
	if p.DiscountValue != nil {
		in.DiscountValue = *p.DiscountValue
	}
	if p.MinOrderValue != nil {
		in.MinOrderValue = *p.MinOrderValue
	}
	if p.MaxDiscountCap != nil {
		in.MaxDiscountCap = *p.MaxDiscountCap
	}
	if p.UsageLimitTotal != nil {
		in.UsageLimitTotal = *p.UsageLimitTotal
	}
	if p.UsageLimitPerUser != nil {
		in.UsageLimitPerUser = *p.UsageLimitPerUser
	}
	if p.ApplicableRole != nil {
		in.ApplicableRole = *p.ApplicableRole
	}
	if p.StartDate != nil {
		in.StartDate = *p.StartDate
	}
	if p.ExpiryDate != nil {
		in.ExpiryDate = *p.ExpiryDate
	}
	if p.Status != nil {
		in.Status = *p.Status
	}
	return in
}
