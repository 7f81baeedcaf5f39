package store

import (
	"slices"
	"strings"
	"sync"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

// CouponStore owns coupon definitions. It accepts any values; form rules
// live in the calling layer.
type CouponStore struct {
	mu      sync.RWMutex
	seed    []model.Coupon
	coupons []model.Coupon
	opts    Options
}

// NewCouponStore creates a store initialised from seed.
func NewCouponStore(seed []model.Coupon, opts Options) *CouponStore {
	s := &CouponStore{seed: seed, opts: opts.withDefaults()}
	s.Reset()
	return s
}

// Reset restores the seed collection.
func (s *CouponStore) Reset() {
	coupons := make([]model.Coupon, 0, len(s.seed))
	for _, c := range s.seed {
		coupons = append(coupons, c.Clone())
	}

	s.mu.Lock()
	s.coupons = coupons
	s.mu.Unlock()
}

// List returns coupons, most recently added first.
func (s *CouponStore) List() []model.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Coupon, 0, len(s.coupons))
	for _, c := range s.coupons {
		result = append(result, c.Clone())
	}
	return result
}

// GetByID returns the coupon and whether it exists.
func (s *CouponStore) GetByID(id string) (model.Coupon, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.coupons[i].Clone(), true
	}
	return model.Coupon{}, false
}

// Add stores a new coupon with generated id and timestamps.
func (s *CouponStore) Add(in model.CouponInput) model.Coupon {
	now := s.opts.Now()
	c := model.Coupon{
		ID:                    s.opts.NewID(),
		Code:                  normalizeCode(in.Code),
		Description:           in.Description,
		DiscountType:          in.DiscountType,
		DiscountValue:         in.DiscountValue,
		MinOrderValue:         in.MinOrderValue,
		MaxDiscountCap:        in.MaxDiscountCap,
		UsageLimitTotal:       in.UsageLimitTotal,
		UsageLimitPerUser:     in.UsageLimitPerUser,
		UsedCount:             0,
		ApplicableRole:        in.ApplicableRole,
		ApplicableProductIDs:  in.ApplicableProductIDs,
		ApplicableCategoryIDs: in.ApplicableCategoryIDs,
		StartDate:             in.StartDate,
		ExpiryDate:            in.ExpiryDate,
		Status:                in.Status,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if c.ApplicableRole == "" {
		c.ApplicableRole = model.CouponRoleAll
	}
	if c.Status == "" {
		c.Status = model.CouponStatusActive
	}
	c = c.Clone()

	s.mu.Lock()
	s.coupons = append([]model.Coupon{c}, s.coupons...)
	s.opts.record(model.JournalStreamCoupon, c.ID, "coupon_created", map[string]any{"code": c.Code})
	s.mu.Unlock()

	return c.Clone()
}

// Update merges non-nil patch fields into the coupon.
func (s *CouponStore) Update(id string, patch model.CouponPatch) bool {
	return s.replace(id, "coupon_updated", func(c *model.Coupon) {
		if patch.Code != nil {
			c.Code = normalizeCode(*patch.Code)
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		if patch.DiscountType != nil {
			c.DiscountType = *patch.DiscountType
		}
		if patch.DiscountValue != nil {
			c.DiscountValue = *patch.DiscountValue
		}
		if patch.MinOrderValue != nil {
			c.MinOrderValue = *patch.MinOrderValue
		}
		if patch.MaxDiscountCap != nil {
			c.MaxDiscountCap = *patch.MaxDiscountCap
		}
		if patch.UsageLimitTotal != nil {
			c.UsageLimitTotal = *patch.UsageLimitTotal
		}
		if patch.UsageLimitPerUser != nil {
			c.UsageLimitPerUser = *patch.UsageLimitPerUser
		}
		if patch.ApplicableRole != nil {
			c.ApplicableRole = *patch.ApplicableRole
		}
		if patch.ApplicableProductIDs != nil {
			c.ApplicableProductIDs = *patch.ApplicableProductIDs
		}
		if patch.ApplicableCategoryIDs != nil {
			c.ApplicableCategoryIDs = *patch.ApplicableCategoryIDs
		}
		if patch.StartDate != nil {
			c.StartDate = *patch.StartDate
		}
		if patch.ExpiryDate != nil {
			c.ExpiryDate = *patch.ExpiryDate
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
	})
}

// ToggleStatus flips active and disabled.
func (s *CouponStore) ToggleStatus(id string) bool {
	return s.replace(id, "coupon_toggled", func(c *model.Coupon) {
		if c.Status == model.CouponStatusActive {
			c.Status = model.CouponStatusDisabled
		} else {
			c.Status = model.CouponStatusActive
		}
	})
}

// Delete removes the coupon permanently.
func (s *CouponStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	code := s.coupons[i].Code
	s.coupons = slices.Delete(s.coupons, i, i+1)
	s.opts.record(model.JournalStreamCoupon, id, "coupon_deleted", map[string]any{"code": code})
	return true
}

func (s *CouponStore) replace(id, kind string, mutate func(*model.Coupon)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	next := s.coupons[i].Clone()
	mutate(&next)
	next = next.Clone()
	next.UpdatedAt = s.opts.touch(next.UpdatedAt)
	s.coupons[i] = next

	s.opts.record(model.JournalStreamCoupon, id, kind, map[string]any{"code": next.Code, "status": string(next.Status)})
	return true
}

func (s *CouponStore) indexOf(id string) int {
	return slices.IndexFunc(s.coupons, func(c model.Coupon) bool { return c.ID == id })
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
