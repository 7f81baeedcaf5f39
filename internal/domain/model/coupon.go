package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType selects how DiscountValue is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// CouponStatus toggles coupon availability.
type CouponStatus string

const (
	CouponStatusActive   CouponStatus = "active"
	CouponStatusDisabled CouponStatus = "disabled"
)

// CouponRole restricts which audience may redeem a coupon.
type CouponRole string

// Roles declared by the coupon record.
const (
	CouponRoleAll        CouponRole = "all"
	CouponRoleGuest      CouponRole = "guest"
	CouponRoleRegistered CouponRole = "registered"
	CouponRoleAffiliate  CouponRole = "affiliate"
)

// Roles offered by the coupon form. CouponFormRoleCustomers has no
// counterpart among the record roles.
const (
	CouponFormRoleAll       CouponRole = "all"
	CouponFormRoleCustomers CouponRole = "customers"
	CouponFormRoleAffiliate CouponRole = "affiliate"
)

// RecordRoles lists audiences declared by the coupon record.
var RecordRoles = []CouponRole{CouponRoleAll, CouponRoleGuest, CouponRoleRegistered, CouponRoleAffiliate}

// FormRoles lists audiences offered by the coupon form.
var FormRoles = []CouponRole{CouponFormRoleAll, CouponFormRoleCustomers, CouponFormRoleAffiliate}

// Coupon is a discount code definition. UsedCount is display-only.
type Coupon struct {
	ID                    string       `json:"id" yaml:"id"`
	Code                  string       `json:"code" yaml:"code"`
	Description           string       `json:"description,omitempty" yaml:"description"`
	DiscountType          DiscountType `json:"discountType" yaml:"discountType"`
	DiscountValue         float64      `json:"discountValue" yaml:"discountValue"`
	MinOrderValue         float64      `json:"minOrderValue" yaml:"minOrderValue"`
	MaxDiscountCap        *float64     `json:"maxDiscountCap" yaml:"maxDiscountCap"`
	UsageLimitTotal       *int         `json:"usageLimitTotal" yaml:"usageLimitTotal"`
	UsageLimitPerUser     *int         `json:"usageLimitPerUser" yaml:"usageLimitPerUser"`
	UsedCount             int          `json:"usedCount" yaml:"usedCount"`
	ApplicableRole        CouponRole   `json:"applicableRole" yaml:"applicableRole"`
	ApplicableProductIDs  []string     `json:"applicableProductIds" yaml:"applicableProductIds"`
	ApplicableCategoryIDs []string     `json:"applicableCategoryIds" yaml:"applicableCategoryIds"`
	StartDate             time.Time    `json:"startDate" yaml:"startDate"`
	ExpiryDate            time.Time    `json:"expiryDate" yaml:"expiryDate"`
	Status                CouponStatus `json:"status" yaml:"status"`
	CreatedAt             time.Time    `json:"createdAt" yaml:"createdAt"`
	UpdatedAt             time.Time    `json:"updatedAt" yaml:"updatedAt"`
}

// CouponInput carries form values for a new coupon.
type CouponInput struct {
	Code                  string
	Description           string
	DiscountType          DiscountType
	DiscountValue         float64
	MinOrderValue         float64
	MaxDiscountCap        *float64
	UsageLimitTotal       *int
	UsageLimitPerUser     *int
	ApplicableRole        CouponRole
	ApplicableProductIDs  []string
	ApplicableCategoryIDs []string
	StartDate             time.Time
	ExpiryDate            time.Time
	Status                CouponStatus
}

// CouponPatch holds partial coupon changes; nil fields are left untouched.
type CouponPatch struct {
	Code                  *string
	Description           *string
	DiscountType          *DiscountType
	DiscountValue         *float64
	MinOrderValue         *float64
	MaxDiscountCap        **float64
	UsageLimitTotal       **int
	UsageLimitPerUser     **int
	ApplicableRole        *CouponRole
	ApplicableProductIDs  *[]string
	ApplicableCategoryIDs *[]string
	StartDate             *time.Time
	ExpiryDate            *time.Time
	Status                *CouponStatus
}

// Clone returns a deep copy of the coupon.
func (c Coupon) Clone() Coupon {
	if c.MaxDiscountCap != nil {
		v := *c.MaxDiscountCap
		c.MaxDiscountCap = &v
	}
	if c.UsageLimitTotal != nil {
		v := *c.UsageLimitTotal
		c.UsageLimitTotal = &v
	}
	if c.UsageLimitPerUser != nil {
		v := *c.UsageLimitPerUser
		c.UsageLimitPerUser = &v
	}
	c.ApplicableProductIDs = append([]string{}, c.ApplicableProductIDs...)
	c.ApplicableCategoryIDs = append([]string{}, c.ApplicableCategoryIDs...)
	return c
}

// EndOfDay returns the last second of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}

// ActiveAt reports whether the coupon is enabled and inside its validity window.
func (c Coupon) ActiveAt(t time.Time) bool {
	if c.Status != CouponStatusActive {
		return false
	}
	return !t.Before(c.StartDate) && !t.After(c.ExpiryDate)
}

// DiscountFor previews the discount granted on an order subtotal.
// Non-finite subtotals grant nothing.
func (c Coupon) DiscountFor(subtotal float64) float64 {
	if math.IsNaN(subtotal) || math.IsInf(subtotal, 0) {
		return 0
	}
	if subtotal <= 0 || subtotal < c.MinOrderValue {
		return 0
	}
	total := decimal.NewFromFloat(subtotal)
	var discount decimal.Decimal
	switch c.DiscountType {
	case DiscountPercentage:
		discount = total.Mul(decimal.NewFromFloat(c.DiscountValue)).Div(decimal.NewFromInt(100))
		if c.MaxDiscountCap != nil {
			discount = decimal.Min(discount, decimal.NewFromFloat(*c.MaxDiscountCap))
		}
	case DiscountFixed:
		discount = decimal.NewFromFloat(c.DiscountValue)
	default:
		return 0
	}
	discount = decimal.Min(discount, total)
	return discount.Round(2).InexactFloat64()
}
