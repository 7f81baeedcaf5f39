package dto

import (
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/view"
)

// CouponRequest is the coupon form. For PATCH only present keys are
// applied; null clears the nullable limits.
type CouponRequest struct {
	Code                  *string           `json:"code"`
	Description           *string           `json:"description"`
	DiscountType          *string           `json:"discountType"`
	DiscountValue         *float64          `json:"discountValue"`
	MinOrderValue         *float64          `json:"minOrderValue"`
	MaxDiscountCap        Optional[float64] `json:"maxDiscountCap"`
	UsageLimitTotal       Optional[int]     `json:"usageLimitTotal"`
	UsageLimitPerUser     Optional[int]     `json:"usageLimitPerUser"`
	ApplicableRole        *string           `json:"applicableRole"`
	ApplicableProductIDs  *[]string         `json:"applicableProductIds"`
	ApplicableCategoryIDs *[]string         `json:"applicableCategoryIds"`
	StartDate             *Date             `json:"startDate"`
	ExpiryDate            *Date             `json:"expiryDate"`
	Status                *string           `json:"status"`
}

// ToInput converts the form for creation; absent fields take zero values.
func (r CouponRequest) ToInput() model.CouponInput {
	in := model.CouponInput{
		Code:              deref(r.Code),
		Description:       deref(r.Description),
		DiscountType:      model.DiscountType(deref(r.DiscountType)),
		DiscountValue:     deref(r.DiscountValue),
		MinOrderValue:     deref(r.MinOrderValue),
		MaxDiscountCap:    r.MaxDiscountCap.Value,
		UsageLimitTotal:   r.UsageLimitTotal.Value,
		UsageLimitPerUser: r.UsageLimitPerUser.Value,
		ApplicableRole:    model.CouponRole(deref(r.ApplicableRole)),
		Status:            model.CouponStatus(deref(r.Status)),
	}
	if r.ApplicableProductIDs != nil {
		in.ApplicableProductIDs = *r.ApplicableProductIDs
	}
	if r.ApplicableCategoryIDs != nil {
		in.ApplicableCategoryIDs = *r.ApplicableCategoryIDs
	}
	if r.StartDate != nil {
		in.StartDate = r.StartDate.Time
	}
	if r.ExpiryDate != nil {
		in.ExpiryDate = r.ExpiryDate.inclusive()
	}
	return in
}

// ToPatch converts the form into a partial update.
func (r CouponRequest) ToPatch() model.CouponPatch {
	return model.CouponPatch{
		Code:                  r.Code,
		Description:           r.Description,
		DiscountType:          convert[string, model.DiscountType](r.DiscountType),
		DiscountValue:         r.DiscountValue,
		MinOrderValue:         r.MinOrderValue,
		MaxDiscountCap:        r.MaxDiscountCap.patch(),
		UsageLimitTotal:       r.UsageLimitTotal.patch(),
		UsageLimitPerUser:     r.UsageLimitPerUser.patch(),
		ApplicableRole:        convert[string, model.CouponRole](r.ApplicableRole),
		ApplicableProductIDs:  r.ApplicableProductIDs,
		ApplicableCategoryIDs: r.ApplicableCategoryIDs,
		StartDate:             datePtr(r.StartDate),
		ExpiryDate:            expiryPtr(r.ExpiryDate),
		Status:                convert[string, model.CouponStatus](r.Status),
	}
}

// CouponResponse is a coupon with display helpers.
type CouponResponse struct {
	model.Coupon
	Badge view.StatusBadge `json:"badge"`
}

// NewCouponResponse decorates c for display.
func NewCouponResponse(c model.Coupon) CouponResponse {
	return CouponResponse{Coupon: c, Badge: view.Badge(c.Status)}
}

// NewCouponResponses decorates every coupon.
func NewCouponResponses(coupons []model.Coupon) []CouponResponse {
	resp := make([]CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		resp = append(resp, NewCouponResponse(c))
	}
	return resp
}

// CodeResponse carries a generated coupon code.
type CodeResponse struct {
	Code string `json:"code"`
}

// PreviewResponse is the discount a coupon grants on a subtotal.
type PreviewResponse struct {
	CouponID        string  `json:"couponId"`
	Subtotal        float64 `json:"subtotal"`
	Discount        float64 `json:"discount"`
	DiscountDisplay string  `json:"discountDisplay"`
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func convert[From ~string, To ~string](p *From) *To {
	if p == nil {
		return nil
	}
	v := To(*p)
	return &v
}
