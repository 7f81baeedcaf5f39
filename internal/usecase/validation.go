package usecase

import (
	"slices"
	"sort"
	"strings"
	"time"

	domainErrors "github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/errors"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

// ValidationMode selects create or edit rules for coupon forms.
type ValidationMode int

const (
	ModeCreate ValidationMode = iota
	ModeEdit
)

// FieldErrors maps a form field to its message.
type FieldErrors map[string]string

// ValidationError reports form field failures. It matches ErrInvalidInput.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid input: " + strings.Join(fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return domainErrors.ErrInvalidInput
}

// ValidateCoupon checks coupon form values and returns failures keyed by field.
// An empty map means the input is acceptable.
func ValidateCoupon(in model.CouponInput, mode ValidationMode, now time.Time) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(in.Code) == "" {
		errs["code"] = "Coupon code is required"
	}

	switch in.DiscountType {
	case model.DiscountPercentage:
		if in.DiscountValue <= 0 || in.DiscountValue > 100 {
			errs["discountValue"] = "Percentage must be greater than 0 and at most 100"
		}
	case model.DiscountFixed:
		if in.DiscountValue < 0 {
			errs["discountValue"] = "Discount value cannot be negative"
		}
	default:
		errs["discountType"] = "Discount type must be percentage or fixed"
	}

	if in.MinOrderValue < 0 {
		errs["minOrderValue"] = "Minimum order value cannot be negative"
	}
	if in.MaxDiscountCap != nil && *in.MaxDiscountCap < 0 {
		errs["maxDiscountCap"] = "Maximum discount cannot be negative"
	}
	if in.UsageLimitTotal != nil && *in.UsageLimitTotal < 0 {
		errs["usageLimitTotal"] = "Usage limit cannot be negative"
	}
	if in.UsageLimitPerUser != nil && *in.UsageLimitPerUser < 0 {
		errs["usageLimitPerUser"] = "Per-user limit cannot be negative"
	}

	if in.StartDate.IsZero() {
		errs["startDate"] = "Start date is required"
	}
	switch {
	case in.ExpiryDate.IsZero():
		errs["expiryDate"] = "Expiry date is required"
	case !in.StartDate.IsZero() && in.ExpiryDate.Before(in.StartDate):
		errs["expiryDate"] = "Expiry date must be on or after the start date"
	case mode == ModeCreate && model.EndOfDay(in.ExpiryDate).Before(now):
		errs["expiryDate"] = "Expiry date cannot be in the past"
	}

	if in.ApplicableRole != "" && !acceptedRole(in.ApplicableRole) {
		errs["applicableRole"] = "Applicable role is not supported"
	}
	if in.Status != "" && !in.Status.Valid() {
		errs["status"] = "Status must be active or disabled"
	}

	return errs
}

// acceptedRole reports whether role belongs to the record or the form role set.
func acceptedRole(role model.CouponRole) bool {
	return slices.Contains(model.RecordRoles, role) || slices.Contains(model.FormRoles, role)
}
