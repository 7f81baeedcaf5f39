package model

import "slices"

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	return oneOf(s, OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned, OrderStatusRefunded)
}

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	return oneOf(s, PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded)
}

// Valid reports whether s is a known affiliate status.
func (s AffiliateStatus) Valid() bool {
	return oneOf(s, AffiliateStatusActive, AffiliateStatusBlocked)
}

// Valid reports whether s is a known withdrawal status.
func (s WithdrawalStatus) Valid() bool {
	return oneOf(s, WithdrawalStatusPending, WithdrawalStatusApproved, WithdrawalStatusRejected, WithdrawalStatusPaid)
}

// Valid reports whether s is a known user status.
func (s UserStatus) Valid() bool {
	return oneOf(s, UserStatusActive, UserStatusBlocked)
}

// Valid reports whether s is a known KYC status.
func (s KYCStatus) Valid() bool {
	return oneOf(s, KYCStatusNotSubmitted, KYCStatusPending, KYCStatusVerified)
}

// Valid reports whether s is a known catalog status.
func (s CatalogStatus) Valid() bool {
	return oneOf(s, CatalogStatusActive, CatalogStatusInactive)
}

// Valid reports whether s is a known stock tier.
func (s StockStatus) Valid() bool {
	return oneOf(s, StockStatusInStock, StockStatusLowStock, StockStatusOutOfStock)
}

// Valid reports whether t is a known discount type.
func (t DiscountType) Valid() bool {
	return oneOf(t, DiscountPercentage, DiscountFixed)
}

// Valid reports whether s is a known coupon status.
func (s CouponStatus) Valid() bool {
	return oneOf(s, CouponStatusActive, CouponStatusDisabled)
}

// Valid reports whether c is a known notification category.
func (c NotificationCategory) Valid() bool {
	return oneOf(c, NotificationOrder, NotificationAffiliate, NotificationWithdrawal, NotificationCoupon, NotificationUser, NotificationSystem)
}

func oneOf[T comparable](v T, allowed ...T) bool {
	return slices.Contains(allowed, v)
}
