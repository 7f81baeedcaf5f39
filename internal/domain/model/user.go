package model

import "time"

// UserStatus controls whether a customer account may sign in.
type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

// KYCStatus tracks identity verification progress.
type KYCStatus string

const (
	KYCStatusNotSubmitted KYCStatus = "not_submitted"
	KYCStatusPending      KYCStatus = "pending"
	KYCStatusVerified     KYCStatus = "verified"
)

// KYC holds identity verification documents.
type KYC struct {
	Status           KYCStatus  `json:"status" yaml:"status"`
	DocumentType     string     `json:"documentType,omitempty" yaml:"documentType"`
	DocumentFrontURL string     `json:"documentFrontUrl,omitempty" yaml:"documentFrontUrl"`
	DocumentBackURL  string     `json:"documentBackUrl,omitempty" yaml:"documentBackUrl"`
	SelfieURL        string     `json:"selfieUrl,omitempty" yaml:"selfieUrl"`
	SubmittedAt      *time.Time `json:"submittedAt,omitempty" yaml:"submittedAt"`
}

// TimelineEntry is one append-only step of a return or exchange.
type TimelineEntry struct {
	Status string    `json:"status" yaml:"status"`
	Date   time.Time `json:"date" yaml:"date"`
	Note   string    `json:"note,omitempty" yaml:"note"`
}

// UserOrderItem is a denormalized order line shown on a customer profile.
type UserOrderItem struct {
	ID          string          `json:"id" yaml:"id"`
	OrderID     string          `json:"orderId" yaml:"orderId"`
	ProductName string          `json:"productName" yaml:"productName"`
	Image       string          `json:"image,omitempty" yaml:"image"`
	Price       float64         `json:"price" yaml:"price"`
	Quantity    int             `json:"quantity" yaml:"quantity"`
	Date        time.Time       `json:"date" yaml:"date"`
	Status      string          `json:"status,omitempty" yaml:"status"`
	Reason      string          `json:"reason,omitempty" yaml:"reason"`
	Timeline    []TimelineEntry `json:"timeline,omitempty" yaml:"timeline"`
}

// User is a registered customer profile with order-derived sublists.
type User struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	Email         string          `json:"email" yaml:"email"`
	Phone         string          `json:"phone" yaml:"phone"`
	Avatar        string          `json:"avatar,omitempty" yaml:"avatar"`
	Address       string          `json:"address,omitempty" yaml:"address"`
	Role          string          `json:"role" yaml:"role"`
	Status        UserStatus      `json:"status" yaml:"status"`
	JoinedAt      time.Time       `json:"joinedAt" yaml:"joinedAt"`
	KYC           KYC             `json:"kyc" yaml:"kyc"`
	Purchases     []UserOrderItem `json:"purchases" yaml:"purchases"`
	Returns       []UserOrderItem `json:"returns" yaml:"returns"`
	Cancellations []UserOrderItem `json:"cancellations" yaml:"cancellations"`
	Refunds       []UserOrderItem `json:"refunds" yaml:"refunds"`
	Exchanges     []UserOrderItem `json:"exchanges" yaml:"exchanges"`
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	u.KYC.SubmittedAt = cloneTime(u.KYC.SubmittedAt)
	u.Purchases = cloneItems(u.Purchases)
	u.Returns = cloneItems(u.Returns)
	u.Cancellations = cloneItems(u.Cancellations)
	u.Refunds = cloneItems(u.Refunds)
	u.Exchanges = cloneItems(u.Exchanges)
	return u
}

func cloneItems(items []UserOrderItem) []UserOrderItem {
	out := make([]UserOrderItem, len(items))
	for i, it := range items {
		it.Timeline = append([]TimelineEntry(nil), it.Timeline...)
		out[i] = it
	}
	return out
}
