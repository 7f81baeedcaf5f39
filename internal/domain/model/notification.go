package model

import "time"

// NotificationCategory groups notifications in the admin inbox.
type NotificationCategory string

const (
	NotificationOrder      NotificationCategory = "order"
	NotificationAffiliate  NotificationCategory = "affiliate"
	NotificationWithdrawal NotificationCategory = "withdrawal"
	NotificationCoupon     NotificationCategory = "coupon"
	NotificationUser       NotificationCategory = "user"
	NotificationSystem     NotificationCategory = "system"
)

// Inbox filter criteria besides a category name.
const (
	NotificationFilterAll    = "all"
	NotificationFilterUnread = "unread"
)

// Notification is an admin inbox message.
type Notification struct {
	ID        string               `json:"id" yaml:"id"`
	Title     string               `json:"title" yaml:"title"`
	Message   string               `json:"message" yaml:"message"`
	Category  NotificationCategory `json:"category" yaml:"category"`
	Read      bool                 `json:"read" yaml:"read"`
	Link      string               `json:"link,omitempty" yaml:"link"`
	CreatedAt time.Time            `json:"createdAt" yaml:"createdAt"`
}

// NotificationInput is the payload for a new notification.
type NotificationInput struct {
	Title    string
	Message  string
	Category NotificationCategory
	Link     string
}
