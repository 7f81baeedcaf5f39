package dto

import "github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"

// NotificationRequest creates an inbox message.
type NotificationRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Link     string `json:"link"`
}

// ToInput converts the request.
func (r NotificationRequest) ToInput() model.NotificationInput {
	return model.NotificationInput{
		Title:    r.Title,
		Message:  r.Message,
		Category: model.NotificationCategory(r.Category),
		Link:     r.Link,
	}
}

// NotificationListResponse is a filtered inbox with the unread badge count.
type NotificationListResponse struct {
	Items       []model.Notification `json:"items"`
	UnreadCount int                  `json:"unreadCount"`
}

// MarkAllResponse reports how many notifications changed.
type MarkAllResponse struct {
	Updated int `json:"updated"`
}
