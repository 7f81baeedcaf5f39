package usecase

import (
	"strings"

	domainErrors "github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/errors"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/repository"
)

// NotificationUseCase serves the admin inbox.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// Filter returns notifications matching criterion, newest first.
func (u *NotificationUseCase) Filter(criterion string) ([]model.Notification, error) {
	switch criterion {
	case "", model.NotificationFilterAll, model.NotificationFilterUnread:
	default:
		if !model.NotificationCategory(criterion).Valid() {
			return nil, domainErrors.ErrInvalidInput
		}
	}
	return u.notifications.Filter(criterion), nil
}

// UnreadCount returns the unread badge count.
func (u *NotificationUseCase) UnreadCount() int {
	return u.notifications.UnreadCount()
}

// Create posts a new unread notification.
func (u *NotificationUseCase) Create(in model.NotificationInput) (model.Notification, error) {
	errs := FieldErrors{}
	if strings.TrimSpace(in.Title) == "" {
		errs["title"] = "Title is required"
	}
	if in.Category != "" && !in.Category.Valid() {
		errs["category"] = "Unknown category"
	}
	if len(errs) > 0 {
		return model.Notification{}, &ValidationError{Fields: errs}
	}
	return u.notifications.Create(in), nil
}

// MarkAsRead marks one notification read.
func (u *NotificationUseCase) MarkAsRead(id string) error {
	if !u.notifications.MarkAsRead(id) {
		return domainErrors.ErrNotFound
	}
	return nil
}

// MarkAllAsRead marks everything read and returns how many changed.
func (u *NotificationUseCase) MarkAllAsRead() int {
	return u.notifications.MarkAllAsRead()
}
