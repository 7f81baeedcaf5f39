package store

import (
	"slices"
	"sync"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

// NotificationStore keeps the admin inbox, newest first.
type NotificationStore struct {
	mu            sync.RWMutex
	seed          []model.Notification
	notifications []model.Notification
	opts          Options
}

// NewNotificationStore creates a store initialised from seed.
func NewNotificationStore(seed []model.Notification, opts Options) *NotificationStore {
	s := &NotificationStore{seed: seed, opts: opts.withDefaults()}
	s.Reset()
	return s
}

// Reset restores the seed collection.
func (s *NotificationStore) Reset() {
	s.mu.Lock()
	s.notifications = slices.Clone(s.seed)
	s.mu.Unlock()
}

// Create prepends an unread notification.
func (s *NotificationStore) Create(in model.NotificationInput) model.Notification {
	n := model.Notification{
		ID:        s.opts.NewID(),
		Title:     in.Title,
		Message:   in.Message,
		Category:  in.Category,
		Link:      in.Link,
		CreatedAt: s.opts.Now(),
	}
	if n.Category == "" {
		n.Category = model.NotificationSystem
	}

	s.mu.Lock()
	s.notifications = append([]model.Notification{n}, s.notifications...)
	s.mu.Unlock()
	return n
}

// MarkAsRead marks one notification read.
func (s *NotificationStore) MarkAsRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.notifications, func(n model.Notification) bool { return n.ID == id })
	if i < 0 {
		return false
	}
	s.notifications[i].Read = true
	return true
}

// MarkAllAsRead marks every notification read and returns how many changed.
func (s *NotificationStore) MarkAllAsRead() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for i := range s.notifications {
		if !s.notifications[i].Read {
			s.notifications[i].Read = true
			changed++
		}
	}
	return changed
}

// Filter returns notifications matching criterion ("all", "unread" or a
// category) sorted by timestamp descending.
func (s *NotificationStore) Filter(criterion string) []model.Notification {
	s.mu.RLock()
	result := make([]model.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		switch criterion {
		case "", model.NotificationFilterAll:
		case model.NotificationFilterUnread:
			if n.Read {
				continue
			}
		default:
			if string(n.Category) != criterion {
				continue
			}
		}
		result = append(result, n)
	}
	s.mu.RUnlock()

	slices.SortStableFunc(result, func(a, b model.Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return result
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}
