package store

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

func seedNotifications() []model.Notification {
	return []model.Notification{
		{ID: "n1", Title: "New order", Category: model.NotificationOrder, CreatedAt: baseTime.Add(-3 * time.Hour)},
		{ID: "n2", Title: "Withdrawal requested", Category: model.NotificationWithdrawal, CreatedAt: baseTime.Add(-1 * time.Hour)},
		{ID: "n3", Title: "Coupon expiring", Category: model.NotificationCoupon, Read: true, CreatedAt: baseTime.Add(-2 * time.Hour)},
	}
}

func notificationIDs(list []model.Notification) []string {
	ids := make([]string, len(list))
	for i, n := range list {
		ids[i] = n.ID
	}
	return ids
}

func TestNotificationStoreFilter(t *testing.T) {
	s := NewNotificationStore(seedNotifications(), newHarness().opts)

	tests := []struct {
		criterion string
		want      []string
	}{
		{criterion: model.NotificationFilterAll, want: []string{"n2", "n3", "n1"}},
		{criterion: "", want: []string{"n2", "n3", "n1"}},
		{criterion: model.NotificationFilterUnread, want: []string{"n2", "n1"}},
		{criterion: string(model.NotificationCoupon), want: []string{"n3"}},
		{criterion: string(model.NotificationUser), want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.criterion, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, notificationIDs(s.Filter(tt.criterion))); diff != "" {
				t.Fatalf("unexpected ids (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNotificationStoreCreatePrepends(t *testing.T) {
	s := NewNotificationStore(seedNotifications(), newHarness().opts)

	n := s.Create(model.NotificationInput{Title: "KYC submitted", Message: "Review documents", Category: model.NotificationUser})
	if n.Read || n.ID == "" || !n.CreatedAt.Equal(baseTime) {
		t.Fatalf("unexpected notification: %+v", n)
	}
	unread := s.Filter(model.NotificationFilterUnread)
	if unread[0].ID != n.ID {
		t.Fatalf("expected new notification first, got %s", unread[0].ID)
	}
	if s.UnreadCount() != 3 {
		t.Fatalf("expected 3 unread, got %d", s.UnreadCount())
	}

	sys := s.Create(model.NotificationInput{Title: "Backup done"})
	if sys.Category != model.NotificationSystem {
		t.Fatalf("expected system category, got %s", sys.Category)
	}
}

func TestNotificationStoreMarkAsRead(t *testing.T) {
	s := NewNotificationStore(seedNotifications(), newHarness().opts)

	if !s.MarkAsRead("n1") {
		t.Fatalf("expected mark to apply")
	}
	if s.MarkAsRead("missing") {
		t.Fatalf("expected missing id to be ignored")
	}
	if s.UnreadCount() != 1 {
		t.Fatalf("expected 1 unread, got %d", s.UnreadCount())
	}

	if changed := s.MarkAllAsRead(); changed != 1 {
		t.Fatalf("expected 1 changed, got %d", changed)
	}
	if len(s.Filter(model.NotificationFilterUnread)) != 0 {
		t.Fatalf("expected nothing unread")
	}

	s.Reset()
	if s.UnreadCount() != 2 {
		t.Fatalf("expected seed unread count after reset, got %d", s.UnreadCount())
	}
}
