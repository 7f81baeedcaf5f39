package store

import (
	"testing"
	"time"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

func seedUsers() []model.User {
	return []model.User{{
		ID:     "u1",
		Name:   "Kavya Nair",
		Email:  "kavya@example.com",
		Status: model.UserStatusActive,
		KYC:    model.KYC{Status: model.KYCStatusNotSubmitted},
		Returns: []model.UserOrderItem{{
			ID:       "ret_1",
			OrderID:  "ORD-1001",
			Status:   "requested",
			Timeline: []model.TimelineEntry{{Status: "requested", Date: baseTime.AddDate(0, 0, -1)}},
		}},
		Exchanges: []model.UserOrderItem{{ID: "exc_1", OrderID: "ORD-1002", Status: "requested"}},
	}}
}

func TestUserStoreStatusAndKYC(t *testing.T) {
	h := newHarness()
	s := NewUserStore(seedUsers(), h.opts)

	s.SetStatus("u1", model.UserStatusBlocked)
	s.UpdateKYCStatus("u1", model.KYCStatusPending)

	u, _ := s.GetByID("u1")
	if u.Status != model.UserStatusBlocked {
		t.Fatalf("expected blocked, got %s", u.Status)
	}
	if u.KYC.Status != model.KYCStatusPending || u.KYC.SubmittedAt == nil {
		t.Fatalf("unexpected kyc: %+v", u.KYC)
	}
	if s.SetStatus("missing", model.UserStatusBlocked) {
		t.Fatalf("expected missing user to be ignored")
	}
}

func TestUserStoreAppendReturnTimeline(t *testing.T) {
	h := newHarness()
	s := NewUserStore(seedUsers(), h.opts)

	h.clock.Advance(time.Hour)
	if !s.AppendReturnTimeline("u1", "ret_1", model.TimelineEntry{Status: "picked_up", Note: "Courier collected"}) {
		t.Fatalf("expected append to apply")
	}

	u, _ := s.GetByID("u1")
	item := u.Returns[0]
	if item.Status != "picked_up" {
		t.Fatalf("expected current status picked_up, got %s", item.Status)
	}
	if len(item.Timeline) != 2 {
		t.Fatalf("expected 2 timeline entries, got %d", len(item.Timeline))
	}
	if item.Timeline[0].Status != "requested" || !item.Timeline[1].Date.Equal(baseTime.Add(time.Hour)) {
		t.Fatalf("unexpected timeline: %+v", item.Timeline)
	}

	if s.AppendReturnTimeline("u1", "exc_1", model.TimelineEntry{Status: "x"}) {
		t.Fatalf("expected exchange id to be unknown among returns")
	}
	if s.AppendReturnTimeline("u1", "ret_1", model.TimelineEntry{}) {
		t.Fatalf("expected empty status to be ignored")
	}
}

func TestUserStoreAppendExchangeTimeline(t *testing.T) {
	s := NewUserStore(seedUsers(), newHarness().opts)

	s.AppendExchangeTimeline("u1", "exc_1", model.TimelineEntry{Status: "approved"})
	u, _ := s.GetByID("u1")
	if u.Exchanges[0].Status != "approved" || len(u.Exchanges[0].Timeline) != 1 {
		t.Fatalf("unexpected exchange: %+v", u.Exchanges[0])
	}

	s.Reset()
	u, _ = s.GetByID("u1")
	if len(u.Exchanges[0].Timeline) != 0 {
		t.Fatalf("expected reset to drop timeline, got %+v", u.Exchanges[0].Timeline)
	}
}
