package store

import (
	"slices"
	"sync"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

// UserStore owns customer profiles.
type UserStore struct {
	mu    sync.RWMutex
	seed  []model.User
	users []model.User
	opts  Options
}

// NewUserStore creates a store initialised from seed.
func NewUserStore(seed []model.User, opts Options) *UserStore {
	s := &UserStore{seed: seed, opts: opts.withDefaults()}
	s.Reset()
	return s
}

// Reset restores the seed collection.
func (s *UserStore) Reset() {
	users := make([]model.User, 0, len(s.seed))
	for _, u := range s.seed {
		users = append(users, u.Clone())
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
}

// List returns all users in seed order.
func (s *UserStore) List() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		result = append(result, u.Clone())
	}
	return result
}

// GetByID returns the user and whether it exists.
func (s *UserStore) GetByID(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.users[i].Clone(), true
	}
	return model.User{}, false
}

// SetStatus blocks or unblocks an account.
func (s *UserStore) SetStatus(id string, status model.UserStatus) bool {
	return s.replace(id, "status_changed", func(u *model.User) (map[string]any, bool) {
		from := u.Status
		u.Status = status
		return map[string]any{"from": string(from), "to": string(status)}, true
	})
}

// UpdateKYCStatus sets the verification status of the user's documents.
func (s *UserStore) UpdateKYCStatus(id string, status model.KYCStatus) bool {
	return s.replace(id, "kyc_changed", func(u *model.User) (map[string]any, bool) {
		from := u.KYC.Status
		u.KYC.Status = status
		if status == model.KYCStatusPending && u.KYC.SubmittedAt == nil {
			now := s.opts.Now()
			u.KYC.SubmittedAt = &now
		}
		return map[string]any{"from": string(from), "to": string(status)}, true
	})
}

// AppendReturnTimeline appends entry to a return's timeline and moves the
// item to the entry status.
func (s *UserStore) AppendReturnTimeline(userID, itemID string, entry model.TimelineEntry) bool {
	return s.appendTimeline(userID, itemID, "return", entry, func(u *model.User) []model.UserOrderItem {
		return u.Returns
	})
}

// AppendExchangeTimeline appends entry to an exchange's timeline and moves
// the item to the entry status.
func (s *UserStore) AppendExchangeTimeline(userID, itemID string, entry model.TimelineEntry) bool {
	return s.appendTimeline(userID, itemID, "exchange", entry, func(u *model.User) []model.UserOrderItem {
		return u.Exchanges
	})
}

func (s *UserStore) appendTimeline(userID, itemID, kind string, entry model.TimelineEntry, items func(*model.User) []model.UserOrderItem) bool {
	if entry.Status == "" {
		return false
	}
	return s.replace(userID, kind+"_timeline", func(u *model.User) (map[string]any, bool) {
		list := items(u)
		i := slices.IndexFunc(list, func(it model.UserOrderItem) bool { return it.ID == itemID })
		if i < 0 {
			return nil, false
		}
		if entry.Date.IsZero() {
			entry.Date = s.opts.Now()
		}
		list[i].Timeline = append(list[i].Timeline, entry)
		list[i].Status = entry.Status
		return map[string]any{"itemId": itemID, "status": entry.Status, "note": entry.Note}, true
	})
}

// replace applies mutate to a copy of the user and stores it when mutate
// reports a change.
func (s *UserStore) replace(id, kind string, mutate func(*model.User) (map[string]any, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	next := s.users[i].Clone()
	payload, ok := mutate(&next)
	if !ok {
		return false
	}
	s.users[i] = next
	s.opts.record(model.JournalStreamUser, id, kind, payload)
	return true
}

func (s *UserStore) indexOf(id string) int {
	return slices.IndexFunc(s.users, func(u model.User) bool { return u.ID == id })
}
