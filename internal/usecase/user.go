package usecase

import (
	"strings"

	domainErrors "github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/errors"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/repository"
)

// TimelineKind selects the user sublist a timeline entry belongs to.
type TimelineKind string

const (
	TimelineReturn   TimelineKind = "returns"
	TimelineExchange TimelineKind = "exchanges"
)

// UserUseCase manages customer accounts.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List returns all users.
func (u *UserUseCase) List() []model.User {
	return u.users.List()
}

// Get returns the user or ErrNotFound.
func (u *UserUseCase) Get(id string) (model.User, error) {
	user, ok := u.users.GetByID(id)
	if !ok {
		return model.User{}, domainErrors.ErrNotFound
	}
	return user, nil
}

// SetStatus blocks or activates the account.
func (u *UserUseCase) SetStatus(id string, status model.UserStatus) (model.User, error) {
	if !status.Valid() {
		return model.User{}, domainErrors.ErrInvalidStatus
	}
	if !u.users.SetStatus(id, status) {
		return model.User{}, domainErrors.ErrNotFound
	}
	return u.Get(id)
}

// UpdateKYCStatus records a KYC review decision.
func (u *UserUseCase) UpdateKYCStatus(id string, status model.KYCStatus) (model.User, error) {
	if !status.Valid() {
		return model.User{}, domainErrors.ErrInvalidStatus
	}
	if !u.users.UpdateKYCStatus(id, status) {
		return model.User{}, domainErrors.ErrNotFound
	}
	return u.Get(id)
}

// AppendTimeline adds a step to a return or exchange and returns the user.
func (u *UserUseCase) AppendTimeline(kind TimelineKind, userID, itemID string, entry model.TimelineEntry) (model.User, error) {
	entry.Status = strings.TrimSpace(entry.Status)
	if entry.Status == "" {
		return model.User{}, domainErrors.ErrInvalidStatus
	}

	var applied bool
	switch kind {
	case TimelineReturn:
		applied = u.users.AppendReturnTimeline(userID, itemID, entry)
	case TimelineExchange:
		applied = u.users.AppendExchangeTimeline(userID, itemID, entry)
	default:
		return model.User{}, domainErrors.ErrInvalidInput
	}
	if !applied {
		return model.User{}, domainErrors.ErrNotFound
	}
	return u.Get(userID)
}
