package dto

import (
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/view"
)

// TimelineRequest appends a return or exchange step. Date defaults to now.
type TimelineRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
	Date   *Date  `json:"date"`
}

// ToEntry converts the request.
func (r TimelineRequest) ToEntry() model.TimelineEntry {
	entry := model.TimelineEntry{Status: r.Status, Note: r.Note}
	if r.Date != nil {
		entry.Date = r.Date.Time
	}
	return entry
}

// UserSummaryResponse is a user list row with masked contact details.
type UserSummaryResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	MaskedEmail string           `json:"maskedEmail"`
	MaskedPhone string           `json:"maskedPhone"`
	Status      model.UserStatus `json:"status"`
	StatusBadge view.StatusBadge `json:"statusBadge"`
	KYCStatus   model.KYCStatus  `json:"kycStatus"`
	KYCBadge    view.StatusBadge `json:"kycBadge"`
	Orders      int              `json:"orders"`
}

// NewUserSummaries builds list rows.
func NewUserSummaries(users []model.User) []UserSummaryResponse {
	resp := make([]UserSummaryResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, UserSummaryResponse{
			ID:          u.ID,
			Name:        u.Name,
			MaskedEmail: view.MaskEmail(u.Email),
			MaskedPhone: view.MaskPhone(u.Phone),
			Status:      u.Status,
			StatusBadge: view.Badge(u.Status),
			KYCStatus:   u.KYC.Status,
			KYCBadge:    view.Badge(u.KYC.Status),
			Orders:      len(u.Purchases),
		})
	}
	return resp
}
