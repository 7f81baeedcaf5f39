package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/server/http/dto"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/usecase"
)

// UserHandler manages customer accounts.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewUserSummaries(h.facade.Users()))
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	h.reply(c)(h.facade.User(c.Param("id")))
}

// UpdateStatus handles PATCH /users/:id/status.
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	h.reply(c)(h.facade.SetUserStatus(c.Param("id"), model.UserStatus(req.Status)))
}

// UpdateKYC handles PATCH /users/:id/kyc.
func (h *UserHandler) UpdateKYC(c *gin.Context) {
	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	h.reply(c)(h.facade.UpdateKYCStatus(c.Param("id"), model.KYCStatus(req.Status)))
}

// ReturnTimeline handles POST /users/:id/returns/:itemId/timeline.
func (h *UserHandler) ReturnTimeline(c *gin.Context) {
	h.appendTimeline(c, usecase.TimelineReturn)
}

// ExchangeTimeline handles POST /users/:id/exchanges/:itemId/timeline.
func (h *UserHandler) ExchangeTimeline(c *gin.Context) {
	h.appendTimeline(c, usecase.TimelineExchange)
}

func (h *UserHandler) appendTimeline(c *gin.Context, kind usecase.TimelineKind) {
	var req dto.TimelineRequest
	if !bindJSON(c, &req) {
		return
	}
	h.reply(c)(h.facade.AppendTimeline(kind, c.Param("id"), c.Param("itemId"), req.ToEntry()))
}

func (h *UserHandler) reply(c *gin.Context) func(model.User, error) {
	return func(u model.User, err error) {
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
