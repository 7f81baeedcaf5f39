package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/server/http/dto"
)

// NotificationHandler manages the admin inbox.
type NotificationHandler struct {
	facade NotificationFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /notifications?filter=.
func (h *NotificationHandler) List(c *gin.Context) {
	items, err := h.facade.Notifications(c.Query("filter"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NotificationListResponse{Items: items, UnreadCount: h.facade.UnreadNotifications()})
}

// Create handles POST /notifications.
func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.NotificationRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.facade.CreateNotification(req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

// MarkRead handles POST /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.facade.MarkNotificationRead(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead handles POST /notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MarkAllResponse{Updated: h.facade.MarkAllNotificationsRead()})
}
