package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/server/http/dto"
)

// DashboardHandler serves headline figures.
type DashboardHandler struct {
	facade DashboardFacade
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(facade DashboardFacade) *DashboardHandler {
	return &DashboardHandler{facade: facade}
}

// Summary handles GET /dashboard.
func (h *DashboardHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewDashboardResponse(h.facade.Dashboard()))
}
