package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/server/http/dto"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /orders?status=.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	details, err := h.facade.OrderDetails(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderDetailsResponse(details))
}

// UpdateStatus handles PATCH /orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	h.reply(c)(h.facade.UpdateOrderStatus(c.Param("id"), model.OrderStatus(req.Status)))
}

// UpdatePaymentStatus handles PATCH /orders/:id/payment-status.
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	h.reply(c)(h.facade.UpdatePaymentStatus(c.Param("id"), model.PaymentStatus(req.Status)))
}

// ApproveRefund handles POST /orders/:id/refund/approve.
func (h *OrderHandler) ApproveRefund(c *gin.Context) {
	h.reply(c)(h.facade.ApproveRefund(c.Param("id")))
}

// RejectRefund handles POST /orders/:id/refund/reject.
func (h *OrderHandler) RejectRefund(c *gin.Context) {
	h.reply(c)(h.facade.RejectRefund(c.Param("id")))
}

// UpdateTracking handles PUT /orders/:id/tracking.
func (h *OrderHandler) UpdateTracking(c *gin.Context) {
	var req dto.TrackingRequest
	if !bindJSON(c, &req) {
		return
	}
	h.reply(c)(h.facade.UpdateTracking(c.Param("id"), req.TrackingNumber, req.TrackingURL))
}

func (h *OrderHandler) reply(c *gin.Context) func(model.Order, error) {
	return func(order model.Order, err error) {
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewOrderResponse(order))
	}
}
