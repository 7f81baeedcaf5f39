package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/server/http/dto"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/view"
)

// CouponHandler manages coupon endpoints.
type CouponHandler struct {
	facade CouponFacade
}

// NewCouponHandler constructs CouponHandler.
func NewCouponHandler(facade CouponFacade) *CouponHandler {
	return &CouponHandler{facade: facade}
}

// List handles GET /coupons.
func (h *CouponHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewCouponResponses(h.facade.Coupons()))
}

// Get handles GET /coupons/:id.
func (h *CouponHandler) Get(c *gin.Context) {
	h.reply(c, http.StatusOK)(h.facade.Coupon(c.Param("id")))
}

// Create handles POST /coupons.
func (h *CouponHandler) Create(c *gin.Context) {
	var req dto.CouponRequest
	if !bindJSON(c, &req) {
		return
	}
	h.reply(c, http.StatusCreated)(h.facade.CreateCoupon(req.ToInput()))
}

// Update handles PATCH /coupons/:id.
func (h *CouponHandler) Update(c *gin.Context) {
	var req dto.CouponRequest
	if !bindJSON(c, &req) {
		return
	}
	h.reply(c, http.StatusOK)(h.facade.UpdateCoupon(c.Param("id"), req.ToPatch()))
}

// Toggle handles POST /coupons/:id/toggle.
func (h *CouponHandler) Toggle(c *gin.Context) {
	h.reply(c, http.StatusOK)(h.facade.ToggleCoupon(c.Param("id")))
}

// Delete handles DELETE /coupons/:id.
func (h *CouponHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteCoupon(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerateCode handles POST /coupons/generate-code.
func (h *CouponHandler) GenerateCode(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CodeResponse{Code: h.facade.GenerateCouponCode()})
}

// Preview handles GET /coupons/:id/preview?subtotal=.
func (h *CouponHandler) Preview(c *gin.Context) {
	subtotal, err := strconv.ParseFloat(c.Query("subtotal"), 64)
	if err != nil || math.IsNaN(subtotal) || math.IsInf(subtotal, 0) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "subtotal must be a number"})
		return
	}
	id := c.Param("id")
	discount, err := h.facade.PreviewCoupon(id, subtotal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PreviewResponse{
		CouponID:        id,
		Subtotal:        subtotal,
		Discount:        discount,
		DiscountDisplay: view.FormatCurrency(discount),
	})
}

func (h *CouponHandler) reply(c *gin.Context, status int) func(model.Coupon, error) {
	return func(coupon model.Coupon, err error) {
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(status, dto.NewCouponResponse(coupon))
	}
}
