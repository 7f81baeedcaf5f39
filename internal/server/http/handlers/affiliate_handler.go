package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/server/http/dto"
)

// DisplayLocation is the time zone used for formatted dates in responses.
var DisplayLocation = time.FixedZone("IST", 5*60*60+30*60)

// AffiliateHandler manages affiliates, wallets and withdrawals.
type AffiliateHandler struct {
	facade AffiliateFacade
}

// NewAffiliateHandler constructs AffiliateHandler.
func NewAffiliateHandler(facade AffiliateFacade) *AffiliateHandler {
	return &AffiliateHandler{facade: facade}
}

// List handles GET /affiliates.
func (h *AffiliateHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.Affiliates())
}

// Get handles GET /affiliates/:id.
func (h *AffiliateHandler) Get(c *gin.Context) {
	h.reply(c)(h.facade.Affiliate(c.Param("id")))
}

// UpdateStatus handles PATCH /affiliates/:id/status.
func (h *AffiliateHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	h.reply(c)(h.facade.SetAffiliateStatus(c.Param("id"), model.AffiliateStatus(req.Status)))
}

// UpdateCommissionRate handles PATCH /affiliates/:id/commission-rate.
func (h *AffiliateHandler) UpdateCommissionRate(c *gin.Context) {
	var req dto.CommissionRateRequest
	if !bindJSON(c, &req) {
		return
	}
	h.reply(c)(h.facade.UpdateCommissionRate(c.Param("id"), *req.CommissionRate))
}

// AdjustWallet handles POST /affiliates/:id/wallet-adjustments.
func (h *AffiliateHandler) AdjustWallet(c *gin.Context) {
	var req dto.WalletAdjustmentRequest
	if !bindJSON(c, &req) {
		return
	}
	h.reply(c)(h.facade.AdjustWallet(c.Param("id"), *req.Amount, req.Reason))
}

// UpdateWithdrawal handles PATCH /affiliates/:id/withdrawals/:withdrawalId.
// An illegal transition answers 200 with the unchanged withdrawal.
func (h *AffiliateHandler) UpdateWithdrawal(c *gin.Context) {
	var req dto.WithdrawalUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	w, err := h.facade.UpdateWithdrawal(c.Param("id"), c.Param("withdrawalId"), model.WithdrawalStatus(req.Status), req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWithdrawalResponse(w))
}

// Withdrawals handles GET /withdrawals?status=.
func (h *AffiliateHandler) Withdrawals(c *gin.Context) {
	rows, err := h.facade.Withdrawals(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWithdrawalRowResponses(rows, DisplayLocation))
}

func (h *AffiliateHandler) reply(c *gin.Context) func(model.Affiliate, error) {
	return func(a model.Affiliate, err error) {
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}
