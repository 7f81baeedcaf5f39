package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	domainErrors "github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/errors"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/server/http/dto"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/test/facades"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/usecase"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/view"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, handler)

	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", domainErrors.ErrNotFound, http.StatusNotFound},
		{"invalid status", domainErrors.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid input", domainErrors.ErrInvalidInput, http.StatusBadRequest},
		{"validation", &usecase.ValidationError{Fields: usecase.FieldErrors{"code": "Coupon code is required"}}, http.StatusUnprocessableEntity},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tt.err)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestOrderHandler(t *testing.T) {
	var gotStatus string
	h := NewOrderHandler(facades.OrderFacadeStub{
		OrdersFn: func(status string) ([]model.Order, error) {
			gotStatus = status
			return []model.Order{{ID: "ORD-1", Total: 7250, OrderStatus: model.OrderStatusDelivered}}, nil
		},
		DetailsFn: func(id string) (usecase.OrderDetails, error) {
			if id != "ORD-1" {
				return usecase.OrderDetails{}, domainErrors.ErrNotFound
			}
			return usecase.OrderDetails{
				Order:      model.Order{ID: id},
				Commission: &usecase.OrderCommission{AffiliateID: "aff_1", Log: model.CommissionLog{ID: "log_1", Amount: 206.73}},
			}, nil
		},
		StatusFn: func(id string, status model.OrderStatus) (model.Order, error) {
			if !status.Valid() {
				return model.Order{}, domainErrors.ErrInvalidStatus
			}
			return model.Order{ID: id, OrderStatus: status}, nil
		},
	})

	w := performRequest(t, http.MethodGet, "/orders", "/orders?status=delivered", h.List, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotStatus != "delivered" {
		t.Fatalf("expected status filter forwarded, got %q", gotStatus)
	}
	list := decode[[]dto.OrderResponse](t, w)
	if len(list) != 1 || list[0].TotalDisplay != "₹7,250.00" || list[0].StatusBadge.Label != "Delivered" {
		t.Fatalf("unexpected list %+v", list)
	}

	w = performRequest(t, http.MethodGet, "/orders/:id", "/orders/ORD-1", h.Get, "")
	details := decode[dto.OrderDetailsResponse](t, w)
	if details.Commission == nil || details.Commission.AmountDisplay != "₹206.73" {
		t.Fatalf("unexpected details %+v", details)
	}

	w = performRequest(t, http.MethodGet, "/orders/:id", "/orders/ORD-404", h.Get, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = performRequest(t, http.MethodPatch, "/orders/:id/status", "/orders/ORD-1/status", h.UpdateStatus, `{"status":"shipped"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decode[dto.OrderResponse](t, w); got.OrderStatus != model.OrderStatusShipped {
		t.Fatalf("expected shipped, got %s", got.OrderStatus)
	}

	w = performRequest(t, http.MethodPatch, "/orders/:id/status", "/orders/ORD-1/status", h.UpdateStatus, `{"status":"lost"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}

	w = performRequest(t, http.MethodPatch, "/orders/:id/status", "/orders/ORD-1/status", h.UpdateStatus, `{"status":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed json, got %d", w.Code)
	}
}

func TestOrderHandlerRefundsAndTracking(t *testing.T) {
	var approved []bool
	var tracking [2]string
	h := NewOrderHandler(facades.OrderFacadeStub{
		RefundFn: func(id string, approve bool) (model.Order, error) {
			approved = append(approved, approve)
			return model.Order{ID: id}, nil
		},
		TrackingFn: func(id, number, url string) (model.Order, error) {
			tracking = [2]string{number, url}
			return model.Order{ID: id}, nil
		},
	})

	performRequest(t, http.MethodPost, "/orders/:id/refund/approve", "/orders/ORD-1/refund/approve", h.ApproveRefund, "")
	performRequest(t, http.MethodPost, "/orders/:id/refund/reject", "/orders/ORD-1/refund/reject", h.RejectRefund, "")
	if diff := cmp.Diff([]bool{true, false}, approved); diff != "" {
		t.Fatalf("refund calls mismatch (-want +got):\n%s", diff)
	}

	w := performRequest(t, http.MethodPut, "/orders/:id/tracking", "/orders/ORD-1/tracking", h.UpdateTracking, `{"trackingNumber":"AWB1","trackingUrl":"https://track/AWB1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if tracking != [2]string{"AWB1", "https://track/AWB1"} {
		t.Fatalf("unexpected tracking %v", tracking)
	}
}

func TestAffiliateHandler(t *testing.T) {
	var adjusted float64
	var reason string
	h := NewAffiliateHandler(facades.AffiliateFacadeStub{
		GetFn: func(id string) (model.Affiliate, error) {
			return model.Affiliate{}, domainErrors.ErrNotFound
		},
		AdjustFn: func(id string, amount float64, r string) (model.Affiliate, error) {
			adjusted, reason = amount, r
			return model.Affiliate{ID: id, WalletBalance: 7250 + amount}, nil
		},
		WithdrawalFn: func(affiliateID, withdrawalID string, target model.WithdrawalStatus, notes string) (model.Withdrawal, error) {
			// paid from pending is illegal: unchanged record, no error
			return model.Withdrawal{ID: withdrawalID, Amount: 3000, Status: model.WithdrawalStatusPending}, nil
		},
		WithdrawalsFn: func(status string) ([]view.WithdrawalRow, error) {
			return []view.WithdrawalRow{{
				AffiliateID:    "aff_1",
				AffiliateEmail: "priya.sharma@example.com",
				WalletBalance:  7250,
				Withdrawal: model.Withdrawal{
					ID:          "wd_1",
					Amount:      3000,
					Account:     "5012 3456 7890 1234",
					Status:      model.WithdrawalStatusPending,
					RequestedAt: time.Date(2024, 3, 7, 11, 0, 0, 0, time.UTC),
				},
			}}, nil
		},
	})

	w := performRequest(t, http.MethodGet, "/affiliates/:id", "/affiliates/nope", h.Get, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = performRequest(t, http.MethodPost, "/affiliates/:id/wallet-adjustments", "/affiliates/aff_1/wallet-adjustments", h.AdjustWallet, `{"amount":-250,"reason":"Chargeback"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if adjusted != -250 || reason != "Chargeback" {
		t.Fatalf("unexpected adjustment %v %q", adjusted, reason)
	}

	w = performRequest(t, http.MethodPost, "/affiliates/:id/wallet-adjustments", "/affiliates/aff_1/wallet-adjustments", h.AdjustWallet, `{"reason":"missing"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without amount, got %d", w.Code)
	}

	w = performRequest(t, http.MethodPatch, "/affiliates/:id/withdrawals/:withdrawalId", "/affiliates/aff_1/withdrawals/wd_1", h.UpdateWithdrawal, `{"status":"paid"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for illegal transition, got %d", w.Code)
	}
	if got := decode[dto.WithdrawalResponse](t, w); got.Status != model.WithdrawalStatusPending || got.AmountDisplay != "₹3,000.00" {
		t.Fatalf("expected unchanged pending withdrawal, got %+v", got)
	}

	w = performRequest(t, http.MethodGet, "/withdrawals", "/withdrawals?status=pending", h.Withdrawals, "")
	rows := decode[[]dto.WithdrawalRowResponse](t, w)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].MaskedAccount != "************1234" {
		t.Fatalf("unexpected masked account %q", rows[0].MaskedAccount)
	}
	if rows[0].RequestedOn != "07 Mar 2024, 04:30 PM" {
		t.Fatalf("unexpected requested date %q", rows[0].RequestedOn)
	}
}

func TestAffiliateHandlerCommissionRate(t *testing.T) {
	h := NewAffiliateHandler(facades.AffiliateFacadeStub{})

	w := performRequest(t, http.MethodPatch, "/affiliates/:id/commission-rate", "/affiliates/aff_1/commission-rate", h.UpdateCommissionRate, `{"commissionRate":12.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decode[model.Affiliate](t, w); got.CommissionRate != 12.5 {
		t.Fatalf("expected rate 12.5, got %v", got.CommissionRate)
	}
}

func TestCouponHandler(t *testing.T) {
	var created model.CouponInput
	var patched model.CouponPatch
	h := NewCouponHandler(facades.CouponFacadeStub{
		Code: "AB12CD34",
		CreateFn: func(in model.CouponInput) (model.Coupon, error) {
			created = in
			if in.Code == "" {
				return model.Coupon{}, &usecase.ValidationError{Fields: usecase.FieldErrors{"code": "Coupon code is required"}}
			}
			return model.Coupon{ID: "cpn_1", Code: in.Code, Status: model.CouponStatusActive}, nil
		},
		UpdateFn: func(id string, patch model.CouponPatch) (model.Coupon, error) {
			patched = patch
			return model.Coupon{ID: id}, nil
		},
		DeleteFn: func(id string) error {
			if id != "cpn_1" {
				return domainErrors.ErrNotFound
			}
			return nil
		},
		PreviewFn: func(id string, subtotal float64) (float64, error) {
			return 150, nil
		},
	})

	body := `{"code":"save20","discountType":"percentage","discountValue":20,"maxDiscountCap":150,"applicableRole":"customers","startDate":"2024-03-01","expiryDate":"2024-04-01T00:00:00Z"}`
	w := performRequest(t, http.MethodPost, "/coupons", "/coupons", h.Create, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if created.MaxDiscountCap == nil || *created.MaxDiscountCap != 150 {
		t.Fatalf("expected cap 150, got %v", created.MaxDiscountCap)
	}
	if !created.StartDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start date %v", created.StartDate)
	}
	if created.ApplicableRole != model.CouponFormRoleCustomers {
		t.Fatalf("unexpected role %q", created.ApplicableRole)
	}
	if got := decode[dto.CouponResponse](t, w); got.Badge.Label != "Active" {
		t.Fatalf("unexpected badge %+v", got.Badge)
	}

	w = performRequest(t, http.MethodPost, "/coupons", "/coupons", h.Create, `{"discountType":"fixed"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if got := decode[dto.ErrorResponse](t, w); got.Fields["code"] == "" {
		t.Fatalf("expected code field error, got %+v", got)
	}

	w = performRequest(t, http.MethodPost, "/coupons", "/coupons", h.Create, `{"startDate":"yesterday"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", w.Code)
	}

	w = performRequest(t, http.MethodPatch, "/coupons/:id", "/coupons/cpn_1", h.Update, `{"maxDiscountCap":null,"description":"Spring sale"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if patched.MaxDiscountCap == nil || *patched.MaxDiscountCap != nil {
		t.Fatalf("expected cap cleared, got %v", patched.MaxDiscountCap)
	}
	if patched.UsageLimitTotal != nil {
		t.Fatal("expected absent usage limit to stay untouched")
	}
	if patched.Description == nil || *patched.Description != "Spring sale" {
		t.Fatalf("unexpected description patch %v", patched.Description)
	}

	w = performRequest(t, http.MethodDelete, "/coupons/:id", "/coupons/cpn_1", h.Delete, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	w = performRequest(t, http.MethodDelete, "/coupons/:id", "/coupons/cpn_2", h.Delete, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = performRequest(t, http.MethodPost, "/coupons/generate-code", "/coupons/generate-code", h.GenerateCode, "")
	if got := decode[dto.CodeResponse](t, w); got.Code != "AB12CD34" {
		t.Fatalf("unexpected code %q", got.Code)
	}

	w = performRequest(t, http.MethodGet, "/coupons/:id/preview", "/coupons/cpn_1/preview?subtotal=1000", h.Preview, "")
	if got := decode[dto.PreviewResponse](t, w); got.Discount != 150 || got.DiscountDisplay != "₹150.00" {
		t.Fatalf("unexpected preview %+v", got)
	}
	for _, subtotal := range []string{"abc", "NaN", "Inf", "%2BInf", "-Inf", ""} {
		w = performRequest(t, http.MethodGet, "/coupons/:id/preview", "/coupons/cpn_1/preview?subtotal="+subtotal, h.Preview, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for subtotal %q, got %d", subtotal, w.Code)
		}
	}
}

func TestNotificationHandler(t *testing.T) {
	h := NewNotificationHandler(facades.NotificationFacadeStub{
		Unread:    3,
		MarkedAll: 3,
		FilterFn: func(filter string) ([]model.Notification, error) {
			if filter == "bogus" {
				return nil, domainErrors.ErrInvalidInput
			}
			return []model.Notification{{ID: "ntf_1"}}, nil
		},
		CreateFn: func(in model.NotificationInput) (model.Notification, error) {
			if in.Title == "" {
				return model.Notification{}, &usecase.ValidationError{Fields: usecase.FieldErrors{"title": "Title is required"}}
			}
			return model.Notification{ID: "ntf_9", Title: in.Title}, nil
		},
		MarkReadFn: func(id string) error {
			if id != "ntf_1" {
				return domainErrors.ErrNotFound
			}
			return nil
		},
	})

	w := performRequest(t, http.MethodGet, "/notifications", "/notifications?filter=unread", h.List, "")
	if got := decode[dto.NotificationListResponse](t, w); len(got.Items) != 1 || got.UnreadCount != 3 {
		t.Fatalf("unexpected list %+v", got)
	}
	w = performRequest(t, http.MethodGet, "/notifications", "/notifications?filter=bogus", h.List, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	w = performRequest(t, http.MethodPost, "/notifications", "/notifications", h.Create, `{"title":"Stock alert","category":"system"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	w = performRequest(t, http.MethodPost, "/notifications", "/notifications", h.Create, `{"message":"no title"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	w = performRequest(t, http.MethodPost, "/notifications/:id/read", "/notifications/ntf_1/read", h.MarkRead, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	w = performRequest(t, http.MethodPost, "/notifications/:id/read", "/notifications/ntf_x/read", h.MarkRead, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = performRequest(t, http.MethodPost, "/notifications/read-all", "/notifications/read-all", h.MarkAllRead, "")
	if got := decode[dto.MarkAllResponse](t, w); got.Updated != 3 {
		t.Fatalf("expected 3 updated, got %d", got.Updated)
	}
}

func TestCatalogHandler(t *testing.T) {
	deleted := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	var patch model.ProductPatch
	h := NewCatalogHandler(facades.CatalogFacadeStub{
		ProductList: []model.Product{
			{ID: "prod_1", Price: 899, StockStatus: model.StockStatusLowStock},
			{ID: "prod_2", DeletedAt: &deleted},
		},
		UpdateProductFn: func(id string, p model.ProductPatch) (model.Product, error) {
			patch = p
			return model.Product{ID: id}, nil
		},
		DeleteFn: func(id string) error {
			if id == "missing" {
				return domainErrors.ErrNotFound
			}
			return nil
		},
	})

	w := performRequest(t, http.MethodGet, "/products", "/products", h.Products, "")
	list := decode[[]dto.ProductResponse](t, w)
	if len(list) != 1 || list[0].PriceDisplay != "₹899.00" || list[0].StockBadge.Label != "Low Stock" {
		t.Fatalf("unexpected products %+v", list)
	}
	w = performRequest(t, http.MethodGet, "/products", "/products?deleted=true", h.Products, "")
	if list := decode[[]dto.ProductResponse](t, w); len(list) != 2 {
		t.Fatalf("expected deleted products included, got %d", len(list))
	}

	w = performRequest(t, http.MethodPatch, "/products/:id", "/products/prod_1", h.UpdateProduct, `{"stock":3,"salePrice":null}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if patch.Stock == nil || *patch.Stock != 3 {
		t.Fatalf("unexpected stock patch %v", patch.Stock)
	}
	if patch.SalePrice == nil || *patch.SalePrice != nil {
		t.Fatal("expected sale price cleared")
	}

	w = performRequest(t, http.MethodDelete, "/products/:id", "/products/missing", h.DeleteProduct, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	w = performRequest(t, http.MethodDelete, "/services/:id", "/services/svc_1", h.DeleteService, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = performRequest(t, http.MethodPost, "/services", "/services", h.CreateService, `{"name":"Facial","price":1499,"durationMinutes":60}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if got := decode[model.Service](t, w); got.Name != "Facial" {
		t.Fatalf("unexpected service %+v", got)
	}
}

func TestUserHandler(t *testing.T) {
	var kind usecase.TimelineKind
	var entry model.TimelineEntry
	h := NewUserHandler(facades.UserFacadeStub{
		List: []model.User{{ID: "usr_1", Email: "anita.rao@example.com", Phone: "+919876543210", Status: model.UserStatusActive}},
		TimelineFn: func(k usecase.TimelineKind, userID, itemID string, e model.TimelineEntry) (model.User, error) {
			kind, entry = k, e
			if itemID != "ret_1" && itemID != "exc_1" {
				return model.User{}, domainErrors.ErrNotFound
			}
			return model.User{ID: userID}, nil
		},
	})

	w := performRequest(t, http.MethodGet, "/users", "/users", h.List, "")
	rows := decode[[]dto.UserSummaryResponse](t, w)
	if len(rows) != 1 || rows[0].MaskedEmail != "an*******@example.com" {
		t.Fatalf("unexpected users %+v", rows)
	}

	w = performRequest(t, http.MethodPatch, "/users/:id/kyc", "/users/usr_1/kyc", h.UpdateKYC, `{"status":"verified"}`)
	if got := decode[model.User](t, w); got.KYC.Status != model.KYCStatusVerified {
		t.Fatalf("unexpected kyc %+v", got.KYC)
	}

	w = performRequest(t, http.MethodPost, "/users/:id/returns/:itemId/timeline", "/users/usr_1/returns/ret_1/timeline", h.ReturnTimeline, `{"status":"approved","note":"QC passed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if kind != usecase.TimelineReturn || entry.Status != "approved" || entry.Note != "QC passed" {
		t.Fatalf("unexpected timeline call %s %+v", kind, entry)
	}

	w = performRequest(t, http.MethodPost, "/users/:id/exchanges/:itemId/timeline", "/users/usr_1/exchanges/nope/timeline", h.ExchangeTimeline, `{"status":"shipped"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if kind != usecase.TimelineExchange {
		t.Fatalf("expected exchange kind, got %s", kind)
	}

	w = performRequest(t, http.MethodPost, "/users/:id/returns/:itemId/timeline", "/users/usr_1/returns/ret_1/timeline", h.ReturnTimeline, `{"note":"no status"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without status, got %d", w.Code)
	}
}

func TestDashboardHandler(t *testing.T) {
	h := NewDashboardHandler(facades.DashboardFacadeStub{Summary: usecase.DashboardSummary{TotalOrders: 4, Revenue: 7250}})

	w := performRequest(t, http.MethodGet, "/dashboard", "/dashboard", h.Summary, "")
	got := decode[dto.DashboardResponse](t, w)
	if got.TotalOrders != 4 || got.RevenueDisplay != "₹7,250.00" {
		t.Fatalf("unexpected dashboard %+v", got)
	}
}
