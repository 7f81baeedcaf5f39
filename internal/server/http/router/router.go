package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/server/http/handlers"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AdminFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	dashboard := handlers.NewDashboardHandler(facade)
	orders := handlers.NewOrderHandler(facade)
	affiliates := handlers.NewAffiliateHandler(facade)
	coupons := handlers.NewCouponHandler(facade)
	notifications := handlers.NewNotificationHandler(facade)
	catalog := handlers.NewCatalogHandler(facade)
	users := handlers.NewUserHandler(facade)

	admin := engine.Group("/api/admin")
	admin.GET("/dashboard", dashboard.Summary)

	admin.GET("/orders", orders.List)
	admin.GET("/orders/:id", orders.Get)
	admin.PATCH("/orders/:id/status", orders.UpdateStatus)
	admin.PATCH("/orders/:id/payment-status", orders.UpdatePaymentStatus)
	admin.POST("/orders/:id/refund/approve", orders.ApproveRefund)
	admin.POST("/orders/:id/refund/reject", orders.RejectRefund)
	admin.PUT("/orders/:id/tracking", orders.UpdateTracking)

	admin.GET("/affiliates", affiliates.List)
	admin.GET("/affiliates/:id", affiliates.Get)
	admin.PATCH("/affiliates/:id/status", affiliates.UpdateStatus)
	admin.PATCH("/affiliates/:id/commission-rate", affiliates.UpdateCommissionRate)
	admin.POST("/affiliates/:id/wallet-adjustments", affiliates.AdjustWallet)
	admin.PATCH("/affiliates/:id/withdrawals/:withdrawalId", affiliates.UpdateWithdrawal)
	admin.GET("/withdrawals", affiliates.Withdrawals)

	admin.GET("/coupons", coupons.List)
	admin.POST("/coupons", coupons.Create)
	admin.POST("/coupons/generate-code", coupons.GenerateCode)
	admin.GET("/coupons/:id", coupons.Get)
	admin.GET("/coupons/:id/preview", coupons.Preview)
	admin.PATCH("/coupons/:id", coupons.Update)
	admin.POST("/coupons/:id/toggle", coupons.Toggle)
	admin.DELETE("/coupons/:id", coupons.Delete)

	admin.GET("/notifications", notifications.List)
	admin.POST("/notifications", notifications.Create)
	admin.POST("/notifications/read-all", notifications.MarkAllRead)
	admin.POST("/notifications/:id/read", notifications.MarkRead)

	admin.GET("/products", catalog.Products)
	admin.POST("/products", catalog.CreateProduct)
	admin.GET("/products/:id", catalog.Product)
	admin.PATCH("/products/:id", catalog.UpdateProduct)
	admin.DELETE("/products/:id", catalog.DeleteProduct)
	admin.POST("/products/:id/restore", catalog.RestoreProduct)

	admin.GET("/services", catalog.Services)
	admin.POST("/services", catalog.CreateService)
	admin.GET("/services/:id", catalog.Service)
	admin.PATCH("/services/:id", catalog.UpdateService)
	admin.DELETE("/services/:id", catalog.DeleteService)
	admin.POST("/services/:id/restore", catalog.RestoreService)

	admin.GET("/users", users.List)
	admin.GET("/users/:id", users.Get)
	admin.PATCH("/users/:id/status", users.UpdateStatus)
	admin.PATCH("/users/:id/kyc", users.UpdateKYC)
	admin.POST("/users/:id/returns/:itemId/timeline", users.ReturnTimeline)
	admin.POST("/users/:id/exchanges/:itemId/timeline", users.ExchangeTimeline)

	return engine
}
