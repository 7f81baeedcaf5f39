package usecase

import "go.uber.org/fx"

// Module provides admin use cases to the fx container.
var Module = fx.Provide(
	NewOrderUseCase,
	NewAffiliateUseCase,
	NewCouponUseCase,
	NewNotificationUseCase,
	NewCatalogUseCase,
	NewUserUseCase,
	NewDashboardUseCase,
)
