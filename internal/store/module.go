package store

import (
	"go.uber.org/fx"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/repository"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/seed"
)

// Module wires every in-memory store from the loaded seed.
var Module = fx.Options(
	fx.Provide(
		NewOptions,
		func(s *seed.Seed, o Options) *OrderStore { return NewOrderStore(s.Orders, o) },
		func(s *seed.Seed, o Options) *AffiliateStore { return NewAffiliateStore(s.Affiliates, o) },
		func(s *seed.Seed, o Options) *CouponStore { return NewCouponStore(s.Coupons, o) },
		func(s *seed.Seed, o Options) *NotificationStore { return NewNotificationStore(s.Notifications, o) },
		func(s *seed.Seed, o Options) *ProductStore { return NewProductStore(s.Products, o) },
		func(s *seed.Seed, o Options) *ServiceStore { return NewServiceStore(s.Services, o) },
		func(s *seed.Seed, o Options) *UserStore { return NewUserStore(s.Users, o) },
	),
	fx.Provide(
		func(s *OrderStore) repository.OrderRepository { return s },
		func(s *AffiliateStore) repository.AffiliateRepository { return s },
		func(s *CouponStore) repository.CouponRepository { return s },
		func(s *NotificationStore) repository.NotificationRepository { return s },
		func(s *ProductStore) repository.ProductRepository { return s },
		func(s *ServiceStore) repository.ServiceRepository { return s },
		func(s *UserStore) repository.UserRepository { return s },
	),
)

var (
	_ repository.OrderRepository        = (*OrderStore)(nil)
	_ repository.AffiliateRepository    = (*AffiliateStore)(nil)
	_ repository.CouponRepository       = (*CouponStore)(nil)
	_ repository.NotificationRepository = (*NotificationStore)(nil)
	_ repository.ProductRepository      = (*ProductStore)(nil)
	_ repository.ServiceRepository      = (*ServiceStore)(nil)
	_ repository.UserRepository         = (*UserStore)(nil)
)

// NewOptions builds store options that mirror mutations into journal.
func NewOptions(journal repository.JournalSink) Options {
	return Options{Journal: journal}.withDefaults()
}
