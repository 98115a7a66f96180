package cmd

import (
	"time"

	"laundry/internal/adapters/out/kafka"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/auth"

	"gorm.io/gorm"
)

const defaultTokenTTL = 24 * time.Hour

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	issuer     auth.TokenIssuer
	publisher  *kafka.OrderChangedPublisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	ttl := defaultTokenTTL
	if config.JWTTTL != "" {
		parsed, err := time.ParseDuration(config.JWTTTL)
		if err != nil {
			return CompositionRoot{}, err
		}
		ttl = parsed
	}

	issuer, err := auth.NewTokenIssuer(config.JWTSecret, ttl)
	if err != nil {
		return CompositionRoot{}, err
	}

	var publisher *kafka.OrderChangedPublisher
	if config.KafkaHost != "" {
		publisher = kafka.NewOrderChangedPublisher(
			[]string{config.KafkaHost}, config.KafkaOrderChangedTopic)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		issuer:     issuer,
		publisher:  publisher,
	}, nil
}

// TokenIssuer returns the issuer shared by the login flow and the HTTP
// authentication middleware.
func (c *CompositionRoot) TokenIssuer() auth.TokenIssuer {
	return c.issuer
}

// OrderEventPublisher returns the Kafka publisher, or nil when event
// publishing is disabled by configuration.
func (c *CompositionRoot) OrderEventPublisher() ports.OrderEventPublisher {
	if c.publisher == nil {
		return nil
	}
	return c.publisher
}

// Close releases outbound connections held by the composition root.
func (c *CompositionRoot) Close() error {
	if c.publisher == nil {
		return nil
	}
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStoreCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() commands.CreatePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.OrderEventPublisher())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.AcceptOrderUoWFactory = FuncAcceptOrderUoWFactory(func() commands.AcceptOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.OrderEventPublisher())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.OrderEventPublisher())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.OrderEventPublisher())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetPartnerAvailabilityCommandHandler() commands.SetPartnerAvailabilityCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetPartnerAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateApprovePartnerCommandHandler() commands.ApprovePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApprovePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePromotionCommandHandler() commands.CreatePromotionCommandHandler {
	var f commands.PromotionUoWFactory = FuncPromotionUoWFactory(func() commands.PromotionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePromotionCommandHandler(f)
}

func (c *CompositionRoot) CreateExpirePromotionsCommandHandler() commands.ExpirePromotionsCommandHandler {
	var f commands.PromotionUoWFactory = FuncPromotionUoWFactory(func() commands.PromotionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpirePromotionsCommandHandler(f)
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.gormDB, c.issuer)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreOrdersQueryHandler() queries.GetStoreOrdersQueryHandler {
	return queries.NewGetStoreOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNearbyStoresQueryHandler() queries.GetNearbyStoresQueryHandler {
	return queries.NewGetNearbyStoresQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActivePromotionsQueryHandler() queries.GetActivePromotionsQueryHandler {
	return queries.NewGetActivePromotionsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncAcceptOrderUoWFactory func() commands.AcceptOrderUoW

func (f FuncAcceptOrderUoWFactory) Create() commands.AcceptOrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncPromotionUoWFactory func() commands.PromotionUoW

func (f FuncPromotionUoWFactory) Create() commands.PromotionUoW {
	return f()
}
