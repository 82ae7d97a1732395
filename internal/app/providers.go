package app

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	cartdomain "github.com/snazzy/storefront/internal/cart/domain"
	carthandler "github.com/snazzy/storefront/internal/cart/handler"
	cartrepository "github.com/snazzy/storefront/internal/cart/repository"
	cartcommand "github.com/snazzy/storefront/internal/cart/usecase/command"
	cartquery "github.com/snazzy/storefront/internal/cart/usecase/query"
	"github.com/snazzy/storefront/internal/loyalty"
	orderdomain "github.com/snazzy/storefront/internal/order/domain"
	orderhandler "github.com/snazzy/storefront/internal/order/handler"
	orderrepository "github.com/snazzy/storefront/internal/order/repository"
	ordercommand "github.com/snazzy/storefront/internal/order/usecase/command"
	orderquery "github.com/snazzy/storefront/internal/order/usecase/query"
	paymentdomain "github.com/snazzy/storefront/internal/payment/domain"
	paymenthandler "github.com/snazzy/storefront/internal/payment/handler"
	paymentrepository "github.com/snazzy/storefront/internal/payment/repository"
	paymentcommand "github.com/snazzy/storefront/internal/payment/usecase/command"
	paymentquery "github.com/snazzy/storefront/internal/payment/usecase/query"
	promodomain "github.com/snazzy/storefront/internal/promotion/domain"
	promohandler "github.com/snazzy/storefront/internal/promotion/handler"
	promorepository "github.com/snazzy/storefront/internal/promotion/repository"
	promocommand "github.com/snazzy/storefront/internal/promotion/usecase/command"
	promoquery "github.com/snazzy/storefront/internal/promotion/usecase/query"
	refunddomain "github.com/snazzy/storefront/internal/refund/domain"
	refundhandler "github.com/snazzy/storefront/internal/refund/handler"
	refundrepository "github.com/snazzy/storefront/internal/refund/repository"
	refundcommand "github.com/snazzy/storefront/internal/refund/usecase/command"
	refundquery "github.com/snazzy/storefront/internal/refund/usecase/query"
	reportdomain "github.com/snazzy/storefront/internal/report/domain"
	reporthandler "github.com/snazzy/storefront/internal/report/handler"
	reportrepository "github.com/snazzy/storefront/internal/report/repository"
	reportquery "github.com/snazzy/storefront/internal/report/usecase/query"
	userdomain "github.com/snazzy/storefront/internal/user/domain"
	userhandler "github.com/snazzy/storefront/internal/user/handler"
	userrepository "github.com/snazzy/storefront/internal/user/repository"
	usercommand "github.com/snazzy/storefront/internal/user/usecase/command"
)

// Repository providers

func ProvideUserRepository(db *gorm.DB) userdomain.UserRepository {
	return userrepository.NewGormUserRepository(db)
}

func ProvidePromotionRepository(db *gorm.DB, redisClient *redis.Client) promodomain.PromotionRepository {
	return promorepository.NewCachedPromotionRepository(promorepository.NewGormPromotionRepository(db), redisClient)
}

func ProvideOrderRepository(db *gorm.DB) orderdomain.OrderRepository {
	return orderrepository.NewGormOrderRepository(db)
}

func ProvidePaymentRepository(db *gorm.DB) paymentdomain.PaymentRepository {
	return paymentrepository.NewGormPaymentRepository(db)
}

func ProvidePaymentMethodRepository(db *gorm.DB) paymentdomain.PaymentMethodRepository {
	return paymentrepository.NewGormPaymentMethodRepository(db)
}

func ProvideRefundRepository(db *gorm.DB) refunddomain.RefundRepository {
	return refundrepository.NewGormRefundRepository(db)
}

func ProvideReportRepository(db *gorm.DB) reportdomain.ReportRepository {
	return reportrepository.NewGormReportRepository(db)
}

func ProvideCartRepository(db *gorm.DB) cartdomain.CartRepository {
	return cartrepository.NewGormCartRepository(db)
}

func ProvideCartClearer(repo cartdomain.CartRepository) ordercommand.CartClearer {
	return repo
}

func ProvidePointLedger(db *gorm.DB) loyalty.PointLedger {
	return loyalty.NewLedger(loyalty.NewGormBalanceStore(db))
}

func ProvideOrderDeleter(h *ordercommand.DeleteOrderHandler) refundcommand.OrderDeleter {
	return h
}

// Wire sets

var RepositorySet = wire.NewSet(
	ProvideUserRepository,
	ProvidePromotionRepository,
	ProvideOrderRepository,
	ProvidePaymentRepository,
	ProvidePaymentMethodRepository,
	ProvideRefundRepository,
	ProvideReportRepository,
	ProvideCartRepository,
	ProvideCartClearer,
	ProvidePointLedger,
)

var UserSet = wire.NewSet(
	usercommand.NewRegisterUserHandler,
	usercommand.NewLoginUserHandler,
	userhandler.NewUserHandler,
)

var PromotionSet = wire.NewSet(
	promocommand.NewCreatePromotionHandler,
	promocommand.NewUpdatePromotionHandler,
	promocommand.NewDeletePromotionHandler,
	promoquery.NewListPromotionsHandler,
	promoquery.NewGetPromotionHandler,
	promoquery.NewQuoteProductHandler,
	promohandler.NewPromotionHandler,
)

var CartSet = wire.NewSet(
	cartcommand.NewAddItemHandler,
	cartcommand.NewRemoveItemHandler,
	cartquery.NewListCartHandler,
	carthandler.NewCartHandler,
)

var OrderSet = wire.NewSet(
	ordercommand.NewCreateOrderHandler,
	ordercommand.NewUpdateOrderHandler,
	ordercommand.NewDeleteOrderHandler,
	orderquery.NewGetOrderHandler,
	orderquery.NewListOrdersHandler,
	orderquery.NewMyOrdersHandler,
	orderhandler.NewOrderHandler,
)

var PaymentSet = wire.NewSet(
	paymentcommand.NewAddCardHandler,
	paymentcommand.NewUpdateCardHandler,
	paymentcommand.NewRemoveCardHandler,
	paymentcommand.NewChargeHandler,
	paymentcommand.NewUpdatePaymentStatusHandler,
	paymentquery.NewListCardsHandler,
	paymentquery.NewGetCardHandler,
	paymentquery.NewMyPaymentsHandler,
	paymenthandler.NewPaymentHandler,
)

var RefundSet = wire.NewSet(
	refundcommand.NewRequestRefundHandler,
	refundcommand.NewDecideRefundHandler,
	refundquery.NewListRefundsHandler,
	refundquery.NewMyRefundsHandler,
	refundhandler.NewRefundHandler,
	ProvideOrderDeleter,
)

var ReportSet = wire.NewSet(
	reportquery.NewMonthlyReportHandler,
	reporthandler.NewReportHandler,
)

var AppSet = wire.NewSet(
	RepositorySet,
	UserSet,
	PromotionSet,
	CartSet,
	OrderSet,
	PaymentSet,
	RefundSet,
	ReportSet,
	wire.Struct(new(App), "*"),
)
