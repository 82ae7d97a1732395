// Package app assembles the storefront service: repositories, usecase
// handlers and HTTP handlers, wired together with google/wire.
package app

import (
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	cartdomain "github.com/snazzy/storefront/internal/cart/domain"
	carthandler "github.com/snazzy/storefront/internal/cart/handler"
	orderdomain "github.com/snazzy/storefront/internal/order/domain"
	orderhandler "github.com/snazzy/storefront/internal/order/handler"
	paymentdomain "github.com/snazzy/storefront/internal/payment/domain"
	paymenthandler "github.com/snazzy/storefront/internal/payment/handler"
	promodomain "github.com/snazzy/storefront/internal/promotion/domain"
	promohandler "github.com/snazzy/storefront/internal/promotion/handler"
	refunddomain "github.com/snazzy/storefront/internal/refund/domain"
	refundhandler "github.com/snazzy/storefront/internal/refund/handler"
	reporthandler "github.com/snazzy/storefront/internal/report/handler"
	userdomain "github.com/snazzy/storefront/internal/user/domain"
	userhandler "github.com/snazzy/storefront/internal/user/handler"
)

// App holds the service's HTTP handlers.
type App struct {
	UserHandler      *userhandler.UserHandler
	PromotionHandler *promohandler.PromotionHandler
	CartHandler      *carthandler.CartHandler
	OrderHandler     *orderhandler.OrderHandler
	PaymentHandler   *paymenthandler.PaymentHandler
	RefundHandler    *refundhandler.RefundHandler
	ReportHandler    *reporthandler.ReportHandler
}

// RegisterRoutes mounts every domain's routes on the router.
func (a *App) RegisterRoutes(router *mux.Router) {
	a.UserHandler.RegisterRoutes(router)
	a.PromotionHandler.RegisterRoutes(router)
	a.CartHandler.RegisterRoutes(router)
	a.OrderHandler.RegisterRoutes(router)
	a.PaymentHandler.RegisterRoutes(router)
	a.RefundHandler.RegisterRoutes(router)
	a.ReportHandler.RegisterRoutes(router)
}

// AutoMigrate creates or updates every table the service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userdomain.User{},
		&promodomain.Promotion{},
		&cartdomain.CartItem{},
		&orderdomain.Order{},
		&paymentdomain.Payment{},
		&paymentdomain.PaymentMethod{},
		&refunddomain.RefundRequest{},
	)
}
