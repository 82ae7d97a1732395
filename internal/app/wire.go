//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/snazzy/storefront/internal/payment/gateway"
	"github.com/snazzy/storefront/kafka"
)

// InitializeApp builds the fully wired service.
func InitializeApp(db *gorm.DB, redisClient *redis.Client, events kafka.EventPublisher, gw gateway.Gateway) (*App, error) {
	wire.Build(AppSet)
	return nil, nil
}
