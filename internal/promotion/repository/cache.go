package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/snazzy/storefront/internal/promotion/domain"
	"github.com/snazzy/storefront/pkg/logger"
)

const cacheTTL = 5 * time.Minute

// CachedPromotionRepository is a read-through Redis cache over the gorm
// repository. The promotion catalog is read on every checkout, so the
// per-product lookup is the hot path. Writes invalidate the affected keys;
// a cache failure always falls back to the database.
type CachedPromotionRepository struct {
	inner domain.PromotionRepository
	redis *redis.Client
}

func NewCachedPromotionRepository(inner domain.PromotionRepository, redisClient *redis.Client) *CachedPromotionRepository {
	return &CachedPromotionRepository{inner: inner, redis: redisClient}
}

func productKey(productID string) string {
	return fmt.Sprintf("promotions:product:%s", productID)
}

const allKey = "promotions:all"

func (r *CachedPromotionRepository) FindByProductID(ctx context.Context, productID string) ([]domain.Promotion, error) {
	if r.redis != nil {
		if cached, err := r.redis.Get(ctx, productKey(productID)).Bytes(); err == nil {
			var promotions []domain.Promotion
			if err := json.Unmarshal(cached, &promotions); err == nil {
				return promotions, nil
			}
		}
	}

	promotions, err := r.inner.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	r.set(ctx, productKey(productID), promotions)
	return promotions, nil
}

func (r *CachedPromotionRepository) FindAll(ctx context.Context) ([]domain.Promotion, error) {
	if r.redis != nil {
		if cached, err := r.redis.Get(ctx, allKey).Bytes(); err == nil {
			var promotions []domain.Promotion
			if err := json.Unmarshal(cached, &promotions); err == nil {
				return promotions, nil
			}
		}
	}

	promotions, err := r.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	r.set(ctx, allKey, promotions)
	return promotions, nil
}

func (r *CachedPromotionRepository) FindByID(ctx context.Context, id uint) (*domain.Promotion, error) {
	return r.inner.FindByID(ctx, id)
}

func (r *CachedPromotionRepository) Create(ctx context.Context, promotion *domain.Promotion) error {
	if err := r.inner.Create(ctx, promotion); err != nil {
		return err
	}
	r.invalidate(ctx, promotion.ProductID)
	return nil
}

func (r *CachedPromotionRepository) Update(ctx context.Context, promotion *domain.Promotion) error {
	// An update may re-point the promotion at another product; the old
	// product's cached list must drop the promotion too.
	prior, err := r.inner.FindByID(ctx, promotion.ID)
	if err != nil {
		return err
	}
	if err := r.inner.Update(ctx, promotion); err != nil {
		return err
	}
	r.invalidate(ctx, promotion.ProductID)
	if prior.ProductID != promotion.ProductID {
		r.invalidate(ctx, prior.ProductID)
	}
	return nil
}

func (r *CachedPromotionRepository) Delete(ctx context.Context, id uint) error {
	promotion, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, promotion.ProductID)
	return nil
}

func (r *CachedPromotionRepository) set(ctx context.Context, key string, promotions []domain.Promotion) {
	if r.redis == nil {
		return
	}
	payload, err := json.Marshal(promotions)
	if err != nil {
		return
	}
	if err := r.redis.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Failed to cache promotions")
	}
}

func (r *CachedPromotionRepository) invalidate(ctx context.Context, productID string) {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(ctx, allKey, productKey(productID)).Err(); err != nil {
		logger.Warn(ctx).Err(err).Str("product_id", productID).Msg("Failed to invalidate promotion cache")
	}
}
