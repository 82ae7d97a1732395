package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func promo(id uint, product string, discount float64, created time.Time) Promotion {
	return Promotion{
		ID:        id,
		Title:     "Summer Sale",
		ProductID: product,
		Discount:  discount,
		StartDate: now.AddDate(0, 0, -7),
		EndDate:   now.AddDate(0, 0, 7),
		CreatedAt: created,
	}
}

func TestPriceForActivePromotion(t *testing.T) {
	promos := []Promotion{promo(1, "sneaker-01", 20, now.AddDate(0, 0, -3))}

	quote := PriceFor(100.00, "sneaker-01", promos, now)

	assert.True(t, quote.Active)
	assert.Equal(t, 20.0, quote.DiscountPercent)
	assert.Equal(t, 20.00, quote.Discount)
	assert.Equal(t, 80.00, quote.DiscountedPrice)
}

func TestPriceForNoMatchingProduct(t *testing.T) {
	promos := []Promotion{promo(1, "sneaker-01", 20, now)}

	quote := PriceFor(100.00, "hoodie-02", promos, now)

	assert.False(t, quote.Active)
	assert.Equal(t, 0.0, quote.Discount)
	assert.Equal(t, 100.00, quote.DiscountedPrice)
}

func TestPriceForWindowInclusive(t *testing.T) {
	p := promo(1, "sneaker-01", 10, now)
	p.StartDate = now
	p.EndDate = now

	quote := PriceFor(50.00, "sneaker-01", []Promotion{p}, now)

	assert.True(t, quote.Active, "window bounds are inclusive")
}

func TestPriceForExpiredPromotion(t *testing.T) {
	p := promo(1, "sneaker-01", 10, now)
	p.StartDate = now.AddDate(0, 0, -14)
	p.EndDate = now.AddDate(0, 0, -7)

	quote := PriceFor(50.00, "sneaker-01", []Promotion{p}, now)

	assert.False(t, quote.Active)
}

func TestPriceForPicksLatestCreated(t *testing.T) {
	promos := []Promotion{
		promo(1, "sneaker-01", 10, now.AddDate(0, 0, -5)),
		promo(2, "sneaker-01", 25, now.AddDate(0, 0, -1)),
		promo(3, "sneaker-01", 15, now.AddDate(0, 0, -3)),
	}

	quote := PriceFor(100.00, "sneaker-01", promos, now)

	assert.Equal(t, uint(2), quote.PromotionID)
	assert.Equal(t, 25.0, quote.DiscountPercent)
}

func TestPriceForTieBreaksOnHigherID(t *testing.T) {
	created := now.AddDate(0, 0, -2)
	promos := []Promotion{
		promo(7, "sneaker-01", 10, created),
		promo(9, "sneaker-01", 30, created),
		promo(8, "sneaker-01", 20, created),
	}

	quote := PriceFor(100.00, "sneaker-01", promos, now)

	assert.Equal(t, uint(9), quote.PromotionID)
}

func TestPriceForIsIdempotent(t *testing.T) {
	promos := []Promotion{promo(1, "sneaker-01", 17.5, now.AddDate(0, 0, -1))}

	first := PriceFor(79.99, "sneaker-01", promos, now)
	second := PriceFor(79.99, "sneaker-01", promos, now)

	assert.Equal(t, first, second)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 80.00, Round2(80.004))
	assert.Equal(t, 80.01, Round2(80.005))
	assert.Equal(t, 66.67, Round2(66.666666))
}
