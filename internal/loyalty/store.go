package loyalty

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	userdomain "github.com/snazzy/storefront/internal/user/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

// GormBalanceStore serializes balance adjustments with a SELECT ... FOR
// UPDATE row lock so concurrent order creation and refund approval for
// the same user cannot interleave lost updates.
type GormBalanceStore struct {
	db *gorm.DB
}

func NewGormBalanceStore(db *gorm.DB) *GormBalanceStore {
	return &GormBalanceStore{db: db}
}

func (s *GormBalanceStore) AdjustBalance(ctx context.Context, userID uint, apply func(current int) (int, error)) (int, error) {
	var newBalance int

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user userdomain.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user %d: %w", userID, apperror.ErrNotFound)
			}
			return err
		}

		next, err := apply(user.LoyaltyPoints)
		if err != nil {
			return err
		}
		if next < 0 {
			// The balance is never allowed to go negative.
			next = 0
		}

		if err := tx.Model(&user).Update("loyalty_points", next).Error; err != nil {
			return err
		}

		newBalance = next
		return nil
	})
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}
