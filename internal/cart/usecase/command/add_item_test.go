package command

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/snazzy/storefront/internal/cart/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) Add(ctx context.Context, item *domain.CartItem) error {
	args := m.Called(ctx, item)
	if args.Error(0) == nil {
		item.ID = 1
	}
	return args.Error(0)
}

func (m *mockCartRepo) FindByUser(ctx context.Context, userID uint) ([]domain.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]domain.CartItem)
	return items, args.Error(1)
}

func (m *mockCartRepo) Remove(ctx context.Context, userID, itemID uint) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

func (m *mockCartRepo) Clear(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

func TestAddItem_StagesItem(t *testing.T) {
	repo := new(mockCartRepo)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*domain.CartItem")).Return(nil)

	h := NewAddItemHandler(repo)
	item, err := h.Handle(context.Background(), AddItemCommand{
		UserID:      7,
		ProductID:   "hoodie-01",
		ProductName: "Classic Hoodie",
		Size:        "M",
		Quantity:    2,
		UnitPrice:   25.00,
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(7), item.UserID)
	assert.Equal(t, 2, item.Quantity)
	repo.AssertExpectations(t)
}

func TestAddItem_RejectsInvalidInput(t *testing.T) {
	h := NewAddItemHandler(new(mockCartRepo))

	cases := []struct {
		name string
		cmd  AddItemCommand
	}{
		{"missing product", AddItemCommand{UserID: 7, Quantity: 1}},
		{"zero quantity", AddItemCommand{UserID: 7, ProductID: "hoodie-01"}},
		{"negative price", AddItemCommand{UserID: 7, ProductID: "hoodie-01", Quantity: 1, UnitPrice: -1}},
		{"unknown size", AddItemCommand{UserID: 7, ProductID: "hoodie-01", Quantity: 1, Size: "XXXL"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.Handle(context.Background(), tc.cmd)
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}
}

func TestRemoveItem_ScopedToOwner(t *testing.T) {
	repo := new(mockCartRepo)
	repo.On("Remove", mock.Anything, uint(7), uint(3)).
		Return(fmt.Errorf("cart item 3: %w", apperror.ErrNotFound))

	h := NewRemoveItemHandler(repo)
	err := h.Handle(context.Background(), RemoveItemCommand{UserID: 7, ItemID: 3})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRemoveItem_Removes(t *testing.T) {
	repo := new(mockCartRepo)
	repo.On("Remove", mock.Anything, uint(7), uint(3)).Return(nil)

	h := NewRemoveItemHandler(repo)
	assert.NoError(t, h.Handle(context.Background(), RemoveItemCommand{UserID: 7, ItemID: 3}))
	repo.AssertExpectations(t)
}
