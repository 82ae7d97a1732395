package command

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/snazzy/storefront/internal/user/domain"
	"github.com/snazzy/storefront/pkg/apperror"
	"github.com/snazzy/storefront/pkg/auth"
)

// LoginUserCommand represents the command to authenticate a user
type LoginUserCommand struct {
	Username string
	Password string
}

// LoginUserHandler handles the login command
type LoginUserHandler struct {
	repo domain.UserRepository
}

func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle validates credentials and returns a signed token with the user
func (h *LoginUserHandler) Handle(ctx context.Context, cmd LoginUserCommand) (string, *domain.User, error) {
	user, err := h.repo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return "", nil, fmt.Errorf("invalid credentials: %w", apperror.ErrValidation)
		}
		return "", nil, err
	}

	if !user.IsActive {
		return "", nil, fmt.Errorf("account disabled: %w", apperror.ErrValidation)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(cmd.Password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials: %w", apperror.ErrValidation)
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user, nil
}
