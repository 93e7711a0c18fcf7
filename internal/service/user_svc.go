package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/you/shoe-resale/internal/domain"
	"github.com/you/shoe-resale/pkg/auth"
)

// UserSvc is the user directory: registration, token issuance, role
// resolution and admin management.
type UserSvc struct {
	repo      UserStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewUserSvc(r UserStore, jwtSecret string, tokenTTL time.Duration) *UserSvc {
	return &UserSvc{repo: r, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *UserSvc) Register(ctx context.Context, email, name string, userType domain.UserType) (*domain.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidRequest)
	}
	if userType != domain.UserTypeSeller && userType != domain.UserTypeCustomer {
		return nil, fmt.Errorf("%w: user_type must be Seller or Customer", domain.ErrInvalidRequest)
	}
	u := &domain.User{Email: email, Name: name, UserType: userType}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// IssueToken signs an access token for a registered identity. Unknown
// emails get ErrForbidden so the handler can answer with an empty token.
func (s *UserSvc) IssueToken(ctx context.Context, email string) (string, error) {
	if _, err := s.repo.ByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrForbidden
		}
		return "", err
	}
	return auth.CreateAccessToken(email, s.jwtSecret, s.tokenTTL)
}

// IsAdmin resolves the stored role. Absent users are simply not admins.
func (s *UserSvc) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.repo.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.IsAdmin(), nil
}

func (s *UserSvc) IsSeller(ctx context.Context, email string) (bool, error) {
	u, err := s.repo.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.IsSeller(), nil
}

// PromoteAdmin grants role=admin; promoting an admin again is a no-op.
func (s *UserSvc) PromoteAdmin(ctx context.Context, id string) error {
	id, err := domain.ParseID(id)
	if err != nil {
		return err
	}
	return s.repo.PromoteAdmin(ctx, id)
}

func (s *UserSvc) Delete(ctx context.Context, id string) error {
	id, err := domain.ParseID(id)
	if err != nil {
		return err
	}
	n, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
