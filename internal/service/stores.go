package service

import (
	"context"

	"github.com/you/shoe-resale/internal/domain"
)

// Store interfaces are the slice of each repository the services actually
// use; tests swap in in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	ByID(ctx context.Context, id string) (*domain.User, error)
	PromoteAdmin(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type ShoeStore interface {
	Create(ctx context.Context, s *domain.Shoe) error
	ByID(ctx context.Context, id string) (*domain.Shoe, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type AdvertStore interface {
	Create(ctx context.Context, a *domain.Advertisement) (bool, error)
	ExistsByShoeID(ctx context.Context, shoeID string) (bool, error)
	DeleteByShoeID(ctx context.Context, shoeID string) (int64, error)
}

type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	ByID(ctx context.Context, id string) (*domain.Booking, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
	DeleteByShoeID(ctx context.Context, shoeID string) (int64, error)
}

type PaymentStore interface {
	InsertIfAbsent(ctx context.Context, p *domain.Payment) (bool, error)
}

// EventPublisher is satisfied by mq.Publisher. A nil publisher disables
// eventing (tests, local runs without a broker).
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}
