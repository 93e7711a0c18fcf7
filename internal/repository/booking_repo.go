package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/you/shoe-resale/internal/domain"
)

type BookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Booking{})
}

func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = domain.NewID()
	}
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepo) ByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Booking{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// DeleteByShoeID clears every booking intent against a shoe (settlement and
// listing-removal cleanup).
func (r *BookingRepo) DeleteByShoeID(ctx context.Context, shoeID string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Booking{}, "shoe_id = ?", shoeID)
	return res.RowsAffected, res.Error
}
