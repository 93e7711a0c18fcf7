package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/you/shoe-resale/internal/domain"
)

type ShoeRepo struct{ db *gorm.DB }

func NewShoeRepo(db *gorm.DB) *ShoeRepo {
	return &ShoeRepo{db: db}
}

func (r *ShoeRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Shoe{})
}

func (r *ShoeRepo) Create(ctx context.Context, s *domain.Shoe) error {
	if s.ID == "" {
		s.ID = domain.NewID()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ShoeRepo) ByID(ctx context.Context, id string) (*domain.Shoe, error) {
	var s domain.Shoe
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// DeleteByID removes the listing and reports how many rows matched; deleting
// an already-absent shoe is not an error.
func (r *ShoeRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Shoe{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
