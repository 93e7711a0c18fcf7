package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/you/shoe-resale/internal/domain"
)

type AdvertRepo struct{ db *gorm.DB }

func NewAdvertRepo(db *gorm.DB) *AdvertRepo {
	return &AdvertRepo{db: db}
}

func (r *AdvertRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Advertisement{})
}

// Create inserts an advert unless one already exists for the shoe. Returns
// whether a new row was written.
func (r *AdvertRepo) Create(ctx context.Context, a *domain.Advertisement) (bool, error) {
	if a.ID == "" {
		a.ID = domain.NewID()
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "shoe_id"}}, DoNothing: true}).
		Create(a)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AdvertRepo) ExistsByShoeID(ctx context.Context, shoeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Advertisement{}).Where("shoe_id = ?", shoeID).Count(&count).Error
	return count > 0, err
}

func (r *AdvertRepo) DeleteByShoeID(ctx context.Context, shoeID string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Advertisement{}, "shoe_id = ?", shoeID)
	return res.RowsAffected, res.Error
}
