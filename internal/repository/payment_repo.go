package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/you/shoe-resale/internal/domain"
)

type PaymentRepo struct{ db *gorm.DB }

func NewPaymentRepo(db *gorm.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Payment{})
}

// InsertIfAbsent appends the payment unless one is already recorded for the
// shoe. The unique shoe index plus DO NOTHING makes concurrent settlements
// of the same shoe race-safe: exactly one insert wins.
func (r *PaymentRepo) InsertIfAbsent(ctx context.Context, p *domain.Payment) (bool, error) {
	if p.ID == "" {
		p.ID = domain.NewID()
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "shoe_id"}}, DoNothing: true}).
		Create(p)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
