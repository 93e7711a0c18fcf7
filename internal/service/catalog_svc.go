package service

import (
	"context"
	"fmt"

	"github.com/you/shoe-resale/internal/domain"
)

// CatalogSvc manages shoe listings and their adverts.
type CatalogSvc struct {
	shoes    ShoeStore
	adverts  AdvertStore
	bookings BookingStore
}

func NewCatalogSvc(s ShoeStore, a AdvertStore, b BookingStore) *CatalogSvc {
	return &CatalogSvc{shoes: s, adverts: a, bookings: b}
}

type CreateShoeInput struct {
	Name      string
	Category  string
	Price     int64
	Condition string
	Location  string
	ImageURL  string
}

func (s *CatalogSvc) CreateShoe(ctx context.Context, sellerID, sellerEmail string, in CreateShoeInput) (*domain.Shoe, error) {
	if in.Name == "" || in.Price <= 0 {
		return nil, fmt.Errorf("%w: name and a positive price are required", domain.ErrInvalidRequest)
	}
	shoe := &domain.Shoe{
		SellerID:    sellerID,
		SellerEmail: sellerEmail,
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Condition:   in.Condition,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
	}
	if err := s.shoes.Create(ctx, shoe); err != nil {
		return nil, err
	}
	return shoe, nil
}

func (s *CatalogSvc) GetShoe(ctx context.Context, id string) (*domain.Shoe, error) {
	id, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.shoes.ByID(ctx, id)
}

// DeleteShoe removes a listing together with its bookings and advert, the
// same per-collection cleanup settlement performs minus the payment.
func (s *CatalogSvc) DeleteShoe(ctx context.Context, id string) error {
	id, err := domain.ParseID(id)
	if err != nil {
		return err
	}
	n, err := s.shoes.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	if _, err := s.bookings.DeleteByShoeID(ctx, id); err != nil {
		return err
	}
	_, err = s.adverts.DeleteByShoeID(ctx, id)
	return err
}

// Advertise promotes a listing. Advertising twice is a no-op, keeping one
// advert per shoe.
func (s *CatalogSvc) Advertise(ctx context.Context, shoeID string) (*domain.Advertisement, error) {
	shoeID, err := domain.ParseID(shoeID)
	if err != nil {
		return nil, err
	}
	if _, err := s.shoes.ByID(ctx, shoeID); err != nil {
		return nil, err
	}
	a := &domain.Advertisement{ShoeID: shoeID}
	if _, err := s.adverts.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *CatalogSvc) IsAdvertised(ctx context.Context, shoeID string) (bool, error) {
	shoeID, err := domain.ParseID(shoeID)
	if err != nil {
		return false, err
	}
	return s.adverts.ExistsByShoeID(ctx, shoeID)
}
