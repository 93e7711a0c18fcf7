package service

import (
	"context"
	"fmt"
	"log"

	"github.com/you/shoe-resale/internal/domain"
)

type BookingSvc struct {
	repo  BookingStore
	shoes ShoeStore
	pub   EventPublisher
}

func NewBookingSvc(r BookingStore, s ShoeStore, pub EventPublisher) *BookingSvc {
	return &BookingSvc{repo: r, shoes: s, pub: pub}
}

type CreateBookingInput struct {
	ShoeID          string
	Price           int64
	MeetingLocation string
	Phone           string
}

// Create records a purchase intent. The price snapshot must match the
// current listing so a stale client can't book at an old price.
func (s *BookingSvc) Create(ctx context.Context, buyerEmail string, in CreateBookingInput) (*domain.Booking, error) {
	shoeID, err := domain.ParseID(in.ShoeID)
	if err != nil {
		return nil, err
	}
	shoe, err := s.shoes.ByID(ctx, shoeID)
	if err != nil {
		return nil, err
	}
	if in.Price != shoe.Price {
		return nil, fmt.Errorf("%w: price %d does not match listing", domain.ErrInvalidRequest, in.Price)
	}
	b := &domain.Booking{
		ShoeID:          shoeID,
		BuyerEmail:      buyerEmail,
		Price:           shoe.Price,
		MeetingLocation: in.MeetingLocation,
		Phone:           in.Phone,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	if s.pub != nil {
		if err := s.pub.PublishJSON(ctx, "booking.created", map[string]any{
			"booking_id": b.ID, "shoe_id": b.ShoeID, "buyer_email": b.BuyerEmail, "price": b.Price,
		}); err != nil {
			log.Printf("[booking] publish booking.created: %v", err)
		}
	}
	return b, nil
}

// Cancel deletes a booking. Only the buyer who made it may cancel it.
func (s *BookingSvc) Cancel(ctx context.Context, id, requesterEmail string) error {
	id, err := domain.ParseID(id)
	if err != nil {
		return err
	}
	b, err := s.repo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if b.BuyerEmail != requesterEmail {
		return domain.ErrForbidden
	}
	_, err = s.repo.DeleteByID(ctx, id)
	return err
}
