package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/you/shoe-resale/internal/domain"
)

// SettlementSvc finalizes a confirmed charge: it records the payment and
// clears the shoe's listing, bookings and advert. It is the only writer of
// payments and the only place the three stores are cleaned as a unit.
type SettlementSvc struct {
	payments PaymentStore
	shoes    ShoeStore
	bookings BookingStore
	adverts  AdvertStore
	pub      EventPublisher
}

func NewSettlementSvc(p PaymentStore, s ShoeStore, b BookingStore, a AdvertStore, pub EventPublisher) *SettlementSvc {
	return &SettlementSvc{payments: p, shoes: s, bookings: b, adverts: a, pub: pub}
}

type SettleInput struct {
	ShoeID     string
	BuyerEmail string
	Amount     int64
	Currency   string
	ChargeID   string
}

// SettlementResult reports each sub-operation so a caller retrying after a
// partial failure can see what remained to clean up.
type SettlementResult struct {
	PaymentRecorded bool  `json:"payment_recorded"`
	ShoesRemoved    int64 `json:"shoes_removed"`
	BookingsRemoved int64 `json:"bookings_removed"`
	AdvertsRemoved  int64 `json:"adverts_removed"`
}

// Settle is idempotent per shoe id. The payment insert is guarded by the
// unique shoe index, so a rerun (or a concurrent duplicate) records nothing
// and falls through to the no-op deletes. If the insert itself fails, no
// delete runs: a charge without listing removal is recoverable, a removed
// listing without a payment record is not.
func (s *SettlementSvc) Settle(ctx context.Context, in SettleInput) (*SettlementResult, error) {
	shoeID, err := domain.ParseID(in.ShoeID)
	if err != nil {
		return nil, err
	}
	if in.BuyerEmail == "" || in.Amount <= 0 {
		return nil, fmt.Errorf("%w: buyer_email and amount are required", domain.ErrInvalidRequest)
	}

	// While the listing is still present the confirmed amount must match the
	// listed price in minor units. On a retry the listing is already gone and
	// the first pass has validated the amount.
	if shoe, err := s.shoes.ByID(ctx, shoeID); err == nil {
		if in.Amount != domain.MinorUnits(shoe.Price) {
			return nil, fmt.Errorf("%w: amount %d does not match listed price", domain.ErrInvalidRequest, in.Amount)
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: load shoe: %v", domain.ErrStorageUnavailable, err)
	}

	recorded, err := s.payments.InsertIfAbsent(ctx, &domain.Payment{
		ShoeID:     shoeID,
		BuyerEmail: in.BuyerEmail,
		Amount:     in.Amount,
		Currency:   in.Currency,
		ChargeID:   in.ChargeID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: record payment: %v", domain.ErrStorageUnavailable, err)
	}

	res := &SettlementResult{PaymentRecorded: recorded}
	if res.ShoesRemoved, err = s.shoes.DeleteByID(ctx, shoeID); err != nil {
		return res, fmt.Errorf("%w: delete shoe: %v", domain.ErrStorageUnavailable, err)
	}
	if res.BookingsRemoved, err = s.bookings.DeleteByShoeID(ctx, shoeID); err != nil {
		return res, fmt.Errorf("%w: delete bookings: %v", domain.ErrStorageUnavailable, err)
	}
	if res.AdvertsRemoved, err = s.adverts.DeleteByShoeID(ctx, shoeID); err != nil {
		return res, fmt.Errorf("%w: delete adverts: %v", domain.ErrStorageUnavailable, err)
	}

	if s.pub != nil && recorded {
		if err := s.pub.PublishJSON(ctx, "payment.settled", map[string]any{
			"shoe_id": shoeID, "buyer_email": in.BuyerEmail,
			"amount": in.Amount, "currency": in.Currency, "charge_id": in.ChargeID,
		}); err != nil {
			log.Printf("[settlement] publish payment.settled: %v", err)
		}
	}
	return res, nil
}
