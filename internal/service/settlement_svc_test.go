package service

import (
	"context"
	"errors"
	"testing"

	"github.com/you/shoe-resale/internal/domain"
)

type fixture struct {
	users    *memUsers
	shoes    *memShoes
	adverts  *memAdverts
	bookings *memBookings
	payments *memPayments
	pub      *memPublisher
	settle   *SettlementSvc
}

func newFixture() *fixture {
	f := &fixture{
		users:    newMemUsers(),
		shoes:    newMemShoes(),
		adverts:  newMemAdverts(),
		bookings: newMemBookings(),
		payments: newMemPayments(),
		pub:      &memPublisher{},
	}
	f.settle = NewSettlementSvc(f.payments, f.shoes, f.bookings, f.adverts, f.pub)
	return f
}

// seedListing creates a shoe with a booking and an advert against it.
func (f *fixture) seedListing(t *testing.T, price int64) *domain.Shoe {
	t.Helper()
	ctx := context.Background()
	shoe := &domain.Shoe{SellerEmail: "seller@x.com", Name: "runner", Price: price}
	if err := f.shoes.Create(ctx, shoe); err != nil {
		t.Fatalf("seed shoe: %v", err)
	}
	if err := f.bookings.Create(ctx, &domain.Booking{ShoeID: shoe.ID, BuyerEmail: "buyer@x.com", Price: price}); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	if _, err := f.adverts.Create(ctx, &domain.Advertisement{ShoeID: shoe.ID}); err != nil {
		t.Fatalf("seed advert: %v", err)
	}
	return shoe
}

func TestSettleRemovesListingBookingAndAdvert(t *testing.T) {
	f := newFixture()
	shoe := f.seedListing(t, 100)

	res, err := f.settle.Settle(context.Background(), SettleInput{
		ShoeID: shoe.ID, BuyerEmail: "buyer@x.com", Amount: 10000, Currency: "usd", ChargeID: "chrg_1",
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if !res.PaymentRecorded {
		t.Fatalf("expected payment recorded")
	}
	if res.ShoesRemoved != 1 || res.BookingsRemoved != 1 || res.AdvertsRemoved != 1 {
		t.Fatalf("unexpected cleanup counts: %+v", res)
	}
	if len(f.payments.rows) != 1 {
		t.Fatalf("expected one payment, got %d", len(f.payments.rows))
	}
	if len(f.shoes.rows) != 0 || len(f.bookings.rows) != 0 || len(f.adverts.rows) != 0 {
		t.Fatalf("expected empty stores after settlement")
	}
	if len(f.pub.keys) != 1 || f.pub.keys[0] != "payment.settled" {
		t.Fatalf("expected payment.settled event, got %v", f.pub.keys)
	}
}

func TestSettleIsIdempotent(t *testing.T) {
	f := newFixture()
	shoe := f.seedListing(t, 100)
	in := SettleInput{ShoeID: shoe.ID, BuyerEmail: "buyer@x.com", Amount: 10000, Currency: "usd"}

	first, err := f.settle.Settle(context.Background(), in)
	if err != nil {
		t.Fatalf("first settle: %v", err)
	}
	if !first.PaymentRecorded {
		t.Fatalf("first settle should record the payment")
	}

	second, err := f.settle.Settle(context.Background(), in)
	if err != nil {
		t.Fatalf("second settle must not error: %v", err)
	}
	if second.PaymentRecorded {
		t.Fatalf("second settle must not record another payment")
	}
	if second.ShoesRemoved != 0 || second.BookingsRemoved != 0 || second.AdvertsRemoved != 0 {
		t.Fatalf("second settle should be a no-op cleanup: %+v", second)
	}
	if len(f.payments.rows) != 1 {
		t.Fatalf("expected exactly one payment, got %d", len(f.payments.rows))
	}
}

func TestSettleFailedInsertPerformsNoDeletes(t *testing.T) {
	f := newFixture()
	shoe := f.seedListing(t, 100)
	f.payments.failNext = true

	_, err := f.settle.Settle(context.Background(), SettleInput{
		ShoeID: shoe.ID, BuyerEmail: "buyer@x.com", Amount: 10000,
	})
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("expected storage error, got %v", err)
	}
	// charge without listing removal; nothing may be deleted
	if len(f.shoes.rows) != 1 || len(f.bookings.rows) != 1 || len(f.adverts.rows) != 1 {
		t.Fatalf("deletes must not run after a failed payment insert")
	}
	if len(f.payments.rows) != 0 {
		t.Fatalf("no payment should be recorded")
	}

	// the caller's retry converges
	res, err := f.settle.Settle(context.Background(), SettleInput{
		ShoeID: shoe.ID, BuyerEmail: "buyer@x.com", Amount: 10000,
	})
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !res.PaymentRecorded || len(f.shoes.rows) != 0 {
		t.Fatalf("retry should settle fully: %+v", res)
	}
}

func TestSettleRejectsAmountMismatch(t *testing.T) {
	f := newFixture()
	shoe := f.seedListing(t, 100)

	_, err := f.settle.Settle(context.Background(), SettleInput{
		ShoeID: shoe.ID, BuyerEmail: "buyer@x.com", Amount: 9999,
	})
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
	if len(f.payments.rows) != 0 || len(f.shoes.rows) != 1 {
		t.Fatalf("mismatched amount must not settle")
	}
}

func TestSettleRejectsMalformedShoeID(t *testing.T) {
	f := newFixture()
	_, err := f.settle.Settle(context.Background(), SettleInput{
		ShoeID: "not-an-object-id", BuyerEmail: "buyer@x.com", Amount: 100,
	})
	if !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected invalid id, got %v", err)
	}
}

// Full flow: list, book, compute the charge amount, confirm, settle.
func TestEndToEndPurchase(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	catalog := NewCatalogSvc(f.shoes, f.adverts, f.bookings)
	bookingSvc := NewBookingSvc(f.bookings, f.shoes, f.pub)

	shoe, err := catalog.CreateShoe(ctx, domain.NewID(), "seller@x.com", CreateShoeInput{Name: "S1", Price: 100})
	if err != nil {
		t.Fatalf("create shoe: %v", err)
	}
	if _, err := catalog.Advertise(ctx, shoe.ID); err != nil {
		t.Fatalf("advertise: %v", err)
	}
	if _, err := bookingSvc.Create(ctx, "u1@x.com", CreateBookingInput{ShoeID: shoe.ID, Price: 100}); err != nil {
		t.Fatalf("book: %v", err)
	}

	amount := domain.MinorUnits(shoe.Price)
	if amount != 10000 {
		t.Fatalf("expected amount 10000, got %d", amount)
	}

	res, err := f.settle.Settle(ctx, SettleInput{ShoeID: shoe.ID, BuyerEmail: "u1@x.com", Amount: amount})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if !res.PaymentRecorded {
		t.Fatalf("payment not recorded")
	}
	if len(f.payments.rows) != 1 {
		t.Fatalf("expected one payment")
	}
	if got, ok := f.payments.rows[shoe.ID]; !ok || got.BuyerEmail != "u1@x.com" || got.Amount != 10000 {
		t.Fatalf("unexpected payment record: %+v", got)
	}
	if len(f.shoes.rows) != 0 || len(f.bookings.rows) != 0 || len(f.adverts.rows) != 0 {
		t.Fatalf("expected no records referencing %s after settlement", shoe.ID)
	}
}
