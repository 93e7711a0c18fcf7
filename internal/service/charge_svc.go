package service

import (
	"context"
	"fmt"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"

	"github.com/you/shoe-resale/internal/domain"
)

// ChargeSvc asks the payment processor for a charge intent. The charged
// amount is always derived from the current listing, never from the client.
type ChargeSvc struct {
	omc      *omise.Client
	shoes    ShoeStore
	currency string
}

func NewChargeSvc(omc *omise.Client, shoes ShoeStore, currency string) *ChargeSvc {
	return &ChargeSvc{omc: omc, shoes: shoes, currency: currency}
}

// ChargeIntent carries the opaque reference the client completes the charge
// with out-of-band; settlement runs only after the processor's confirmation.
type ChargeIntent struct {
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	AuthorizeURI string `json:"authorize_uri,omitempty"`
}

// CreateIntent charges amount = price x 100 (minor units) against either a
// card token or, absent one, a freshly created promptpay source. Shoe and
// buyer ride along as charge metadata so the webhook can settle later.
func (s *ChargeSvc) CreateIntent(ctx context.Context, shoeID, buyerEmail, cardToken string) (*ChargeIntent, error) {
	shoeID, err := domain.ParseID(shoeID)
	if err != nil {
		return nil, err
	}
	shoe, err := s.shoes.ByID(ctx, shoeID)
	if err != nil {
		return nil, err
	}
	amount := domain.MinorUnits(shoe.Price)

	req := &operations.CreateCharge{
		Amount:   amount,
		Currency: s.currency,
		Metadata: map[string]any{"shoe_id": shoeID, "buyer_email": buyerEmail},
	}
	if cardToken != "" {
		req.Card = cardToken
	} else {
		src := &omise.Source{}
		if err := s.omc.Do(src, &operations.CreateSource{
			Type:     "promptpay",
			Amount:   amount,
			Currency: s.currency,
		}); err != nil {
			return nil, fmt.Errorf("create source: %w", err)
		}
		req.Source = src.ID
	}

	ch := &omise.Charge{}
	if err := s.omc.Do(ch, req); err != nil {
		return nil, fmt.Errorf("create charge: %w", err)
	}
	return &ChargeIntent{
		ClientSecret: ch.ID,
		Amount:       ch.Amount,
		Currency:     ch.Currency,
		AuthorizeURI: ch.AuthorizeURI,
	}, nil
}
