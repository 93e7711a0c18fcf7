package main

import (
	"context"
	"encoding/json"
	"log"
	"os/signal"
	"syscall"

	"github.com/kelseyhightower/envconfig"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/you/shoe-resale/pkg/mq"
)

// Console notifier for marketplace events. Listens for booking intents and
// settled payments and writes human-readable lines; swap the print for an
// email/SMS sender when one exists.

type Cfg struct {
	RabbitURL     string `envconfig:"RABBIT_URL" required:"true"`
	EventExchange string `envconfig:"EVENT_EXCHANGE" default:"resale.exchange"`
	Queue         string `envconfig:"NOTIFY_QUEUE" default:"notification.q"`
}

type bookingCreated struct {
	BookingID  string `json:"booking_id"`
	ShoeID     string `json:"shoe_id"`
	BuyerEmail string `json:"buyer_email"`
	Price      int64  `json:"price"`
}

type paymentSettled struct {
	ShoeID     string `json:"shoe_id"`
	BuyerEmail string `json:"buyer_email"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	ChargeID   string `json:"charge_id"`
}

func main() {
	var cfg Cfg
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal(err)
	}

	cons, err := mq.NewConsumer(cfg.RabbitURL, cfg.EventExchange, cfg.Queue,
		[]string{"booking.created", "payment.settled"})
	if err != nil {
		log.Fatal(err)
	}
	defer cons.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	msgs, err := cons.Deliveries(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("[notify] consuming queue=%s exchange=%s", cfg.Queue, cfg.EventExchange)

	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-msgs:
			if !ok {
				return
			}
			if err := handle(d); err != nil {
				log.Printf("[notify] handle key=%s: %v", d.RoutingKey, err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func handle(d amqp.Delivery) error {
	switch d.RoutingKey {
	case "booking.created":
		var ev bookingCreated
		if err := json.Unmarshal(d.Body, &ev); err != nil {
			return err
		}
		log.Printf("[notify] booking %s: %s wants shoe %s for %d", ev.BookingID, ev.BuyerEmail, ev.ShoeID, ev.Price)
	case "payment.settled":
		var ev paymentSettled
		if err := json.Unmarshal(d.Body, &ev); err != nil {
			return err
		}
		log.Printf("[notify] settled shoe %s: %s paid %d %s (charge=%s)", ev.ShoeID, ev.BuyerEmail, ev.Amount, ev.Currency, ev.ChargeID)
	default:
		log.Printf("[notify] skip unknown key=%s", d.RoutingKey)
	}
	return nil
}
