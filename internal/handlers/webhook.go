package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"

	"github.com/you/shoe-resale/internal/service"
)

// WebhookHandler settles charges confirmed by the processor. The inbound
// payload is never trusted directly: the event is re-retrieved from omise by
// id, so a forged request can at worst replay a real completion, which
// settlement absorbs idempotently.
type WebhookHandler struct {
	omc        *omise.Client
	settlement *service.SettlementSvc
}

func NewWebhookHandler(omc *omise.Client, settlement *service.SettlementSvc) *WebhookHandler {
	return &WebhookHandler{omc: omc, settlement: settlement}
}

// POST /webhooks/omise
func (h *WebhookHandler) Handle(c *gin.Context) {
	var inc struct {
		ID  string `json:"id"`
		Key string `json:"key"`
	}
	if err := c.ShouldBindJSON(&inc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	ev := &omise.Event{}
	if err := h.omc.Do(ev, &operations.RetrieveEvent{EventID: inc.ID}); err != nil {
		log.Printf("[webhook] retrieve event %s: %v", inc.ID, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown event"})
		return
	}

	if ev.Key != "charge.complete" {
		c.Status(http.StatusOK)
		return
	}

	// ev.Data is interface{}; round-trip through JSON to get a Charge
	raw, err := json.Marshal(ev.Data)
	if err != nil {
		log.Printf("[webhook] marshal event data: %v", err)
		c.Status(http.StatusOK)
		return
	}
	var ch omise.Charge
	if err := json.Unmarshal(raw, &ch); err != nil {
		log.Printf("[webhook] unmarshal charge: %v", err)
		c.Status(http.StatusOK)
		return
	}
	if ch.Status != "successful" {
		c.Status(http.StatusOK)
		return
	}

	shoeID, _ := ch.Metadata["shoe_id"].(string)
	buyerEmail, _ := ch.Metadata["buyer_email"].(string)
	res, err := h.settlement.Settle(c.Request.Context(), service.SettleInput{
		ShoeID:     shoeID,
		BuyerEmail: buyerEmail,
		Amount:     ch.Amount,
		Currency:   ch.Currency,
		ChargeID:   ch.ID,
	})
	if err != nil {
		// report the failure so the processor redelivers; settlement retries
		// are safe
		log.Printf("[webhook] settle charge %s: %v", ch.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "settlement failed"})
		return
	}
	c.JSON(http.StatusOK, res)
}
