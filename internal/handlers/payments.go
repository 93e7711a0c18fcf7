package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/shoe-resale/internal/service"
)

type PaymentHandler struct {
	charges    *service.ChargeSvc
	settlement *service.SettlementSvc
}

func NewPaymentHandler(charges *service.ChargeSvc, settlement *service.SettlementSvc) *PaymentHandler {
	return &PaymentHandler{charges: charges, settlement: settlement}
}

// POST /payments/intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var in struct {
		ShoeID    string `json:"shoe_id" binding:"required"`
		CardToken string `json:"card_token"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	intent, err := h.charges.CreateIntent(c.Request.Context(), in.ShoeID, c.GetString("email"), in.CardToken)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, intent)
}

// POST /payments/confirm
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var in struct {
		ShoeID   string `json:"shoe_id" binding:"required"`
		Amount   int64  `json:"amount" binding:"required"`
		Currency string `json:"currency"`
		ChargeID string `json:"charge_id"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.settlement.Settle(c.Request.Context(), service.SettleInput{
		ShoeID:     in.ShoeID,
		BuyerEmail: c.GetString("email"),
		Amount:     in.Amount,
		Currency:   in.Currency,
		ChargeID:   in.ChargeID,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
