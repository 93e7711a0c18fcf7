package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/shoe-resale/internal/service"
)

type BookingHandler struct {
	svc *service.BookingSvc
}

func NewBookingHandler(svc *service.BookingSvc) *BookingHandler { return &BookingHandler{svc: svc} }

// POST /bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var in struct {
		ShoeID          string `json:"shoe_id" binding:"required"`
		Price           int64  `json:"price" binding:"required"`
		MeetingLocation string `json:"meeting_location"`
		Phone           string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.svc.Create(c.Request.Context(), c.GetString("email"), service.CreateBookingInput{
		ShoeID:          in.ShoeID,
		Price:           in.Price,
		MeetingLocation: in.MeetingLocation,
		Phone:           in.Phone,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// DELETE /bookings/:id
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.svc.Cancel(c.Request.Context(), c.Param("id"), c.GetString("email")); err != nil {
		writeErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
