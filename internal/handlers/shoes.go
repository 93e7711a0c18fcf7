package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/shoe-resale/internal/service"
)

type ShoeHandler struct {
	catalog *service.CatalogSvc
	users   service.UserStore
}

func NewShoeHandler(catalog *service.CatalogSvc, users service.UserStore) *ShoeHandler {
	return &ShoeHandler{catalog: catalog, users: users}
}

// POST /shoes (seller)
func (h *ShoeHandler) Create(c *gin.Context) {
	var in struct {
		Name      string `json:"name" binding:"required"`
		Category  string `json:"category"`
		Price     int64  `json:"price" binding:"required"`
		Condition string `json:"condition"`
		Location  string `json:"location"`
		ImageURL  string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email := c.GetString("email")
	seller, err := h.users.ByEmail(c.Request.Context(), email)
	if err != nil {
		writeErr(c, err)
		return
	}
	shoe, err := h.catalog.CreateShoe(c.Request.Context(), seller.ID, seller.Email, service.CreateShoeInput{
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Condition: in.Condition,
		Location:  in.Location,
		ImageURL:  in.ImageURL,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, shoe)
}

// GET /shoes/:id
func (h *ShoeHandler) Get(c *gin.Context) {
	shoe, err := h.catalog.GetShoe(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, shoe)
}

// DELETE /shoes/:id (seller or admin)
func (h *ShoeHandler) Delete(c *gin.Context) {
	if err := h.catalog.DeleteShoe(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /advertise (seller)
func (h *ShoeHandler) Advertise(c *gin.Context) {
	var in struct {
		ShoeID string `json:"shoe_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.catalog.Advertise(c.Request.Context(), in.ShoeID)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GET /advertised/:id
func (h *ShoeHandler) IsAdvertised(c *gin.Context) {
	ok, err := h.catalog.IsAdvertised(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"advertised": ok})
}
