package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/shoe-resale/internal/domain"
	"github.com/you/shoe-resale/internal/service"
)

type UserHandler struct {
	svc *service.UserSvc
}

func NewUserHandler(svc *service.UserSvc) *UserHandler { return &UserHandler{svc: svc} }

// POST /users
func (h *UserHandler) Register(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required"`
		Name     string `json:"name"`
		UserType string `json:"user_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.Register(c.Request.Context(), in.Email, in.Name, domain.UserType(in.UserType))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// GET /jwt?email=
func (h *UserHandler) IssueToken(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	token, err := h.svc.IssueToken(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"access_token": ""})
			return
		}
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

// GET /users/admin/:email
func (h *UserHandler) IsAdmin(c *gin.Context) {
	ok, err := h.svc.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_admin": ok})
}

// GET /users/seller/:email
func (h *UserHandler) IsSeller(c *gin.Context) {
	ok, err := h.svc.IsSeller(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_seller": ok})
}

// PUT /users/admin/:id (admin)
func (h *UserHandler) Promote(c *gin.Context) {
	if err := h.svc.PromoteAdmin(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": domain.RoleAdmin})
}

// DELETE /users/:id (admin)
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
