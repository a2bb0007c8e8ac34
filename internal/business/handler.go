package business

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /business/login
// --------------------------------------------------
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		PhoneNumber   string `json:"phoneNumber"`
		LicenseNumber string `json:"licenseNumber"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	token, b, err := h.service.Login(c.Request.Context(), req.PhoneNumber, req.LicenseNumber)
	switch {
	case errors.Is(err, ErrBusinessNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		return
	case errors.Is(err, ErrCredentialMismatch):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"token":    token,
		"business": b,
	})
}

// --------------------------------------------------
// GET /business/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	businessID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid business id"})
		return
	}

	b, err := h.service.Get(c.Request.Context(), businessID)
	if errors.Is(err, ErrBusinessNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch business"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": b})
}

// --------------------------------------------------
// GET /business/verify/:license
// --------------------------------------------------
func (h *Handler) VerifyByLicense(c *gin.Context) {
	b, err := h.service.GetByLicense(c.Request.Context(), c.Param("license"))
	if errors.Is(err, ErrBusinessNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch business"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": b})
}

// --------------------------------------------------
// PUT /business/:id
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	businessID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid business id"})
		return
	}

	// A business may only update its own profile.
	authID := c.GetInt("businessID")
	if authID != businessID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "forbidden"})
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	b, err := h.service.Update(c.Request.Context(), businessID, &req)
	if errors.Is(err, ErrBusinessNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update business"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": b})
}
