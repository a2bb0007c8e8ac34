package facility

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// GET /business/:id/facility-photos
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	businessID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid business id"})
		return
	}

	photos, err := h.repo.ListByBusiness(c.Request.Context(), businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch facility photos"})
		return
	}
	if photos == nil {
		photos = []*Photo{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": photos})
}

// --------------------------------------------------
// POST /business/:id/facility-photos
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	businessID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid business id"})
		return
	}

	var req struct {
		AreaName string `json:"area_name"`
		PhotoURL string `json:"photo_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.AreaName) == "" || req.PhotoURL == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "area_name and photo_url are required"})
		return
	}

	p := &Photo{
		BusinessID: businessID,
		AreaName:   strings.TrimSpace(req.AreaName),
		PhotoURL:   req.PhotoURL,
	}
	if err := h.repo.Create(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create facility photo"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": p})
}
