package team

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
// GET /business/:id/team-members
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	businessID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid business id"})
		return
	}

	members, err := h.repo.ListByBusiness(c.Request.Context(), businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch team members"})
		return
	}
	if members == nil {
		members = []*Member{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": members})
}

// --------------------------------------------------
// POST /business/:id/team-members
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	businessID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid business id"})
		return
	}

	var req struct {
		Name     string `json:"name"`
		Role     string `json:"role"`
		PhotoURL string `json:"photo_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Role) == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "name and role are required"})
		return
	}

	m := &Member{
		BusinessID: businessID,
		Name:       strings.TrimSpace(req.Name),
		Role:       strings.TrimSpace(req.Role),
		PhotoURL:   req.PhotoURL,
	}
	if err := h.repo.Create(c.Request.Context(), m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create team member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": m})
}
