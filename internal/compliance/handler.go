package compliance

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func businessIDParam(c *gin.Context) (int, bool) {
	businessID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid business id"})
		return 0, false
	}
	return businessID, true
}

// --------------------------------------------------
// GET /business/:id/certifications
// --------------------------------------------------
func (h *Handler) ListCertifications(c *gin.Context) {
	businessID, ok := businessIDParam(c)
	if !ok {
		return
	}

	certs, err := h.repo.ListCertifications(c.Request.Context(), businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch certifications"})
		return
	}
	if certs == nil {
		certs = []*Certification{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": certs})
}

// --------------------------------------------------
// POST /business/:id/certifications
// --------------------------------------------------
func (h *Handler) CreateCertification(c *gin.Context) {
	businessID, ok := businessIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Type       string     `json:"type"`
		Number     string     `json:"number"`
		IssueDate  *time.Time `json:"issue_date"`
		ExpiryDate *time.Time `json:"expiry_date"`
		Status     string     `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Type) == "" || strings.TrimSpace(req.Number) == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "type and number are required"})
		return
	}
	if req.Status == "" {
		req.Status = "Active"
	}

	cert := &Certification{
		BusinessID: businessID,
		Type:       strings.TrimSpace(req.Type),
		Number:     strings.TrimSpace(req.Number),
		IssueDate:  req.IssueDate,
		ExpiryDate: req.ExpiryDate,
		Status:     req.Status,
	}
	if err := h.repo.CreateCertification(c.Request.Context(), cert); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create certification"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": cert})
}

// --------------------------------------------------
// GET /business/:id/lab-reports
// --------------------------------------------------
func (h *Handler) ListLabReports(c *gin.Context) {
	businessID, ok := businessIDParam(c)
	if !ok {
		return
	}

	reports, err := h.repo.ListLabReports(c.Request.Context(), businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch lab reports"})
		return
	}
	if reports == nil {
		reports = []*LabReport{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": reports})
}

// --------------------------------------------------
// POST /business/:id/lab-reports
// --------------------------------------------------
func (h *Handler) CreateLabReport(c *gin.Context) {
	businessID, ok := businessIDParam(c)
	if !ok {
		return
	}

	var req struct {
		ReportDate time.Time `json:"report_date"`
		TestType   string    `json:"test_type"`
		Result     string    `json:"result"`
		Notes      *string   `json:"notes"`
		Status     string    `json:"status"`
		ReportURL  *string   `json:"report_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.TestType) == "" || strings.TrimSpace(req.Result) == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "test_type and result are required"})
		return
	}
	if req.Status == "" {
		req.Status = "Pending"
	}

	report := &LabReport{
		BusinessID: businessID,
		ReportDate: req.ReportDate,
		TestType:   strings.TrimSpace(req.TestType),
		Result:     strings.TrimSpace(req.Result),
		Notes:      req.Notes,
		Status:     req.Status,
		ReportURL:  req.ReportURL,
	}
	if err := h.repo.CreateLabReport(c.Request.Context(), report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create lab report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": report})
}

// --------------------------------------------------
// GET /business/:id/hygiene-ratings
// --------------------------------------------------
func (h *Handler) ListHygieneRatings(c *gin.Context) {
	businessID, ok := businessIDParam(c)
	if !ok {
		return
	}

	ratings, err := h.repo.ListHygieneRatings(c.Request.Context(), businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch hygiene ratings"})
		return
	}
	if ratings == nil {
		ratings = []*HygieneRating{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": ratings})
}

// --------------------------------------------------
// GET /business/:id/reviews
// --------------------------------------------------
func (h *Handler) ListReviews(c *gin.Context) {
	businessID, ok := businessIDParam(c)
	if !ok {
		return
	}

	reviews, err := h.repo.ListReviews(c.Request.Context(), businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch reviews"})
		return
	}
	if reviews == nil {
		reviews = []*Review{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": reviews})
}
