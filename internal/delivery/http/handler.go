package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealbridge/backend/internal/domain"
	"github.com/dealbridge/backend/internal/usecase"
)

// sellerIDHeader identifies the calling seller. Authentication itself is an
// external collaborator; this header stands in for the verified principal.
const sellerIDHeader = "X-Seller-ID"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	deals *usecase.DealService
}

// NewHandler creates a new HTTP handler
func NewHandler(deals *usecase.DealService) *Handler {
	return &Handler{deals: deals}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "dealbridge-backend",
		"version": "1.0.0",
	})
}

// CreateDeal ingests a new deal listing.
func (h *Handler) CreateDeal(c *gin.Context) {
	var deal domain.Deal
	if err := c.ShouldBindJSON(&deal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if err := h.deals.CreateDeal(c.Request.Context(), &deal); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, deal)
}

// GetDeal returns one deal by id.
func (h *Handler) GetDeal(c *gin.Context) {
	deal, err := h.deals.GetDeal(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deal)
}

// ListDeals returns the calling seller's own deal listings.
func (h *Handler) ListDeals(c *gin.Context) {
	sellerID := c.GetHeader(sellerIDHeader)
	if sellerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + sellerIDHeader + " header"})
		return
	}

	deals, err := h.deals.ListDealsBySeller(c.Request.Context(), sellerID)
	if err != nil {
		respondError(c, err)
		return
	}

	if deals == nil {
		deals = []domain.Deal{}
	}
	c.JSON(http.StatusOK, gin.H{
		"deals": deals,
		"total": len(deals),
	})
}

// FindMatchingBuyers returns the ranked buyer-match list for a deal. Only
// the deal's owning seller may call it; an empty list is a successful
// response, not an error.
func (h *Handler) FindMatchingBuyers(c *gin.Context) {
	sellerID := c.GetHeader(sellerIDHeader)
	if sellerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + sellerIDHeader + " header"})
		return
	}

	results, err := h.deals.FindMatchingBuyers(c.Request.Context(), c.Param("id"), sellerID)
	if err != nil {
		respondError(c, err)
		return
	}

	if results == nil {
		results = []domain.MatchResult{}
	}
	c.JSON(http.StatusOK, gin.H{
		"matches": results,
		"total":   len(results),
	})
}

// CreateCompanyProfile ingests a buyer company profile.
func (h *Handler) CreateCompanyProfile(c *gin.Context) {
	var profile domain.CompanyProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if err := h.deals.CreateProfile(c.Request.Context(), &profile); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetCompanyProfile returns one company profile by id.
func (h *Handler) GetCompanyProfile(c *gin.Context) {
	profile, err := h.deals.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// CreateBuyer ingests a buyer account record.
func (h *Handler) CreateBuyer(c *gin.Context) {
	var buyer domain.Buyer
	if err := c.ShouldBindJSON(&buyer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if err := h.deals.CreateBuyer(c.Request.Context(), &buyer); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, buyer)
}

// respondError maps domain errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDealNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrBuyerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotDealOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
