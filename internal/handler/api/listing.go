package api

import (
	"errors"
	"net/http"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/listing"
	resdto "github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/handler/dto/response"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/handler/httperr"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	listingQueries queries.ListingQueries
}

func NewListingHandler(listingQueries queries.ListingQueries) *ListingHandler {
	return &ListingHandler{listingQueries: listingQueries}
}

// @Summary Get listing
// @Description Get a homestay or guide listing by type and ID
// @Tags listings
// @Produce json
// @Param type path string true "Listing type" Enums(homestay, guide)
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/listings/{type}/{id} [get]
func (h *ListingHandler) GetListing(c *gin.Context) {
	listingType, err := listing.ParseType(c.Param("type"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown listing type", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing ID format", nil)
		return
	}

	view, err := h.listingQueries.GetByID(c.Request.Context(), listingType, id)
	if err != nil {
		if errors.Is(err, queries.ErrListingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromListingView(view))
}
