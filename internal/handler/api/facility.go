package api

import (
	"net/http"

	"courtmate-gateway/internal/domain/geo"
	reqdto "courtmate-gateway/internal/handler/dto/request"
	"courtmate-gateway/internal/handler/httperr"
	"courtmate-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FacilityHandler struct {
	nearbyQueries queries.NearbyQueries
}

func NewFacilityHandler(nearbyQueries queries.NearbyQueries) *FacilityHandler {
	return &FacilityHandler{
		nearbyQueries: nearbyQueries,
	}
}

// @Summary Nearby courts
// @Description Courts within radius_km of a point, relayed from the facilities service
// @Tags facilities
// @Accept json
// @Produce json
// @Param request body reqdto.NearbyRequest true "Search area"
// @Success 200 {object} queries.NearbyView
// @Failure 400 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /api/facilities/nearby [post]
func (h *FacilityHandler) Nearby(c *gin.Context) {
	var req reqdto.NearbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, geo.ErrMissingCoordinates.Error(), nil)
		return
	}

	area, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	view, err := h.nearbyQueries.Search(c.Request.Context(), area)
	if err != nil {
		httperr.AbortClassified(c, err, "Facilities service unavailable or returned an error")
		return
	}

	c.JSON(http.StatusOK, view)
}
