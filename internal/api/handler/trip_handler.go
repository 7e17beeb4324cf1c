package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/passaqui/passaqui-api/internal/api/metrics"
	"github.com/passaqui/passaqui-api/internal/core/domain"
	"github.com/passaqui/passaqui-api/internal/core/ports"
)

type TripHandler struct {
	tripService ports.TripService
}

func NewTripHandler(tripService ports.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

type searchRequest struct {
	FromCity string `json:"from_city" validate:"required"`
	ToCity   string `json:"to_city"   validate:"required"`
	Date     string `json:"date"`
}

type searchResponse struct {
	Results []domain.TripOffer `json:"results"`
}

// Search returns the demo trip offers for a route.
//
// @Summary      Search trips
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        body  body      searchRequest  true  "Route to search"
// @Success      200   {object}  searchResponse
// @Failure      422   {object}  errorResponse
// @Router       /search [post]
func (h *TripHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	offers, err := h.tripService.Search(c.Request().Context(), req.FromCity, req.ToCity, req.Date)
	if err != nil {
		return err
	}

	metrics.TripSearchesTotal.Inc()
	return c.JSON(http.StatusOK, searchResponse{Results: offers})
}
