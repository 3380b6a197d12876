package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gigbook/internal/repository"
)

// SiteHandler serves the landing page.  The home view shows how busy
// the directory is, so it carries the three table counts.
type SiteHandler struct {
	Venues  *repository.VenueRepo
	Artists *repository.ArtistRepo
	Shows   *repository.ShowRepo
}

// NewSiteHandler constructs a SiteHandler and panics if a dependency is nil.
func NewSiteHandler(venues *repository.VenueRepo, artists *repository.ArtistRepo, shows *repository.ShowRepo) *SiteHandler {
	if venues == nil || artists == nil || shows == nil {
		panic("nil repository passed to NewSiteHandler")
	}
	return &SiteHandler{Venues: venues, Artists: artists, Shows: shows}
}

// Home handles GET / and returns the landing view-model.
func (h *SiteHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.Venues.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	artists, err := h.Artists.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	shows, err := h.Shows.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"name":    "gigbook",
		"venues":  venues,
		"artists": artists,
		"shows":   shows,
	})
}
