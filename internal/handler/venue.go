package handler // handler package contains the venue page handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gigbook/internal/form"
	"gigbook/internal/model"
	"gigbook/internal/repository"
)

// VenueHandler bundles the repositories behind the venue pages.
type VenueHandler struct {
	Venues   *repository.VenueRepo // venue persistence
	Shows    *repository.ShowRepo  // show rosters for detail pages
	GroupKey string                // territory grouping key ("city" or "city_state")
	Now      func() time.Time      // clock, replaceable in tests
}

// NewVenueHandler constructs a VenueHandler and panics if a dependency is nil.
func NewVenueHandler(venues *repository.VenueRepo, shows *repository.ShowRepo, groupKey string) *VenueHandler {
	if venues == nil || shows == nil {
		panic("nil repository passed to NewVenueHandler")
	}
	return &VenueHandler{Venues: venues, Shows: shows, GroupKey: groupKey, Now: time.Now}
}

// venueShowView is one entry of a venue's past or upcoming roster:
// the counterpart artist plus the formatted start time.
type venueShowView struct {
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

func venueShowViews(shows []repository.ShowDetail) []venueShowView {
	out := make([]venueShowView, 0, len(shows))
	for _, s := range shows {
		out = append(out, venueShowView{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime.Format(showTimeLayout),
		})
	}
	return out
}

// List handles GET /venues and returns venues grouped by territory.
func (h *VenueHandler) List(c echo.Context) error {
	areas, err := h.Venues.Territories(c.Request().Context(), h.GroupKey)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"areas": areas})
}

// Search handles POST /venues/search.  The form field `search_term`
// is matched case-insensitively against venue names, states and
// cities; the response carries the match count and the records.
func (h *VenueHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	matches, err := h.Venues.Search(c.Request().Context(), term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":       len(matches),
		"data":        matches,
		"search_term": term,
	})
}

// Detail handles GET /venues/:id.  It assembles the venue's fields
// plus its past and upcoming rosters with counts.  A missing venue
// yields a 404 with a notice naming the id, never an empty page.
func (h *VenueHandler) Detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	v, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":  "not_found",
				"notice": missingNotice("venue", id),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	shows, err := h.Shows.ListByVenue(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	past, upcoming := partitionShows(shows, h.Now())

	return c.JSON(http.StatusOK, echo.Map{
		"id":                   v.ID,
		"name":                 v.Name,
		"genres":               v.Genres,
		"address":              v.Address,
		"city":                 v.City,
		"state":                v.State,
		"phone":                v.Phone,
		"website":              v.Website,
		"facebook_link":        v.FacebookLink,
		"seeking_talent":       v.SeekingTalent,
		"seeking_description":  v.SeekingDescription,
		"image_link":           v.ImageLink,
		"past_shows":           venueShowViews(past),
		"upcoming_shows":       venueShowViews(upcoming),
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	})
}

// CreateForm handles GET /venues/create and returns the choice lists
// the form is built from.
func (h *VenueHandler) CreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"states": form.States,
		"genres": form.GenreChoices,
	})
}

// Create handles POST /venues/create.  Validated form data becomes a
// new venue record inside a commit-or-rollback transaction; either
// way the user gets a notice naming the venue.
func (h *VenueHandler) Create(c echo.Context) error {
	var f form.VenueForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if problems := f.Validate(); len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": problems})
	}

	v := venueFromForm(&f)
	if err := h.Venues.Create(c.Request().Context(), v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"notice": listedNotice("Venue", f.Name, "listed", false),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"notice":      listedNotice("Venue", v.Name, "listed", true),
		"venue":       v,
		"redirect_to": "/",
	})
}

// EditForm handles GET /venues/:id/edit, returning the record to
// populate the form with plus the choice lists.
func (h *VenueHandler) EditForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.Venues.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":  "not_found",
				"notice": missingNotice("venue", id),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"venue":  v,
		"states": form.States,
		"genres": form.GenreChoices,
	})
}

// Edit handles POST /venues/:id/edit and overwrites the venue with
// the submitted fields, redirecting back to the detail view.
func (h *VenueHandler) Edit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var f form.VenueForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if problems := f.Validate(); len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": problems})
	}

	v := venueFromForm(&f)
	v.ID = id
	if err := h.Venues.Update(c.Request().Context(), v); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":  "not_found",
				"notice": missingNotice("venue", id),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"notice": listedNotice("Venue", f.Name, "updated", false),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"notice":      listedNotice("Venue", v.Name, "updated", true),
		"venue":       v,
		"redirect_to": "/venues/" + c.Param("id"),
	})
}

// Delete handles DELETE /venues/:id.  The venue's shows are removed
// with it; a successful deletion returns 204 No Content.
func (h *VenueHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Venues.DeleteByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":  "not_found",
				"notice": missingNotice("venue", id),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete venue"})
	}
	return c.NoContent(http.StatusNoContent)
}

// venueFromForm maps a validated form onto a venue record, applying
// the shared truthiness rule and genre sanitization.
func venueFromForm(f *form.VenueForm) *model.Venue {
	return &model.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		Genres:             form.SanitizeGenres(f.Genres),
		SeekingTalent:      form.Truthy(f.SeekingTalent),
		SeekingDescription: f.SeekingDescription,
	}
}
