package handler // handler package contains the artist page handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gigbook/internal/form"
	"gigbook/internal/model"
	"gigbook/internal/repository"
)

// ArtistHandler bundles the repositories behind the artist pages.
// Artists mirror venues except that they cannot be deleted.
type ArtistHandler struct {
	Artists *repository.ArtistRepo // artist persistence
	Shows   *repository.ShowRepo   // show rosters for detail pages
	Now     func() time.Time       // clock, replaceable in tests
}

// NewArtistHandler constructs an ArtistHandler and panics if a dependency is nil.
func NewArtistHandler(artists *repository.ArtistRepo, shows *repository.ShowRepo) *ArtistHandler {
	if artists == nil || shows == nil {
		panic("nil repository passed to NewArtistHandler")
	}
	return &ArtistHandler{Artists: artists, Shows: shows, Now: time.Now}
}

// artistShowView is one entry of an artist's past or upcoming roster:
// the counterpart venue plus the formatted start time.
type artistShowView struct {
	VenueID        uint64 `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

func artistShowViews(shows []repository.ShowDetail) []artistShowView {
	out := make([]artistShowView, 0, len(shows))
	for _, s := range shows {
		out = append(out, artistShowView{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      s.StartTime.Format(showTimeLayout),
		})
	}
	return out
}

// List handles GET /artists and returns the flat (id, name) listing.
func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.Artists.ListBasic(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": artists})
}

// Search handles POST /artists/search, mirroring the venue search.
func (h *ArtistHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	matches, err := h.Artists.Search(c.Request().Context(), term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":       len(matches),
		"data":        matches,
		"search_term": term,
	})
}

// Detail handles GET /artists/:id with past/upcoming rosters and counts.
func (h *ArtistHandler) Detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	a, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":  "not_found",
				"notice": missingNotice("artist", id),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	shows, err := h.Shows.ListByArtist(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	past, upcoming := partitionShows(shows, h.Now())

	return c.JSON(http.StatusOK, echo.Map{
		"id":                   a.ID,
		"name":                 a.Name,
		"genres":               a.Genres,
		"city":                 a.City,
		"state":                a.State,
		"phone":                a.Phone,
		"website":              a.Website,
		"facebook_link":        a.FacebookLink,
		"seeking_venue":        a.SeekingVenue,
		"seeking_description":  a.SeekingDescription,
		"image_link":           a.ImageLink,
		"past_shows":           artistShowViews(past),
		"upcoming_shows":       artistShowViews(upcoming),
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	})
}

// CreateForm handles GET /artists/create.
func (h *ArtistHandler) CreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"states": form.States,
		"genres": form.GenreChoices,
	})
}

// Create handles POST /artists/create.
func (h *ArtistHandler) Create(c echo.Context) error {
	var f form.ArtistForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if problems := f.Validate(); len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": problems})
	}

	a := artistFromForm(&f)
	if err := h.Artists.Create(c.Request().Context(), a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"notice": listedNotice("Artist", f.Name, "listed", false),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"notice":      listedNotice("Artist", a.Name, "listed", true),
		"artist":      a,
		"redirect_to": "/",
	})
}

// EditForm handles GET /artists/:id/edit.
func (h *ArtistHandler) EditForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	a, err := h.Artists.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":  "not_found",
				"notice": missingNotice("artist", id),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"artist": a,
		"states": form.States,
		"genres": form.GenreChoices,
	})
}

// Edit handles POST /artists/:id/edit.
func (h *ArtistHandler) Edit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var f form.ArtistForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if problems := f.Validate(); len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": problems})
	}

	a := artistFromForm(&f)
	a.ID = id
	if err := h.Artists.Update(c.Request().Context(), a); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":  "not_found",
				"notice": missingNotice("artist", id),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"notice": listedNotice("Artist", f.Name, "updated", false),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"notice":      listedNotice("Artist", a.Name, "updated", true),
		"artist":      a,
		"redirect_to": "/artists/" + c.Param("id"),
	})
}

// artistFromForm maps a validated form onto an artist record,
// applying the shared truthiness rule and genre sanitization.
func artistFromForm(f *form.ArtistForm) *model.Artist {
	return &model.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		Genres:             form.SanitizeGenres(f.Genres),
		SeekingVenue:       form.Truthy(f.SeekingVenue),
		SeekingDescription: f.SeekingDescription,
	}
}
