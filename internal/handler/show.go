package handler // handler package contains the show listing handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gigbook/internal/form"
	"gigbook/internal/model"
	"gigbook/internal/queue"
	"gigbook/internal/repository"
	queue_publisher "gigbook/internal/service"
)

// ShowHandler bundles the repositories behind the show pages.  After
// a successful listing it publishes a ShowListedEvent; broker
// failures are logged by the publisher and never fail the request.
type ShowHandler struct {
	Shows     *repository.ShowRepo   // show persistence
	Venues    *repository.VenueRepo  // parent names for events
	Artists   *repository.ArtistRepo // parent names for events
	BrokerURL string                 // RabbitMQ URL for show.listed events
	Now       func() time.Time       // clock, replaceable in tests
}

// NewShowHandler constructs a ShowHandler and panics if any repository is nil.
func NewShowHandler(shows *repository.ShowRepo, venues *repository.VenueRepo, artists *repository.ArtistRepo, brokerURL string) *ShowHandler {
	if shows == nil || venues == nil || artists == nil {
		panic("nil repository passed to NewShowHandler")
	}
	return &ShowHandler{Shows: shows, Venues: venues, Artists: artists, BrokerURL: brokerURL, Now: time.Now}
}

// showListView is one entry of the site-wide shows listing.
type showListView struct {
	ID              uint64 `json:"id"`
	StartTime       string `json:"start_time"`
	VenueID         uint64 `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
}

// List handles GET /shows.  Only upcoming shows appear, sorted
// ascending by start time; classification runs against the native
// timestamps, not a reformatted string.
func (h *ShowHandler) List(c echo.Context) error {
	all, err := h.Shows.ListAllOrdered(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	_, upcoming := partitionShows(all, h.Now())

	views := make([]showListView, 0, len(upcoming))
	for _, s := range upcoming {
		views = append(views, showListView{
			ID:              s.ShowID,
			StartTime:       s.StartTime.Format(showTimeLayout),
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": views})
}

// CreateForm handles GET /shows/create and describes the expected fields.
func (h *ShowHandler) CreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"fields":             []string{"artist_id", "venue_id", "start_time"},
		"start_time_default": h.Now().Format("2006-01-02 15:04:05"),
	})
}

// Create handles POST /shows/create.  Both parent ids must reference
// existing records; either failure is reported with the generic
// listing notice rather than a driver error.
func (h *ShowHandler) Create(c echo.Context) error {
	var f form.ShowForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	venueID, errV := parseRef(f.VenueID)
	artistID, errA := parseRef(f.ArtistID)
	startTime, errT := form.ParseStartTime(f.StartTime)
	if errV != nil || errA != nil || errT != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"notice": "An error occurred. Show could not be listed.",
		})
	}

	s := &model.Show{VenueID: venueID, ArtistID: artistID, StartTime: startTime}
	if err := h.Shows.Create(c.Request().Context(), s); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrVenueNotFound) || errors.Is(err, repository.ErrArtistNotFound) {
			status = http.StatusBadRequest
		}
		return c.JSON(status, echo.Map{
			"notice": "An error occurred. Show could not be listed.",
		})
	}

	h.publishListed(c.Request().Context(), s)

	return c.JSON(http.StatusCreated, echo.Map{
		"notice":      "Show was successfully listed!",
		"show":        s,
		"redirect_to": "/",
	})
}

// publishListed emits the show.listed event in the background so the
// broker round-trip never delays the response.  Parent names are
// looked up best-effort; a lookup failure leaves the name empty
// rather than dropping the event.
func (h *ShowHandler) publishListed(ctx context.Context, s *model.Show) {
	ev := queue.ShowListedEvent{
		ShowID:    s.ID,
		VenueID:   s.VenueID,
		ArtistID:  s.ArtistID,
		StartTime: s.StartTime.Format(showTimeLayout),
		ListedAt:  h.Now().UTC().Format(time.RFC3339),
	}
	if v, err := h.Venues.GetByID(ctx, s.VenueID); err == nil {
		ev.VenueName = v.Name
	}
	if a, err := h.Artists.GetByID(ctx, s.ArtistID); err == nil {
		ev.ArtistName = a.Name
	}
	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishShowListed(pubCtx, h.BrokerURL, ev)
	}()
}
