package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"gigbook/internal/handler" // import the handlers that implement the pages
)

// RegisterSite registers the landing page and the health check on the
// provided Echo instance.  The health endpoint can be used by load
// balancers or monitoring systems to verify the service is up.
func RegisterSite(e *echo.Echo, s *handler.SiteHandler) {
	e.GET("/", s.Home)
	e.GET("/healthz", handler.Health)
}

// RegisterVenues registers the venue pages: the territory-grouped
// listing, fuzzy search, detail, the create and edit forms and
// deletion.  None of these require authentication; the directory is
// a public surface.
func RegisterVenues(e *echo.Echo, v *handler.VenueHandler) {
	g := e.Group("/venues")
	g.GET("", v.List)
	g.POST("/search", v.Search)
	// Static segments must register before the :id parameter so that
	// /venues/create is never parsed as a venue id.
	g.GET("/create", v.CreateForm)
	g.POST("/create", v.Create)
	g.GET("/:id", v.Detail)
	g.GET("/:id/edit", v.EditForm)
	g.POST("/:id/edit", v.Edit)
	g.DELETE("/:id", v.Delete)
}

// RegisterArtists registers the artist pages.  Artists mirror venues
// except that the directory exposes no artist deletion.
func RegisterArtists(e *echo.Echo, a *handler.ArtistHandler) {
	g := e.Group("/artists")
	g.GET("", a.List)
	g.POST("/search", a.Search)
	g.GET("/create", a.CreateForm)
	g.POST("/create", a.Create)
	g.GET("/:id", a.Detail)
	g.GET("/:id/edit", a.EditForm)
	g.POST("/:id/edit", a.Edit)
}

// RegisterShows registers the site-wide shows listing and the show
// creation form.  Shows are never edited or deleted directly.
func RegisterShows(e *echo.Echo, s *handler.ShowHandler) {
	g := e.Group("/shows")
	g.GET("", s.List)
	g.GET("/create", s.CreateForm)
	g.POST("/create", s.Create)
}
