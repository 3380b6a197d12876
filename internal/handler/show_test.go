package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCreateRejectsMalformedFields(t *testing.T) {
	e := echo.New()
	h := &ShowHandler{}

	cases := []url.Values{
		{"artist_id": {"x"}, "venue_id": {"1"}, "start_time": {"2035-04-01 20:00:00"}},
		{"artist_id": {"1"}, "venue_id": {""}, "start_time": {"2035-04-01 20:00:00"}},
		{"artist_id": {"1"}, "venue_id": {"2"}, "start_time": {"next friday"}},
	}
	for _, values := range cases {
		rec, c := postForm(t, e, "/shows/create", values)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "An error occurred. Show could not be listed.")
	}
}

func TestShowCreateFormDescribesFields(t *testing.T) {
	e := echo.New()
	h := &ShowHandler{Now: fixedClock}

	rec, c := postForm(t, e, "/shows/create", nil)
	require.NoError(t, h.CreateForm(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "artist_id")
	assert.Contains(t, rec.Body.String(), "venue_id")
	assert.Contains(t, rec.Body.String(), "start_time")
}
