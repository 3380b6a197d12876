package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(t *testing.T, e *echo.Echo, path string, values url.Values) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

// Validation failures must be reported before any repository work, so
// these handlers can run without a database behind them.
func TestVenueCreateRejectsMissingRequiredFields(t *testing.T) {
	e := echo.New()
	h := &VenueHandler{}

	rec, c := postForm(t, e, "/venues/create", url.Values{
		"name": {"The Musical Hop"},
		// city, state and address missing
	})
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "city is required")
	assert.Contains(t, body.Errors, "state is required")
	assert.Contains(t, body.Errors, "address is required")
}

func TestVenueCreateRejectsMalformedURL(t *testing.T) {
	e := echo.New()
	h := &VenueHandler{}

	rec, c := postForm(t, e, "/venues/create", url.Values{
		"name":    {"The Musical Hop"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1015 Folsom Street"},
		"website": {"not a url"},
	})
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "website must be a valid URL")
}

func TestVenueDetailRejectsNonNumericID(t *testing.T) {
	e := echo.New()
	h := &VenueHandler{}

	req := httptest.NewRequest(http.MethodGet, "/venues/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.Detail(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
