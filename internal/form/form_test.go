package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	for _, v := range []string{"y", "Y", "yes", "YES", "true", "True", "t", "1", "on", " on "} {
		assert.True(t, Truthy(v), "expected %q to be truthy", v)
	}
	for _, v := range []string{"", "n", "no", "false", "0", "off", "maybe"} {
		assert.False(t, Truthy(v), "expected %q to be falsy", v)
	}
}

// The reference implementation compared the submitted value against
// the literal string "True", which never matched the lowercase values
// browsers actually send. This pins the fix.
func TestTruthyAcceptsCheckboxValues(t *testing.T) {
	assert.True(t, Truthy("y"), "wtforms-style checkbox value")
	assert.True(t, Truthy("True"), "capitalized value must also count")
}

func TestSanitizeGenres(t *testing.T) {
	in := []string{"Jazz", "R&B", "Hip-Hop", "Rock n Roll", "Heavy Metal"}
	assert.Equal(t, in, SanitizeGenres(in), "legal tags pass through unchanged")

	assert.Equal(t, []string{"Jazz", "R&B"}, SanitizeGenres([]string{"Ja!zz", "R&B;--"}))
	assert.Empty(t, SanitizeGenres([]string{"", "!!!", "   "}))
}

func TestVenueFormValidate(t *testing.T) {
	f := VenueForm{Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street"}
	assert.Empty(t, f.Validate())

	f.Name = "  "
	f.Website = "not a url"
	problems := f.Validate()
	assert.Contains(t, problems, "name is required")
	assert.Contains(t, problems, "website must be a valid URL")
}

func TestArtistFormValidate(t *testing.T) {
	f := ArtistForm{Name: "Guns N Petals", City: "San Francisco", State: "CA"}
	assert.Empty(t, f.Validate())

	f.City = ""
	f.FacebookLink = "://bad"
	problems := f.Validate()
	assert.Contains(t, problems, "city is required")
	assert.Contains(t, problems, "facebook_link must be a valid URL")
}

func TestParseStartTime(t *testing.T) {
	ts, err := ParseStartTime("2035-04-01 20:00:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC), ts)

	ts, err = ParseStartTime("2035-04-01T20:00:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC), ts)

	_, err = ParseStartTime("next friday")
	assert.Error(t, err)
}
