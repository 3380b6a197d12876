// Package form maps submitted form fields to record mutations.  It
// owns the three intake rules every create and update path shares:
// required-field validation, the checkbox truthiness mapping, and
// genre tag sanitization.
package form

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

// VenueForm carries the fields of the venue create and edit forms.
type VenueForm struct {
	Name               string   `form:"name" json:"name"`
	City               string   `form:"city" json:"city"`
	State              string   `form:"state" json:"state"`
	Address            string   `form:"address" json:"address"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	Website            string   `form:"website" json:"website"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	Genres             []string `form:"genres" json:"genres"`
	SeekingTalent      string   `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

// ArtistForm carries the fields of the artist create and edit forms.
type ArtistForm struct {
	Name               string   `form:"name" json:"name"`
	City               string   `form:"city" json:"city"`
	State              string   `form:"state" json:"state"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	Website            string   `form:"website" json:"website"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	Genres             []string `form:"genres" json:"genres"`
	SeekingVenue       string   `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

// ShowForm carries the fields of the show creation form.
type ShowForm struct {
	ArtistID  string `form:"artist_id" json:"artist_id"`
	VenueID   string `form:"venue_id" json:"venue_id"`
	StartTime string `form:"start_time" json:"start_time"`
}

// Validate checks required fields and URL shapes.  It returns one
// message per problem; an empty slice means the form is acceptable.
func (f *VenueForm) Validate() []string {
	var problems []string
	problems = appendRequired(problems, "name", f.Name)
	problems = appendRequired(problems, "city", f.City)
	problems = appendRequired(problems, "state", f.State)
	problems = appendRequired(problems, "address", f.Address)
	problems = appendURL(problems, "image_link", f.ImageLink)
	problems = appendURL(problems, "website", f.Website)
	problems = appendURL(problems, "facebook_link", f.FacebookLink)
	return problems
}

// Validate checks required fields and URL shapes for an artist form.
func (f *ArtistForm) Validate() []string {
	var problems []string
	problems = appendRequired(problems, "name", f.Name)
	problems = appendRequired(problems, "city", f.City)
	problems = appendRequired(problems, "state", f.State)
	problems = appendURL(problems, "image_link", f.ImageLink)
	problems = appendURL(problems, "website", f.Website)
	problems = appendURL(problems, "facebook_link", f.FacebookLink)
	return problems
}

func appendRequired(problems []string, field, value string) []string {
	if strings.TrimSpace(value) == "" {
		return append(problems, field+" is required")
	}
	return problems
}

func appendURL(problems []string, field, value string) []string {
	if value == "" {
		return problems
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return append(problems, field+" must be a valid URL")
	}
	return problems
}

// Truthy maps a submitted checkbox/select value to a boolean.  Every
// create and update path derives its seeking flag through this one
// function so the rule cannot drift between handlers.
func Truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "true", "t", "1", "on":
		return true
	}
	return false
}

var genreCharset = regexp.MustCompile(`[^A-Za-z0-9&+\- ]+`)

// SanitizeGenres strips characters outside letters, digits, &, +, -
// and space from each submitted genre tag, trims the result and drops
// tags that end up empty.  The cleaned tags are safe to comma-join
// for storage.
func SanitizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		clean := strings.TrimSpace(genreCharset.ReplaceAllString(g, ""))
		if clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

// startTimeLayouts lists the accepted show start time formats: the
// form's datetime format first, RFC 3339 as a fallback for API
// clients.
var startTimeLayouts = []string{"2006-01-02 15:04:05", time.RFC3339}

// ParseStartTime parses a submitted show start time.
func ParseStartTime(v string) (time.Time, error) {
	var err error
	var ts time.Time
	for _, layout := range startTimeLayouts {
		if ts, err = time.Parse(layout, strings.TrimSpace(v)); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}
