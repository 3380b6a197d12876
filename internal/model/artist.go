package model

// Artist represents a performer that can be booked by venues.  An
// artist owns zero or more shows; deleting an artist removes its
// shows as well.  This struct corresponds to a row in the `artists`
// table.  The field set mirrors Venue minus the street address, with
// the seeking flag inverted in meaning (an artist seeks a venue).
type Artist struct {
	ID                 uint64   `json:"id"`                  // artists.id
	Name               string   `json:"name"`                // artists.name
	City               string   `json:"city"`                // artists.city
	State              string   `json:"state"`               // artists.state
	Phone              string   `json:"phone"`               // artists.phone
	ImageLink          string   `json:"image_link"`          // artists.image_link
	Website            string   `json:"website"`             // artists.website
	FacebookLink       string   `json:"facebook_link"`       // artists.facebook_link
	Genres             []string `json:"genres"`              // artists.genres (comma-joined column)
	SeekingVenue       bool     `json:"seeking_venue"`       // artists.seeking_venue
	SeekingDescription string   `json:"seeking_description"` // artists.seeking_description
}
