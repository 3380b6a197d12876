package model

// Venue represents a place that can host performances.  A venue owns
// zero or more shows; deleting a venue removes its shows as well.
// This struct corresponds to a row in the `venues` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – venue name (required).
//  City               – city the venue is located in (required).
//  State              – two-letter state code (required).
//  Address            – street address (required).
//  Phone              – contact phone number (optional).
//  ImageLink          – URL of a venue picture (optional).
//  Website            – venue website URL (optional).
//  FacebookLink       – facebook page URL (optional).
//  Genres             – genre tags; stored comma-joined in the DB.
//  SeekingTalent      – whether the venue is looking for artists.
//  SeekingDescription – free text shown when SeekingTalent is set.
type Venue struct {
	ID                 uint64   `json:"id"`                  // venues.id
	Name               string   `json:"name"`                // venues.name
	City               string   `json:"city"`                // venues.city
	State              string   `json:"state"`               // venues.state
	Address            string   `json:"address"`             // venues.address
	Phone              string   `json:"phone"`               // venues.phone
	ImageLink          string   `json:"image_link"`          // venues.image_link
	Website            string   `json:"website"`             // venues.website
	FacebookLink       string   `json:"facebook_link"`       // venues.facebook_link
	Genres             []string `json:"genres"`              // venues.genres (comma-joined column)
	SeekingTalent      bool     `json:"seeking_talent"`      // venues.seeking_talent
	SeekingDescription string   `json:"seeking_description"` // venues.seeking_description
}
