package model

import "time"

// Show represents a scheduled pairing of one venue and one artist at
// a start time.  A show is meaningless without both parents: the two
// foreign keys are required and enforced with ON DELETE CASCADE so
// no orphaned show can outlive its venue or artist.
//
// Fields:
//  ID        – primary key identifier.
//  VenueID   – venue hosting the show.
//  ArtistID  – artist performing the show.
//  StartTime – when the show begins.  A show is "upcoming" while
//              StartTime is strictly later than the current time.
type Show struct {
	ID        uint64    `json:"id"`         // shows.id
	VenueID   uint64    `json:"venue_id"`   // shows.venue_id
	ArtistID  uint64    `json:"artist_id"`  // shows.artist_id
	StartTime time.Time `json:"start_time"` // shows.start_time
}
