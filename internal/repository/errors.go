// Package repository contains data access logic separated from HTTP
// handlers.  This file defines sentinel errors shared by the venue,
// artist and show repositories so that handlers can translate lookup
// failures into 404 responses without inspecting driver errors.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = errors.New("artist not found")
