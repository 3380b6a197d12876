// This file defines the show repository.  Shows are only ever created
// and listed: the directory exposes no edit or delete operation for
// them, and removal happens through a parent venue's cascade delete.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gigbook/internal/model"
)

// ShowDetail is a show row joined with both parent records.  It feeds
// the site-wide shows listing and the per-venue/per-artist rosters,
// which need the counterpart's name and image alongside the raw show.
type ShowDetail struct {
	ShowID          uint64    `json:"id"`
	VenueID         uint64    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

const showDetailQuery = `SELECT s.id, s.venue_id, v.name, v.image_link,
		s.artist_id, a.name, a.image_link, s.start_time
	FROM shows s
	JOIN venues v ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id`

// ShowRepo encapsulates all database queries related to shows.
type ShowRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewShowRepo constructs a ShowRepo with the provided DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show inside a transaction after verifying that
// both parent records exist.  ErrVenueNotFound or ErrArtistNotFound
// is returned when a foreign key would dangle, so the handler can
// report a clean failure instead of surfacing a driver error.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var exists uint64
	if err = tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = ?`, s.VenueID).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}
	if err = tx.QueryRowContext(ctx, `SELECT id FROM artists WHERE id = ?`, s.ArtistID).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrArtistNotFound
		}
		return err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`,
		s.VenueID, s.ArtistID, s.StartTime)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// ListAllOrdered returns every show joined with its parents, sorted
// ascending by start time.  Upcoming/past classification is done by
// the caller against a native clock, never through a reformatted
// string.
func (r *ShowRepo) ListAllOrdered(ctx context.Context) ([]ShowDetail, error) {
	return r.queryDetails(ctx, showDetailQuery+` ORDER BY s.start_time ASC`)
}

// ListByVenue returns all shows hosted by one venue, sorted ascending
// by start time.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]ShowDetail, error) {
	return r.queryDetails(ctx, showDetailQuery+` WHERE s.venue_id = ? ORDER BY s.start_time ASC`, venueID)
}

// ListByArtist returns all shows performed by one artist, sorted
// ascending by start time.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]ShowDetail, error) {
	return r.queryDetails(ctx, showDetailQuery+` WHERE s.artist_id = ? ORDER BY s.start_time ASC`, artistID)
}

// Count returns the number of show rows.
func (r *ShowRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows`).Scan(&n)
	return n, err
}

func (r *ShowRepo) queryDetails(ctx context.Context, q string, args ...any) ([]ShowDetail, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ShowDetail, 0)
	for rows.Next() {
		var d ShowDetail
		if err := rows.Scan(&d.ShowID, &d.VenueID, &d.VenueName, &d.VenueImageLink,
			&d.ArtistID, &d.ArtistName, &d.ArtistImageLink, &d.StartTime); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Upcoming reports whether a show starts strictly later than now.  A
// show starting exactly at now is already past.
func Upcoming(d ShowDetail, now time.Time) bool {
	return d.StartTime.After(now)
}
