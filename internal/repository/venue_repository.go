// This file defines the venue repository: CRUD, fuzzy search and the
// territory aggregation used by the venue listing page.  A venue owns
// its shows, so deletion cascades to them inside a transaction.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used for sentinel comparisons

	"gigbook/internal/model"
)

const venueColumns = `id, name, city, state, address, phone, image_link, website,
	facebook_link, genres, seeking_talent, seeking_description`

// Territory is one (city, state) group of venues for the listing page.
type Territory struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []*model.Venue `json:"venues"`
}

// VenueRepo encapsulates all database queries related to venues.  It
// depends on a sql.DB connection which should be configured elsewhere.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.  There is no initialization logic beyond assigning the field.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

func scanVenue(row interface{ Scan(...any) error }) (*model.Venue, error) {
	var v model.Venue
	var genres string
	if err := row.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.Website, &v.FacebookLink, &genres,
		&v.SeekingTalent, &v.SeekingDescription); err != nil {
		return nil, err
	}
	v.Genres = model.SplitGenres(genres)
	return &v, nil
}

// Create inserts a new venue inside a transaction.  On success the
// venue's ID field is populated with the auto-generated value.  The
// transaction is rolled back on any failure and committed otherwise;
// the deferred cleanup runs on every exit path.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) (err error) {
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

	const q = `INSERT INTO venues
		(name, city, state, address, phone, image_link, website, facebook_link,
		 genres, seeking_talent, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone,
		v.ImageLink, v.Website, v.FacebookLink, model.JoinGenres(v.Genres),
		v.SeekingTalent, v.SeekingDescription)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if
// no row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	v, err := scanVenue(r.db.QueryRowContext(ctx,
		`SELECT `+venueColumns+` FROM venues WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// Update overwrites every mutable field of an existing venue inside a
// transaction.  ErrVenueNotFound is returned when no row is affected.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) (err error) {
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

	const q = `UPDATE venues
		SET name = ?, city = ?, state = ?, address = ?, phone = ?, image_link = ?,
		    website = ?, facebook_link = ?, genres = ?, seeking_talent = ?,
		    seeking_description = ?
		WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone,
		v.ImageLink, v.Website, v.FacebookLink, model.JoinGenres(v.Genres),
		v.SeekingTalent, v.SeekingDescription, v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 for a no-op update of an existing row,
		// so confirm absence before reporting not-found.
		var exists uint64
		if scanErr := tx.QueryRowContext(ctx,
			`SELECT id FROM venues WHERE id = ?`, v.ID).Scan(&exists); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return ErrVenueNotFound
			}
			return scanErr
		}
	}
	return nil
}

// DeleteByID removes a venue and all of its shows.  The deletion
// occurs within a transaction to keep referential integrity: after it
// commits, no show referencing the venue remains retrievable.
// ErrVenueNotFound is returned when the venue does not exist.
func (r *VenueRepo) DeleteByID(ctx context.Context, id uint64) (err error) {
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

	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrVenueNotFound
		return err
	}
	return nil
}

// Count returns the number of venue rows.
func (r *VenueRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM venues`).Scan(&n)
	return n, err
}

// Territories groups all venues by the distinct (city, state) pairs
// present in the table.  groupKey selects how venues are collected
// into each pair:
//
//	"city"        – legacy behavior: venues are re-queried by city
//	                alone, so two states sharing a city name collapse
//	                into whichever pair is listed first.
//	"city_state"  – venues are collected by the full (city, state)
//	                pair.
//
// Group order is pinned with an explicit ORDER BY rather than relying
// on the store's natural order.
func (r *VenueRepo) Territories(ctx context.Context, groupKey string) ([]Territory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT city, state FROM venues ORDER BY city, state`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []Territory
	for rows.Next() {
		var t Territory
		if err := rows.Scan(&t.City, &t.State); err != nil {
			return nil, err
		}
		pairs = append(pairs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]Territory, 0, len(pairs))
	for _, t := range pairs {
		where, args := territoryFilter(groupKey, t.City, t.State)
		venues, err := r.queryVenues(ctx,
			`SELECT `+venueColumns+` FROM venues WHERE `+where+` ORDER BY id`, args...)
		if err != nil {
			return nil, err
		}
		t.Venues = venues
		out = append(out, t)
	}
	return out, nil
}

// Search performs the fuzzy match described in search.go against the
// venue's name, state and city columns.  It returns the deduplicated
// union in field-major order.
func (r *VenueRepo) Search(ctx context.Context, raw string) ([]*model.Venue, error) {
	terms := SplitTerms(raw)
	var batches [][]*model.Venue
	for _, field := range searchFields {
		for _, term := range terms {
			matches, err := r.queryVenues(ctx,
				`SELECT `+venueColumns+` FROM venues WHERE LOWER(`+field+`) LIKE LOWER(?) ORDER BY id`,
				Pattern(term))
			if err != nil {
				return nil, err
			}
			batches = append(batches, matches)
		}
	}
	return mergeUnique(batches, func(v *model.Venue) uint64 { return v.ID }), nil
}

func (r *VenueRepo) queryVenues(ctx context.Context, q string, args ...any) ([]*model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
