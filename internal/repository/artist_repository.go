// This file defines the artist repository.  Artists share the venue
// repository's CRUD and search shape minus deletion, which the
// booking directory never exposes for artists.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"gigbook/internal/model"
)

const artistColumns = `id, name, city, state, phone, image_link, website,
	facebook_link, genres, seeking_venue, seeking_description`

// ArtistRef is the minimal (id, name) projection used by the flat
// artist listing page.
type ArtistRef struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

func scanArtist(row interface{ Scan(...any) error }) (*model.Artist, error) {
	var a model.Artist
	var genres string
	if err := row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone,
		&a.ImageLink, &a.Website, &a.FacebookLink, &genres,
		&a.SeekingVenue, &a.SeekingDescription); err != nil {
		return nil, err
	}
	a.Genres = model.SplitGenres(genres)
	return &a, nil
}

// Create inserts a new artist inside a transaction.  On success the
// artist's ID field is populated with the auto-generated value.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) (err error) {
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

	const q = `INSERT INTO artists
		(name, city, state, phone, image_link, website, facebook_link,
		 genres, seeking_venue, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone,
		a.ImageLink, a.Website, a.FacebookLink, model.JoinGenres(a.Genres),
		a.SeekingVenue, a.SeekingDescription)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID fetches an artist by its ID.  It returns ErrArtistNotFound
// if no row is found.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	a, err := scanArtist(r.db.QueryRowContext(ctx,
		`SELECT `+artistColumns+` FROM artists WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return a, nil
}

// Update overwrites every mutable field of an existing artist inside
// a transaction.  ErrArtistNotFound is returned when the artist does
// not exist.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) (err error) {
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

	const q = `UPDATE artists
		SET name = ?, city = ?, state = ?, phone = ?, image_link = ?, website = ?,
		    facebook_link = ?, genres = ?, seeking_venue = ?, seeking_description = ?
		WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone,
		a.ImageLink, a.Website, a.FacebookLink, model.JoinGenres(a.Genres),
		a.SeekingVenue, a.SeekingDescription, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists uint64
		if scanErr := tx.QueryRowContext(ctx,
			`SELECT id FROM artists WHERE id = ?`, a.ID).Scan(&exists); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return ErrArtistNotFound
			}
			return scanErr
		}
	}
	return nil
}

// ListBasic returns every artist as an (id, name) pair ordered by id.
// The artist listing page needs nothing more.
func (r *ArtistRepo) ListBasic(ctx context.Context) ([]ArtistRef, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM artists ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ArtistRef, 0)
	for rows.Next() {
		var a ArtistRef
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of artist rows.
func (r *ArtistRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM artists`).Scan(&n)
	return n, err
}

// Search performs the fuzzy match described in search.go against the
// artist's name, state and city columns.
func (r *ArtistRepo) Search(ctx context.Context, raw string) ([]*model.Artist, error) {
	terms := SplitTerms(raw)
	var batches [][]*model.Artist
	for _, field := range searchFields {
		for _, term := range terms {
			matches, err := r.queryArtists(ctx,
				`SELECT `+artistColumns+` FROM artists WHERE LOWER(`+field+`) LIKE LOWER(?) ORDER BY id`,
				Pattern(term))
			if err != nil {
				return nil, err
			}
			batches = append(batches, matches)
		}
	}
	return mergeUnique(batches, func(a *model.Artist) uint64 { return a.ID }), nil
}

func (r *ArtistRepo) queryArtists(ctx context.Context, q string, args ...any) ([]*model.Artist, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
