// Package repository contains data access logic for the directory.  This
// file defines repository methods for artists.  Artists mirror venues
// except for the address column and the direction of the seeking flag.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel comparisons

	"github.com/gigdir/booking-directory/internal/model" // model defines the artist struct
)

const artistColumns = `id, name, city, state, phone, genres,
	image_link, facebook_link, website_link, seeking_venue, seeking_description`

// ArtistRepo manages persistence for artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist and assigns the generated ID back to the
// struct.  Constraint violations are classified into ErrDuplicate /
// ErrReference.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	const q = `INSERT INTO artists
		(name, city, state, phone, genres, image_link, facebook_link, website_link, seeking_venue, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, a.Genres,
		a.ImageLink, a.FacebookLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription,
	)
	if err != nil {
		return classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID retrieves an artist by its ID.  It returns ErrArtistNotFound
// when there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`
	var a model.Artist
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres,
		&a.ImageLink, &a.FacebookLink, &a.WebsiteLink, &a.SeekingVenue, &a.SeekingDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListAll returns every artist ordered by ID, as shown on the artists
// listing page.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]model.Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists ORDER BY id ASC`
	return r.queryArtists(ctx, q)
}

// SearchByName returns artists whose name contains the term, matched
// case-insensitively with the same rule as venue search.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]model.Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists
		WHERE LOWER(name) LIKE CONCAT('%', LOWER(?), '%') ORDER BY id ASC`
	return r.queryArtists(ctx, q, term)
}

// Update overwrites every mutable field of the artist identified by a.ID
// in a single statement; the ID is never altered.  Returns
// ErrArtistNotFound when the row does not exist, and succeeds when the
// submitted values are identical to the stored ones.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	const q = `UPDATE artists SET
		name = ?, city = ?, state = ?, phone = ?, genres = ?,
		image_link = ?, facebook_link = ?, website_link = ?, seeking_venue = ?, seeking_description = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, a.Genres,
		a.ImageLink, a.FacebookLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription,
		a.ID,
	)
	if err != nil {
		return classify(err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	ok, err := r.ExistsByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrArtistNotFound
	}
	return nil // row exists, submitted values were identical
}

// ExistsByID reports whether an artist row with the given ID exists.
func (r *ArtistRepo) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ? LIMIT 1`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ArtistRepo) queryArtists(ctx context.Context, q string, args ...any) ([]model.Artist, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Artist
	for rows.Next() {
		var a model.Artist
		if err := rows.Scan(
			&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres,
			&a.ImageLink, &a.FacebookLink, &a.WebsiteLink, &a.SeekingVenue, &a.SeekingDescription,
		); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
