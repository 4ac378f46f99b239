// Package repository contains data access logic for the directory.  This
// file defines repository methods for venues.  All queries run against the
// `venues` table; genre tags travel as the raw delimited column value and
// are decoded at the handler boundary.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel comparisons

	"github.com/gigdir/booking-directory/internal/model" // model defines the venue struct
)

const venueColumns = `id, name, city, state, address, phone, genres,
	image_link, facebook_link, website_link, seeking_talent, seeking_description`

// VenueRepo manages persistence for venues.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue and assigns the generated ID back to the
// struct.  Constraint violations are classified into ErrDuplicate /
// ErrReference.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues
		(name, city, state, address, phone, genres, image_link, facebook_link, website_link, seeking_talent, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, v.Genres,
		v.ImageLink, v.FacebookLink, v.WebsiteLink, v.SeekingTalent, v.SeekingDescription,
	)
	if err != nil {
		return classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID retrieves a venue by its ID.  It returns ErrVenueNotFound when
// there is no matching row.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	var v model.Venue
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Genres,
		&v.ImageLink, &v.FacebookLink, &v.WebsiteLink, &v.SeekingTalent, &v.SeekingDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// ListAll returns every venue ordered by ID.  Insertion order doubles as
// the first-seen order used by the locale grouping; no pagination because
// the directory is assumed to fit in memory.
func (r *VenueRepo) ListAll(ctx context.Context) ([]model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues ORDER BY id ASC`
	return r.queryVenues(ctx, q)
}

// SearchByName returns venues whose name contains the term, matched
// case-insensitively.  Artist search applies the identical rule; the two
// paths deliberately share one case convention.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues
		WHERE LOWER(name) LIKE CONCAT('%', LOWER(?), '%') ORDER BY id ASC`
	return r.queryVenues(ctx, q, term)
}

// Update overwrites every mutable field of the venue identified by v.ID in
// a single statement; the ID itself is never part of the SET clause.  It
// returns ErrVenueNotFound when the row does not exist.  An update that
// changes nothing still succeeds: MySQL reports zero affected rows for a
// no-op SET, so existence is re-checked before concluding not-found.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	const q = `UPDATE venues SET
		name = ?, city = ?, state = ?, address = ?, phone = ?, genres = ?,
		image_link = ?, facebook_link = ?, website_link = ?, seeking_talent = ?, seeking_description = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, v.Genres,
		v.ImageLink, v.FacebookLink, v.WebsiteLink, v.SeekingTalent, v.SeekingDescription,
		v.ID,
	)
	if err != nil {
		return classify(err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	ok, err := r.ExistsByID(ctx, v.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVenueNotFound
	}
	return nil // row exists, submitted values were identical
}

// DeleteByID removes a venue together with its dependent shows inside one
// transaction, so a failure leaves both tables untouched.  It returns
// ErrVenueNotFound when the venue does not exist.  The commit error is
// returned: a delete only reports success once the transaction is durable.
func (r *VenueRepo) DeleteByID(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	// Roll back on any error path; a committed tx ignores the rollback.
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ? LIMIT 1`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		return err
	}
	// Shows are meaningless without their venue: cascade before the venue row.
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		return err
	}
	err = tx.Commit()
	return err
}

// ExistsByID reports whether a venue row with the given ID exists.
func (r *VenueRepo) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ? LIMIT 1`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *VenueRepo) queryVenues(ctx context.Context, q string, args ...any) ([]model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Venue
	for rows.Next() {
		var v model.Venue
		if err := rows.Scan(
			&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Genres,
			&v.ImageLink, &v.FacebookLink, &v.WebsiteLink, &v.SeekingTalent, &v.SeekingDescription,
		); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
