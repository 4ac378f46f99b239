// Package repository contains data access logic for the directory.  This
// file defines repository methods for shows.  Listing queries join the
// artist and venue tables so that pages can display names and images
// without extra lookups; the past/upcoming split itself happens in the
// handler layer against a single wall-clock reading.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"time"         // time carries show start timestamps

	"github.com/gigdir/booking-directory/internal/model" // model defines the show struct
)

// ShowDetail is a show row joined with the names and images of the two
// records it links.  Which side is populated depends on the query: venue
// pages need artist fields, artist pages need venue fields, the global
// shows listing needs both.
type ShowDetail struct {
	ID              uint64    // shows.id
	ArtistID        uint64    // shows.artist_id
	VenueID         uint64    // shows.venue_id
	StartTime       time.Time // shows.start_time (UTC)
	ArtistName      string    // artists.name
	ArtistImageLink string    // artists.image_link
	VenueName       string    // venues.name
	VenueImageLink  string    // venues.image_link
}

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the
// struct.  The handler validates both references beforehand; a race with
// a concurrent delete still surfaces as ErrReference via the foreign
// keys.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	const q = `INSERT INTO shows (artist_id, venue_id, start_time) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.ArtistID, s.VenueID, s.StartTime.UTC())
	if err != nil {
		return classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// ListAll returns every show with bare columns only, ordered by start
// time.  The grouped venue listing and both search endpoints derive their
// upcoming counts from this single scan.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.Show, error) {
	const q = `SELECT id, artist_id, venue_id, start_time FROM shows ORDER BY start_time ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Show
	for rows.Next() {
		var s model.Show
		if err := rows.Scan(&s.ID, &s.ArtistID, &s.VenueID, &s.StartTime); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListDetailed returns every show joined with artist and venue names for
// the global shows page, ordered by start time.
func (r *ShowRepo) ListDetailed(ctx context.Context) ([]ShowDetail, error) {
	const q = `SELECT s.id, s.artist_id, s.venue_id, s.start_time,
				a.name, a.image_link, v.name, v.image_link
			   FROM shows s
			   JOIN artists a ON a.id = s.artist_id
			   JOIN venues  v ON v.id = s.venue_id
			   ORDER BY s.start_time ASC`
	return r.queryDetails(ctx, q)
}

// ListByArtist returns the shows of one artist joined with venue names
// and images, ordered by start time.  Used by the artist detail page.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]ShowDetail, error) {
	const q = `SELECT s.id, s.artist_id, s.venue_id, s.start_time,
				a.name, a.image_link, v.name, v.image_link
			   FROM shows s
			   JOIN artists a ON a.id = s.artist_id
			   JOIN venues  v ON v.id = s.venue_id
			   WHERE s.artist_id = ?
			   ORDER BY s.start_time ASC`
	return r.queryDetails(ctx, q, artistID)
}

// ListByVenue returns the shows of one venue joined with artist names and
// images, ordered by start time.  Used by the venue detail page.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]ShowDetail, error) {
	const q = `SELECT s.id, s.artist_id, s.venue_id, s.start_time,
				a.name, a.image_link, v.name, v.image_link
			   FROM shows s
			   JOIN artists a ON a.id = s.artist_id
			   JOIN venues  v ON v.id = s.venue_id
			   WHERE s.venue_id = ?
			   ORDER BY s.start_time ASC`
	return r.queryDetails(ctx, q, venueID)
}

func (r *ShowRepo) queryDetails(ctx context.Context, q string, args ...any) ([]ShowDetail, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []ShowDetail
	for rows.Next() {
		var d ShowDetail
		if err := rows.Scan(
			&d.ID, &d.ArtistID, &d.VenueID, &d.StartTime,
			&d.ArtistName, &d.ArtistImageLink, &d.VenueName, &d.VenueImageLink,
		); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
