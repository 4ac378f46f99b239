package handler

// This file holds the pure data-shaping helpers behind the browse pages:
// locale grouping, upcoming-show counting and the past/upcoming partition.
// They all take an explicit "now" so the exclusive boundary (a show
// starting exactly at now is past) is testable without touching the clock.

import (
	"time"

	"github.com/gigdir/booking-directory/internal/model"
	"github.com/gigdir/booking-directory/internal/repository"
)

// AreaVenue is one venue entry inside a locale bucket.
type AreaVenue struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area is a (city, state) bucket of venues on the grouped listing page.
type Area struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []AreaVenue `json:"venues"`
}

// SearchRow is one match on a venue or artist search results page.
type SearchRow struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueShowView is a show on an artist detail page, denormalized with the
// hosting venue's display fields.
type VenueShowView struct {
	VenueID        uint64 `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistShowView is a show on a venue detail page, denormalized with the
// performing artist's display fields.
type ArtistShowView struct {
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// groupVenuesByArea buckets venues by (city, state).  Bucket order and the
// order of venues within a bucket both follow first-seen order of the
// input, so a fixed input order yields a deterministic page.  Every venue
// lands in exactly one bucket.
func groupVenuesByArea(venues []model.Venue, shows []model.Show, now time.Time) []Area {
	counts := upcomingCountsByVenue(shows, now)
	areas := make([]Area, 0)
	index := map[[2]string]int{} // (city,state) -> position in areas
	for _, v := range venues {
		entry := AreaVenue{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]}
		key := [2]string{v.City, v.State}
		if i, ok := index[key]; ok {
			areas[i].Venues = append(areas[i].Venues, entry)
			continue
		}
		index[key] = len(areas)
		areas = append(areas, Area{City: v.City, State: v.State, Venues: []AreaVenue{entry}})
	}
	return areas
}

// upcomingCountsByVenue counts, per venue, the shows starting strictly
// after now.
func upcomingCountsByVenue(shows []model.Show, now time.Time) map[uint64]int {
	counts := map[uint64]int{}
	for _, s := range shows {
		if s.Upcoming(now) {
			counts[s.VenueID]++
		}
	}
	return counts
}

// upcomingCountsByArtist counts, per artist, the shows starting strictly
// after now.
func upcomingCountsByArtist(shows []model.Show, now time.Time) map[uint64]int {
	counts := map[uint64]int{}
	for _, s := range shows {
		if s.Upcoming(now) {
			counts[s.ArtistID]++
		}
	}
	return counts
}

// partitionShows splits joined show rows into past and upcoming relative
// to now.  The boundary is exclusive on the upcoming side: a show starting
// exactly at now is past.  Input order (ascending start time) is kept.
func partitionShows(details []repository.ShowDetail, now time.Time) (past, upcoming []repository.ShowDetail) {
	past = make([]repository.ShowDetail, 0, len(details))
	upcoming = make([]repository.ShowDetail, 0)
	for _, d := range details {
		if d.StartTime.After(now) {
			upcoming = append(upcoming, d)
		} else {
			past = append(past, d)
		}
	}
	return past, upcoming
}

// venueShowViews renders joined rows for an artist detail page.
func venueShowViews(details []repository.ShowDetail) []VenueShowView {
	out := make([]VenueShowView, 0, len(details))
	for _, d := range details {
		out = append(out, VenueShowView{
			VenueID:        d.VenueID,
			VenueName:      d.VenueName,
			VenueImageLink: d.VenueImageLink,
			StartTime:      d.StartTime.UTC().Format(time.RFC3339),
		})
	}
	return out
}

// artistShowViews renders joined rows for a venue detail page.
func artistShowViews(details []repository.ShowDetail) []ArtistShowView {
	out := make([]ArtistShowView, 0, len(details))
	for _, d := range details {
		out = append(out, ArtistShowView{
			ArtistID:        d.ArtistID,
			ArtistName:      d.ArtistName,
			ArtistImageLink: d.ArtistImageLink,
			StartTime:       d.StartTime.UTC().Format(time.RFC3339),
		})
	}
	return out
}
