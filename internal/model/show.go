package model

import "time"

// Show is a scheduled booking linking one artist to one venue at a start
// time.  A show is meaningless without both references, which are
// validated before creation.  Relative to the wall clock at query time a
// show is either past or upcoming: strictly-after-now means upcoming, a
// show starting exactly now counts as past.  This struct corresponds to
// a row in the `shows` table.
//
// Fields:
//  ID        – primary key identifier.
//  ArtistID  – performing artist.
//  VenueID   – hosting venue.
//  StartTime – when the show begins (UTC).
type Show struct {
	ID        uint64    // shows.id
	ArtistID  uint64    // shows.artist_id
	VenueID   uint64    // shows.venue_id
	StartTime time.Time // shows.start_time
}

// Upcoming reports whether the show starts strictly after now.  The
// boundary is exclusive: a show starting exactly at now is not upcoming.
func (s Show) Upcoming(now time.Time) bool {
	return s.StartTime.After(now)
}
