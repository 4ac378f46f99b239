package handler

// Form vocabulary and parsing helpers shared by the create/edit endpoints.
// The GET create/edit routes expose these choices so a frontend can render
// its select boxes; POST submissions arrive as classic HTML form fields
// with `genres` as a multi-value selection.

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// GenreChoices is the fixed genre vocabulary offered by the forms.  Stored
// genre strings are free text, so decoding does not validate against this
// list; it only feeds the form schema.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

// StateChoices is the fixed US state vocabulary offered by the forms.
var StateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN",
	"MS", "MO", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

// formGenres collects the multi-value `genres` selection from a submitted
// form, preserving submission order.
func formGenres(c echo.Context) []string {
	params, err := c.FormParams()
	if err != nil {
		return nil
	}
	return params["genres"]
}

// formBool interprets an HTML checkbox value.  Browsers submit "y" or "on"
// when checked and omit the field entirely when not.
func formBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}

// formTimeLayout is the start_time format the booking form sends.
const formTimeLayout = "2006-01-02 15:04:05"

// parseStartTime accepts RFC3339 or the form layout, always in UTC.
func parseStartTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), true
	}
	if t, err := time.ParseInLocation(formTimeLayout, raw, time.UTC); err == nil {
		return t, true
	}
	return time.Time{}, false
}
