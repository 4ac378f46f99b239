package handler // handler package contains the show endpoints

import (
	"fmt"      // fmt builds the distinct reference-failure messages
	"net/http" // http provides status code constants
	"strconv"  // strconv parses the submitted reference ids
	"strings"  // strings offers trimming utilities
	"time"     // time formats start times for the listing

	"github.com/labstack/echo/v4" // echo provides the web context and JSON helpers

	"github.com/gigdir/booking-directory/internal/model" // model defines the show entity
	"github.com/gigdir/booking-directory/internal/queue" // queue defines mutation event payloads
	"github.com/gigdir/booking-directory/internal/utils" // utils signs flash messages
)

// ShowHandler bundles the stores behind the /shows routes.  Show creation
// needs all three stores: the artist and venue references are validated
// independently before anything is persisted.
type ShowHandler struct {
	Shows   ShowStore          // show persistence
	Artists ArtistStore        // reference checks for artist_id
	Venues  VenueStore         // reference checks for venue_id
	Flash   *utils.FlashSigner // signs post-mutation flash cookies, may be nil
	Events  EventPublisher     // best-effort mutation events, may be nil
}

// NewShowHandler constructs a ShowHandler; Flash and Events are optional.
func NewShowHandler(shows ShowStore, artists ArtistStore, venues VenueStore, flash *utils.FlashSigner, events EventPublisher) *ShowHandler {
	if shows == nil || artists == nil || venues == nil {
		panic("nil store passed to NewShowHandler")
	}
	return &ShowHandler{Shows: shows, Artists: artists, Venues: venues, Flash: flash, Events: events}
}

// ListShows handles GET /shows and returns every show joined with venue
// and artist display fields, ordered by start time.
func (h *ShowHandler) ListShows(c echo.Context) error {
	details, err := h.Shows.ListDetailed(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	rows := make([]echo.Map, 0, len(details))
	for _, d := range details {
		rows = append(rows, echo.Map{
			"venue_id":          d.VenueID,
			"venue_name":        d.VenueName,
			"artist_id":         d.ArtistID,
			"artist_name":       d.ArtistName,
			"artist_image_link": d.ArtistImageLink,
			"start_time":        d.StartTime.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": rows})
}

// NewShowForm handles GET /shows/create and returns the fields a booking
// form submits.
func (h *ShowHandler) NewShowForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"fields": []string{"artist_id", "venue_id", "start_time"}})
}

// CreateShow handles POST /shows/create.  Both references are checked
// before persistence and each missing one is reported with its own
// message, so a caller can tell exactly which id was wrong.  Nothing is
// written unless both checks pass.
func (h *ShowHandler) CreateShow(c echo.Context) error {
	ctx := c.Request().Context()
	artistRaw := strings.TrimSpace(c.FormValue("artist_id"))
	venueRaw := strings.TrimSpace(c.FormValue("venue_id"))

	artistID, err := strconv.ParseUint(artistRaw, 10, 64)
	if err != nil || artistID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid artist_id"})
	}
	venueID, err := strconv.ParseUint(venueRaw, 10, 64)
	if err != nil || venueID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid venue_id"})
	}
	startTime, ok := parseStartTime(c.FormValue("start_time"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid start_time format"})
	}

	// Each reference failure is its own message; the artist check always
	// runs first.
	okArtist, err := h.Artists.ExistsByID(ctx, artistID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "db error"})
	}
	if !okArtist {
		msg := fmt.Sprintf("There is no artist with id %d", artistID)
		setFlash(c, h.Flash, msg, "error")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": msg})
	}
	okVenue, err := h.Venues.ExistsByID(ctx, venueID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "db error"})
	}
	if !okVenue {
		msg := fmt.Sprintf("There is no venue with id %d", venueID)
		setFlash(c, h.Flash, msg, "error")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": msg})
	}

	show := &model.Show{ArtistID: artistID, VenueID: venueID, StartTime: startTime}
	if err := h.Shows.Create(ctx, show); err != nil {
		msg := "An error occurred. Show could not be listed."
		setFlash(c, h.Flash, msg, "error")
		return c.JSON(statusForStoreError(err), echo.Map{"success": false, "message": msg})
	}
	msg := "Show was successfully listed!"
	setFlash(c, h.Flash, msg, "success")
	publish(h.Events, queue.DirectoryEvent{Entity: "show", Action: "created", EntityID: show.ID})
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "message": msg, "show": echo.Map{
		"id":         show.ID,
		"artist_id":  show.ArtistID,
		"venue_id":   show.VenueID,
		"start_time": show.StartTime.UTC().Format(time.RFC3339),
	}})
}
