package handler // handler package contains the artist endpoints

import (
	"errors"   // errors drives sentinel checks against the store
	"fmt"      // fmt builds flash messages
	"net/http" // http provides status code constants
	"strings"  // strings offers trimming utilities
	"time"     // time supplies the wall-clock reading for the past/upcoming split

	"github.com/labstack/echo/v4" // echo provides the web context and JSON helpers

	"github.com/gigdir/booking-directory/internal/model"      // model defines the artist entity and genre codec
	"github.com/gigdir/booking-directory/internal/queue"      // queue defines mutation event payloads
	"github.com/gigdir/booking-directory/internal/repository" // repository supplies sentinel errors
	"github.com/gigdir/booking-directory/internal/utils"      // utils signs flash messages
)

// ArtistHandler bundles the stores behind the /artists routes.  Artists
// mirror venues except that the directory never deletes them.
type ArtistHandler struct {
	Artists ArtistStore        // artist persistence
	Shows   ShowStore          // show persistence, for counts and detail pages
	Flash   *utils.FlashSigner // signs post-mutation flash cookies, may be nil
	Events  EventPublisher     // best-effort mutation events, may be nil
}

// NewArtistHandler constructs an ArtistHandler; Flash and Events are optional.
func NewArtistHandler(artists ArtistStore, shows ShowStore, flash *utils.FlashSigner, events EventPublisher) *ArtistHandler {
	if artists == nil || shows == nil {
		panic("nil store passed to NewArtistHandler")
	}
	return &ArtistHandler{Artists: artists, Shows: shows, Flash: flash, Events: events}
}

// ListArtists handles GET /artists and returns the plain id/name listing
// ordered by id.
func (h *ArtistHandler) ListArtists(c echo.Context) error {
	artists, err := h.Artists.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	rows := make([]echo.Map, 0, len(artists))
	for _, a := range artists {
		rows = append(rows, echo.Map{"id": a.ID, "name": a.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": rows})
}

// SearchArtists handles POST /artists/search with the same
// case-insensitive substring rule as venue search.
func (h *ArtistHandler) SearchArtists(c echo.Context) error {
	ctx := c.Request().Context()
	term := strings.TrimSpace(c.FormValue("search_term"))
	artists, err := h.Artists.SearchByName(ctx, term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	shows, err := h.Shows.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	counts := upcomingCountsByArtist(shows, time.Now())
	rows := make([]SearchRow, 0, len(artists))
	for _, a := range artists {
		rows = append(rows, SearchRow{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":       len(rows),
		"data":        rows,
		"search_term": term,
	})
}

// GetArtist handles GET /artists/:id and returns the full record with
// decoded genres plus the artist's shows split into past and upcoming,
// each entry denormalized with the hosting venue's id, name and image.
func (h *ArtistHandler) GetArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	a, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "artist not found")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	details, err := h.Shows.ListByArtist(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	past, upcoming := partitionShows(details, time.Now())
	return c.JSON(http.StatusOK, echo.Map{
		"id":                   a.ID,
		"name":                 a.Name,
		"city":                 a.City,
		"state":                a.State,
		"phone":                a.Phone,
		"genres":               model.DecodeGenres(a.Genres),
		"image_link":           a.ImageLink,
		"facebook_link":        a.FacebookLink,
		"website_link":         a.WebsiteLink,
		"seeking_venue":        a.SeekingVenue,
		"seeking_description":  a.SeekingDescription,
		"past_shows":           venueShowViews(past),
		"upcoming_shows":       venueShowViews(upcoming),
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	})
}

// NewArtistForm handles GET /artists/create and returns the form schema.
func (h *ArtistHandler) NewArtistForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"genres": GenreChoices, "states": StateChoices})
}

// CreateArtist handles POST /artists/create.  On failure the submitted
// record is echoed back for correction.
func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	a := artistFromForm(c)
	if a.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "name is required"})
	}
	if err := h.Artists.Create(c.Request().Context(), a); err != nil {
		msg := fmt.Sprintf("An error occurred. Artist %s could not be listed.", a.Name)
		setFlash(c, h.Flash, msg, "error")
		return c.JSON(statusForStoreError(err), echo.Map{
			"success": false,
			"message": msg,
			"artist":  artistJSON(a),
		})
	}
	msg := fmt.Sprintf("Artist %s was successfully listed!", a.Name)
	setFlash(c, h.Flash, msg, "success")
	publish(h.Events, queue.DirectoryEvent{Entity: "artist", Action: "created", EntityID: a.ID, Name: a.Name})
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "message": msg, "artist": artistJSON(a)})
}

// EditArtistForm handles GET /artists/:id/edit and returns the stored
// record for form prefill together with the form schema.
func (h *ArtistHandler) EditArtistForm(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	a, err := h.Artists.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "artist not found")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"artist": artistJSON(a),
		"genres": GenreChoices,
		"states": StateChoices,
	})
}

// EditArtist handles POST /artists/:id/edit as a full-record overwrite.
// The path id is authoritative; identity cannot be altered.
func (h *ArtistHandler) EditArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	a := artistFromForm(c)
	a.ID = id
	if err := h.Artists.Update(c.Request().Context(), a); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "artist not found")
		}
		msg := fmt.Sprintf("An error occurred. Artist %s could not be updated.", a.Name)
		setFlash(c, h.Flash, msg, "error")
		return c.JSON(statusForStoreError(err), echo.Map{
			"success": false,
			"message": msg,
			"artist":  artistJSON(a),
		})
	}
	msg := fmt.Sprintf("Artist %s was successfully updated!", a.Name)
	setFlash(c, h.Flash, msg, "success")
	publish(h.Events, queue.DirectoryEvent{Entity: "artist", Action: "updated", EntityID: id, Name: a.Name})
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": msg, "artist": artistJSON(a)})
}

// artistFromForm builds an artist from the submitted form fields.
func artistFromForm(c echo.Context) *model.Artist {
	return &model.Artist{
		Name:               strings.TrimSpace(c.FormValue("name")),
		City:               strings.TrimSpace(c.FormValue("city")),
		State:              strings.TrimSpace(c.FormValue("state")),
		Phone:              strings.TrimSpace(c.FormValue("phone")),
		Genres:             model.EncodeGenres(formGenres(c)),
		ImageLink:          strings.TrimSpace(c.FormValue("image_link")),
		FacebookLink:       strings.TrimSpace(c.FormValue("facebook_link")),
		WebsiteLink:        strings.TrimSpace(c.FormValue("website_link")),
		SeekingVenue:       formBool(c.FormValue("seeking_venue")),
		SeekingDescription: strings.TrimSpace(c.FormValue("seeking_description")),
	}
}

// artistJSON renders an artist record with decoded genres.
func artistJSON(a *model.Artist) echo.Map {
	return echo.Map{
		"id":                  a.ID,
		"name":                a.Name,
		"city":                a.City,
		"state":               a.State,
		"phone":               a.Phone,
		"genres":              model.DecodeGenres(a.Genres),
		"image_link":          a.ImageLink,
		"facebook_link":       a.FacebookLink,
		"website_link":        a.WebsiteLink,
		"seeking_venue":       a.SeekingVenue,
		"seeking_description": a.SeekingDescription,
	}
}
