package handler // handler package contains the venue endpoints

import (
	"errors"   // errors drives sentinel checks against the store
	"fmt"      // fmt builds flash messages
	"net/http" // http provides status code constants
	"strings"  // strings offers trimming utilities
	"time"     // time supplies the wall-clock reading for the past/upcoming split

	"github.com/labstack/echo/v4" // echo provides the web context and JSON helpers

	"github.com/gigdir/booking-directory/internal/model"      // model defines the venue entity and genre codec
	"github.com/gigdir/booking-directory/internal/queue"      // queue defines mutation event payloads
	"github.com/gigdir/booking-directory/internal/repository" // repository supplies sentinel errors
	"github.com/gigdir/booking-directory/internal/utils"      // utils signs flash messages
)

// VenueHandler bundles the stores behind the /venues routes.
type VenueHandler struct {
	Venues VenueStore          // venue persistence
	Shows  ShowStore           // show persistence, for counts and detail pages
	Flash  *utils.FlashSigner  // signs post-mutation flash cookies, may be nil
	Events EventPublisher      // best-effort mutation events, may be nil
}

// NewVenueHandler constructs a VenueHandler; Flash and Events are optional.
func NewVenueHandler(venues VenueStore, shows ShowStore, flash *utils.FlashSigner, events EventPublisher) *VenueHandler {
	if venues == nil || shows == nil {
		panic("nil store passed to NewVenueHandler")
	}
	return &VenueHandler{Venues: venues, Shows: shows, Flash: flash, Events: events}
}

// ListVenues handles GET /venues and returns venues grouped by (city,
// state) locale, each entry carrying its upcoming-show count.  Bucket and
// member order follow first-seen order of the stored rows.
func (h *VenueHandler) ListVenues(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.Venues.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	shows, err := h.Shows.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"areas": groupVenuesByArea(venues, shows, time.Now())})
}

// SearchVenues handles POST /venues/search.  The form field `search_term`
// is matched case-insensitively as a substring of venue names; each match
// carries its upcoming-show count.
func (h *VenueHandler) SearchVenues(c echo.Context) error {
	ctx := c.Request().Context()
	term := strings.TrimSpace(c.FormValue("search_term"))
	venues, err := h.Venues.SearchByName(ctx, term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	shows, err := h.Shows.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	counts := upcomingCountsByVenue(shows, time.Now())
	rows := make([]SearchRow, 0, len(venues))
	for _, v := range venues {
		rows = append(rows, SearchRow{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":       len(rows),
		"data":        rows,
		"search_term": term,
	})
}

// GetVenue handles GET /venues/:id and returns the full record with
// decoded genres plus the venue's shows split into past and upcoming.
func (h *VenueHandler) GetVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	v, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	details, err := h.Shows.ListByVenue(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	past, upcoming := partitionShows(details, time.Now())
	return c.JSON(http.StatusOK, echo.Map{
		"id":                   v.ID,
		"name":                 v.Name,
		"city":                 v.City,
		"state":                v.State,
		"address":              v.Address,
		"phone":                v.Phone,
		"genres":               model.DecodeGenres(v.Genres),
		"image_link":           v.ImageLink,
		"facebook_link":        v.FacebookLink,
		"website_link":         v.WebsiteLink,
		"seeking_talent":       v.SeekingTalent,
		"seeking_description":  v.SeekingDescription,
		"past_shows":           artistShowViews(past),
		"upcoming_shows":       artistShowViews(upcoming),
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	})
}

// NewVenueForm handles GET /venues/create and returns the form schema a
// frontend needs to render the create page.
func (h *VenueHandler) NewVenueForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"genres": GenreChoices, "states": StateChoices})
}

// CreateVenue handles POST /venues/create.  All fields arrive as form
// values with `genres` as a multi-value selection.  On failure the
// submitted record is echoed back so it can be re-presented for
// correction.
func (h *VenueHandler) CreateVenue(c echo.Context) error {
	v := venueFromForm(c)
	if v.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "name is required"})
	}
	if err := h.Venues.Create(c.Request().Context(), v); err != nil {
		msg := fmt.Sprintf("An error occurred. Venue %s could not be listed.", v.Name)
		setFlash(c, h.Flash, msg, "error")
		return c.JSON(statusForStoreError(err), echo.Map{
			"success": false,
			"message": msg,
			"venue":   venueJSON(v),
		})
	}
	msg := fmt.Sprintf("Venue %s was successfully listed!", v.Name)
	setFlash(c, h.Flash, msg, "success")
	publish(h.Events, queue.DirectoryEvent{Entity: "venue", Action: "created", EntityID: v.ID, Name: v.Name})
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "message": msg, "venue": venueJSON(v)})
}

// EditVenueForm handles GET /venues/:id/edit and returns the stored record
// for form prefill together with the form schema.
func (h *VenueHandler) EditVenueForm(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.Venues.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"venue":  venueJSON(v),
		"genres": GenreChoices,
		"states": StateChoices,
	})
}

// EditVenue handles POST /venues/:id/edit as a full-record overwrite: the
// submitted form replaces every mutable field in one statement.  The path
// id is authoritative; any id in the body is ignored, so identity cannot
// be altered by resubmission.
func (h *VenueHandler) EditVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v := venueFromForm(c)
	v.ID = id
	if err := h.Venues.Update(c.Request().Context(), v); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		}
		msg := fmt.Sprintf("An error occurred. Venue %s could not be updated.", v.Name)
		setFlash(c, h.Flash, msg, "error")
		return c.JSON(statusForStoreError(err), echo.Map{
			"success": false,
			"message": msg,
			"venue":   venueJSON(v),
		})
	}
	msg := fmt.Sprintf("Venue %s was successfully updated!", v.Name)
	setFlash(c, h.Flash, msg, "success")
	publish(h.Events, queue.DirectoryEvent{Entity: "venue", Action: "updated", EntityID: id, Name: v.Name})
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": msg, "venue": venueJSON(v)})
}

// DeleteVenue handles DELETE /venues/:id and answers with the JSON
// contract {"success": bool}.  Deleting an already-absent venue reports
// success=false.  Dependent shows are cascaded in the same transaction.
func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false})
	}
	if err := h.Venues.DeleteByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusOK, echo.Map{"success": false})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false})
	}
	publish(h.Events, queue.DirectoryEvent{Entity: "venue", Action: "deleted", EntityID: id})
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// venueFromForm builds a venue from the submitted form fields.  Genres
// arrive as a multi-value selection and are stored in the delimited
// column encoding.
func venueFromForm(c echo.Context) *model.Venue {
	return &model.Venue{
		Name:               strings.TrimSpace(c.FormValue("name")),
		City:               strings.TrimSpace(c.FormValue("city")),
		State:              strings.TrimSpace(c.FormValue("state")),
		Address:            strings.TrimSpace(c.FormValue("address")),
		Phone:              strings.TrimSpace(c.FormValue("phone")),
		Genres:             model.EncodeGenres(formGenres(c)),
		ImageLink:          strings.TrimSpace(c.FormValue("image_link")),
		FacebookLink:       strings.TrimSpace(c.FormValue("facebook_link")),
		WebsiteLink:        strings.TrimSpace(c.FormValue("website_link")),
		SeekingTalent:      formBool(c.FormValue("seeking_talent")),
		SeekingDescription: strings.TrimSpace(c.FormValue("seeking_description")),
	}
}

// venueJSON renders a venue record with decoded genres, the shape shared
// by create/edit responses and the edit prefill.
func venueJSON(v *model.Venue) echo.Map {
	return echo.Map{
		"id":                  v.ID,
		"name":                v.Name,
		"city":                v.City,
		"state":               v.State,
		"address":             v.Address,
		"phone":               v.Phone,
		"genres":              model.DecodeGenres(v.Genres),
		"image_link":          v.ImageLink,
		"facebook_link":       v.FacebookLink,
		"website_link":        v.WebsiteLink,
		"seeking_talent":      v.SeekingTalent,
		"seeking_description": v.SeekingDescription,
	}
}

// statusForStoreError maps classified persistence failures onto HTTP
// statuses: duplicates conflict, broken references are bad requests,
// anything else is a generic server failure.
func statusForStoreError(err error) int {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, repository.ErrReference):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
