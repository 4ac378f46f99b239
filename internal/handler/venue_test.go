package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigdir/booking-directory/internal/model"
	"github.com/gigdir/booking-directory/internal/repository"
	"github.com/gigdir/booking-directory/internal/utils"
)

// formContext builds an echo context around a form submission.
func formContext(t *testing.T, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSearchVenues_CaseInsensitiveSubstring(t *testing.T) {
	venues := newFakeVenueStore()
	venues.add(model.Venue{Name: "The Fillmore", City: "San Francisco", State: "CA"})
	venues.add(model.Venue{Name: "the fillmore east", City: "New York", State: "NY"})
	venues.add(model.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"})
	shows := newFakeShowStore(venues, newFakeArtistStore())
	h := NewVenueHandler(venues, shows, nil, nil)

	for _, term := range []string{"Fillmore", "fillmore", "FILLMORE"} {
		c, rec := formContext(t, http.MethodPost, "/venues/search", url.Values{"search_term": {term}})
		require.NoError(t, h.SearchVenues(c))
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, float64(2), body["count"], "term %q", term)
		assert.Equal(t, term, body["search_term"])
		assert.Len(t, body["data"], 2)
	}
}

func TestGetVenue_SplitsPastAndUpcoming(t *testing.T) {
	venues := newFakeVenueStore()
	artists := newFakeArtistStore()
	v := venues.add(model.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: "{Rock,Jazz}"})
	a := artists.add(model.Artist{Name: "Guns N Petals", ImageLink: "https://example.com/a.jpg"})
	shows := newFakeShowStore(venues, artists)
	now := time.Now()
	shows.shows = []model.Show{
		{ID: 1, ArtistID: a.ID, VenueID: v.ID, StartTime: now.Add(-time.Hour)},
		{ID: 2, ArtistID: a.ID, VenueID: v.ID, StartTime: now.Add(time.Hour)},
	}
	h := NewVenueHandler(venues, shows, nil, nil)

	c, rec := formContext(t, http.MethodGet, "/venues/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.GetVenue(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "The Musical Hop", body["name"])
	assert.Equal(t, []any{"Rock", "Jazz"}, body["genres"])
	assert.Equal(t, float64(1), body["past_shows_count"])
	assert.Equal(t, float64(1), body["upcoming_shows_count"])

	past := body["past_shows"].([]any)
	require.Len(t, past, 1)
	assert.Equal(t, "Guns N Petals", past[0].(map[string]any)["artist_name"])
}

func TestGetVenue_NotFound(t *testing.T) {
	venues := newFakeVenueStore()
	shows := newFakeShowStore(venues, newFakeArtistStore())
	h := NewVenueHandler(venues, shows, nil, nil)

	c, _ := formContext(t, http.MethodGet, "/venues/7", nil)
	c.SetParamNames("id")
	c.SetParamValues("7")

	err := h.GetVenue(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestCreateVenue_PersistsEncodedGenres(t *testing.T) {
	venues := newFakeVenueStore()
	shows := newFakeShowStore(venues, newFakeArtistStore())
	signer := utils.NewFlashSigner("test-secret", time.Minute)
	h := NewVenueHandler(venues, shows, signer, nil)

	form := url.Values{
		"name":   {"The Musical Hop"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"phone":  {"123-123-1234"},
		"genres": {"Rock", "Jazz"},
	}
	c, rec := formContext(t, http.MethodPost, "/venues/create", form)
	require.NoError(t, h.CreateVenue(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Venue The Musical Hop was successfully listed!", body["message"])

	stored, err := venues.GetByID(c.Request().Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "{Rock,Jazz}", stored.Genres)

	// A signed flash cookie accompanies the mutation.
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "directory_flash", cookies[0].Name)
	flash, err := signer.Parse(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "Venue The Musical Hop was successfully listed!", flash.Message)
	assert.Equal(t, "success", flash.Category)
}

func TestCreateVenue_FailureEchoesSubmission(t *testing.T) {
	venues := newFakeVenueStore()
	venues.failCreate = repository.ErrDuplicate
	shows := newFakeShowStore(venues, newFakeArtistStore())
	h := NewVenueHandler(venues, shows, nil, nil)

	form := url.Values{"name": {"The Musical Hop"}, "city": {"San Francisco"}, "state": {"CA"}}
	c, rec := formContext(t, http.MethodPost, "/venues/create", form)
	require.NoError(t, h.CreateVenue(c))
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "An error occurred. Venue The Musical Hop could not be listed.", body["message"])
	echoed := body["venue"].(map[string]any)
	assert.Equal(t, "The Musical Hop", echoed["name"])
	assert.Equal(t, "San Francisco", echoed["city"])
	assert.Empty(t, venues.venues)
}

func TestEditVenue_FullOverwriteKeepsIdentity(t *testing.T) {
	venues := newFakeVenueStore()
	venues.add(model.Venue{
		Name: "The Musical Hop", City: "San Francisco", State: "CA",
		Phone: "123-123-1234", Genres: "{Rock}", SeekingTalent: true,
	})
	shows := newFakeShowStore(venues, newFakeArtistStore())
	h := NewVenueHandler(venues, shows, nil, nil)

	// The body omits phone and seeking_talent: a full overwrite clears them.
	form := url.Values{
		"name":   {"The Renamed Hop"},
		"city":   {"Oakland"},
		"state":  {"CA"},
		"genres": {"Jazz"},
		"id":     {"99"}, // ignored: the path id is authoritative
	}
	c, rec := formContext(t, http.MethodPost, "/venues/1/edit", form)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.EditVenue(c))
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := venues.GetByID(c.Request().Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "The Renamed Hop", stored.Name)
	assert.Equal(t, "Oakland", stored.City)
	assert.Equal(t, "{Jazz}", stored.Genres)
	assert.Empty(t, stored.Phone)
	assert.False(t, stored.SeekingTalent)

	_, err = venues.GetByID(c.Request().Context(), 99)
	assert.ErrorIs(t, err, repository.ErrVenueNotFound)
}

func TestEditVenue_FailureLeavesStoredRecordUntouched(t *testing.T) {
	venues := newFakeVenueStore()
	venues.add(model.Venue{
		Name: "The Musical Hop", City: "San Francisco", State: "CA",
		Phone: "123-123-1234", Genres: "{Rock}",
	})
	venues.failUpdate = repository.ErrDuplicate
	before := venues.venues[1]
	shows := newFakeShowStore(venues, newFakeArtistStore())
	h := NewVenueHandler(venues, shows, nil, nil)

	form := url.Values{"name": {"The Renamed Hop"}, "city": {"Oakland"}, "state": {"CA"}}
	c, rec := formContext(t, http.MethodPost, "/venues/1/edit", form)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.EditVenue(c))
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "An error occurred. Venue The Renamed Hop could not be updated.", body["message"])
	assert.Equal(t, "The Renamed Hop", body["venue"].(map[string]any)["name"])

	// The stored record is exactly its pre-edit state.
	assert.Equal(t, before, venues.venues[1])
}

func TestEditVenue_NotFound(t *testing.T) {
	venues := newFakeVenueStore()
	shows := newFakeShowStore(venues, newFakeArtistStore())
	h := NewVenueHandler(venues, shows, nil, nil)

	c, _ := formContext(t, http.MethodPost, "/venues/5/edit", url.Values{"name": {"Ghost"}})
	c.SetParamNames("id")
	c.SetParamValues("5")

	err := h.EditVenue(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestDeleteVenue_SuccessThenAbsent(t *testing.T) {
	venues := newFakeVenueStore()
	artists := newFakeArtistStore()
	v := venues.add(model.Venue{Name: "The Musical Hop"})
	a := artists.add(model.Artist{Name: "Guns N Petals"})
	shows := newFakeShowStore(venues, artists)
	shows.shows = []model.Show{{ID: 1, ArtistID: a.ID, VenueID: v.ID, StartTime: time.Now().Add(time.Hour)}}
	h := NewVenueHandler(venues, shows, nil, nil)

	c, rec := formContext(t, http.MethodDelete, "/venues/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.DeleteVenue(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])
	assert.Empty(t, venues.venues)
	assert.Empty(t, shows.shows, "dependent shows cascade with the venue")

	// Deleting again reports success=false, still 200.
	c, rec = formContext(t, http.MethodDelete, "/venues/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.DeleteVenue(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["success"])
}

func TestDeleteVenue_StoreFailureReportsFalse(t *testing.T) {
	venues := newFakeVenueStore()
	venues.add(model.Venue{Name: "The Musical Hop"})
	venues.failDelete = errors.New("commit failed")
	shows := newFakeShowStore(venues, newFakeArtistStore())
	h := NewVenueHandler(venues, shows, nil, nil)

	c, rec := formContext(t, http.MethodDelete, "/venues/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.DeleteVenue(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["success"])
	assert.Len(t, venues.venues, 1, "a failed delete leaves the row in place")
}

func TestListVenues_GroupedByArea(t *testing.T) {
	venues := newFakeVenueStore()
	venues.add(model.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"})
	venues.add(model.Venue{Name: "The Dueling Pianos Bar", City: "New York", State: "NY"})
	venues.add(model.Venue{Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"})
	shows := newFakeShowStore(venues, newFakeArtistStore())
	h := NewVenueHandler(venues, shows, nil, nil)

	c, rec := formContext(t, http.MethodGet, "/venues", nil)
	require.NoError(t, h.ListVenues(c))
	require.Equal(t, http.StatusOK, rec.Code)

	areas := decodeBody(t, rec)["areas"].([]any)
	require.Len(t, areas, 2)
	first := areas[0].(map[string]any)
	assert.Equal(t, "San Francisco", first["city"])
	assert.Len(t, first["venues"], 2)
}
