package handler

// In-memory store fakes backing the handler tests.  They mirror the SQL
// repositories' observable behavior: sentinel errors, case-insensitive
// name search, id-ordered listings and cascade on venue delete.

import (
	"context"
	"sort"
	"strings"

	"github.com/gigdir/booking-directory/internal/model"
	"github.com/gigdir/booking-directory/internal/repository"
)

type fakeVenueStore struct {
	venues     map[uint64]model.Venue
	shows      *fakeShowStore // cascade target, may be nil
	nextID     uint64
	failCreate error
	failUpdate error
	failDelete error
}

func newFakeVenueStore() *fakeVenueStore {
	return &fakeVenueStore{venues: map[uint64]model.Venue{}}
}

func (f *fakeVenueStore) add(v model.Venue) model.Venue {
	if v.ID == 0 {
		f.nextID++
		v.ID = f.nextID
	} else if v.ID > f.nextID {
		f.nextID = v.ID
	}
	f.venues[v.ID] = v
	return v
}

func (f *fakeVenueStore) Create(_ context.Context, v *model.Venue) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	*v = f.add(*v)
	return nil
}

func (f *fakeVenueStore) GetByID(_ context.Context, id uint64) (*model.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, repository.ErrVenueNotFound
	}
	return &v, nil
}

func (f *fakeVenueStore) ListAll(_ context.Context) ([]model.Venue, error) {
	out := make([]model.Venue, 0, len(f.venues))
	for _, v := range f.venues {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeVenueStore) SearchByName(ctx context.Context, term string) ([]model.Venue, error) {
	all, _ := f.ListAll(ctx)
	out := make([]model.Venue, 0)
	for _, v := range all {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVenueStore) Update(_ context.Context, v *model.Venue) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	if _, ok := f.venues[v.ID]; !ok {
		return repository.ErrVenueNotFound
	}
	f.venues[v.ID] = *v
	return nil
}

func (f *fakeVenueStore) DeleteByID(_ context.Context, id uint64) error {
	if f.failDelete != nil {
		return f.failDelete
	}
	if _, ok := f.venues[id]; !ok {
		return repository.ErrVenueNotFound
	}
	delete(f.venues, id)
	if f.shows != nil {
		kept := f.shows.shows[:0]
		for _, s := range f.shows.shows {
			if s.VenueID != id {
				kept = append(kept, s)
			}
		}
		f.shows.shows = kept
	}
	return nil
}

func (f *fakeVenueStore) ExistsByID(_ context.Context, id uint64) (bool, error) {
	_, ok := f.venues[id]
	return ok, nil
}

type fakeArtistStore struct {
	artists    map[uint64]model.Artist
	nextID     uint64
	failCreate error
	failUpdate error
}

func newFakeArtistStore() *fakeArtistStore {
	return &fakeArtistStore{artists: map[uint64]model.Artist{}}
}

func (f *fakeArtistStore) add(a model.Artist) model.Artist {
	if a.ID == 0 {
		f.nextID++
		a.ID = f.nextID
	} else if a.ID > f.nextID {
		f.nextID = a.ID
	}
	f.artists[a.ID] = a
	return a
}

func (f *fakeArtistStore) Create(_ context.Context, a *model.Artist) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	*a = f.add(*a)
	return nil
}

func (f *fakeArtistStore) GetByID(_ context.Context, id uint64) (*model.Artist, error) {
	a, ok := f.artists[id]
	if !ok {
		return nil, repository.ErrArtistNotFound
	}
	return &a, nil
}

func (f *fakeArtistStore) ListAll(_ context.Context) ([]model.Artist, error) {
	out := make([]model.Artist, 0, len(f.artists))
	for _, a := range f.artists {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeArtistStore) SearchByName(ctx context.Context, term string) ([]model.Artist, error) {
	all, _ := f.ListAll(ctx)
	out := make([]model.Artist, 0)
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeArtistStore) Update(_ context.Context, a *model.Artist) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	if _, ok := f.artists[a.ID]; !ok {
		return repository.ErrArtistNotFound
	}
	f.artists[a.ID] = *a
	return nil
}

func (f *fakeArtistStore) ExistsByID(_ context.Context, id uint64) (bool, error) {
	_, ok := f.artists[id]
	return ok, nil
}

type fakeShowStore struct {
	shows      []model.Show
	venues     *fakeVenueStore
	artists    *fakeArtistStore
	nextID     uint64
	failCreate error
}

func newFakeShowStore(venues *fakeVenueStore, artists *fakeArtistStore) *fakeShowStore {
	f := &fakeShowStore{venues: venues, artists: artists}
	if venues != nil {
		venues.shows = f
	}
	return f
}

func (f *fakeShowStore) Create(_ context.Context, s *model.Show) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.nextID++
	s.ID = f.nextID
	f.shows = append(f.shows, *s)
	return nil
}

func (f *fakeShowStore) ListAll(_ context.Context) ([]model.Show, error) {
	out := make([]model.Show, len(f.shows))
	copy(out, f.shows)
	return out, nil
}

func (f *fakeShowStore) detail(s model.Show) repository.ShowDetail {
	d := repository.ShowDetail{ID: s.ID, ArtistID: s.ArtistID, VenueID: s.VenueID, StartTime: s.StartTime}
	if f.artists != nil {
		if a, ok := f.artists.artists[s.ArtistID]; ok {
			d.ArtistName, d.ArtistImageLink = a.Name, a.ImageLink
		}
	}
	if f.venues != nil {
		if v, ok := f.venues.venues[s.VenueID]; ok {
			d.VenueName, d.VenueImageLink = v.Name, v.ImageLink
		}
	}
	return d
}

func (f *fakeShowStore) ListDetailed(_ context.Context) ([]repository.ShowDetail, error) {
	out := make([]repository.ShowDetail, 0, len(f.shows))
	for _, s := range f.shows {
		out = append(out, f.detail(s))
	}
	return out, nil
}

func (f *fakeShowStore) ListByArtist(_ context.Context, artistID uint64) ([]repository.ShowDetail, error) {
	out := make([]repository.ShowDetail, 0)
	for _, s := range f.shows {
		if s.ArtistID == artistID {
			out = append(out, f.detail(s))
		}
	}
	return out, nil
}

func (f *fakeShowStore) ListByVenue(_ context.Context, venueID uint64) ([]repository.ShowDetail, error) {
	out := make([]repository.ShowDetail, 0)
	for _, s := range f.shows {
		if s.VenueID == venueID {
			out = append(out, f.detail(s))
		}
	}
	return out, nil
}
