// Package handler exposes the HTTP surface of the booking directory.  This
// file defines the narrow store interfaces handlers depend on, satisfied by
// the repositories in internal/repository and by in-memory fakes in tests.
package handler

import (
	"context"
	"log"
	"time"

	"github.com/gigdir/booking-directory/internal/model"
	"github.com/gigdir/booking-directory/internal/queue"
	"github.com/gigdir/booking-directory/internal/repository"
)

// VenueStore covers every venue operation the HTTP surface needs.
type VenueStore interface {
	Create(ctx context.Context, v *model.Venue) error
	GetByID(ctx context.Context, id uint64) (*model.Venue, error)
	ListAll(ctx context.Context) ([]model.Venue, error)
	SearchByName(ctx context.Context, term string) ([]model.Venue, error)
	Update(ctx context.Context, v *model.Venue) error
	DeleteByID(ctx context.Context, id uint64) error
	ExistsByID(ctx context.Context, id uint64) (bool, error)
}

// ArtistStore covers every artist operation the HTTP surface needs.  There
// is no delete: the directory only exposes venue deletion.
type ArtistStore interface {
	Create(ctx context.Context, a *model.Artist) error
	GetByID(ctx context.Context, id uint64) (*model.Artist, error)
	ListAll(ctx context.Context) ([]model.Artist, error)
	SearchByName(ctx context.Context, term string) ([]model.Artist, error)
	Update(ctx context.Context, a *model.Artist) error
	ExistsByID(ctx context.Context, id uint64) (bool, error)
}

// ShowStore covers show persistence and the joined listings used by the
// detail and shows pages.
type ShowStore interface {
	Create(ctx context.Context, s *model.Show) error
	ListAll(ctx context.Context) ([]model.Show, error)
	ListDetailed(ctx context.Context) ([]repository.ShowDetail, error)
	ListByArtist(ctx context.Context, artistID uint64) ([]repository.ShowDetail, error)
	ListByVenue(ctx context.Context, venueID uint64) ([]repository.ShowDetail, error)
}

// EventPublisher delivers best-effort directory mutation events to the
// message broker.  Implementations must never panic; errors are the
// caller's to ignore.
type EventPublisher interface {
	PublishDirectoryEvent(ctx context.Context, ev queue.DirectoryEvent) error
}

// publish fires a mutation event without blocking the request.  A nil
// publisher disables eventing (tests, broker-less deployments).  Failures
// are logged by the publisher itself; the request outcome never depends
// on the broker.
func publish(p EventPublisher, ev queue.DirectoryEvent) {
	if p == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.PublishDirectoryEvent(ctx, ev); err != nil {
			log.Printf("event publish skipped: %v", err)
		}
	}()
}
