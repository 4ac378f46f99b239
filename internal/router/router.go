package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/gigdir/booking-directory/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes with no entity behind them.  At the
// moment that is only the health check used by load balancers and
// monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterVenues registers the venue surface: grouped browse, search,
// detail, create, edit and delete.  browse carries the optional response
// cache; mutate carries the rate limiter.  Both middlewares degrade to
// pass-throughs when disabled.
func RegisterVenues(e *echo.Echo, h *handler.VenueHandler, browse, mutate echo.MiddlewareFunc) {
	e.GET("/venues", h.ListVenues, browse)
	e.POST("/venues/search", h.SearchVenues)
	// The create routes must precede the :id routes only in readability;
	// echo matches static segments before parameters either way.
	e.GET("/venues/create", h.NewVenueForm)
	e.POST("/venues/create", h.CreateVenue, mutate)
	e.GET("/venues/:id", h.GetVenue, browse)
	e.DELETE("/venues/:id", h.DeleteVenue, mutate)
	e.GET("/venues/:id/edit", h.EditVenueForm)
	e.POST("/venues/:id/edit", h.EditVenue, mutate)
}

// RegisterArtists registers the artist surface, symmetric to venues
// except that artists are never deleted.
func RegisterArtists(e *echo.Echo, h *handler.ArtistHandler, browse, mutate echo.MiddlewareFunc) {
	e.GET("/artists", h.ListArtists, browse)
	e.POST("/artists/search", h.SearchArtists)
	e.GET("/artists/create", h.NewArtistForm)
	e.POST("/artists/create", h.CreateArtist, mutate)
	e.GET("/artists/:id", h.GetArtist, browse)
	e.GET("/artists/:id/edit", h.EditArtistForm)
	e.POST("/artists/:id/edit", h.EditArtist, mutate)
}

// RegisterShows registers the show listing and booking routes.
func RegisterShows(e *echo.Echo, h *handler.ShowHandler, browse, mutate echo.MiddlewareFunc) {
	e.GET("/shows", h.ListShows, browse)
	e.GET("/shows/create", h.NewShowForm)
	e.POST("/shows/create", h.CreateShow, mutate)
}
