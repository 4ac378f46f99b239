package main // Entry point package

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/gigdir/booking-directory/internal/config"
	"github.com/gigdir/booking-directory/internal/database"
	"github.com/gigdir/booking-directory/internal/handler"
	"github.com/gigdir/booking-directory/internal/middleware"
	"github.com/gigdir/booking-directory/internal/repository"
	"github.com/gigdir/booking-directory/internal/router"
	"github.com/gigdir/booking-directory/internal/service"
	"github.com/gigdir/booking-directory/internal/utils"
)

func main() {
	// .env is optional; real deployments set variables in the environment.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	venues := repository.NewVenueRepo(db)
	artists := repository.NewArtistRepo(db)
	shows := repository.NewShowRepo(db)

	flash := utils.NewFlashSigner(cfg.SessionSecret, time.Duration(cfg.FlashTTLMin)*time.Minute)
	events := service.QueuePublisher{}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.HTTPErrorHandler = errorPages

	// Redis is optional: a nil client turns both middlewares into
	// pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting and response cache disabled")
	}
	browse := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)
	mutate := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterVenues(e, handler.NewVenueHandler(venues, shows, flash, events), browse, mutate)
	router.RegisterArtists(e, handler.NewArtistHandler(artists, shows, flash, events), browse, mutate)
	router.RegisterShows(e, handler.NewShowHandler(shows, artists, venues, flash, events), browse, mutate)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// errorPages renders the dedicated 404/500 error pages as JSON.  Anything
// a handler did not map explicitly lands here, including unknown routes.
func errorPages(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := "Something went wrong on our end."
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			message = s
		}
	}
	if code == http.StatusNotFound {
		if message == "" || message == http.StatusText(http.StatusNotFound) {
			message = "The page you were looking for does not exist."
		}
	}
	if code == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	_ = c.JSON(code, echo.Map{"error": http.StatusText(code), "message": message, "status": code})
}
