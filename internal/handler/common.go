package handler // handler defines http handlers

import (
	"net/http" // http provides cookie and status helpers
	"strconv"  // strconv converts path params to integers

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/gigdir/booking-directory/internal/utils" // utils signs flash tokens
)

// flashCookie is the cookie carrying the signed post-mutation message.
const flashCookie = "directory_flash"

// parseID extracts a numeric :id path parameter.
func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// setFlash signs a flash message and attaches it as a cookie so the next
// page load can display it.  A nil signer disables flashes; signing
// failures are silently dropped because the JSON body carries the same
// message anyway.
func setFlash(c echo.Context, signer *utils.FlashSigner, message, category string) {
	if signer == nil {
		return
	}
	token, err := signer.Issue(message, category)
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}
