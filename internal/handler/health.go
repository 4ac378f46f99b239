package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health answers GET /healthz for load balancers and uptime probes.  It
// deliberately touches no dependency: a database or broker outage raises
// its own alerts and should not flap the process health.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
