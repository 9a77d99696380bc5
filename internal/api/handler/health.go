package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is alive. There are no external
// dependencies to probe; the resource store lives in this process.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
