package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminastudio/portfolio-system/internal/api/metrics"
	"github.com/luminastudio/portfolio-system/internal/core/domain"
	"github.com/luminastudio/portfolio-system/internal/core/ports"
)

// RequestHandler serves the /requests resource. Only the status field
// is writable after creation, through Patch.
type RequestHandler struct {
	repo ports.RequestRepository
}

func NewRequestHandler(repo ports.RequestRepository) *RequestHandler {
	return &RequestHandler{repo: repo}
}

type patchRequestBody struct {
	Status domain.RequestStatus `json:"status"`
}

// List handles GET /requests.
func (h *RequestHandler) List(c echo.Context) error {
	requests, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Create handles POST /requests (the contact-form submission).
func (h *RequestHandler) Create(c echo.Context) error {
	var req domain.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	created, err := h.repo.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	metrics.ContactRequestsTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}

// Patch handles PATCH /requests/:id with body {"status": ...}.
func (h *RequestHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body patchRequestBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	updated, err := h.repo.UpdateStatus(c.Request().Context(), id, body.Status)
	if err != nil {
		return err
	}
	metrics.RequestStatusChangesTotal.WithLabelValues(string(body.Status)).Inc()
	return c.JSON(http.StatusOK, updated)
}
