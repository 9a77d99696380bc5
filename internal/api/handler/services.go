package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/luminastudio/portfolio-system/internal/api/metrics"
	"github.com/luminastudio/portfolio-system/internal/core/domain"
	"github.com/luminastudio/portfolio-system/internal/core/ports"
)

// ServiceHandler serves the /services resource. The backend stores
// whatever the client sends; validation lives client-side.
type ServiceHandler struct {
	repo ports.ServiceRepository
}

func NewServiceHandler(repo ports.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

// List handles GET /services.
//
// @Summary      List all services
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Get handles GET /services/:id.
//
// @Summary      Get a service by id
// @Tags         services
// @Produce      json
// @Param        id   path      int  true  "Service id"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  map[string]string
// @Router       /services/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	svc, err := h.repo.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Create handles POST /services.
//
// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Service  true  "Service record"
// @Success      201   {object}  domain.Service
// @Router       /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var svc domain.Service
	if err := c.Bind(&svc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	created, err := h.repo.Create(c.Request().Context(), &svc)
	if err != nil {
		return err
	}
	metrics.ResourceWritesTotal.WithLabelValues("services", "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /services/:id with whole-record replacement.
//
// @Summary      Replace a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Service id"
// @Param        body  body      domain.Service  true  "Replacement record"
// @Success      200   {object}  domain.Service
// @Failure      404   {object}  map[string]string
// @Router       /services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var svc domain.Service
	if err := c.Bind(&svc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	updated, err := h.repo.Replace(c.Request().Context(), id, &svc)
	if err != nil {
		return err
	}
	metrics.ResourceWritesTotal.WithLabelValues("services", "update").Inc()
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /services/:id.
//
// @Summary      Delete a service
// @Tags         services
// @Param        id  path  int  true  "Service id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.ResourceWritesTotal.WithLabelValues("services", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
