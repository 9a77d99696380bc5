package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminastudio/portfolio-system/internal/api/metrics"
	"github.com/luminastudio/portfolio-system/internal/core/domain"
	"github.com/luminastudio/portfolio-system/internal/core/ports"
)

// UserHandler serves the /users resource. Records include the stored
// plaintext password; the login scan on the client depends on it. The
// backend enforces nothing here, mirroring a bare resource store.
type UserHandler struct {
	repo ports.UserRepository
}

func NewUserHandler(repo ports.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

type patchUserBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// List handles GET /users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /users (registration).
func (h *UserHandler) Create(c echo.Context) error {
	var user domain.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	created, err := h.repo.Create(c.Request().Context(), &user)
	if err != nil {
		return err
	}
	metrics.ResourceWritesTotal.WithLabelValues("users", "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Patch handles PATCH /users/:id with body {"name": ..., "email": ...}.
func (h *UserHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body patchUserBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	updated, err := h.repo.UpdateProfile(c.Request().Context(), id, body.Name, body.Email)
	if err != nil {
		return err
	}
	metrics.ResourceWritesTotal.WithLabelValues("users", "update").Inc()
	return c.JSON(http.StatusOK, updated)
}
