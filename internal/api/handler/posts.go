package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminastudio/portfolio-system/internal/api/metrics"
	"github.com/luminastudio/portfolio-system/internal/core/domain"
	"github.com/luminastudio/portfolio-system/internal/core/ports"
)

// PostHandler serves the /posts resource.
type PostHandler struct {
	repo ports.PostRepository
}

func NewPostHandler(repo ports.PostRepository) *PostHandler {
	return &PostHandler{repo: repo}
}

// List handles GET /posts.
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /posts/:id.
func (h *PostHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	post, err := h.repo.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Create handles POST /posts.
func (h *PostHandler) Create(c echo.Context) error {
	var post domain.BlogPost
	if err := c.Bind(&post); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	created, err := h.repo.Create(c.Request().Context(), &post)
	if err != nil {
		return err
	}
	metrics.ResourceWritesTotal.WithLabelValues("posts", "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /posts/:id with whole-record replacement.
func (h *PostHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var post domain.BlogPost
	if err := c.Bind(&post); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	updated, err := h.repo.Replace(c.Request().Context(), id, &post)
	if err != nil {
		return err
	}
	metrics.ResourceWritesTotal.WithLabelValues("posts", "update").Inc()
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /posts/:id.
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.ResourceWritesTotal.WithLabelValues("posts", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
