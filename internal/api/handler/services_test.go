package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
	"github.com/luminastudio/portfolio-system/internal/infrastructure/db/memory"
)

func seededServiceRepo(t *testing.T) *memory.ServiceRepository {
	t.Helper()
	repo := memory.NewServiceRepository()
	for _, svc := range []domain.Service{
		{Title: "Web Development", Category: "development"},
		{Title: "Brand Identity", Category: "design"},
	} {
		if _, err := repo.Create(context.Background(), &svc); err != nil {
			t.Fatalf("seed service: %v", err)
		}
	}
	return repo
}

func TestServiceHandler_List(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewServiceHandler(seededServiceRepo(t))
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var got []domain.Service
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestServiceHandler_Get(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/services/:id")
	c.SetParamNames("id")
	c.SetParamValues("2")

	h := NewServiceHandler(seededServiceRepo(t))
	if err := h.Get(c); err != nil {
		t.Fatalf("get: %v", err)
	}

	var got domain.Service
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Title != "Brand Identity" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestServiceHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/services/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")

	h := NewServiceHandler(seededServiceRepo(t))
	if err := h.Get(c); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestServiceHandler_Get_BadID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/services/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	h := NewServiceHandler(seededServiceRepo(t))
	err := h.Get(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestServiceHandler_Create(t *testing.T) {
	e := echo.New()
	body := `{"title":"SEO Audit","category":"marketing","price":400}`
	req := httptest.NewRequest(http.MethodPost, "/services", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	repo := seededServiceRepo(t)
	h := NewServiceHandler(repo)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var got domain.Service
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 3 || got.Title != "SEO Audit" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestServiceHandler_Update_PathIDWins(t *testing.T) {
	e := echo.New()
	body := `{"id":42,"title":"Brand Refresh","category":"design"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/services/:id")
	c.SetParamNames("id")
	c.SetParamValues("2")

	repo := seededServiceRepo(t)
	h := NewServiceHandler(repo)
	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}

	var got domain.Service
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 2 || got.Title != "Brand Refresh" {
		t.Fatalf("expected path id to win over body id: %+v", got)
	}
}

func TestServiceHandler_Delete(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/services/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")

	repo := seededServiceRepo(t)
	h := NewServiceHandler(repo)
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	left, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(left) != 1 || left[0].ID != 2 {
		t.Fatalf("unexpected remaining services: %+v", left)
	}
}
