package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
)

// stubClient routes calls to per-verb function fields. Tests set only
// the verbs they exercise; an unexpected verb fails loudly.
type stubClient struct {
	getFn    func(path string, out any) error
	postFn   func(path string, body, out any) error
	putFn    func(path string, body, out any) error
	patchFn  func(path string, body, out any) error
	deleteFn func(path string) error
}

func (s *stubClient) Get(_ context.Context, path string, out any) error {
	if s.getFn == nil {
		panic("unexpected GET " + path)
	}
	return s.getFn(path, out)
}

func (s *stubClient) Post(_ context.Context, path string, body, out any) error {
	if s.postFn == nil {
		panic("unexpected POST " + path)
	}
	return s.postFn(path, body, out)
}

func (s *stubClient) Put(_ context.Context, path string, body, out any) error {
	if s.putFn == nil {
		panic("unexpected PUT " + path)
	}
	return s.putFn(path, body, out)
}

func (s *stubClient) Patch(_ context.Context, path string, body, out any) error {
	if s.patchFn == nil {
		panic("unexpected PATCH " + path)
	}
	return s.patchFn(path, body, out)
}

func (s *stubClient) Delete(_ context.Context, path string) error {
	if s.deleteFn == nil {
		panic("unexpected DELETE " + path)
	}
	return s.deleteFn(path)
}

// fill copies v into the decode target the same way a JSON response
// body would.
func fill(t *testing.T, out, v any) {
	t.Helper()
	buf, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal stub response: %v", err)
	}
	if err := json.Unmarshal(buf, out); err != nil {
		t.Fatalf("unmarshal stub response: %v", err)
	}
}

// memTokens is an in-memory ports.TokenStore.
type memTokens struct {
	token   string
	saves   int
	clears  int
	loadErr error
}

func (m *memTokens) Load() (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	return m.token, nil
}

func (m *memTokens) Save(token string) error {
	m.token = token
	m.saves++
	return nil
}

func (m *memTokens) Clear() error {
	m.token = ""
	m.clears++
	return nil
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestStore_Snapshot_IsACopy(t *testing.T) {
	client := &stubClient{
		getFn: func(path string, out any) error {
			fill(t, out, []domain.Service{{ID: 1, Title: "Web Development"}})
			return nil
		},
	}
	st := New(client, &memTokens{}, testLogger())

	if err := st.Catalog.FetchServices(context.Background()); err != nil {
		t.Fatalf("fetch services: %v", err)
	}

	snap := st.Snapshot()
	if len(snap.Catalog.Services) != 1 {
		t.Fatalf("expected 1 service in snapshot, got %d", len(snap.Catalog.Services))
	}

	// Mutating the snapshot must not leak back into the store.
	snap.Catalog.Services[0].Title = "tampered"
	if got := st.Catalog.State().Services[0].Title; got != "Web Development" {
		t.Fatalf("snapshot mutation leaked into store: %q", got)
	}
}

func TestStore_New_ComposesAllSlices(t *testing.T) {
	st := New(&stubClient{}, &memTokens{}, testLogger())
	if st.Auth == nil || st.Catalog == nil || st.Content == nil || st.Admin == nil {
		t.Fatalf("expected all four slices, got %+v", st)
	}
}

var errBoom = errors.New("boom")
