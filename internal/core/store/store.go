// Package store implements the client-side state layer: four
// independently owned slices (auth, catalog, content, admin) composed
// into one aggregate whose snapshot the view layer renders from.
//
// Every asynchronous operation follows the same lifecycle: mark the
// slice pending, perform the network call, then apply the response or
// record the failure. Operations may overlap and are never cancelled by
// navigation; when two responses touching the same list race, the one
// that completes last wins, regardless of request order.
package store

import (
	"github.com/rs/zerolog"

	"github.com/luminastudio/portfolio-system/internal/core/ports"
)

// Store is the composed state layer. Each slice owns its state
// exclusively; cross-slice data only moves through snapshots.
type Store struct {
	Auth    *AuthStore
	Catalog *CatalogStore
	Content *ContentStore
	Admin   *AdminStore
}

// New composes the four slices over one resource client and one token
// store.
func New(client ports.ResourceClient, tokens ports.TokenStore, log zerolog.Logger) *Store {
	return &Store{
		Auth:    NewAuthStore(client, tokens, log),
		Catalog: NewCatalogStore(client, log),
		Content: NewContentStore(client, log),
		Admin:   NewAdminStore(client, log),
	}
}

// Snapshot is the read-only aggregate handed to the view layer. It is a
// value copy: mutating it has no effect on the stores.
type Snapshot struct {
	Auth    AuthState
	Catalog CatalogState
	Content ContentState
	Admin   AdminState
}

// Snapshot captures all four slices at one point in time.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Auth:    s.Auth.State(),
		Catalog: s.Catalog.State(),
		Content: s.Content.State(),
		Admin:   s.Admin.State(),
	}
}
