package ports

import "context"

// ResourceClient is the transport the store layer talks through: plain
// JSON verbs against a single configured base address. Implementations
// decode 2xx bodies into out and return an error for everything else;
// callers treat any failure as one error path.
type ResourceClient interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// TokenStore persists the session token across reloads. The token is
// the only state in the whole system that outlives the process.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}
