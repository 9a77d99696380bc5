package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
	"github.com/luminastudio/portfolio-system/internal/core/ports"
	"github.com/luminastudio/portfolio-system/internal/core/token"
)

// AuthState is the auth slice as seen by the view layer.
type AuthState struct {
	User    *domain.User
	Token   string
	Loading bool
	Err     string
}

// AuthStore owns the current user and the derived session token.
type AuthStore struct {
	client ports.ResourceClient
	tokens ports.TokenStore
	log    zerolog.Logger

	mu      sync.Mutex
	user    *domain.User
	token   string
	loading bool
	err     string
}

// NewAuthStore recovers a previously persisted token. The user record
// is not re-fetched on recovery: a recovered token without a hydrated
// user is a valid (if awkward) state, surfaced through HasSession.
func NewAuthStore(client ports.ResourceClient, tokens ports.TokenStore, log zerolog.Logger) *AuthStore {
	s := &AuthStore{client: client, tokens: tokens, log: log}
	tok, err := tokens.Load()
	if err != nil {
		log.Warn().Err(err).Msg("session token recovery failed")
		return s
	}
	s.token = tok
	return s
}

// Login fetches the full user collection and scans for an exact email
// and password match. The comparison is case-sensitive against the
// stored plaintext value; that is the backend's contract and must not
// be tightened here. On success the password is stripped and a fresh
// token is derived and persisted.
func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	s.begin()

	var users []domain.User
	if err := s.client.Get(ctx, "/users", &users); err != nil {
		return s.reject(err, "login failed")
	}

	var match *domain.User
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			match = &users[i]
			break
		}
	}
	if match == nil {
		return s.reject(domain.ErrInvalidCredentials, "login failed")
	}

	match.Password = ""
	s.establishSession(*match)
	s.log.Info().Int("user_id", match.ID).Msg("logged in")
	return nil
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates the account and signs the new user in. Duplicate
// emails are not checked; the backend stores them as distinct records.
func (s *AuthStore) Register(ctx context.Context, in RegisterInput) error {
	s.begin()

	payload := domain.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  in.Password,
		Role:      in.Role,
		Avatar:    domain.DefaultAvatar,
		CreatedAt: time.Now().UTC(),
	}
	var created domain.User
	if err := s.client.Post(ctx, "/users", payload, &created); err != nil {
		return s.reject(err, "registration failed")
	}

	created.Password = ""
	s.establishSession(created)
	s.log.Info().Int("user_id", created.ID).Msg("registered")
	return nil
}

// UpdateProfile patches name and email and regenerates the token from
// the response, since the email encoded inside it may have changed.
func (s *AuthStore) UpdateProfile(ctx context.Context, id int, name, email string) error {
	s.begin()

	body := map[string]string{"name": name, "email": email}
	var updated domain.User
	if err := s.client.Patch(ctx, fmt.Sprintf("/users/%d", id), body, &updated); err != nil {
		return s.reject(err, "profile update failed")
	}

	updated.Password = ""
	s.establishSession(updated)
	return nil
}

// establishSession derives and persists the token for u and fulfils the
// pending operation.
func (s *AuthStore) establishSession(u domain.User) {
	tok := token.Encode(u.ID, u.Email)
	if err := s.tokens.Save(tok); err != nil {
		s.log.Warn().Err(err).Msg("session token persistence failed")
	}

	s.mu.Lock()
	s.loading = false
	s.user = &u
	s.token = tok
	s.mu.Unlock()
}

// Logout clears user, token and the persisted token synchronously. No
// network call is involved.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("session token removal failed")
	}
}

// ClearError resets the error field without touching user or token.
func (s *AuthStore) ClearError() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

// Authenticated reports a fully hydrated session: token present and the
// user record loaded. A recovered token alone is not enough.
func (s *AuthStore) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// HasSession reports that a token exists, whether or not the user
// record has been hydrated since recovery.
func (s *AuthStore) HasSession() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// State returns a copy of the slice.
func (s *AuthStore) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	var user *domain.User
	if s.user != nil {
		clone := *s.user
		user = &clone
	}
	return AuthState{User: user, Token: s.token, Loading: s.loading, Err: s.err}
}

func (s *AuthStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *AuthStore) reject(err error, op string) error {
	s.mu.Lock()
	s.loading = false
	s.err = err.Error()
	s.mu.Unlock()
	s.log.Error().Err(err).Msg(op)
	return err
}
