package sessions

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mayurii-26/drive-smart-portal/src/core/models"
	"github.com/mayurii-26/drive-smart-portal/src/core/store"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "drive_smart_session"

// TTL is the fixed lifetime of a session; expired tokens resolve exactly
// like unknown ones.
const TTL = 24 * time.Hour

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot enumerate registered accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated is returned when no valid session backs a request.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrForbidden is returned when a valid session lacks the required role.
	ErrForbidden = errors.New("admin privileges required")
)

// Gate owns the server-side token-to-identity table. Tokens are opaque
// UUIDs; the table is the only cross-request mutable state besides the
// flat-file stores.
type Gate struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// Default is the process-wide gate used by the HTTP middleware.
var Default = New()

func New() *Gate {
	return &Gate{sessions: make(map[string]models.Session)}
}

// Login verifies the email/password pair against the credential store.
// On success it creates a fresh session and records a login audit event.
func (g *Gate) Login(email, password string) (models.Session, error) {
	user, err := store.Users.FindByEmail(email)
	if err == store.ErrNotFound {
		return models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Session{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return models.Session{}, ErrInvalidCredentials
	}

	session := g.Create(user.Identity())
	store.Activities.Record(session.Identity, models.ActionLogin, map[string]interface{}{
		"email": user.Email,
	})
	return session, nil
}

// Create binds a fresh unpredictable token to the identity.
func (g *Gate) Create(identity models.Identity) models.Session {
	now := time.Now()
	session := models.Session{
		Token:     uuid.NewString(),
		Identity:  identity,
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}

	g.mu.Lock()
	g.sessions[session.Token] = session
	g.mu.Unlock()
	return session
}

// Resolve maps a token to its identity. Unknown and expired tokens both
// fail closed with ErrUnauthenticated; expired entries are dropped.
func (g *Gate) Resolve(token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, ErrUnauthenticated
	}

	g.mu.RLock()
	session, ok := g.sessions[token]
	g.mu.RUnlock()
	if !ok {
		return models.Identity{}, ErrUnauthenticated
	}
	if session.Expired() {
		g.Destroy(token)
		return models.Identity{}, ErrUnauthenticated
	}
	return session.Identity, nil
}

// Authorize resolves the token and checks the role requirement. An empty
// requiredRole means any authenticated identity is admitted.
func (g *Gate) Authorize(token, requiredRole string) (models.Identity, error) {
	identity, err := g.Resolve(token)
	if err != nil {
		return models.Identity{}, err
	}
	if requiredRole == models.RoleAdmin && identity.Role != models.RoleAdmin {
		return models.Identity{}, ErrForbidden
	}
	return identity, nil
}

// Destroy removes the session bound to the token. Destroying an unknown
// or already-destroyed token is a no-op.
func (g *Gate) Destroy(token string) {
	g.mu.Lock()
	delete(g.sessions, token)
	g.mu.Unlock()
}
