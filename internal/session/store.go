// Package session holds the probed authentication state for each
// backend session cookie. Consumers (the authorization gate, the
// navigation chrome) only read from the store; cache entries are
// written by the probe itself and invalidated solely by the auth
// service on login, registration and logout. Plain navigation never
// drops an entry, which is what keeps repeated /api/me calls off the
// wire.
package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/cnedd11/Crypto-Bank-App/internal/data/entity"
	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"go.uber.org/zap"
)

// State is the authorization state derived from the latest probe.
type State int

const (
	// StateUnknown means no probe has resolved yet. The gate must not
	// render anything, protected or otherwise, in this state.
	StateUnknown State = iota
	StateAuthorized
	StateUnauthorized
)

func (s State) String() string {
	switch s {
	case StateAuthorized:
		return "authorized"
	case StateUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Prober issues the credential-bearing "who am I" request.
type Prober interface {
	Me(ctx context.Context, cookies []*http.Cookie) (*entity.Session, error)
}

type entry struct {
	state     State
	session   *entity.Session
	expiresAt time.Time
}

type Store struct {
	mu         sync.Mutex
	entries    map[string]entry
	prober     Prober
	cookieName string
	ttl        time.Duration
	log        *zap.Logger

	now func() time.Time
}

func NewStore(prober Prober, config utils.SessionConfig, log *zap.Logger) *Store {
	return &Store{
		entries:    make(map[string]entry),
		prober:     prober,
		cookieName: config.CookieName,
		ttl:        time.Duration(config.ProbeTTLSeconds) * time.Second,
		log:        log.With(zap.String("component", "session")),
		now:        time.Now,
	}
}

// Resolve turns the browser's cookies into an authorization state.
// Without a session cookie the state is Unauthorized outright. With one,
// a fresh cache entry is reused; otherwise the backend is probed exactly
// once and the outcome cached under that cookie value. Probe failures of
// any kind collapse to Unauthorized, never an error.
func (s *Store) Resolve(ctx context.Context, cookies []*http.Cookie) (State, *entity.Session) {
	cookie := s.sessionCookie(cookies)
	if cookie == nil {
		return StateUnauthorized, nil
	}

	s.mu.Lock()
	cached, ok := s.entries[cookie.Value]
	s.mu.Unlock()

	if ok && s.now().Before(cached.expiresAt) {
		return cached.state, cached.session
	}

	state, sess := s.probe(ctx, cookies)

	s.mu.Lock()
	s.entries[cookie.Value] = entry{
		state:     state,
		session:   sess,
		expiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()

	return state, sess
}

// Invalidate drops the cache entry for the given cookies. Only the auth
// service calls this, on login, registration and logout.
func (s *Store) Invalidate(cookies []*http.Cookie) {
	cookie := s.sessionCookie(cookies)
	if cookie == nil {
		return
	}

	s.mu.Lock()
	delete(s.entries, cookie.Value)
	s.mu.Unlock()

	s.log.Debug("Session cache invalidated")
}

func (s *Store) probe(ctx context.Context, cookies []*http.Cookie) (State, *entity.Session) {
	sess, err := s.prober.Me(ctx, cookies)
	if err != nil {
		s.log.Debug("Session probe resolved unauthorized", zap.Error(err))
		return StateUnauthorized, nil
	}

	s.log.Debug("Session probe resolved authorized",
		zap.String("email", sess.Email),
		zap.String("role", string(sess.Role)))
	return StateAuthorized, sess
}

func (s *Store) sessionCookie(cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == s.cookieName {
			return cookie
		}
	}
	return nil
}
