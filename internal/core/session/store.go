// Package session owns the authentication state against the cargo backend.
//
// The in-memory state is authoritative: persistence failures are logged and
// swallowed so that login and logout never fail for the caller (the durable
// copy only matters across restarts).
package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
	"github.com/cargopanel/dashboard-gateway/internal/core/ports"
)

// LoginPath is where a cleared session navigates to.
const LoginPath = "/login"

const persistTimeout = 5 * time.Second

// Store is the single source of truth for the backend session. All mutations
// go through Login, Logout and SetLanguage; readers use Current or Token.
type Store struct {
	mu   sync.RWMutex
	sess domain.Session
	subs []func(domain.Session)

	repo ports.SessionRepository // nil disables persistence
	nav  ports.Navigator         // nil disables navigation side effects
	log  zerolog.Logger
}

// NewStore builds a Store rehydrated from the repository. A missing or torn
// persisted record yields the unauthenticated state.
func NewStore(repo ports.SessionRepository, nav ports.Navigator, log zerolog.Logger) *Store {
	s := &Store{repo: repo, nav: nav, log: log}
	if repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		sess, err := repo.Load(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("session rehydration failed, starting unauthenticated")
		} else {
			s.sess = sess.Normalized()
		}
	}
	if s.sess.Lang == "" {
		s.sess.Lang = domain.DefaultLang
	}
	return s
}

// Current returns a snapshot of the session.
func (s *Store) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess
}

// Token returns the current bearer token, empty when logged out. It is read
// at request-send time by the gateway so token changes between request
// construction and send always use the latest value.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.Token
}

// Subscribe registers fn to be called synchronously after every session
// change, with the new snapshot.
func (s *Store) Subscribe(fn func(domain.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Login unconditionally replaces the session with an authenticated one and
// persists it. Subscribers observe the new state before Login returns.
func (s *Store) Login(token string, role domain.Role) {
	s.mu.Lock()
	s.sess.Token = token
	s.sess.Role = role
	sess := s.sess
	subs := s.subs
	s.mu.Unlock()

	s.persist(sess)
	for _, fn := range subs {
		fn(sess)
	}
}

// Logout clears the session, removes the persisted credentials and navigates
// to the login route. Calling it while already logged out is harmless.
func (s *Store) Logout() {
	s.mu.Lock()
	s.sess.Token = ""
	s.sess.Role = ""
	sess := s.sess
	subs := s.subs
	s.mu.Unlock()

	if s.repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.repo.Clear(ctx); err != nil {
			s.log.Warn().Err(err).Msg("clearing persisted session failed")
		}
	}
	for _, fn := range subs {
		fn(sess)
	}
	if s.nav != nil {
		s.nav.NavigateTo(LoginPath)
	}
}

// SetLanguage updates and persists the UI locale. The language is part of the
// durable session record but independent of authentication.
func (s *Store) SetLanguage(lang string) {
	s.mu.Lock()
	s.sess.Lang = lang
	sess := s.sess
	subs := s.subs
	s.mu.Unlock()

	s.persist(sess)
	for _, fn := range subs {
		fn(sess)
	}
}

func (s *Store) persist(sess domain.Session) {
	if s.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.repo.Save(ctx, sess); err != nil {
		s.log.Warn().Err(err).Msg("persisting session failed, in-memory state remains authoritative")
	}
}
