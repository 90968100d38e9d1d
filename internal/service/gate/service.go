// Package gate decides whether the current user may use the journal. It
// combines the auth provider's session with a separate entitlement check.
package gate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// authProvider is the external session authority.
type authProvider interface {
	GetSession(ctx context.Context) (*domain.Session, error)
	OnAuthStateChange(h func(event domain.AuthEvent, session *domain.Session)) (unsubscribe func())
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context) error
}

// entitlementChecker answers whether a user's profiles record is active.
type entitlementChecker interface {
	Entitled(ctx context.Context, userID uuid.UUID) (bool, error)
}

// entitlementCache is the locally persisted "entitlement confirmed" flag.
type entitlementCache interface {
	EntitlementCached(ctx context.Context) bool
	SetEntitlementCached(ctx context.Context, active bool)
}

// Status is a point-in-time view of the gatekeeper.
type Status struct {
	State   domain.AuthState `json:"state"`
	Session *domain.Session  `json:"session,omitempty"`
	Err     error            `json:"-"`
}

// Service is the auth gatekeeper state machine.
type Service struct {
	log      *slog.Logger
	provider authProvider
	checker  entitlementChecker
	cache    entitlementCache

	mu          sync.Mutex
	state       domain.AuthState
	session     *domain.Session
	denied      *domain.Session
	lastErr     error
	seq         uint64
	baseCtx     context.Context
	unsubscribe func()
}

// NewService creates a gatekeeper in the cold state.
func NewService(logger *slog.Logger, provider authProvider, checker entitlementChecker, cache entitlementCache) *Service {
	return &Service{
		log:      logger.With("service", "gate"),
		provider: provider,
		checker:  checker,
		cache:    cache,
		state:    domain.AuthStateCold,
	}
}

// Init subscribes to provider events and resolves the initial session.
// Calling Init more than once is a no-op.
func (s *Service) Init(ctx context.Context) error {
	s.mu.Lock()
	if s.state != domain.AuthStateCold {
		s.mu.Unlock()
		return nil
	}
	s.state = domain.AuthStateLoading
	s.baseCtx = context.WithoutCancel(ctx)
	s.mu.Unlock()

	unsubscribe := s.provider.OnAuthStateChange(s.onEvent)
	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()

	sess, err := s.provider.GetSession(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "initial session unavailable", slog.String("error", err.Error()))
		sess = nil
	}

	if err := s.handle(ctx, domain.AuthEventInitialSession, sess); err != nil {
		return fmt.Errorf("gate.Init: %w", err)
	}
	return nil
}

// SignIn authenticates with the provider and then runs the entitlement
// check. It returns nil only when the gatekeeper ends authorized.
func (s *Service) SignIn(ctx context.Context, email, password string) error {
	sess, err := s.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		s.log.InfoContext(ctx, "sign in failed", slog.String("error", err.Error()))
		return fmt.Errorf("gate.SignIn: %w", err)
	}

	// The provider may already have delivered SIGNED_IN; handle is
	// idempotent for the same session.
	if err := s.handle(ctx, domain.AuthEventSignedIn, sess); err != nil {
		return fmt.Errorf("gate.SignIn: %w", err)
	}
	return nil
}

// SignOut ends the session. The local state is cleared even when the
// provider cannot be reached.
func (s *Service) SignOut(ctx context.Context) error {
	if err := s.provider.SignOut(ctx); err != nil {
		s.log.WarnContext(ctx, "provider sign out failed", slog.String("error", err.Error()))
	}
	return s.handle(ctx, domain.AuthEventSignedOut, nil)
}

// Authorized reports whether the gatekeeper is authorized, first asking
// the provider whether the session still exists.
func (s *Service) Authorized(ctx context.Context) bool {
	if s.State() != domain.AuthStateAuthorized {
		return false
	}

	sess, err := s.provider.GetSession(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "session check failed", slog.String("error", err.Error()))
		return s.State() == domain.AuthStateAuthorized
	}
	if sess == nil {
		_ = s.handle(ctx, domain.AuthEventSignedOut, nil)
		return false
	}
	return s.State() == domain.AuthStateAuthorized
}

// State returns the current state.
func (s *Service) State() domain.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Session returns a copy of the authorized session, or nil.
func (s *Service) Session() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

// LastError returns the error that produced the current unauthenticated
// state, if any.
func (s *Service) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Status returns state, session and last error together.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{State: s.state, Err: s.lastErr}
	if s.session != nil {
		cp := *s.session
		st.Session = &cp
	}
	return st
}

// Close stops listening to provider events.
func (s *Service) Close() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

func (s *Service) onEvent(event domain.AuthEvent, sess *domain.Session) {
	s.mu.Lock()
	ctx := s.baseCtx
	s.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}
	_ = s.handle(ctx, event, sess)
}

// handle applies one session observation. Each call takes a sequence number;
// a result computed for an older number is dropped.
func (s *Service) handle(ctx context.Context, event domain.AuthEvent, sess *domain.Session) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq

	if sess == nil {
		prev := s.state
		s.state = domain.AuthStateUnauthenticated
		s.session = nil
		s.mu.Unlock()

		s.cache.SetEntitlementCached(ctx, false)
		if prev == domain.AuthStateAuthorized {
			s.log.InfoContext(ctx, "session ended", slog.String("event", event.String()))
		}
		return nil
	}

	if s.state == domain.AuthStateAuthorized && s.session != nil && s.session.UserID == sess.UserID {
		s.session = sess
		s.mu.Unlock()
		return nil
	}

	if s.denied.Same(sess) {
		s.mu.Unlock()
		return &domain.ProviderError{
			Op:      "gate.handle",
			Kind:    domain.ErrEntitlement,
			Message: domain.MsgEntitled,
		}
	}

	if s.state != domain.AuthStateAuthorized {
		s.state = domain.AuthStateLoading
	}
	s.mu.Unlock()

	ok, cached, err := s.verify(ctx, sess)

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		s.log.DebugContext(ctx, "stale auth result dropped",
			slog.String("event", event.String()),
			slog.String("user_id", sess.UserID.String()))
		return domain.ErrSuperseded
	}

	if ok {
		s.state = domain.AuthStateAuthorized
		s.session = sess
		s.denied = nil
		s.lastErr = nil
		s.mu.Unlock()

		if !cached {
			s.cache.SetEntitlementCached(ctx, true)
		}
		s.log.InfoContext(ctx, "authorized",
			slog.String("event", event.String()),
			slog.String("user_id", sess.UserID.String()),
			slog.Bool("cached", cached))
		return nil
	}

	s.state = domain.AuthStateUnauthenticated
	s.session = nil
	s.denied = sess
	s.lastErr = err
	s.mu.Unlock()

	s.log.WarnContext(ctx, "entitlement denied, revoking session",
		slog.String("user_id", sess.UserID.String()),
		slog.String("error", err.Error()))

	s.cache.SetEntitlementCached(ctx, false)
	if serr := s.provider.SignOut(ctx); serr != nil {
		s.log.WarnContext(ctx, "revoke session failed", slog.String("error", serr.Error()))
	}
	return err
}

// verify runs the entitlement check, short-circuited by the cached flag.
// Only an explicit true grants access.
func (s *Service) verify(ctx context.Context, sess *domain.Session) (ok, cached bool, err error) {
	if s.cache.EntitlementCached(ctx) {
		return true, true, nil
	}

	active, err := s.checker.Entitled(ctx, sess.UserID)
	if err != nil {
		return false, false, &domain.ProviderError{
			Op:      "gate.verify",
			Kind:    domain.ErrEntitlement,
			Message: domain.MsgEntitled,
			Err:     err,
		}
	}
	if !active {
		return false, false, &domain.ProviderError{
			Op:      "gate.verify",
			Kind:    domain.ErrEntitlement,
			Message: domain.MsgEntitled,
		}
	}
	return true, false, nil
}
