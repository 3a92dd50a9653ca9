package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"store-rating-service/app/domain"
	"store-rating-service/app/port"

	"github.com/google/uuid"
)

// SessionResolverUseCase implements port.SessionResolver. It reconciles
// two sources of identity: the platform session (primary) and the
// fallback cache (secondary). The two are never trusted simultaneously:
// a successful primary resolution deletes the fallback entry, and the
// fallback is consulted only when the primary yields nothing.
//
// Overlapping resolutions are tolerated. Each one independently
// re-derives ground truth, so last-write-wins on the identity value.
type SessionResolverUseCase struct {
	platform port.IdentityPlatform
	users    port.UserRepository
	cache    port.FallbackCache
	logger   *slog.Logger

	mu      sync.RWMutex
	current *domain.Identity
	loading bool
}

// NewSessionResolver creates a new resolver. The loading flag stays up
// until the first resolution completes, however it was triggered.
func NewSessionResolver(
	platform port.IdentityPlatform,
	users port.UserRepository,
	cache port.FallbackCache,
	logger *slog.Logger,
) *SessionResolverUseCase {
	return &SessionResolverUseCase{
		platform: platform,
		users:    users,
		cache:    cache,
		logger:   logger.With("component", "session_resolver"),
		loading:  true,
	}
}

// Resolve produces the current identity or nil. It never returns an
// error: every failure degrades to nil after best-effort fallback.
func (r *SessionResolverUseCase) Resolve(ctx context.Context, token string) *domain.Identity {
	identity := r.resolvePrimary(ctx, token)
	if identity == nil {
		identity = r.resolveFallback()
	}

	r.setCurrent(identity)
	return identity
}

// OnPlatformAuthEvent handles a platform-driven auth state transition.
// Signed-out (or an absent session) clears the identity and the
// fallback cache; anything else re-resolves from scratch.
func (r *SessionResolverUseCase) OnPlatformAuthEvent(ctx context.Context, event domain.AuthEventType, token string) {
	if event == domain.AuthEventSignedOut || token == "" {
		r.setCurrent(nil)
		if err := r.cache.Clear(); err != nil {
			r.logger.Warn("failed to clear fallback cache on sign-out", "error", err)
		}
		return
	}

	r.Resolve(ctx, token)
}

// OnLocalAuthEvent handles a transition announced through the change
// notifier by a flow that bypassed the platform subscription. Signed-in
// identities are taken at face value without a re-fetch.
func (r *SessionResolverUseCase) OnLocalAuthEvent(change domain.AuthChange) {
	switch change.Event {
	case domain.AuthEventSignedIn:
		if change.Identity == nil {
			r.logger.Warn("ignoring signed-in event without identity")
			return
		}
		r.setCurrent(change.Identity)
		r.storeSnapshot(change.Identity)

	case domain.AuthEventSignedOut:
		r.setCurrent(nil)

	default:
		r.logger.Warn("ignoring unknown auth event", "event", change.Event)
	}
}

// Loading reports whether the first resolution is still pending
func (r *SessionResolverUseCase) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

// Current returns the last resolved identity without re-resolving
func (r *SessionResolverUseCase) Current() *domain.Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// resolvePrimary resolves through the platform session. Returns nil on
// any failure so the caller can fall through to the cache.
func (r *SessionResolverUseCase) resolvePrimary(ctx context.Context, token string) *domain.Identity {
	if token == "" {
		return nil
	}

	session, err := r.platform.SessionFromToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrSessionNotFound) {
			r.logger.Debug("no usable platform session", "reason", err)
		} else {
			r.logger.Warn("platform session check failed", "error", err)
		}
		return nil
	}

	if !session.IsValid() {
		r.logger.Debug("platform session inactive or expired")
		return nil
	}

	profile, err := r.users.GetByID(ctx, session.IdentityID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			// Session names an identity we have no profile row for.
			// Treated as unauthenticated; provisioning happens only at
			// sign-up, never here.
			r.logger.Warn("platform session without profile row", "identity_id", session.IdentityID)
		} else {
			r.logger.Error("profile fetch failed during resolution", "identity_id", session.IdentityID, "error", err)
		}
		return nil
	}

	// Primary source won: the fallback copy must not survive as a
	// second source of truth.
	if err := r.cache.Clear(); err != nil {
		r.logger.Warn("failed to clear fallback cache after primary resolution", "error", err)
	}

	return profile
}

// resolveFallback parses the cached identity. A corrupt entry is
// deleted and ignored.
func (r *SessionResolverUseCase) resolveFallback() *domain.Identity {
	payload, ok, err := r.cache.Load()
	if err != nil {
		r.logger.Warn("failed to load fallback cache", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var identity domain.Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		r.logger.Warn("deleting corrupt fallback cache entry", "error", err)
		r.clearCorrupt()
		return nil
	}

	if identity.ID == uuid.Nil || !identity.Role.IsValid() {
		r.logger.Warn("deleting fallback cache entry with invalid identity")
		r.clearCorrupt()
		return nil
	}

	return &identity
}

func (r *SessionResolverUseCase) clearCorrupt() {
	if err := r.cache.Clear(); err != nil {
		r.logger.Warn("failed to delete corrupt fallback cache entry", "error", err)
	}
}

func (r *SessionResolverUseCase) storeSnapshot(identity *domain.Identity) {
	payload, err := json.Marshal(identity)
	if err != nil {
		r.logger.Warn("failed to serialize identity snapshot", "error", err)
		return
	}

	if err := r.cache.Store(payload); err != nil {
		r.logger.Warn("failed to store identity snapshot", "error", err)
	}
}

func (r *SessionResolverUseCase) setCurrent(identity *domain.Identity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = identity
	r.loading = false
}
