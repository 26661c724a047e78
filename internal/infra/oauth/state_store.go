package oauth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"profilesync/config"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/repository"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"

	"github.com/google/uuid"
)

// StateStore issues OAuth states for CSRF protection and keeps them in the
// shared store, so any instance can validate them. States are single use and
// expire after the configured TTL. Issuing a state replaces the pending one
// for the same provider.
type StateStore struct {
	repo repository.OAuthStateRepository
	ttl  time.Duration
	now  func() time.Time
}

// NewStateStore creates the state store.
func NewStateStore(cfg *config.Config, repo repository.OAuthStateRepository) service.OAuthStateStore {
	return newStateStore(repo, cfg.Sync.StateTTL, time.Now)
}

func newStateStore(repo repository.OAuthStateRepository, ttl time.Duration, now func() time.Time) *StateStore {
	return &StateStore{repo: repo, ttl: ttl, now: now}
}

// Generate issues a cryptographically random state bound to the user and provider.
func (s *StateStore) Generate(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "generate oauth state")
	}
	state := hex.EncodeToString(raw)

	pending := &entity.OAuthState{State: state, ExpiresAt: s.now().Add(s.ttl)}
	if err := s.repo.SaveState(ctx, userID, provider, pending); err != nil {
		return "", errors.Wrap(err, "save oauth state")
	}

	return state, nil
}

// Validate consumes state. Unknown, used or expired states are rejected, as
// are states issued to another user or provider. A mismatching state leaves
// the pending one in place.
func (s *StateStore) Validate(ctx context.Context, state string, userID uuid.UUID, provider entity.ProviderType) error {
	pending, err := s.repo.FindState(ctx, userID, provider)
	if err != nil {
		return errors.Wrap(err, "find oauth state")
	}
	if pending == nil || subtle.ConstantTimeCompare([]byte(pending.State), []byte(state)) != 1 {
		return domainerrors.ErrOAuthStateInvalid
	}

	if err := s.repo.DeleteState(ctx, userID, provider); err != nil {
		return errors.Wrap(err, "consume oauth state")
	}

	if s.now().After(pending.ExpiresAt) {
		return domainerrors.ErrOAuthStateInvalid.WithDetails("state expired")
	}

	return nil
}
