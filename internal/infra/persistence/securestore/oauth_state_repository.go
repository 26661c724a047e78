package securestore

import (
	"context"

	"profilesync/internal/domain/entity"
	"profilesync/internal/domain/repository"
	"profilesync/internal/domain/service"

	"github.com/google/uuid"
)

type oauthStateRepository struct {
	codec
}

// NewOAuthStateRepository creates an OAuthStateRepository storing encrypted
// states under "{userID}/{provider}_oauth_state".
func NewOAuthStateRepository(store repository.KeyValueStore, encryptor service.Encryptor) repository.OAuthStateRepository {
	return &oauthStateRepository{codec{store: store, encryptor: encryptor}}
}

func (repo *oauthStateRepository) FindState(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.OAuthState, error) {
	var state entity.OAuthState
	found, err := repo.getSecret(ctx, oauthStateKey(userID, provider), &state)
	if err != nil || !found {
		return nil, err
	}

	return &state, nil
}

func (repo *oauthStateRepository) SaveState(ctx context.Context, userID uuid.UUID, provider entity.ProviderType, state *entity.OAuthState) error {
	return repo.putSecret(ctx, oauthStateKey(userID, provider), state)
}

func (repo *oauthStateRepository) DeleteState(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error {
	return repo.delete(ctx, oauthStateKey(userID, provider))
}

func oauthStateKey(userID uuid.UUID, provider entity.ProviderType) string {
	return userKey(userID, provider.String()+suffixOAuthState)
}
