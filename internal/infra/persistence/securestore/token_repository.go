package securestore

import (
	"context"

	"profilesync/internal/domain/entity"
	"profilesync/internal/domain/repository"
	"profilesync/internal/domain/service"

	"github.com/google/uuid"
)

type tokenRepository struct {
	codec
}

// NewTokenRepository creates a TokenRepository storing tokens under "{provider}_token".
func NewTokenRepository(store repository.KeyValueStore, encryptor service.Encryptor) repository.TokenRepository {
	return &tokenRepository{codec{store: store, encryptor: encryptor}}
}

func (repo *tokenRepository) FindToken(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.AuthToken, error) {
	var token entity.AuthToken
	found, err := repo.getSecret(ctx, tokenKey(userID, provider), &token)
	if err != nil || !found {
		return nil, err
	}

	return &token, nil
}

func (repo *tokenRepository) SaveToken(ctx context.Context, userID uuid.UUID, provider entity.ProviderType, token *entity.AuthToken) error {
	return repo.putSecret(ctx, tokenKey(userID, provider), token)
}

func (repo *tokenRepository) DeleteToken(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error {
	return repo.delete(ctx, tokenKey(userID, provider))
}

func tokenKey(userID uuid.UUID, provider entity.ProviderType) string {
	return userKey(userID, provider.String()+suffixToken)
}
