package service

import (
	"context"

	"profilesync/internal/domain/entity"
)

// GitHubClient reads the authenticated user's GitHub account.
type GitHubClient interface {
	GetProfile(ctx context.Context, token *entity.AuthToken) (*entity.GitHubProfile, error)
	ListRepositories(ctx context.Context, token *entity.AuthToken) ([]entity.GitHubRepository, error)
	ListOrganizations(ctx context.Context, token *entity.AuthToken) ([]entity.GitHubOrganization, error)
}

// LinkedInClient reads the authenticated member's LinkedIn account.
type LinkedInClient interface {
	GetProfile(ctx context.Context, token *entity.AuthToken) (*entity.LinkedInProfile, error)
	ListPositions(ctx context.Context, token *entity.AuthToken) ([]entity.LinkedInPosition, error)
	ListEducation(ctx context.Context, token *entity.AuthToken) ([]entity.LinkedInEducation, error)
	ListSkills(ctx context.Context, token *entity.AuthToken) ([]entity.LinkedInSkill, error)
}
