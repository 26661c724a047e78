package impl

import (
	"cmp"
	"context"
	"math"
	"slices"
	"time"

	"profilesync/internal/domain/entity"
	"profilesync/internal/domain/service"

	"golang.org/x/sync/errgroup"
)

// providerFetcher collects one provider's payload with a valid token.
type providerFetcher interface {
	fetch(ctx context.Context, token *entity.AuthToken) (entity.ProviderProfileData, error)
}

type githubFetcher struct {
	client service.GitHubClient
	now    func() time.Time
}

func (f *githubFetcher) fetch(ctx context.Context, token *entity.AuthToken) (entity.ProviderProfileData, error) {
	var (
		profile *entity.GitHubProfile
		repos   []entity.GitHubRepository
		orgs    []entity.GitHubOrganization
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profile, err = f.client.GetProfile(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		repos, err = f.client.ListRepositories(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		orgs, err = f.client.ListOrganizations(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.GitHubData{
		Profile:       *profile,
		Repositories:  repos,
		Organizations: orgs,
		Languages:     languageBreakdown(repos),
		Stats:         repositoryStats(repos),
		FetchedAt:     f.now(),
	}, nil
}

// languageBreakdown counts repositories per primary language, most used first.
func languageBreakdown(repos []entity.GitHubRepository) []entity.LanguageStat {
	counts := make(map[string]int)
	total := 0
	for _, repo := range repos {
		if repo.Language == "" {
			continue
		}
		counts[repo.Language]++
		total++
	}

	stats := make([]entity.LanguageStat, 0, len(counts))
	for language, count := range counts {
		stats = append(stats, entity.LanguageStat{
			Language:   language,
			RepoCount:  count,
			Percentage: math.Round(float64(count)/float64(total)*1000) / 10,
		})
	}
	slices.SortFunc(stats, func(a, b entity.LanguageStat) int {
		if c := cmp.Compare(b.RepoCount, a.RepoCount); c != 0 {
			return c
		}

		return cmp.Compare(a.Language, b.Language)
	})

	return stats
}

func repositoryStats(repos []entity.GitHubRepository) *entity.GitHubStats {
	stats := &entity.GitHubStats{TotalRepos: len(repos)}
	for _, repo := range repos {
		if !repo.Fork {
			stats.OriginalRepos++
		}
		stats.TotalStars += repo.Stars
		stats.TotalForks += repo.Forks
	}

	return stats
}

type linkedinFetcher struct {
	client service.LinkedInClient
	now    func() time.Time
}

func (f *linkedinFetcher) fetch(ctx context.Context, token *entity.AuthToken) (entity.ProviderProfileData, error) {
	var (
		profile   *entity.LinkedInProfile
		positions []entity.LinkedInPosition
		education []entity.LinkedInEducation
		skills    []entity.LinkedInSkill
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profile, err = f.client.GetProfile(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		positions, err = f.client.ListPositions(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		education, err = f.client.ListEducation(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		skills, err = f.client.ListSkills(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.LinkedInData{
		Profile:   *profile,
		Positions: positions,
		Education: education,
		Skills:    skills,
		FetchedAt: f.now(),
	}, nil
}
