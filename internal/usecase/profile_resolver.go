package usecase

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/shopdesk/shopdesk/internal/domain"
)

// ProfileResolver resolves the company profile through an ordered list
// of sources: the persisted profile, a cached snapshot left behind by
// older installations, and hardcoded defaults. Each field takes the
// first non-empty value in that order, so a half-migrated profile
// still renders a complete invoice header.
type ProfileResolver struct {
	profileRepo ProfileRepository
	cache       Cache
	defaults    domain.CompanyProfile
	logger      zerolog.Logger
}

// NewProfileResolver creates a new ProfileResolver.
func NewProfileResolver(profileRepo ProfileRepository, cache Cache, defaults domain.CompanyProfile, logger zerolog.Logger) *ProfileResolver {
	return &ProfileResolver{
		profileRepo: profileRepo,
		cache:       cache,
		defaults:    defaults,
		logger:      logger,
	}
}

// Resolve returns a fully-populated company profile. Source failures
// are logged and skipped; the defaults guarantee a usable result.
func (r *ProfileResolver) Resolve(ctx context.Context) domain.CompanyProfile {
	profile := domain.CompanyProfile{}

	if r.profileRepo != nil {
		persisted, err := r.profileRepo.Get(ctx)
		if err != nil {
			r.logger.Warn().Err(err).Msg("persisted company profile unavailable, falling back")
		} else {
			profile = profile.Merge(persisted)
		}
	}

	profile = profile.Merge(r.cachedLegacyProfile(ctx))

	return profile.Merge(r.defaults)
}

func (r *ProfileResolver) cachedLegacyProfile(ctx context.Context) domain.CompanyProfile {
	if r.cache == nil {
		return domain.CompanyProfile{}
	}

	raw, err := r.cache.Get(ctx, ProfileCacheKey)
	if err != nil || raw == "" {
		return domain.CompanyProfile{}
	}

	var cached domain.CompanyProfile
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		r.logger.Warn().Err(err).Msg("discarding malformed cached company profile")
		return domain.CompanyProfile{}
	}

	return cached
}
