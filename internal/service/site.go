package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sitepulse/internal/identity"
	"sitepulse/internal/model"
	"sitepulse/internal/repository"
	"sitepulse/pkg/util"

	"github.com/rs/zerolog/log"
)

// SiteService handles site registry operations
type SiteService struct {
	store  StoreInterface
	cache  SiteCacheInterface
	filter SiteFilterInterface
	guard  *OwnershipGuard
}

// NewSiteService creates a new site service. cache and filter may be nil.
func NewSiteService(store StoreInterface, cache SiteCacheInterface, filter SiteFilterInterface) *SiteService {
	return &SiteService{
		store:  store,
		cache:  cache,
		filter: filter,
		guard:  NewOwnershipGuard(store),
	}
}

// maxRegisterAttempts bounds the retries after a lost insert race or a concurrent owner claim
const maxRegisterAttempts = 3

// Register creates a site or updates the one already holding the public id.
// An existing owner may only be replaced by an identity naming the same key.
func (s *SiteService) Register(ctx context.Context, req *model.RegisterSiteRequest) (*model.Site, error) {
	publicID := strings.TrimSpace(req.PublicID)
	if publicID == "" {
		return nil, fmt.Errorf("%w: public id is required", ErrValidation)
	}
	owner := strings.TrimSpace(req.OwnerIdentity)

	lookup := s.mightExist(ctx, publicID)
	for attempt := 0; attempt < maxRegisterAttempts; attempt++ {
		if lookup {
			site, err := s.store.GetSiteByPublicID(ctx, publicID)
			if err == nil {
				updated, saved, err := s.reregister(ctx, site, req.Name, owner)
				if err != nil || saved {
					return updated, err
				}
				// The owner changed after it was read; check again against the new one.
				continue
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("failed to load site: %w", err)
			}
		}

		site, inserted, err := s.create(ctx, publicID, req.Name, owner)
		if err != nil {
			return nil, err
		}
		if inserted {
			return site, nil
		}

		// Another registration won the insert race.
		lookup = true
	}

	return nil, fmt.Errorf("failed to register site %s: concurrent modification", publicID)
}

// mightExist consults the site filter; any filter error means "maybe".
func (s *SiteService) mightExist(ctx context.Context, publicID string) bool {
	if s.filter == nil {
		return true
	}
	exists, err := s.filter.Exists(ctx, publicID)
	if err != nil {
		log.Warn().Err(err).Str("public_id", publicID).Msg("Site filter lookup failed")
		return true
	}
	return exists
}

func (s *SiteService) create(ctx context.Context, publicID string, name *string, owner string) (*model.Site, bool, error) {
	token, err := util.GenerateSecretToken()
	if err != nil {
		return nil, false, err
	}

	ownerKey, _ := identity.Normalize(owner)
	site := &model.Site{
		PublicID:      publicID,
		Name:          name,
		OwnerIdentity: owner,
		OwnerKey:      ownerKey,
		SecretToken:   token,
	}

	inserted, err := s.store.CreateSite(ctx, site)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create site: %w", err)
	}
	if !inserted {
		return nil, false, nil
	}

	if s.filter != nil {
		if err := s.filter.Add(ctx, publicID); err != nil {
			log.Warn().Err(err).Str("public_id", publicID).Msg("Failed to add site to filter")
		}
	}
	s.cacheSite(ctx, site)

	log.Info().Str("public_id", publicID).Str("owner", owner).Msg("Site registered")
	return site, true, nil
}

// reregister applies a registration to an existing site. The write only lands if
// the stored owner is still the one that was checked; saved is false otherwise.
func (s *SiteService) reregister(ctx context.Context, site *model.Site, name *string, owner string) (*model.Site, bool, error) {
	if site.HasOwner() && owner != "" && !sameOwner(site.OwnerIdentity, owner) {
		return nil, false, ErrOwnershipConflict
	}

	expectedOwner := site.OwnerIdentity
	if name != nil {
		site.Name = name
	}
	if owner != "" {
		site.OwnerIdentity = owner
		site.OwnerKey, _ = identity.Normalize(owner)
	}
	site.UpdatedAt = time.Now()

	saved, err := s.store.UpdateSite(ctx, site, expectedOwner)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update site: %w", err)
	}
	if !saved {
		return nil, false, nil
	}
	s.cacheSite(ctx, site)

	log.Info().Str("public_id", site.PublicID).Msg("Site re-registered")
	return site, true, nil
}

// sameOwner compares canonical keys when both identities decode, raw strings otherwise
func sameOwner(stored, incoming string) bool {
	a, okA := identity.Normalize(stored)
	b, okB := identity.Normalize(incoming)
	if okA && okB {
		return a == b
	}
	return stored == incoming
}

// Resolve looks up a site by public id, cache first
func (s *SiteService) Resolve(ctx context.Context, publicID string) (*model.Site, error) {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return nil, fmt.Errorf("%w: public id is required", ErrValidation)
	}

	if s.cache != nil {
		site, err := s.cache.GetSite(ctx, publicID)
		if err == nil {
			return site, nil
		}
	}

	site, err := s.store.GetSiteByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to load site: %w", err)
	}

	s.cacheSite(ctx, site)
	return site, nil
}

// Forget drops the cached record of a site
func (s *SiteService) Forget(ctx context.Context, publicID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteSite(ctx, publicID); err != nil {
		log.Warn().Err(err).Str("public_id", publicID).Msg("Failed to evict site from cache")
	}
}

// ListByOwner returns the sites owned by an identity, newest first
func (s *SiteService) ListByOwner(ctx context.Context, ownerIdentity string) ([]model.Site, error) {
	ownerIdentity = strings.TrimSpace(ownerIdentity)
	if ownerIdentity == "" {
		return nil, fmt.Errorf("%w: owner identity is required", ErrValidation)
	}

	ownerKey, _ := identity.Normalize(ownerIdentity)
	sites, err := s.store.ListSitesByOwner(ctx, ownerKey, ownerIdentity)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	if sites == nil {
		sites = []model.Site{}
	}
	return sites, nil
}

// Update changes the display name of a site the caller owns
func (s *SiteService) Update(ctx context.Context, publicID, caller string, req *model.UpdateSiteRequest) (*model.Site, error) {
	for attempt := 0; attempt < maxRegisterAttempts; attempt++ {
		site, err := s.guard.Authorize(ctx, publicID, caller)
		if err != nil {
			return nil, err
		}

		if req.Name == nil {
			return site, nil
		}

		site.Name = req.Name
		site.UpdatedAt = time.Now()
		saved, err := s.store.UpdateSite(ctx, site, site.OwnerIdentity)
		if err != nil {
			return nil, fmt.Errorf("failed to update site: %w", err)
		}
		if saved {
			s.cacheSite(ctx, site)
			return site, nil
		}
	}

	return nil, fmt.Errorf("failed to update site %s: concurrent modification", publicID)
}

// Delete removes a site the caller owns together with all of its visits and stats
func (s *SiteService) Delete(ctx context.Context, publicID, caller string) (*model.DeleteSiteResponse, error) {
	site, err := s.guard.Authorize(ctx, publicID, caller)
	if err != nil {
		return nil, err
	}

	deleted, err := s.store.DeleteSite(ctx, site.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete site: %w", err)
	}
	s.Forget(ctx, site.PublicID)

	log.Info().Str("public_id", site.PublicID).Bool("deleted", deleted).Msg("Site deleted")
	return &model.DeleteSiteResponse{PublicID: site.PublicID, Deleted: deleted}, nil
}

func (s *SiteService) cacheSite(ctx context.Context, site *model.Site) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SaveSite(ctx, site); err != nil {
		log.Warn().Err(err).Str("public_id", site.PublicID).Msg("Failed to cache site")
	}
}
