package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sitepulse/internal/identity"
	"sitepulse/internal/model"
	"sitepulse/internal/repository"

	"github.com/rs/zerolog/log"
)

// OwnershipGuard authorizes owner-only operations against the stored site owner
type OwnershipGuard struct {
	store StoreInterface
}

// NewOwnershipGuard creates a new ownership guard
func NewOwnershipGuard(store StoreInterface) *OwnershipGuard {
	return &OwnershipGuard{store: store}
}

// Authorize loads the site and checks that caller is its owner.
// Both identities are compared in canonical form, so a hex key and its
// bech32 encoding authorize the same site.
func (g *OwnershipGuard) Authorize(ctx context.Context, publicID, caller string) (*model.Site, error) {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return nil, fmt.Errorf("%w: public id is required", ErrValidation)
	}

	site, err := g.store.GetSiteByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to load site: %w", err)
	}

	if !site.HasOwner() {
		log.Debug().Str("public_id", publicID).Msg("Site has no owner")
		return nil, ErrAuthorizationFailed
	}

	ownerKey, ok := identity.Normalize(site.OwnerIdentity)
	if !ok {
		log.Warn().Str("public_id", publicID).Msg("Stored owner identity is not a recognized key")
		return nil, ErrAuthorizationFailed
	}

	callerKey, ok := identity.Normalize(caller)
	if !ok || callerKey != ownerKey {
		return nil, ErrAuthorizationFailed
	}

	return site, nil
}
