package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sitepulse/internal/model"
	"sitepulse/internal/normalize"
	"sitepulse/internal/repository"

	"github.com/rs/zerolog/log"
)

// SiteResolver looks up the site a visit belongs to
type SiteResolver interface {
	Resolve(ctx context.Context, publicID string) (*model.Site, error)
	Forget(ctx context.Context, publicID string)
}

// VisitService records visits and keeps page counters in step
type VisitService struct {
	sites SiteResolver
	store StoreInterface
}

// NewVisitService creates a new visit service
func NewVisitService(sites SiteResolver, store StoreInterface) *VisitService {
	return &VisitService{sites: sites, store: store}
}

// Record records a visit that happened now
func (s *VisitService) Record(ctx context.Context, publicID string, req *model.RecordVisitRequest) (*model.VisitResult, error) {
	return s.RecordAt(ctx, publicID, req, time.Now())
}

// RecordAt records a visit that happened at the given instant.
// A repeated event id leaves every counter untouched and reports Duplicate.
func (s *VisitService) RecordAt(ctx context.Context, publicID string, req *model.RecordVisitRequest, at time.Time) (*model.VisitResult, error) {
	site, err := s.sites.Resolve(ctx, publicID)
	if err != nil {
		return nil, err
	}

	pagePath := normalize.PagePath(req.PagePath)
	deviceType := normalize.DeviceType(req.DeviceType, req.UserAgent)
	eventID := normalize.EventID(req.EventID)

	visit, err := model.NewVisit(site.ID, pagePath, deviceType, eventID, at)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	stat, inserted, err := s.store.RecordVisit(ctx, visit)
	if errors.Is(err, repository.ErrSiteMissing) {
		// the resolved record was stale
		s.sites.Forget(ctx, site.PublicID)
		return nil, ErrSiteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record visit: %w", err)
	}

	result := &model.VisitResult{
		PublicID:   site.PublicID,
		PagePath:   pagePath,
		DeviceType: deviceType,
		Duplicate:  !inserted,
	}
	if stat != nil {
		result.Visits = stat.VisitCount
		lastSeen := stat.LastSeen
		result.LastSeen = &lastSeen
	}

	log.Debug().
		Str("public_id", site.PublicID).
		Str("page_path", pagePath).
		Str("device_type", deviceType).
		Bool("duplicate", result.Duplicate).
		Msg("Visit recorded")

	return result, nil
}
