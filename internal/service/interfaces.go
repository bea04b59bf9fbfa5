package service

import (
	"context"
	"time"

	"sitepulse/internal/model"
	"sitepulse/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mock.go -package=mocks

// StoreInterface defines the persistent store operations the services need (for testing)
type StoreInterface interface {
	GetSiteByPublicID(ctx context.Context, publicID string) (*model.Site, error)
	CreateSite(ctx context.Context, site *model.Site) (bool, error)
	UpdateSite(ctx context.Context, site *model.Site, expectedOwner string) (bool, error)
	ListSitesByOwner(ctx context.Context, ownerKey, ownerIdentity string) ([]model.Site, error)
	DeleteSite(ctx context.Context, siteID int64) (bool, error)
	RecordVisit(ctx context.Context, visit *model.Visit) (*model.PageStat, bool, error)
	LoadStatsSnapshot(ctx context.Context, siteID int64) (*model.StatsSnapshot, error)
}

// SiteCacheInterface defines the site cache operations (for testing)
type SiteCacheInterface interface {
	SaveSite(ctx context.Context, site *model.Site) error
	GetSite(ctx context.Context, publicID string) (*model.Site, error)
	DeleteSite(ctx context.Context, publicID string) error
}

// SiteFilterInterface defines the interface for the registered-site Bloom Filter (for testing)
type SiteFilterInterface interface {
	Add(ctx context.Context, publicID string) error
	Exists(ctx context.Context, publicID string) (bool, error)
}

// SiteServiceInterface defines the interface for site registry operations
type SiteServiceInterface interface {
	Register(ctx context.Context, req *model.RegisterSiteRequest) (*model.Site, error)
	Resolve(ctx context.Context, publicID string) (*model.Site, error)
	Forget(ctx context.Context, publicID string)
	ListByOwner(ctx context.Context, ownerIdentity string) ([]model.Site, error)
	Update(ctx context.Context, publicID, caller string, req *model.UpdateSiteRequest) (*model.Site, error)
	Delete(ctx context.Context, publicID, caller string) (*model.DeleteSiteResponse, error)
}

// VisitServiceInterface defines the interface for visit ingestion
type VisitServiceInterface interface {
	Record(ctx context.Context, publicID string, req *model.RecordVisitRequest) (*model.VisitResult, error)
	RecordAt(ctx context.Context, publicID string, req *model.RecordVisitRequest, at time.Time) (*model.VisitResult, error)
}

// StatsServiceInterface defines the interface for stats reporting
type StatsServiceInterface interface {
	GetStats(ctx context.Context, publicID, caller string) (*model.SiteStats, error)
}

var (
	_ StoreInterface        = (*repository.Store)(nil)
	_ SiteCacheInterface    = (*repository.RedisRepository)(nil)
	_ SiteFilterInterface   = (*SiteFilter)(nil)
	_ SiteServiceInterface  = (*SiteService)(nil)
	_ VisitServiceInterface = (*VisitService)(nil)
	_ StatsServiceInterface = (*StatsService)(nil)
)
