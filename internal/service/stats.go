package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"sitepulse/internal/model"
)

// DayLayout is the format of the day buckets in a stats report
const DayLayout = "2006-01-02"

// StatsService builds per-site stats reports
type StatsService struct {
	store    StoreInterface
	guard    *OwnershipGuard
	location *time.Location
}

// NewStatsService creates a new stats service. Days are bucketed in loc.
func NewStatsService(store StoreInterface, loc *time.Location) *StatsService {
	if loc == nil {
		loc = time.Local
	}
	return &StatsService{
		store:    store,
		guard:    NewOwnershipGuard(store),
		location: loc,
	}
}

// GetStats returns the stats report of a site the caller owns
func (s *StatsService) GetStats(ctx context.Context, publicID, caller string) (*model.SiteStats, error) {
	site, err := s.guard.Authorize(ctx, publicID, caller)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.store.LoadStatsSnapshot(ctx, site.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	return Aggregate(site, snapshot, s.location), nil
}

// Aggregate folds a stats snapshot into a report.
// Pages keep the order of the snapshot's page stats; series pages appear in
// the order their first visit happened; every day list is ascending.
func Aggregate(site *model.Site, snapshot *model.StatsSnapshot, loc *time.Location) *model.SiteStats {
	stats := &model.SiteStats{
		Site: model.SiteSummary{
			PublicID:      site.PublicID,
			Name:          site.Name,
			OwnerIdentity: site.OwnerIdentity,
		},
		Pages:  []model.PageTotal{},
		Daily:  []model.DailyTotal{},
		Series: []model.PageSeries{},
	}

	pageIndex := make(map[string]int)
	for _, ps := range snapshot.PageStats {
		i, ok := pageIndex[ps.PagePath]
		if !ok {
			i = len(stats.Pages)
			pageIndex[ps.PagePath] = i
			stats.Pages = append(stats.Pages, newPageTotal(ps.PagePath))
		}

		page := &stats.Pages[i]
		page.Visits += ps.VisitCount
		page.Devices[ps.DeviceType] += ps.VisitCount
		if ps.LastSeen.After(page.LastSeen) {
			page.LastSeen = ps.LastSeen
		}
		stats.Totals.Visits += ps.VisitCount
	}
	stats.Totals.Pages = len(stats.Pages)

	daily := make(map[string]int64)
	seriesIndex := make(map[string]int)
	var seriesDays []map[string]int64
	for _, v := range snapshot.Visits {
		day := v.CreatedAt.In(loc).Format(DayLayout)
		daily[day]++

		i, ok := seriesIndex[v.PagePath]
		if !ok {
			i = len(stats.Series)
			seriesIndex[v.PagePath] = i
			stats.Series = append(stats.Series, model.PageSeries{PagePath: v.PagePath})
			seriesDays = append(seriesDays, make(map[string]int64))
		}
		seriesDays[i][day]++
	}

	stats.Daily = sortedDays(daily)
	for i := range stats.Series {
		stats.Series[i].Days = sortedDays(seriesDays[i])
	}

	return stats
}

func newPageTotal(pagePath string) model.PageTotal {
	devices := make(map[string]int64, len(model.DeviceTypes))
	for _, d := range model.DeviceTypes {
		devices[d] = 0
	}
	return model.PageTotal{PagePath: pagePath, Devices: devices}
}

// sortedDays works because DayLayout sorts lexically in date order
func sortedDays(counts map[string]int64) []model.DailyTotal {
	days := make([]model.DailyTotal, 0, len(counts))
	for day, visits := range counts {
		days = append(days, model.DailyTotal{Day: day, Visits: visits})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days
}
