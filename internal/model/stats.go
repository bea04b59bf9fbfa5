package model

import "time"

// SiteSummary identifies the site a stats report belongs to
type SiteSummary struct {
	PublicID      string  `json:"public_id"`
	Name          *string `json:"name"`
	OwnerIdentity string  `json:"owner_identity"`
}

// Totals are the grand totals of a stats report
type Totals struct {
	Visits int64 `json:"visits"`
	Pages  int   `json:"pages"`
}

// PageTotal is the per-page aggregate of page stats
type PageTotal struct {
	PagePath string           `json:"page_path"`
	Visits   int64            `json:"visits"`
	Devices  map[string]int64 `json:"devices"`
	LastSeen time.Time        `json:"last_seen"`
}

// DailyTotal is the visit count of one calendar day
type DailyTotal struct {
	Day    string `json:"day"`
	Visits int64  `json:"visits"`
}

// PageSeries is the daily visit series of one page
type PageSeries struct {
	PagePath string       `json:"page_path"`
	Days     []DailyTotal `json:"days"`
}

// SiteStats is the output of getSiteStats
type SiteStats struct {
	Site   SiteSummary  `json:"site"`
	Totals Totals       `json:"totals"`
	Pages  []PageTotal  `json:"pages"`
	Daily  []DailyTotal `json:"daily"`
	Series []PageSeries `json:"series"`
}

// VisitRow is the slice of a raw visit the aggregator needs
type VisitRow struct {
	PagePath  string
	CreatedAt time.Time
}

// StatsSnapshot is a consistent read of a site's counters and raw history
type StatsSnapshot struct {
	PageStats []PageStat
	Visits    []VisitRow
}
