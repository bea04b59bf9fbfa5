package model

import (
	"fmt"
	"strings"
	"time"
)

// Device type categories
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceOther   = "other"
)

// DeviceTypes lists every device category in display order
var DeviceTypes = []string{DeviceDesktop, DeviceMobile, DeviceTablet, DeviceOther}

// IsDeviceType reports whether s is one of the device categories
func IsDeviceType(s string) bool {
	for _, d := range DeviceTypes {
		if s == d {
			return true
		}
	}
	return false
}

// Visit is one raw page-view event
type Visit struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SiteID     int64     `json:"site_id" gorm:"index:idx_visits_site_created;not null"`
	PagePath   string    `json:"page_path" gorm:"type:varchar(191);not null"`
	DeviceType string    `json:"device_type" gorm:"type:varchar(16);not null"`
	EventID    *string   `json:"event_id" gorm:"type:varchar(191);uniqueIndex"`
	CreatedAt  time.Time `json:"created_at" gorm:"index:idx_visits_site_created"`
}

// TableName returns the table name for Visit
func (Visit) TableName() string {
	return "visits"
}

// NewVisit builds a Visit from already-normalized attributes
func NewVisit(siteID int64, pagePath, deviceType string, eventID *string, at time.Time) (*Visit, error) {
	if siteID <= 0 {
		return nil, fmt.Errorf("visit: invalid site id %d", siteID)
	}
	if !strings.HasPrefix(pagePath, "/") {
		return nil, fmt.Errorf("visit: page path %q is not absolute", pagePath)
	}
	if !IsDeviceType(deviceType) {
		return nil, fmt.Errorf("visit: unknown device type %q", deviceType)
	}
	if eventID != nil && *eventID == "" {
		eventID = nil
	}
	return &Visit{
		SiteID:     siteID,
		PagePath:   pagePath,
		DeviceType: deviceType,
		EventID:    eventID,
		CreatedAt:  at,
	}, nil
}

// PageStat is the running counter per (site, page path, device type)
type PageStat struct {
	ID         int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	SiteID     int64     `json:"-" gorm:"uniqueIndex:idx_page_stats_triple;not null"`
	PagePath   string    `json:"page_path" gorm:"type:varchar(191);uniqueIndex:idx_page_stats_triple;not null"`
	DeviceType string    `json:"device_type" gorm:"type:varchar(16);uniqueIndex:idx_page_stats_triple;not null"`
	VisitCount int64     `json:"visit_count" gorm:"not null;default:0"`
	LastSeen   time.Time `json:"last_seen"`
}

// TableName returns the table name for PageStat
func (PageStat) TableName() string {
	return "page_stats"
}

// RecordVisitRequest is the input of recordVisit
type RecordVisitRequest struct {
	PagePath   *string `json:"page_path"`
	DeviceType *string `json:"device_type"`
	UserAgent  *string `json:"user_agent"`
	EventID    *string `json:"event_id" binding:"omitempty,max=191"`
}

// VisitResult is the output of recordVisit
type VisitResult struct {
	PublicID   string     `json:"public_id"`
	PagePath   string     `json:"page_path"`
	DeviceType string     `json:"device_type"`
	Visits     int64      `json:"visits"`
	LastSeen   *time.Time `json:"last_seen"`
	Duplicate  bool       `json:"duplicate"`
}
