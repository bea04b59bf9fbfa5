package model

import (
	"time"
)

// Site represents a registered site
type Site struct {
	ID            int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	PublicID      string    `json:"public_id" gorm:"type:varchar(64);uniqueIndex;not null"`
	Name          *string   `json:"name" gorm:"type:varchar(255)"`
	OwnerIdentity string    `json:"owner_identity" gorm:"type:varchar(128);not null;default:''"`
	OwnerKey      string    `json:"-" gorm:"type:varchar(64);index;not null;default:''"`
	SecretToken   string    `json:"-" gorm:"type:varchar(64);not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Visits    []Visit    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	PageStats []PageStat `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Site
func (Site) TableName() string {
	return "sites"
}

// HasOwner reports whether an owner identity has been set
func (s *Site) HasOwner() bool {
	return s.OwnerIdentity != ""
}

// RegisterSiteRequest is the input of registerSite
type RegisterSiteRequest struct {
	PublicID      string  `json:"public_id" binding:"required,min=4,max=64"`
	Name          *string `json:"name" binding:"omitempty,max=255"`
	OwnerIdentity string  `json:"owner_identity" binding:"required"`
}

// UpdateSiteRequest is the input of updateSite
type UpdateSiteRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
}

// DeleteSiteResponse is the output of deleteSite
type DeleteSiteResponse struct {
	PublicID string `json:"public_id"`
	Deleted  bool   `json:"deleted"`
}
