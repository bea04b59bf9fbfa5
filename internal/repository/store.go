package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sitepulse/internal/config"
	"sitepulse/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var (
	// ErrNotFound is returned when a lookup matches no row
	ErrNotFound = gorm.ErrRecordNotFound
	// ErrSiteMissing is returned when a visit references a site row that no longer exists
	ErrSiteMissing = errors.New("site row missing")
)

// Store persists sites, raw visits and page stat counters
type Store struct {
	db *gorm.DB
}

// Open connects to the configured database and migrates the schema
func Open(cfg *config.DatabaseConfig) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.MySQL.DSN)
	case "sqlite":
		if err := ensureParentDir(cfg.SQLite.Path); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(SQLiteDSN(cfg.SQLite.Path))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger(),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	}

	store := NewStore(db)
	if err := store.Migrate(); err != nil {
		return nil, err
	}

	log.Info().Str("driver", cfg.Driver).Msg("Database connected successfully")

	return store, nil
}

// NewStore wraps an already opened GORM connection
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// SQLiteDSN builds a DSN with foreign keys, WAL and a busy timeout enabled
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
}

func gormLogger() logger.Interface {
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		return logger.Default.LogMode(logger.Silent)
	}
	return logger.Default.LogMode(logger.Info)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Migrate creates the sites, visits and page_stats tables
func (r *Store) Migrate() error {
	if err := r.db.AutoMigrate(&model.Site{}, &model.Visit{}, &model.PageStat{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// GetDB returns the GORM DB instance
func (r *Store) GetDB() *gorm.DB {
	return r.db
}

// GetSiteByPublicID retrieves a site by its public identifier
func (r *Store) GetSiteByPublicID(ctx context.Context, publicID string) (*model.Site, error) {
	var site model.Site
	err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&site).Error
	if err != nil {
		return nil, err
	}
	return &site, nil
}

// CreateSite inserts a site unless its public id is already taken.
// It reports whether a row was inserted.
func (r *Store) CreateSite(ctx context.Context, site *model.Site) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "public_id"}},
			DoNothing: true,
		}).
		Create(site)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// UpdateSite writes the mutable columns of a site, provided its stored owner
// identity still equals expectedOwner. It reports whether the row was written.
func (r *Store) UpdateSite(ctx context.Context, site *model.Site, expectedOwner string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Site{}).
		Where("id = ? AND owner_identity = ?", site.ID, expectedOwner).
		Updates(map[string]interface{}{
			"name":           site.Name,
			"owner_identity": site.OwnerIdentity,
			"owner_key":      site.OwnerKey,
			"updated_at":     site.UpdatedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ListSitesByOwner returns an owner's sites, newest first.
// A non-empty ownerKey matches the canonical key, otherwise the raw identity is compared.
func (r *Store) ListSitesByOwner(ctx context.Context, ownerKey, ownerIdentity string) ([]model.Site, error) {
	query := r.db.WithContext(ctx)
	if ownerKey != "" {
		query = query.Where("owner_key = ?", ownerKey)
	} else {
		query = query.Where("owner_identity = ?", ownerIdentity)
	}

	var sites []model.Site
	err := query.Order("created_at DESC").Order("id DESC").Find(&sites).Error
	return sites, err
}

// DeleteSite removes a site together with its visits and page stats
func (r *Store) DeleteSite(ctx context.Context, siteID int64) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("site_id = ?", siteID).Delete(&model.PageStat{}).Error; err != nil {
			return err
		}
		if err := tx.Where("site_id = ?", siteID).Delete(&model.Visit{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", siteID).Delete(&model.Site{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// RecordVisit inserts a raw visit and bumps its page stat in one transaction.
// A visit whose event id already exists is skipped; the current stat is returned
// untouched (nil when none exists) and inserted is false.
func (r *Store) RecordVisit(ctx context.Context, visit *model.Visit) (stat *model.PageStat, inserted bool, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		insert := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).Create(visit)
		if insert.Error != nil {
			return insert.Error
		}

		inserted = insert.RowsAffected == 1
		if !inserted {
			current, err := findPageStat(tx, visit.SiteID, visit.PagePath, visit.DeviceType)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			stat = current
			return nil
		}

		upsert := model.PageStat{
			SiteID:     visit.SiteID,
			PagePath:   visit.PagePath,
			DeviceType: visit.DeviceType,
			VisitCount: 1,
			LastSeen:   visit.CreatedAt,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "site_id"}, {Name: "page_path"}, {Name: "device_type"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"visit_count": gorm.Expr("page_stats.visit_count + ?", 1),
				"last_seen":   visit.CreatedAt,
			}),
		}).Create(&upsert).Error; err != nil {
			return err
		}

		current, err := findPageStat(tx, visit.SiteID, visit.PagePath, visit.DeviceType)
		if err != nil {
			return err
		}
		stat = current
		return nil
	})
	if isForeignKeyViolation(err) {
		return nil, false, ErrSiteMissing
	}
	if err != nil {
		return nil, false, err
	}
	return stat, inserted, nil
}

// isForeignKeyViolation also matches the raw SQLite message, for connections
// opened without error translation.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func findPageStat(tx *gorm.DB, siteID int64, pagePath, deviceType string) (*model.PageStat, error) {
	var stat model.PageStat
	err := tx.Where("site_id = ? AND page_path = ? AND device_type = ?", siteID, pagePath, deviceType).
		Take(&stat).Error
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// LoadStatsSnapshot reads a site's page stats and raw visit history in one transaction
func (r *Store) LoadStatsSnapshot(ctx context.Context, siteID int64) (*model.StatsSnapshot, error) {
	snapshot := &model.StatsSnapshot{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("site_id = ?", siteID).
			Order("page_path ASC").Order("device_type ASC").
			Find(&snapshot.PageStats).Error; err != nil {
			return err
		}
		return tx.Model(&model.Visit{}).
			Select("page_path", "created_at").
			Where("site_id = ?", siteID).
			Order("created_at ASC").Order("id ASC").
			Scan(&snapshot.Visits).Error
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Close closes the database connection
func (r *Store) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
