package service

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sitepulse/internal/config"
	"sitepulse/internal/model"
	"sitepulse/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStack struct {
	store  *repository.Store
	sites  *SiteService
	visits *VisitService
	stats  *StatsService
	redis  *miniredis.Miniredis
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	store, err := repository.Open(&config.DatabaseConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "sitepulse.db")},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := repository.NewRedisRepository(&config.RedisConfig{Addr: s.Addr()}, time.Minute)
	t.Cleanup(func() { _ = cache.Close() })
	filter := NewSiteFilter(client, &config.FilterConfig{Capacity: 1000, ErrorRate: 0.01})

	sites := NewSiteService(store, cache, filter)
	return &testStack{
		store:  store,
		sites:  sites,
		visits: NewVisitService(sites, store),
		stats:  NewStatsService(store, time.UTC),
		redis:  s,
	}
}

// readBarrierStore holds the first `parties` site reads until all of them have
// happened, so that concurrent callers act on the same snapshot.
type readBarrierStore struct {
	*repository.Store
	parties int32
	reads   atomic.Int32
	ready   sync.WaitGroup
}

func newReadBarrierStore(store *repository.Store, parties int) *readBarrierStore {
	b := &readBarrierStore{Store: store, parties: int32(parties)}
	b.ready.Add(parties)
	return b
}

func (b *readBarrierStore) GetSiteByPublicID(ctx context.Context, publicID string) (*model.Site, error) {
	site, err := b.Store.GetSiteByPublicID(ctx, publicID)
	if b.reads.Add(1) <= b.parties {
		b.ready.Done()
		b.ready.Wait()
	}
	return site, err
}

func TestIntegration_DuplicateEventCountedOnce(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	_, err := stack.sites.Register(ctx, &model.RegisterSiteRequest{PublicID: "abc123", OwnerIdentity: ownerHex})
	require.NoError(t, err)

	home := &model.RecordVisitRequest{PagePath: strPtr("/home"), DeviceType: strPtr("desktop")}
	withEvent := &model.RecordVisitRequest{PagePath: strPtr("/home"), DeviceType: strPtr("desktop"), EventID: strPtr("ev1")}

	for _, req := range []*model.RecordVisitRequest{home, home, withEvent} {
		result, err := stack.visits.Record(ctx, "abc123", req)
		require.NoError(t, err)
		assert.False(t, result.Duplicate)
	}

	result, err := stack.visits.Record(ctx, "abc123", withEvent)
	require.NoError(t, err)
	assert.True(t, result.Duplicate)
	assert.Equal(t, int64(3), result.Visits)

	stats, err := stack.stats.GetStats(ctx, "abc123", mustNpub(t, ownerHex))
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Totals.Visits)
	assert.Equal(t, 1, stats.Totals.Pages)
	require.Len(t, stats.Pages, 1)
	assert.Equal(t, "/home", stats.Pages[0].PagePath)
	assert.Equal(t, int64(3), stats.Pages[0].Devices[model.DeviceDesktop])

	var daily int64
	for _, d := range stats.Daily {
		daily += d.Visits
	}
	assert.Equal(t, stats.Totals.Visits, daily)
}

func TestIntegration_URLPageIsReducedToPath(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	_, err := stack.sites.Register(ctx, &model.RegisterSiteRequest{PublicID: "abc123", OwnerIdentity: ownerHex})
	require.NoError(t, err)

	result, err := stack.visits.Record(ctx, "abc123", &model.RecordVisitRequest{PagePath: strPtr("https://example.com/blog/post?x=1")})
	require.NoError(t, err)
	assert.Equal(t, "/blog/post", result.PagePath)

	stats, err := stack.stats.GetStats(ctx, "abc123", ownerHex)
	require.NoError(t, err)
	require.Len(t, stats.Pages, 1)
	assert.Equal(t, "/blog/post", stats.Pages[0].PagePath)
	require.Len(t, stats.Series, 1)
	assert.Equal(t, "/blog/post", stats.Series[0].PagePath)
}

func TestIntegration_RegistryLifecycle(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	npub := mustNpub(t, ownerHex)

	_, err := stack.sites.Register(ctx, &model.RegisterSiteRequest{PublicID: "first", OwnerIdentity: ownerHex})
	require.NoError(t, err)
	_, err = stack.sites.Register(ctx, &model.RegisterSiteRequest{PublicID: "second", Name: strPtr("Second"), OwnerIdentity: npub})
	require.NoError(t, err)
	_, err = stack.sites.Register(ctx, &model.RegisterSiteRequest{PublicID: "theirs", OwnerIdentity: otherHex})
	require.NoError(t, err)

	t.Run("listing matches every encoding of the owner", func(t *testing.T) {
		for _, query := range []string{ownerHex, npub} {
			sites, err := stack.sites.ListByOwner(ctx, query)
			require.NoError(t, err)
			var ids []string
			for _, s := range sites {
				ids = append(ids, s.PublicID)
			}
			assert.ElementsMatch(t, []string{"first", "second"}, ids)
		}
	})

	t.Run("re-registration by another owner conflicts", func(t *testing.T) {
		_, err := stack.sites.Register(ctx, &model.RegisterSiteRequest{PublicID: "first", OwnerIdentity: otherHex})
		assert.ErrorIs(t, err, ErrOwnershipConflict)
	})

	t.Run("re-registration keeps the secret token", func(t *testing.T) {
		before, err := stack.store.GetSiteByPublicID(ctx, "second")
		require.NoError(t, err)

		site, err := stack.sites.Register(ctx, &model.RegisterSiteRequest{PublicID: "second", Name: strPtr("Renamed"), OwnerIdentity: ownerHex})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", *site.Name)
		assert.Equal(t, before.SecretToken, site.SecretToken)
	})

	t.Run("update by owner refreshes cache", func(t *testing.T) {
		_, err := stack.sites.Update(ctx, "first", npub, &model.UpdateSiteRequest{Name: strPtr("First")})
		require.NoError(t, err)

		cached, err := stack.sites.Resolve(ctx, "first")
		require.NoError(t, err)
		require.NotNil(t, cached.Name)
		assert.Equal(t, "First", *cached.Name)
	})

	t.Run("delete removes history", func(t *testing.T) {
		_, err := stack.visits.Record(ctx, "first", &model.RecordVisitRequest{})
		require.NoError(t, err)

		_, err = stack.sites.Delete(ctx, "first", otherHex)
		assert.ErrorIs(t, err, ErrAuthorizationFailed)

		resp, err := stack.sites.Delete(ctx, "first", ownerHex)
		require.NoError(t, err)
		assert.True(t, resp.Deleted)

		_, err = stack.sites.Resolve(ctx, "first")
		assert.ErrorIs(t, err, ErrSiteNotFound)
		assert.False(t, stack.redis.Exists(repository.SiteKeyPrefix+"first"))

		var visits int64
		require.NoError(t, stack.store.GetDB().Model(&model.Visit{}).Count(&visits).Error)
		assert.Zero(t, visits)
	})
}

func TestIntegration_ConcurrentClaimOfUnownedSite(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	_, err := stack.sites.Register(ctx, &model.RegisterSiteRequest{PublicID: "abc123", OwnerIdentity: " "})
	require.NoError(t, err)

	sites := NewSiteService(newReadBarrierStore(stack.store, 2), nil, nil)
	owners := []string{ownerHex, otherHex}
	errs := make([]error, len(owners))

	var wg sync.WaitGroup
	for i, owner := range owners {
		wg.Add(1)
		go func(i int, owner string) {
			defer wg.Done()
			_, errs[i] = sites.Register(ctx, &model.RegisterSiteRequest{PublicID: "abc123", OwnerIdentity: owner})
		}(i, owner)
	}
	wg.Wait()

	var winners []string
	for i, err := range errs {
		if err == nil {
			winners = append(winners, owners[i])
			continue
		}
		assert.ErrorIs(t, err, ErrOwnershipConflict)
	}
	require.Len(t, winners, 1)

	site, err := stack.store.GetSiteByPublicID(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, winners[0], site.OwnerIdentity)
	assert.Equal(t, winners[0], site.OwnerKey)
}

func TestIntegration_StaleCachedSiteAfterDelete(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	_, err := stack.sites.Register(ctx, &model.RegisterSiteRequest{PublicID: "abc123", OwnerIdentity: ownerHex})
	require.NoError(t, err)

	// a resolve that read the row before the delete writes it back afterwards
	stale, err := stack.store.GetSiteByPublicID(ctx, "abc123")
	require.NoError(t, err)
	_, err = stack.sites.Delete(ctx, "abc123", ownerHex)
	require.NoError(t, err)
	require.NoError(t, stack.sites.cache.SaveSite(ctx, stale))

	_, err = stack.visits.Record(ctx, "abc123", &model.RecordVisitRequest{})
	assert.ErrorIs(t, err, ErrSiteNotFound)
	assert.False(t, stack.redis.Exists(repository.SiteKeyPrefix+"abc123"))

	_, err = stack.visits.Record(ctx, "abc123", &model.RecordVisitRequest{})
	assert.ErrorIs(t, err, ErrSiteNotFound)
}
