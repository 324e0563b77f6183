package cache

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/repository"
	"github.com/osse101/BabyBank_Go/internal/repository/memory"
)

var testRedisURL string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testRedisURL, terminate = setupRedis(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupRedis(ctx context.Context) (url string, terminate func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupRedis (likely Docker issue): %v\n", r)
			url, terminate = "", nil
		}
	}()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		fmt.Printf("WARNING: Failed to start redis container: %v\n", err)
		return "", nil
	}
	terminate = func() {
		if err := container.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	url, err = container.ConnectionString(ctx)
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return "", terminate
	}
	return url, terminate
}

func testClient(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testRedisURL == "" {
		t.Skip("Skipping integration test: redis not available")
	}

	opts, err := redis.ParseURL(testRedisURL)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() {
		client.FlushAll(context.Background())
		_ = client.Close()
	})
	return client
}

// countingRepo counts searches that reach the wrapped repository
type countingRepo struct {
	repository.Listing
	searches atomic.Int32
}

func (c *countingRepo) SearchListings(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Listing, error) {
	c.searches.Add(1)
	return c.Listing.SearchListings(ctx, criteria)
}

func TestSearchKey(t *testing.T) {
	t.Parallel()

	a := searchKey(3, domain.SearchCriteria{
		Query:        " Stroller ",
		QuickFilters: []domain.QuickFilter{domain.QuickFilterUrgent, domain.QuickFilterNew},
	})
	b := searchKey(3, domain.SearchCriteria{
		Query:        "stroller",
		QuickFilters: []domain.QuickFilter{domain.QuickFilterNew, domain.QuickFilterUrgent},
		Limit:        domain.DefaultSearchLimit,
	})
	assert.Equal(t, a, b)
	assert.Contains(t, a, searchKeyPrefix+"3:")

	assert.NotEqual(t, a, searchKey(4, domain.SearchCriteria{Query: "stroller",
		QuickFilters: []domain.QuickFilter{domain.QuickFilterNew, domain.QuickFilterUrgent}}))
	assert.NotEqual(t, searchKey(0, domain.SearchCriteria{Category: "toys"}), searchKey(0, domain.SearchCriteria{Query: "toys"}))
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Connect(ctx, "127.0.0.1:1", "")
	assert.Error(t, err)
}

func TestListingRepository_CachesAndInvalidates(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	inner := &countingRepo{Listing: memory.NewListings()}
	repo := NewListingRepository(inner, client, time.Minute)

	first := &domain.Listing{ID: "1", Title: "Bouncer", Category: domain.CategoryToys,
		Status: domain.ListingStatusAvailable, CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, repo.CreateListing(ctx, first))

	criteria := domain.SearchCriteria{Category: domain.CategoryToys}
	got, err := repo.SearchListings(ctx, criteria)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.SearchListings(ctx, criteria)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bouncer", got[0].Title)
	assert.Equal(t, int32(1), inner.searches.Load(), "second search is served from redis")

	second := &domain.Listing{ID: "2", Title: "Rattle", Category: domain.CategoryToys,
		Status: domain.ListingStatusAvailable, CreatedAt: time.Now()}
	require.NoError(t, repo.CreateListing(ctx, second))

	got, err = repo.SearchListings(ctx, criteria)
	require.NoError(t, err)
	assert.Len(t, got, 2, "a write invalidates cached searches")
	assert.Equal(t, int32(2), inner.searches.Load())

	require.NoError(t, repo.UpdateListingStatus(ctx, "2", domain.ListingStatusDonated))
	got, err = repo.SearchListings(ctx, criteria)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestListingRepository_RedisDown(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	inner := &countingRepo{Listing: memory.NewListings()}
	repo := NewListingRepository(inner, client, time.Minute)

	require.NoError(t, repo.CreateListing(ctx, &domain.Listing{ID: "1", Title: "Playmat",
		Status: domain.ListingStatusAvailable, CreatedAt: time.Now()}))

	got, err := repo.SearchListings(ctx, domain.SearchCriteria{})
	require.NoError(t, err, "redis failures fall back to the wrapped repository")
	assert.Len(t, got, 1)
	assert.Equal(t, int32(1), inner.searches.Load())
}
