// Package cache adds a Redis-backed result cache in front of a listing repository.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/logger"
	"github.com/osse101/BabyBank_Go/internal/repository"
)

// Connect creates a Redis client and verifies the connection with a ping
func Connect(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	slog.Default().Info(LogMsgRedisConnected, "addr", addr)
	return client, nil
}

// ListingRepository caches search results of the wrapped repository.
// Writes bump a generation counter so stale result sets are never served.
// Redis failures degrade to uncached reads.
type ListingRepository struct {
	repository.Listing
	client redis.Cmdable
	ttl    time.Duration
}

// NewListingRepository wraps inner with a search cache
func NewListingRepository(inner repository.Listing, client redis.Cmdable, ttl time.Duration) *ListingRepository {
	if ttl <= 0 {
		ttl = DefaultSearchTTL
	}
	return &ListingRepository{Listing: inner, client: client, ttl: ttl}
}

// CreateListing stores the listing and invalidates cached searches
func (r *ListingRepository) CreateListing(ctx context.Context, listing *domain.Listing) error {
	if err := r.Listing.CreateListing(ctx, listing); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// UpdateListingStatus updates the listing and invalidates cached searches
func (r *ListingRepository) UpdateListingStatus(ctx context.Context, id string, status domain.ListingStatus) error {
	if err := r.Listing.UpdateListingStatus(ctx, id, status); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// SearchListings serves from the cache when possible
func (r *ListingRepository) SearchListings(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Listing, error) {
	log := logger.FromContext(ctx)

	gen, err := r.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Warn(LogMsgCacheGetFailed, "error", err)
		return r.Listing.SearchListings(ctx, criteria)
	}
	key := searchKey(gen, criteria)

	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []domain.Listing
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
			return cached, nil
		}
	case !errors.Is(err, redis.Nil):
		log.Warn(LogMsgCacheGetFailed, "key", key, "error", err)
	}

	results, err := r.Listing.SearchListings(ctx, criteria)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(results); err == nil {
		if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
			log.Warn(LogMsgCacheSetFailed, "key", key, "error", err)
		}
	}
	return results, nil
}

func (r *ListingRepository) invalidate(ctx context.Context) {
	if err := r.client.Incr(ctx, generationKey).Err(); err != nil {
		logger.FromContext(ctx).Warn(LogMsgCacheInvalidateErr, "error", err)
	}
}

// searchKey is stable for equivalent criteria: quick filter order and query case do not matter
func searchKey(generation int64, c domain.SearchCriteria) string {
	filters := make([]string, 0, len(c.QuickFilters))
	for _, qf := range c.QuickFilters {
		filters = append(filters, string(qf))
	}
	sort.Strings(filters)

	raw := strings.Join([]string{
		strings.ToLower(strings.TrimSpace(c.Query)),
		c.Category,
		strings.Join(filters, ","),
		fmt.Sprint(c.EffectiveLimit()),
	}, "\x00")
	sum := sha256.Sum256([]byte(raw))

	return fmt.Sprintf("%s%d:%s", searchKeyPrefix, generation, hex.EncodeToString(sum[:]))
}
