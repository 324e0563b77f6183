package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

const listingColumns = `listing_id::text, COALESCE(donor_id::text, ''), title, description, category, condition,
	age_group, size, brand, images, status, urgency, donor_rating, created_at, updated_at`

// ListingRepository implements repository.Listing for PostgreSQL
type ListingRepository struct {
	db  *pgxpool.Pool
	now func() time.Time
}

// NewListingRepository creates a new ListingRepository
func NewListingRepository(db *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{db: db, now: time.Now}
}

// CreateListing inserts a listing
func (r *ListingRepository) CreateListing(ctx context.Context, listing *domain.Listing) error {
	if listing == nil || listing.ID == "" {
		return fmt.Errorf("%w: listing id is required", domain.ErrInvalidInput)
	}

	images := listing.Images
	if images == nil {
		images = []string{}
	}

	query := `
		INSERT INTO listings (listing_id, donor_id, title, description, category, condition,
			age_group, size, brand, images, status, urgency, donor_rating, created_at, updated_at)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.Exec(ctx, query,
		listing.ID, listing.DonorID, listing.Title, listing.Description, listing.Category, listing.Condition,
		listing.AgeGroup, listing.Size, listing.Brand, images, string(listing.Status), string(listing.Urgency),
		listing.DonorRating, listing.CreatedAt, listing.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: duplicate listing id %s", domain.ErrInvalidInput, listing.ID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertListing, err)
	}
	return nil
}

// GetListingByID returns the listing or domain.ErrListingNotFound
func (r *ListingRepository) GetListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE listing_id::text = $1`

	l, err := scanListing(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrListingNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetListing, err)
	}
	return &l, nil
}

// UpdateListingStatus changes a listing's availability
func (r *ListingRepository) UpdateListingStatus(ctx context.Context, id string, status domain.ListingStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE listings SET status = $1, updated_at = NOW() WHERE listing_id::text = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateListing, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrListingNotFound, id)
	}
	return nil
}

// SearchListings returns available listings matching the criteria, newest first
func (r *ListingRepository) SearchListings(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Listing, error) {
	query, args := buildSearchQuery(criteria, r.now())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSearchListings, err)
	}
	defer rows.Close()

	results := make([]domain.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSearchListings, err)
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSearchListings, err)
	}
	return results, nil
}

// buildSearchQuery assembles the WHERE clause from the criteria
func buildSearchQuery(criteria domain.SearchCriteria, now time.Time) (string, []any) {
	var sb strings.Builder
	args := []any{string(domain.ListingStatusAvailable)}

	sb.WriteString(`SELECT ` + listingColumns + ` FROM listings WHERE status = $1`)

	if criteria.Category != "" {
		args = append(args, criteria.Category)
		fmt.Fprintf(&sb, " AND category = $%d", len(args))
	}
	if criteria.Has(domain.QuickFilterUrgent) {
		args = append(args, string(domain.UrgencyHigh))
		fmt.Fprintf(&sb, " AND urgency = $%d", len(args))
	}
	if criteria.Has(domain.QuickFilterNew) {
		args = append(args, now.Add(-domain.NewListingWindow))
		fmt.Fprintf(&sb, " AND created_at >= $%d", len(args))
	}
	if criteria.Has(domain.QuickFilterHighlyRated) {
		args = append(args, domain.HighlyRatedDonorMinimum)
		fmt.Fprintf(&sb, " AND donor_rating >= $%d", len(args))
	}
	if q := strings.TrimSpace(criteria.Query); q != "" {
		args = append(args, "%"+escapeLike(q)+"%")
		n := len(args)
		fmt.Fprintf(&sb, " AND (title ILIKE $%d OR description ILIKE $%d OR brand ILIKE $%d)", n, n, n)
	}

	args = append(args, criteria.EffectiveLimit())
	fmt.Fprintf(&sb, " ORDER BY created_at DESC, listing_id ASC LIMIT $%d", len(args))

	return sb.String(), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_").Replace(s)
}

func scanListing(row pgx.Row) (domain.Listing, error) {
	var (
		l       domain.Listing
		status  string
		urgency string
	)
	err := row.Scan(&l.ID, &l.DonorID, &l.Title, &l.Description, &l.Category, &l.Condition,
		&l.AgeGroup, &l.Size, &l.Brand, &l.Images, &status, &urgency, &l.DonorRating, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return domain.Listing{}, err
	}
	l.Status = domain.ListingStatus(status)
	l.Urgency = domain.Urgency(urgency)
	return l, nil
}
