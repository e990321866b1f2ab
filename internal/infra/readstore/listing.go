package readstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/listing"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra/db"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/pgconv"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ListingReadStore looks up listing snapshots across the homestay and guide
// stores, with an optional Redis cache in front. Cache failures are swallowed:
// the store stays correct without Redis, just slower.
type ListingReadStore struct {
	db       db.DBTX
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewListingReadStore(dbtx db.DBTX, cache *redis.Client, cacheTTL time.Duration) *ListingReadStore {
	return &ListingReadStore{db: dbtx, cache: cache, cacheTTL: cacheTTL}
}

type cachedSnapshot struct {
	Title             string `json:"title"`
	PricePerNightCent int64  `json:"pricePerNightCents"`
}

func tableFor(listingType listing.Type) string {
	if listingType == listing.TypeGuide {
		return "guides"
	}
	return "homestays"
}

func cacheKey(listingType listing.Type, id uuid.UUID) string {
	return "listing:" + listingType.String() + ":" + id.String()
}

// FindSnapshot satisfies the booking core's best-effort title lookup.
func (r *ListingReadStore) FindSnapshot(ctx context.Context, listingType listing.Type, id uuid.UUID) (*listing.Snapshot, error) {
	if cached := r.fromCache(ctx, listingType, id); cached != nil {
		return &listing.Snapshot{
			ID:                id,
			Type:              listingType,
			Title:             cached.Title,
			PricePerNightCent: cached.PricePerNightCent,
		}, nil
	}

	query := `SELECT title, price_per_night_cents FROM ` + tableFor(listingType) + ` WHERE id = $1`

	var snap listing.Snapshot
	snap.ID = id
	snap.Type = listingType
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.Title, &snap.PricePerNightCent)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing", err)
	}

	r.toCache(ctx, listingType, id, cachedSnapshot{Title: snap.Title, PricePerNightCent: snap.PricePerNightCent})
	return &snap, nil
}

// FindByID serves the read surface for listings.
func (r *ListingReadStore) FindByID(ctx context.Context, listingType listing.Type, id uuid.UUID) (*queries.ListingView, error) {
	query := `SELECT id, title, price_per_night_cents, created_at, updated_at FROM ` + tableFor(listingType) + ` WHERE id = $1`

	var view queries.ListingView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Title, &view.PricePerNightCents, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing", err)
	}
	view.ListingType = listingType.String()

	return &view, nil
}

func (r *ListingReadStore) fromCache(ctx context.Context, listingType listing.Type, id uuid.UUID) *cachedSnapshot {
	if r.cache == nil {
		return nil
	}
	raw, err := r.cache.Get(ctx, cacheKey(listingType, id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.DebugContext(ctx, "listing cache read failed", "error", err.Error())
		}
		return nil
	}
	var cached cachedSnapshot
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil
	}
	return &cached
}

func (r *ListingReadStore) toCache(ctx context.Context, listingType listing.Type, id uuid.UUID, snap cachedSnapshot) {
	if r.cache == nil {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, cacheKey(listingType, id), raw, r.cacheTTL).Err(); err != nil {
		slog.DebugContext(ctx, "listing cache write failed", "error", err.Error())
	}
}
