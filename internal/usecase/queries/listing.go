package queries

import (
	"context"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/listing"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrListingNotFound = errs.New("listing not found")

type ListingReadStore interface {
	FindByID(ctx context.Context, listingType listing.Type, id uuid.UUID) (*ListingView, error)
}

type ListingQueries interface {
	GetByID(ctx context.Context, listingType listing.Type, id uuid.UUID) (*ListingView, error)
}

type listingQueriesImpl struct {
	store ListingReadStore
}

func NewListingQueries(store ListingReadStore) ListingQueries {
	return &listingQueriesImpl{store: store}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, listingType listing.Type, id uuid.UUID) (*ListingView, error) {
	view, err := q.store.FindByID(ctx, listingType, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return view, nil
}
