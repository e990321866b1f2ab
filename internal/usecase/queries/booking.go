package queries

import (
	"context"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/booking"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrInvalidStatusFilter = errs.New("invalid status filter")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindPage(ctx context.Context, status *string, limit, offset int32) ([]*BookingListItem, int64, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter ListFilter, page, pageSize int) (*BookingPage, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter ListFilter, page, pageSize int) (*BookingPage, error) {
	if filter.Status != nil && !booking.Status(*filter.Status).IsValid() {
		return nil, ErrInvalidStatusFilter
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	offset := (page - 1) * pageSize
	items, total, err := q.store.FindPage(ctx, filter.Status, int32(pageSize), int32(offset))
	if err != nil {
		return nil, err
	}

	return &BookingPage{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
