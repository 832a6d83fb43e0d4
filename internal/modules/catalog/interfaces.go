package catalog

import (
	"context"
	"time"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type TurfRepository interface {
	Create(ctx context.Context, t *domain.Turf) error
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
	List(ctx context.Context) ([]domain.Turf, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Turf, error)
	Update(ctx context.Context, t *domain.Turf) error
	Delete(ctx context.Context, id int64) error
}

type SlotRepository interface {
	Create(ctx context.Context, s *domain.TurfSlot) error
	GetByID(ctx context.Context, id int64) (*domain.TurfSlot, error)
	ListByTurf(ctx context.Context, turfID int64, activeOnly bool) ([]domain.TurfSlot, error)
	WindowExists(ctx context.Context, turfID int64, start, end string) (bool, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// BookingReader exposes the booking facts availability and slot deletion
// depend on.
type BookingReader interface {
	HasConfirmedConflict(ctx context.Context, turfID int64, slotID *int64, date time.Time, excludeID int64) (bool, error)
	SlotHasFutureBookings(ctx context.Context, slotID int64, today time.Time) (bool, error)
}

type RatingReader interface {
	AverageRating(ctx context.Context, turfID int64) (float64, int64, error)
}
