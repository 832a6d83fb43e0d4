package feedback

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
	pkgvalidator "github.com/ijas1024/spoto-turf-booker-backend/internal/pkg/validator"
)

type Repository interface {
	Create(ctx context.Context, f *domain.Feedback) error
	Exists(ctx context.Context, userID, turfID int64) (bool, error)
	ListByTurf(ctx context.Context, turfID int64) ([]domain.Feedback, error)
	AverageRating(ctx context.Context, turfID int64) (float64, int64, error)
}

type TurfReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
}

// BookingReader gates feedback on having actually played there.
type BookingReader interface {
	HasPaidConfirmedBooking(ctx context.Context, userID, turfID int64) (bool, error)
}

type CreateRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type Summary struct {
	TurfID      int64             `json:"turf_id"`
	Rating      float64           `json:"rating"`
	RatingCount int64             `json:"rating_count"`
	Feedbacks   []domain.Feedback `json:"feedbacks"`
}

type Service struct {
	repo     Repository
	turfs    TurfReader
	bookings BookingReader
}

func NewService(repo Repository, turfs TurfReader, bookings BookingReader) *Service {
	return &Service{repo: repo, turfs: turfs, bookings: bookings}
}

// Create accepts one rating per user per turf, and only from users who
// completed a paid, confirmed booking there.
func (s *Service) Create(ctx context.Context, userID, turfID int64, req CreateRequest) (*domain.Feedback, error) {
	if _, err := s.turfs.GetByID(ctx, turfID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	eligible, err := s.bookings.HasPaidConfirmedBooking(ctx, userID, turfID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrNotEligible
	}

	exists, err := s.repo.Exists(ctx, userID, turfID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRated
	}

	f := &domain.Feedback{
		UserID:  userID,
		TurfID:  turfID,
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	}
	if errs := pkgvalidator.Validate(f); errs != nil {
		return nil, ErrValidation
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) TurfSummary(ctx context.Context, turfID int64) (*Summary, error) {
	if _, err := s.turfs.GetByID(ctx, turfID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := s.repo.ListByTurf(ctx, turfID)
	if err != nil {
		return nil, err
	}
	avg, cnt, err := s.repo.AverageRating(ctx, turfID)
	if err != nil {
		return nil, err
	}
	return &Summary{
		TurfID:      turfID,
		Rating:      avg,
		RatingCount: cnt,
		Feedbacks:   rows,
	}, nil
}
