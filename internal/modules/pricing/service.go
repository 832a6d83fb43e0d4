package pricing

import (
	"context"

	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type Repository interface {
	GetByTurf(ctx context.Context, turfID int64) (*domain.DynamicPricing, error)
	Upsert(ctx context.Context, p *domain.DynamicPricing) error
}

type TurfReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
}

type UpdateRequest struct {
	DemandFactor  *float64 `json:"demand_factor"`
	WeatherFactor *float64 `json:"weather_factor"`
	BasePrice     *float64 `json:"base_price"`
}

type Service struct {
	repo  Repository
	turfs TurfReader
}

func NewService(repo Repository, turfs TurfReader) *Service {
	return &Service{repo: repo, turfs: turfs}
}

// Get returns the turf's adjusted price, falling back to its plain hourly
// rate when no pricing row exists yet.
func (s *Service) Get(ctx context.Context, turfID int64) (*domain.DynamicPricing, error) {
	turf, err := s.turfs.GetByID(ctx, turfID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p, err := s.repo.GetByTurf(ctx, turfID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			p = &domain.DynamicPricing{
				TurfID:        turfID,
				BasePrice:     turf.PricePerHour,
				DemandFactor:  1,
				WeatherFactor: 1,
			}
			p.Recalculate()
			return p, nil
		}
		return nil, err
	}
	return p, nil
}

// Update lets the owner adjust the factors. Factors are clamped to a sane
// band so a typo cannot multiply the price a hundredfold.
func (s *Service) Update(ctx context.Context, turfID, actorID int64, req UpdateRequest) (*domain.DynamicPricing, error) {
	turf, err := s.turfs.GetByID(ctx, turfID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if turf.OwnerID != actorID {
		return nil, ErrForbidden
	}

	p, err := s.repo.GetByTurf(ctx, turfID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		p = &domain.DynamicPricing{
			TurfID:        turfID,
			BasePrice:     turf.PricePerHour,
			DemandFactor:  1,
			WeatherFactor: 1,
		}
	}

	if req.BasePrice != nil {
		if *req.BasePrice <= 0 {
			return nil, ErrValidation
		}
		p.BasePrice = *req.BasePrice
	}
	if req.DemandFactor != nil {
		if *req.DemandFactor < 0.5 || *req.DemandFactor > 3 {
			return nil, ErrValidation
		}
		p.DemandFactor = *req.DemandFactor
	}
	if req.WeatherFactor != nil {
		if *req.WeatherFactor < 0.5 || *req.WeatherFactor > 3 {
			return nil, ErrValidation
		}
		p.WeatherFactor = *req.WeatherFactor
	}

	p.Recalculate()
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
