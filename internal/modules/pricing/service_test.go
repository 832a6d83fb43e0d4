package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type MockPricingRepository struct {
	mock.Mock
}

func (m *MockPricingRepository) GetByTurf(ctx context.Context, turfID int64) (*domain.DynamicPricing, error) {
	args := m.Called(ctx, turfID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DynamicPricing), args.Error(1)
}

func (m *MockPricingRepository) Upsert(ctx context.Context, p *domain.DynamicPricing) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockTurfReader struct {
	mock.Mock
}

func (m *MockTurfReader) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Turf), args.Error(1)
}

func TestGet_FallsBackToHourlyRate(t *testing.T) {
	repo := new(MockPricingRepository)
	turfs := new(MockTurfReader)

	turfs.On("GetByID", mock.Anything, int64(10)).Return(&domain.Turf{ID: 10, PricePerHour: 1000}, nil)
	repo.On("GetByTurf", mock.Anything, int64(10)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, turfs)

	out, err := svc.Get(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, out.BasePrice)
	assert.Equal(t, 1000.0, out.FinalPrice)
}

func TestUpdate_RecalculatesFinalPrice(t *testing.T) {
	repo := new(MockPricingRepository)
	turfs := new(MockTurfReader)

	turfs.On("GetByID", mock.Anything, int64(10)).Return(&domain.Turf{ID: 10, OwnerID: 50, PricePerHour: 1000}, nil)
	repo.On("GetByTurf", mock.Anything, int64(10)).Return(nil, gorm.ErrRecordNotFound)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.DynamicPricing")).Return(nil)

	svc := NewService(repo, turfs)

	demand, weather := 1.5, 2.0
	out, err := svc.Update(context.Background(), 10, 50, UpdateRequest{DemandFactor: &demand, WeatherFactor: &weather})

	assert.NoError(t, err)
	assert.Equal(t, 3000.0, out.FinalPrice)
}

func TestUpdate_FactorOutOfBand(t *testing.T) {
	repo := new(MockPricingRepository)
	turfs := new(MockTurfReader)

	turfs.On("GetByID", mock.Anything, int64(10)).Return(&domain.Turf{ID: 10, OwnerID: 50, PricePerHour: 1000}, nil)
	repo.On("GetByTurf", mock.Anything, int64(10)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, turfs)

	crazy := 100.0
	_, err := svc.Update(context.Background(), 10, 50, UpdateRequest{DemandFactor: &crazy})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdate_NonOwnerForbidden(t *testing.T) {
	turfs := new(MockTurfReader)
	turfs.On("GetByID", mock.Anything, int64(10)).Return(&domain.Turf{ID: 10, OwnerID: 50}, nil)

	svc := NewService(new(MockPricingRepository), turfs)

	demand := 1.2
	_, err := svc.Update(context.Background(), 10, 51, UpdateRequest{DemandFactor: &demand})
	assert.ErrorIs(t, err, ErrForbidden)
}
