package catalog

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/pkg/utils"
	pkgvalidator "github.com/ijas1024/spoto-turf-booker-backend/internal/pkg/validator"
)

type Service struct {
	turfs    TurfRepository
	slots    SlotRepository
	bookings BookingReader
	ratings  RatingReader
}

func NewService(turfs TurfRepository, slots SlotRepository, bookings BookingReader, ratings RatingReader) *Service {
	return &Service{turfs: turfs, slots: slots, bookings: bookings, ratings: ratings}
}

func (s *Service) CreateTurf(ctx context.Context, ownerID int64, req CreateTurfRequest) (*TurfPayload, error) {
	t := &domain.Turf{
		OwnerID:      ownerID,
		Name:         req.Name,
		Location:     req.Location,
		Address:      req.Address,
		PricePerHour: req.PricePerHour,
		Amenities:    utils.AmenitiesToString(req.Amenities),
	}
	if errs := pkgvalidator.Validate(t); errs != nil {
		return nil, ErrValidation
	}
	if err := s.turfs.Create(ctx, t); err != nil {
		return nil, err
	}
	out := toTurfPayload(t, 0, 0)
	return &out, nil
}

func (s *Service) ListTurfs(ctx context.Context) ([]TurfPayload, error) {
	rows, err := s.turfs.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TurfPayload, 0, len(rows))
	for i := range rows {
		rating, cnt, err := s.ratings.AverageRating(ctx, rows[i].ID)
		if err != nil {
			rating, cnt = 0, 0
		}
		out = append(out, toTurfPayload(&rows[i], rating, cnt))
	}
	return out, nil
}

func (s *Service) ListOwnerTurfs(ctx context.Context, ownerID int64) ([]TurfPayload, error) {
	rows, err := s.turfs.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]TurfPayload, 0, len(rows))
	for i := range rows {
		rating, cnt, err := s.ratings.AverageRating(ctx, rows[i].ID)
		if err != nil {
			rating, cnt = 0, 0
		}
		out = append(out, toTurfPayload(&rows[i], rating, cnt))
	}
	return out, nil
}

func (s *Service) GetTurf(ctx context.Context, id int64) (*TurfPayload, error) {
	t, err := s.turfs.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rating, cnt, err := s.ratings.AverageRating(ctx, t.ID)
	if err != nil {
		rating, cnt = 0, 0
	}
	out := toTurfPayload(t, rating, cnt)
	return &out, nil
}

func (s *Service) UpdateTurf(ctx context.Context, id, actorID int64, req UpdateTurfRequest) (*TurfPayload, error) {
	t, err := s.turfs.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if t.OwnerID != actorID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Location != nil {
		t.Location = *req.Location
	}
	if req.Address != nil {
		t.Address = *req.Address
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			return nil, ErrValidation
		}
		t.PricePerHour = *req.PricePerHour
	}
	if req.Amenities != nil {
		t.Amenities = utils.AmenitiesToString(*req.Amenities)
	}

	if err := s.turfs.Update(ctx, t); err != nil {
		return nil, err
	}
	rating, cnt, _ := s.ratings.AverageRating(ctx, t.ID)
	out := toTurfPayload(t, rating, cnt)
	return &out, nil
}

func (s *Service) DeleteTurf(ctx context.Context, id, actorID int64) error {
	t, err := s.turfs.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if t.OwnerID != actorID {
		return ErrForbidden
	}
	return s.turfs.Delete(ctx, id)
}

// AddSlot registers a recurring daily window on the turf. Windows must be
// well-formed "HH:MM" pairs with end after start and no exact duplicate.
func (s *Service) AddSlot(ctx context.Context, turfID, actorID int64, req CreateSlotRequest) (*domain.TurfSlot, error) {
	t, err := s.turfs.GetByID(ctx, turfID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if t.OwnerID != actorID {
		return nil, ErrForbidden
	}

	start, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		return nil, ErrValidation
	}
	if !end.After(start) {
		return nil, ErrValidation
	}

	exists, err := s.slots.WindowExists(ctx, turfID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSlotWindowTaken
	}

	slot := &domain.TurfSlot{
		TurfID:    turfID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Label:     req.Label,
		IsActive:  true,
	}
	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *Service) ListSlots(ctx context.Context, turfID int64, activeOnly bool) ([]domain.TurfSlot, error) {
	if _, err := s.turfs.GetByID(ctx, turfID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.slots.ListByTurf(ctx, turfID, activeOnly)
}

func (s *Service) SetSlotActive(ctx context.Context, slotID, actorID int64, active bool) error {
	slot, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	t, err := s.turfs.GetByID(ctx, slot.TurfID)
	if err != nil {
		return err
	}
	if t.OwnerID != actorID {
		return ErrForbidden
	}
	return s.slots.SetActive(ctx, slotID, active)
}

// DeleteSlot removes a window unless a non-cancelled booking still points at
// it on a current or future date.
func (s *Service) DeleteSlot(ctx context.Context, slotID, actorID int64) error {
	slot, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	t, err := s.turfs.GetByID(ctx, slot.TurfID)
	if err != nil {
		return err
	}
	if t.OwnerID != actorID {
		return ErrForbidden
	}

	inUse, err := s.bookings.SlotHasFutureBookings(ctx, slotID, time.Now())
	if err != nil {
		return err
	}
	if inUse {
		return ErrSlotInUse
	}
	return s.slots.Delete(ctx, slotID)
}

// GetAvailability reports, for each active slot of the turf on the given
// date, whether a confirmed booking already holds it. Bookings still pending
// or awaiting payment do not mark a slot unavailable.
func (s *Service) GetAvailability(ctx context.Context, turfID int64, dateStr string) (*AvailabilityResponse, error) {
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrValidation
	}

	if _, err := s.turfs.GetByID(ctx, turfID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	slots, err := s.slots.ListByTurf(ctx, turfID, true)
	if err != nil {
		return nil, err
	}

	out := &AvailabilityResponse{
		TurfID: turfID,
		Date:   dateStr,
		Slots:  make([]AvailabilitySlot, 0, len(slots)),
	}
	for _, slot := range slots {
		id := slot.ID
		taken, err := s.bookings.HasConfirmedConflict(ctx, turfID, &id, day, 0)
		if err != nil {
			return nil, err
		}
		out.Slots = append(out.Slots, AvailabilitySlot{
			SlotID:    slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Label:     slot.Label,
			Available: !taken,
		})
	}
	return out, nil
}
