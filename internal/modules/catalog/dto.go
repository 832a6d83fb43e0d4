package catalog

import (
	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/pkg/utils"
)

type CreateTurfRequest struct {
	Name         string   `json:"name" binding:"required"`
	Location     string   `json:"location"`
	Address      string   `json:"address"`
	PricePerHour float64  `json:"price_per_hour" binding:"required,gt=0"`
	Amenities    []string `json:"amenities"`
}

type UpdateTurfRequest struct {
	Name         *string   `json:"name"`
	Location     *string   `json:"location"`
	Address      *string   `json:"address"`
	PricePerHour *float64  `json:"price_per_hour"`
	Amenities    *[]string `json:"amenities"`
}

type TurfPayload struct {
	ID           int64    `json:"id"`
	OwnerID      int64    `json:"owner_id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Address      string   `json:"address"`
	PricePerHour float64  `json:"price_per_hour"`
	Amenities    []string `json:"amenities"`
	Rating       float64  `json:"rating"`
	RatingCount  int64    `json:"rating_count"`
}

type CreateSlotRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Label     string `json:"label"`
}

type AvailabilitySlot struct {
	SlotID    int64  `json:"slot_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Label     string `json:"label,omitempty"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	TurfID int64              `json:"turf_id"`
	Date   string             `json:"date"`
	Slots  []AvailabilitySlot `json:"slots"`
}

func toTurfPayload(t *domain.Turf, rating float64, ratingCount int64) TurfPayload {
	return TurfPayload{
		ID:           t.ID,
		OwnerID:      t.OwnerID,
		Name:         t.Name,
		Location:     t.Location,
		Address:      t.Address,
		PricePerHour: t.PricePerHour,
		Amenities:    utils.StringToAmenities(t.Amenities),
		Rating:       rating,
		RatingCount:  ratingCount,
	}
}
