package domain

import "time"

// DynamicPricing keeps a demand/weather adjusted price per turf.
type DynamicPricing struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	TurfID        int64     `gorm:"uniqueIndex;not null" json:"turf_id"`
	BasePrice     float64   `gorm:"not null" json:"base_price"`
	DemandFactor  float64   `gorm:"default:1" json:"demand_factor"`
	WeatherFactor float64   `gorm:"default:1" json:"weather_factor"`
	FinalPrice    float64   `json:"final_price"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (DynamicPricing) TableName() string { return "dynamic_pricings" }

// Recalculate refreshes FinalPrice from the base price and factors.
func (p *DynamicPricing) Recalculate() {
	p.FinalPrice = p.BasePrice * p.DemandFactor * p.WeatherFactor
}
