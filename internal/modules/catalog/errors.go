package catalog

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrForbidden       = errors.New("not the turf owner")
	ErrNotFound        = errors.New("turf not found")
	ErrSlotWindowTaken = errors.New("slot window already exists")
	ErrSlotInUse       = errors.New("slot has upcoming bookings")
)
