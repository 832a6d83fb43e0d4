package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrForbidden         = errors.New("not allowed to act on this booking")
	ErrNotFound          = errors.New("booking not found")
	ErrSlotInactive      = errors.New("slot is not active")
	ErrSlotMismatch      = errors.New("slot does not belong to turf")
	ErrPastDate          = errors.New("booking date is in the past")
	ErrSlotTaken         = errors.New("slot already has a confirmed booking for that date")
	ErrInvalidTransition = errors.New("booking is not in the required state")
)
