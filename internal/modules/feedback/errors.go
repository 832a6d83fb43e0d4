package feedback

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotEligible  = errors.New("no completed booking on this turf")
	ErrAlreadyRated = errors.New("feedback already submitted")
	ErrNotFound     = errors.New("turf not found")
)
