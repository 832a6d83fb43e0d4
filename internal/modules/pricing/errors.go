package pricing

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("not the turf owner")
	ErrNotFound   = errors.New("pricing not found")
)
