package chat

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("not a participant of this conversation")
	ErrNotFound   = errors.New("conversation not found")
)
