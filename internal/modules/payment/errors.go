package payment

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrForbidden    = errors.New("not the booking owner")
	ErrNotFound     = errors.New("booking or payment not found")
	ErrInvalidState = errors.New("booking is not awaiting payment")
	ErrAlreadyPaid  = errors.New("booking is already paid")
	ErrSignature    = errors.New("payment signature verification failed")
	ErrGateway      = errors.New("payment gateway error")
)
