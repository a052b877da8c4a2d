package booking

import "errors"

// Expected, caller-facing outcomes. None of them are retried.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrInvalidSlot     = errors.New("slot not offered by teacher")
	ErrSlotTaken       = errors.New("slot already booked")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrAccountExists   = errors.New("account already exists")
)
