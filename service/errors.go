package service

import "errors"

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("payment does not belong to caller")
	ErrNotFound        = errors.New("payment not found")
	ErrAlreadyPaid     = errors.New("payment has already been paid")
	ErrUpstream        = errors.New("payment processor request failed")
	ErrPersistence     = errors.New("payment update could not be committed")
)
