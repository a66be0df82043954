package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("conflicting state")
	ErrUnauthorized = errors.New("unauthorized")
)
