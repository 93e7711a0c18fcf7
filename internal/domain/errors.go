package domain

import "errors"

var (
	ErrMissingCredential  = errors.New("missing_credential")
	ErrInvalidCredential  = errors.New("invalid_credential")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not_found")
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrStorageUnavailable = errors.New("storage_unavailable")
)
