package utils

import "errors"

var (
	ErrDuplicateIdentity    = errors.New("email already registered")
	ErrMissingTenantScope   = errors.New("role requires a gym")
	ErrInvalidCoachScope    = errors.New("coach does not belong to this gym")
	ErrScopeViolation       = errors.New("not permitted")
	ErrWeakPassword         = errors.New("password too short")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrUpstreamWriteFailure = errors.New("account partially provisioned")
	ErrNotFound             = errors.New("record not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidSubscription  = errors.New("unknown subscription type")
	ErrDatabaseError        = errors.New("database error")
)
