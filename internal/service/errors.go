package service

import "errors"

var (
	// ErrValidation is returned for malformed input
	ErrValidation = errors.New("validation failed")
	// ErrSiteNotFound is returned when no site has the requested public id
	ErrSiteNotFound = errors.New("site not found")
	// ErrOwnershipConflict is returned when a registration names a different owner
	ErrOwnershipConflict = errors.New("site is owned by a different identity")
	// ErrAuthorizationFailed is returned when the caller does not own the site
	ErrAuthorizationFailed = errors.New("caller is not authorized for this site")
)
