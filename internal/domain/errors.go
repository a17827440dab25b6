package domain

import "errors"

var (
	// ErrDealNotFound is returned when a deal id does not resolve to a record
	ErrDealNotFound = errors.New("deal not found")

	// ErrProfileNotFound is returned when a company profile cannot be found
	ErrProfileNotFound = errors.New("company profile not found")

	// ErrBuyerNotFound is returned when a buyer cannot be found
	ErrBuyerNotFound = errors.New("buyer not found")

	// ErrNotDealOwner is returned when a seller requests matches for a deal
	// they do not own
	ErrNotDealOwner = errors.New("seller does not own this deal")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
