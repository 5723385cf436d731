package usecase

import "errors"

var (
	// ErrUnrecognizedToken means no product matched the scanned token anywhere
	// (candidates, reference catalog, database). Nothing is written.
	ErrUnrecognizedToken = errors.New("token not recognized by the registry")

	// ErrStorageUnavailable means the database could not complete a call. The
	// user sees the same "verification failed" outcome, but logs tell it apart.
	ErrStorageUnavailable = errors.New("registry storage unavailable")

	// ErrValidation means required registration fields are missing; rejected
	// before any storage call.
	ErrValidation = errors.New("missing required fields")
)
