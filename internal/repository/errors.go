package repository

import "errors"

var (
	// ErrSessionNotFound means no session exists for the assessment id.
	ErrSessionNotFound = errors.New("assessment session not found")
	// ErrSessionExpired means the assessment's time limit elapsed before submission.
	ErrSessionExpired = errors.New("assessment session expired")
	// ErrAlreadySubmitted means the open -> submitted transition was already won
	// by another call; the assessment cannot be graded again.
	ErrAlreadySubmitted = errors.New("assessment already submitted")
	// ErrResultNotFound means no persisted result exists for the assessment id.
	ErrResultNotFound = errors.New("assessment result not found")
)
