package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrSessionNotFound        = errors.New("planner session not found")
	ErrInvalidTransition      = errors.New("invalid planner transition")
	ErrSubmissionInProgress   = errors.New("submission already in progress")
	ErrNoItinerary            = errors.New("no itinerary generated yet")
	ErrInvalidShareLink       = errors.New("invalid share link")
	ErrShareLinkExpired       = errors.New("share link expired")
	ErrClipboardUnavailable   = errors.New("clipboard unavailable")
	ErrDownloadNotImplemented = errors.New("download not implemented")
	ErrDatabaseError          = errors.New("database error")
)
