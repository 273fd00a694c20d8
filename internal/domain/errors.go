package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the few failure paths the site has.
var (
	ErrInvalidState    = errors.New("unknown disclosure state")
	ErrInvalidWidgetID = errors.New("invalid widget id")
	ErrUnknownIcon     = errors.New("unknown icon")
	ErrInvalidContent  = errors.New("site content failed validation")
	ErrNotFound        = errors.New("requested resource not found")
)
