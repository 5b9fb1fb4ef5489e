// Package domain defines domain-level errors for the dashboard feature.
package domain

import "errors"

// Selection errors returned when query input falls outside the fixed enumerations.
var (
	// ErrUnknownTicker indicates that the requested ticker is not one of the supported symbols.
	ErrUnknownTicker = errors.New("unknown ticker")

	// ErrUnknownRange indicates that the requested date range is not one of the supported range codes.
	ErrUnknownRange = errors.New("unknown date range")
)
