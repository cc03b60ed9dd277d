package grouped

import "errors"

var (
	// ErrNoEligibleMedia is returned when a candidate list leaves no member
	// after truncation and mode filtering.
	ErrNoEligibleMedia = errors.New("grouped: no media eligible for grouping")

	// ErrNotGroupable is returned when a candidate reports it cannot be grouped.
	ErrNotGroupable = errors.New("grouped: media cannot be grouped")

	// ErrInvalidStyle is returned by Style.Validate.
	ErrInvalidStyle = errors.New("grouped: invalid style")
)
