package mfe

import "errors"

var (
	// ErrInvalidPort is returned when an MFE port is not a positive integer.
	ErrInvalidPort = errors.New("mfe port must be a positive integer")
	// ErrPortConflict is returned when two MFEs claim the same port.
	ErrPortConflict = errors.New("mfe port already claimed by another application")
)
