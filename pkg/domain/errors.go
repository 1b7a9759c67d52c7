package domain

import "errors"

// ErrEntriesNotFound is returned when no entry data exists for a requested element.
var ErrEntriesNotFound = errors.New("no entries for element")

// ErrMalformedEntries is returned when entry data cannot be parsed or fails validation.
var ErrMalformedEntries = errors.New("malformed entry data")

// ErrNoEntries is returned when a diagram is requested for an empty entry set.
var ErrNoEntries = errors.New("entry set is empty")

// ErrDegenerateSystem is returned when the entry set cannot form stability regions
// (for example, fewer than two species that contain a non-solvent element).
var ErrDegenerateSystem = errors.New("entry set cannot form stability regions")
