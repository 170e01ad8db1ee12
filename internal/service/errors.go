package service

import "errors"

var (
	// ErrMissingMachine is returned when a report or log entry names no machine.
	ErrMissingMachine = errors.New("machine id is required")
	// ErrMissingText is returned when tracked content is saved empty.
	ErrMissingText = errors.New("text is required")
	// ErrMissingSlug is returned when a wiki page is saved without a slug.
	ErrMissingSlug = errors.New("slug is required")
	// ErrUnknownKind is returned when a backlink query names an unregistered record kind.
	ErrUnknownKind = errors.New("unknown record kind")
)
