package dock

import "errors"

var (
	// ErrInvalidRatios is returned when a ratio list is empty or contains a
	// value that is not a finite number of at least MinRatio.
	ErrInvalidRatios = errors.New("invalid ratios")

	// ErrUnknownNode is returned for IDs that were never created or whose node
	// has since been removed.
	ErrUnknownNode = errors.New("unknown node")

	// ErrWrongKind is returned when an operation is applied to a node of the
	// wrong kind, such as setting the ratios of a panel.
	ErrWrongKind = errors.New("wrong node kind")
)
