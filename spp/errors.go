package spp

import "errors"

var (
	// ErrSortKey indicates an unrecognized sort key.
	ErrSortKey = errors.New("spp: sorting must be width or length")
	// ErrSheetSize indicates a non-positive sheet width or length.
	ErrSheetSize = errors.New("spp: sheet width and length must be positive")
	// ErrStrain indicates a non-positive strain factor.
	ErrStrain = errors.New("spp: strain must be positive")
	// ErrPartSize indicates a part with a non-positive dimension.
	ErrPartSize = errors.New("spp: part dimensions must be positive")
)
