package tilemap

import (
	"errors"
	"fmt"
)

// Errors returned by map parsing and validation.
var (
	// ErrNoLayers indicates the map defines no layers.
	ErrNoLayers = errors.New("map has no layers")

	// ErrEmptyLayer indicates a layer with no rows or zero-width rows.
	ErrEmptyLayer = errors.New("layer is empty")

	// ErrRaggedGrid indicates rows or layers with mismatched dimensions.
	ErrRaggedGrid = errors.New("grid dimensions do not match")

	// ErrBadKey indicates a tile key that is not a single character.
	ErrBadKey = errors.New("tile key must be a single character")

	// ErrUnknownKey indicates a grid character missing from the tiles table.
	ErrUnknownKey = errors.New("unknown tile key")
)

// KeyError reports an unknown grid key and the cell it was found in.
type KeyError struct {
	Key     rune
	X, Y, Z int
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("unknown tile key %q at layer %d row %d col %d", e.Key, e.Z, e.Y, e.X)
}

// Is implements error matching for KeyError.
func (e *KeyError) Is(target error) bool {
	return target == ErrUnknownKey
}
