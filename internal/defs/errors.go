// internal/defs/errors.go
package defs

import "errors"

var (
	ErrEmptyTable      = errors.New("terrain table has no thresholds")
	ErrThresholdOrder  = errors.New("thresholds must be strictly increasing and positive")
	ErrMissingTerminal = errors.New("last threshold must be 1.0")
	ErrUnknownBiome    = errors.New("threshold references a biome without a definition")
	ErrDuplicateBiome  = errors.New("biome defined more than once")
	ErrInvalidHeight   = errors.New("biome height must not be negative")
	ErrInvalidColor    = errors.New("invalid biome color")
)
