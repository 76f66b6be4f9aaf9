package picture

import "errors"

// Sentinel errors surfaced by this package's release-mode (non-fatal)
// error paths. Structural misuse (restore-stack underflow, use-after-
// Finish) is a programming error instead: the recording package panics
// on it directly rather than returning a sentinel.
var (
	// ErrInvalidIndex is returned by a dictionary's by-index lookups when
	// given an index that is zero or was never interned.
	ErrInvalidIndex = errors.New("picture: invalid dictionary index")

	// ErrNotSolid is returned by operations that require a SolidBrush
	// (such as Paint.WithAlpha) when the paint's brush is a shader.
	ErrNotSolid = errors.New("picture: paint brush is not solid")
)
