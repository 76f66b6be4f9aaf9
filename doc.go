// Package picture provides the geometry, paint, and bitmap primitives
// shared by a 2D display-list recorder. It is deliberately thin: matrices,
// rectangles, paths, and bitmaps expose only the operations a recorder
// needs (value equality, a stable byte serialization, a size hint) and
// leave rasterization, font shaping, and GPU concerns to other packages.
//
// The recorder itself lives in the recording sub-package, which turns a
// stream of calls against these types into a compact binary command
// stream for later linear playback.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/picture"
//		"github.com/gogpu/picture/recording"
//	)
//
//	rec := recording.NewRecorder(100, 100)
//	rec.Save(recording.SaveFlagsMatrixClip)
//	rec.Translate(10, 10)
//	rec.DrawRect(picture.NewRect(0, 0, 50, 50), picture.NewPaint())
//	rec.Restore()
//	pic := rec.Finish()
//
// # Coordinate System
//
// Uses standard computer graphics coordinates: origin (0,0) at top-left,
// X increases right, Y increases down, angles in radians with 0 pointing
// right and increasing clockwise (toward positive Y).
package picture

// Version information.
const (
	// Version is the current version of the library.
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version.
	VersionMajor = 0

	// VersionMinor is the minor version.
	VersionMinor = 1

	// VersionPatch is the patch version.
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier.
	VersionPrerelease = "alpha.1"
)
