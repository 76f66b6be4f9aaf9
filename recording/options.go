package recording

// options holds a Recorder's construction-time settings.
type options struct {
	disableOptimizations bool
	usePathBoundsForClip bool
}

// Option configures a Recorder at construction time.
type Option func(*options)

// DisableRecordOptimizations turns off the restore-time peephole
// optimizer (empty-save collapse and save-layer/bitmap-draw folding).
// Useful for tests and tools that want to inspect the raw, unoptimized
// command stream a sequence of calls produces.
func DisableRecordOptimizations() Option {
	return func(o *options) { o.disableOptimizations = true }
}

// UsePathBoundsForClip directs ClipPath to record the path's bounding
// box as its own coarse clip hint alongside the path, rather than
// leaving bounds computation entirely to whatever plays the stream back.
func UsePathBoundsForClip() Option {
	return func(o *options) { o.usePathBoundsForClip = true }
}
