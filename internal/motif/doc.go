// Package motif generates the concentric orbital motif shown in the
// collapsed career panels.
//
// The package is split in two halves. The scene half is pure: layers are
// derived from their index (GenerateLayers), trails are placed on their
// orbit from a progress value (ComputeSegment), colors are drawn from an
// injected random source (PickTrailColors), and a Motif maps progress to a
// Frame of drawable primitives. The runtime half, Driver, binds a Motif to
// a scroll position or runs a timed transition sweep, and hands each Frame
// to a Surface.
//
// Surfaces live elsewhere (see internal/render); Recorder captures frames
// for offline rendering and tests.
package motif
