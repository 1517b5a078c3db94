// Package marchingsquares extracts axis-aligned line segments tracing the
// boundary between FREE and non-FREE cells in a row-major grid, using a
// 2-D marching squares sweep over 2×2 cell blocks.
//
// Collinear runs of segments are merged as the sweep proceeds, so a long
// straight wall produces one segment rather than one per grid cell. The
// companion image preprocessor classifies an 8-bit greyscale image into a
// grid suitable for extraction.
package marchingsquares
