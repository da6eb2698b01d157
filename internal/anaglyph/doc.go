// Package anaglyph builds a two-colour stereo image from a single RGB
// picture by sampling it from two viewpoints shifted by half the requested
// parallax each and blending the samples through a pair of filter colors.
package anaglyph
