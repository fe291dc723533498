// Package config loads diskloop run files.
//
// A run file is HCL. Every attribute is optional; anything left out falls back
// to the command-line flag or its default:
//
//	radial_divisions     = 5
//	concentric_divisions = 15
//	seed                 = 7
//	iterations           = default_iterations * 2
//	frames               = 36
//	cells                = 36
//
// Expressions are evaluated with the variables default_iterations,
// default_frames and default_cells bound to the built-in defaults.
package config
