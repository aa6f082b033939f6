// Package geometry holds the pure computations behind each gizmo exercise:
// basis projection, mirror reflection, triangle and polygon areas, and
// parametric curve sampling.
//
// Nothing here draws. Every function takes already-resolved points and
// vectors and returns values that a renderer can turn into lines, spheres,
// arcs and labels. All functions are free of shared state and safe for
// concurrent use.
package geometry
