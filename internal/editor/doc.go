// Package editor resolves document resources against logical editor
// handles and applies navigation to the matching surface.
//
// A handle is either one editable surface or an original/modified
// comparison pair; Dispatch is the single polymorphism point over the two
// shapes. Resolution matches resources by exact string equality and, on a
// hit, applies a range selection or cursor placement plus a centering
// reveal.
package editor
