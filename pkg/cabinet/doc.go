// Package cabinet turns a declarative cabinet configuration into the
// complete set of CNC-ready components for a frameless carcass: panels,
// joinery features, hardware drilling and drawer boxes, all in millimetres.
//
// The entry point is Build, which validates the configuration, derives the
// shared interior geometry once, runs the per-subsystem generators and
// assembles the result. Everything downstream of Validate is pure; the
// only nondeterminism a caller can introduce is the Stamp it passes in.
package cabinet
