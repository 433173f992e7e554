// Package overrides forces runtime conditions of the simulation for testing
// and debugging.
//
// # Two Layers
//
// Defaults returns every overridable parameter at its production value. An
// Overlay names a sparse subset of those parameters; Merge combines the two
// into one Overrides. A field the overlay sets replaces the default
// wholesale, including lists and records. There is no deep merge.
//
// With an empty overlay the simulation behaves exactly as in production.
//
// # Overlay Sources
//
// Overlays are built in Go with Set, or read from files:
//   - ParseOverlay reads YAML (and JSON) documents keyed by field name
//   - ParseCUEOverlay checks a CUE document against an embedded schema first
//   - LoadOverlay picks one of the above by file extension
//
// Local is the overlay authored in source. Fields lists every registered
// field with its group, kind, phase and default.
//
// # Lifecycle
//
// Init performs the process-wide merge exactly once, before the engine reads
// anything. The result is read-only and is shared without locks. Errors
// (ErrUnknownField, ErrFieldType, ErrMalformedModifier, ErrInvalidDefault,
// ErrOverlaySyntax) are reported before any consumer reads the
// configuration; there is no partial mode.
package overrides
