// Package enums declares the identifier sets the simulation engine hands to
// the overrides layer.
//
// Apart from BattleStyle and PokeballType, which are closed sets owned by the
// overrides layer itself, every type here is an opaque name: the only
// operation the overrides layer performs on it is equality. Catalog
// membership (whether a species or move actually exists) is the engine's
// concern. The constants below are the handful of names the defaults and the
// bundled example overlays refer to; any other non-empty name is accepted.
//
// Identifiers decode from YAML strictly. A value must be a YAML string, so
// `ABILITY: 12` or `MOVESET: [true]` are type errors rather than silently
// becoming "12" and "true".
package enums
