package overrides

import (
	"reflect"

	"github.com/rogue-tools/overrides/lib/util/logger"
)

var log = logger.GetLogger()

// Merge combines defaults with overlay. Every field the overlay sets replaces
// the default wholesale; every other field keeps its default. Lists and
// records are copied, so the result shares no memory with either input.
//
// Merge has no side effects and may be called any number of times. The
// defaults are validated first and fail with ErrInvalidDefault; overlay
// values fail with ErrFieldType or ErrMalformedModifier.
func Merge(defaults Overrides, overlay Overlay) (*Overrides, error) {
	if err := validateDefaults(defaults); err != nil {
		return nil, err
	}
	if err := overlay.Validate(); err != nil {
		log.WithError(err).Debug("Overlay rejected")
		return nil, err
	}

	merged := defaults.Clone()
	for _, f := range registry {
		f.apply(&merged, &overlay)
	}
	log.WithFields(logger.Fields{
		"at":      "Merge",
		"present": overlay.Present(),
	}).Debug("merged overlay onto defaults")
	return &merged, nil
}

// Clone returns a deep copy of c. Empty lists and records come back nil.
func (c Overrides) Clone() Overrides {
	var out Overrides
	for _, f := range registry {
		f.copy(&out, &c)
	}
	return out
}

// Value returns the current value of the field called name.
func (c *Overrides) Value(name string) (any, bool) {
	f, ok := registryByName[name]
	if !ok {
		return nil, false
	}
	return f.value(c), true
}

// Diff returns the names of the fields whose value differs between c and
// base, in registry order.
func (c *Overrides) Diff(base *Overrides) []string {
	var names []string
	for _, f := range registry {
		if !reflect.DeepEqual(f.value(c), f.value(base)) {
			names = append(names, f.Name)
		}
	}
	return names
}

// Active returns the names of the fields that no longer hold their default.
func (c *Overrides) Active() []string {
	defaults := Defaults()
	return c.Diff(&defaults)
}
