package overrides

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/samber/oops"
)

//go:embed overlay_schema.cue
var overlaySchema []byte

const overlayDefinition = "#Overlay"

// ParseCUEOverlay reads a CUE overlay. The document is checked against the
// embedded #Overlay schema and then decoded exactly like a YAML overlay, so
// both formats accept and reject the same values. filename is used in error
// messages only.
func ParseCUEOverlay(data []byte, filename string) (Overlay, error) {
	if filename == "" {
		filename = "<input>"
	}
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(overlaySchema, cue.Filename("overlay_schema.cue"))
	if schema.Err() != nil {
		return Overlay{}, oops.In("overrides").Wrapf(schema.Err(), "compile overlay schema")
	}
	root := schema.LookupPath(cue.ParsePath(overlayDefinition))
	if root.Err() != nil {
		return Overlay{}, oops.In("overrides").Wrapf(root.Err(), "schema definition %s not found", overlayDefinition)
	}

	user := ctx.CompileBytes(data, cue.Filename(filename))
	if user.Err() != nil {
		return Overlay{}, syntaxError(formatCUEError(user.Err(), filename))
	}
	if err := checkCUELabels(user, filename); err != nil {
		return Overlay{}, err
	}

	unified := root.Unify(user)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Overlay{}, classifyCUEError(err, filename)
	}
	doc, err := unified.MarshalJSON()
	if err != nil {
		return Overlay{}, classifyCUEError(err, filename)
	}
	log.WithField("file", filename).Debug("CUE overlay validated against schema")
	return ParseOverlay(doc)
}

// checkCUELabels reports top-level labels that are not registered fields.
func checkCUELabels(v cue.Value, filename string) error {
	iter, err := v.Fields()
	if err != nil {
		return syntaxError(formatCUEError(err, filename))
	}
	for iter.Next() {
		sel := iter.Selector()
		if !sel.IsString() {
			continue
		}
		name := sel.Unquoted()
		if _, ok := registryByName[name]; !ok {
			return fieldError(name, ErrUnknownField, oops.Errorf("%s: no such override", filename))
		}
	}
	return nil
}

// classifyCUEError attributes a schema violation to the field at the head of
// its path. Violations inside modifier lists are malformed descriptors.
func classifyCUEError(err error, filename string) error {
	formatted := formatCUEError(err, filename)
	for _, e := range cueerrors.Errors(err) {
		path := fieldPath(cueerrors.Path(e))
		if len(path) == 0 {
			continue
		}
		f, ok := registryByName[path[0]]
		if !ok {
			continue
		}
		kind := ErrFieldType
		if f.Kind == KindModifierList {
			kind = ErrMalformedModifier
		}
		return fieldError(f.Name, kind, formatted)
	}
	return syntaxError(formatted)
}

// formatCUEError renders every CUE error as "file: path: message".
func formatCUEError(err error, filename string) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return fmt.Errorf("%s: %w", filename, err)
	}
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		path := formatCUEPath(fieldPath(cueerrors.Path(e)))
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		if path != "" {
			msg = path + ": " + msg
		}
		lines = append(lines, msg)
	}
	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filename, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filename, strings.Join(lines, "\n  "))
}

// fieldPath drops the definition labels CUE puts in front of a path, so
// ["#Overlay", "XP_MULTIPLIER"] becomes ["XP_MULTIPLIER"].
func fieldPath(path []string) []string {
	for len(path) > 0 && strings.HasPrefix(path[0], "#") {
		path = path[1:]
	}
	return path
}

// formatCUEPath turns ["STARTING_MODIFIER", "0", "count"] into
// STARTING_MODIFIER[0].count.
func formatCUEPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteString(".")
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
