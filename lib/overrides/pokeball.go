package overrides

import (
	"github.com/rogue-tools/overrides/lib/enums"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// PokeballCounts maps each ball kind to a non-negative count. Kinds that are
// not listed count as zero.
type PokeballCounts map[enums.PokeballType]int

// PokeballAllocation replaces the starting ball counts of a new run when
// Active is set.
type PokeballAllocation struct {
	Active    bool           `yaml:"active"`
	Pokeballs PokeballCounts `yaml:"pokeballs"`
}

// Apply returns the counts a run should start with. An inactive allocation
// returns base untouched whatever its Pokeballs hold; an active one replaces
// every kind.
func (p PokeballAllocation) Apply(base PokeballCounts) PokeballCounts {
	if !p.Active {
		return base
	}
	out := make(PokeballCounts, len(enums.PokeballTypes))
	for _, kind := range enums.PokeballTypes {
		out[kind] = p.Pokeballs[kind]
	}
	return out
}

func (p PokeballAllocation) clone() PokeballAllocation {
	return PokeballAllocation{Active: p.Active, Pokeballs: cloneMap(p.Pokeballs)}
}

func (p PokeballAllocation) validate() error {
	for kind, count := range p.Pokeballs {
		if !kind.Valid() {
			return oops.Errorf("unknown pokeball type %q", kind)
		}
		if count < 0 {
			return oops.Errorf("%s count must not be negative, got %d", kind, count)
		}
	}
	return nil
}

func (p *PokeballAllocation) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return oops.Errorf("line %d: expected a mapping with active and pokeballs", n.Line)
	}
	if err := checkKeys(n, "active", "pokeballs"); err != nil {
		return err
	}
	var out PokeballAllocation
	for i := 0; i < len(n.Content); i += 2 {
		key, value := n.Content[i].Value, n.Content[i+1]
		switch key {
		case "active":
			if err := decodeScalar(value, &out.Active); err != nil {
				return err
			}
		case "pokeballs":
			if isNull(value) {
				continue
			}
			if value.Kind != yaml.MappingNode {
				return oops.Errorf("line %d: pokeballs must be a mapping", value.Line)
			}
			counts := make(PokeballCounts, len(value.Content)/2)
			for j := 0; j < len(value.Content); j += 2 {
				var kind enums.PokeballType
				if err := value.Content[j].Decode(&kind); err != nil {
					return err
				}
				if _, dup := counts[kind]; dup {
					return oops.Errorf("line %d: %s listed twice", value.Content[j].Line, kind)
				}
				var count int
				if err := decodeScalar(value.Content[j+1], &count); err != nil {
					return err
				}
				counts[kind] = count
			}
			out.Pokeballs = counts
		}
	}
	*p = out.clone()
	return nil
}

// FormOverrides sets the form index of listed species.
type FormOverrides map[enums.Species]int

func (f FormOverrides) validate() error {
	for species, form := range f {
		if species == "" {
			return oops.Errorf("species must not be empty")
		}
		if form < 0 {
			return oops.Errorf("%s form index must not be negative, got %d", species, form)
		}
	}
	return nil
}

func (f *FormOverrides) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return oops.Errorf("line %d: expected a mapping of species to form index", n.Line)
	}
	out := make(FormOverrides, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		var species enums.Species
		if err := n.Content[i].Decode(&species); err != nil {
			return err
		}
		if _, dup := out[species]; dup {
			return oops.Errorf("line %d: %s listed twice", n.Content[i].Line, species)
		}
		var form int
		if err := decodeScalar(n.Content[i+1], &form); err != nil {
			return err
		}
		out[species] = form
	}
	*f = out
	return nil
}
