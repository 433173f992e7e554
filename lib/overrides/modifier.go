package overrides

import (
	"github.com/rogue-tools/overrides/lib/enums"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// Modifier families whose descriptors carry a typed sub-type.
const (
	ModifierBaseStatBooster   = "BASE_STAT_BOOSTER"
	ModifierEvolutionItem     = "EVOLUTION_ITEM"
	ModifierRareEvolutionItem = "RARE_EVOLUTION_ITEM"
	ModifierBerry             = "BERRY"
)

// ModifierOverride is a request to grant a named modifier or held item.
// The name is resolved by the engine's modifier catalog; this package only
// checks that the descriptor is well formed.
//
// The set of implementations is closed: PlainModifier, StatBooster,
// EvolutionItemModifier, BerryModifier and TypedModifier. A Count of zero
// means "not given" and grants one.
type ModifierOverride interface {
	// ModifierName is the catalog key, e.g. "EXP_SHARE".
	ModifierName() string
	// SubType selects a member of a generated family, or "" to let the
	// engine pick one with its own weighted or random policy.
	SubType() string
	// Quantity is the number of stacks to grant, at least 1.
	Quantity() int

	validate() error
}

// PlainModifier grants a modifier with no sub-type.
type PlainModifier struct {
	Name  string
	Count int
}

// StatBooster grants a BASE_STAT_BOOSTER for a specific stat.
type StatBooster struct {
	Stat  enums.Stat
	Count int
}

// EvolutionItemModifier grants a specific (rare) evolution item.
type EvolutionItemModifier struct {
	Rare  bool
	Item  enums.EvolutionItem
	Count int
}

// BerryModifier grants a specific berry.
type BerryModifier struct {
	Berry enums.BerryType
	Count int
}

// TypedModifier grants a member of any other generated family, selected by
// Type.
type TypedModifier struct {
	Name  string
	Type  string
	Count int
}

func quantity(count int) int {
	if count == 0 {
		return 1
	}
	return count
}

func checkCount(name string, count int) error {
	if count < 0 {
		return malformed("%s: count must be positive, got %d", name, count)
	}
	return nil
}

func (m PlainModifier) ModifierName() string { return m.Name }
func (m PlainModifier) SubType() string      { return "" }
func (m PlainModifier) Quantity() int        { return quantity(m.Count) }

func (m PlainModifier) validate() error {
	if m.Name == "" {
		return malformed("modifier name is required")
	}
	return checkCount(m.Name, m.Count)
}

func (m StatBooster) ModifierName() string { return ModifierBaseStatBooster }
func (m StatBooster) SubType() string      { return string(m.Stat) }
func (m StatBooster) Quantity() int        { return quantity(m.Count) }

func (m StatBooster) validate() error {
	if m.Stat == "" {
		return malformed("%s: stat is required", ModifierBaseStatBooster)
	}
	return checkCount(ModifierBaseStatBooster, m.Count)
}

func (m EvolutionItemModifier) ModifierName() string {
	if m.Rare {
		return ModifierRareEvolutionItem
	}
	return ModifierEvolutionItem
}

func (m EvolutionItemModifier) SubType() string { return string(m.Item) }
func (m EvolutionItemModifier) Quantity() int   { return quantity(m.Count) }

func (m EvolutionItemModifier) validate() error {
	if m.Item == "" {
		return malformed("%s: evolution item is required", m.ModifierName())
	}
	return checkCount(m.ModifierName(), m.Count)
}

func (m BerryModifier) ModifierName() string { return ModifierBerry }
func (m BerryModifier) SubType() string      { return string(m.Berry) }
func (m BerryModifier) Quantity() int        { return quantity(m.Count) }

func (m BerryModifier) validate() error {
	if m.Berry == "" {
		return malformed("%s: berry type is required", ModifierBerry)
	}
	return checkCount(ModifierBerry, m.Count)
}

func (m TypedModifier) ModifierName() string { return m.Name }
func (m TypedModifier) SubType() string      { return m.Type }
func (m TypedModifier) Quantity() int        { return quantity(m.Count) }

func (m TypedModifier) validate() error {
	if m.Name == "" {
		return malformed("modifier name is required")
	}
	switch m.Name {
	case ModifierBaseStatBooster, ModifierEvolutionItem, ModifierRareEvolutionItem, ModifierBerry:
		return malformed("%s: use the dedicated descriptor for this family", m.Name)
	}
	if m.Type == "" {
		return malformed("%s: type is required", m.Name)
	}
	return checkCount(m.Name, m.Count)
}

// newModifierOverride picks the variant for a file-authored descriptor.
// A family given without a type becomes a PlainModifier so the engine falls
// back to its own selection.
func newModifierOverride(name, subType string, count int) ModifierOverride {
	if subType == "" {
		return PlainModifier{Name: name, Count: count}
	}
	switch name {
	case ModifierBaseStatBooster:
		return StatBooster{Stat: enums.Stat(subType), Count: count}
	case ModifierEvolutionItem, ModifierRareEvolutionItem:
		return EvolutionItemModifier{Rare: name == ModifierRareEvolutionItem, Item: enums.EvolutionItem(subType), Count: count}
	case ModifierBerry:
		return BerryModifier{Berry: enums.BerryType(subType), Count: count}
	default:
		return TypedModifier{Name: name, Type: subType, Count: count}
	}
}

// modifierDoc is the file form of a descriptor.
type modifierDoc struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type,omitempty"`
	Count int    `yaml:"count,omitempty"`
}

func marshalModifier(m ModifierOverride, count int) (interface{}, error) {
	return modifierDoc{Name: m.ModifierName(), Type: m.SubType(), Count: count}, nil
}

func (m PlainModifier) MarshalYAML() (interface{}, error)         { return marshalModifier(m, m.Count) }
func (m StatBooster) MarshalYAML() (interface{}, error)           { return marshalModifier(m, m.Count) }
func (m EvolutionItemModifier) MarshalYAML() (interface{}, error) { return marshalModifier(m, m.Count) }
func (m BerryModifier) MarshalYAML() (interface{}, error)         { return marshalModifier(m, m.Count) }
func (m TypedModifier) MarshalYAML() (interface{}, error)         { return marshalModifier(m, m.Count) }

// ModifierOverrides is an ordered list of descriptors. An empty list grants
// nothing extra.
type ModifierOverrides []ModifierOverride

// Granter is the engine's modifier factory as seen from this package.
type Granter interface {
	Grant(name, subType string, quantity int) error
}

// GrantTo hands every descriptor to g in order, stopping at the first error.
func (m ModifierOverrides) GrantTo(g Granter) error {
	for i, d := range m {
		if err := g.Grant(d.ModifierName(), d.SubType(), d.Quantity()); err != nil {
			return oops.
				In("overrides").
				With("index", i, "modifier", d.ModifierName()).
				Wrapf(err, "grant %s", d.ModifierName())
		}
	}
	return nil
}

// RewardAt returns the descriptor replacing the i-th rolled reward. Rolls
// past the end of the list keep their random item. Count is ignored for
// rewards.
func (m ModifierOverrides) RewardAt(i int) (ModifierOverride, bool) {
	if i < 0 || i >= len(m) {
		return nil, false
	}
	return m[i], true
}

func (m ModifierOverrides) validate() error {
	for i, d := range m {
		if d == nil {
			return malformed("[%d]: descriptor is nil", i)
		}
		if err := d.validate(); err != nil {
			return malformed("[%d]: %v", i, err)
		}
	}
	return nil
}

func (m *ModifierOverrides) UnmarshalYAML(n *yaml.Node) error {
	n = resolve(n)
	if n.Kind != yaml.SequenceNode {
		return oops.Errorf("line %d: expected a list of modifier descriptors", n.Line)
	}
	out := make(ModifierOverrides, 0, len(n.Content))
	for i, item := range n.Content {
		item = resolve(item)
		d, err := decodeModifier(item)
		if err != nil {
			return malformed("[%d] (line %d): %v", i, item.Line, err)
		}
		out = append(out, d)
	}
	*m = out
	return nil
}

func decodeModifier(n *yaml.Node) (ModifierOverride, error) {
	if n.Kind != yaml.MappingNode {
		return nil, oops.Errorf("descriptor must be a mapping with name, type and count")
	}
	if err := checkKeys(n, "name", "type", "count"); err != nil {
		return nil, err
	}
	var (
		name, subType string
		count         int
	)
	for i := 0; i < len(n.Content); i += 2 {
		key, value := n.Content[i].Value, n.Content[i+1]
		switch key {
		case "name":
			value = resolve(value)
			if !isTag(value, "!!str") || value.Value == "" {
				return nil, oops.Errorf("name must be a non-empty string")
			}
			name = value.Value
		case "type":
			value = resolve(value)
			if !isTag(value, "!!str") || value.Value == "" {
				return nil, oops.Errorf("type must be a non-empty string")
			}
			subType = value.Value
		case "count":
			value = resolve(value)
			if !isTag(value, "!!int") {
				return nil, oops.Errorf("count must be an integer, got %s", value.ShortTag())
			}
			if err := value.Decode(&count); err != nil {
				return nil, err
			}
			if count < 1 {
				return nil, oops.Errorf("count must be positive, got %d", count)
			}
		}
	}
	if name == "" {
		return nil, oops.Errorf("name is required")
	}
	return newModifierOverride(name, subType, count), nil
}
