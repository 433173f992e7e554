package enums

import (
	"errors"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// ErrNotIdentifier is returned when a YAML value cannot be used as an identifier.
var ErrNotIdentifier = errors.New("not an identifier")

func unmarshalIdent(n *yaml.Node, out *string, kind string) error {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!str" {
		return oops.Wrapf(ErrNotIdentifier, "line %d: %s must be a string, got %s", n.Line, kind, describe(n))
	}
	if n.Value == "" {
		return oops.Wrapf(ErrNotIdentifier, "line %d: %s must not be empty", n.Line, kind)
	}
	*out = n.Value
	return nil
}

func describe(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return n.ShortTag()
	default:
		return "node"
	}
}

func (s *Species) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(s), "species")
}

func (a *Ability) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(a), "ability")
}

func (m *Move) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(m), "move")
}

func (s *StatusEffect) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(s), "status effect")
}

func (b *Biome) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(b), "biome")
}

func (w *WeatherType) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(w), "weather")
}

func (s *Stat) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(s), "stat")
}

func (e *EggTier) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(e), "egg tier")
}

func (v *VariantTier) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(v), "variant tier")
}

func (m *MysteryEncounterTier) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(m), "mystery encounter tier")
}

func (m *MysteryEncounterType) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(m), "mystery encounter type")
}

func (t *TimeOfDay) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(t), "time of day")
}

func (g *Gender) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(g), "gender")
}

func (u *Unlockable) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(u), "unlockable")
}

func (b *BerryType) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(b), "berry type")
}

func (e *EvolutionItem) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalIdent(n, (*string)(e), "evolution item")
}

func (b *BattleStyle) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := unmarshalIdent(n, &s, "battle style"); err != nil {
		return err
	}
	if !BattleStyle(s).Valid() {
		return oops.Wrapf(ErrNotIdentifier, "line %d: unknown battle style %q (want one of %v)", n.Line, s, BattleStyles)
	}
	*b = BattleStyle(s)
	return nil
}

func (p *PokeballType) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := unmarshalIdent(n, &s, "pokeball type"); err != nil {
		return err
	}
	if !PokeballType(s).Valid() {
		return oops.Wrapf(ErrNotIdentifier, "line %d: unknown pokeball type %q (want one of %v)", n.Line, s, PokeballTypes)
	}
	*p = PokeballType(s)
	return nil
}
