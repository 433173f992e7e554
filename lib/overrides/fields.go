package overrides

import (
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/rogue-tools/overrides/lib/enums"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// Group is the domain area a field belongs to.
type Group string

// Field groups. A group never affects how its fields merge.
const (
	GroupOverall          Group = "overall"
	GroupPlayer           Group = "player"
	GroupOpponent         Group = "opponent"
	GroupEgg              Group = "egg"
	GroupMysteryEncounter Group = "mystery-encounter"
	GroupModifier         Group = "modifier"
)

// Groups lists every Group in registry order.
var Groups = []Group{GroupOverall, GroupPlayer, GroupOpponent, GroupEgg, GroupMysteryEncounter, GroupModifier}

// Kind is the declared type of a field.
type Kind string

// Field kinds.
const (
	KindBool           Kind = "bool"
	KindNullableBool   Kind = "nullable-bool"
	KindNumber         Kind = "number"
	KindNullableNumber Kind = "nullable-number"
	KindString         Kind = "string"
	KindEnum           Kind = "enum"
	KindNullableEnum   Kind = "nullable-enum"
	KindEnumList       Kind = "enum-list"
	KindNumberList     Kind = "number-list"
	KindRecord         Kind = "record"
	KindModifierList   Kind = "modifier-list"
)

// Nullable reports whether null is a legal value for the kind.
func (k Kind) Nullable() bool {
	switch k {
	case KindNullableBool, KindNullableNumber, KindNullableEnum, KindNumberList:
		return true
	}
	return false
}

// Phase is the point in the simulation lifecycle at which the engine reads a field.
type Phase string

// Lifecycle phases, in the order a run reaches them.
const (
	PhaseSession       Phase = "session"
	PhaseRunStart      Phase = "run-start"
	PhaseWaveStart     Phase = "wave-start"
	PhaseBattleStart   Phase = "battle-start"
	PhaseEggHatch      Phase = "egg-hatch"
	PhaseEncounterRoll Phase = "encounter-roll"
	PhaseRewardRoll    Phase = "reward-roll"
)

// Phases lists every Phase in lifecycle order.
var Phases = []Phase{
	PhaseSession, PhaseRunStart, PhaseWaveStart, PhaseBattleStart,
	PhaseEggHatch, PhaseEncounterRoll, PhaseRewardRoll,
}

// FieldInfo describes one overridable parameter.
type FieldInfo struct {
	Name    string
	Group   Group
	Kind    Kind
	Phase   Phase
	Default any
}

// AppliesAtRunStart reports whether the field only takes effect when a new
// run begins. Such fields are named STARTING_*.
func (f FieldInfo) AppliesAtRunStart() bool {
	return strings.HasPrefix(f.Name, "STARTING")
}

// field binds a FieldInfo to its slot in Overrides and Overlay.
type field struct {
	FieldInfo

	value    func(*Overrides) any
	copy     func(dst, src *Overrides)
	check    func(*Overrides) error
	isSet    func(*Overlay) bool
	checkSet func(*Overlay) error
	apply    func(*Overrides, *Overlay)
	decode   func(*Overlay, *yaml.Node) error
}

func bind[T any](
	name string, group Group, kind Kind, phase Phase,
	val func(*Overrides) *T, opt func(*Overlay) *Opt[T],
	clone func(T) T, check func(T) error,
) field {
	return field{
		FieldInfo: FieldInfo{Name: name, Group: group, Kind: kind, Phase: phase},
		value:     func(c *Overrides) any { return *val(c) },
		copy:      func(dst, src *Overrides) { *val(dst) = clone(*val(src)) },
		check:     func(c *Overrides) error { return check(*val(c)) },
		isSet:     func(o *Overlay) bool { return opt(o).IsSet() },
		checkSet: func(o *Overlay) error {
			if v, ok := opt(o).Get(); ok {
				return check(v)
			}
			return nil
		},
		apply: func(c *Overrides, o *Overlay) {
			if v, ok := opt(o).Get(); ok {
				*val(c) = clone(v)
			}
		},
		decode: func(o *Overlay, n *yaml.Node) error {
			var v T
			if isNull(n) {
				if !kind.Nullable() {
					return oops.Errorf("line %d: null is not allowed for a %s field", n.Line, kind)
				}
				*opt(o) = Set(v)
				return nil
			}
			if err := decodeScalar(n, &v); err != nil {
				return err
			}
			if err := check(v); err != nil {
				return err
			}
			*opt(o) = Set(clone(v))
			return nil
		},
	}
}

func same[T any](v T) T { return v }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneSlice and cloneMap normalise empty values to nil so that "empty" has
// a single representation in merged output.
func cloneSlice[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

func cloneMap[M ~map[K]V, K comparable, V any](m M) M {
	if len(m) == 0 {
		return nil
	}
	return maps.Clone(m)
}

func noCheck[T any](T) error { return nil }

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return oops.Errorf("number must be finite, got %v", v)
	}
	return nil
}

func checkIdent[E ~string](v E) error {
	if v == "" {
		return oops.Errorf("identifier must not be empty")
	}
	return nil
}

func checkOptIdent[E ~string](v *E) error {
	if v == nil {
		return nil
	}
	return checkIdent(*v)
}

func checkBattleStyle(v *enums.BattleStyle) error {
	if v != nil && !v.Valid() {
		return oops.Errorf("unknown battle style %q (want one of %v)", *v, enums.BattleStyles)
	}
	return nil
}

func checkIdentList[S ~[]E, E ~string](s S) error {
	for i, v := range s {
		if v == "" {
			return oops.Errorf("[%d]: identifier must not be empty", i)
		}
	}
	return nil
}

func boolField(name string, group Group, phase Phase, val func(*Overrides) *bool, opt func(*Overlay) *Opt[bool]) field {
	return bind(name, group, KindBool, phase, val, opt, same[bool], noCheck[bool])
}

func nullableBoolField(name string, group Group, phase Phase, val func(*Overrides) **bool, opt func(*Overlay) *Opt[*bool]) field {
	return bind(name, group, KindNullableBool, phase, val, opt, clonePtr[bool], noCheck[*bool])
}

func intField(name string, group Group, phase Phase, val func(*Overrides) *int, opt func(*Overlay) *Opt[int]) field {
	return bind(name, group, KindNumber, phase, val, opt, same[int], noCheck[int])
}

func nullableIntField(name string, group Group, phase Phase, val func(*Overrides) **int, opt func(*Overlay) *Opt[*int]) field {
	return bind(name, group, KindNullableNumber, phase, val, opt, clonePtr[int], noCheck[*int])
}

func floatField(name string, group Group, phase Phase, val func(*Overrides) *float64, opt func(*Overlay) *Opt[float64]) field {
	return bind(name, group, KindNumber, phase, val, opt, same[float64], checkFinite)
}

func stringField(name string, group Group, phase Phase, val func(*Overrides) *string, opt func(*Overlay) *Opt[string]) field {
	return bind(name, group, KindString, phase, val, opt, same[string], noCheck[string])
}

func enumField[E ~string](name string, group Group, phase Phase, val func(*Overrides) *E, opt func(*Overlay) *Opt[E]) field {
	return bind(name, group, KindEnum, phase, val, opt, same[E], checkIdent[E])
}

func nullableEnumField[E ~string](name string, group Group, phase Phase, val func(*Overrides) **E, opt func(*Overlay) *Opt[*E]) field {
	return bind(name, group, KindNullableEnum, phase, val, opt, clonePtr[E], checkOptIdent[E])
}

func enumListField[S ~[]E, E ~string](name string, group Group, phase Phase, val func(*Overrides) *S, opt func(*Overlay) *Opt[S]) field {
	return bind(name, group, KindEnumList, phase, val, opt, cloneSlice[S], checkIdentList[S])
}

func formsField(name string, group Group, phase Phase, val func(*Overrides) *FormOverrides, opt func(*Overlay) *Opt[FormOverrides]) field {
	return bind(name, group, KindRecord, phase, val, opt, cloneMap[FormOverrides], FormOverrides.validate)
}

func modifierField(name string, phase Phase, val func(*Overrides) *ModifierOverrides, opt func(*Overlay) *Opt[ModifierOverrides]) field {
	return bind(name, GroupModifier, KindModifierList, phase, val, opt, cloneSlice[ModifierOverrides], ModifierOverrides.validate)
}

// registry is the ordered list of every overridable field.
var registry = []field{
	// -----------------
	// OVERALL OVERRIDES
	// -----------------
	stringField("SEED", GroupOverall, PhaseSession,
		func(c *Overrides) *string { return &c.Overall.Seed },
		func(o *Overlay) *Opt[string] { return &o.Overall.Seed }),
	enumField("WEATHER", GroupOverall, PhaseBattleStart,
		func(c *Overrides) *enums.WeatherType { return &c.Overall.Weather },
		func(o *Overlay) *Opt[enums.WeatherType] { return &o.Overall.Weather }),
	bind("BATTLE_TYPE", GroupOverall, KindNullableEnum, PhaseWaveStart,
		func(c *Overrides) **enums.BattleStyle { return &c.Overall.BattleType },
		func(o *Overlay) *Opt[*enums.BattleStyle] { return &o.Overall.BattleType },
		clonePtr[enums.BattleStyle], checkBattleStyle),
	intField("STARTING_WAVE", GroupOverall, PhaseRunStart,
		func(c *Overrides) *int { return &c.Overall.StartingWave },
		func(o *Overlay) *Opt[int] { return &o.Overall.StartingWave }),
	enumField("STARTING_BIOME", GroupOverall, PhaseRunStart,
		func(c *Overrides) *enums.Biome { return &c.Overall.StartingBiome },
		func(o *Overlay) *Opt[enums.Biome] { return &o.Overall.StartingBiome }),
	nullableEnumField("ARENA_TINT", GroupOverall, PhaseWaveStart,
		func(c *Overrides) **enums.TimeOfDay { return &c.Overall.ArenaTint },
		func(o *Overlay) *Opt[*enums.TimeOfDay] { return &o.Overall.ArenaTint }),
	floatField("XP_MULTIPLIER", GroupOverall, PhaseBattleStart,
		func(c *Overrides) *float64 { return &c.Overall.XPMultiplier },
		func(o *Overlay) *Opt[float64] { return &o.Overall.XPMultiplier }),
	boolField("NEVER_CRIT", GroupOverall, PhaseBattleStart,
		func(c *Overrides) *bool { return &c.Overall.NeverCrit },
		func(o *Overlay) *Opt[bool] { return &o.Overall.NeverCrit }),
	intField("STARTING_MONEY", GroupOverall, PhaseRunStart,
		func(c *Overrides) *int { return &c.Overall.StartingMoney },
		func(o *Overlay) *Opt[int] { return &o.Overall.StartingMoney }),
	boolField("WAIVE_SHOP_FEES", GroupOverall, PhaseRewardRoll,
		func(c *Overrides) *bool { return &c.Overall.WaiveShopFees },
		func(o *Overlay) *Opt[bool] { return &o.Overall.WaiveShopFees }),
	boolField("WAIVE_ROLL_FEE", GroupOverall, PhaseRewardRoll,
		func(c *Overrides) *bool { return &c.Overall.WaiveRollFee },
		func(o *Overlay) *Opt[bool] { return &o.Overall.WaiveRollFee }),
	boolField("FREE_CANDY_UPGRADE", GroupOverall, PhaseSession,
		func(c *Overrides) *bool { return &c.Overall.FreeCandyUpgrade },
		func(o *Overlay) *Opt[bool] { return &o.Overall.FreeCandyUpgrade }),
	bind("POKEBALL", GroupOverall, KindRecord, PhaseRunStart,
		func(c *Overrides) *PokeballAllocation { return &c.Overall.Pokeball },
		func(o *Overlay) *Opt[PokeballAllocation] { return &o.Overall.Pokeball },
		PokeballAllocation.clone, PokeballAllocation.validate),
	enumListField("ITEM_UNLOCK", GroupOverall, PhaseSession,
		func(c *Overrides) *[]enums.Unlockable { return &c.Overall.ItemUnlock },
		func(o *Overlay) *Opt[[]enums.Unlockable] { return &o.Overall.ItemUnlock }),
	boolField("BYPASS_TUTORIAL_SKIP", GroupOverall, PhaseSession,
		func(c *Overrides) *bool { return &c.Overall.BypassTutorialSkip },
		func(o *Overlay) *Opt[bool] { return &o.Overall.BypassTutorialSkip }),
	boolField("ACHIEVEMENTS_REUNLOCK", GroupOverall, PhaseSession,
		func(c *Overrides) *bool { return &c.Overall.AchievementsReunlock },
		func(o *Overlay) *Opt[bool] { return &o.Overall.AchievementsReunlock }),
	nullableBoolField("STATUS_ACTIVATION", GroupOverall, PhaseBattleStart,
		func(c *Overrides) **bool { return &c.Overall.StatusActivation },
		func(o *Overlay) *Opt[*bool] { return &o.Overall.StatusActivation }),

	// ----------------
	// PLAYER OVERRIDES
	// ----------------
	formsField("STARTER_FORMS", GroupPlayer, PhaseRunStart,
		func(c *Overrides) *FormOverrides { return &c.Player.StarterForms },
		func(o *Overlay) *Opt[FormOverrides] { return &o.Player.StarterForms }),
	intField("STARTING_LEVEL", GroupPlayer, PhaseRunStart,
		func(c *Overrides) *int { return &c.Player.StartingLevel },
		func(o *Overlay) *Opt[int] { return &o.Player.StartingLevel }),
	nullableEnumField("STARTER_SPECIES", GroupPlayer, PhaseRunStart,
		func(c *Overrides) **enums.Species { return &c.Player.StarterSpecies },
		func(o *Overlay) *Opt[*enums.Species] { return &o.Player.StarterSpecies }),
	boolField("STARTER_FUSION", GroupPlayer, PhaseRunStart,
		func(c *Overrides) *bool { return &c.Player.StarterFusion },
		func(o *Overlay) *Opt[bool] { return &o.Player.StarterFusion }),
	nullableEnumField("STARTER_FUSION_SPECIES", GroupPlayer, PhaseRunStart,
		func(c *Overrides) **enums.Species { return &c.Player.StarterFusionSpecies },
		func(o *Overlay) *Opt[*enums.Species] { return &o.Player.StarterFusionSpecies }),
	enumField("ABILITY", GroupPlayer, PhaseBattleStart,
		func(c *Overrides) *enums.Ability { return &c.Player.Ability },
		func(o *Overlay) *Opt[enums.Ability] { return &o.Player.Ability }),
	enumField("PASSIVE_ABILITY", GroupPlayer, PhaseBattleStart,
		func(c *Overrides) *enums.Ability { return &c.Player.PassiveAbility },
		func(o *Overlay) *Opt[enums.Ability] { return &o.Player.PassiveAbility }),
	enumField("STATUS", GroupPlayer, PhaseBattleStart,
		func(c *Overrides) *enums.StatusEffect { return &c.Player.Status },
		func(o *Overlay) *Opt[enums.StatusEffect] { return &o.Player.Status }),
	nullableEnumField("GENDER", GroupPlayer, PhaseBattleStart,
		func(c *Overrides) **enums.Gender { return &c.Player.Gender },
		func(o *Overlay) *Opt[*enums.Gender] { return &o.Player.Gender }),
	enumListField("MOVESET", GroupPlayer, PhaseBattleStart,
		func(c *Overrides) *OneOrMany[enums.Move] { return &c.Player.Moveset },
		func(o *Overlay) *Opt[OneOrMany[enums.Move]] { return &o.Player.Moveset }),
	nullableBoolField("SHINY", GroupPlayer, PhaseBattleStart,
		func(c *Overrides) **bool { return &c.Player.Shiny },
		func(o *Overlay) *Opt[*bool] { return &o.Player.Shiny }),
	nullableEnumField("VARIANT", GroupPlayer, PhaseBattleStart,
		func(c *Overrides) **enums.VariantTier { return &c.Player.Variant },
		func(o *Overlay) *Opt[*enums.VariantTier] { return &o.Player.Variant }),
	enumListField("STAT", GroupPlayer, PhaseBattleStart,
		func(c *Overrides) *OneOrMany[enums.Stat] { return &c.Player.Stats },
		func(o *Overlay) *Opt[OneOrMany[enums.Stat]] { return &o.Player.Stats }),

	// --------------------------
	// OPPONENT / ENEMY OVERRIDES
	// --------------------------
	nullableEnumField("OPP_SPECIES", GroupOpponent, PhaseEncounterRoll,
		func(c *Overrides) **enums.Species { return &c.Opponent.Species },
		func(o *Overlay) *Opt[*enums.Species] { return &o.Opponent.Species }),
	boolField("OPP_FUSION", GroupOpponent, PhaseEncounterRoll,
		func(c *Overrides) *bool { return &c.Opponent.Fusion },
		func(o *Overlay) *Opt[bool] { return &o.Opponent.Fusion }),
	nullableEnumField("OPP_FUSION_SPECIES", GroupOpponent, PhaseEncounterRoll,
		func(c *Overrides) **enums.Species { return &c.Opponent.FusionSpecies },
		func(o *Overlay) *Opt[*enums.Species] { return &o.Opponent.FusionSpecies }),
	intField("OPP_LEVEL", GroupOpponent, PhaseEncounterRoll,
		func(c *Overrides) *int { return &c.Opponent.Level },
		func(o *Overlay) *Opt[int] { return &o.Opponent.Level }),
	enumField("OPP_ABILITY", GroupOpponent, PhaseBattleStart,
		func(c *Overrides) *enums.Ability { return &c.Opponent.Ability },
		func(o *Overlay) *Opt[enums.Ability] { return &o.Opponent.Ability }),
	enumField("OPP_PASSIVE_ABILITY", GroupOpponent, PhaseBattleStart,
		func(c *Overrides) *enums.Ability { return &c.Opponent.PassiveAbility },
		func(o *Overlay) *Opt[enums.Ability] { return &o.Opponent.PassiveAbility }),
	enumField("OPP_STATUS", GroupOpponent, PhaseBattleStart,
		func(c *Overrides) *enums.StatusEffect { return &c.Opponent.Status },
		func(o *Overlay) *Opt[enums.StatusEffect] { return &o.Opponent.Status }),
	nullableEnumField("OPP_GENDER", GroupOpponent, PhaseEncounterRoll,
		func(c *Overrides) **enums.Gender { return &c.Opponent.Gender },
		func(o *Overlay) *Opt[*enums.Gender] { return &o.Opponent.Gender }),
	enumListField("OPP_MOVESET", GroupOpponent, PhaseBattleStart,
		func(c *Overrides) *OneOrMany[enums.Move] { return &c.Opponent.Moveset },
		func(o *Overlay) *Opt[OneOrMany[enums.Move]] { return &o.Opponent.Moveset }),
	nullableBoolField("OPP_SHINY", GroupOpponent, PhaseEncounterRoll,
		func(c *Overrides) **bool { return &c.Opponent.Shiny },
		func(o *Overlay) *Opt[*bool] { return &o.Opponent.Shiny }),
	nullableEnumField("OPP_VARIANT", GroupOpponent, PhaseEncounterRoll,
		func(c *Overrides) **enums.VariantTier { return &c.Opponent.Variant },
		func(o *Overlay) *Opt[*enums.VariantTier] { return &o.Opponent.Variant }),
	bind("OPP_IVS", GroupOpponent, KindNumberList, PhaseEncounterRoll,
		func(c *Overrides) *OneOrMany[int] { return &c.Opponent.IVs },
		func(o *Overlay) *Opt[OneOrMany[int]] { return &o.Opponent.IVs },
		cloneSlice[OneOrMany[int]], noCheck[OneOrMany[int]]),
	formsField("OPP_FORMS", GroupOpponent, PhaseEncounterRoll,
		func(c *Overrides) *FormOverrides { return &c.Opponent.Forms },
		func(o *Overlay) *Opt[FormOverrides] { return &o.Opponent.Forms }),
	intField("OPP_HEALTH_SEGMENTS", GroupOpponent, PhaseEncounterRoll,
		func(c *Overrides) *int { return &c.Opponent.HealthSegments },
		func(o *Overlay) *Opt[int] { return &o.Opponent.HealthSegments }),

	// -------------
	// EGG OVERRIDES
	// -------------
	boolField("EGG_IMMEDIATE_HATCH", GroupEgg, PhaseEggHatch,
		func(c *Overrides) *bool { return &c.Egg.ImmediateHatch },
		func(o *Overlay) *Opt[bool] { return &o.Egg.ImmediateHatch }),
	nullableEnumField("EGG_TIER", GroupEgg, PhaseEggHatch,
		func(c *Overrides) **enums.EggTier { return &c.Egg.Tier },
		func(o *Overlay) *Opt[*enums.EggTier] { return &o.Egg.Tier }),
	boolField("EGG_SHINY", GroupEgg, PhaseEggHatch,
		func(c *Overrides) *bool { return &c.Egg.Shiny },
		func(o *Overlay) *Opt[bool] { return &o.Egg.Shiny }),
	nullableEnumField("EGG_VARIANT", GroupEgg, PhaseEggHatch,
		func(c *Overrides) **enums.VariantTier { return &c.Egg.Variant },
		func(o *Overlay) *Opt[*enums.VariantTier] { return &o.Egg.Variant }),
	boolField("EGG_FREE_GACHA_PULLS", GroupEgg, PhaseSession,
		func(c *Overrides) *bool { return &c.Egg.FreeGachaPulls },
		func(o *Overlay) *Opt[bool] { return &o.Egg.FreeGachaPulls }),
	intField("EGG_GACHA_PULL_COUNT", GroupEgg, PhaseSession,
		func(c *Overrides) *int { return &c.Egg.GachaPullCount },
		func(o *Overlay) *Opt[int] { return &o.Egg.GachaPullCount }),
	boolField("UNLIMITED_EGG_COUNT", GroupEgg, PhaseSession,
		func(c *Overrides) *bool { return &c.Egg.UnlimitedEggCount },
		func(o *Overlay) *Opt[bool] { return &o.Egg.UnlimitedEggCount }),

	// ---------------------------
	// MYSTERY ENCOUNTER OVERRIDES
	// ---------------------------
	nullableIntField("MYSTERY_ENCOUNTER_RATE", GroupMysteryEncounter, PhaseEncounterRoll,
		func(c *Overrides) **int { return &c.MysteryEncounter.Rate },
		func(o *Overlay) *Opt[*int] { return &o.MysteryEncounter.Rate }),
	nullableEnumField("MYSTERY_ENCOUNTER_TIER", GroupMysteryEncounter, PhaseEncounterRoll,
		func(c *Overrides) **enums.MysteryEncounterTier { return &c.MysteryEncounter.Tier },
		func(o *Overlay) *Opt[*enums.MysteryEncounterTier] { return &o.MysteryEncounter.Tier }),
	nullableEnumField("MYSTERY_ENCOUNTER", GroupMysteryEncounter, PhaseEncounterRoll,
		func(c *Overrides) **enums.MysteryEncounterType { return &c.MysteryEncounter.Type },
		func(o *Overlay) *Opt[*enums.MysteryEncounterType] { return &o.MysteryEncounter.Type }),

	// -------------------------
	// MODIFIER / ITEM OVERRIDES
	// -------------------------
	modifierField("STARTING_MODIFIER", PhaseRunStart,
		func(c *Overrides) *ModifierOverrides { return &c.Modifier.Starting },
		func(o *Overlay) *Opt[ModifierOverrides] { return &o.Modifier.Starting }),
	modifierField("OPP_MODIFIER", PhaseEncounterRoll,
		func(c *Overrides) *ModifierOverrides { return &c.Modifier.Opponent },
		func(o *Overlay) *Opt[ModifierOverrides] { return &o.Modifier.Opponent }),
	modifierField("STARTING_HELD_ITEMS", PhaseRunStart,
		func(c *Overrides) *ModifierOverrides { return &c.Modifier.StartingHeldItems },
		func(o *Overlay) *Opt[ModifierOverrides] { return &o.Modifier.StartingHeldItems }),
	modifierField("OPP_HELD_ITEMS", PhaseEncounterRoll,
		func(c *Overrides) *ModifierOverrides { return &c.Modifier.OpponentHeldItems },
		func(o *Overlay) *Opt[ModifierOverrides] { return &o.Modifier.OpponentHeldItems }),
	modifierField("ITEM_REWARD", PhaseRewardRoll,
		func(c *Overrides) *ModifierOverrides { return &c.Modifier.ItemReward },
		func(o *Overlay) *Opt[ModifierOverrides] { return &o.Modifier.ItemReward }),
}

var registryByName = func() map[string]*field {
	byName := make(map[string]*field, len(registry))
	for i := range registry {
		byName[registry[i].Name] = &registry[i]
	}
	return byName
}()

// Fields returns every field in registry order, with its default value.
func Fields() []FieldInfo {
	defaults := Defaults()
	out := make([]FieldInfo, 0, len(registry))
	for _, f := range registry {
		info := f.FieldInfo
		info.Default = f.value(&defaults)
		out = append(out, info)
	}
	return out
}

// Lookup returns the field called name.
func Lookup(name string) (FieldInfo, bool) {
	f, ok := registryByName[name]
	if !ok {
		return FieldInfo{}, false
	}
	defaults := Defaults()
	info := f.FieldInfo
	info.Default = f.value(&defaults)
	return info, true
}

// FieldsFor returns the fields the engine reads at phase.
func FieldsFor(phase Phase) []FieldInfo {
	var out []FieldInfo
	for _, f := range Fields() {
		if f.Phase == phase {
			out = append(out, f)
		}
	}
	return out
}

// FieldsIn returns the fields of group.
func FieldsIn(group Group) []FieldInfo {
	var out []FieldInfo
	for _, f := range Fields() {
		if f.Group == group {
			out = append(out, f)
		}
	}
	return out
}
