package overrides

import (
	"github.com/rogue-tools/overrides/lib/enums"
)

// Overlay is a sparse set of overrides. It mirrors Overrides field for field;
// only fields marked with Set take part in a merge and replace the default
// wholesale. The zero Overlay changes nothing.
//
//	overlay := overrides.Overlay{
//		Overall: overrides.OverallOverlay{XPMultiplier: overrides.Set(5.0)},
//		Modifier: overrides.ModifierOverlay{
//			Starting: overrides.Set(overrides.ModifierOverrides{
//				overrides.PlainModifier{Name: "EXP_SHARE", Count: 5},
//			}),
//		},
//	}
type Overlay struct {
	Overall          OverallOverlay
	Player           PlayerOverlay
	Opponent         OpponentOverlay
	Egg              EggOverlay
	MysteryEncounter MysteryEncounterOverlay
	Modifier         ModifierOverlay
}

type OverallOverlay struct {
	Seed                 Opt[string]
	Weather              Opt[enums.WeatherType]
	BattleType           Opt[*enums.BattleStyle]
	StartingWave         Opt[int]
	StartingBiome        Opt[enums.Biome]
	ArenaTint            Opt[*enums.TimeOfDay]
	XPMultiplier         Opt[float64]
	NeverCrit            Opt[bool]
	StartingMoney        Opt[int]
	WaiveShopFees        Opt[bool]
	WaiveRollFee         Opt[bool]
	FreeCandyUpgrade     Opt[bool]
	Pokeball             Opt[PokeballAllocation]
	ItemUnlock           Opt[[]enums.Unlockable]
	BypassTutorialSkip   Opt[bool]
	AchievementsReunlock Opt[bool]
	StatusActivation     Opt[*bool]
}

type PlayerOverlay struct {
	StarterForms         Opt[FormOverrides]
	StartingLevel        Opt[int]
	StarterSpecies       Opt[*enums.Species]
	StarterFusion        Opt[bool]
	StarterFusionSpecies Opt[*enums.Species]
	Ability              Opt[enums.Ability]
	PassiveAbility       Opt[enums.Ability]
	Status               Opt[enums.StatusEffect]
	Gender               Opt[*enums.Gender]
	Moveset              Opt[OneOrMany[enums.Move]]
	Shiny                Opt[*bool]
	Variant              Opt[*enums.VariantTier]
	Stats                Opt[OneOrMany[enums.Stat]]
}

type OpponentOverlay struct {
	Species        Opt[*enums.Species]
	Fusion         Opt[bool]
	FusionSpecies  Opt[*enums.Species]
	Level          Opt[int]
	Ability        Opt[enums.Ability]
	PassiveAbility Opt[enums.Ability]
	Status         Opt[enums.StatusEffect]
	Gender         Opt[*enums.Gender]
	Moveset        Opt[OneOrMany[enums.Move]]
	Shiny          Opt[*bool]
	Variant        Opt[*enums.VariantTier]
	IVs            Opt[OneOrMany[int]]
	Forms          Opt[FormOverrides]
	HealthSegments Opt[int]
}

type EggOverlay struct {
	ImmediateHatch    Opt[bool]
	Tier              Opt[*enums.EggTier]
	Shiny             Opt[bool]
	Variant           Opt[*enums.VariantTier]
	FreeGachaPulls    Opt[bool]
	GachaPullCount    Opt[int]
	UnlimitedEggCount Opt[bool]
}

type MysteryEncounterOverlay struct {
	Rate Opt[*int]
	Tier Opt[*enums.MysteryEncounterTier]
	Type Opt[*enums.MysteryEncounterType]
}

type ModifierOverlay struct {
	Starting          Opt[ModifierOverrides]
	Opponent          Opt[ModifierOverrides]
	StartingHeldItems Opt[ModifierOverrides]
	OpponentHeldItems Opt[ModifierOverrides]
	ItemReward        Opt[ModifierOverrides]
}

// Present reports the names of the fields this overlay sets, in registry order.
func (o Overlay) Present() []string {
	var names []string
	for _, f := range registry {
		if f.isSet(&o) {
			names = append(names, f.Name)
		}
	}
	return names
}

// Validate checks every present value against the kind of its field.
func (o Overlay) Validate() error {
	for _, f := range registry {
		if err := f.checkSet(&o); err != nil {
			return fieldError(f.Name, classify(err), err)
		}
	}
	return nil
}
