package overrides

import (
	"github.com/rogue-tools/overrides/lib/enums"
)

// Overrides holds every overridable parameter of the simulation. Defaults()
// returns the production values; Merge returns the values an overlay forces.
//
// A merged Overrides is read-only. It is produced once at startup and
// handed to the engine by reference; nothing may modify it afterwards.
// Grouping is for readability only and has no effect on merging.
type Overrides struct {
	// Session-wide and run-wide settings
	Overall OverallOverrides

	// The first starter in the player's party
	Player PlayerOverrides

	// Every wild or trainer opponent
	Opponent OpponentOverrides

	// Egg hatching and the egg gacha
	Egg EggOverrides

	// Mystery encounter rolls
	MysteryEncounter MysteryEncounterOverrides

	// Modifiers and held items granted outside normal rewards
	Modifier ModifierOverridesGroup
}

// OverallOverrides contains session, run and battle-wide settings.
type OverallOverrides struct {
	// Seed fixes the run seed
	// Default: "" (random 24 character seed)
	Seed string

	// Weather forces the weather of every battle
	// Default: NONE
	Weather enums.WeatherType

	// BattleType forces single or double battles, see IsDoubleBattle
	// Default: nil (natural battle type)
	BattleType *enums.BattleStyle

	// StartingWave is the wave a new run starts at
	// Default: 0 (no override)
	StartingWave int

	// StartingBiome is the biome a new run starts in
	// Default: TOWN
	StartingBiome enums.Biome

	// ArenaTint forces the time-of-day tint of the arena
	// Default: nil
	ArenaTint *enums.TimeOfDay

	// XPMultiplier multiplies experience gained, 0 included
	// Default: 1
	XPMultiplier float64

	// NeverCrit disables critical hits
	// Default: false
	NeverCrit bool

	// StartingMoney is the money a new run starts with
	// Default: 1000
	StartingMoney int

	// WaiveShopFees sets every shop price to 0
	// Default: false
	WaiveShopFees bool

	// WaiveRollFee sets the reroll price to 0
	// Default: false
	WaiveRollFee bool

	// FreeCandyUpgrade makes candy upgrades free
	// Default: false
	FreeCandyUpgrade bool

	// Pokeball replaces the starting ball counts when active
	// Default: inactive
	Pokeball PokeballAllocation

	// ItemUnlock forces items to be unlocked
	// Default: none
	ItemUnlock []enums.Unlockable

	// BypassTutorialSkip shows every tutorial
	// Default: false
	BypassTutorialSkip bool

	// AchievementsReunlock allows earning unlocked achievements again
	// Default: false
	AchievementsReunlock bool

	// StatusActivation forces paralysis and freeze to always (true) or
	// never (false) activate
	// Default: nil (normal chance)
	StatusActivation *bool
}

// PlayerOverrides applies to the first starter in the party.
type PlayerOverrides struct {
	// StarterForms sets the form index of any starter whose species is listed
	// Default: none
	StarterForms FormOverrides

	// StartingLevel is the level of every starter
	// Default: 0 (5, or 20 for daily runs)
	StartingLevel int

	// StarterSpecies replaces the species of the first starter
	// Default: nil
	StarterSpecies *enums.Species

	// StarterFusion fuses the first starter with a random species
	// Default: false
	StarterFusion bool

	// StarterFusionSpecies picks the fusion partner
	// Default: nil
	StarterFusionSpecies *enums.Species

	Ability        enums.Ability
	PassiveAbility enums.Ability
	Status         enums.StatusEffect
	Gender         *enums.Gender
	Moveset        OneOrMany[enums.Move]
	Shiny          *bool
	Variant        *enums.VariantTier

	// Stats lists the stats to boost
	// Default: none
	Stats OneOrMany[enums.Stat]
}

// OpponentOverrides applies to every opponent Pokemon.
type OpponentOverrides struct {
	Species *enums.Species

	// Fusion makes every opponent a fusion
	// Default: false
	Fusion bool

	// FusionSpecies replaces the fusion partner when the opponent is already a fusion
	// Default: nil
	FusionSpecies *enums.Species

	// Level is the level of every opponent
	// Default: 0 (no override)
	Level int

	Ability        enums.Ability
	PassiveAbility enums.Ability
	Status         enums.StatusEffect
	Gender         *enums.Gender
	Moveset        OneOrMany[enums.Move]
	Shiny          *bool
	Variant        *enums.VariantTier

	// IVs holds one value for every stat or one value per permanent stat
	// Default: nil (no override)
	IVs OneOrMany[int]

	Forms FormOverrides

	// HealthSegments is the number of boss health segments, see BossSegments
	// Default: 0 (decided by wave, level and species)
	HealthSegments int
}

// EggOverrides applies to egg hatches and the egg gacha.
type EggOverrides struct {
	ImmediateHatch bool
	Tier           *enums.EggTier
	Shiny          bool
	Variant        *enums.VariantTier
	FreeGachaPulls bool

	// GachaPullCount is the number of eggs per pull
	// Default: 0 (no override)
	GachaPullCount int

	UnlimitedEggCount bool
}

// MysteryEncounterOverrides applies to mystery encounter rolls.
type MysteryEncounterOverrides struct {
	// Rate is the encounter chance from 1 (almost never) to 256 (always).
	// Encounters only trigger past wave 10.
	// Default: nil (normal rate)
	Rate *int

	Tier *enums.MysteryEncounterTier
	Type *enums.MysteryEncounterType
}

// ModifierOverridesGroup lists modifiers and held items to grant.
//
// Modifier lists deal with modifiers no party member holds (EXP_SHARE,
// CANDY_JAR, ...). Held item lists deal with items held by a party member
// (SOUL_DEW, TOXIC_ORB, ...).
type ModifierOverridesGroup struct {
	// Starting is granted when a new run begins
	Starting ModifierOverrides

	// Opponent replaces the modifiers of every enemy
	Opponent ModifierOverrides

	// StartingHeldItems is given to the first party member when a new run begins
	StartingHeldItems ModifierOverrides

	// OpponentHeldItems is given to enemies on spawn
	OpponentHeldItems ModifierOverrides

	// ItemReward replaces the rolled rewards after a wave, see RewardAt
	ItemReward ModifierOverrides
}

// Defaults returns an Overrides with every default value set. With these
// values the simulation behaves exactly as in production.
// This is the single source of truth for all override defaults.
func Defaults() Overrides {
	return Overrides{
		Overall:          buildOverallDefaults(),
		Player:           buildPlayerDefaults(),
		Opponent:         buildOpponentDefaults(),
		Egg:              buildEggDefaults(),
		MysteryEncounter: buildMysteryEncounterDefaults(),
		Modifier:         buildModifierDefaults(),
	}
}

// buildOverallDefaults creates default session and run values.
func buildOverallDefaults() OverallOverrides {
	return OverallOverrides{
		Seed:          "",
		Weather:       enums.WeatherNone,
		BattleType:    nil,
		StartingWave:  0,
		StartingBiome: enums.BiomeTown,
		ArenaTint:     nil,
		XPMultiplier:  1,
		NeverCrit:     false,
		StartingMoney: 1000,
		Pokeball: PokeballAllocation{
			Active: false,
			Pokeballs: PokeballCounts{
				enums.PokeBall:   5,
				enums.GreatBall:  0,
				enums.UltraBall:  0,
				enums.RogueBall:  0,
				enums.MasterBall: 0,
			},
		},
		StatusActivation: nil,
	}
}

// buildPlayerDefaults creates default starter values.
func buildPlayerDefaults() PlayerOverrides {
	return PlayerOverrides{
		StartingLevel:  0,
		Ability:        enums.AbilityNone,
		PassiveAbility: enums.AbilityNone,
		Status:         enums.StatusNone,
	}
}

// buildOpponentDefaults creates default opponent values.
func buildOpponentDefaults() OpponentOverrides {
	return OpponentOverrides{
		Level:          0,
		Ability:        enums.AbilityNone,
		PassiveAbility: enums.AbilityNone,
		Status:         enums.StatusNone,
		HealthSegments: 0,
	}
}

// buildEggDefaults creates default egg values.
func buildEggDefaults() EggOverrides {
	return EggOverrides{
		GachaPullCount: 0,
	}
}

// buildMysteryEncounterDefaults creates default mystery encounter values.
// Every field is nil so encounters roll normally.
func buildMysteryEncounterDefaults() MysteryEncounterOverrides {
	return MysteryEncounterOverrides{}
}

// buildModifierDefaults creates default modifier values. Empty lists grant
// nothing extra.
func buildModifierDefaults() ModifierOverridesGroup {
	return ModifierOverridesGroup{}
}
