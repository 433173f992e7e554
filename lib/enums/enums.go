package enums

type (
	Species              string
	Ability              string
	Move                 string
	StatusEffect         string
	Biome                string
	WeatherType          string
	Stat                 string
	EggTier              string
	VariantTier          string
	MysteryEncounterTier string
	MysteryEncounterType string
	TimeOfDay            string
	Gender               string
	Unlockable           string
	BerryType            string
	EvolutionItem        string
)

const (
	SpeciesBulbasaur  Species = "BULBASAUR"
	SpeciesRayquaza   Species = "RAYQUAZA"
	SpeciesEternatus  Species = "ETERNATUS"
	SpeciesDarmanitan Species = "DARMANITAN"

	AbilityNone     Ability = "NONE"
	AbilityAirLock  Ability = "AIR_LOCK"
	AbilityLevitate Ability = "LEVITATE"
	AbilityProtean  Ability = "PROTEAN"
	AbilityPixilate Ability = "PIXILATE"

	MoveEternabeam     Move = "ETERNABEAM"
	MoveEarthquake     Move = "EARTHQUAKE"
	MovePsychic        Move = "PSYCHIC"
	MovePrismaticLaser Move = "PRISMATIC_LASER"
	MoveSplash         Move = "SPLASH"

	StatusNone      StatusEffect = "NONE"
	StatusParalysis StatusEffect = "PARALYSIS"
	StatusFreeze    StatusEffect = "FREEZE"

	BiomeTown Biome = "TOWN"
	BiomeEnd  Biome = "END"

	WeatherNone WeatherType = "NONE"
	WeatherRain WeatherType = "RAIN"

	EggTierCommon    EggTier = "COMMON"
	EggTierLegendary EggTier = "LEGENDARY"

	VariantStandard VariantTier = "STANDARD"
	VariantRare     VariantTier = "RARE"
	VariantEpic     VariantTier = "EPIC"

	TimeOfDayDawn  TimeOfDay = "DAWN"
	TimeOfDayNight TimeOfDay = "NIGHT"

	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"

	BerrySitrus BerryType = "SITRUS"

	EvolutionItemLinkingCord EvolutionItem = "LINKING_CORD"
	EvolutionItemSunStone    EvolutionItem = "SUN_STONE"
)

const (
	StatHP    Stat = "HP"
	StatATK   Stat = "ATK"
	StatDEF   Stat = "DEF"
	StatSPATK Stat = "SPATK"
	StatSPDEF Stat = "SPDEF"
	StatSPD   Stat = "SPD"
	StatACC   Stat = "ACC"
	StatEVA   Stat = "EVA"
)

// PermanentStats are the six stats a Pokemon carries outside battle, in the
// order individual values are indexed.
var PermanentStats = []Stat{StatHP, StatATK, StatDEF, StatSPATK, StatSPDEF, StatSPD}

// PermanentStatIndex returns the IV index of s, or -1 for battle-only stats.
func PermanentStatIndex(s Stat) int {
	for i, p := range PermanentStats {
		if p == s {
			return i
		}
	}
	return -1
}
