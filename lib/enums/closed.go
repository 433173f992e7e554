package enums

// BattleStyle forces single or double battles. It is a closed set.
type BattleStyle string

const (
	// BattleStyleSingle makes every non-trainer battle a single battle.
	BattleStyleSingle BattleStyle = "single"
	// BattleStyleDouble makes every battle, trainer battles included, a double battle.
	BattleStyleDouble BattleStyle = "double"
	// BattleStyleEvenDoubles doubles on even waves and singles on odd waves.
	BattleStyleEvenDoubles BattleStyle = "even-doubles"
	// BattleStyleOddDoubles doubles on odd waves and singles on even waves.
	BattleStyleOddDoubles BattleStyle = "odd-doubles"
)

// BattleStyles lists every valid BattleStyle.
var BattleStyles = []BattleStyle{
	BattleStyleSingle,
	BattleStyleDouble,
	BattleStyleEvenDoubles,
	BattleStyleOddDoubles,
}

// Valid reports whether b is one of BattleStyles.
func (b BattleStyle) Valid() bool {
	for _, s := range BattleStyles {
		if s == b {
			return true
		}
	}
	return false
}

// PokeballType is one of the fixed ball kinds a run starts with.
type PokeballType string

// Ball kinds.
const (
	PokeBall   PokeballType = "POKEBALL"
	GreatBall  PokeballType = "GREAT_BALL"
	UltraBall  PokeballType = "ULTRA_BALL"
	RogueBall  PokeballType = "ROGUE_BALL"
	MasterBall PokeballType = "MASTER_BALL"
)

// PokeballTypes lists every PokeballType in tier order.
var PokeballTypes = []PokeballType{PokeBall, GreatBall, UltraBall, RogueBall, MasterBall}

// Valid reports whether p is one of PokeballTypes.
func (p PokeballType) Valid() bool {
	for _, t := range PokeballTypes {
		if t == p {
			return true
		}
	}
	return false
}
