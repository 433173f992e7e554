package overrides

import (
	"github.com/rogue-tools/overrides/lib/enums"
)

// IsDoubleBattle decides the battle type of a wave. natural is the type the
// engine rolled on its own.
//
//   - single: wild battles are single, trainer battles keep natural
//   - double: every battle is double
//   - even-doubles, odd-doubles: double on even (odd) waves, single otherwise
//   - nil: natural
func (o OverallOverrides) IsDoubleBattle(wave int, trainer, natural bool) bool {
	if o.BattleType == nil {
		return natural
	}
	switch *o.BattleType {
	case enums.BattleStyleSingle:
		if trainer {
			return natural
		}
		return false
	case enums.BattleStyleDouble:
		return true
	case enums.BattleStyleEvenDoubles:
		return wave%2 == 0
	case enums.BattleStyleOddDoubles:
		return wave%2 != 0
	}
	return natural
}

// BossSegments returns the number of health segments of an opponent whose
// natural count is natural. One segment means the opponent is not a boss.
func (o OpponentOverrides) BossSegments(natural int) int {
	if o.HealthSegments == 0 {
		return natural
	}
	return o.HealthSegments
}

// IV returns the forced individual value of stat. A single value applies to
// every stat; a list is indexed by permanent stat.
func (o OpponentOverrides) IV(stat enums.Stat) (int, bool) {
	switch len(o.IVs) {
	case 0:
		return 0, false
	case 1:
		return o.IVs[0], true
	}
	i := enums.PermanentStatIndex(stat)
	if i < 0 || i >= len(o.IVs) {
		return 0, false
	}
	return o.IVs[i], true
}
