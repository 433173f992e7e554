package overrides

import (
	"errors"
	"testing"

	"github.com/rogue-tools/overrides/lib/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type grant struct {
	name, subType string
	quantity      int
}

type fakeGranter struct {
	grants []grant
	failOn string
}

func (g *fakeGranter) Grant(name, subType string, quantity int) error {
	if name == g.failOn {
		return errors.New("no such modifier")
	}
	g.grants = append(g.grants, grant{name, subType, quantity})
	return nil
}

func TestModifierDescriptors(t *testing.T) {
	tests := []struct {
		d        ModifierOverride
		name     string
		subType  string
		quantity int
	}{
		{PlainModifier{Name: "EXP_SHARE"}, "EXP_SHARE", "", 1},
		{PlainModifier{Name: "EXP_SHARE", Count: 5}, "EXP_SHARE", "", 5},
		{StatBooster{Stat: enums.StatSPD, Count: 2}, ModifierBaseStatBooster, "SPD", 2},
		{EvolutionItemModifier{Item: enums.EvolutionItemSunStone}, ModifierEvolutionItem, "SUN_STONE", 1},
		{EvolutionItemModifier{Rare: true, Item: enums.EvolutionItemLinkingCord}, ModifierRareEvolutionItem, "LINKING_CORD", 1},
		{BerryModifier{Berry: enums.BerrySitrus, Count: 3}, ModifierBerry, "SITRUS", 3},
		{TypedModifier{Name: "TM_COMMON", Type: "EARTHQUAKE"}, "TM_COMMON", "EARTHQUAKE", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.d.ModifierName())
		assert.Equal(t, tt.subType, tt.d.SubType())
		assert.Equal(t, tt.quantity, tt.d.Quantity())
		assert.NoError(t, tt.d.validate())
	}
}

func TestModifierDescriptorAliases(t *testing.T) {
	overlay := mustParse(t, `
STARTING_MODIFIER: [&share {name: EXP_SHARE, count: &n 2}, *share, {name: LURE, count: *n}]
OPP_MODIFIER: &list [{name: BERRY, type: SITRUS}]
OPP_HELD_ITEMS: *list
`)
	merged := mustMerge(t, overlay)

	assert.Equal(t, ModifierOverrides{
		PlainModifier{Name: "EXP_SHARE", Count: 2},
		PlainModifier{Name: "EXP_SHARE", Count: 2},
		PlainModifier{Name: "LURE", Count: 2},
	}, merged.Modifier.Starting)
	assert.Equal(t, ModifierOverrides{BerryModifier{Berry: enums.BerrySitrus}}, merged.Modifier.Opponent)
	assert.Equal(t, merged.Modifier.Opponent, merged.Modifier.OpponentHeldItems)
}

func TestGrantTo(t *testing.T) {
	list := ModifierOverrides{
		PlainModifier{Name: "EXP_SHARE", Count: 5},
		StatBooster{Stat: enums.StatATK},
	}

	g := &fakeGranter{}
	require.NoError(t, list.GrantTo(g))
	assert.Equal(t, []grant{
		{"EXP_SHARE", "", 5},
		{ModifierBaseStatBooster, "ATK", 1},
	}, g.grants)
}

func TestGrantToStopsAtFirstError(t *testing.T) {
	list := ModifierOverrides{
		PlainModifier{Name: "MYSTERY"},
		PlainModifier{Name: "EXP_SHARE"},
	}

	g := &fakeGranter{failOn: "MYSTERY"}
	err := list.GrantTo(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such modifier")
	assert.Empty(t, g.grants)
}

func TestRewardAt(t *testing.T) {
	rewards := ModifierOverrides{PlainModifier{Name: "MEMORY_MUSHROOM"}}

	d, ok := rewards.RewardAt(0)
	require.True(t, ok)
	assert.Equal(t, "MEMORY_MUSHROOM", d.ModifierName())

	_, ok = rewards.RewardAt(1)
	assert.False(t, ok, "rolls past the list keep their random item")
	_, ok = rewards.RewardAt(-1)
	assert.False(t, ok)
}

func TestPokeballAllocationApply(t *testing.T) {
	base := PokeballCounts{enums.PokeBall: 5}

	inactive := PokeballAllocation{Pokeballs: PokeballCounts{enums.MasterBall: 99}}
	assert.Equal(t, base, inactive.Apply(base))

	active := PokeballAllocation{Active: true, Pokeballs: PokeballCounts{enums.MasterBall: 2}}
	assert.Equal(t, PokeballCounts{
		enums.PokeBall:   0,
		enums.GreatBall:  0,
		enums.UltraBall:  0,
		enums.RogueBall:  0,
		enums.MasterBall: 2,
	}, active.Apply(base))
}

func TestDefaultPokeballAllocationIsNoOp(t *testing.T) {
	base := PokeballCounts{enums.PokeBall: 5, enums.GreatBall: 1}
	assert.Equal(t, base, Defaults().Overall.Pokeball.Apply(base))
}
