package overrides

import (
	"sort"
	"strings"
	"testing"

	"github.com/rogue-tools/overrides/lib/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	doc  string
	want any
}

// samples holds, for every field, a non-default value in overlay form and
// the value it must merge to.
var samples = map[string]sample{
	"SEED":                  {`"abc"`, "abc"},
	"WEATHER":               {`RAIN`, enums.WeatherRain},
	"BATTLE_TYPE":           {`double`, Ptr(enums.BattleStyleDouble)},
	"STARTING_WAVE":         {`5`, 5},
	"STARTING_BIOME":        {`END`, enums.BiomeEnd},
	"ARENA_TINT":            {`NIGHT`, Ptr(enums.TimeOfDayNight)},
	"XP_MULTIPLIER":         {`5`, 5.0},
	"NEVER_CRIT":            {`true`, true},
	"STARTING_MONEY":        {`0`, 0},
	"WAIVE_SHOP_FEES":       {`true`, true},
	"WAIVE_ROLL_FEE":        {`true`, true},
	"FREE_CANDY_UPGRADE":    {`true`, true},
	"POKEBALL":              {`{active: true, pokeballs: {MASTER_BALL: 3}}`, PokeballAllocation{Active: true, Pokeballs: PokeballCounts{enums.MasterBall: 3}}},
	"ITEM_UNLOCK":           {`[MINI_BLACK_HOLE]`, []enums.Unlockable{"MINI_BLACK_HOLE"}},
	"BYPASS_TUTORIAL_SKIP":  {`true`, true},
	"ACHIEVEMENTS_REUNLOCK": {`true`, true},
	"STATUS_ACTIVATION":     {`false`, Ptr(false)},

	"STARTER_FORMS":          {`{DARMANITAN: 1}`, FormOverrides{enums.SpeciesDarmanitan: 1}},
	"STARTING_LEVEL":         {`100`, 100},
	"STARTER_SPECIES":        {`RAYQUAZA`, Ptr(enums.SpeciesRayquaza)},
	"STARTER_FUSION":         {`true`, true},
	"STARTER_FUSION_SPECIES": {`BULBASAUR`, Ptr(enums.SpeciesBulbasaur)},
	"ABILITY":                {`AIR_LOCK`, enums.AbilityAirLock},
	"PASSIVE_ABILITY":        {`PIXILATE`, enums.AbilityPixilate},
	"STATUS":                 {`PARALYSIS`, enums.StatusParalysis},
	"GENDER":                 {`FEMALE`, Ptr(enums.GenderFemale)},
	"MOVESET":                {`[EARTHQUAKE, PSYCHIC]`, OneOrMany[enums.Move]{enums.MoveEarthquake, enums.MovePsychic}},
	"SHINY":                  {`true`, Ptr(true)},
	"VARIANT":                {`EPIC`, Ptr(enums.VariantEpic)},
	"STAT":                   {`ATK`, OneOrMany[enums.Stat]{enums.StatATK}},

	"OPP_SPECIES":         {`ETERNATUS`, Ptr(enums.SpeciesEternatus)},
	"OPP_FUSION":          {`true`, true},
	"OPP_FUSION_SPECIES":  {`BULBASAUR`, Ptr(enums.SpeciesBulbasaur)},
	"OPP_LEVEL":           {`50`, 50},
	"OPP_ABILITY":         {`LEVITATE`, enums.AbilityLevitate},
	"OPP_PASSIVE_ABILITY": {`PROTEAN`, enums.AbilityProtean},
	"OPP_STATUS":          {`FREEZE`, enums.StatusFreeze},
	"OPP_GENDER":          {`MALE`, Ptr(enums.GenderMale)},
	"OPP_MOVESET":         {`SPLASH`, OneOrMany[enums.Move]{enums.MoveSplash}},
	"OPP_SHINY":           {`false`, Ptr(false)},
	"OPP_VARIANT":         {`RARE`, Ptr(enums.VariantRare)},
	"OPP_IVS":             {`31`, OneOrMany[int]{31}},
	"OPP_FORMS":           {`{DARMANITAN: 1}`, FormOverrides{enums.SpeciesDarmanitan: 1}},
	"OPP_HEALTH_SEGMENTS": {`1`, 1},

	"EGG_IMMEDIATE_HATCH":  {`true`, true},
	"EGG_TIER":             {`LEGENDARY`, Ptr(enums.EggTierLegendary)},
	"EGG_SHINY":            {`true`, true},
	"EGG_VARIANT":          {`EPIC`, Ptr(enums.VariantEpic)},
	"EGG_FREE_GACHA_PULLS": {`true`, true},
	"EGG_GACHA_PULL_COUNT": {`10`, 10},
	"UNLIMITED_EGG_COUNT":  {`true`, true},

	"MYSTERY_ENCOUNTER_RATE": {`256`, Ptr(256)},
	"MYSTERY_ENCOUNTER_TIER": {`GREAT`, Ptr(enums.MysteryEncounterTier("GREAT"))},
	"MYSTERY_ENCOUNTER":      {`DARK_DEAL`, Ptr(enums.MysteryEncounterType("DARK_DEAL"))},

	"STARTING_MODIFIER": {
		`[{name: EXP_SHARE, count: 5}]`,
		ModifierOverrides{PlainModifier{Name: "EXP_SHARE", Count: 5}},
	},
	"OPP_MODIFIER": {
		`[{name: BASE_STAT_BOOSTER, type: ATK}]`,
		ModifierOverrides{StatBooster{Stat: enums.StatATK}},
	},
	"STARTING_HELD_ITEMS": {
		`[{name: BERRY, type: SITRUS, count: 2}]`,
		ModifierOverrides{BerryModifier{Berry: enums.BerrySitrus, Count: 2}},
	},
	"OPP_HELD_ITEMS": {
		`[{name: RARE_EVOLUTION_ITEM, type: LINKING_CORD}]`,
		ModifierOverrides{EvolutionItemModifier{Rare: true, Item: enums.EvolutionItemLinkingCord}},
	},
	"ITEM_REWARD": {
		`[{name: TM_COMMON, type: EARTHQUAKE}, {name: MEMORY_MUSHROOM}]`,
		ModifierOverrides{
			TypedModifier{Name: "TM_COMMON", Type: "EARTHQUAKE"},
			PlainModifier{Name: "MEMORY_MUSHROOM"},
		},
	},
}

func sampleNames() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// allSamplesDoc sets every field at once.
func allSamplesDoc() string {
	var b strings.Builder
	for _, name := range sampleNames() {
		b.WriteString(name + ": " + samples[name].doc + "\n")
	}
	return b.String()
}

func mustParse(t *testing.T, doc string) Overlay {
	t.Helper()
	overlay, err := ParseOverlay([]byte(doc))
	require.NoError(t, err)
	return overlay
}

func mustMerge(t *testing.T, overlay Overlay) *Overrides {
	t.Helper()
	merged, err := Merge(Defaults(), overlay)
	require.NoError(t, err)
	return merged
}

func TestSamplesCoverRegistry(t *testing.T) {
	require.Len(t, samples, len(registry))
	for _, f := range registry {
		_, ok := samples[f.Name]
		assert.True(t, ok, "no sample for %s", f.Name)
	}
}

func TestMergeEmptyOverlayYieldsDefaults(t *testing.T) {
	merged := mustMerge(t, Overlay{})
	assert.Equal(t, Defaults(), *merged)
	assert.Empty(t, merged.Active())
}

// TestMergeSingleField checks that each field, set on its own, takes the
// overlay value and leaves every other field at its default.
func TestMergeSingleField(t *testing.T) {
	for _, name := range sampleNames() {
		s := samples[name]
		t.Run(name, func(t *testing.T) {
			merged := mustMerge(t, mustParse(t, name+": "+s.doc))

			got, ok := merged.Value(name)
			require.True(t, ok)
			assert.Equal(t, s.want, got)
			assert.Equal(t, []string{name}, merged.Active())
		})
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	overlay := mustParse(t, allSamplesDoc())

	first := mustMerge(t, overlay)
	second := mustMerge(t, overlay)
	assert.Equal(t, first, second)
}

func TestMergeFieldIndependence(t *testing.T) {
	xp := mustParse(t, "XP_MULTIPLIER: 5")
	money := mustParse(t, "STARTING_MONEY: 250")
	both := mustParse(t, "XP_MULTIPLIER: 5\nSTARTING_MONEY: 250")

	mergedXP := mustMerge(t, xp)
	mergedMoney := mustMerge(t, money)
	mergedBoth := mustMerge(t, both)

	assert.Equal(t, mergedXP.Overall.XPMultiplier, mergedBoth.Overall.XPMultiplier)
	assert.Equal(t, mergedMoney.Overall.StartingMoney, mergedBoth.Overall.StartingMoney)
	assert.Equal(t, []string{"XP_MULTIPLIER", "STARTING_MONEY"}, mergedBoth.Active())
}

func TestMergeXPMultiplier(t *testing.T) {
	merged := mustMerge(t, Overlay{Overall: OverallOverlay{XPMultiplier: Set(5.0)}})

	assert.Equal(t, 5.0, merged.Overall.XPMultiplier)
	want := Defaults()
	want.Overall.XPMultiplier = 5
	assert.Equal(t, want, *merged)
}

func TestMergeStartingModifier(t *testing.T) {
	merged := mustMerge(t, mustParse(t, "STARTING_MODIFIER: [{name: EXP_SHARE, count: 5}]"))

	require.Len(t, merged.Modifier.Starting, 1)
	d := merged.Modifier.Starting[0]
	assert.Equal(t, "EXP_SHARE", d.ModifierName())
	assert.Empty(t, d.SubType())
	assert.Equal(t, 5, d.Quantity())
}

func TestMergeReplacesListsWholesale(t *testing.T) {
	defaults := Defaults()
	defaults.Player.Moveset = OneOrMany[enums.Move]{enums.MoveSplash, enums.MovePsychic}

	merged, err := Merge(defaults, mustParse(t, "MOVESET: EARTHQUAKE"))
	require.NoError(t, err)
	assert.Equal(t, OneOrMany[enums.Move]{enums.MoveEarthquake}, merged.Player.Moveset)
}

func TestMergeExplicitNull(t *testing.T) {
	defaults := Defaults()
	defaults.Player.StarterSpecies = Ptr(enums.SpeciesRayquaza)

	overlay := mustParse(t, "STARTER_SPECIES: null")
	assert.Equal(t, []string{"STARTER_SPECIES"}, overlay.Present())

	merged, err := Merge(defaults, overlay)
	require.NoError(t, err)
	assert.Nil(t, merged.Player.StarterSpecies)
}

func TestMergeSharesNoMemory(t *testing.T) {
	ivs := OneOrMany[int]{1, 2, 3, 4, 5, 6}
	forms := FormOverrides{enums.SpeciesDarmanitan: 1}
	overlay := Overlay{Opponent: OpponentOverlay{IVs: Set(ivs), Forms: Set(forms)}}

	defaults := Defaults()
	merged, err := Merge(defaults, overlay)
	require.NoError(t, err)

	ivs[0] = 31
	forms[enums.SpeciesDarmanitan] = 0
	assert.Equal(t, 1, merged.Opponent.IVs[0])
	assert.Equal(t, 1, merged.Opponent.Forms[enums.SpeciesDarmanitan])

	merged.Overall.Pokeball.Pokeballs[enums.PokeBall] = 0
	assert.Equal(t, 5, defaults.Overall.Pokeball.Pokeballs[enums.PokeBall])
}

func TestMergeRejectsMalformedGoOverlay(t *testing.T) {
	tests := []struct {
		name string
		list ModifierOverrides
	}{
		{"stat booster without stat", ModifierOverrides{StatBooster{}}},
		{"negative count", ModifierOverrides{PlainModifier{Name: "EXP_SHARE", Count: -1}}},
		{"nameless", ModifierOverrides{PlainModifier{}}},
		{"typed family misuse", ModifierOverrides{TypedModifier{Name: ModifierBerry, Type: "SITRUS"}}},
		{"typed without type", ModifierOverrides{TypedModifier{Name: "TM_COMMON"}}},
		{"evolution item without item", ModifierOverrides{EvolutionItemModifier{Rare: true}}},
		{"berry without berry", ModifierOverrides{BerryModifier{Count: 1}}},
		{"nil descriptor", ModifierOverrides{nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overlay := Overlay{Modifier: ModifierOverlay{ItemReward: Set(tt.list)}}
			_, err := Merge(Defaults(), overlay)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedModifier)
			assert.NotErrorIs(t, err, ErrInvalidDefault)

			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "ITEM_REWARD", fe.Field)
		})
	}
}

func TestMergeRejectsInvalidGoOverlay(t *testing.T) {
	overlay := Overlay{
		Overall: OverallOverlay{
			Pokeball: Set(PokeballAllocation{Active: true, Pokeballs: PokeballCounts{enums.GreatBall: -1}}),
		},
	}
	_, err := Merge(Defaults(), overlay)
	assert.ErrorIs(t, err, ErrFieldType)
}

func TestDiff(t *testing.T) {
	a := mustMerge(t, mustParse(t, "NEVER_CRIT: true\nOPP_LEVEL: 50"))
	b := mustMerge(t, mustParse(t, "NEVER_CRIT: true"))

	assert.Equal(t, []string{"OPP_LEVEL"}, a.Diff(b))
	assert.Empty(t, a.Diff(a))
}

func TestValueUnknownField(t *testing.T) {
	merged := mustMerge(t, Overlay{})
	_, ok := merged.Value("BOGUS_FIELD")
	assert.False(t, ok)
}

func TestClone(t *testing.T) {
	merged := mustMerge(t, mustParse(t, allSamplesDoc()))
	clone := merged.Clone()
	assert.Equal(t, *merged, clone)

	clone.Opponent.Forms[enums.SpeciesDarmanitan] = 7
	assert.Equal(t, 1, merged.Opponent.Forms[enums.SpeciesDarmanitan])
}
