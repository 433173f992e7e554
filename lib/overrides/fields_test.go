package overrides

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool, len(registry))
	for _, f := range registry {
		assert.False(t, seen[f.Name], "%s registered twice", f.Name)
		seen[f.Name] = true
		assert.Equal(t, strings.ToUpper(f.Name), f.Name)
	}
	assert.Len(t, registryByName, len(registry))
}

func TestRegistryMetadata(t *testing.T) {
	kinds := []Kind{
		KindBool, KindNullableBool, KindNumber, KindNullableNumber, KindString,
		KindEnum, KindNullableEnum, KindEnumList, KindNumberList, KindRecord, KindModifierList,
	}
	for _, f := range Fields() {
		assert.Contains(t, Groups, f.Group, f.Name)
		assert.Contains(t, Phases, f.Phase, f.Name)
		assert.Contains(t, kinds, f.Kind, f.Name)
		if f.Kind.Nullable() && f.Kind != KindNumberList {
			assert.Nil(t, f.Default, "%s defaults to no override", f.Name)
		}
	}
}

func TestRegistryGroupsAreContiguous(t *testing.T) {
	var order []Group
	for _, f := range registry {
		if len(order) == 0 || order[len(order)-1] != f.Group {
			order = append(order, f.Group)
		}
	}
	assert.Equal(t, Groups, order)
}

func TestStartingFieldsApplyAtRunStart(t *testing.T) {
	for _, f := range Fields() {
		if f.AppliesAtRunStart() {
			assert.Equal(t, PhaseRunStart, f.Phase, f.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	info, ok := Lookup("XP_MULTIPLIER")
	require.True(t, ok)
	assert.Equal(t, GroupOverall, info.Group)
	assert.Equal(t, KindNumber, info.Kind)
	assert.Equal(t, 1.0, info.Default)

	info, ok = Lookup("STARTING_MODIFIER")
	require.True(t, ok)
	assert.Equal(t, KindModifierList, info.Kind)
	assert.True(t, info.AppliesAtRunStart())

	_, ok = Lookup("BOGUS_FIELD")
	assert.False(t, ok)
}

func TestFieldsFor(t *testing.T) {
	names := func(fields []FieldInfo) []string {
		out := make([]string, 0, len(fields))
		for _, f := range fields {
			out = append(out, f.Name)
		}
		return out
	}

	runStart := names(FieldsFor(PhaseRunStart))
	assert.Contains(t, runStart, "STARTING_MONEY")
	assert.Contains(t, runStart, "STARTING_MODIFIER")
	assert.NotContains(t, runStart, "OPP_LEVEL")

	eggs := names(FieldsIn(GroupEgg))
	assert.Len(t, eggs, 7)
	assert.True(t, slices.Contains(eggs, "UNLIMITED_EGG_COUNT"))

	total := 0
	for _, phase := range Phases {
		total += len(FieldsFor(phase))
	}
	assert.Equal(t, len(registry), total)
}

func TestKindNullable(t *testing.T) {
	assert.True(t, KindNullableBool.Nullable())
	assert.True(t, KindNumberList.Nullable())
	assert.False(t, KindBool.Nullable())
	assert.False(t, KindModifierList.Nullable())
}
