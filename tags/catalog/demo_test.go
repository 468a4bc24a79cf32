package catalog

import (
	"testing"

	"github.com/joshuapare/vendortags/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo_Layout(t *testing.T) {
	tbl := Demo()
	require.Equal(t, DemoSectionCount, tbl.Len())

	tests := []struct {
		index int
		name  string
		start types.Tag
		end   types.Tag
	}{
		{DemoWizardry, "demo.wizardry", 0x80000000, 0x80000004},
		{DemoSorcery, "demo.sorcery", 0x80010000, 0x80010002},
		{DemoMagic, "demo.magic", 0x80020000, 0x80020002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tbl.Section(tt.index)
			assert.Equal(t, tt.name, s.Name())
			assert.Equal(t, tt.start, s.Start())
			assert.Equal(t, tt.end, s.End())
		})
	}
}

func TestDemo_Entries(t *testing.T) {
	tbl := Demo()

	tests := []struct {
		tag     types.Tag
		section int
		name    string
		typ     types.ValueType
	}{
		{DemoWizardryDimensionSize, DemoWizardry, "dimensionSize", types.TYPE_INT32},
		{DemoWizardryDimensions, DemoWizardry, "dimensions", types.TYPE_INT32},
		{DemoWizardryFamiliar, DemoWizardry, "familiar", types.TYPE_BYTE},
		{DemoWizardryFire, DemoWizardry, "fire", types.TYPE_RATIONAL},
		{DemoSorceryDifficulty, DemoSorcery, "difficulty", types.TYPE_INT64},
		{DemoSorceryLight, DemoSorcery, "light", types.TYPE_BYTE},
		{DemoMagicCardTrick, DemoMagic, "cardTrick", types.TYPE_DOUBLE},
		{DemoMagicLevitation, DemoMagic, "levitation", types.TYPE_FLOAT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tbl.Section(tt.section)
			require.True(t, s.Contains(tt.tag))
			e := s.EntryAt(int(tt.tag - s.Start()))
			assert.Equal(t, tt.name, e.Name)
			assert.Equal(t, tt.typ, e.Type)
			assert.False(t, e.Reserved)
		})
	}
}

func TestDemo_Shared(t *testing.T) {
	assert.Same(t, Demo(), Demo())
}
