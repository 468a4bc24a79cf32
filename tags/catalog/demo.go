// Package catalog declares the vendor tags this HAL exposes.
package catalog

import (
	"sync"

	"github.com/joshuapare/vendortags/internal/format"
	"github.com/joshuapare/vendortags/pkg/types"
	"github.com/joshuapare/vendortags/tags/table"
)

// Section indices. A section's index fixes its block above the vendor base.
const (
	DemoWizardry = iota
	DemoSorcery
	DemoMagic
	DemoSectionCount
)

const (
	DemoWizardryStart = types.Tag(format.VendorSectionStart + DemoWizardry<<format.SectionShift)
	DemoSorceryStart  = types.Tag(format.VendorSectionStart + DemoSorcery<<format.SectionShift)
	DemoMagicStart    = types.Tag(format.VendorSectionStart + DemoMagic<<format.SectionShift)
)

// demo.wizardry
const (
	DemoWizardryDimensionSize = DemoWizardryStart + iota
	DemoWizardryDimensions
	DemoWizardryFamiliar
	DemoWizardryFire
	DemoWizardryEnd
)

// demo.sorcery
const (
	DemoSorceryDifficulty = DemoSorceryStart + iota
	DemoSorceryLight
	DemoSorceryEnd
)

// demo.magic
const (
	DemoMagicCardTrick = DemoMagicStart + iota
	DemoMagicLevitation
	DemoMagicEnd
)

var demo = sync.OnceValue(buildDemo)

// Demo returns the demo catalogue. The table is built on first use and
// shared afterwards; it is immutable.
func Demo() *table.Table { return demo() }

func buildDemo() *table.Table {
	b := table.NewBuilder()

	b.Section("demo.wizardry", uint32(DemoWizardryEnd-DemoWizardryStart)).
		Entry(DemoWizardryDimensionSize, "dimensionSize", types.TYPE_INT32).
		Entry(DemoWizardryDimensions, "dimensions", types.TYPE_INT32).
		Entry(DemoWizardryFamiliar, "familiar", types.TYPE_BYTE).
		Entry(DemoWizardryFire, "fire", types.TYPE_RATIONAL)

	b.Section("demo.sorcery", uint32(DemoSorceryEnd-DemoSorceryStart)).
		Entry(DemoSorceryDifficulty, "difficulty", types.TYPE_INT64).
		Entry(DemoSorceryLight, "light", types.TYPE_BYTE)

	b.Section("demo.magic", uint32(DemoMagicEnd-DemoMagicStart)).
		Entry(DemoMagicCardTrick, "cardTrick", types.TYPE_DOUBLE).
		Entry(DemoMagicLevitation, "levitation", types.TYPE_FLOAT)

	return b.MustBuild()
}
