package tables

import (
	"testing"

	"recipe-exporter/feature/dump"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string   { return &s }
func i64(i int64) *int64     { return &i }
func f64(f float64) *float64 { return &f }
func boolean(b bool) *bool   { return &b }

func parseDoc(t *testing.T, data string) *dump.Document {
	t.Helper()
	doc, err := dump.ParseDocument([]byte(data), dump.Options{})
	require.NoError(t, err)
	return doc
}

const maceratorDump = `{
	"generatedAt": "2025-06-01T12:00:00Z",
	"minecraft": "1.7.10",
	"mod": "2.7.2",
	"recipeMaps": [{
		"machineId": "gt.multi.macerator",
		"displayName": "Macerator",
		"declaringField": "maceratorRecipes",
		"recipeCount": 2,
		"recipes": [
			{
				"rid": "mac-1",
				"recipeClass": "gregtech.api.util.GTRecipe",
				"durationTicks": 400,
				"eut": 2,
				"chanceScale": 10000,
				"outputChances": [10000, 5000],
				"itemInputs": [{"id": "minecraft:iron_ore", "meta": 0}],
				"itemOutputs": [
					{"id": "gregtech:gt.metaitem.01", "count": 2, "meta": 2032, "displayName": "Crushed Iron Ore"},
					{"id": "gregtech:gt.metaitem.01", "count": 1, "meta": 1032, "chance": 0.5}
				]
			},
			{
				"rid": "mac-2",
				"durationTicks": null,
				"eut": -16,
				"itemInputs": [{"id": "minecraft:cobblestone", "count": 1}],
				"fluidInputs": [{"id": "water", "mb": 1000, "isGas": false}],
				"fluidOutputs": [{"id": "steam", "isGas": true, "unlocalizedName": "fluid.steam"}, {"id": "mystery"}]
			}
		]
	}]
}`

func TestFlatten_Macerator(t *testing.T) {
	f := Flatten(parseDoc(t, maceratorDump))

	wantMaps := []RecipeMapRow{{
		MachineID:      str("gt.multi.macerator"),
		DisplayName:    str("Macerator"),
		DeclaringField: str("maceratorRecipes"),
		RecipeCount:    2,
	}}
	assert.Empty(t, cmp.Diff(wantMaps, f.RecipeMaps))

	wantRecipes := []RecipeRow{
		{
			RID:               str("mac-1"),
			MachineID:         str("gt.multi.macerator"),
			RecipeClass:       str("gregtech.api.util.GTRecipe"),
			DurationTicks:     400,
			EUt:               2,
			ChanceScale:       i64(10000),
			OutputChancesJSON: str("[10000,5000]"),
		},
		{
			RID:       str("mac-2"),
			MachineID: str("gt.multi.macerator"),
			EUt:       -16,
		},
	}
	assert.Empty(t, cmp.Diff(wantRecipes, f.Recipes))

	wantInputs := []ItemInputRow{
		{RID: str("mac-1"), ItemID: str("minecraft:iron_ore"), Count: 0, Meta: 0},
		{RID: str("mac-2"), ItemID: str("minecraft:cobblestone"), Count: 1},
	}
	assert.Empty(t, cmp.Diff(wantInputs, f.ItemInputs))

	wantOutputs := []ItemOutputRow{
		{RID: str("mac-1"), ItemID: str("gregtech:gt.metaitem.01"), Count: 2, Meta: 2032, DisplayName: str("Crushed Iron Ore")},
		{RID: str("mac-1"), ItemID: str("gregtech:gt.metaitem.01"), Count: 1, Meta: 1032, Chance: f64(0.5)},
	}
	assert.Empty(t, cmp.Diff(wantOutputs, f.ItemOutputs))

	wantFluidIn := []FluidRow{{RID: str("mac-2"), FluidID: str("water"), MB: 1000, IsGas: boolean(false)}}
	assert.Empty(t, cmp.Diff(wantFluidIn, f.FluidInputs))

	wantFluidOut := []FluidRow{
		{RID: str("mac-2"), FluidID: str("steam"), IsGas: boolean(true), UnlocalizedName: str("fluid.steam")},
		{RID: str("mac-2"), FluidID: str("mystery")},
	}
	assert.Empty(t, cmp.Diff(wantFluidOut, f.FluidOutputs))
}

func TestFlatten_RowCountsMatchSources(t *testing.T) {
	doc := parseDoc(t, maceratorDump)
	f := Flatten(doc)

	countBy := func(rids []*string) map[string]int {
		out := make(map[string]int)
		for _, rid := range rids {
			out[*rid]++
		}
		return out
	}

	var in, out, fin, fout []*string
	for _, r := range f.ItemInputs {
		in = append(in, r.RID)
	}
	for _, r := range f.ItemOutputs {
		out = append(out, r.RID)
	}
	for _, r := range f.FluidInputs {
		fin = append(fin, r.RID)
	}
	for _, r := range f.FluidOutputs {
		fout = append(fout, r.RID)
	}

	for _, r := range doc.RecipeMaps[0].Recipes {
		rid := r.RID.(string)
		assert.Equal(t, len(r.ItemInputs), countBy(in)[rid], rid)
		assert.Equal(t, len(r.ItemOutputs), countBy(out)[rid], rid)
		assert.Equal(t, len(r.FluidInputs), countBy(fin)[rid], rid)
		assert.Equal(t, len(r.FluidOutputs), countBy(fout)[rid], rid)
	}
}

func TestFlatten_Seeds(t *testing.T) {
	f := Flatten(parseDoc(t, `{"recipeMaps": [
		{"machineId": "a", "recipeCount": "3", "parallelBonus": 1.0, "tooltipDerived": false},
		{"displayName": "No id"}
	]}`))

	require.Len(t, f.Machines, 2)
	assert.Equal(t, "a", f.Machines[0].MachineID)
	assert.Equal(t, int64(3), *f.Machines[0].RecipeCount)
	assert.NotNil(t, f.Machines[0].ParallelBonus)
	assert.Equal(t, false, f.Machines[0].TooltipDerived)
	assert.Nil(t, f.Machines[0].MetaTileID)

	assert.Equal(t, "", f.Machines[1].MachineID)
	assert.Equal(t, int64(0), *f.Machines[1].RecipeCount)
	assert.Nil(t, f.RecipeMaps[1].MachineID)
}

func TestFlatten_EmptyDocument(t *testing.T) {
	f := Flatten(parseDoc(t, `{}`))
	tables := f.Tables(nil)
	for _, c := range tables.Counts() {
		assert.Zero(t, c.Rows, c.Table)
	}
}

func TestOutputChancesJSON(t *testing.T) {
	assert.Nil(t, outputChancesJSON(nil))
	assert.Nil(t, outputChancesJSON([]byte(" null ")))
	assert.Equal(t, "[]", *outputChancesJSON([]byte("[ ]")))
	assert.Equal(t, "[1.0,0.25,7500]", *outputChancesJSON([]byte("[1.0, 0.25,\n 7500]")))
}

func TestDuplicateRIDs(t *testing.T) {
	rows := []RecipeRow{{RID: str("a")}, {RID: str("b")}, {RID: nil}, {RID: str("a")}, {RID: nil}, {RID: str("a")}}
	assert.Equal(t, []string{"a"}, DuplicateRIDs(rows))
	assert.Empty(t, DuplicateRIDs(rows[:3]))
}

func TestTables_Counts(t *testing.T) {
	tables := &Tables{
		RecipeMaps:  make([]RecipeMapRow, 1),
		Recipes:     make([]RecipeRow, 2),
		ItemOutputs: make([]ItemOutputRow, 3),
	}

	want := []Count{
		{RecipeMapsTable, 1},
		{MachineIndexTable, 0},
		{RecipesTable, 2},
		{ItemInputsTable, 0},
		{ItemOutputsTable, 3},
		{FluidInputsTable, 0},
		{FluidOutputsTable, 0},
	}
	assert.Equal(t, want, tables.Counts())
}
