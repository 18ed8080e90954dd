package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"recipe-exporter/core/config"
	"recipe-exporter/core/storage"
	"recipe-exporter/core/storage/mocks"
	"recipe-exporter/feature/dump"
	"recipe-exporter/feature/tables"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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
				"durationTicks": 400,
				"eut": 2,
				"itemInputs": [{"id": "minecraft:iron_ore"}],
				"itemOutputs": [{"id": "gregtech:gt.metaitem.01", "count": 2, "meta": 2032}]
			},
			{
				"rid": "mac-2",
				"durationTicks": 200,
				"eut": 2,
				"itemInputs": [{"id": "minecraft:cobblestone", "count": 1}],
				"itemOutputs": [
					{"id": "minecraft:gravel", "count": 1},
					{"id": "minecraft:flint", "count": 1, "chance": 0.5}
				]
			}
		]
	}]
}`

type fixture struct {
	input config.InputConfig
	out   string
}

func newFixture(t *testing.T, recipes, machineIndex string) fixture {
	t.Helper()
	dir := t.TempDir()
	raw := filepath.Join(dir, "recipes.json")
	if recipes != "" {
		require.NoError(t, os.WriteFile(raw, []byte(recipes), 0o644))
	}
	if machineIndex != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "machine_index.json"), []byte(machineIndex), 0o644))
	}
	return fixture{
		input: config.InputConfig{RawJSONPath: raw},
		out:   filepath.Join(dir, "out"),
	}
}

func (f fixture) run(t *testing.T) (*Summary, error) {
	t.Helper()
	client, err := storage.NewClient(storage.Config{Dir: f.out})
	require.NoError(t, err)
	return NewService(client, f.input, zap.NewNop()).Run(context.Background())
}

func TestService_Run_Macerator(t *testing.T) {
	f := newFixture(t, maceratorDump, "")

	summary, err := f.run(t)
	require.NoError(t, err)
	assert.Equal(t, f.out, summary.Dir)
	assert.Equal(t, 1, summary.Meta.Maps)
	assert.Equal(t, 2, summary.Meta.Recipes)

	recipes, err := parquet.ReadFile[tables.RecipeRow](filepath.Join(f.out, "recipes.parquet"))
	require.NoError(t, err)
	assert.Len(t, recipes, 2)

	inputs, err := parquet.ReadFile[tables.ItemInputRow](filepath.Join(f.out, "item_inputs.parquet"))
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, int64(0), inputs[0].Count)
	assert.Equal(t, "mac-1", *inputs[0].RID)

	outputs, err := parquet.ReadFile[tables.ItemOutputRow](filepath.Join(f.out, "item_outputs.parquet"))
	require.NoError(t, err)
	require.Len(t, outputs, 3)
	assert.Nil(t, outputs[0].Chance)
	assert.Equal(t, 0.5, *outputs[2].Chance)

	meta, err := os.ReadFile(filepath.Join(f.out, MetaFile))
	require.NoError(t, err)
	assert.JSONEq(t, `{"generatedAt": "2025-06-01T12:00:00Z", "minecraft": "1.7.10", "mod": "2.7.2", "maps": 1, "recipes": 2}`, string(meta))

	_, err = os.Stat(filepath.Join(f.out, PackageFile))
	assert.NoError(t, err)
}

func TestService_Run_Idempotent(t *testing.T) {
	f := newFixture(t, maceratorDump, `{"machineIndex": [{"machineId": "gt.multi.macerator", "metaTileId": 1001}]}`)

	first, err := f.run(t)
	require.NoError(t, err)
	firstMeta, err := os.ReadFile(filepath.Join(f.out, MetaFile))
	require.NoError(t, err)
	firstPkg, err := os.ReadFile(filepath.Join(f.out, PackageFile))
	require.NoError(t, err)

	second, err := f.run(t)
	require.NoError(t, err)
	secondMeta, err := os.ReadFile(filepath.Join(f.out, MetaFile))
	require.NoError(t, err)
	secondPkg, err := os.ReadFile(filepath.Join(f.out, PackageFile))
	require.NoError(t, err)

	assert.Equal(t, firstMeta, secondMeta)
	assert.Equal(t, firstPkg, secondPkg)
	assert.Equal(t, first.Counts, second.Counts)
}

func TestService_Run_MachineIndex(t *testing.T) {
	f := newFixture(t, maceratorDump, `[
		{"machineId": "gt.multi.macerator", "displayName": "Industrial Macerator", "metaTileId": 1001, "parallelBonus": 2.5},
		{"machineId": "gt.multi.ebf", "metaTileId": 1000, "tooltipDerived": true}
	]`)

	_, err := f.run(t)
	require.NoError(t, err)

	rows, err := parquet.ReadFile[tables.MachineIndexRow](filepath.Join(f.out, "machine_index.parquet"))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "gt.multi.macerator", rows[0].MachineID)
	assert.Equal(t, "Industrial Macerator", *rows[0].DisplayName)
	assert.Equal(t, int64(2), *rows[0].RecipeCount)
	assert.Equal(t, int64(1001), *rows[0].MetaTileID)
	assert.Equal(t, 2.5, *rows[0].ParallelBonus)

	assert.Equal(t, "gt.multi.ebf", rows[1].MachineID)
	assert.Nil(t, rows[1].RecipeCount)
	assert.True(t, *rows[1].TooltipDerived)
}

func TestService_Run_MissingInput(t *testing.T) {
	f := newFixture(t, "", "")

	_, err := f.run(t)
	var missing *dump.MissingInputError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, f.input.RawJSONPath, missing.Path)

	_, statErr := os.Stat(f.out)
	assert.True(t, os.IsNotExist(statErr), "output directory must not be created")
}

func TestService_Run_MalformedMachineIndex(t *testing.T) {
	f := newFixture(t, maceratorDump, `{"machineIndex": [`)
	_, err := f.run(t)
	assert.Error(t, err)
}

func TestService_Run_StorageFailure(t *testing.T) {
	f := newFixture(t, maceratorDump, "")
	client := new(mocks.Client)
	boom := errors.New("read-only file system")
	client.On("Prepare", mock.Anything).Return(boom)

	_, err := NewService(client, f.input, zap.NewNop()).Run(context.Background())
	assert.ErrorIs(t, err, boom)
	client.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Run_Canceled(t *testing.T) {
	f := newFixture(t, maceratorDump, "")
	client, err := storage.NewClient(storage.Config{Dir: f.out})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewService(client, f.input, zap.NewNop()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInspect(t *testing.T) {
	f := newFixture(t, maceratorDump, "")
	_, err := f.run(t)
	require.NoError(t, err)

	client, err := storage.NewClient(storage.Config{Dir: f.out})
	require.NoError(t, err)

	result, err := Inspect(context.Background(), client)
	require.NoError(t, err)
	assert.Empty(t, result.Mismatch)
	assert.Equal(t, []tables.Count{
		{Table: "recipe_maps", Rows: 1},
		{Table: "machine_index", Rows: 1},
		{Table: "recipes", Rows: 2},
		{Table: "item_inputs", Rows: 2},
		{Table: "item_outputs", Rows: 3},
		{Table: "fluid_inputs", Rows: 0},
		{Table: "fluid_outputs", Rows: 0},
	}, result.Counts)

	t.Run("DetectsStaleMeta", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(f.out, MetaFile), []byte(`{"maps": 1, "recipes": 5}`), 0o644))
		result, err := Inspect(context.Background(), client)
		require.NoError(t, err)
		assert.Equal(t, []string{"recipes: meta=5 file=2"}, result.Mismatch)
	})

	t.Run("MissingTable", func(t *testing.T) {
		require.NoError(t, os.Remove(filepath.Join(f.out, "fluid_outputs.parquet")))
		_, err := Inspect(context.Background(), client)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
