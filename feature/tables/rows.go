package tables

// Table names, also the base names of the output files.
const (
	RecipeMapsTable   = "recipe_maps"
	MachineIndexTable = "machine_index"
	RecipesTable      = "recipes"
	ItemInputsTable   = "item_inputs"
	ItemOutputsTable  = "item_outputs"
	FluidInputsTable  = "fluid_inputs"
	FluidOutputsTable = "fluid_outputs"
)

// RecipeMapRow is one recipe source (machine) as declared in the dump.
type RecipeMapRow struct {
	MachineID      *string `parquet:"machine_id"`
	DisplayName    *string `parquet:"display_name"`
	DeclaringField *string `parquet:"declaring_field"`
	RecipeCount    int64   `parquet:"recipe_count"`
}

// MachineIndexRow is a machine after merging the dump with machine_index.json.
type MachineIndexRow struct {
	MachineID       string   `parquet:"machine_id"`
	DisplayName     *string  `parquet:"display_name"`
	DeclaringField  *string  `parquet:"declaring_field"`
	RecipeCount     *int64   `parquet:"recipe_count"`
	MetaTileID      *int64   `parquet:"meta_tile_id"`
	MetaTileName    *string  `parquet:"meta_tile_name"`
	MetaTileClass   *string  `parquet:"meta_tile_class"`
	ParallelBonus   *float64 `parquet:"parallel_bonus"`
	MaxParallel     *float64 `parquet:"max_parallel"`
	CoilBonus       *float64 `parquet:"coil_bonus"`
	SpeedBonus      *float64 `parquet:"speed_bonus"`
	EfficiencyBonus *float64 `parquet:"efficiency_bonus"`
	TooltipDerived  *bool    `parquet:"tooltip_derived"`
}

// RecipeRow is one recipe variant.
type RecipeRow struct {
	RID               *string `parquet:"rid"`
	MachineID         *string `parquet:"machine_id"`
	RecipeClass       *string `parquet:"recipe_class"`
	DurationTicks     int64   `parquet:"duration_ticks"`
	EUt               int64   `parquet:"eut"`
	ChanceScale       *int64  `parquet:"chance_scale"`
	OutputChancesJSON *string `parquet:"output_chances_json"`
}

// ItemInputRow is one item consumed by a recipe.
type ItemInputRow struct {
	RID             *string `parquet:"rid"`
	ItemID          *string `parquet:"item_id"`
	Count           int64   `parquet:"count"`
	Meta            int64   `parquet:"meta"`
	DisplayName     *string `parquet:"display_name"`
	UnlocalizedName *string `parquet:"unlocalized_name"`
}

// ItemOutputRow is one item produced by a recipe.
type ItemOutputRow struct {
	RID             *string  `parquet:"rid"`
	ItemID          *string  `parquet:"item_id"`
	Count           int64    `parquet:"count"`
	Meta            int64    `parquet:"meta"`
	Chance          *float64 `parquet:"chance"`
	DisplayName     *string  `parquet:"display_name"`
	UnlocalizedName *string  `parquet:"unlocalized_name"`
}

// FluidRow is one fluid consumed or produced by a recipe.
type FluidRow struct {
	RID             *string `parquet:"rid"`
	FluidID         *string `parquet:"fluid_id"`
	MB              int64   `parquet:"mb"`
	IsGas           *bool   `parquet:"is_gas"`
	DisplayName     *string `parquet:"display_name"`
	UnlocalizedName *string `parquet:"unlocalized_name"`
}

// Tables holds the seven row sets of one conversion, in construction order.
type Tables struct {
	RecipeMaps   []RecipeMapRow
	MachineIndex []MachineIndexRow
	Recipes      []RecipeRow
	ItemInputs   []ItemInputRow
	ItemOutputs  []ItemOutputRow
	FluidInputs  []FluidRow
	FluidOutputs []FluidRow
}

// Count is the number of rows in one table.
type Count struct {
	Table string `json:"table"`
	Rows  int    `json:"rows"`
}

// Counts returns the row count of every table in output order.
func (t *Tables) Counts() []Count {
	return []Count{
		{RecipeMapsTable, len(t.RecipeMaps)},
		{MachineIndexTable, len(t.MachineIndex)},
		{RecipesTable, len(t.Recipes)},
		{ItemInputsTable, len(t.ItemInputs)},
		{ItemOutputsTable, len(t.ItemOutputs)},
		{FluidInputsTable, len(t.FluidInputs)},
		{FluidOutputsTable, len(t.FluidOutputs)},
	}
}
