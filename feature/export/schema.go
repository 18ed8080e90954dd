package export

import "recipe-exporter/feature/tables"

// Field types allowed in the data package manifest.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// Field describes one column of an output table.
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// TableSchema describes one output table.
type TableSchema struct {
	Name        string
	Description string
	Fields      []Field
}

// Path is the table's file name relative to the output directory.
func (s TableSchema) Path() string {
	return s.Name + ".parquet"
}

var (
	machineIDField      = Field{"machine_id", TypeString, "Machine or recipe source ID."}
	machineNameField    = Field{"display_name", TypeString, "Friendly machine name."}
	declaringFieldField = Field{"declaring_field", TypeString, "Declaring RecipeMaps field name."}
	recipeCountField    = Field{"recipe_count", TypeInteger, "Number of recipes in the map."}
	ridField            = Field{"rid", TypeString, "Recipe ID."}
)

func itemFields(output bool) []Field {
	fields := []Field{
		ridField,
		{"item_id", TypeString, "Item registry ID."},
		{"count", TypeInteger, "Item count per craft."},
		{"meta", TypeInteger, "Item metadata / damage value."},
	}
	if output {
		fields = append(fields, Field{"chance", TypeNumber, "Chance multiplier (0-1 typical) if available."})
	}
	return append(fields,
		Field{"display_name", TypeString, "Localized item name when available."},
		Field{"unlocalized_name", TypeString, "Unlocalized item name when available."},
	)
}

func fluidFields() []Field {
	return []Field{
		ridField,
		{"fluid_id", TypeString, "Fluid ID."},
		{"mb", TypeInteger, "Fluid amount in millibuckets."},
		{"is_gas", TypeBoolean, "True if fluid is gaseous; null if unknown."},
		{"display_name", TypeString, "Localized fluid name when available."},
		{"unlocalized_name", TypeString, "Unlocalized fluid name when available."},
	}
}

// Schemas lists every output table in write order. Field order matches the
// column order of the row types in the tables package.
var Schemas = []TableSchema{
	{
		Name:        tables.RecipeMapsTable,
		Description: "One row per recipe source (GregTech RecipeMaps + non-GT providers) with machine identity and counts.",
		Fields:      []Field{machineIDField, machineNameField, declaringFieldField, recipeCountField},
	},
	{
		Name:        tables.MachineIndexTable,
		Description: "Machine index merged from recipe sources and MetaTileEntities, including bonuses when available.",
		Fields: []Field{
			machineIDField,
			machineNameField,
			declaringFieldField,
			recipeCountField,
			{"meta_tile_id", TypeInteger, "GregTech MetaTileEntity ID."},
			{"meta_tile_name", TypeString, "MetaTileEntity internal name."},
			{"meta_tile_class", TypeString, "MetaTileEntity class name."},
			{"parallel_bonus", TypeNumber, "Parallel bonus multiplier when available."},
			{"max_parallel", TypeNumber, "Absolute max parallel operations when known; null when unknown."},
			{"coil_bonus", TypeNumber, "Coil-derived speed or energy bonus."},
			{"speed_bonus", TypeNumber, "Internal speed multiplier."},
			{"efficiency_bonus", TypeNumber, "Efficiency multiplier."},
			{"tooltip_derived", TypeBoolean, "True if any bonus was sourced from the tooltip."},
		},
	},
	{
		Name:        tables.RecipesTable,
		Description: "One row per recipe variant with power and duration metadata (non-GT values may be 0).",
		Fields: []Field{
			{"rid", TypeString, "Stable unique recipe ID."},
			{"machine_id", TypeString, "Machine or recipe source ID for this recipe."},
			{"recipe_class", TypeString, "Underlying Java class name."},
			{"duration_ticks", TypeInteger, "Recipe duration in ticks."},
			{"eut", TypeInteger, "EU per tick."},
			{"chance_scale", TypeInteger, "Chance scale for output chances."},
			{"output_chances_json", TypeString, "JSON array of output chance weights aligned to outputs."},
		},
	},
	{
		Name:        tables.ItemInputsTable,
		Description: "Normalized item inputs per recipe.",
		Fields:      itemFields(false),
	},
	{
		Name:        tables.ItemOutputsTable,
		Description: "Normalized item outputs per recipe.",
		Fields:      itemFields(true),
	},
	{
		Name:        tables.FluidInputsTable,
		Description: "Normalized fluid inputs per recipe.",
		Fields:      fluidFields(),
	},
	{
		Name:        tables.FluidOutputsTable,
		Description: "Normalized fluid outputs per recipe.",
		Fields:      fluidFields(),
	},
}
