package dump

import "encoding/json"

// Document is the root of recipes.json as written by the recipe dumper.
// Scalar fields stay loosely typed (json.Number, string, bool or nil) until
// the flattener coerces them column by column.
type Document struct {
	GeneratedAt json.RawMessage `json:"generatedAt"`
	Minecraft   json.RawMessage `json:"minecraft"`
	Mod         json.RawMessage `json:"mod"`
	RecipeMaps  []RecipeMap     `json:"recipeMaps"`
}

// RecipeMap is one recipe source (a machine) and its recipes.
type RecipeMap struct {
	MachineID       any      `json:"machineId"`
	DisplayName     any      `json:"displayName"`
	DeclaringField  any      `json:"declaringField"`
	RecipeCount     any      `json:"recipeCount"`
	ParallelBonus   any      `json:"parallelBonus"`
	MaxParallel     any      `json:"maxParallel"`
	CoilBonus       any      `json:"coilBonus"`
	SpeedBonus      any      `json:"speedBonus"`
	EfficiencyBonus any      `json:"efficiencyBonus"`
	TooltipDerived  any      `json:"tooltipDerived"`
	Recipes         []Recipe `json:"recipes"`
}

// Recipe is a single recipe variant.
type Recipe struct {
	RID           any             `json:"rid"`
	RecipeClass   any             `json:"recipeClass"`
	DurationTicks any             `json:"durationTicks"`
	EUt           any             `json:"eut"`
	ChanceScale   any             `json:"chanceScale"`
	OutputChances json.RawMessage `json:"outputChances"`
	ItemInputs    []ItemStack     `json:"itemInputs"`
	ItemOutputs   []ItemStack     `json:"itemOutputs"`
	FluidInputs   []FluidStack    `json:"fluidInputs"`
	FluidOutputs  []FluidStack    `json:"fluidOutputs"`
}

// ItemStack is an item ingredient or result. Chance is only set on outputs.
type ItemStack struct {
	ID              any `json:"id"`
	Count           any `json:"count"`
	Meta            any `json:"meta"`
	Chance          any `json:"chance"`
	DisplayName     any `json:"displayName"`
	UnlocalizedName any `json:"unlocalizedName"`
}

// FluidStack is a fluid ingredient or result.
type FluidStack struct {
	ID              any `json:"id"`
	MB              any `json:"mb"`
	IsGas           any `json:"isGas"`
	DisplayName     any `json:"displayName"`
	UnlocalizedName any `json:"unlocalizedName"`
}

// MachineMetadata is one entry of machine_index.json, describing the
// MetaTileEntity behind a machine and any bonuses read from it.
type MachineMetadata struct {
	MachineID       any `json:"machineId"`
	DisplayName     any `json:"displayName"`
	MetaTileID      any `json:"metaTileId"`
	MetaTileName    any `json:"metaTileName"`
	MetaTileClass   any `json:"metaTileClass"`
	ParallelBonus   any `json:"parallelBonus"`
	MaxParallel     any `json:"maxParallel"`
	CoilBonus       any `json:"coilBonus"`
	SpeedBonus      any `json:"speedBonus"`
	EfficiencyBonus any `json:"efficiencyBonus"`
	TooltipDerived  any `json:"tooltipDerived"`
}
