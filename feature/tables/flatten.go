package tables

import (
	"bytes"
	"encoding/json"

	"recipe-exporter/core/coerce"
	"recipe-exporter/feature/dump"
)

// Flattened is the output of Flatten: every table except the machine index,
// plus the machine entries that seed the merge.
type Flattened struct {
	RecipeMaps   []RecipeMapRow
	Machines     []MachineEntry
	Recipes      []RecipeRow
	ItemInputs   []ItemInputRow
	ItemOutputs  []ItemOutputRow
	FluidInputs  []FluidRow
	FluidOutputs []FluidRow
}

// Flatten walks recipeMaps[*].recipes[*] depth first and emits one row per
// machine, recipe and stack. Stack rows carry their recipe's rid.
func Flatten(doc *dump.Document) *Flattened {
	f := &Flattened{}

	for _, m := range doc.RecipeMaps {
		machineID := coerce.OptionalString(m.MachineID)
		recipeCount := coerce.IntOrZero(m.RecipeCount)

		f.RecipeMaps = append(f.RecipeMaps, RecipeMapRow{
			MachineID:      machineID,
			DisplayName:    coerce.OptionalString(m.DisplayName),
			DeclaringField: coerce.OptionalString(m.DeclaringField),
			RecipeCount:    recipeCount,
		})
		f.Machines = append(f.Machines, seedEntry(m, machineID, recipeCount))

		for _, r := range m.Recipes {
			f.addRecipe(machineID, r)
		}
	}

	return f
}

// Tables combines the flattened row sets with the coerced machine index.
func (f *Flattened) Tables(machineIndex []MachineIndexRow) *Tables {
	return &Tables{
		RecipeMaps:   f.RecipeMaps,
		MachineIndex: machineIndex,
		Recipes:      f.Recipes,
		ItemInputs:   f.ItemInputs,
		ItemOutputs:  f.ItemOutputs,
		FluidInputs:  f.FluidInputs,
		FluidOutputs: f.FluidOutputs,
	}
}

func (f *Flattened) addRecipe(machineID *string, r dump.Recipe) {
	rid := coerce.OptionalString(r.RID)

	f.Recipes = append(f.Recipes, RecipeRow{
		RID:               rid,
		MachineID:         machineID,
		RecipeClass:       coerce.OptionalString(r.RecipeClass),
		DurationTicks:     coerce.IntOrZero(r.DurationTicks),
		EUt:               coerce.IntOrZero(r.EUt),
		ChanceScale:       coerce.OptionalInt(r.ChanceScale),
		OutputChancesJSON: outputChancesJSON(r.OutputChances),
	})

	for _, s := range r.ItemInputs {
		f.ItemInputs = append(f.ItemInputs, ItemInputRow{
			RID:             rid,
			ItemID:          coerce.OptionalString(s.ID),
			Count:           coerce.IntOrZero(s.Count),
			Meta:            coerce.IntOrZero(s.Meta),
			DisplayName:     coerce.OptionalString(s.DisplayName),
			UnlocalizedName: coerce.OptionalString(s.UnlocalizedName),
		})
	}

	for _, s := range r.ItemOutputs {
		f.ItemOutputs = append(f.ItemOutputs, ItemOutputRow{
			RID:             rid,
			ItemID:          coerce.OptionalString(s.ID),
			Count:           coerce.IntOrZero(s.Count),
			Meta:            coerce.IntOrZero(s.Meta),
			Chance:          coerce.OptionalFloat(s.Chance),
			DisplayName:     coerce.OptionalString(s.DisplayName),
			UnlocalizedName: coerce.OptionalString(s.UnlocalizedName),
		})
	}

	for _, s := range r.FluidInputs {
		f.FluidInputs = append(f.FluidInputs, fluidRow(rid, s))
	}
	for _, s := range r.FluidOutputs {
		f.FluidOutputs = append(f.FluidOutputs, fluidRow(rid, s))
	}
}

func fluidRow(rid *string, s dump.FluidStack) FluidRow {
	return FluidRow{
		RID:             rid,
		FluidID:         coerce.OptionalString(s.ID),
		MB:              coerce.IntOrZero(s.MB),
		IsGas:           coerce.OptionalBool(s.IsGas),
		DisplayName:     coerce.OptionalString(s.DisplayName),
		UnlocalizedName: coerce.OptionalString(s.UnlocalizedName),
	}
}

// outputChancesJSON keeps the chance array as compact JSON text, number
// literals untouched. Null or absent stays null.
func outputChancesJSON(raw json.RawMessage) *string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		s := string(trimmed)
		return &s
	}
	s := buf.String()
	return &s
}

// DuplicateRIDs returns recipe ids that occur more than once, in order of
// their second occurrence. Null ids are ignored.
func DuplicateRIDs(recipes []RecipeRow) []string {
	seen := make(map[string]int, len(recipes))
	var dups []string
	for _, r := range recipes {
		if r.RID == nil {
			continue
		}
		seen[*r.RID]++
		if seen[*r.RID] == 2 {
			dups = append(dups, *r.RID)
		}
	}
	return dups
}
