package tables

import "recipe-exporter/core/coerce"

// CoerceMachineIndex casts merged entries to their column types. Numeric
// identity and bonus columns that are missing or not numeric become null.
func CoerceMachineIndex(entries []MachineEntry) []MachineIndexRow {
	rows := make([]MachineIndexRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, MachineIndexRow{
			MachineID:       e.MachineID,
			DisplayName:     coerce.OptionalString(e.DisplayName),
			DeclaringField:  coerce.OptionalString(e.DeclaringField),
			RecipeCount:     e.RecipeCount,
			MetaTileID:      coerce.OptionalInt(e.MetaTileID),
			MetaTileName:    coerce.OptionalString(e.MetaTileName),
			MetaTileClass:   coerce.OptionalString(e.MetaTileClass),
			ParallelBonus:   coerce.OptionalFloat(e.ParallelBonus),
			MaxParallel:     coerce.OptionalFloat(e.MaxParallel),
			CoilBonus:       coerce.OptionalFloat(e.CoilBonus),
			SpeedBonus:      coerce.OptionalFloat(e.SpeedBonus),
			EfficiencyBonus: coerce.OptionalFloat(e.EfficiencyBonus),
			TooltipDerived:  coerce.OptionalBool(e.TooltipDerived),
		})
	}
	return rows
}
