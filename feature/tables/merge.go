package tables

import (
	"recipe-exporter/core/coerce"
	"recipe-exporter/feature/dump"
)

// MachineEntry is a machine index row before type coercion. Values other
// than the key and recipe count are still the raw JSON values, so "null"
// means "not known by any source yet".
type MachineEntry struct {
	MachineID      string
	DisplayName    any
	DeclaringField any
	// RecipeCount is only ever set from the recipe dump.
	RecipeCount *int64

	MetaTileID    any
	MetaTileName  any
	MetaTileClass any

	ParallelBonus   any
	MaxParallel     any
	CoilBonus       any
	SpeedBonus      any
	EfficiencyBonus any
	TooltipDerived  any
}

func seedEntry(m dump.RecipeMap, machineID *string, recipeCount int64) MachineEntry {
	e := MachineEntry{
		DisplayName:     m.DisplayName,
		DeclaringField:  m.DeclaringField,
		RecipeCount:     &recipeCount,
		ParallelBonus:   m.ParallelBonus,
		MaxParallel:     m.MaxParallel,
		CoilBonus:       m.CoilBonus,
		SpeedBonus:      m.SpeedBonus,
		EfficiencyBonus: m.EfficiencyBonus,
		TooltipDerived:  m.TooltipDerived,
	}
	if machineID != nil {
		e.MachineID = *machineID
	}
	return e
}

// Merge builds the machine index from the dump's machines and the metadata
// index. Entries keep insertion order: machines from the dump first, then
// machines only known to the metadata index.
//
// For a machine present in both, metadata fills the gaps:
//   - display name is replaced when metadata has a non-empty one
//   - bonuses and meta tile fields are taken only when still null
//   - tooltip_derived is raised to true, never lowered
//
// Entries without a machine id are dropped. A machine id repeated in the
// dump keeps its first position and the values of its last occurrence.
func Merge(seed []MachineEntry, metadata []dump.MachineMetadata) []MachineEntry {
	entries := make([]MachineEntry, 0, len(seed)+len(metadata))
	byID := make(map[string]int, len(seed)+len(metadata))

	for _, e := range seed {
		if e.MachineID == "" {
			continue
		}
		if i, ok := byID[e.MachineID]; ok {
			entries[i] = e
			continue
		}
		byID[e.MachineID] = len(entries)
		entries = append(entries, e)
	}

	for _, meta := range metadata {
		id := machineKey(meta.MachineID)
		if id == "" {
			continue
		}

		i, ok := byID[id]
		if !ok {
			i = len(entries)
			byID[id] = i
			entries = append(entries, MachineEntry{MachineID: id, DisplayName: meta.DisplayName})
		}
		fold(&entries[i], meta)
	}

	return entries
}

func fold(e *MachineEntry, meta dump.MachineMetadata) {
	if coerce.Truthy(meta.DisplayName) {
		e.DisplayName = meta.DisplayName
	}

	fillNull(&e.ParallelBonus, meta.ParallelBonus)
	fillNull(&e.MaxParallel, meta.MaxParallel)
	fillNull(&e.CoilBonus, meta.CoilBonus)
	fillNull(&e.SpeedBonus, meta.SpeedBonus)
	fillNull(&e.EfficiencyBonus, meta.EfficiencyBonus)

	if derived, ok := meta.TooltipDerived.(bool); ok && derived {
		e.TooltipDerived = true
	}

	fillNull(&e.MetaTileID, meta.MetaTileID)
	fillNull(&e.MetaTileName, meta.MetaTileName)
	fillNull(&e.MetaTileClass, meta.MetaTileClass)
}

func fillNull(dst *any, val any) {
	if *dst == nil && val != nil {
		*dst = val
	}
}

func machineKey(val any) string {
	if s := coerce.OptionalString(val); s != nil {
		return *s
	}
	return ""
}
