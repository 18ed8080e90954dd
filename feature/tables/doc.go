// Package tables turns a loaded recipe dump into the seven output row sets.
//
// # Pipeline
//
//   - Flatten: recipeMaps -> recipe_maps, recipes, item_inputs, item_outputs,
//     fluid_inputs, fluid_outputs, plus machine entries seeding the index.
//   - Merge: machine entries + machine_index.json -> one entry per machine id.
//   - CoerceMachineIndex: merged entries -> typed machine_index rows.
//
// Quantity columns (counts, mb, durations, eut, recipe_count, meta) default
// to 0. Everything else that is missing stays null.
package tables
