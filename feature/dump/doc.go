// Package dump loads the JSON documents written by the in-game recipe dumper.
//
// Two documents are read:
//   - recipes.json (required): machines, their recipes and ingredient lists.
//   - machine_index.json (optional): MetaTileEntity metadata and bonuses per machine.
//     It may be a bare array or an object with a "machineIndex" array; both are
//     resolved into one MachineIndex at load time.
//
// Values are kept loosely typed; column types are decided later by the
// tables package.
package dump
