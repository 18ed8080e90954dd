// Package coerce converts loosely typed JSON values into column values.
//
// Two rules exist and every column uses exactly one of them:
//   - Zero rule (IntOrZero): quantities such as counts, millibuckets, durations
//     and EU/t. Missing, null or unparsable values become 0.
//   - Null rule (OptionalInt, OptionalFloat, OptionalString, OptionalBool):
//     identities, bonuses and flags. Missing or unparsable values stay nil.
//
// Inputs are the values produced by encoding/json with UseNumber, so numbers
// usually arrive as json.Number.
package coerce
