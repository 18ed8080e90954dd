package config

import "path/filepath"

// MachineIndexFileName is the conventional name of the machine index written next to the dump.
const MachineIndexFileName = "machine_index.json"

// InputConfig holds the locations of the JSON documents produced by the recipe dumper.
type InputConfig struct {
	// RawJSONPath is the primary recipe dump.
	RawJSONPath string `mapstructure:"raw_json_path" default:"/work/server/config/recipedumper/recipes.json" env:"RAW_JSON_PATH"`
	// MachineIndexJSONPath is the optional machine metadata index.
	// Empty means "machine_index.json next to the recipe dump".
	MachineIndexJSONPath string `mapstructure:"machine_index_json_path" default:"" env:"MACHINE_INDEX_JSON_PATH"`
	// Lenient accepts comments and trailing commas in both documents.
	Lenient bool `mapstructure:"lenient" default:"false"`
}

// MachineIndexPath returns the configured machine index path, falling back
// to the sibling of the recipe dump.
func (c InputConfig) MachineIndexPath() string {
	if c.MachineIndexJSONPath != "" {
		return c.MachineIndexJSONPath
	}
	return filepath.Join(filepath.Dir(c.RawJSONPath), MachineIndexFileName)
}
