// Package config provides configuration management for the recipe exporter.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live in 'default' struct tags next to each field.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Input: recipe dump and machine index locations (INPUT_RAW_JSON_PATH, ...)
//   - Output: directory receiving the Parquet tables and manifests (OUTPUT_DIR)
//   - Log: Logging level and format (LOG_LEVEL, LOG_FORMAT)
//
// # Legacy Variables
//
// Fields with an 'env' tag also answer to a flat variable name, so the
// variables used by the dumper container keep working:
//
//	RAW_JSON_PATH            -> input.raw_json_path
//	MACHINE_INDEX_JSON_PATH  -> input.machine_index_json_path
//	PARQUET_OUT_DIR          -> output.dir
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Input.MachineIndexPath())
package config
