package storage

// Config holds configuration for the output directory.
type Config struct {
	// Dir is the directory receiving the tables and manifests. Created if absent.
	Dir string `mapstructure:"dir" default:"/work/out/parquet" env:"PARQUET_OUT_DIR"`
}
