// Package export writes converted recipe tables to the output directory.
//
// # Outputs
//
//   - <table>.parquet for each of the seven tables, zstd compressed.
//   - _meta.json: dump version tags plus machine and recipe counts.
//   - datapackage.json: a tabular data package describing every table's fields.
//
// The Service ties the pipeline together: load (dump package), flatten,
// merge and coerce (tables package), then write. Inspect reads a finished
// directory back and checks it against _meta.json.
//
// # Usage
//
//	svc := export.NewService(client, cfg.Input, logger)
//	summary, err := svc.Run(ctx)
package export
