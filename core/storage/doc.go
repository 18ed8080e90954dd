// Package storage provides the output location for generated tables.
//
// The Client interface abstracts where objects land so the export pipeline
// can be tested against a mock (see core/storage/mocks). The default client
// writes into a local directory and replaces every object atomically with
// natefinch/atomic: each run fully overwrites the previous snapshot and an
// interrupted run leaves either the old or the new file, never a partial one.
//
// # Operations
//
//   - Prepare: Creates the output directory if needed.
//   - Put: Replaces an object with new content.
//   - Get: Opens an object for reading (used by the inspect command).
//
// # Usage
//
//	client, err := storage.NewClient(storage.Config{Dir: "/work/out/parquet"})
//	err = client.Prepare(ctx)
//	err = client.Put(ctx, "recipes.parquet", buf)
package storage
