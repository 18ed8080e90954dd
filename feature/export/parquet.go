package export

import (
	"bytes"
	"context"
	"fmt"

	"recipe-exporter/core/storage"
	"recipe-exporter/feature/tables"

	"github.com/parquet-go/parquet-go"
)

// WriteTables writes every row set to <table>.parquet, zstd compressed,
// rows in construction order. Empty row sets still produce a file with the
// table's schema.
func WriteTables(ctx context.Context, client storage.Client, t *tables.Tables) error {
	if err := writeTable(ctx, client, tables.RecipeMapsTable, t.RecipeMaps); err != nil {
		return err
	}
	if err := writeTable(ctx, client, tables.MachineIndexTable, t.MachineIndex); err != nil {
		return err
	}
	if err := writeTable(ctx, client, tables.RecipesTable, t.Recipes); err != nil {
		return err
	}
	if err := writeTable(ctx, client, tables.ItemInputsTable, t.ItemInputs); err != nil {
		return err
	}
	if err := writeTable(ctx, client, tables.ItemOutputsTable, t.ItemOutputs); err != nil {
		return err
	}
	if err := writeTable(ctx, client, tables.FluidInputsTable, t.FluidInputs); err != nil {
		return err
	}
	return writeTable(ctx, client, tables.FluidOutputsTable, t.FluidOutputs)
}

func writeTable[T any](ctx context.Context, client storage.Client, name string, rows []T) error {
	data, err := encodeTable(rows)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return client.Put(ctx, name+".parquet", bytes.NewReader(data))
}

func encodeTable[T any](rows []T) ([]byte, error) {
	var buf bytes.Buffer
	w := parquet.NewGenericWriter[T](&buf, parquet.Compression(&parquet.Zstd))
	if len(rows) > 0 {
		if _, err := w.Write(rows); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
