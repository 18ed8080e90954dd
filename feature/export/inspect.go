package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"recipe-exporter/core/storage"
	"recipe-exporter/feature/tables"

	"github.com/parquet-go/parquet-go"
)

// Inspection is the result of reading a finished output directory back.
type Inspection struct {
	Dir    string
	Meta   Meta
	Counts []tables.Count
	// Mismatch lists disagreements between _meta.json and the table files.
	Mismatch []string
}

// Inspect opens every table file and compares its row count with _meta.json.
func Inspect(ctx context.Context, client storage.Client) (*Inspection, error) {
	result := &Inspection{Dir: client.Location()}

	metaData, err := readObject(ctx, client, MetaFile)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(metaData, &result.Meta); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", MetaFile, err)
	}

	rows := make(map[string]int, len(Schemas))
	for _, s := range Schemas {
		data, err := readObject(ctx, client, s.Path())
		if err != nil {
			return nil, err
		}
		f, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", s.Path(), err)
		}

		n := int(f.NumRows())
		rows[s.Name] = n
		result.Counts = append(result.Counts, tables.Count{Table: s.Name, Rows: n})

		if missing := missingColumns(f.Schema(), s); len(missing) > 0 {
			result.Mismatch = append(result.Mismatch, fmt.Sprintf("%s: missing columns %v", s.Name, missing))
		}
	}

	if n := rows[tables.RecipeMapsTable]; n != result.Meta.Maps {
		result.Mismatch = append(result.Mismatch, fmt.Sprintf("maps: meta=%d file=%d", result.Meta.Maps, n))
	}
	if n := rows[tables.RecipesTable]; n != result.Meta.Recipes {
		result.Mismatch = append(result.Mismatch, fmt.Sprintf("recipes: meta=%d file=%d", result.Meta.Recipes, n))
	}

	return result, nil
}

func missingColumns(schema *parquet.Schema, s TableSchema) []string {
	present := make(map[string]bool)
	for _, f := range schema.Fields() {
		present[f.Name()] = true
	}

	var missing []string
	for _, f := range s.Fields {
		if !present[f.Name] {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

func readObject(ctx context.Context, client storage.Client, name string) ([]byte, error) {
	rc, err := client.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
