package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"recipe-exporter/core/storage"
	"recipe-exporter/feature/dump"
	"recipe-exporter/feature/tables"
)

const (
	// MetaFile is the run summary written next to the tables.
	MetaFile = "_meta.json"
	// PackageFile is the Frictionless data package descriptor.
	PackageFile = "datapackage.json"
)

// Meta is the content of _meta.json. Version tags are copied verbatim from
// the dump so identical input always yields identical bytes.
type Meta struct {
	GeneratedAt json.RawMessage `json:"generatedAt"`
	Minecraft   json.RawMessage `json:"minecraft"`
	Mod         json.RawMessage `json:"mod"`
	Maps        int             `json:"maps"`
	Recipes     int             `json:"recipes"`
}

// NewMeta summarizes a conversion.
func NewMeta(doc *dump.Document, t *tables.Tables) Meta {
	return Meta{
		GeneratedAt: doc.GeneratedAt,
		Minecraft:   doc.Minecraft,
		Mod:         doc.Mod,
		Maps:        len(t.RecipeMaps),
		Recipes:     len(t.Recipes),
	}
}

// Package is the content of datapackage.json.
type Package struct {
	Name        string          `json:"name"`
	Profile     string          `json:"profile"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Created     json.RawMessage `json:"created"`
	Resources   []Resource      `json:"resources"`
}

// Resource describes one table file inside the package.
type Resource struct {
	Name        string         `json:"name"`
	Path        string         `json:"path"`
	Profile     string         `json:"profile"`
	Format      string         `json:"format"`
	MediaType   string         `json:"mediatype"`
	Description string         `json:"description"`
	Schema      ResourceSchema `json:"schema"`
}

// ResourceSchema lists a resource's fields.
type ResourceSchema struct {
	Fields []Field `json:"fields"`
}

// NewPackage builds the package descriptor for all tables. created is the
// dump's generatedAt value and may be nil.
func NewPackage(created json.RawMessage) Package {
	resources := make([]Resource, 0, len(Schemas))
	for _, s := range Schemas {
		resources = append(resources, Resource{
			Name:        s.Name,
			Path:        s.Path(),
			Profile:     "tabular-data-resource",
			Format:      "parquet",
			MediaType:   "application/x-parquet",
			Description: s.Description,
			Schema:      ResourceSchema{Fields: s.Fields},
		})
	}

	return Package{
		Name:        "gtnh-recipe-extractor",
		Profile:     "tabular-data-package",
		Title:       "GTNH Recipe Extractor Parquet Outputs",
		Description: "Parquet outputs derived from GTNH RecipeMaps with schema annotations.",
		Created:     created,
		Resources:   resources,
	}
}

// WriteMeta writes _meta.json.
func WriteMeta(ctx context.Context, client storage.Client, meta Meta) error {
	return writeJSON(ctx, client, MetaFile, meta)
}

// WritePackage writes datapackage.json.
func WritePackage(ctx context.Context, client storage.Client, pkg Package) error {
	return writeJSON(ctx, client, PackageFile, pkg)
}

func writeJSON(ctx context.Context, client storage.Client, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	return client.Put(ctx, name, bytes.NewReader(data))
}
