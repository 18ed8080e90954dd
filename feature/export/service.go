package export

import (
	"context"
	"time"

	"recipe-exporter/core/config"
	"recipe-exporter/core/storage"
	"recipe-exporter/feature/dump"
	"recipe-exporter/feature/tables"

	"go.uber.org/zap"
)

// Summary describes a finished conversion.
type Summary struct {
	Dir      string
	Meta     Meta
	Counts   []tables.Count
	Duration time.Duration
}

// Service runs the conversion pipeline.
type Service struct {
	client storage.Client
	input  config.InputConfig
	logger *zap.Logger
}

// NewService creates a new export service.
func NewService(client storage.Client, input config.InputConfig, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		input:  input,
		logger: logger,
	}
}

// Run loads the dump and machine index, builds all tables and writes them
// together with _meta.json and datapackage.json. Previous output is overwritten.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	opts := dump.Options{Lenient: s.input.Lenient}

	doc, err := dump.LoadDocument(s.input.RawJSONPath, opts)
	if err != nil {
		return nil, err
	}

	indexPath := s.input.MachineIndexPath()
	index, err := dump.LoadMachineIndex(indexPath, opts)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Loaded recipe dump",
		zap.String("path", s.input.RawJSONPath),
		zap.Int("recipe_maps", len(doc.RecipeMaps)),
		zap.String("machine_index", indexPath),
		zap.Stringer("machine_index_shape", index.Shape),
		zap.Int("machine_index_entries", len(index.Machines)),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	flat := tables.Flatten(doc)
	if dups := tables.DuplicateRIDs(flat.Recipes); len(dups) > 0 {
		sample := dups
		if len(sample) > 10 {
			sample = sample[:10]
		}
		s.logger.Warn("Duplicate recipe ids in dump", zap.Int("count", len(dups)), zap.Strings("sample", sample))
	}

	merged := tables.Merge(flat.Machines, index.Machines)
	out := flat.Tables(tables.CoerceMachineIndex(merged))

	s.logger.Debug("Built tables",
		zap.Int("machines_from_dump", len(flat.RecipeMaps)),
		zap.Int("machines_indexed", len(out.MachineIndex)),
	)

	if err := s.client.Prepare(ctx); err != nil {
		return nil, err
	}
	if err := WriteTables(ctx, s.client, out); err != nil {
		return nil, err
	}

	meta := NewMeta(doc, out)
	if err := WriteMeta(ctx, s.client, meta); err != nil {
		return nil, err
	}
	if err := WritePackage(ctx, s.client, NewPackage(doc.GeneratedAt)); err != nil {
		return nil, err
	}

	summary := &Summary{
		Dir:      s.client.Location(),
		Meta:     meta,
		Counts:   out.Counts(),
		Duration: time.Since(start),
	}

	fields := []zap.Field{zap.String("dir", summary.Dir), zap.Duration("execution_time", summary.Duration)}
	for _, c := range summary.Counts {
		fields = append(fields, zap.Int(c.Table, c.Rows))
	}
	s.logger.Info("Conversion completed", fields...)

	return summary, nil
}
