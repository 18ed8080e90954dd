package dump

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/tailscale/hujson"
)

// Options controls how documents are parsed.
type Options struct {
	// Lenient accepts JSON with comments and trailing commas.
	Lenient bool
}

// LoadDocument reads and parses the primary recipe dump.
// A missing file yields *MissingInputError; parse errors are returned as is.
func LoadDocument(path string, opts Options) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Path: path}
		}
		return nil, fmt.Errorf("failed to read recipe dump: %w", err)
	}

	doc, err := ParseDocument(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipe dump %s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument parses a recipe dump held in memory.
func ParseDocument(data []byte, opts Options) (*Document, error) {
	data, err := opts.standardize(data)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := decode(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadMachineIndex reads the optional machine index. A missing file is not an
// error and yields an empty index.
func LoadMachineIndex(path string, opts Options) (MachineIndex, error) {
	var index MachineIndex

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return index, nil
		}
		return index, fmt.Errorf("failed to read machine index: %w", err)
	}

	index, err = ParseMachineIndex(data, opts)
	if err != nil {
		return index, fmt.Errorf("failed to parse machine index %s: %w", path, err)
	}
	return index, nil
}

// ParseMachineIndex parses a machine index held in memory.
func ParseMachineIndex(data []byte, opts Options) (MachineIndex, error) {
	var index MachineIndex

	data, err := opts.standardize(data)
	if err != nil {
		return index, err
	}

	if err := decode(data, &index); err != nil {
		return MachineIndex{}, err
	}
	return index, nil
}

func (o Options) standardize(data []byte) ([]byte, error) {
	if !o.Lenient {
		return data, nil
	}
	return hujson.Standardize(data)
}

// decode parses exactly one JSON value, keeping numbers as json.Number.
func decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}
