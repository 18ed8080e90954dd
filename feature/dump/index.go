package dump

import (
	"bytes"
	"encoding/json"
)

// Shape records which layout a machine index document used.
type Shape int

const (
	// ShapeEmpty means the document was absent or held no usable list.
	ShapeEmpty Shape = iota
	// ShapeList is a bare JSON array of machines.
	ShapeList
	// ShapeWrapped is an object with a "machineIndex" array.
	ShapeWrapped
)

func (s Shape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeWrapped:
		return "wrapped"
	default:
		return "empty"
	}
}

// MachineIndex is the secondary document normalized to a single list,
// whichever layout it was written in.
type MachineIndex struct {
	Shape    Shape
	Machines []MachineMetadata
}

// UnmarshalJSON accepts both `[...]` and `{"machineIndex": [...]}`. Any other
// value, including null or a wrapper without the key, yields an empty index.
func (m *MachineIndex) UnmarshalJSON(data []byte) error {
	*m = MachineIndex{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case '[':
		if err := decode(trimmed, &m.Machines); err != nil {
			return err
		}
		m.Shape = ShapeList
	case '{':
		var wrapper struct {
			MachineIndex json.RawMessage `json:"machineIndex"`
		}
		if err := decode(trimmed, &wrapper); err != nil {
			return err
		}
		list := bytes.TrimSpace(wrapper.MachineIndex)
		if len(list) == 0 || list[0] != '[' {
			return nil
		}
		if err := decode(list, &m.Machines); err != nil {
			return err
		}
		m.Shape = ShapeWrapped
	}

	return nil
}
