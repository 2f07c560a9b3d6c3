package world

import (
	"encoding/json"
	"os"
)

// LoadSnapshot reads a snapshot JSON file. Unknown fields are ignored for
// forward compatibility.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSnapshot writes a snapshot as indented JSON, overwriting any
// existing file.
func SaveSnapshot(s *Snapshot, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// LoadRawState reads a RawWorldState JSON file produced by the external
// save parser.
func LoadRawState(path string) (*RawWorldState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw RawWorldState
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}
