package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SnapshotMeta records when and why a grid snapshot (see engine.WritePNG)
// was taken. The pixel data itself lives in the PNG file at Path; this
// manifest record is what the teacher's JSON entity snapshot used to
// carry directly — here the grid is already a literal image per the
// specification, so only the bookkeeping is left to serialize.
type SnapshotMeta struct {
	Tick    int64  `json:"tick"`
	SimTime float64 `json:"sim_time"`
	Path    string `json:"path"`
	Reason  string `json:"reason,omitempty"`
}

// SaveSnapshotMeta writes a small JSON sidecar next to a PNG snapshot,
// named after the same tick. Returns the sidecar's filepath.
func SaveSnapshotMeta(dir string, meta SnapshotMeta) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_%d.json", meta.Tick)
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot meta: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot meta: %w", err)
	}
	return path, nil
}

// LoadSnapshotMeta reads a sidecar written by SaveSnapshotMeta.
func LoadSnapshotMeta(path string) (SnapshotMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnapshotMeta{}, fmt.Errorf("read snapshot meta: %w", err)
	}
	var meta SnapshotMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return SnapshotMeta{}, fmt.Errorf("unmarshal snapshot meta: %w", err)
	}
	return meta, nil
}
