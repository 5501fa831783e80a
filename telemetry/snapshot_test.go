package telemetry

import (
	"testing"
)

func TestSaveSnapshotMetaThenLoad(t *testing.T) {
	dir := t.TempDir()

	meta := SnapshotMeta{
		Tick:    1000,
		SimTime: 16.6,
		Path:    "snapshot_1000.png",
		Reason:  "S3 fire-on-wood scenario",
	}

	path, err := SaveSnapshotMeta(dir, meta)
	if err != nil {
		t.Fatalf("SaveSnapshotMeta: %v", err)
	}

	loaded, err := LoadSnapshotMeta(path)
	if err != nil {
		t.Fatalf("LoadSnapshotMeta: %v", err)
	}

	if loaded != meta {
		t.Fatalf("round-tripped meta = %+v, want %+v", loaded, meta)
	}
}

func TestLoadSnapshotMetaMissingFile(t *testing.T) {
	if _, err := LoadSnapshotMeta("/nonexistent/snapshot_1.json"); err == nil {
		t.Fatalf("expected an error loading a missing snapshot meta file")
	}
}
