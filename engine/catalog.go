package engine

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/sandcell/evolution/materials"
)

// StructureDef is one named, stampable pattern: a small rectangle of
// material ids plus the offset within that rectangle that anchors where
// it is placed. Grounded on original_source/projects.rs's
// ProjectDescription — the same "named, TOML-persisted catalog entry"
// shape, retargeted from script/image URLs to a grid pattern.
type StructureDef struct {
	Name     string        `toml:"name"`
	Width    int           `toml:"width"`
	Height   int           `toml:"height"`
	AnchorX  int           `toml:"anchor_x"`
	AnchorY  int           `toml:"anchor_y"`
	Cells    []materials.ID `toml:"cells"` // row-major, length Width*Height
}

// At returns the material id at local offset (x, y) within the pattern.
func (d StructureDef) At(x, y int) materials.ID {
	return d.Cells[y*d.Width+x]
}

// structureList mirrors projects.rs's ProjectList wrapper: TOML arrays
// of tables round-trip cleanly under a named top-level key.
type structureList struct {
	Structure []StructureDef `toml:"structure"`
}

// StructureCatalog is an in-memory, named library of structure
// definitions, loadable from and savable to a TOML file.
type StructureCatalog struct {
	byName map[string]StructureDef
	order  []string
}

// NewStructureCatalog returns an empty catalog.
func NewStructureCatalog() *StructureCatalog {
	return &StructureCatalog{byName: make(map[string]StructureDef)}
}

// Add installs or replaces a definition.
func (c *StructureCatalog) Add(def StructureDef) {
	if _, exists := c.byName[def.Name]; !exists {
		c.order = append(c.order, def.Name)
	}
	c.byName[def.Name] = def
}

// Get looks up a definition by name.
func (c *StructureCatalog) Get(name string) (StructureDef, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// Names returns every registered structure name in insertion order.
func (c *StructureCatalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// LoadStructureCatalogFile reads a TOML catalog from disk, matching
// load_projects_from_file's read-then-parse shape.
func LoadStructureCatalogFile(path string) (*StructureCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read structure catalog %s: %w", path, err)
	}
	var list structureList
	if err := toml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse structure catalog %s: %w", path, err)
	}
	cat := NewStructureCatalog()
	for _, def := range list.Structure {
		cat.Add(def)
	}
	return cat, nil
}

// DefaultStructureCatalog returns the small built-in catalog the CLI
// places from when no TOML catalog file is configured, so a nonzero
// structure_count always has something to stamp.
func DefaultStructureCatalog() *StructureCatalog {
	cat := NewStructureCatalog()
	cat.Add(StructureDef{
		Name: "pillar", Width: 1, Height: 5, AnchorX: 0, AnchorY: 0,
		Cells: []materials.ID{
			materials.Stone, materials.Stone, materials.Stone,
			materials.Stone, materials.Stone,
		},
	})
	cat.Add(StructureDef{
		Name: "platform", Width: 5, Height: 1, AnchorX: 2, AnchorY: 0,
		Cells: []materials.ID{
			materials.Stone, materials.Stone, materials.Stone,
			materials.Stone, materials.Stone,
		},
	})
	return cat
}

// SaveStructureCatalogFile writes the catalog out as pretty TOML,
// matching save_projects_to_file's serialize-then-write shape.
func SaveStructureCatalogFile(path string, c *StructureCatalog) error {
	list := structureList{}
	for _, name := range c.order {
		list.Structure = append(list.Structure, c.byName[name])
	}
	data, err := toml.Marshal(list)
	if err != nil {
		return fmt.Errorf("serialize structure catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write structure catalog %s: %w", path, err)
	}
	return nil
}
