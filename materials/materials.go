// Package materials implements the material registry (C3): an
// id-indexed, boot-time-immutable table of material descriptors the
// engine consults for density, statics, reaction targets, and the
// per-material update rule itself.
//
// The registry never imports the cells package. Rule bodies live in
// cells and are wired into a Registry by cells.Register — this keeps
// cross-references between materials resolved through the registry at
// call time (by id) rather than through compile-time symbols, per the
// "cyclic module references" design note: any material can name any
// other by id without an import cycle.
package materials

// ID is a material identifier: one byte, 0..255.
type ID = uint8

// Reserved ids named by the specification. Unlisted ids in range are
// available for registration; unregistered ids default to Void.
const (
	Void             ID = 0
	Sand             ID = 1
	Water            ID = 2
	Steam            ID = 3
	Fire             ID = 4
	Wood             ID = 5
	BurningWood      ID = 6
	BurningCoal      ID = 7
	Coal             ID = 8
	Acid             ID = 9
	Gas              ID = 10
	BurningGas       ID = 11
	DiluteAcid       ID = 12
	Salt             ID = 13
	SaltyWater       ID = 15
	BaseWater        ID = 16
	LiquidGas        ID = 17
	Earth            ID = 18
	Gravel           ID = 19
	Copper           ID = 20
	Smoke            ID = 21
	Powder           ID = 50
	BurningPowder    ID = 51
	Ice              ID = 55
	CrushedIce       ID = 56
	Snow             ID = 57
	Electricity      ID = 60
	Plasma           ID = 61
	Laser            ID = 62
	Grass            ID = 70
	DryGrass         ID = 71
	BlackHole        ID = 80
	CompressedSteam  ID = 81
	Stone            ID = 255
)

// Grid is the narrow view into the cell array an update rule needs: read
// and write one material id at a time, or swap two cells. Implemented by
// engine.Engine's grid buffer.
type Grid interface {
	At(index int) ID
	Set(index int, id ID)
	Swap(a, b int)
}

// Temperature is the narrow view into the temperature field an update
// rule needs.
type Temperature interface {
	Get(x, y int) float32
	Add(x, y int, delta float32)
}

// Randomizer is the narrow view into the engine PRNG an update rule
// needs. Satisfied by *grid.Random; declared here (rather than importing
// grid) to keep materials free of a dependency cycle risk as cells grows.
type Randomizer interface {
	Next() byte
	Above(threshold byte) bool
	Below(threshold byte) bool
	Bool() bool
	IntN(n int) int
}

// UpdateContext bundles everything a material's update rule can touch.
// Per the "cross-cell mutation" design note, a rule holds exclusive
// access to the whole grid for the duration of one call — there is no
// per-cell locking.
type UpdateContext struct {
	X, Y  int
	Index int
	Grid  Grid
	Reg   *Registry
	Rng   Randomizer
	Temp  Temperature
}

// UpdateFunc is a material's local rule: it may move its own cell via
// swaps, write neighbor cells directly, read/write temperature, and
// consult the registry to resolve another material's capabilities.
type UpdateFunc func(ctx *UpdateContext)

// Descriptor is the immutable, process-wide capability record for one
// material id.
type Descriptor struct {
	ID   ID
	Name string

	Density ID_Density // relative weight; negative = buoyant

	Static bool

	Burnable       ID // id this cell becomes when ignited; Void = not burnable
	Heatable       ID // id this cell becomes when sufficiently heated; Void = inert
	HeatProof      byte
	Dissolve       ID // id this cell becomes when contacted by water
	ProtonTransfer ID // id this cell becomes on acid/base contact

	IgnitionTemperature    float32
	HasIgnitionTemperature bool

	ThermalConductivity float32
	ConvectionFactor    float32

	CastsShadow  bool
	ShadowRGBA   [4]byte
	DisplayColor [3]byte

	Update UpdateFunc
}

// ID_Density is a signed relative weight, -128..127.
type ID_Density = int8

// NoOpUpdate is the default rule for any unregistered slot: void does
// nothing.
func NoOpUpdate(*UpdateContext) {}

// voidDescriptor is the zero-configuration descriptor every unfilled
// registry slot starts as.
func voidDescriptor() Descriptor {
	return Descriptor{
		ID:                  Void,
		Name:                "void",
		Density:             0,
		Static:              false,
		ThermalConductivity: 0.05,
		Update:              NoOpUpdate,
	}
}

// Registry is the boot-time-immutable, id-indexed material table.
type Registry struct {
	descriptors [256]Descriptor
	byName      map[string]ID
}

// NewRegistry builds a registry with every slot defaulted to Void.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]ID, 64)}
	v := voidDescriptor()
	for i := range r.descriptors {
		r.descriptors[i] = v
	}
	r.byName["void"] = Void
	return r
}

// Register installs a descriptor at its own ID slot and indexes it by
// name. Called only during boot; the registry is never mutated again.
func (r *Registry) Register(d Descriptor) {
	if d.Update == nil {
		d.Update = NoOpUpdate
	}
	r.descriptors[d.ID] = d
	r.byName[d.Name] = d.ID
}

// Get returns the descriptor for id. Always succeeds: unregistered ids
// hold the default Void descriptor.
func (r *Registry) Get(id ID) *Descriptor {
	return &r.descriptors[id]
}

// TypeID resolves a material name to its id. The bool result is false
// when name was never registered — the script bridge surfaces this as a
// recoverable error rather than panicking.
func (r *Registry) TypeID(name string) (ID, bool) {
	id, ok := r.byName[name]
	return id, ok
}
