// Command sandevo runs the falling-sand engine headlessly: load config,
// generate or load a starting grid, and advance it tick by tick while
// logging performance and census data. There is no renderer here — the
// grid itself is only observable through PNG snapshots and the log
// streams, which is what cmd/replay and the telemetry CSV files are for.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/sandcell/evolution/config"
	"github.com/sandcell/evolution/engine"
	"github.com/sandcell/evolution/script"
	"github.com/sandcell/evolution/telemetry"
)

var (
	configPath    = flag.String("config", "", "Config YAML file (empty = use defaults)")
	logFile       = flag.String("logfile", "", "Write logs to file instead of stdout")
	perfLog       = flag.Bool("perf", false, "Enable performance logging")
	censusLog     = flag.Bool("census", false, "Enable census logging and CSV export")
	maxTicks      = flag.Int("max-ticks", 0, "Stop after N ticks (0 = run forever)")
	loadPNGPath   = flag.String("load", "", "Load the starting grid from a PNG snapshot instead of generating one")
	savePNGPath   = flag.String("save", "", "Write the final grid to a PNG snapshot on exit")
	scriptPath    = flag.String("script", "", "Compile and run a script program each tick")
	deterministic = flag.Bool("deterministic", false, "Seed the simulation PRNG from simulation.seed instead of OS entropy")
	structureFile = flag.String("structures", "", "TOML structure catalog to place from (empty = built-in default catalog)")
)

func main() {
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg := config.Cfg()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		telemetry.SetLogWriter(f)
	}

	var eng *engine.Engine
	if *deterministic {
		eng = engine.NewSeeded(cfg.Simulation.Seed)
	} else {
		eng = engine.New()
	}

	if *loadPNGPath != "" {
		f, err := os.Open(*loadPNGPath)
		if err != nil {
			log.Fatalf("open snapshot: %v", err)
		}
		err = eng.LoadPNG(f)
		f.Close()
		if err != nil {
			log.Fatalf("load snapshot: %v", err)
		}
	} else {
		params := engine.WorldgenParams{
			Seed:            cfg.Simulation.Seed,
			FloorHeight:     cfg.Worldgen.FloorHeight,
			EarthHeight:     cfg.Worldgen.EarthHeight,
			GravelThreshold: cfg.Worldgen.GravelThreshold,
			NoiseScale:      cfg.Worldgen.NoiseScale,
		}
		eng.Generate(params)
	}

	if cfg.Simulation.StructureCount > 0 {
		catalog := engine.DefaultStructureCatalog()
		if *structureFile != "" {
			loaded, err := engine.LoadStructureCatalogFile(*structureFile)
			if err != nil {
				log.Fatalf("load structure catalog: %v", err)
			}
			catalog = loaded
		}
		eng.PlaceStructures(catalog, cfg.Simulation.StructureCount)
	}

	scriptSource := *scriptPath
	if scriptSource == "" {
		scriptSource = cfg.Script.Path
	}
	if scriptSource != "" {
		data, err := os.ReadFile(scriptSource)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		host := script.NewHost()
		if err := host.Compile(string(data)); err != nil {
			log.Fatalf("compile script: %v", err)
		}
		eng.Script = host
	}

	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfWindowTicks)
	exporter := telemetry.NewCensusExporter(cfg.Telemetry.CensusCSVPath)

	const dt = 1.0 / 60.0
	steps := cfg.Derived.StepsPerFrameClamped

	var tick int64
	for *maxTicks == 0 || tick < int64(*maxTicks) {
		if steps == 0 {
			// simulation_steps_per_frame = 0 means paused: idle instead
			// of busy-spinning on a no-op Advance.
			time.Sleep(time.Duration(dt * float64(time.Second)))
			continue
		}
		if *perfLog {
			perf.StartTick()
		}
		eng.Advance(steps, dt)
		if *perfLog {
			perf.EndTick()
		}
		tick += int64(steps)

		if *censusLog && tick%int64(cfg.Telemetry.CensusIntervalTicks) < int64(steps) {
			counts := eng.CensusCounts()
			window := telemetry.ComputeCensus(tick, eng.ElapsedSeconds(), counts)
			window.LogStats()
			exporter.Append(window)
		}
		if *perfLog && tick%int64(cfg.Telemetry.PerfWindowTicks) < int64(steps) {
			perf.Stats().LogStats()
		}
	}

	if *censusLog {
		if err := exporter.Flush(); err != nil {
			log.Printf("flush census csv: %v", err)
		}
	}

	if *savePNGPath != "" {
		f, err := os.Create(*savePNGPath)
		if err != nil {
			log.Fatalf("create snapshot: %v", err)
		}
		err = eng.WritePNG(f)
		f.Close()
		if err != nil {
			log.Fatalf("write snapshot: %v", err)
		}
		dir := "."
		if idx := lastSlash(*savePNGPath); idx >= 0 {
			dir = (*savePNGPath)[:idx]
		}
		if _, err := telemetry.SaveSnapshotMeta(dir, telemetry.SnapshotMeta{
			Tick:    tick,
			SimTime: eng.ElapsedSeconds(),
			Path:    *savePNGPath,
			Reason:  "exit",
		}); err != nil {
			log.Printf("save snapshot meta: %v", err)
		}
	}

	telemetry.Logf("ran %d ticks in %s", tick, time.Duration(float64(tick)*dt*float64(time.Second)))
}

func lastSlash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}
