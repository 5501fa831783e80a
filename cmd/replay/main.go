// Command replay loads a grid snapshot, advances it a fixed number of
// ticks, and reports a hash of the resulting grid. With -deterministic
// it seeds the engine's PRNG from simulation.seed instead of OS entropy,
// so two replays of the same snapshot and ticks hash identically — that
// is the determinism guarantee the engine promises when seeded. Without
// the flag, the default entropy-driven engine is used and -verify
// instead confirms the two replays diverge.
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sandcell/evolution/config"
	"github.com/sandcell/evolution/engine"
)

var (
	configPath    = flag.String("config", "", "Config YAML file (empty = use defaults)")
	snapshot      = flag.String("snapshot", "", "PNG snapshot to replay from (required)")
	ticks         = flag.Int("ticks", 600, "Number of ticks to advance")
	deterministic = flag.Bool("deterministic", false, "Seed the PRNG from simulation.seed instead of OS entropy")
	verify        = flag.Bool("verify", false, "Run the replay twice and check the hashes against -deterministic's expectation")
)

func main() {
	flag.Parse()

	if *snapshot == "" {
		log.Fatal("-snapshot is required")
	}
	if err := config.Init(*configPath); err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg := config.Cfg()

	hashA, err := replay(*snapshot, *ticks, cfg.Simulation.Seed)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}
	fmt.Printf("ticks=%d deterministic=%v hash=%s\n", *ticks, *deterministic, hashA)

	if *verify {
		hashB, err := replay(*snapshot, *ticks, cfg.Simulation.Seed)
		if err != nil {
			log.Fatalf("replay (second run): %v", err)
		}
		if *deterministic {
			if hashA != hashB {
				log.Fatalf("determinism check failed: %s != %s", hashA, hashB)
			}
			fmt.Println("determinism check passed: seeded replays matched")
		} else {
			if hashA == hashB {
				log.Fatalf("expected independent entropy-driven replays to diverge, both hashed to %s", hashA)
			}
			fmt.Println("entropy check passed: unseeded replays diverged as expected")
		}
	}
}

func replay(snapshotPath string, steps int, seed int64) (string, error) {
	var eng *engine.Engine
	if *deterministic {
		eng = engine.NewSeeded(seed)
	} else {
		eng = engine.New()
	}

	f, err := os.Open(snapshotPath)
	if err != nil {
		return "", fmt.Errorf("open snapshot: %w", err)
	}
	err = eng.LoadPNG(f)
	f.Close()
	if err != nil {
		return "", fmt.Errorf("load snapshot: %w", err)
	}

	const dt = 1.0 / 60.0
	eng.Advance(steps, dt)

	sum := sha256.Sum256(eng.Snapshot())
	return hex.EncodeToString(sum[:]), nil
}
