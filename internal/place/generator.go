// Package place generates synthetic place fixtures: markdown documents with
// frontmatter carrying a category link, a typed link, and a coordinate pair,
// used to exercise the downstream map feature.
package place

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// progressInterval is how often GenerateAll logs batch progress.
const progressInterval = 1000

// Generator produces place entities with run-scoped name de-duplication.
// Not safe for concurrent use; create one per run.
type Generator struct {
	rng    *rand.Rand
	seen   map[string]struct{}
	nameFn func() string
}

// NewGenerator returns a Generator seeded with the given value. A zero seed
// derives one from the wall clock.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := &Generator{
		rng:  rand.New(rand.NewPCG(seed, seed)),
		seen: make(map[string]struct{}),
	}
	g.nameFn = g.Name
	return g
}

// Entity composes one place record. The ordinal feeds the collision
// fallback in UniqueName.
func (g *Generator) Entity(ordinal int) Entity {
	lat, lon := g.Coordinates()
	return Entity{
		DisplayName: g.UniqueName(ordinal),
		Latitude:    lat,
		Longitude:   lon,
		TypeLabel:   g.TypeLabel(),
	}
}

// GenerateAll writes count entity documents into dir, creating the
// directory if needed. It aborts on the first write error; files already
// written stay on disk. Returns the number of files written.
func (g *Generator) GenerateAll(dir string, count int) (int, error) {
	log := zap.L().With(
		zap.String("component", "place.generator"),
		zap.String("dir", dir),
	)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, eris.Wrap(err, "place: create output dir")
	}

	log.Info("generating fixtures", zap.Int("count", count))

	for i := 0; i < count; i++ {
		e := g.Entity(i)
		if err := WriteFile(dir, e); err != nil {
			return i, err
		}
		if (i+1)%progressInterval == 0 {
			log.Info("progress", zap.Int("generated", i+1))
		}
	}

	return count, nil
}
