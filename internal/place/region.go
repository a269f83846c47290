package place

import "fmt"

// Coordinates picks a region uniformly, then samples a point uniformly
// within its window. Latitude carries 14 decimal places and longitude 7,
// matching the precision of the captured GPS values the fixtures imitate.
func (g *Generator) Coordinates() (lat, lon string) {
	r := regions[g.rng.IntN(len(regions))]
	latV := g.uniform(r.Bounds.Min(1), r.Bounds.Max(1))
	lonV := g.uniform(r.Bounds.Min(0), r.Bounds.Max(0))
	return fmt.Sprintf("%.14f", latV), fmt.Sprintf("%.7f", lonV)
}

func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

// TypeLabel returns a random categorical link target wrapped as [[Label]].
func (g *Generator) TypeLabel() string {
	return "[[" + g.pick(linkTypes) + "]]"
}
