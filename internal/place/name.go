package place

import "fmt"

// namePattern enumerates the shapes a display name can take.
type namePattern int

const (
	patternAdjectiveType namePattern = iota // "Golden Park"
	patternProperType                       // "Victoria Museum"
	patternPossessive                       // "Victoria's Museum"
	patternTheAdjective                     // "The Golden Park"
	patternTypeOf                           // "Museum of Victoria"
	numPatterns
)

// maxNameAttempts bounds the de-duplication loop in UniqueName.
const maxNameAttempts = 100

// pick returns a uniform random element of table.
func (g *Generator) pick(table []string) string {
	return table[g.rng.IntN(len(table))]
}

// Name returns a random display name built from one of the five naming
// patterns. Uniqueness is the caller's concern.
func (g *Generator) Name() string {
	switch namePattern(g.rng.IntN(int(numPatterns))) {
	case patternAdjectiveType:
		return g.pick(adjectives) + " " + g.pick(placeTypes)
	case patternProperType:
		return g.pick(properNames) + " " + g.pick(placeTypes)
	case patternPossessive:
		return g.pick(properNames) + "'s " + g.pick(placeTypes)
	case patternTheAdjective:
		return "The " + g.pick(adjectives) + " " + g.pick(placeTypes)
	default:
		return g.pick(placeTypes) + " of " + g.pick(properNames)
	}
}

// UniqueName draws names until one not yet seen this run turns up, bounded
// by maxNameAttempts. When the budget runs out it falls back to a fresh
// draw with the entity's ordinal appended. The fallback is not re-checked
// against the seen set, so an exhausted budget can still collide.
func (g *Generator) UniqueName(ordinal int) string {
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := g.nameFn()
		if _, dup := g.seen[name]; !dup {
			g.seen[name] = struct{}{}
			return name
		}
	}
	return fmt.Sprintf("%s %d", g.nameFn(), ordinal)
}
