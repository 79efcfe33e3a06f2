// Package namegen combines a random first name with a random last name.
package namegen

import (
	"errors"
	"math/rand/v2"

	"prank_names/internal/models"
)

var ErrEmptyNames = errors.New("first and last name lists must both be non-empty")

type Generator struct {
	first []string
	last  []string
	rng   *rand.Rand
}

// New returns a generator over names. rng may be nil, in which case a
// randomly seeded source is used.
func New(names models.NameLists, rng *rand.Rand) (*Generator, error) {
	if names.Empty() {
		return nil, ErrEmptyNames
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{first: names.First, last: names.Last, rng: rng}, nil
}

// Generate picks a first and a last name independently and uniformly.
func (g *Generator) Generate() string {
	return g.first[g.rng.IntN(len(g.first))] + " " + g.last[g.rng.IntN(len(g.last))]
}
