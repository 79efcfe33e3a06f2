package namegen

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prank_names/internal/models"
)

func TestNew_RequiresBothLists(t *testing.T) {
	_, err := New(models.NameLists{}, nil)
	require.ErrorIs(t, err, ErrEmptyNames)

	_, err = New(models.NameLists{First: []string{"Bart"}}, nil)
	require.ErrorIs(t, err, ErrEmptyNames)

	_, err = New(models.NameLists{Last: []string{"Simpson"}}, nil)
	require.ErrorIs(t, err, ErrEmptyNames)
}

func TestGenerate_SingleElement(t *testing.T) {
	g, err := New(models.NameLists{First: []string{"Bart"}, Last: []string{"Simpson"}}, nil)
	require.NoError(t, err)
	for range 20 {
		assert.Equal(t, "Bart Simpson", g.Generate())
	}
}

func TestGenerate_DrawsFromBothLists(t *testing.T) {
	names := models.NameLists{
		First: []string{"Hugh", "Al", "Seymour", "Amanda", "Mike"},
		Last:  []string{"Jass", "Coholic", "Butz", "Hugginkiss"},
	}
	g, err := New(names, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	seenFirst := map[string]bool{}
	seenLast := map[string]bool{}
	for range 2000 {
		first, last, ok := strings.Cut(g.Generate(), " ")
		require.True(t, ok)
		require.Contains(t, names.First, first)
		require.Contains(t, names.Last, last)
		seenFirst[first] = true
		seenLast[last] = true
	}

	assert.Len(t, seenFirst, len(names.First))
	assert.Len(t, seenLast, len(names.Last))
}

func TestGenerate_Deterministic(t *testing.T) {
	names := models.NameLists{
		First: []string{"Hugh", "Al", "Seymour"},
		Last:  []string{"Jass", "Coholic", "Butz"},
	}
	a, err := New(names, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	b, err := New(names, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)

	for range 50 {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}
