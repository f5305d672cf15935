package dlx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maximaximal/xccsolve/internal/dlx"
)

// buildKnuthExample builds Knuth's standard exact-cover example:
// <a b c d e f g> c e; a d g; b c f; a d f; b g; d e g;
func buildKnuthExample(t *testing.T) *dlx.Problem {
	t.Helper()
	p := dlx.NewProblem(dlx.Options{}, nil, nil)
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	idx := make(map[string]int, len(names))
	for _, n := range names {
		i, err := p.DefinePrimaryItem(n)
		require.NoError(t, err)
		idx[n] = i
	}
	require.NoError(t, p.PrepareOptions())

	rows := [][]string{
		{"c", "e"},
		{"a", "d", "g"},
		{"b", "c", "f"},
		{"a", "d", "f"},
		{"b", "g"},
		{"d", "e", "g"},
	}
	for _, row := range rows {
		items := make([]int, len(row))
		for k, n := range row {
			items[k] = idx[n]
		}
		require.NoError(t, p.AddOption(items, nil))
	}
	require.NoError(t, p.EndOptions())
	return p
}

func TestExactCoverKnuthExample(t *testing.T) {
	p := buildKnuthExample(t)
	found, err := p.ComputeNextResult(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []int{1, 4, 5}, p.ExtractOptionIndices())

	found, err = p.ComputeNextResult(context.Background())
	require.NoError(t, err)
	assert.False(t, found, "expected exactly one solution")
}

func TestUnsatisfiable(t *testing.T) {
	p := dlx.NewProblem(dlx.Options{}, nil, nil)
	a, err := p.DefinePrimaryItem("a")
	require.NoError(t, err)
	_, err = p.DefinePrimaryItem("b")
	require.NoError(t, err)
	require.NoError(t, p.PrepareOptions())
	require.NoError(t, p.AddOption([]int{a}, nil))
	require.NoError(t, p.EndOptions())

	found, err := p.ComputeNextResult(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestEnumerateMultipleSolutions(t *testing.T) {
	p := dlx.NewProblem(dlx.Options{}, nil, nil)
	a, err := p.DefinePrimaryItem("a")
	require.NoError(t, err)
	b, err := p.DefinePrimaryItem("b")
	require.NoError(t, err)
	require.NoError(t, p.PrepareOptions())
	require.NoError(t, p.AddOption([]int{a, b}, nil))
	require.NoError(t, p.AddOption([]int{a}, nil))
	require.NoError(t, p.AddOption([]int{b}, nil))
	require.NoError(t, p.EndOptions())

	var got [][]int
	for {
		found, err := p.ComputeNextResult(context.Background())
		require.NoError(t, err)
		if !found {
			break
		}
		got = append(got, p.ExtractOptionIndices())
	}

	assert.ElementsMatch(t, [][]int{{1}, {2, 3}}, got)
}

func TestColorConflictForcesPurify(t *testing.T) {
	p := dlx.NewProblem(dlx.Options{}, nil, nil)
	a, err := p.DefinePrimaryItem("a")
	require.NoError(t, err)
	b, err := p.DefinePrimaryItem("b")
	require.NoError(t, err)
	x, err := p.DefineSecondaryItem("x")
	require.NoError(t, err)
	require.NoError(t, p.PrepareOptions())

	red := p.ColorIndex("red")
	blue := p.ColorIndex("blue")

	require.NoError(t, p.AddOption([]int{a, x}, []int{0, red}))
	require.NoError(t, p.AddOption([]int{b, x}, []int{0, blue}))
	require.NoError(t, p.EndOptions())

	var solutions int
	for {
		found, err := p.ComputeNextResult(context.Background())
		require.NoError(t, err)
		if !found {
			break
		}
		solutions++
	}
	// Both options can be chosen together: they cover disjoint primary
	// items and each independently colours x, so nothing forces a
	// conflict — but run it far enough to exercise purify/hide' without
	// panicking or double-covering a.
	assert.Equal(t, 1, solutions)
}

func TestDeterminismAcrossRuns(t *testing.T) {
	run := func() [][]int {
		p := buildKnuthExample(t)
		var got [][]int
		for {
			found, err := p.ComputeNextResult(context.Background())
			require.NoError(t, err)
			if !found {
				break
			}
			got = append(got, p.ExtractOptionIndices())
		}
		return got
	}

	assert.Equal(t, run(), run())
}
