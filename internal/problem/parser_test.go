package problem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maximaximal/xccsolve/internal/dlx"
	"github.com/maximaximal/xccsolve/internal/problem"
)

func TestParseKnuthExample(t *testing.T) {
	src := `<a b c d e f g>
c e;
a d g;
b c f;
a d f;
b g;
d e g;
`
	p, err := problem.Parse(src, dlx.Options{}, nil, nil)
	require.NoError(t, err)

	found, err := p.ComputeNextResult(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	// Level order under the default MRV heuristic: a, then b, then c.
	assert.Equal(t, []int{4, 5, 1}, p.ExtractOptionIndices())
}

func TestParseSecondaryColor(t *testing.T) {
	src := `<a>
[x]
a x:red;
`
	p, err := problem.Parse(src, dlx.Options{}, nil, nil)
	require.NoError(t, err)

	found, err := p.ComputeNextResult(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, [][]string{{"a", "x:red"}}, p.ExtractItemNames())
}

func TestParseMultiplicity(t *testing.T) {
	src := `<a : 2 b : 1;2>
a;
a b;
b;
`
	p, err := problem.Parse(src, dlx.Options{}, nil, nil)
	require.NoError(t, err)

	found, err := p.ComputeNextResultM(context.Background())
	require.NoError(t, err)
	require.True(t, found)

	indices := p.ExtractOptionIndices()
	assert.NotEmpty(t, indices)
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		assert.False(t, seen[idx], "option %d chosen more than once", idx)
		seen[idx] = true
	}
}

func TestParseUnknownItemNameErrors(t *testing.T) {
	src := `<a>
a b;
`
	_, err := problem.Parse(src, dlx.Options{}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, problem.ErrUnknownItemName)
}

func TestParseUnterminatedBlockErrors(t *testing.T) {
	src := `<a b`
	_, err := problem.Parse(src, dlx.Options{}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, problem.ErrUnterminatedBlock)
}
