package maxsat

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWCNF(t *testing.T) {
	const problem = `c a small problem
p wcnf 3 5 10
10 1 2 0
10 -1 -3 0
4 -2 0
3 3 0
1 1 0
`
	cs, err := ParseWCNF(strings.NewReader(problem))
	require.NoError(t, err)
	require.Len(t, cs, 5)
	assert.Equal(t, HardClause(Var("1"), Var("2")), cs[0])
	assert.Equal(t, HardClause(Not("1"), Not("3")), cs[1])
	assert.Equal(t, WeightedClause([]Lit{Not("2")}, 4), cs[2])

	p, err := New(cs)
	require.NoError(t, err)
	m, cost, err := p.Solve(context.Background())
	require.NoError(t, err)
	// Either 1 is false, violating 4 and 1, or 3 is false, violating 3.
	assert.Equal(t, 3, cost)
	assert.Equal(t, Model{"1": true, "2": false, "3": false}, m)
}

func TestParseWCNFWithoutHeader(t *testing.T) {
	const problem = `h 1 -2 0
2 2 0
c soft clauses have any weight
5 -1 0
`
	cs, err := ParseWCNF(strings.NewReader(problem))
	require.NoError(t, err)
	require.Len(t, cs, 3)
	assert.False(t, cs[0].Soft())
	assert.Equal(t, 2, cs[1].Weight)
	assert.Equal(t, 5, cs[2].Weight)
}

func TestParseWCNFErrors(t *testing.T) {
	tests := map[string]string{
		"bad header":     "p cnf 3 2\n",
		"two headers":    "p wcnf 1 1\np wcnf 1 1\n",
		"bad nbvars":     "p wcnf x 1\n",
		"bad top weight": "p wcnf 1 1 top\n",
		"no terminator":  "p wcnf 2 1\n1 1 2\n",
		"bad weight":     "p wcnf 2 1\nw 1 0\n",
		"null weight":    "p wcnf 2 1\n0 1 0\n",
		"bad literal":    "p wcnf 2 1\n1 a 0\n",
		"out of range":   "p wcnf 2 1\n1 3 0\n",
	}
	for name, problem := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseWCNF(strings.NewReader(problem))
			assert.Error(t, err)
		})
	}
}
