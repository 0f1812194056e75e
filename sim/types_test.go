// Package sim_test exercises parameter validation and clamping plus the
// completed/ant accounting contract via the public API.
package sim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varankin/colony/graph"
	"github.com/varankin/colony/sim"
)

func TestParameters_DefaultsValidate(t *testing.T) {
	require.NoError(t, sim.DefaultParameters().Validate())
}

func TestParameters_ValidateRejectsEachField(t *testing.T) {
	base := sim.DefaultParameters()

	cases := []struct {
		name   string
		mutate func(*sim.Parameters)
	}{
		{"antCount", func(p *sim.Parameters) { p.AntCount = 0 }},
		{"alpha", func(p *sim.Parameters) { p.Alpha = -0.1 }},
		{"beta", func(p *sim.Parameters) { p.Beta = -1 }},
		{"rho zero", func(p *sim.Parameters) { p.Rho = 0 }},
		{"rho above one", func(p *sim.Parameters) { p.Rho = 1.01 }},
		{"rho NaN", func(p *sim.Parameters) { p.Rho = math.NaN() }},
		{"q", func(p *sim.Parameters) { p.Q = 0 }},
		{"iterations", func(p *sim.Parameters) { p.Iterations = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			tc.mutate(&p)
			require.ErrorIs(t, p.Validate(), sim.ErrBadParameter)
		})
	}
}

func TestParameters_ClampForcesRanges(t *testing.T) {
	wild := sim.Parameters{
		AntCount:   500,
		Alpha:      -3,
		Beta:       99,
		Rho:        0, // open interval: must snap to a positive floor
		Q:          1,
		Iterations: 5,
	}
	c := wild.Clamp()

	require.Equal(t, sim.MaxAntCount, c.AntCount)
	require.Equal(t, sim.MinAlpha, c.Alpha)
	require.Equal(t, sim.MaxBeta, c.Beta)
	require.Greater(t, c.Rho, 0.0)
	require.LessOrEqual(t, c.Rho, sim.MaxRho)
	require.Equal(t, sim.MinQ, c.Q)
	require.Equal(t, sim.MinIterations, c.Iterations)

	// Clamped parameters always pass Validate.
	require.NoError(t, c.Validate())

	// In-range parameters pass through untouched.
	p := sim.DefaultParameters()
	require.Equal(t, p, p.Clamp())
}

func TestAnt_CompletedThreshold(t *testing.T) {
	a := sim.Ant{Visited: []graph.NodeID{"a", "b", "c"}}
	require.False(t, a.Completed(3), "visited == nodeCount is saturated, not completed")

	a.Visited = append(a.Visited, "a")
	require.True(t, a.Completed(3))
}

func TestNewState_Initial(t *testing.T) {
	g := graph.New()
	s := sim.NewState(g)

	require.Same(t, g, s.Graph)
	require.Empty(t, s.Ants)
	require.Empty(t, s.BestTour)
	require.True(t, math.IsInf(s.BestTourLength, 1))
	require.Zero(t, s.Iteration)
	require.False(t, s.Running)
}
