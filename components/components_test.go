// SPDX-License-Identifier: MIT
package components_test

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/components"
	"github.com/katalvlaran/wgraph/core"
)

type ComponentsSuite struct {
	suite.Suite
	g *core.Graph
}

func TestComponentsSuite(t *testing.T) {
	suite.Run(t, new(ComponentsSuite))
}

func (s *ComponentsSuite) SetupTest() {
	g, err := core.Load(strings.NewReader("A,B,0.1\nB,C,0.2\nD,E,0.3\nE,F,0.4\n"))
	s.Require().NoError(err)
	s.g = g
}

func (s *ComponentsSuite) TestThresholdScenario() {
	comps, err := components.ConnectedComponents(s.g, 0.3)
	s.Require().NoError(err)
	s.Require().Equal([]components.Component{{"A", "B", "C"}, {"D", "E"}, {"F"}}, comps)
}

func (s *ComponentsSuite) TestExtremes() {
	require := s.Require()

	comps, err := components.ConnectedComponents(s.g, -1)
	require.NoError(err)
	require.Len(comps, 6, "no edge qualifies: all singletons")

	comps, err = components.ConnectedComponents(s.g, math.NaN())
	require.NoError(err)
	require.Len(comps, 6)

	comps, err = components.ConnectedComponents(s.g, math.Inf(1))
	require.NoError(err)
	require.Equal([]components.Component{{"A", "B", "C"}, {"D", "E", "F"}}, comps)

	comps, err = components.ConnectedComponents(s.g, 0.1)
	require.NoError(err)
	require.Equal([]components.Component{{"A", "B"}, {"C"}, {"D"}, {"E"}, {"F"}}, comps, "edge weight equal to threshold is included")
}

func (s *ComponentsSuite) TestComponentOf() {
	require := s.Require()

	comp, err := components.ComponentOf(s.g, "E", 0.3)
	require.NoError(err)
	require.Equal(components.Component{"D", "E"}, comp)

	_, err = components.ComponentOf(s.g, "Q", 0.3)
	require.ErrorIs(err, components.ErrVertexNotFound)

	_, err = components.ComponentOf(nil, "A", 0.3)
	require.ErrorIs(err, components.ErrGraphNil)
	_, err = components.ConnectedComponents(nil, 0.3)
	require.ErrorIs(err, components.ErrGraphNil)
}

func (s *ComponentsSuite) TestAgreesWithWeightBoundedWalk() {
	require := s.Require()
	g, err := core.Load(strings.NewReader("A,A,0\nA,B,0.2\nB,C,0.9\nC,D,0.2\n"), core.WithLoops())
	require.NoError(err)

	for _, tau := range []float64{0, 0.2, 0.5, 1} {
		comps, err := components.ConnectedComponents(g, tau)
		require.NoError(err)
		for _, c := range comps {
			res, err := bfs.BFS(g, c[0], bfs.WithMaxWeight(tau))
			require.NoError(err)
			require.ElementsMatch([]string(c), res.Order, "tau=%v root=%s", tau, c[0])
		}
	}

	comps, err := components.ConnectedComponents(g, 0.2)
	require.NoError(err)
	require.Equal([]components.Component{{"A", "B"}, {"C", "D"}}, comps, "a self-loop adds no member")
}

func (s *ComponentsSuite) TestEmptyGraph() {
	g, err := core.Load(strings.NewReader(""))
	s.Require().NoError(err)
	comps, err := components.ConnectedComponents(g, 1)
	s.Require().NoError(err)
	s.Require().NotNil(comps)
	s.Require().Empty(comps)
}

func randomGraph(t *testing.T, seed int64) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	const n = 40
	for i := 0; i < 50; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		fmt.Fprintf(&sb, "n%d,n%d,%d\n", u, v, rng.Intn(10))
	}
	g, err := core.Load(strings.NewReader(sb.String()))
	require.NoError(t, err)

	return g
}

// TestPartitionAndMonotonicity checks every vertex appears exactly once and
// that raising the threshold only merges components.
func TestPartitionAndMonotonicity(t *testing.T) {
	g := randomGraph(t, 11)
	thresholds := []float64{-1, 0, 1, 2.5, 4, 7, 9, 100}

	var prev map[string]int
	for _, tau := range thresholds {
		comps, err := components.ConnectedComponents(g, tau)
		require.NoError(t, err)

		count := map[string]int{}
		for _, c := range comps {
			for _, id := range c {
				count[id]++
			}
		}
		require.Len(t, count, g.NumNodes(), "τ=%v", tau)
		for id, c := range count {
			require.Equal(t, 1, c, "τ=%v: %s appears %d times", tau, id, c)
		}

		idx := components.Index(comps)
		if prev != nil {
			// same component at the lower threshold ⇒ same component now
			for a, ca := range prev {
				for b, cb := range prev {
					if ca == cb {
						require.Equal(t, idx[a], idx[b], "τ=%v split %s and %s", tau, a, b)
					}
				}
			}
		}
		prev = idx
	}
}
