// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
)

func mustGraph(t testing.TB, src string) *core.Graph {
	t.Helper()
	g, err := core.Load(strings.NewReader(src))
	require.NoError(t, err)

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := mustGraph(t, "A,B,1\n")
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// A–B–C–D–A cycle
	g := mustGraph(t, "A,B,1\nB,C,1\nC,D,1\nD,A,1\n")

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	require.Equal(t, "B", res.Parent["C"], "first discoverer wins")
	_, hasRootParent := res.Parent["A"]
	require.False(t, hasRootParent)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := mustGraph(t, "X,Y,1\nP,Q,1\n")

	resX, _ := bfs.BFS(g, "X")
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	resP, _ := bfs.BFS(g, "P")
	if !reflect.DeepEqual(resP.Order, []string{"P", "Q"}) {
		t.Errorf("From P: got %v; want [P Q]", resP.Order)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := mustGraph(t, "A,B,1\nB,C,1\n")
	for _, tc := range []struct {
		depth int
		want  []string
	}{
		{1, []string{"A", "B"}},
		{0, []string{"A", "B", "C"}},
		{10, []string{"A", "B", "C"}},
	} {
		res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(tc.depth))
		require.NoError(t, err)
		require.Equal(t, tc.want, res.Order, "MaxDepth=%d", tc.depth)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := mustGraph(t, "A,B,0.1\nB,C,0.9\n")

	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(curr, nbr string, _ float64) bool {
		return !(curr == "B" && nbr == "C")
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithMaxWeight(0.5))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithMaxWeight(0.9))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Order)
}

// TestBFS_OnVisit asserts the hook sees every vertex once, in order, with its depth.
func TestBFS_OnVisit(t *testing.T) {
	g := mustGraph(t, "A,B,1\nB,C,1\n")

	var vis []string
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, d int) error {
		vis = append(vis, id+"@"+strconv.Itoa(d))
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"A@0", "B@1", "C@2"}, vis)
}

// TestBFS_HookErrorAndCancel covers abort paths.
func TestBFS_HookErrorAndCancel(t *testing.T) {
	g := mustGraph(t, "A,B,1\nB,C,1\n")

	boom := errors.New("boom")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := mustGraph(t, "X,Y,1\nP,Q,1\n")

	res, err := bfs.BFS(g, "X")
	require.NoError(t, err)
	path, err := res.PathTo("X")
	require.NoError(t, err)
	require.Equal(t, []string{"X"}, path)

	_, err = res.PathTo("Q")
	require.Error(t, err)
}

func TestShortestPath(t *testing.T) {
	g := mustGraph(t, "A,B,1\nB,C,1\nC,D,1\nA,E,5\nE,D,5\nX,Y,1\n")

	path, err := bfs.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "E", "D"}, path, "hop count ignores weights")

	path, err = bfs.ShortestPath(g, "C", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"C"}, path)

	path, err = bfs.ShortestPath(g, "A", "X")
	require.NoError(t, err)
	require.NotNil(t, path)
	require.Empty(t, path)

	_, err = bfs.ShortestPath(g, "nope", "A")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.ShortestPath(g, "A", "nope")
	require.ErrorIs(t, err, bfs.ErrEndVertexNotFound)
	_, err = bfs.ShortestPath(nil, "A", "B")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	d, err := bfs.HopDistance(g, "A", "X")
	require.NoError(t, err)
	require.Equal(t, -1, d)
}

// hopDistances is an independent layered BFS used to cross-check ShortestPath.
func hopDistances(g *core.Graph, start string) map[string]int {
	dist := map[string]int{start: 0}
	frontier := []string{start}
	for len(frontier) > 0 {
		var next []string
		for _, u := range frontier {
			nbrs, _ := g.Neighbors(u)
			for _, v := range nbrs {
				if _, ok := dist[v]; !ok {
					dist[v] = dist[u] + 1
					next = append(next, v)
				}
			}
		}
		frontier = next
	}

	return dist
}

func TestShortestPath_MatchesIndependentDistances(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var sb strings.Builder
	const n = 30
	for i := 0; i < 45; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		fmt.Fprintf(&sb, "n%d,n%d,%d\n", u, v, rng.Intn(9)+1)
	}
	g := mustGraph(t, sb.String())

	for _, s := range g.NodeLabels() {
		want := hopDistances(g, s)
		for _, e := range g.NodeLabels() {
			path, err := bfs.ShortestPath(g, s, e)
			require.NoError(t, err)
			d, reachable := want[e]
			if !reachable {
				require.Empty(t, path, "%s→%s", s, e)
				continue
			}
			require.Len(t, path, d+1, "%s→%s", s, e)
			require.Equal(t, s, path[0])
			require.Equal(t, e, path[len(path)-1])
			for i := 1; i < len(path); i++ {
				w, _ := g.EdgeWeight(path[i-1], path[i])
				require.NotEqual(t, core.NoEdge, w, "consecutive labels must be adjacent")
			}
		}
	}
}
