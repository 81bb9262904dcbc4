// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rectfit

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

// bruteForce tests every pair of vertices against the polygon one unit cell
// at a time. It is slow in the coordinate range and only meant for tests.
func bruteForce(vs []Vertex) uint64 {
	var best uint64
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			r := RectangleOf(vs[i], vs[j])
			if r.Area() > best && covered(vs, r) {
				best = r.Area()
			}
		}
	}
	return best
}

// covered reports whether r lies in the closed polygon.
func covered(vs []Vertex, r Rectangle) bool {
	switch {
	case r.Min.X == r.Max.X && r.Min.Y == r.Max.Y:
		return true
	case r.Min.X == r.Max.X:
		for y := r.Min.Y; y < r.Max.Y; y++ {
			if !cellInside(vs, int64(r.Min.X)-1, int64(y)) && !cellInside(vs, int64(r.Min.X), int64(y)) {
				return false
			}
		}
	case r.Min.Y == r.Max.Y:
		for x := r.Min.X; x < r.Max.X; x++ {
			if !cellInside(vs, int64(x), int64(r.Min.Y)-1) && !cellInside(vs, int64(x), int64(r.Min.Y)) {
				return false
			}
		}
	default:
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if !cellInside(vs, int64(x), int64(y)) {
					return false
				}
			}
		}
	}
	return true
}

// cellInside casts a ray to the right from the centre of the unit cell with
// top-left corner (cx, cy) and counts vertical edges crossed.
func cellInside(vs []Vertex, cx, cy int64) bool {
	inside := false
	for i, a := range vs {
		b := vs[(i+1)%len(vs)]
		if a.X != b.X || int64(a.X) <= cx {
			continue
		}
		lo, hi := int64(min(a.Y, b.Y)), int64(max(a.Y, b.Y))
		if lo <= cy && cy < hi {
			inside = !inside
		}
	}
	return inside
}

// monotone returns a random x-monotone polygon: a row of vertical slabs, each
// overlapping its neighbour.
func monotone(r *rand.Rand) []Vertex {
	slabs := 1 + r.IntN(6)
	xs := []uint64{uint64(r.IntN(3))}
	for range slabs {
		xs = append(xs, xs[len(xs)-1]+1+uint64(r.IntN(4)))
	}

	top := []uint64{uint64(r.IntN(8))}
	bot := []uint64{top[0] + 1 + uint64(r.IntN(8))}
	for i := 1; i < slabs; i++ {
		pt, pb := top[i-1], bot[i-1]
		// Keep t < pb and b > pt so consecutive slabs share an edge.
		t := uint64(r.IntN(int(pb)))
		b := max(pt, t) + 1 + uint64(r.IntN(8))
		top = append(top, t)
		bot = append(bot, b)
	}

	// Equal neighbouring tops or bottoms produce repeated vertices, which
	// must be accepted.
	var vs []Vertex
	for i := range slabs {
		vs = append(vs, Vertex{xs[i], top[i]}, Vertex{xs[i+1], top[i]})
	}
	for i := slabs - 1; i >= 0; i-- {
		vs = append(vs, Vertex{xs[i+1], bot[i]}, Vertex{xs[i], bot[i]})
	}
	return vs
}

// cellPolygon traces the boundary of a random connected set of cells in an
// n by n grid. Holes are filled first. It returns nil when two cells touch
// only at a corner, since that boundary is not simple. Grid lines map to
// random increasing coordinates so edges have uneven lengths.
func cellPolygon(r *rand.Rand, n int) []Vertex {
	type cell struct{ x, y int }
	cells := make([][]bool, n)
	for y := range cells {
		cells[y] = make([]bool, n)
	}
	at := func(x, y int) bool { return x >= 0 && y >= 0 && x < n && y < n && cells[y][x] }

	steps := []cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	grown := []cell{{r.IntN(n), r.IntN(n)}}
	cells[grown[0].y][grown[0].x] = true
	for want := 1 + r.IntN(n*n/2); len(grown) < want; {
		c, d := grown[r.IntN(len(grown))], steps[r.IntN(len(steps))]
		x, y := c.x+d.x, c.y+d.y
		if x >= 0 && y >= 0 && x < n && y < n && !cells[y][x] {
			cells[y][x] = true
			grown = append(grown, cell{x, y})
		}
	}

	// Flood the exterior from a ring one cell outside the grid.
	outside := map[cell]bool{{-1, -1}: true}
	queue := []cell{{-1, -1}}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range steps {
			nb := cell{c.x + d.x, c.y + d.y}
			if nb.x < -1 || nb.y < -1 || nb.x > n || nb.y > n || outside[nb] || at(nb.x, nb.y) {
				continue
			}
			outside[nb] = true
			queue = append(queue, nb)
		}
	}
	for y := range n {
		for x := range n {
			if !outside[cell{x, y}] {
				cells[y][x] = true
			}
		}
	}

	for y := -1; y < n; y++ {
		for x := -1; x < n; x++ {
			a, b, c, d := at(x, y), at(x+1, y), at(x, y+1), at(x+1, y+1)
			if a == d && b == c && a != b {
				return nil
			}
		}
	}

	// Each boundary corner has exactly one outgoing clockwise edge.
	next := map[cell]cell{}
	start := cell{-1, -1}
	for y := range n {
		for x := range n {
			if !cells[y][x] {
				continue
			}
			if start.x < 0 {
				start = cell{x, y}
			}
			if !at(x, y-1) {
				next[cell{x, y}] = cell{x + 1, y}
			}
			if !at(x+1, y) {
				next[cell{x + 1, y}] = cell{x + 1, y + 1}
			}
			if !at(x, y+1) {
				next[cell{x + 1, y + 1}] = cell{x, y + 1}
			}
			if !at(x-1, y) {
				next[cell{x, y + 1}] = cell{x, y}
			}
		}
	}
	loop := []cell{start}
	for p := next[start]; p != start; p = next[p] {
		if len(loop) > len(next) {
			return nil
		}
		loop = append(loop, p)
	}

	xs, ys := gridLines(r, n), gridLines(r, n)
	var vs []Vertex
	for i, p := range loop {
		prev, succ := loop[(i+len(loop)-1)%len(loop)], loop[(i+1)%len(loop)]
		if (prev.x == p.x) == (p.x == succ.x) {
			continue
		}
		vs = append(vs, Vertex{xs[p.x], ys[p.y]})
	}
	return vs
}

func gridLines(r *rand.Rand, n int) []uint64 {
	out := []uint64{uint64(r.IntN(3))}
	for range n {
		out = append(out, out[len(out)-1]+1+uint64(r.IntN(3)))
	}
	return out
}

func transpose(vs []Vertex) []Vertex {
	out := make([]Vertex, len(vs))
	for i, v := range vs {
		out[i] = Vertex{X: v.Y, Y: v.X}
	}
	return out
}

func reversed(vs []Vertex) []Vertex {
	out := slices.Clone(vs)
	slices.Reverse(out)
	return out
}

// checkSolve compares serial and parallel Solve against bruteForce.
func checkSolve(t *testing.T, label string, poly []Vertex, workers int) {
	t.Helper()
	want := bruteForce(poly)
	got, err := Solve(poly)
	if err != nil {
		t.Fatalf("%s: Solve(%v) error = %v", label, poly, err)
	}
	if got.Area != want {
		t.Fatalf("%s: Solve(%v).Area = %d, want %d", label, poly, got.Area, want)
	}
	if !covered(poly, got.Rect) {
		t.Fatalf("%s: Rect %+v leaves the polygon %v", label, got.Rect, poly)
	}
	par, err := Solve(poly, WithWorkers(workers))
	if err != nil || !sameAnswer(par, got) {
		t.Fatalf("%s: WithWorkers(%d) = %+v, %v; serial = %+v", label, workers, par, err, got)
	}
}

func TestOracleExample(t *testing.T) {
	if got := bruteForce(example); got != 24 {
		t.Fatalf("bruteForce(example) = %d, want 24", got)
	}
}

func TestCellPolygon(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 7))
	for made := 0; made < 50; {
		vs := cellPolygon(r, 5)
		if vs == nil {
			continue
		}
		made++
		if len(vs) < 4 || len(vs)%2 != 0 {
			t.Fatalf("cellPolygon() = %v, want an even number of corners", vs)
		}
		for i, a := range vs {
			b := vs[(i+1)%len(vs)]
			if (a.X == b.X) == (a.Y == b.Y) {
				t.Fatalf("cellPolygon() edge %v-%v is not axis aligned", a, b)
			}
		}
	}
}

func TestSolveMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 2025))
	for i := range 300 {
		vs := monotone(r)
		checkSolve(t, fmt.Sprintf("case %d x-monotone", i), vs, 3)
		checkSolve(t, fmt.Sprintf("case %d y-monotone", i), transpose(vs), 3)
		checkSolve(t, fmt.Sprintf("case %d reversed", i), reversed(vs), 3)
	}
}

func TestSolveMatchesBruteForceOnCellPolygons(t *testing.T) {
	r := rand.New(rand.NewPCG(17, 4))
	for i := 0; i < 200; {
		vs := cellPolygon(r, 6)
		if vs == nil {
			continue
		}
		workers := 2 + i%3
		checkSolve(t, fmt.Sprintf("case %d", i), vs, workers)
		checkSolve(t, fmt.Sprintf("case %d reversed", i), reversed(vs), workers)
		checkSolve(t, fmt.Sprintf("case %d transposed", i), transpose(vs), workers)
		i++
	}
}
