// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sweep finds the largest rectangle spanned by two polygon vertices
// that fits inside the polygon, using a histogram sweep over the compressed
// height grid.
//
// For every anchor row (a horizontal grid line holding vertices) the sweep
// descends band by band while keeping one running height per cell column.
// A column that meets an exterior cell collapses to zero and stays there.
// After each band, a left-to-right and a right-to-left scan give the nearest
// collapsed columns around every anchor vertex, which bound the partners it
// may pair with on the current line. Only vertex-aligned lines are tested.
//
// Rows are independent of each other and read the grid only, so they can be
// spread over a [parallel.WorkerPool].
package sweep

import (
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/gogpu/rectfit/internal/grid"
	"github.com/gogpu/rectfit/internal/parallel"
	"github.com/gogpu/rectfit/internal/raster"
)

// Options configures a sweep.
type Options struct {
	// Pool distributes anchor rows over workers. Nil runs serially.
	Pool *parallel.WorkerPool

	// Logger receives debug records. Nil disables logging.
	Logger *slog.Logger
}

// Result is the winning candidate of a sweep.
type Result struct {
	// Area is the inclusive area in original units. 0 means no area.
	Area uint64

	// A is the anchor vertex and B its partner, in compressed space.
	// A always lies on the upper line.
	A, B grid.Point

	// Stats describes the work done.
	Stats Stats
}

// Stats counts sweep work.
type Stats struct {
	// Rows is the number of anchor rows swept.
	Rows int

	// Pruned is the number of anchor rows skipped because their bound
	// could not beat the best area already found.
	Pruned int

	// Levels is the total number of bands descended over all anchor rows.
	Levels int
}

// Run sweeps every anchor row of p over its height grid g.
func Run(p *grid.Polygon, g *raster.HeightGrid, opts Options) Result {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	if p.Flat() {
		// A single point is one tile; a segment encloses nothing.
		if p.Cols() == 1 && p.Rows() == 1 {
			pt := p.Points[0]
			return Result{Area: 1, A: pt, B: pt}
		}
		return Result{}
	}

	s := &sweeper{p: p, g: g, rows: p.VertexRows()}
	widest := 0
	for _, row := range s.rows {
		widest = max(widest, len(row))
	}
	s.scratch.New = func() any { return newState(p.Cols(), widest) }

	var res Result
	if opts.Pool != nil && opts.Pool.Workers() > 1 {
		res = s.runParallel(opts.Pool)
	} else {
		res = s.runSerial()
	}

	log.Debug("sweep done",
		"rows", p.Rows(),
		"cols", p.Cols(),
		"parallel", opts.Pool != nil,
		"pruned", res.Stats.Pruned,
		"levels", res.Stats.Levels,
		"area", res.Area)
	return res
}

type sweeper struct {
	p    *grid.Polygon
	g    *raster.HeightGrid
	rows [][]int

	// scratch holds *state buffers, one per running anchor row.
	scratch sync.Pool
}

// state is the per-row scratch space. None of it survives between rows.
type state struct {
	hist  []uint64 // running height per cell column
	alive []bool   // cell column still unbroken
	left  []int    // smallest line reachable from each line
	right []int    // largest line reachable from each line
	live  []bool   // zero-width reach per anchor vertex
}

func newState(lines, maxAnchors int) *state {
	cells := max(lines-1, 0)
	return &state{
		hist:  make([]uint64, cells),
		alive: make([]bool, cells),
		left:  make([]int, lines),
		right: make([]int, lines),
		live:  make([]bool, maxAnchors),
	}
}

// bound is the largest area any rectangle anchored on row j could have.
func (s *sweeper) bound(j int) uint64 {
	return s.p.X.Span(0, s.p.Cols()-1) * s.p.Y.Span(j, s.p.Rows()-1)
}

func (s *sweeper) runSerial() Result {
	st := s.scratch.Get().(*state)
	defer s.scratch.Put(st)

	var best Result
	for j := range s.p.Rows() {
		if s.bound(j) < best.Area {
			best.Stats.Pruned++
			continue
		}
		s.anchorRow(j, st, &best)
		best.Stats.Rows++
	}
	return best
}

func (s *sweeper) runParallel(pool *parallel.WorkerPool) Result {
	rows := s.p.Rows()
	results := make([]Result, rows)

	var floor atomic.Uint64
	var pruned atomic.Int64

	work := make([]func(), rows)
	for j := range rows {
		work[j] = func() {
			if s.bound(j) < floor.Load() {
				pruned.Add(1)
				return
			}
			st := s.scratch.Get().(*state)
			defer s.scratch.Put(st)

			var best Result
			s.anchorRow(j, st, &best)
			best.Stats.Rows = 1
			results[j] = best
			raise(&floor, best.Area)
		}
	}
	pool.ExecuteAll(work)

	var best Result
	var stats Stats
	for _, r := range results {
		stats.Rows += r.Stats.Rows
		stats.Levels += r.Stats.Levels
		if better(r, best) {
			best = r
		}
	}
	stats.Pruned = int(pruned.Load())
	best.Stats = stats
	return best
}

// raise lifts floor to v unless it is already at least v.
func raise(floor *atomic.Uint64, v uint64) {
	for {
		cur := floor.Load()
		if v <= cur || floor.CompareAndSwap(cur, v) {
			return
		}
	}
}

// anchorRow tests every vertex of line j against the vertices of line j
// itself and of every deeper line it can still reach.
func (s *sweeper) anchorRow(j int, st *state, best *Result) {
	anchors := s.rows[j]
	cells := len(st.hist)

	// Zero height: a segment along line j is covered when the cell above or
	// below each of its columns is interior.
	for c := range cells {
		st.alive[c] = s.g.Inside(j-1, c) || s.g.Inside(j, c)
	}
	st.reach()
	for _, x := range anchors {
		s.pair(best, j, x, j, st.left[x], st.right[x], s.p.Y.Span(j, j))
	}

	live := st.live[:len(anchors)]
	for k := range live {
		live[k] = true
	}
	for l := j + 1; l < s.p.Rows(); l++ {
		band := l - 1
		for c, h := range s.g.Row(band) {
			switch {
			case h == 0:
				st.hist[c] = 0
			case band == j:
				st.hist[c] = h
			case st.hist[c] > 0:
				// Consecutive bands share their boundary line.
				st.hist[c] += h - 1
			}
			st.alive[c] = st.hist[c] > 0
		}
		st.reach()
		best.Stats.Levels++

		reaching := false
		for k, x := range anchors {
			live[k] = live[k] && (s.g.Inside(band, x-1) || s.g.Inside(band, x))
			lo, hi := st.left[x], st.right[x]
			if lo == hi && !live[k] {
				continue
			}
			reaching = true

			var height uint64
			switch {
			case lo < x:
				height = st.hist[x-1]
			case hi > x:
				height = st.hist[x]
			default:
				height = s.p.Y.Span(j, l)
			}
			s.pair(best, j, x, l, lo, hi, height)
		}
		// Collapsed columns never recover, so nothing deeper is reachable.
		if !reaching {
			return
		}
	}
}

// reach fills left and right from alive: the span of lines connected to each
// line through unbroken cell columns.
func (st *state) reach() {
	n := len(st.left)
	st.left[0] = 0
	for x := 1; x < n; x++ {
		if st.alive[x-1] {
			st.left[x] = st.left[x-1]
		} else {
			st.left[x] = x
		}
	}
	st.right[n-1] = n - 1
	for x := n - 2; x >= 0; x-- {
		if st.alive[x] {
			st.right[x] = st.right[x+1]
		} else {
			st.right[x] = x
		}
	}
}

// pair offers the farthest partners of anchor (x, j) on line l within
// columns [lo, hi]. Width grows with distance, so only the outermost vertex
// on each side can win.
func (s *sweeper) pair(best *Result, j, x, l, lo, hi int, height uint64) {
	partners := s.rows[l]
	a := grid.Point{X: x, Y: j}

	if i := sort.SearchInts(partners, lo); i < len(partners) && partners[i] <= hi {
		s.offer(best, a, grid.Point{X: partners[i], Y: l}, height)
	}
	if i := sort.SearchInts(partners, hi+1) - 1; i >= 0 && partners[i] >= lo {
		s.offer(best, a, grid.Point{X: partners[i], Y: l}, height)
	}
}

func (s *sweeper) offer(best *Result, a, b grid.Point, height uint64) {
	cand := Result{
		Area: s.p.X.Span(a.X, b.X) * height,
		A:    a,
		B:    b,
	}
	if better(cand, *best) {
		cand.Stats = best.Stats
		*best = cand
	}
}

// better orders results by area, then by the position of the rectangle and
// its anchor, so that serial and parallel sweeps pick the same winner.
func better(a, b Result) bool {
	if a.Area != b.Area {
		return a.Area > b.Area
	}
	ka, kb := key(a), key(b)
	for i := range ka {
		if ka[i] != kb[i] {
			return ka[i] < kb[i]
		}
	}
	return false
}

func key(r Result) [5]int {
	return [5]int{
		min(r.A.Y, r.B.Y), min(r.A.X, r.B.X),
		max(r.A.Y, r.B.Y), max(r.A.X, r.B.X),
		r.A.X,
	}
}
