// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

import "math"

// A Line is a contour polyline in data coordinates. The last point of
// a closed line equals its first.
type Line [][2]float64

// Closed reports whether l is a closed loop.
func (l Line) Closed() bool {
	return len(l) > 1 && l[0] == l[len(l)-1]
}

// Cell corners and edges are numbered counter-clockwise from the
// lower-left corner and the bottom edge. Edge k runs from corner k to
// corner k+1.
//
// Edges are identified across the grid by index: horizontal edge
// (i, j) joins samples (i, j) and (i, j+1); vertical edge (i, j)
// joins samples (i, j) and (i+1, j).

type segment struct {
	entry, exit int
}

type lineTracer struct {
	f     *Field
	level float64
	nx    int
	nh    int // number of horizontal edges
}

func (t *lineTracer) hedge(i, j int) int { return i*(t.nx-1) + j }
func (t *lineTracer) vedge(i, j int) int { return t.nh + i*t.nx + j }

// point returns the level crossing on edge e.
func (t *lineTracer) point(e int) [2]float64 {
	f := t.f
	if e < t.nh {
		i, j := e/(t.nx-1), e%(t.nx-1)
		s := frac(t.level, f.Z[i][j], f.Z[i][j+1])
		return [2]float64{lerp(f.X[j], f.X[j+1], s), f.Y[i]}
	}
	e -= t.nh
	i, j := e/t.nx, e%t.nx
	s := frac(t.level, f.Z[i][j], f.Z[i+1][j])
	return [2]float64{f.X[j], lerp(f.Y[i], f.Y[i+1], s)}
}

// frac returns where level falls between z0 and z1.
func frac(level, z0, z1 float64) float64 {
	return (level - z0) / (z1 - z0)
}

func lerp(a, b, s float64) float64 {
	switch s {
	case 0:
		return a
	case 1:
		return b
	}
	return a + s*(b-a)
}

// segments returns the contour segments of every valid cell in
// row-major order. Each segment is oriented so that values above the
// level lie on its right.
func (t *lineTracer) segments() []segment {
	f := t.f
	var segs []segment
	for i := 0; i+1 < len(f.Y); i++ {
		for j := 0; j+1 < len(f.X); j++ {
			if !f.cellValid(i, j) {
				continue
			}
			z := [4]float64{f.Z[i][j], f.Z[i][j+1], f.Z[i+1][j+1], f.Z[i+1][j]}
			edges := [4]int{t.hedge(i, j), t.vedge(i, j+1), t.hedge(i+1, j), t.vedge(i, j)}
			var above [4]bool
			for k := range z {
				above[k] = z[k] > t.level
			}

			var entries, exits []int
			for k := 0; k < 4; k++ {
				a, b := above[k], above[(k+1)%4]
				if !a && b {
					entries = append(entries, k)
				} else if a && !b {
					exits = append(exits, k)
				}
			}

			switch len(entries) {
			case 1:
				segs = append(segs, segment{edges[entries[0]], edges[exits[0]]})
			case 2:
				// Saddle. The average of the corners decides
				// whether the corners above the level are
				// connected through the cell.
				center := (z[0] + z[1] + z[2] + z[3]) / 4
				connected := center > t.level
				for k := 0; k < 4; k++ {
					prev := (k + 3) % 4
					if connected && !above[k] {
						// Cut off the low corner.
						segs = append(segs, segment{edges[k], edges[prev]})
					} else if !connected && above[k] {
						// Cut off the high corner.
						segs = append(segs, segment{edges[prev], edges[k]})
					}
				}
			}
		}
	}
	return segs
}

// trace chains the cell segments into polylines. Open lines, which
// run between the edges of the valid region, come first; then closed
// loops. Within each group, lines are ordered by the cell of their
// first segment.
func (t *lineTracer) trace() []Line {
	f := t.f
	if len(f.X) < 2 || len(f.Y) < 2 || math.IsNaN(t.level) {
		return nil
	}
	t.nx = len(f.X)
	t.nh = len(f.Y) * (t.nx - 1)
	nedges := t.nh + (len(f.Y)-1)*t.nx

	segs := t.segments()
	byEntry := make([]int, nedges)
	byExit := make([]int, nedges)
	for e := range byEntry {
		byEntry[e], byExit[e] = -1, -1
	}
	for s, seg := range segs {
		byEntry[seg.entry] = s
		byExit[seg.exit] = s
	}

	used := make([]bool, len(segs))
	follow := func(s int) Line {
		line := Line{t.point(segs[s].entry)}
		for s >= 0 && !used[s] {
			used[s] = true
			line = append(line, t.point(segs[s].exit))
			s = byEntry[segs[s].exit]
		}
		return line
	}

	var lines []Line
	for s, seg := range segs {
		if byExit[seg.entry] < 0 {
			lines = append(lines, follow(s))
		}
	}
	for s := range segs {
		if !used[s] {
			lines = append(lines, follow(s))
		}
	}
	return lines
}
