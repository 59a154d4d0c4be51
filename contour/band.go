// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

import "math"

// A Polygon is a ring of points in data coordinates. The ring is
// implicitly closed; its first point is not repeated. Outer
// boundaries run counter-clockwise and holes clockwise.
type Polygon [][2]float64

// Area returns the signed area of p: positive for a counter-clockwise
// ring.
func (p Polygon) Area() float64 {
	var a float64
	for i, p0 := range p {
		p1 := p[(i+1)%len(p)]
		a += p0[0]*p1[1] - p1[0]*p0[1]
	}
	return a / 2
}

// bandTracer finds the region lo < z <= hi. Each valid cell is split
// into four triangles that meet at the cell's center, where the value
// is the average of the corners; within a triangle the field is
// linear, so the band is a convex polygon. Edges shared by two
// in-band triangles cancel, leaving the boundary of the region.
type bandTracer struct {
	f      *Field
	lo, hi float64
	nx, ns int
}

// Nodes are samples, numbered i*nx + j, followed by cell centers.

func (t *bandTracer) node(n int) (p [2]float64, z float64) {
	f := t.f
	if n < t.ns {
		i, j := n/t.nx, n%t.nx
		return [2]float64{f.X[j], f.Y[i]}, f.Z[i][j]
	}
	n -= t.ns
	i, j := n/(t.nx-1), n%(t.nx-1)
	p = [2]float64{(f.X[j] + f.X[j+1]) / 2, (f.Y[i] + f.Y[i+1]) / 2}
	z = (f.Z[i][j] + f.Z[i][j+1] + f.Z[i+1][j] + f.Z[i+1][j+1]) / 4
	return p, z
}

func (t *bandTracer) in(z float64) bool {
	return t.lo < z && z <= t.hi
}

// crossing returns where the segment between nodes a and b crosses
// level. The result does not depend on the order of a and b.
func (t *bandTracer) crossing(a, b int, level float64) [2]float64 {
	if a > b {
		a, b = b, a
	}
	pa, za := t.node(a)
	pb, zb := t.node(b)
	s := frac(level, za, zb)
	return [2]float64{lerp(pa[0], pb[0], s), lerp(pa[1], pb[1], s)}
}

// clip returns the part of the triangle tri that lies in the band.
func (t *bandTracer) clip(tri [3]int) [][2]float64 {
	var pts [][2]float64
	emit := func(p [2]float64) {
		if n := len(pts); n > 0 && pts[n-1] == p {
			return
		}
		pts = append(pts, p)
	}
	for k := range tri {
		a, b := tri[k], tri[(k+1)%3]
		pa, za := t.node(a)
		_, zb := t.node(b)
		if t.in(za) {
			emit(pa)
		}
		lo := (za > t.lo) != (zb > t.lo)
		hi := (za > t.hi) != (zb > t.hi)
		switch {
		case lo && hi && za > zb:
			emit(t.crossing(a, b, t.hi))
			emit(t.crossing(a, b, t.lo))
		case lo && hi:
			emit(t.crossing(a, b, t.lo))
			emit(t.crossing(a, b, t.hi))
		case lo:
			emit(t.crossing(a, b, t.lo))
		case hi:
			emit(t.crossing(a, b, t.hi))
		}
	}
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}
	if len(pts) < 3 {
		return nil
	}
	return pts
}

func (t *bandTracer) trace() []Polygon {
	f := t.f
	if len(f.X) < 2 || len(f.Y) < 2 || math.IsNaN(t.lo) || math.IsNaN(t.hi) || t.lo >= t.hi {
		return nil
	}
	t.nx = len(f.X)
	t.ns = t.nx * len(f.Y)
	// Triangles are counter-clockwise when both axes increase.
	flip := (f.X[t.nx-1] < f.X[0]) != (f.Y[len(f.Y)-1] < f.Y[0])

	var es edgeSet
	for i := 0; i+1 < len(f.Y); i++ {
		for j := 0; j+1 < len(f.X); j++ {
			if !f.cellValid(i, j) {
				continue
			}
			center := t.ns + i*(t.nx-1) + j
			corners := [4]int{i*t.nx + j, i*t.nx + j + 1, (i+1)*t.nx + j + 1, (i+1)*t.nx + j}
			for k := range corners {
				tri := [3]int{corners[k], corners[(k+1)%4], center}
				if flip {
					tri[0], tri[1] = tri[1], tri[0]
				}
				ring := t.clip(tri)
				for n, p := range ring {
					es.add(p, ring[(n+1)%len(ring)])
				}
			}
		}
	}

	var polys []Polygon
	for _, ring := range es.rings() {
		if ring = simplify(ring); len(ring) >= 3 {
			polys = append(polys, Polygon(ring))
		}
	}
	return polys
}

type edge struct {
	p, q [2]float64
	dead bool
}

// edgeSet collects directed edges. Adding the reverse of an edge
// already in the set removes both.
type edgeSet struct {
	edges []edge
	open  map[[4]float64][]int
}

func key(p, q [2]float64) [4]float64 {
	return [4]float64{p[0], p[1], q[0], q[1]}
}

func (s *edgeSet) add(p, q [2]float64) {
	if s.open == nil {
		s.open = make(map[[4]float64][]int)
	}
	rk := key(q, p)
	if l := s.open[rk]; len(l) > 0 {
		s.edges[l[len(l)-1]].dead = true
		s.open[rk] = l[:len(l)-1]
		return
	}
	k := key(p, q)
	s.open[k] = append(s.open[k], len(s.edges))
	s.edges = append(s.edges, edge{p: p, q: q})
}

// rings chains the live edges into closed rings.
func (s *edgeSet) rings() [][][2]float64 {
	from := make(map[[2]float64][]int)
	for i, e := range s.edges {
		if !e.dead {
			from[e.p] = append(from[e.p], i)
		}
	}
	used := make([]bool, len(s.edges))

	var rings [][][2]float64
	for start, e := range s.edges {
		if e.dead || used[start] {
			continue
		}
		var ring [][2]float64
		for cur := start; cur >= 0; {
			used[cur] = true
			ring = append(ring, s.edges[cur].p)
			if s.edges[cur].q == s.edges[start].p {
				break
			}
			cur = s.next(cur, from[s.edges[cur].q], used)
		}
		rings = append(rings, ring)
	}
	return rings
}

// next picks the edge to follow cur. Where two rings touch at a
// point, it takes the sharpest left turn, which keeps to the region
// on the left of cur.
func (s *edgeSet) next(cur int, cands []int, used []bool) int {
	c := s.edges[cur]
	dx, dy := c.q[0]-c.p[0], c.q[1]-c.p[1]
	best, bestTurn := -1, math.Inf(-1)
	for _, i := range cands {
		if used[i] {
			continue
		}
		e := s.edges[i]
		ex, ey := e.q[0]-e.p[0], e.q[1]-e.p[1]
		turn := math.Atan2(dx*ey-dy*ex, dx*ex+dy*ey)
		if turn > bestTurn {
			best, bestTurn = i, turn
		}
	}
	return best
}

// simplify removes points that lie on a straight line between their
// neighbors.
func simplify(ring [][2]float64) [][2]float64 {
	for changed := true; changed && len(ring) >= 3; {
		changed = false
		for i := 0; i < len(ring) && len(ring) >= 3; i++ {
			a, b, c := ring[(i+len(ring)-1)%len(ring)], ring[i], ring[(i+1)%len(ring)]
			ux, uy := b[0]-a[0], b[1]-a[1]
			vx, vy := c[0]-b[0], c[1]-b[1]
			if ux*vy-uy*vx == 0 && ux*vx+uy*vy >= 0 {
				ring = append(ring[:i], ring[i+1:]...)
				changed = true
				i--
			}
		}
	}
	return ring
}
