package particle

import (
	"math"
)

// Link is a connection between particles A and B (A < B) with its stroke alpha
type Link struct {
	A, B  int
	Alpha float64
}

// IndexMode selects how the pairwise connection pass finds neighbours
type IndexMode uint8

const (
	// IndexAuto uses brute force for small pools and the grid above parameter.FieldGridThreshold
	IndexAuto IndexMode = iota
	// IndexBrute always checks every unordered pair, O(n²)
	IndexBrute
	// IndexGrid always buckets into a uniform grid
	IndexGrid
)

func (m IndexMode) String() string {
	switch m {
	case IndexBrute:
		return "brute"
	case IndexGrid:
		return "grid"
	default:
		return "auto"
	}
}

// ParseIndexMode maps a config string to an IndexMode, unknown values select IndexAuto
func ParseIndexMode(s string) IndexMode {
	switch s {
	case "brute":
		return IndexBrute
	case "grid":
		return IndexGrid
	default:
		return IndexAuto
	}
}

// bruteLinks appends every pair closer than the link threshold, reading positions only
func bruteLinks(ps []Particle, dst []Link) []Link {
	for i := 0; i < len(ps); i++ {
		a := ps[i].Pos
		for j := i + 1; j < len(ps); j++ {
			b := ps[j].Pos
			dx, dy := a.X-b.X, a.Y-b.Y
			if alpha := ConnectionAlpha(math.Sqrt(dx*dx + dy*dy)); alpha > 0 {
				dst = append(dst, Link{A: i, B: j, Alpha: alpha})
			}
		}
	}
	return dst
}

// Grid is a uniform bucket index over particle positions
// Cell size equals the link distance, so every candidate neighbour sits in the same or an adjacent cell
// Buckets are intrusive singly linked lists over particle indices, rebuilt each frame without allocation
type Grid struct {
	cell       float64
	cols, rows int
	heads      []int32 // First particle index per cell, -1 when empty
	next       []int32 // Next particle index in the same cell, -1 at the end
}

// NewGrid creates a grid with the given cell size
func NewGrid(cell float64) *Grid {
	if cell <= 0 {
		cell = 1
	}
	return &Grid{cell: cell}
}

func (g *Grid) cellOf(v float64, limit int) int {
	c := int(math.Floor(v / g.cell))
	if c < 0 {
		return 0
	}
	if c >= limit {
		return limit - 1
	}
	return c
}

// Build buckets ps for a w×h surface
func (g *Grid) Build(ps []Particle, w, h float64) {
	g.cols = int(math.Floor(math.Max(w, 1)/g.cell)) + 1
	g.rows = int(math.Floor(math.Max(h, 1)/g.cell)) + 1

	cells := g.cols * g.rows
	if cap(g.heads) < cells {
		g.heads = make([]int32, cells)
	}
	g.heads = g.heads[:cells]
	for i := range g.heads {
		g.heads[i] = -1
	}

	if cap(g.next) < len(ps) {
		g.next = make([]int32, len(ps))
	}
	g.next = g.next[:len(ps)]

	// Insert in reverse so each bucket lists indices in ascending order
	for i := len(ps) - 1; i >= 0; i-- {
		cx := g.cellOf(ps[i].Pos.X, g.cols)
		cy := g.cellOf(ps[i].Pos.Y, g.rows)
		idx := cy*g.cols + cx
		g.next[i] = g.heads[idx]
		g.heads[idx] = int32(i)
	}
}

// forward neighbour offsets: each unordered cell pair is visited once
var forwardCells = [4][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// Links appends every pair closer than the link threshold using the last Build
func (g *Grid) Links(ps []Particle, dst []Link) []Link {
	for cy := 0; cy < g.rows; cy++ {
		for cx := 0; cx < g.cols; cx++ {
			head := g.heads[cy*g.cols+cx]
			for i := head; i >= 0; i = g.next[i] {
				// Same cell, later entries only
				for j := g.next[i]; j >= 0; j = g.next[j] {
					dst = appendLink(ps, int(i), int(j), dst)
				}
				for _, off := range forwardCells {
					nx, ny := cx+off[0], cy+off[1]
					if nx < 0 || nx >= g.cols || ny >= g.rows {
						continue
					}
					for j := g.heads[ny*g.cols+nx]; j >= 0; j = g.next[j] {
						dst = appendLink(ps, int(i), int(j), dst)
					}
				}
			}
		}
	}
	return dst
}

func appendLink(ps []Particle, i, j int, dst []Link) []Link {
	a, b := ps[i].Pos, ps[j].Pos
	dx, dy := a.X-b.X, a.Y-b.Y
	alpha := ConnectionAlpha(math.Sqrt(dx*dx + dy*dy))
	if alpha <= 0 {
		return dst
	}
	if i > j {
		i, j = j, i
	}
	return append(dst, Link{A: i, B: j, Alpha: alpha})
}
