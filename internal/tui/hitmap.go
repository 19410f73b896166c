package tui

import "github.com/alexisbeaulieu97/tablepick/internal/ports"

// Rect is a screen rectangle in terminal cells. W and H are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is one hit-testable element of the rendered grid.
type Region struct {
	ID   string
	Rect Rect

	row, col int
	isCell   bool
	parent   *Region
}

// CellCoordinates implements ports.Element.
func (r *Region) CellCoordinates() (int, int, bool) {
	if r == nil || !r.isCell {
		return 0, 0, false
	}
	return r.row, r.col, true
}

// Parent implements ports.Element.
func (r *Region) Parent() ports.Element {
	if r == nil || r.parent == nil {
		return nil
	}
	return r.parent
}

// HitMap resolves screen coordinates to grid elements. Regions added later
// take priority, so children must be added after their parents.
type HitMap struct {
	regions []*Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers a plain region under parent, which may be nil.
func (h *HitMap) Add(id string, rect Rect, parent *Region) *Region {
	r := &Region{ID: id, Rect: rect, parent: parent}
	h.regions = append(h.regions, r)
	return r
}

// AddCell registers a region that represents the cell at row, col.
func (h *HitMap) AddCell(id string, rect Rect, row, col int, parent *Region) *Region {
	r := h.Add(id, rect, parent)
	r.row, r.col, r.isCell = row, col, true
	return r
}

// Test returns the highest-priority region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return h.regions[i]
		}
	}
	return nil
}

// CellAt walks from the region at (x, y) up to the nearest cell, visiting
// at most depth regions.
func (h *HitMap) CellAt(x, y, depth int) (row, col int, ok bool) {
	for r := h.Test(x, y); r != nil && depth > 0; depth-- {
		if r.isCell {
			return r.row, r.col, true
		}
		r = r.parent
	}
	return 0, 0, false
}

// ElementAt implements ports.PointerLocator.
func (h *HitMap) ElementAt(x, y int) ports.Element {
	r := h.Test(x, y)
	if r == nil {
		return nil
	}
	return r
}

// Clear removes every region.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

var _ ports.PointerLocator = (*HitMap)(nil)
