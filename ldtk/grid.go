package ldtk

// IntGridCell is a single IntGrid cell. Value 0 is an empty cell.
type IntGridCell struct {
	Value int
}

// GridCoords addresses a cell from the top-left corner of its layer.
type GridCoords struct {
	X int
	Y int
}

// IntGridCell returns the cell at c.
func (l *LayerInstance) IntGridCell(c GridCoords) (IntGridCell, bool) {
	if l.Type != LayerIntGrid || c.X < 0 || c.Y < 0 || c.X >= l.CWid || c.Y >= l.CHei {
		return IntGridCell{}, false
	}
	idx := c.Y*l.CWid + c.X
	if idx >= len(l.IntGridCSV) {
		return IntGridCell{}, false
	}
	return IntGridCell{Value: l.IntGridCSV[idx]}, true
}

// EachIntGridCell calls fn for every non-empty cell in row-major order.
func (l *LayerInstance) EachIntGridCell(fn func(GridCoords, IntGridCell)) {
	if l.Type != LayerIntGrid || l.CWid <= 0 {
		return
	}
	for idx, v := range l.IntGridCSV {
		if v == 0 {
			continue
		}
		fn(GridCoords{X: idx % l.CWid, Y: idx / l.CWid}, IntGridCell{Value: v})
	}
}

// CellCenter returns the world position of the center of a layer cell.
// World positions are level-local and y-up with the origin at the
// bottom-left corner of the level; LDtk pixels grow down from the top-left.
func (lvl *Level) CellCenter(layer *LayerInstance, c GridCoords) (float64, float64) {
	size := float64(layer.GridSize)
	px := float64(layer.PxTotalOffsetX) + (float64(c.X)+0.5)*size
	py := float64(layer.PxTotalOffsetY) + (float64(c.Y)+0.5)*size
	return px, float64(lvl.PxHei) - py
}

// EntityCenter returns the world position of the center of an entity's
// bounds, accounting for its pivot.
func (lvl *Level) EntityCenter(layer *LayerInstance, e *EntityInstance) (float64, float64) {
	w := float64(e.Width)
	h := float64(e.Height)
	px := float64(layer.PxTotalOffsetX+e.Px[0]) - e.Pivot[0]*w + w/2
	py := float64(layer.PxTotalOffsetY+e.Px[1]) - e.Pivot[1]*h + h/2
	return px, float64(lvl.PxHei) - py
}
