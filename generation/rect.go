package generation

import (
	"fmt"

	"ebiten-dungeon/components"
)

// Rect is an axis-aligned integer rectangle. The max bounds are exclusive.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewRect creates a Rect
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) XMin() int { return r.X }
func (r Rect) XMax() int { return r.X + r.Width }
func (r Rect) YMin() int { return r.Y }
func (r Rect) YMax() int { return r.Y + r.Height }

// Area returns the number of tiles covered
func (r Rect) Area() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Contains reports whether p lies inside the rect
func (r Rect) Contains(p components.Point) bool {
	return p.X >= r.XMin() && p.X < r.XMax() && p.Y >= r.YMin() && p.Y < r.YMax()
}

// Overlaps reports whether the half-open intervals intersect on both axes
func (r Rect) Overlaps(other Rect) bool {
	return other.XMin() < r.XMax() &&
		other.XMax() > r.XMin() &&
		other.YMin() < r.YMax() &&
		other.YMax() > r.YMin()
}

// Expand pads the rect by n tiles on every side
func (r Rect) Expand(n int) Rect {
	return Rect{
		X:      r.X - n,
		Y:      r.Y - n,
		Width:  r.Width + 2*n,
		Height: r.Height + 2*n,
	}
}

// IsBorder reports whether p touches any edge of the rect
func (r Rect) IsBorder(p components.Point) bool {
	return p.X == r.XMin() || p.X == r.XMax()-1 || p.Y == r.YMin() || p.Y == r.YMax()-1
}

// IsCorner reports whether p is one of the four corner coordinates
func (r Rect) IsCorner(p components.Point) bool {
	return (p.X == r.XMin() && p.Y == r.YMin()) ||
		(p.X == r.XMin() && p.Y == r.YMax()-1) ||
		(p.X == r.XMax()-1 && p.Y == r.YMin()) ||
		(p.X == r.XMax()-1 && p.Y == r.YMax()-1)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
