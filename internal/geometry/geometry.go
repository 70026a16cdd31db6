package geometry

import "math"

// #region bounds
// Bounds is an axis-aligned rectangle in document pixel space at the
// document's current zoom level. Width and Height are non-negative.
type Bounds struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
// #endregion bounds

// #region overlaps
// Overlaps reports whether two rectangles share any area. Rectangles that
// only touch along an edge do not overlap.
func Overlaps(a, b Bounds) bool {
	verticallySeparate := a.Top >= b.Top+b.Height || b.Top >= a.Top+a.Height
	horizontallySeparate := a.Left >= b.Left+b.Width || b.Left >= a.Left+a.Width
	return !verticallySeparate && !horizontallySeparate
}
// #endregion overlaps

// #region bounding-box
// BoundingBox computes the smallest rectangle containing every input
// rectangle, expanded by padding on all four sides. The input must not be
// empty; callers guard the empty case before asking for a box.
func BoundingBox(rects []Bounds, padding float64) Bounds {
	top := math.MaxFloat64
	left := math.MaxFloat64
	var right, bottom float64
	for _, r := range rects {
		top = math.Min(r.Top, top)
		left = math.Min(r.Left, left)
		right = math.Max(r.Left+r.Width, right)
		bottom = math.Max(r.Top+r.Height, bottom)
	}
	return Bounds{
		Top:    top - padding,
		Left:   left - padding,
		Width:  (right - left) + 2*padding,
		Height: (bottom - top) + 2*padding,
	}
}
// #endregion bounding-box

// #region scale
// Scale multiplies every component of b by factor.
func Scale(b Bounds, factor float64) Bounds {
	return Bounds{
		Top:    b.Top * factor,
		Left:   b.Left * factor,
		Width:  b.Width * factor,
		Height: b.Height * factor,
	}
}
// #endregion scale

// #region drag-bounds
// DragBounds captures an in-progress drag: the fixed origin corner and the
// live cursor position, which may sit above or left of the origin.
type DragBounds struct {
	Top       float64 `json:"top"`
	Left      float64 `json:"left"`
	MovedTop  float64 `json:"movedTop"`
	MovedLeft float64 `json:"movedLeft"`
}

// NormalizeDragBounds maps a drag session onto a rectangle with
// non-negative width and height, whatever direction the cursor travelled.
func NormalizeDragBounds(d DragBounds) Bounds {
	return Bounds{
		Top:    math.Min(d.Top, d.MovedTop),
		Left:   math.Min(d.Left, d.MovedLeft),
		Width:  math.Abs(d.MovedLeft - d.Left),
		Height: math.Abs(d.MovedTop - d.Top),
	}
}
// #endregion drag-bounds

// #region drag-transform
// DragTransform describes, in degrees, how a live drag box must be flipped
// about each axis so it visually tracks the cursor from its origin corner.
type DragTransform struct {
	FlipX int `json:"flipX"`
	FlipY int `json:"flipY"`
}

// VisualTransform returns the flip for the raw, unclamped drag
// displacement: -180 about the relevant axis when the displacement is
// negative, 0 otherwise.
func VisualTransform(d DragBounds) DragTransform {
	var t DragTransform
	if d.MovedLeft-d.Left < 0 {
		t.FlipY = -180
	}
	if d.MovedTop-d.Top < 0 {
		t.FlipX = -180
	}
	return t
}
// #endregion drag-transform
