package main

type Rectangle struct {
	Min Pt
	Max Pt
}

// NewRectangleI builds a rectangle from its top-left corner and its size.
func NewRectangleI(x, y, width, height int64) Rectangle {
	return Rectangle{Pt{x, y}, Pt{x + width, y + height}}
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	} else {
		return x
	}
}

func (r Rectangle) Width() int64 {
	return Abs(r.Max.X - r.Min.X)
}

func (r Rectangle) Height() int64 {
	return Abs(r.Max.Y - r.Min.Y)
}

func (r Rectangle) Size() Pt {
	return Pt{r.Width(), r.Height()}
}

func (r Rectangle) ContainsPt(pt Pt) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// Clamp01 limits a progress value to [0, 1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
