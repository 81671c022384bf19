package vmath

// CircleOverlap reports whether two circles touch or overlap
// Boundary contact (distance == r1+r2) counts as overlap
func CircleOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	radSum := r1 + r2
	return dx*dx+dy*dy <= radSum*radSum
}

// RectOverlap reports whether two axis-aligned rectangles share interior area
// Rectangles that only share an edge do not overlap
func RectOverlap(ax, ay, aw, ah, bx, by, bw, bh int) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}
