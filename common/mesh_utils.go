package common

// Next is the index following i in a ring of n elements.
func Next[T IT](i, n T) T {
	if i+1 < n {
		return i + 1
	}
	return 0
}

// PolygonArea2 is twice the signed area of the polygon: positive for a
// counter-clockwise winding, negative for a clockwise one.
func PolygonArea2(points []Vec2) float32 {
	var area float32
	n := len(points)
	for i := 0; i < n; i++ {
		j := Next(i, n)
		area += points[i][0]*points[j][1] - points[j][0]*points[i][1]
	}
	return area
}

// IsCwPolygon reports whether the 2D polygon is wound clockwise.
func IsCwPolygon(points []Vec2) bool {
	return PolygonArea2(points) < 0
}

// ReversePolygon returns a copy of the points in reverse order.
func ReversePolygon(points []Vec2) []Vec2 {
	res := make([]Vec2, len(points))
	for i, p := range points {
		res[len(points)-1-i] = p
	}
	return res
}
