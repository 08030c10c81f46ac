// pkg/hexmap/layout.go
package hexmap

// Point — экранная точка в пикселях.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add возвращает сумму двух точек
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Subtract возвращает разность двух точек
func (p Point) Subtract(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale multiplies a point vector by a scalar.
func (p Point) Scale(factor int) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Cell — координаты клетки сетки: I по ширине, J по высоте.
type Cell struct {
	I, J int
}

// Layout places grid cells on screen. RowOffset is the step along I (left and down),
// ColOffset the step along J (right and down); together they give the staggered
// brick pattern of the hex tiling.
type Layout struct {
	Origin    Point
	RowOffset Point
	ColOffset Point
}

// Anchor возвращает левый нижний угол картинки тайла (i, j).
func (l Layout) Anchor(i, j int) Point {
	return l.Origin.Add(l.RowOffset.Scale(i)).Add(l.ColOffset.Scale(j))
}
