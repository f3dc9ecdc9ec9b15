package utils

import "math"

// Vector2 is a position, velocity or acceleration on the playfield.
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add accumulates other scaled by scale into v (v += other*scale).
func (v *Vector2) Add(other Vector2, scale float64) {
	v.X += other.X * scale
	v.Y += other.Y * scale
}

func (v Vector2) Plus(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector2) Times(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
