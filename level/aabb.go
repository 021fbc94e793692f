package level

import (
	"github.com/MobRulesGames/mathgl"
)

// An axis-aligned bounding box. The zero value is not a valid box; start
// from EmptyAabb or MakeAabb so Expand works.
type Aabb struct {
	Min mathgl.Vec3
	Max mathgl.Vec3
}

const aabbInf float32 = 3.4e38

// A box that contains nothing; expanding it by one point yields a degenerate
// box at that point.
func EmptyAabb() Aabb {
	return Aabb{
		Min: mathgl.Vec3{X: aabbInf, Y: aabbInf, Z: aabbInf},
		Max: mathgl.Vec3{X: -aabbInf, Y: -aabbInf, Z: -aabbInf},
	}
}

func MakeAabb(min, max mathgl.Vec3) Aabb {
	return Aabb{Min: min, Max: max}
}

func (a *Aabb) IsEmpty() bool {
	return a.Min.X > a.Max.X || a.Min.Y > a.Max.Y || a.Min.Z > a.Max.Z
}

// Grows the box to contain the point.
func (a *Aabb) Expand(p mathgl.Vec3) {
	if p.X < a.Min.X {
		a.Min.X = p.X
	}
	if p.Y < a.Min.Y {
		a.Min.Y = p.Y
	}
	if p.Z < a.Min.Z {
		a.Min.Z = p.Z
	}
	if p.X > a.Max.X {
		a.Max.X = p.X
	}
	if p.Y > a.Max.Y {
		a.Max.Y = p.Y
	}
	if p.Z > a.Max.Z {
		a.Max.Z = p.Z
	}
}

// Grows the box to contain another box.
func (a *Aabb) ExpandAabb(b Aabb) {
	if b.IsEmpty() {
		return
	}
	a.Expand(b.Min)
	a.Expand(b.Max)
}

func (a *Aabb) Contains(p mathgl.Vec3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

func (a *Aabb) Center() mathgl.Vec3 {
	return mathgl.Vec3{
		X: (a.Min.X + a.Max.X) / 2,
		Y: (a.Min.Y + a.Max.Y) / 2,
		Z: (a.Min.Z + a.Max.Z) / 2,
	}
}

func (a *Aabb) Translated(offset mathgl.Vec3) Aabb {
	if a.IsEmpty() {
		return *a
	}
	return Aabb{
		Min: mathgl.Vec3{X: a.Min.X + offset.X, Y: a.Min.Y + offset.Y, Z: a.Min.Z + offset.Z},
		Max: mathgl.Vec3{X: a.Max.X + offset.X, Y: a.Max.Y + offset.Y, Z: a.Max.Z + offset.Z},
	}
}
