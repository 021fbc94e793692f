package level

// PS1-style per-vertex color for texture modulation. 128 is neutral (no
// tint), below darkens, above brightens. Per-vertex colors give Gouraud-style
// gradients across a face.
type Color struct {
	R, G, B byte
}

// The no-tint color.
func Neutral() Color {
	return Color{R: 128, G: 128, B: 128}
}

func neutralColors() [4]Color {
	n := Neutral()
	return [4]Color{n, n, n, n}
}

// BlendMode selects how the rasterizer combines a face with what's behind it.
type BlendMode int

const (
	BlendOpaque BlendMode = iota
	BlendAlpha
	BlendAdditive
)

// NormalMode tells the rasterizer which side(s) of a wall count as
// front-facing. Extrusion risers use NormalBack so their visible side points
// out of the room.
type NormalMode int

const (
	NormalFront NormalMode = iota
	NormalBack
	NormalBoth
)
