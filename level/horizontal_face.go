package level

import (
	"encoding/json"

	"github.com/MobRulesGames/mathgl"
	"github.com/MobRulesGames/relic/texture"
)

// Corner order for horizontal faces. Walls and render code index the same
// way, so the order is load-bearing.
const (
	cornerNW = 0
	cornerNE = 1
	cornerSE = 2
	cornerSW = 3
)

// A HorizontalFace is a floor or ceiling quad within one sector. Corner
// heights are world-space Y values ordered [NW, NE, SE, SW]; the quad renders
// as two triangles chosen by Split.
//
// The second texture layer (Texture2/UV2/Colors2) applies to the second
// triangle of the split only, which lets a single face blend two materials
// along its diagonal.
type HorizontalFace struct {
	// Y heights at [NW, NE, SE, SW].
	Heights [4]float32

	Texture texture.Ref
	// Texture for the second triangle; falls back to Texture when invalid.
	Texture2 texture.Ref

	// Texcoords at [NW, NE, SE, SW]; nil means the default 0..1 mapping.
	UV  *[4]mathgl.Vec2
	UV2 *[4]mathgl.Vec2

	Colors [4]Color
	// Colors for the second triangle; nil means reuse Colors.
	Colors2 *[4]Color

	Split SplitDirection
	Blend BlendMode

	// Whether actors may stand on this face.
	Walkable bool

	// Treat pure-black texels as holes when rasterizing.
	BlackIsTransparent bool
}

// A flat face at the given height.
func MakeFlatFace(height float32, tex texture.Ref) *HorizontalFace {
	return MakeSlopedFace([4]float32{height, height, height, height}, tex)
}

// A face with per-corner heights ordered [NW, NE, SE, SW].
func MakeSlopedFace(heights [4]float32, tex texture.Ref) *HorizontalFace {
	return &HorizontalFace{
		Heights:  heights,
		Texture:  tex,
		Colors:   neutralColors(),
		Walkable: true,
	}
}

func (f *HorizontalFace) IsFlat() bool {
	h := f.Heights[0]
	return f.Heights[1] == h && f.Heights[2] == h && f.Heights[3] == h
}

func (f *HorizontalFace) MinHeight() float32 {
	h := f.Heights[0]
	for _, c := range f.Heights[1:] {
		if c < h {
			h = c
		}
	}
	return h
}

func (f *HorizontalFace) MaxHeight() float32 {
	h := f.Heights[0]
	for _, c := range f.Heights[1:] {
		if c > h {
			h = c
		}
	}
	return h
}

func (f *HorizontalFace) AvgHeight() float32 {
	return (f.Heights[0] + f.Heights[1] + f.Heights[2] + f.Heights[3]) / 4
}

// Heights of the two corners bounding the given edge, ordered as seen from
// inside the sector:
//
//	North: (NW, NE)   East: (NE, SE)
//	South: (SW, SE)   West: (NW, SW)
//	NwSe:  (NW, SE)   NeSw: (NE, SW)
func (f *HorizontalFace) EdgeHeights(dir Direction) (float32, float32) {
	switch dir {
	case North:
		return f.Heights[cornerNW], f.Heights[cornerNE]
	case East:
		return f.Heights[cornerNE], f.Heights[cornerSE]
	case South:
		return f.Heights[cornerSW], f.Heights[cornerSE]
	case West:
		return f.Heights[cornerNW], f.Heights[cornerSW]
	case NwSe:
		return f.Heights[cornerNW], f.Heights[cornerSE]
	case NeSw:
		return f.Heights[cornerNE], f.Heights[cornerSW]
	}
	panic("bad direction")
}

// Lower of the two corner heights bounding an edge.
func (f *HorizontalFace) EdgeMin(dir Direction) float32 {
	a, b := f.EdgeHeights(dir)
	if a < b {
		return a
	}
	return b
}

// Higher of the two corner heights bounding an edge.
func (f *HorizontalFace) EdgeMax(dir Direction) float32 {
	a, b := f.EdgeHeights(dir)
	if a > b {
		return a
	}
	return b
}

// Like EdgeHeights but ordered (left, right) in the edge's wall frame, so the
// result lines up with a VerticalFace's bottom-left/bottom-right corners.
func (f *HorizontalFace) WallEdgeHeights(dir Direction) (float32, float32) {
	left, right := dir.wallCorners()
	return f.Heights[left], f.Heights[right]
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Height of the face surface at normalized sector coordinates, u along +X and
// v along +Z, each clamped to [0, 1]. The sample lands on whichever triangle
// of the split contains (u, v) and blends that triangle's corner heights, so
// the two triangles may form a crease along the diagonal.
func (f *HorizontalFace) InterpolateHeight(u, v float32) float32 {
	u = clamp01(u)
	v = clamp01(v)
	nw := f.Heights[cornerNW]
	ne := f.Heights[cornerNE]
	se := f.Heights[cornerSE]
	sw := f.Heights[cornerSW]
	switch f.Split {
	case SplitNwSe:
		if u >= v {
			// Triangle (NW, NE, SE).
			return nw + u*(ne-nw) + v*(se-ne)
		}
		// Triangle (NW, SE, SW).
		return nw + v*(sw-nw) + u*(se-sw)
	case SplitNeSw:
		if u+v <= 1 {
			// Triangle (NW, NE, SW).
			return nw + u*(ne-nw) + v*(sw-nw)
		}
		// Triangle (NE, SE, SW).
		return se + (1-u)*(sw-se) + (1-v)*(ne-se)
	}
	panic("bad split direction")
}

// Paints every corner of both triangles the same color.
func (f *HorizontalFace) SetUniformColor(c Color) {
	f.Colors = [4]Color{c, c, c, c}
	f.Colors2 = nil
}

func (f *HorizontalFace) HasUniformColor() bool {
	c := f.Colors[0]
	for _, other := range f.Colors[1:] {
		if other != c {
			return false
		}
	}
	if f.Colors2 != nil {
		for _, other := range f.Colors2 {
			if other != c {
				return false
			}
		}
	}
	return true
}

func (f *HorizontalFace) UnmarshalJSON(data []byte) error {
	// Alias drops the method set so we don't recurse.
	type faceAlias HorizontalFace
	tmp := faceAlias{
		Colors:   neutralColors(),
		Walkable: true,
	}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*f = HorizontalFace(tmp)
	return nil
}
