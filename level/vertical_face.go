package level

import (
	"encoding/json"

	"github.com/MobRulesGames/mathgl"
	"github.com/MobRulesGames/relic/texture"
)

// Corner order for vertical faces, in the wall's outward-facing local frame.
const (
	wallBL = 0
	wallBR = 1
	wallTR = 2
	wallTL = 3
)

// A VerticalFace is one wall quad in a sector's wall stack. Corner heights
// are world-space Y values ordered [bottom-left, bottom-right, top-right,
// top-left] in the wall's own outward frame; which world corner is "left"
// depends on the edge the wall sits on (see Direction).
//
// Independent per-corner heights mean a wall can be a parallelogram or
// collapse one side into a triangle.
type VerticalFace struct {
	// Y heights at [BL, BR, TR, TL].
	Heights [4]float32

	Texture texture.Ref

	// Texcoords at [BL, BR, TR, TL]; nil means the default 0..1 mapping.
	UV *[4]mathgl.Vec2

	Colors [4]Color

	Blend   BlendMode
	Normals NormalMode

	// Solid walls block movement; non-solid ones are decoration such as
	// grates or curtains.
	Solid bool

	// Treat pure-black texels as holes when rasterizing.
	BlackIsTransparent bool
}

// A rectangular wall spanning bottom to top.
func MakeWall(bottom, top float32, tex texture.Ref) VerticalFace {
	return MakeSlopedWall([4]float32{bottom, bottom, top, top}, tex)
}

// A wall with per-corner heights ordered [BL, BR, TR, TL].
func MakeSlopedWall(heights [4]float32, tex texture.Ref) VerticalFace {
	return VerticalFace{
		Heights: heights,
		Texture: tex,
		Colors:  neutralColors(),
		Solid:   true,
	}
}

func (f *VerticalFace) YBottom() float32 {
	return (f.Heights[wallBL] + f.Heights[wallBR]) / 2
}

func (f *VerticalFace) YTop() float32 {
	return (f.Heights[wallTL] + f.Heights[wallTR]) / 2
}

func (f *VerticalFace) YMin() float32 {
	h := f.Heights[0]
	for _, c := range f.Heights[1:] {
		if c < h {
			h = c
		}
	}
	return h
}

func (f *VerticalFace) YMax() float32 {
	h := f.Heights[0]
	for _, c := range f.Heights[1:] {
		if c > h {
			h = c
		}
	}
	return h
}

// Average vertical extent of the wall.
func (f *VerticalFace) Height() float32 {
	return f.YTop() - f.YBottom()
}

func (f *VerticalFace) IsFlat() bool {
	return f.Heights[wallBL] == f.Heights[wallBR] && f.Heights[wallTL] == f.Heights[wallTR]
}

// Vertical span covered on the left edge, (bottom, top).
func (f *VerticalFace) LeftCoverage() (float32, float32) {
	return f.Heights[wallBL], f.Heights[wallTL]
}

// Vertical span covered on the right edge, (bottom, top).
func (f *VerticalFace) RightCoverage() (float32, float32) {
	return f.Heights[wallBR], f.Heights[wallTR]
}

func (f *VerticalFace) SetUniformColor(c Color) {
	f.Colors = [4]Color{c, c, c, c}
}

func (f *VerticalFace) HasUniformColor() bool {
	c := f.Colors[0]
	for _, other := range f.Colors[1:] {
		if other != c {
			return false
		}
	}
	return true
}

func (f *VerticalFace) UnmarshalJSON(data []byte) error {
	type faceAlias VerticalFace
	tmp := faceAlias{
		Colors: neutralColors(),
		Solid:  true,
	}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*f = VerticalFace(tmp)
	return nil
}
