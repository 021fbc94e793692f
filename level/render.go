package level

import (
	"github.com/MobRulesGames/mathgl"
	"github.com/MobRulesGames/relic/texture"
)

// A Vertex as handed to the rasterizer. Positions are world space.
type Vertex struct {
	Pos    mathgl.Vec3
	Normal mathgl.Vec3
	UV     mathgl.Vec2
	Color  Color
}

// A Face is one triangle, indexing into RenderData.Vertices. Texture is
// whatever handle the resolver produced; -1 conventionally means the
// fallback checkerboard.
type Face struct {
	V0, V1, V2         int
	Texture            int
	Blend              BlendMode
	BlackIsTransparent bool
}

type RenderData struct {
	Vertices []Vertex
	Faces    []Face
}

var defaultQuadUV = [4]mathgl.Vec2{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
}

// Walls map texture V so the top of the image sits at the top of the wall.
var defaultWallUV = [4]mathgl.Vec2{
	{X: 0, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: 0},
	{X: 0, Y: 0},
}

// BuildRenderData flattens every room into one world-space triangle list.
// resolve maps texture references to whatever handle the rasterizer wants;
// it is called once per referenced triangle, so a caching resolver is the
// caller's business.
//
// This core stops at triangle lists: cameras, projection, and visibility all
// live in the renderer.
func BuildRenderData(l *Level, resolve func(texture.Ref) int) *RenderData {
	rd := &RenderData{}
	for _, room := range l.Rooms {
		rd.addRoom(room, resolve)
	}
	return rd
}

func (rd *RenderData) addRoom(room *Room, resolve func(texture.Ref) int) {
	room.EachSector(func(x, z int, s *Sector) {
		origin := room.GridToWorld(x, z)
		if s.Floor != nil {
			rd.addHorizontalFace(s.Floor, origin, false, resolve)
		}
		if s.Ceiling != nil {
			rd.addHorizontalFace(s.Ceiling, origin, true, resolve)
		}
		for dir := North; dir <= NeSw; dir++ {
			stack := s.Walls(dir)
			for i := 0; i < stack.Len(); i++ {
				rd.addWall(stack.At(i), dir, origin, resolve)
			}
		}
	})
}

func (rd *RenderData) addTriangle(v0, v1, v2 Vertex, tex int, blend BlendMode, blackTransparent bool) {
	base := len(rd.Vertices)
	rd.Vertices = append(rd.Vertices, v0, v1, v2)
	rd.Faces = append(rd.Faces, Face{
		V0: base, V1: base + 1, V2: base + 2,
		Texture:            tex,
		Blend:              blend,
		BlackIsTransparent: blackTransparent,
	})
}

func (rd *RenderData) addHorizontalFace(f *HorizontalFace, origin mathgl.Vec3, ceiling bool, resolve func(texture.Ref) int) {
	// World-space corners [NW, NE, SE, SW].
	pos := [4]mathgl.Vec3{
		{X: origin.X, Y: origin.Y + f.Heights[cornerNW], Z: origin.Z},
		{X: origin.X + SectorSize, Y: origin.Y + f.Heights[cornerNE], Z: origin.Z},
		{X: origin.X + SectorSize, Y: origin.Y + f.Heights[cornerSE], Z: origin.Z + SectorSize},
		{X: origin.X, Y: origin.Y + f.Heights[cornerSW], Z: origin.Z + SectorSize},
	}
	normal := mathgl.Vec3{Y: 1}
	if ceiling {
		normal = mathgl.Vec3{Y: -1}
	}
	uv := defaultQuadUV
	if f.UV != nil {
		uv = *f.UV
	}
	uv2 := uv
	if f.UV2 != nil {
		uv2 = *f.UV2
	}
	colors2 := f.Colors
	if f.Colors2 != nil {
		colors2 = *f.Colors2
	}
	tex := resolve(f.Texture)
	tex2 := tex
	if f.Texture2.IsValid() {
		tex2 = resolve(f.Texture2)
	}

	corner := func(i int, uvs [4]mathgl.Vec2, cols [4]Color) Vertex {
		return Vertex{Pos: pos[i], Normal: normal, UV: uvs[i], Color: cols[i]}
	}
	emit := func(a, b, c int, uvs [4]mathgl.Vec2, cols [4]Color, t int) {
		// Floors wind counter-clockwise seen from above; ceilings reverse.
		if ceiling {
			a, c = c, a
		}
		rd.addTriangle(corner(a, uvs, cols), corner(b, uvs, cols), corner(c, uvs, cols), t, f.Blend, f.BlackIsTransparent)
	}

	switch f.Split {
	case SplitNwSe:
		emit(cornerNW, cornerSE, cornerNE, uv, f.Colors, tex)
		emit(cornerNW, cornerSW, cornerSE, uv2, colors2, tex2)
	case SplitNeSw:
		emit(cornerNW, cornerSW, cornerNE, uv, f.Colors, tex)
		emit(cornerNE, cornerSW, cornerSE, uv2, colors2, tex2)
	}
}

// Unit normal for a wall on the given edge, pointing toward the wall's front
// side.
func wallNormal(dir Direction) mathgl.Vec3 {
	const diag = 0.70710678 // 1/sqrt(2)
	switch dir {
	case North:
		return mathgl.Vec3{Z: 1}
	case East:
		return mathgl.Vec3{X: -1}
	case South:
		return mathgl.Vec3{Z: -1}
	case West:
		return mathgl.Vec3{X: 1}
	case NwSe:
		return mathgl.Vec3{X: -diag, Z: diag}
	case NeSw:
		return mathgl.Vec3{X: -diag, Z: -diag}
	}
	panic("bad direction")
}

func (rd *RenderData) addWall(w *VerticalFace, dir Direction, origin mathgl.Vec3, resolve func(texture.Ref) int) {
	lx, lz, rx, rz := wallEdgeEndpoints(dir, 0, 0)
	// World-space corners [BL, BR, TR, TL].
	pos := [4]mathgl.Vec3{
		{X: origin.X + lx, Y: origin.Y + w.Heights[wallBL], Z: origin.Z + lz},
		{X: origin.X + rx, Y: origin.Y + w.Heights[wallBR], Z: origin.Z + rz},
		{X: origin.X + rx, Y: origin.Y + w.Heights[wallTR], Z: origin.Z + rz},
		{X: origin.X + lx, Y: origin.Y + w.Heights[wallTL], Z: origin.Z + lz},
	}
	uv := defaultWallUV
	if w.UV != nil {
		uv = *w.UV
	}
	tex := resolve(w.Texture)

	front := wallNormal(dir)
	back := mathgl.Vec3{X: -front.X, Y: -front.Y, Z: -front.Z}
	vert := func(i int, n mathgl.Vec3) Vertex {
		return Vertex{Pos: pos[i], Normal: n, UV: uv[i], Color: w.Colors[i]}
	}
	emitFront := func() {
		rd.addTriangle(vert(wallBL, front), vert(wallBR, front), vert(wallTR, front), tex, w.Blend, w.BlackIsTransparent)
		rd.addTriangle(vert(wallBL, front), vert(wallTR, front), vert(wallTL, front), tex, w.Blend, w.BlackIsTransparent)
	}
	emitBack := func() {
		rd.addTriangle(vert(wallBL, back), vert(wallTR, back), vert(wallBR, back), tex, w.Blend, w.BlackIsTransparent)
		rd.addTriangle(vert(wallBL, back), vert(wallTL, back), vert(wallTR, back), tex, w.Blend, w.BlackIsTransparent)
	}

	switch w.Normals {
	case NormalFront:
		emitFront()
	case NormalBack:
		emitBack()
	case NormalBoth:
		emitFront()
		emitBack()
	}
}
