package level

import (
	"encoding/json"
	"fmt"

	"github.com/MobRulesGames/mathgl"
	"github.com/MobRulesGames/relic/logging"
	"github.com/MobRulesGames/relic/texture"
)

// A Room is a rectangular grid of sectors placed in world space. Position is
// the world location of the grid's (0, 0) corner, so growing the grid north
// or west shifts Position to keep existing geometry where it was.
//
// Sectors is a flat arena indexed x*Depth+z; nil entries are empty cells.
// Resizing remaps indices instead of moving geometry.
type Room struct {
	Name     string
	Position mathgl.Vec3
	Width    int
	Depth    int
	Sectors  []*Sector
	// Ambient light level in [0, 1].
	Ambient float32

	// Derived from the geometry; recomputed on load and after edits.
	Bounds Aabb `json:"-"`
}

func MakeRoom(name string, position mathgl.Vec3, width, depth int) *Room {
	if width < 1 || depth < 1 {
		panic(fmt.Errorf("bad room size %dx%d", width, depth))
	}
	return &Room{
		Name:     name,
		Position: position,
		Width:    width,
		Depth:    depth,
		Sectors:  make([]*Sector, width*depth),
		Ambient:  0.5,
		Bounds:   EmptyAabb(),
	}
}

func (r *Room) index(x, z int) int {
	return x*r.Depth + z
}

func (r *Room) inGrid(x, z int) bool {
	return x >= 0 && x < r.Width && z >= 0 && z < r.Depth
}

// The sector at grid cell (x, z), or nil when the cell is empty or outside
// the grid.
func (r *Room) SectorAt(x, z int) *Sector {
	if !r.inGrid(x, z) {
		return nil
	}
	return r.Sectors[r.index(x, z)]
}

func (r *Room) SetSector(x, z int, s *Sector) {
	if !r.inGrid(x, z) {
		panic(fmt.Errorf("sector (%d, %d) outside %dx%d room", x, z, r.Width, r.Depth))
	}
	r.Sectors[r.index(x, z)] = s
}

func (r *Room) RemoveSector(x, z int) {
	if r.inGrid(x, z) {
		r.Sectors[r.index(x, z)] = nil
	}
}

// The sector at (x, z), growing the grid east or south as needed and
// allocating the cell if empty. Negative coordinates are a programming
// error; growing north or west must go through Grow so Position shifts with
// the grid.
func (r *Room) EnsureSector(x, z int) *Sector {
	if x < 0 || z < 0 {
		panic(fmt.Errorf("EnsureSector(%d, %d): negative coordinates need Grow", x, z))
	}
	newWidth, newDepth := r.Width, r.Depth
	if x >= newWidth {
		newWidth = x + 1
	}
	if z >= newDepth {
		newDepth = z + 1
	}
	if newWidth != r.Width || newDepth != r.Depth {
		r.resize(newWidth, newDepth, 0, 0)
	}
	if r.Sectors[r.index(x, z)] == nil {
		r.Sectors[r.index(x, z)] = MakeSector()
	}
	return r.Sectors[r.index(x, z)]
}

// Grow extends the grid by count rows or columns on the given side. Growing
// north or west inserts cells at index zero and shifts Position by
// -count*SectorSize on that axis in the same step, so every existing sector
// keeps its world location. Diagonals aren't sides of the grid.
func (r *Room) Grow(dir Direction, count int) {
	if count <= 0 {
		return
	}
	switch dir {
	case North:
		r.resize(r.Width, r.Depth+count, 0, count)
		r.Position.Z -= float32(count) * SectorSize
	case South:
		r.resize(r.Width, r.Depth+count, 0, 0)
	case West:
		r.resize(r.Width+count, r.Depth, count, 0)
		r.Position.X -= float32(count) * SectorSize
	case East:
		r.resize(r.Width+count, r.Depth, 0, 0)
	default:
		panic(fmt.Errorf("cannot grow room toward %v", dir))
	}
	logging.Trace("room grown", "room", r.Name, "dir", dir.String(), "size", fmt.Sprintf("%dx%d", r.Width, r.Depth))
}

// Rebuilds the arena at the new size, moving cell (x, z) to (x+offX, z+offZ).
func (r *Room) resize(newWidth, newDepth, offX, offZ int) {
	sectors := make([]*Sector, newWidth*newDepth)
	for x := 0; x < r.Width; x++ {
		for z := 0; z < r.Depth; z++ {
			nx, nz := x+offX, z+offZ
			if nx >= 0 && nx < newWidth && nz >= 0 && nz < newDepth {
				sectors[nx*newDepth+nz] = r.Sectors[r.index(x, z)]
			}
		}
	}
	r.Width, r.Depth = newWidth, newDepth
	r.Sectors = sectors
}

func (r *Room) SetFloor(x, z int, height float32, tex texture.Ref) {
	r.EnsureSector(x, z).Floor = MakeFlatFace(height, tex)
	r.RecalculateBounds()
}

func (r *Room) SetCeiling(x, z int, height float32, tex texture.Ref) {
	r.EnsureSector(x, z).Ceiling = MakeFlatFace(height, tex)
	r.RecalculateBounds()
}

func (r *Room) AddWall(x, z int, dir Direction, bottom, top float32, tex texture.Ref) error {
	if err := r.EnsureSector(x, z).AddWall(dir, MakeWall(bottom, top, tex)); err != nil {
		return err
	}
	r.RecalculateBounds()
	return nil
}

// ExtrudeFloor raises (or with a negative amount lowers) the floor of the
// sector at (x, z) by amount and keeps the cell sealed: on each cardinal
// edge, if a wall is already present its bottom corners move to the new
// floor heights, otherwise a riser wall is inserted spanning the old floor
// to the new one. Risers face out of the room.
func (r *Room) ExtrudeFloor(x, z int, amount float32, wallTex texture.Ref) error {
	sector := r.SectorAt(x, z)
	if sector == nil || sector.Floor == nil {
		return fmt.Errorf("no floor to extrude at (%d, %d)", x, z)
	}

	old := sector.Floor.Heights
	for i := range sector.Floor.Heights {
		sector.Floor.Heights[i] += amount
	}

	for dir := North; dir <= West; dir++ {
		left, right := dir.wallCorners()
		newLeft, newRight := sector.Floor.Heights[left], sector.Floor.Heights[right]
		stack := sector.Walls(dir)
		if stack.IsEmpty() {
			riser := MakeSlopedWall([4]float32{old[left], old[right], newRight, newLeft}, wallTex)
			riser.Normals = NormalBack
			if err := stack.Add(riser); err != nil {
				return err
			}
			continue
		}
		// Reseat the lowest wall on the moved floor.
		lowest := stack.At(0)
		for i := 1; i < stack.Len(); i++ {
			if stack.At(i).YBottom() < lowest.YBottom() {
				lowest = stack.At(i)
			}
		}
		lowest.Heights[wallBL] = newLeft
		lowest.Heights[wallBR] = newRight
	}

	r.RecalculateBounds()
	return nil
}

// Drops sectors with no geometry from the arena.
func (r *Room) CleanupEmptySectors() {
	for i, s := range r.Sectors {
		if s != nil && !s.HasGeometry() {
			r.Sectors[i] = nil
		}
	}
}

// TrimEmptyEdges shrinks the grid to the bounding rectangle of its non-empty
// sectors, shifting Position so surviving sectors keep their world location.
// An entirely empty room collapses to a single empty cell.
func (r *Room) TrimEmptyEdges() {
	minX, minZ := r.Width, r.Depth
	maxX, maxZ := -1, -1
	for x := 0; x < r.Width; x++ {
		for z := 0; z < r.Depth; z++ {
			s := r.Sectors[r.index(x, z)]
			if s == nil || !s.HasGeometry() {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if z < minZ {
				minZ = z
			}
			if z > maxZ {
				maxZ = z
			}
		}
	}
	if maxX < 0 {
		r.Width, r.Depth = 1, 1
		r.Sectors = make([]*Sector, 1)
		r.Bounds = EmptyAabb()
		return
	}
	if minX == 0 && minZ == 0 && maxX == r.Width-1 && maxZ == r.Depth-1 {
		return
	}
	r.resize(maxX-minX+1, maxZ-minZ+1, -minX, -minZ)
	r.Position.X += float32(minX) * SectorSize
	r.Position.Z += float32(minZ) * SectorSize
	r.RecalculateBounds()
}

// World-space position of grid corner (x, z), on the room's base plane.
func (r *Room) GridToWorld(x, z int) mathgl.Vec3 {
	return mathgl.Vec3{
		X: r.Position.X + float32(x)*SectorSize,
		Y: r.Position.Y,
		Z: r.Position.Z + float32(z)*SectorSize,
	}
}

// Grid cell containing the world XZ point, or false when outside the grid.
func (r *Room) WorldToGrid(wx, wz float32) (int, int, bool) {
	fx := (wx - r.Position.X) / SectorSize
	fz := (wz - r.Position.Z) / SectorSize
	if fx < 0 || fz < 0 {
		return 0, 0, false
	}
	x, z := int(fx), int(fz)
	if x >= r.Width || z >= r.Depth {
		return 0, 0, false
	}
	return x, z, true
}

// RecalculateBounds rebuilds Bounds from every face corner. Room-relative;
// see WorldBounds for the translated box. Call after any edit that moves
// heights or resizes the grid.
func (r *Room) RecalculateBounds() {
	bounds := EmptyAabb()
	r.EachSector(func(x, z int, s *Sector) {
		baseX := float32(x) * SectorSize
		baseZ := float32(z) * SectorSize
		expandFace := func(f *HorizontalFace) {
			if f == nil {
				return
			}
			bounds.Expand(mathgl.Vec3{X: baseX, Y: f.Heights[cornerNW], Z: baseZ})
			bounds.Expand(mathgl.Vec3{X: baseX + SectorSize, Y: f.Heights[cornerNE], Z: baseZ})
			bounds.Expand(mathgl.Vec3{X: baseX + SectorSize, Y: f.Heights[cornerSE], Z: baseZ + SectorSize})
			bounds.Expand(mathgl.Vec3{X: baseX, Y: f.Heights[cornerSW], Z: baseZ + SectorSize})
		}
		expandFace(s.Floor)
		expandFace(s.Ceiling)
		for dir := North; dir <= NeSw; dir++ {
			stack := s.Walls(dir)
			for i := 0; i < stack.Len(); i++ {
				w := stack.At(i)
				lx, lz, rx, rz := wallEdgeEndpoints(dir, baseX, baseZ)
				bounds.Expand(mathgl.Vec3{X: lx, Y: w.Heights[wallBL], Z: lz})
				bounds.Expand(mathgl.Vec3{X: lx, Y: w.Heights[wallTL], Z: lz})
				bounds.Expand(mathgl.Vec3{X: rx, Y: w.Heights[wallBR], Z: rz})
				bounds.Expand(mathgl.Vec3{X: rx, Y: w.Heights[wallTR], Z: rz})
			}
		}
	})
	r.Bounds = bounds
}

// World XZ endpoints of the wall slot on the given edge of the sector whose
// NW corner is at (baseX, baseZ), ordered (left, right) in the wall frame.
func wallEdgeEndpoints(dir Direction, baseX, baseZ float32) (lx, lz, rx, rz float32) {
	switch dir {
	case North:
		return baseX, baseZ, baseX + SectorSize, baseZ
	case East:
		return baseX + SectorSize, baseZ, baseX + SectorSize, baseZ + SectorSize
	case South:
		return baseX + SectorSize, baseZ + SectorSize, baseX, baseZ + SectorSize
	case West:
		return baseX, baseZ + SectorSize, baseX, baseZ
	case NwSe:
		return baseX, baseZ, baseX + SectorSize, baseZ + SectorSize
	case NeSw:
		return baseX + SectorSize, baseZ, baseX, baseZ + SectorSize
	}
	panic("bad direction")
}

// Bounds translated to world space.
func (r *Room) WorldBounds() Aabb {
	return r.Bounds.Translated(r.Position)
}

// Reports whether the world point lies within the room's bounds.
func (r *Room) ContainsPoint(p mathgl.Vec3) bool {
	wb := r.WorldBounds()
	return wb.Contains(p)
}

// Calls fn for every non-nil sector, x-major.
func (r *Room) EachSector(fn func(x, z int, s *Sector)) {
	for x := 0; x < r.Width; x++ {
		for z := 0; z < r.Depth; z++ {
			if s := r.Sectors[r.index(x, z)]; s != nil {
				fn(x, z, s)
			}
		}
	}
}

func (r *Room) UnmarshalJSON(data []byte) error {
	type roomAlias Room
	tmp := roomAlias{
		Ambient: 0.5,
	}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*r = Room(tmp)
	r.Bounds = EmptyAabb()
	return nil
}
