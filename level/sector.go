package level

import (
	"fmt"

	"github.com/MobRulesGames/relic/texture"
)

// Side length of one sector in world units. The grid never uses any other
// spacing, so world and grid coordinates convert by a single multiply.
const SectorSize float32 = 1024.0

// A Sector is one grid cell of a room: an optional floor, an optional
// ceiling, and a wall stack for each of the six edge slots. A sector with
// neither surfaces nor walls is empty and may be dropped entirely.
type Sector struct {
	Floor   *HorizontalFace
	Ceiling *HorizontalFace

	WallsNorth WallStack
	WallsEast  WallStack
	WallsSouth WallStack
	WallsWest  WallStack
	WallsNwSe  WallStack
	WallsNeSw  WallStack
}

func MakeSector() *Sector {
	return &Sector{}
}

// A sector with a flat floor and no ceiling.
func MakeFloorSector(height float32, tex texture.Ref) *Sector {
	return &Sector{
		Floor: MakeFlatFace(height, tex),
	}
}

// The wall stack on the given edge.
func (s *Sector) Walls(dir Direction) *WallStack {
	switch dir {
	case North:
		return &s.WallsNorth
	case East:
		return &s.WallsEast
	case South:
		return &s.WallsSouth
	case West:
		return &s.WallsWest
	case NwSe:
		return &s.WallsNwSe
	case NeSw:
		return &s.WallsNeSw
	}
	panic(fmt.Errorf("bad direction: %d", int(dir)))
}

func (s *Sector) AddWall(dir Direction, face VerticalFace) error {
	return s.Walls(dir).Add(face)
}

func (s *Sector) RemoveWall(dir Direction, i int) bool {
	return s.Walls(dir).RemoveAt(i)
}

// Reports whether the sector contributes any geometry at all.
func (s *Sector) HasGeometry() bool {
	if s.Floor != nil || s.Ceiling != nil {
		return true
	}
	for dir := North; dir <= NeSw; dir++ {
		if !s.Walls(dir).IsEmpty() {
			return true
		}
	}
	return false
}

func (s *Sector) WallCount() int {
	n := 0
	for dir := North; dir <= NeSw; dir++ {
		n += s.Walls(dir).Len()
	}
	return n
}

// Highest wall corner on the given edge, or false when the edge is empty.
func (s *Sector) WallsMaxHeight(dir Direction) (float32, bool) {
	stack := s.Walls(dir)
	if stack.IsEmpty() {
		return 0, false
	}
	max := stack.At(0).YMax()
	for i := 1; i < stack.Len(); i++ {
		if h := stack.At(i).YMax(); h > max {
			max = h
		}
	}
	return max, true
}

// Lowest wall corner on the given edge, or false when the edge is empty.
func (s *Sector) WallsMinHeight(dir Direction) (float32, bool) {
	stack := s.Walls(dir)
	if stack.IsEmpty() {
		return 0, false
	}
	min := stack.At(0).YMin()
	for i := 1; i < stack.Len(); i++ {
		if h := stack.At(i).YMin(); h < min {
			min = h
		}
	}
	return min, true
}

// Floor heights at the edge's (left, right) wall corners, or the fallback for
// a sector with no floor.
func (s *Sector) floorEdge(dir Direction, fallback float32) (float32, float32) {
	if s.Floor == nil {
		return fallback, fallback
	}
	return s.Floor.WallEdgeHeights(dir)
}

// Ceiling heights at the edge's (left, right) wall corners, or the fallback
// for a sector with no ceiling.
func (s *Sector) ceilingEdge(dir Direction, fallback float32) (float32, float32) {
	if s.Ceiling == nil {
		return fallback, fallback
	}
	return s.Ceiling.WallEdgeHeights(dir)
}
