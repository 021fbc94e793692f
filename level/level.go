package level

import (
	"github.com/MobRulesGames/mathgl"
	"github.com/MobRulesGames/relic/texture"
)

// A Level is the collection of rooms making up one map.
type Level struct {
	Name  string
	Rooms []*Room
}

func MakeLevel(name string) *Level {
	return &Level{Name: name}
}

// Appends room and returns its index.
func (l *Level) AddRoom(room *Room) int {
	l.Rooms = append(l.Rooms, room)
	return len(l.Rooms) - 1
}

// Index of the first room whose bounds contain the world point, or -1.
func (l *Level) FindRoomAt(p mathgl.Vec3) int {
	for i, room := range l.Rooms {
		if room.ContainsPoint(p) {
			return i
		}
	}
	return -1
}

// Like FindRoomAt but checks hint first. Edits cluster in one room, so the
// hint almost always hits.
func (l *Level) FindRoomAtWithHint(p mathgl.Vec3, hint int) int {
	if hint >= 0 && hint < len(l.Rooms) && l.Rooms[hint].ContainsPoint(p) {
		return hint
	}
	return l.FindRoomAt(p)
}

func (l *Level) RecalculateBounds() {
	for _, room := range l.Rooms {
		room.RecalculateBounds()
	}
}

// The smallest useful level: a single room with one floor sector at height
// zero. New files in the editor start from this.
func MakeEmptyLevel() *Level {
	l := MakeLevel("untitled")
	room := MakeRoom("room", mathgl.Vec3{}, 1, 1)
	room.SetFloor(0, 0, 0, texture.MakeRef("SAMPLE", "floor_01"))
	l.AddRoom(room)
	return l
}

// A fully enclosed 2x2 room with floor, ceiling, and perimeter walls.
func MakeTestLevel() *Level {
	l := MakeLevel("test")
	room := MakeRoom("room", mathgl.Vec3{}, 2, 2)
	floorTex := texture.MakeRef("SAMPLE", "floor_01")
	wallTex := texture.MakeRef("SAMPLE", "wall_01")
	for x := 0; x < 2; x++ {
		for z := 0; z < 2; z++ {
			s := room.EnsureSector(x, z)
			s.Floor = MakeFlatFace(0, floorTex)
			s.Ceiling = MakeFlatFace(2048, floorTex)
		}
	}
	room.EachSector(func(x, z int, s *Sector) {
		if z == 0 {
			s.AddWall(North, MakeWall(0, 2048, wallTex))
		}
		if z == room.Depth-1 {
			s.AddWall(South, MakeWall(0, 2048, wallTex))
		}
		if x == 0 {
			s.AddWall(West, MakeWall(0, 2048, wallTex))
		}
		if x == room.Width-1 {
			s.AddWall(East, MakeWall(0, 2048, wallTex))
		}
	})
	room.RecalculateBounds()
	l.AddRoom(room)
	return l
}
