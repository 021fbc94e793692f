package leveltest

import (
	"github.com/MobRulesGames/mathgl"

	"github.com/MobRulesGames/relic/level"
	"github.com/MobRulesGames/relic/texture"
)

func GivenAFloorRef() texture.Ref {
	return texture.MakeRef("SAMPLE", "floor_01")
}

func GivenAWallRef() texture.Ref {
	return texture.MakeRef("SAMPLE", "wall_01")
}

// A sector with a flat floor at 0 and a flat ceiling at 2048.
func GivenAnEnclosedSector() *level.Sector {
	s := level.MakeSector()
	s.Floor = level.MakeFlatFace(0, GivenAFloorRef())
	s.Ceiling = level.MakeFlatFace(2048, GivenAFloorRef())
	return s
}

// A sector whose floor rises from 0 on the west side to 'rise' on the east.
func GivenASlopedFloorSector(rise float32) *level.Sector {
	s := level.MakeSector()
	s.Floor = level.MakeSlopedFace([4]float32{0, rise, rise, 0}, GivenAFloorRef())
	return s
}

func GivenARoom() *level.Room {
	return level.MakeRoom("test-room", mathgl.Vec3{}, 2, 2)
}

// A room with a flat floor in every cell.
func GivenAFlooredRoom() *level.Room {
	room := GivenARoom()
	for x := 0; x < room.Width; x++ {
		for z := 0; z < room.Depth; z++ {
			room.SetFloor(x, z, 0, GivenAFloorRef())
		}
	}
	return room
}

func GivenALevel() *level.Level {
	return level.MakeTestLevel()
}
