package level_test

import (
	"testing"

	"github.com/MobRulesGames/mathgl"
	"github.com/MobRulesGames/relic/level"
	"github.com/MobRulesGames/relic/level/leveltest"
	"github.com/MobRulesGames/relic/texture"
	. "github.com/smartystreets/goconvey/convey"
)

// A resolver that hands out stable small ints per distinct reference.
func makeResolver() (func(texture.Ref) int, map[texture.Ref]int) {
	seen := make(map[texture.Ref]int)
	return func(ref texture.Ref) int {
		if id, ok := seen[ref]; ok {
			return id
		}
		id := len(seen)
		seen[ref] = id
		return id
	}, seen
}

func TestBuildRenderData(t *testing.T) {
	Convey("BuildRenderData", t, func() {
		resolve, seen := makeResolver()

		Convey("flattens the test level into triangles", func() {
			rd := level.BuildRenderData(leveltest.GivenALevel(), resolve)

			// 4 floors + 4 ceilings at 2 triangles each, plus 8 perimeter
			// walls at 2 triangles each.
			So(len(rd.Faces), ShouldEqual, 32)
			So(len(rd.Vertices), ShouldEqual, 96)
			So(len(seen), ShouldEqual, 2)

			Convey("every index stays in range", func() {
				for _, f := range rd.Faces {
					So(f.V0, ShouldBeLessThan, len(rd.Vertices))
					So(f.V2, ShouldBeLessThan, len(rd.Vertices))
				}
			})
		})

		Convey("floors face up, ceilings face down", func() {
			l := level.MakeLevel("one")
			room := level.MakeRoom("r", mathgl.Vec3{}, 1, 1)
			room.SetFloor(0, 0, 0, leveltest.GivenAFloorRef())
			room.SetCeiling(0, 0, 2048, leveltest.GivenAFloorRef())
			l.AddRoom(room)

			rd := level.BuildRenderData(l, resolve)
			So(len(rd.Faces), ShouldEqual, 4)
			So(rd.Vertices[rd.Faces[0].V0].Normal.Y, ShouldEqual, 1)
			So(rd.Vertices[rd.Faces[2].V0].Normal.Y, ShouldEqual, -1)
		})

		Convey("room position offsets every vertex", func() {
			l := level.MakeLevel("offset")
			room := level.MakeRoom("r", mathgl.Vec3{X: 4096, Y: 512, Z: -1024}, 1, 1)
			room.SetFloor(0, 0, 0, leveltest.GivenAFloorRef())
			l.AddRoom(room)

			rd := level.BuildRenderData(l, resolve)
			for _, v := range rd.Vertices {
				So(v.Pos.X, ShouldBeBetweenOrEqual, 4096, 4096+level.SectorSize)
				So(v.Pos.Y, ShouldEqual, 512)
				So(v.Pos.Z, ShouldBeBetweenOrEqual, -1024, -1024+level.SectorSize)
			}
		})

		Convey("the second triangle can use the second texture layer", func() {
			l := level.MakeLevel("blend")
			room := level.MakeRoom("r", mathgl.Vec3{}, 1, 1)
			floor := level.MakeFlatFace(0, texture.MakeRef("SAMPLE", "floor_01"))
			floor.Texture2 = texture.MakeRef("SAMPLE", "wall_01")
			room.EnsureSector(0, 0).Floor = floor
			l.AddRoom(room)

			rd := level.BuildRenderData(l, resolve)
			So(len(rd.Faces), ShouldEqual, 2)
			So(rd.Faces[0].Texture, ShouldNotEqual, rd.Faces[1].Texture)
		})

		Convey("double-sided walls emit both windings", func() {
			l := level.MakeLevel("walls")
			room := level.MakeRoom("r", mathgl.Vec3{}, 1, 1)
			wall := level.MakeWall(0, 1024, leveltest.GivenAWallRef())
			wall.Normals = level.NormalBoth
			room.EnsureSector(0, 0).AddWall(level.North, wall)
			l.AddRoom(room)

			rd := level.BuildRenderData(l, resolve)
			So(len(rd.Faces), ShouldEqual, 4)

			// Front side of a north wall looks into the room, toward +Z.
			So(rd.Vertices[rd.Faces[0].V0].Normal.Z, ShouldEqual, 1)
			So(rd.Vertices[rd.Faces[2].V0].Normal.Z, ShouldEqual, -1)
		})

		Convey("transparency and blend flags carry through", func() {
			l := level.MakeLevel("flags")
			room := level.MakeRoom("r", mathgl.Vec3{}, 1, 1)
			grate := level.MakeWall(0, 1024, leveltest.GivenAWallRef())
			grate.Blend = level.BlendAlpha
			grate.BlackIsTransparent = true
			grate.Solid = false
			room.EnsureSector(0, 0).AddWall(level.East, grate)
			l.AddRoom(room)

			rd := level.BuildRenderData(l, resolve)
			So(rd.Faces[0].Blend, ShouldEqual, level.BlendAlpha)
			So(rd.Faces[0].BlackIsTransparent, ShouldBeTrue)
		})
	})
}
