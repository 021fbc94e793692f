package level_test

import (
	"testing"

	"github.com/MobRulesGames/relic/level"
	"github.com/MobRulesGames/relic/level/leveltest"
	. "github.com/smartystreets/goconvey/convey"
)

func prefer(h float32) *float32 {
	return &h
}

func addWallHeights(s *level.Sector, dir level.Direction, heights [4]float32) {
	err := s.AddWall(dir, level.MakeSlopedWall(heights, leveltest.GivenAWallRef()))
	So(err, ShouldBeNil)
}

func TestNextWallPosition(t *testing.T) {
	Convey("NextWallPosition", t, func() {
		Convey("an empty edge between flat floor and ceiling fills floor to ceiling", func() {
			s := leveltest.GivenAnEnclosedSector()
			heights, err := s.NextWallPosition(level.North, 0, 0, nil)
			So(err, ShouldBeNil)
			So(heights, ShouldResemble, [4]float32{0, 0, 2048, 2048})

			Convey("and the edge is sealed afterwards", func() {
				addWallHeights(s, level.North, heights)
				_, err := s.NextWallPosition(level.North, 0, 0, nil)
				So(err, ShouldEqual, level.ErrNoGap)
			})
		})

		Convey("fallback heights stand in for missing surfaces", func() {
			s := level.MakeSector()
			heights, err := s.NextWallPosition(level.East, -512, 1536, nil)
			So(err, ShouldBeNil)
			So(heights, ShouldResemble, [4]float32{-512, -512, 1536, 1536})
		})

		Convey("a full slot never offers a gap", func() {
			s := leveltest.GivenAnEnclosedSector()
			addWallHeights(s, level.North, [4]float32{0, 0, 512, 512})
			addWallHeights(s, level.North, [4]float32{768, 768, 1280, 1280})
			addWallHeights(s, level.North, [4]float32{1536, 1536, 2048, 2048})

			_, err := s.NextWallPosition(level.North, 0, 0, nil)
			So(err, ShouldEqual, level.ErrWallsFull)
		})

		Convey("one wall mid-edge leaves a gap below and a gap above", func() {
			s := leveltest.GivenAnEnclosedSector()
			addWallHeights(s, level.North, [4]float32{512, 512, 1536, 1536})

			Convey("equal gaps resolve to the lower one", func() {
				heights, err := s.NextWallPosition(level.North, 0, 0, nil)
				So(err, ShouldBeNil)
				So(heights, ShouldResemble, [4]float32{0, 0, 512, 512})
			})

			Convey("a preferred height picks the nearest gap", func() {
				heights, err := s.NextWallPosition(level.North, 0, 0, prefer(1900))
				So(err, ShouldBeNil)
				So(heights, ShouldResemble, [4]float32{1536, 1536, 2048, 2048})

				heights, err = s.NextWallPosition(level.North, 0, 0, prefer(100))
				So(err, ShouldBeNil)
				So(heights, ShouldResemble, [4]float32{0, 0, 512, 512})
			})

			Convey("filling both gaps seals the edge", func() {
				first, err := s.NextWallPosition(level.North, 0, 0, nil)
				So(err, ShouldBeNil)
				addWallHeights(s, level.North, first)

				second, err := s.NextWallPosition(level.North, 0, 0, nil)
				So(err, ShouldBeNil)
				So(second, ShouldResemble, [4]float32{1536, 1536, 2048, 2048})
				addWallHeights(s, level.North, second)

				_, err = s.NextWallPosition(level.North, 0, 0, nil)
				So(err, ShouldEqual, level.ErrWallsFull)
			})
		})

		Convey("unequal gaps without a preference pick the largest", func() {
			s := leveltest.GivenAnEnclosedSector()
			addWallHeights(s, level.North, [4]float32{512, 512, 896, 896})

			// 512 below versus 1152 above.
			heights, err := s.NextWallPosition(level.North, 0, 0, nil)
			So(err, ShouldBeNil)
			So(heights, ShouldResemble, [4]float32{896, 896, 2048, 2048})
		})

		Convey("gaps at or below the threshold are not fillable", func() {
			s := leveltest.GivenAnEnclosedSector()
			addWallHeights(s, level.North, [4]float32{256, 256, 1792, 1792})

			// 256 below and 256 above, both exactly at the threshold.
			_, err := s.NextWallPosition(level.North, 0, 0, nil)
			So(err, ShouldEqual, level.ErrNoGap)
		})

		Convey("a sloped floor under a flat wall yields a triangular fill", func() {
			s := leveltest.GivenASlopedFloorSector(1024)
			addWallHeights(s, level.North, [4]float32{1024, 1024, 2048, 2048})

			// Left corner opens 1024 units, right corner none; the right side
			// collapses to a point.
			heights, err := s.NextWallPosition(level.North, 0, 2048, nil)
			So(err, ShouldBeNil)
			So(heights, ShouldResemble, [4]float32{0, 1024, 1024, 1024})
		})
	})
}

func TestNextWallPositionEmptySlopedEdge(t *testing.T) {
	Convey("an empty edge over a sloped floor", t, func() {
		s := leveltest.GivenASlopedFloorSector(1024)
		s.Ceiling = level.MakeFlatFace(2048, leveltest.GivenAFloorRef())

		Convey("without a preference the wall spans the whole opening", func() {
			heights, err := s.NextWallPosition(level.North, 0, 0, nil)
			So(err, ShouldBeNil)
			So(heights, ShouldResemble, [4]float32{0, 1024, 2048, 2048})
		})

		Convey("a low preference takes the fill against the floor slope", func() {
			heights, err := s.NextWallPosition(level.North, 0, 0, prefer(100))
			So(err, ShouldBeNil)
			So(heights, ShouldResemble, [4]float32{0, 1024, 1024, 1024})
		})

		Convey("a high preference takes the fill up to the ceiling", func() {
			heights, err := s.NextWallPosition(level.North, 0, 0, prefer(2000))
			So(err, ShouldBeNil)
			So(heights, ShouldResemble, [4]float32{1024, 1024, 2048, 2048})
		})
	})
}

func TestNextDiagonalWallPosition(t *testing.T) {
	Convey("NextDiagonalWallPosition", t, func() {
		s := leveltest.GivenAnEnclosedSector()

		Convey("fits walls along the diagonal the same way", func() {
			heights, err := s.NextDiagonalWallPosition(level.NwSe, 0, 0, nil)
			So(err, ShouldBeNil)
			So(heights, ShouldResemble, [4]float32{0, 0, 2048, 2048})

			addWallHeights(s, level.NwSe, heights)
			_, err = s.NextDiagonalWallPosition(level.NwSe, 0, 0, nil)
			So(err, ShouldEqual, level.ErrNoGap)
		})

		Convey("the two diagonals are independent slots", func() {
			addWallHeights(s, level.NwSe, [4]float32{0, 0, 2048, 2048})
			heights, err := s.NextDiagonalWallPosition(level.NeSw, 0, 0, nil)
			So(err, ShouldBeNil)
			So(heights, ShouldResemble, [4]float32{0, 0, 2048, 2048})
		})

		Convey("a sloped floor shapes the diagonal fill", func() {
			sloped := leveltest.GivenASlopedFloorSector(1024)
			// NW=0, SE=1024 along the NW-SE diagonal.
			heights, err := sloped.NextDiagonalWallPosition(level.NwSe, 0, 2048, nil)
			So(err, ShouldBeNil)
			So(heights, ShouldResemble, [4]float32{0, 1024, 2048, 2048})
		})

		Convey("cardinal-only callers cannot ask for a diagonal", func() {
			So(func() {
				sloped := leveltest.GivenASlopedFloorSector(0)
				sloped.NextDiagonalWallPosition(level.North, 0, 0, nil)
			}, ShouldPanic)
		})
	})
}

func TestRepeatedFillsNeverOverlap(t *testing.T) {
	Convey("repeatedly inserting the proposed wall", t, func() {
		s := level.MakeSector()
		s.Floor = level.MakeSlopedFace([4]float32{0, 768, 768, 0}, leveltest.GivenAFloorRef())
		s.Ceiling = level.MakeSlopedFace([4]float32{2048, 2816, 2816, 2048}, leveltest.GivenAFloorRef())

		for i := 0; i < level.MaxWallsPerEdge; i++ {
			heights, err := s.NextWallPosition(level.East, 0, 0, prefer(float32(i)*700))
			if err != nil {
				// Ran out of fillable space before running out of slots.
				So(err, ShouldEqual, level.ErrNoGap)
				return
			}
			covered := s.Walls(level.East).Walls()
			for _, w := range covered {
				// The proposal may touch existing walls but never intrude.
				bottom, top := w.LeftCoverage()
				So(heights[3] <= bottom || heights[0] >= top, ShouldBeTrue)
				bottom, top = w.RightCoverage()
				So(heights[2] <= bottom || heights[1] >= top, ShouldBeTrue)
			}
			addWallHeights(s, level.East, heights)
		}
	})
}
