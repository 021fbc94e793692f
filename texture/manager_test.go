package texture_test

import (
	"testing"

	"github.com/MobRulesGames/relic/texture"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRefSpecs(t *testing.T) {
	Convey("texture.Ref", t, func() {
		Convey("zero value is the none reference", func() {
			So(texture.None().IsValid(), ShouldBeFalse)
			So(texture.None().String(), ShouldEqual, "<none>")
		})

		Convey("needs both pack and name to be valid", func() {
			So(texture.MakeRef("SAMPLE", "").IsValid(), ShouldBeFalse)
			So(texture.MakeRef("", "floor_01").IsValid(), ShouldBeFalse)
			So(texture.MakeRef("SAMPLE", "floor_01").IsValid(), ShouldBeTrue)
		})

		Convey("prints as pack/name", func() {
			So(texture.MakeRef("SAMPLE", "floor_01").String(), ShouldEqual, "SAMPLE/floor_01")
		})
	})
}

func TestPackCatalog(t *testing.T) {
	Convey("texture pack catalog", t, func() {
		texture.Reset()

		Convey("loads packs from a directory tree", func() {
			err := texture.LoadAllPacksInDir("testdata/packs")
			So(err, ShouldBeNil)
			So(texture.GetAllPackNames(), ShouldResemble, []string{"GOTHIC", "SAMPLE"})

			Convey("only image files become textures", func() {
				sample := texture.GetPack("SAMPLE")
				So(sample, ShouldNotBeNil)
				So(sample.Textures, ShouldResemble, []string{"floor_01", "wall_01"})
				So(sample.Has("notes"), ShouldBeFalse)
			})

			Convey("Exists consults the loaded packs", func() {
				So(texture.Exists(texture.MakeRef("SAMPLE", "floor_01")), ShouldBeTrue)
				So(texture.Exists(texture.MakeRef("GOTHIC", "arch")), ShouldBeTrue)
				So(texture.Exists(texture.MakeRef("SAMPLE", "missing")), ShouldBeFalse)
				So(texture.Exists(texture.MakeRef("NOPACK", "floor_01")), ShouldBeFalse)
				So(texture.Exists(texture.None()), ShouldBeFalse)
			})
		})

		Convey("supports in-memory packs", func() {
			texture.RegisterPack(&texture.PackDef{
				Name:     "MEMORY",
				Textures: []string{"brick"},
			})
			So(texture.Exists(texture.MakeRef("MEMORY", "brick")), ShouldBeTrue)
		})
	})
}
