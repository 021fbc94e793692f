// level-info prints a summary of a saved level file: rooms, geometry counts,
// vertical extents, and optionally which texture references are missing from
// a pack directory.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MobRulesGames/relic/base"
	"github.com/MobRulesGames/relic/level"
	"github.com/MobRulesGames/relic/logging"
	"github.com/MobRulesGames/relic/texture"
)

var (
	packsDir = flag.String("packs", "", "texture pack directory; when set, texture references are checked against it")
	dataDir  = flag.String("data", ".", "directory for logs and relative paths")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <level-file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	base.SetDatadir(*dataDir)
	base.SetupLogger(*dataDir)

	if *packsDir != "" {
		if err := texture.LoadAllPacksInDir(*packsDir); err != nil {
			logging.Error("loading texture packs", "dir", *packsDir, "err", err)
			os.Exit(1)
		}
	}

	path := flag.Arg(0)
	l, err := level.LoadLevelFile(path)
	if err != nil {
		logging.Error("loading level", "path", path, "err", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d room(s)\n", l.Name, len(l.Rooms))
	missing := make(map[texture.Ref]bool)
	for i, room := range l.Rooms {
		sectors, walls := 0, 0
		room.EachSector(func(x, z int, s *level.Sector) {
			sectors++
			walls += s.WallCount()
			collectRefs(s, missing)
		})
		wb := room.WorldBounds()
		fmt.Printf("  room %d %q: %dx%d grid, %d sector(s), %d wall(s), y %g..%g\n",
			i, room.Name, room.Width, room.Depth, sectors, walls, wb.Min.Y, wb.Max.Y)
	}

	if *packsDir != "" {
		bad := 0
		for ref := range missing {
			if ref.IsValid() && !texture.Exists(ref) {
				fmt.Printf("  missing texture: %v\n", ref)
				bad++
			}
		}
		if bad > 0 {
			os.Exit(1)
		}
		fmt.Println("all texture references resolve")
	}
}

func collectRefs(s *level.Sector, into map[texture.Ref]bool) {
	for _, f := range []*level.HorizontalFace{s.Floor, s.Ceiling} {
		if f == nil {
			continue
		}
		into[f.Texture] = true
		if f.Texture2.IsValid() {
			into[f.Texture2] = true
		}
	}
	for dir := level.North; dir <= level.NeSw; dir++ {
		stack := s.Walls(dir)
		for i := 0; i < stack.Len(); i++ {
			into[stack.At(i).Texture] = true
		}
	}
}
