package texture

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/MobRulesGames/relic/base"
	"github.com/MobRulesGames/relic/logging"
)

// A PackDef lists every texture name available in one pack. Packs are
// directories of image files; the level format refers to textures by
// (pack, name) so the editor can validate references without touching pixel
// data.
type PackDef struct {
	// Name of the pack, unique among all loaded packs.
	Name string

	// Texture names, without extensions.
	Textures []string
}

func (p *PackDef) Has(name string) bool {
	for _, t := range p.Textures {
		if t == name {
			return true
		}
	}
	return false
}

var packRegistry map[string]*PackDef

func init() {
	packRegistry = make(map[string]*PackDef)
	base.RegisterRegistry("texture-packs", packRegistry)
}

func GetAllPackNames() []string {
	return base.GetAllNamesInRegistry("texture-packs")
}

func GetPack(name string) *PackDef {
	return packRegistry[name]
}

// Registers an in-memory pack. Mostly useful for tests and for packs built by
// tools rather than loaded from disk.
func RegisterPack(def *PackDef) {
	base.RegisterObject("texture-packs", def)
}

// Drops all loaded packs.
func Reset() {
	base.RemoveRegistry("texture-packs")
	packRegistry = make(map[string]*PackDef)
	base.RegisterRegistry("texture-packs", packRegistry)
}

func isImagePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".jpg" || ext == ".png"
}

// Loads one pack from a directory of images. The pack is named after the
// directory.
func LoadPackFromDir(dir string) (*PackDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	def := &PackDef{
		Name: filepath.Base(dir),
	}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !isImagePath(entry.Name()) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		def.Textures = append(def.Textures, name)
	}

	RegisterPack(def)
	logging.Info("loaded texture pack", "pack", def.Name, "textures", len(def.Textures))
	return def, nil
}

// Loads every subdirectory of dir as a pack.
func LoadAllPacksInDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if _, err := LoadPackFromDir(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Reports whether ref names a texture in a loaded pack. Invalid refs never
// exist.
func Exists(ref Ref) bool {
	if !ref.IsValid() {
		return false
	}
	pack, ok := packRegistry[ref.Pack]
	if !ok {
		return false
	}
	return pack.Has(ref.Name)
}
