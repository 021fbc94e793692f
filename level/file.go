package level

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/MobRulesGames/relic/logging"
)

// Hard limits enforced when loading level data. They bound memory for
// hostile or corrupt files; the editor never comes close to them in normal
// use.
const (
	MaxRooms     = 256
	MaxRoomSize  = 128
	MaxStringLen = 256
	MaxCoord     = 1e6
)

// A ValidationError points at the entity that failed the load-time checks.
type ValidationError struct {
	Context string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid level data: %s: %s", e.Context, e.Message)
}

func invalid(context, format string, args ...interface{}) error {
	return &ValidationError{
		Context: context,
		Message: fmt.Sprintf(format, args...),
	}
}

func checkFinite(context string, values ...float32) error {
	for _, v := range values {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return invalid(context, "non-finite value")
		}
		if f < -MaxCoord || f > MaxCoord {
			return invalid(context, "coordinate %g outside ±%g", f, float64(MaxCoord))
		}
	}
	return nil
}

// ValidateLevel runs every structural and numeric check the geometry core
// relies on. Everything past this gate may assume finite, in-range heights.
func ValidateLevel(l *Level) error {
	if len(l.Name) > MaxStringLen {
		return invalid("level", "name longer than %d bytes", MaxStringLen)
	}
	if len(l.Rooms) > MaxRooms {
		return invalid("level", "%d rooms, max is %d", len(l.Rooms), MaxRooms)
	}
	for i, room := range l.Rooms {
		if err := validateRoom(fmt.Sprintf("room %d", i), room); err != nil {
			return err
		}
	}
	return nil
}

func validateRoom(context string, r *Room) error {
	if r == nil {
		return invalid(context, "null room")
	}
	if len(r.Name) > MaxStringLen {
		return invalid(context, "name longer than %d bytes", MaxStringLen)
	}
	if r.Width < 1 || r.Depth < 1 || r.Width > MaxRoomSize || r.Depth > MaxRoomSize {
		return invalid(context, "size %dx%d outside 1..%d", r.Width, r.Depth, MaxRoomSize)
	}
	if len(r.Sectors) != r.Width*r.Depth {
		return invalid(context, "%d sectors for a %dx%d grid", len(r.Sectors), r.Width, r.Depth)
	}
	if err := checkFinite(context, r.Position.X, r.Position.Y, r.Position.Z); err != nil {
		return err
	}
	if math.IsNaN(float64(r.Ambient)) || r.Ambient < 0 || r.Ambient > 1 {
		return invalid(context, "ambient %g outside [0, 1]", r.Ambient)
	}
	for i, s := range r.Sectors {
		if s == nil {
			continue
		}
		sctx := fmt.Sprintf("%s sector %d", context, i)
		if err := validateSector(sctx, s); err != nil {
			return err
		}
	}
	return nil
}

func validateSector(context string, s *Sector) error {
	if err := validateHorizontalFace(context+" floor", s.Floor); err != nil {
		return err
	}
	if err := validateHorizontalFace(context+" ceiling", s.Ceiling); err != nil {
		return err
	}
	for dir := North; dir <= NeSw; dir++ {
		stack := s.Walls(dir)
		for i := 0; i < stack.Len(); i++ {
			w := stack.At(i)
			wctx := fmt.Sprintf("%s %v wall %d", context, dir, i)
			if err := checkFinite(wctx, w.Heights[:]...); err != nil {
				return err
			}
			if err := checkRefLen(wctx, w.Texture.Pack, w.Texture.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateHorizontalFace(context string, f *HorizontalFace) error {
	if f == nil {
		return nil
	}
	if err := checkFinite(context, f.Heights[:]...); err != nil {
		return err
	}
	if err := checkRefLen(context, f.Texture.Pack, f.Texture.Name); err != nil {
		return err
	}
	return checkRefLen(context, f.Texture2.Pack, f.Texture2.Name)
}

func checkRefLen(context string, parts ...string) error {
	for _, p := range parts {
		if len(p) > MaxStringLen {
			return invalid(context, "texture reference longer than %d bytes", MaxStringLen)
		}
	}
	return nil
}

// SerializeLevel encodes the level as zstd-compressed JSON, the normal
// on-disk form.
func SerializeLevel(l *Level) ([]byte, error) {
	raw, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(raw, nil), nil
}

// Plain JSON opens with '{', optionally after whitespace. Anything else is
// assumed compressed.
func looksLikeJson(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// ParseLevelData decodes level data in either on-disk form: compressed, or
// the plain JSON that older builds wrote and that tests like to hand-author.
// The result is validated and has fresh bounds.
func ParseLevelData(data []byte) (*Level, error) {
	raw := data
	if !looksLikeJson(data) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		raw, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("decompressing level data: %w", err)
		}
	}
	var l Level
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("parsing level data: %w", err)
	}
	if err := ValidateLevel(&l); err != nil {
		return nil, err
	}
	l.RecalculateBounds()
	return &l, nil
}

func LoadLevelFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := ParseLevelData(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	logging.Info("loaded level", "path", path, "rooms", len(l.Rooms))
	return l, nil
}

func SaveLevelFile(l *Level, path string) error {
	if err := ValidateLevel(l); err != nil {
		return err
	}
	data, err := SerializeLevel(l)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	logging.Info("saved level", "path", path, "bytes", len(data))
	return nil
}
