package texture

// A Ref identifies a texture by pack and name. The zero value is the "none"
// reference, which renderers substitute with a fallback checkerboard.
type Ref struct {
	// Texture pack name (e.g. "SAMPLE")
	Pack string
	// Texture name without extension (e.g. "floor_01")
	Name string
}

func MakeRef(pack, name string) Ref {
	return Ref{
		Pack: pack,
		Name: name,
	}
}

// The reference that doesn't refer to anything.
func None() Ref {
	return Ref{}
}

// A Ref is valid when both parts are non-empty. Validity says nothing about
// whether the texture actually exists in a loaded pack; see Exists.
func (r Ref) IsValid() bool {
	return r.Pack != "" && r.Name != ""
}

func (r Ref) String() string {
	if !r.IsValid() {
		return "<none>"
	}
	return r.Pack + "/" + r.Name
}
