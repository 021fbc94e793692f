package level

import (
	"encoding/json"
	"fmt"
)

// Direction names one of the six sides of a sector that a wall can occupy:
// the four cardinal edges plus the two corner-to-corner diagonals.
//
// Grid axes: North = -Z, East = +X, South = +Z, West = -X.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	// Diagonal from the NW corner to the SE corner.
	NwSe
	// Diagonal from the NE corner to the SW corner.
	NeSw
)

var directionNames = [...]string{
	North: "North",
	East:  "East",
	South: "South",
	West:  "West",
	NwSe:  "NwSe",
	NeSw:  "NeSw",
}

func (d Direction) String() string {
	if d < North || d > NeSw {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

func (d Direction) IsDiagonal() bool {
	return d == NwSe || d == NeSw
}

// The direction facing back at this one. Diagonals are their own opposite:
// the same geometric span seen from the other side.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	case NwSe:
		return NwSe
	case NeSw:
		return NeSw
	}
	panic(fmt.Errorf("bad direction: %d", int(d)))
}

// Grid offset to the neighbouring sector across this edge. Diagonals have no
// neighbour; they stay within their own sector.
func (d Direction) Offset() (dx, dz int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	case NwSe, NeSw:
		return 0, 0
	}
	panic(fmt.Errorf("bad direction: %d", int(d)))
}

// Indices into a horizontal face's [NW, NE, SE, SW] corner array for the wall
// slot on this side, ordered (left, right) in the wall's own outward-facing
// local frame:
//
//	North: left=NW right=NE
//	East:  left=NE right=SE
//	South: left=SE right=SW
//	West:  left=SW right=NW
//	NwSe:  left=NW right=SE
//	NeSw:  left=NE right=SW
func (d Direction) wallCorners() (left, right int) {
	switch d {
	case North:
		return cornerNW, cornerNE
	case East:
		return cornerNE, cornerSE
	case South:
		return cornerSE, cornerSW
	case West:
		return cornerSW, cornerNW
	case NwSe:
		return cornerNW, cornerSE
	case NeSw:
		return cornerNE, cornerSW
	}
	panic(fmt.Errorf("bad direction: %d", int(d)))
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Direction) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, candidate := range directionNames {
		if candidate == name {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("unknown direction: %q", name)
}

// SplitDirection picks which diagonal divides a floor or ceiling quad into
// the two triangles used for rendering and height interpolation.
type SplitDirection int

const (
	// Split along the NW-SE diagonal: triangles (NW,NE,SE) and (NW,SE,SW).
	SplitNwSe SplitDirection = iota
	// Split along the NE-SW diagonal: triangles (NW,NE,SW) and (NE,SE,SW).
	SplitNeSw
)

func (s SplitDirection) String() string {
	switch s {
	case SplitNwSe:
		return "NwSe"
	case SplitNeSw:
		return "NeSw"
	}
	return fmt.Sprintf("SplitDirection(%d)", int(s))
}

func (s SplitDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SplitDirection) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "NwSe":
		*s = SplitNwSe
	case "NeSw":
		*s = SplitNeSw
	default:
		return fmt.Errorf("unknown split direction: %q", name)
	}
	return nil
}
