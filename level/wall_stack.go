package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Walls that can share one edge of a sector. Three is enough for a
// floor-to-ledge riser, a mid wall over a doorway, and a ceiling soffit.
const MaxWallsPerEdge = 3

// ErrWallsFull is returned when adding a wall to an edge that already holds
// MaxWallsPerEdge walls.
var ErrWallsFull = errors.New("wall slot is full")

// A WallStack holds the walls occupying one edge of a sector, in insertion
// order. The zero value is an empty stack.
type WallStack struct {
	faces [MaxWallsPerEdge]VerticalFace
	count int
}

func (ws *WallStack) Len() int {
	return ws.count
}

func (ws *WallStack) IsEmpty() bool {
	return ws.count == 0
}

func (ws *WallStack) IsFull() bool {
	return ws.count >= MaxWallsPerEdge
}

// The occupied walls. The returned slice aliases the stack's storage; don't
// hold it across an Add or Remove.
func (ws *WallStack) Walls() []VerticalFace {
	return ws.faces[:ws.count]
}

func (ws *WallStack) At(i int) *VerticalFace {
	if i < 0 || i >= ws.count {
		return nil
	}
	return &ws.faces[i]
}

func (ws *WallStack) Add(face VerticalFace) error {
	if ws.IsFull() {
		return ErrWallsFull
	}
	ws.faces[ws.count] = face
	ws.count++
	return nil
}

func (ws *WallStack) RemoveAt(i int) bool {
	if i < 0 || i >= ws.count {
		return false
	}
	copy(ws.faces[i:], ws.faces[i+1:ws.count])
	ws.count--
	ws.faces[ws.count] = VerticalFace{}
	return true
}

func (ws *WallStack) Clear() {
	*ws = WallStack{}
}

// Walls ordered bottom-up by average bottom height. Ties keep insertion
// order.
func (ws *WallStack) sortedByBottom() []VerticalFace {
	walls := make([]VerticalFace, ws.count)
	copy(walls, ws.Walls())
	sort.SliceStable(walls, func(i, j int) bool {
		return walls[i].YBottom() < walls[j].YBottom()
	})
	return walls
}

func (ws WallStack) MarshalJSON() ([]byte, error) {
	return json.Marshal(ws.faces[:ws.count])
}

func (ws *WallStack) UnmarshalJSON(data []byte) error {
	var faces []VerticalFace
	if err := json.Unmarshal(data, &faces); err != nil {
		return err
	}
	if len(faces) > MaxWallsPerEdge {
		return fmt.Errorf("%d walls on one edge, max is %d", len(faces), MaxWallsPerEdge)
	}
	ws.Clear()
	for _, f := range faces {
		ws.faces[ws.count] = f
		ws.count++
	}
	return nil
}
