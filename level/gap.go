package level

import (
	"errors"

	"github.com/MobRulesGames/relic/logging"
)

// Smallest vertical opening worth filling with a wall. Gaps at or below this
// are treated as already sealed.
const MinGap float32 = 256.0

// ErrNoGap is returned when every remaining opening on an edge is at or
// below MinGap.
var ErrNoGap = errors.New("no gap large enough for a wall")

// A vertical opening on one edge, bounded per corner so sloped floors,
// ceilings, and wall edges all carry through.
type wallGap struct {
	bottomLeft  float32
	bottomRight float32
	topLeft     float32
	topRight    float32
}

func (g wallGap) leftSize() float32  { return g.topLeft - g.bottomLeft }
func (g wallGap) rightSize() float32 { return g.topRight - g.bottomRight }

func (g wallGap) maxSize() float32 {
	if l, r := g.leftSize(), g.rightSize(); l > r {
		return l
	}
	return g.rightSize()
}

func (g wallGap) midpoint() float32 {
	bottom := (g.bottomLeft + g.bottomRight) / 2
	top := (g.topLeft + g.topRight) / 2
	return (bottom + top) / 2
}

// Wall heights [BL, BR, TR, TL] filling this gap exactly. A corner whose own
// opening is at or below MinGap collapses to a single height so the result
// is a triangle instead of an overlapping quad.
func (g wallGap) fillHeights() [4]float32 {
	heights := [4]float32{g.bottomLeft, g.bottomRight, g.topRight, g.topLeft}
	if g.leftSize() <= MinGap {
		mid := (g.bottomLeft + g.topLeft) / 2
		heights[wallBL] = mid
		heights[wallTL] = mid
	} else if g.rightSize() <= MinGap {
		mid := (g.bottomRight + g.topRight) / 2
		heights[wallBR] = mid
		heights[wallTR] = mid
	}
	return heights
}

// NextWallPosition proposes heights [BL, BR, TR, TL] for a new wall on the
// given cardinal edge, fitted into the largest remaining opening between the
// floor, the existing walls, and the ceiling. fallbackFloor and
// fallbackCeiling stand in for a missing floor or ceiling. A non-nil
// preferred height steers the choice toward the gap whose midpoint is
// nearest to it.
//
// Returns ErrWallsFull when the edge already holds MaxWallsPerEdge walls and
// ErrNoGap when no opening exceeds MinGap. Neither is a fault; callers
// typically stop offering wall placement on that edge.
func (s *Sector) NextWallPosition(dir Direction, fallbackFloor, fallbackCeiling float32, preferred *float32) ([4]float32, error) {
	return s.nextWallInStack(dir, fallbackFloor, fallbackCeiling, preferred)
}

// NextDiagonalWallPosition is NextWallPosition for the two diagonal slots.
// Diagonal walls span corner to corner, so their gaps come from the floor and
// ceiling heights along the diagonal rather than along an outer edge.
func (s *Sector) NextDiagonalWallPosition(diag Direction, fallbackFloor, fallbackCeiling float32, preferred *float32) ([4]float32, error) {
	if !diag.IsDiagonal() {
		panic("NextDiagonalWallPosition wants NwSe or NeSw")
	}
	return s.nextWallInStack(diag, fallbackFloor, fallbackCeiling, preferred)
}

func (s *Sector) nextWallInStack(dir Direction, fallbackFloor, fallbackCeiling float32, preferred *float32) ([4]float32, error) {
	var none [4]float32
	stack := s.Walls(dir)
	if stack.IsFull() {
		return none, ErrWallsFull
	}

	floorLeft, floorRight := s.floorEdge(dir, fallbackFloor)
	ceilLeft, ceilRight := s.ceilingEdge(dir, fallbackCeiling)

	if stack.IsEmpty() {
		return emptyEdgeWall(floorLeft, floorRight, ceilLeft, ceilRight, preferred), nil
	}

	walls := stack.sortedByBottom()
	var gaps []wallGap

	// Floor up to the lowest wall.
	first := &walls[0]
	gaps = append(gaps, wallGap{
		bottomLeft:  floorLeft,
		bottomRight: floorRight,
		topLeft:     first.Heights[wallBL],
		topRight:    first.Heights[wallBR],
	})
	// Between consecutive walls.
	for i := 0; i+1 < len(walls); i++ {
		lower, upper := &walls[i], &walls[i+1]
		gaps = append(gaps, wallGap{
			bottomLeft:  lower.Heights[wallTL],
			bottomRight: lower.Heights[wallTR],
			topLeft:     upper.Heights[wallBL],
			topRight:    upper.Heights[wallBR],
		})
	}
	// Highest wall up to the ceiling.
	last := &walls[len(walls)-1]
	gaps = append(gaps, wallGap{
		bottomLeft:  last.Heights[wallTL],
		bottomRight: last.Heights[wallTR],
		topLeft:     ceilLeft,
		topRight:    ceilRight,
	})

	var best *wallGap
	var bestScore float32
	for i := range gaps {
		g := &gaps[i]
		if g.maxSize() <= MinGap {
			continue
		}
		if preferred != nil {
			// Nearest midpoint wins; on a tie the lower gap keeps the slot.
			dist := g.midpoint() - *preferred
			if dist < 0 {
				dist = -dist
			}
			if best == nil || dist < bestScore {
				best, bestScore = g, dist
			}
		} else {
			// Largest gap wins; on a tie the lower gap keeps the slot.
			if best == nil || g.maxSize() > bestScore {
				best, bestScore = g, g.maxSize()
			}
		}
	}
	if best == nil {
		logging.Trace("no wall gap on edge", "dir", dir.String(), "walls", stack.Len())
		return none, ErrNoGap
	}
	return best.fillHeights(), nil
}

// Wall heights for an edge with no walls yet. A sloped floor or ceiling with
// a stated preference gets a triangular fill against the slope; otherwise the
// wall spans the whole opening, carrying both slopes.
func emptyEdgeWall(floorLeft, floorRight, ceilLeft, ceilRight float32, preferred *float32) [4]float32 {
	floorDelta := floorLeft - floorRight
	if floorDelta < 0 {
		floorDelta = -floorDelta
	}
	ceilDelta := ceilLeft - ceilRight
	if ceilDelta < 0 {
		ceilDelta = -ceilDelta
	}

	if (floorDelta > MinGap || ceilDelta > MinGap) && preferred != nil {
		floorHigh := floorLeft
		if floorRight > floorHigh {
			floorHigh = floorRight
		}
		ceilLow := ceilLeft
		if ceilRight < ceilLow {
			ceilLow = ceilRight
		}
		if *preferred <= (floorHigh+ceilLow)/2 {
			// Lower fill: follow the floor slope, flat top at the higher
			// floor corner.
			return [4]float32{floorLeft, floorRight, floorHigh, floorHigh}
		}
		// Upper fill: flat bottom at the higher floor corner, follow the
		// ceiling slope.
		return [4]float32{floorHigh, floorHigh, ceilRight, ceilLeft}
	}

	return [4]float32{floorLeft, floorRight, ceilRight, ceilLeft}
}
