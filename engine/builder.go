package engine

import "math"

// worldBounds computes the square root region enclosing every star, per
// §4.C step 1: the root's center is the midpoint of the extents and its
// size is the larger of the two spans, keeping every node square (§3
// invariant 4).
func worldBounds(stars []Star) (center Vec2, size float64) {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, s := range stars {
		if s.Pos.X < xmin {
			xmin = s.Pos.X
		}
		if s.Pos.X > xmax {
			xmax = s.Pos.X
		}
		if s.Pos.Y < ymin {
			ymin = s.Pos.Y
		}
		if s.Pos.Y > ymax {
			ymax = s.Pos.Y
		}
	}
	center = Vec2{X: (xmin + xmax) / 2, Y: (ymin + ymax) / 2}
	sizeX, sizeY := xmax-xmin, ymax-ymin
	size = sizeX
	if sizeY > sizeX {
		size = sizeY
	}
	return center, size
}

// quadrantOf returns the 2-bit quadrant index of pos relative to
// center, using the scheme from the GLOSSARY: bit0 = (x >= cx),
// bit1 = (y >= cy), giving {0: SW, 1: SE, 2: NW, 3: NE}. Coordinates
// exactly on a boundary fall to the "greater" side, per §4.C.
func quadrantOf(center, pos Vec2) int {
	q := 0
	if pos.X >= center.X {
		q++
	}
	if pos.Y >= center.Y {
		q += 2
	}
	return q
}

// buildTree runs §4.C over the full star slice: one bounds pass, then
// insertion of each star (already sorted ascending by mass at init, so
// the centre-of-mass accumulation folds larger masses into larger
// running totals last, per the rationale in §4.C).
func buildTree(arena *quadArena, stars []Star) error {
	arena.reset()
	center, size := worldBounds(stars)
	root := arena.root()
	root.Center = center
	root.Size = size

	for i := range stars {
		if err := insertStar(arena, stars, i); err != nil {
			return err
		}
	}
	return nil
}

// insertStar descends from the root, accumulating mass and
// center-of-mass at every visited quad, until the star lands in an
// empty slot or displaces an existing star leaf into a freshly
// subdivided quad, in which case the descent continues into that new
// quad with the same star. See §4.C steps 2/3 and SPEC_FULL.md §4 for
// the coincident-star termination policy: a run of subdivisions that
// never terminates exhausts the arena and surfaces as
// ErrCapacityExceeded, by design — no jitter or depth cap is applied.
func insertStar(arena *quadArena, stars []Star, starIdx int) error {
	star := &stars[starIdx]
	quadIdx := 0

	for {
		q := arena.at(quadIdx)

		massSum := q.Mass + star.Mass
		if massSum > 0 {
			q.COM = Vec2{
				X: (q.COM.X*q.Mass + star.Pos.X*star.Mass) / massSum,
				Y: (q.COM.Y*q.Mass + star.Pos.Y*star.Mass) / massSum,
			}
		}
		q.Mass = massSum

		quadrant := quadrantOf(q.Center, star.Pos)
		slot := q.Children[quadrant]

		switch slot.kind {
		case slotEmpty:
			q.Children[quadrant] = childSlot{kind: slotStar, index: int32(starIdx)}
			return nil

		case slotStar:
			newIdx, err := arena.alloc()
			if err != nil {
				return err
			}
			nq := arena.at(newIdx)

			oldIdx := int(slot.index)
			oldStar := &stars[oldIdx]

			half := q.Size / 2
			shift := q.Size / 4
			nq.Size = half
			nq.COM = oldStar.Pos
			nq.Mass = oldStar.Mass
			nq.Center = q.Center
			if quadrant&1 != 0 {
				nq.Center.X += shift
			} else {
				nq.Center.X -= shift
			}
			if quadrant&2 != 0 {
				nq.Center.Y += shift
			} else {
				nq.Center.Y -= shift
			}

			oldQuadrant := quadrantOf(nq.Center, oldStar.Pos)
			nq.Children[oldQuadrant] = childSlot{kind: slotStar, index: int32(oldIdx)}

			q.Children[quadrant] = childSlot{kind: slotQuad, index: int32(newIdx)}
			quadIdx = newIdx

		case slotQuad:
			quadIdx = int(slot.index)
		}
	}
}
