package engine

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

// TestWorldBoundsScenario is §8 end-to-end scenario 2: stars at
// (-3,-4) and (5,12) give a root centered at (1,4) with size 16.
func TestWorldBoundsScenario(t *testing.T) {
	stars := []Star{
		{Pos: Vec2{X: -3, Y: -4}},
		{Pos: Vec2{X: 5, Y: 12}},
	}
	center, size := worldBounds(stars)
	if !approxEqual(center.X, 1, 1e-9) || !approxEqual(center.Y, 4, 1e-9) {
		t.Errorf("center = %+v, want (1, 4)", center)
	}
	if !approxEqual(size, 16, 1e-9) {
		t.Errorf("size = %v, want 16", size)
	}
}

// TestBuildTreeMassWeightedCOM is §8 scenario 3: mass 1 at (0,0) and
// mass 3 at (4,0) give root com = (3, 0), mass = 4.
func TestBuildTreeMassWeightedCOM(t *testing.T) {
	stars := []Star{
		{Pos: Vec2{X: 0, Y: 0}, Mass: 1},
		{Pos: Vec2{X: 4, Y: 0}, Mass: 3},
	}
	arena := newQuadArena(2 * len(stars))
	if err := buildTree(arena, stars); err != nil {
		t.Fatal(err)
	}
	root := arena.root()
	if !approxEqual(root.Mass, 4, 1e-9) {
		t.Errorf("root.Mass = %v, want 4", root.Mass)
	}
	if !approxEqual(root.COM.X, 3, 1e-9) || !approxEqual(root.COM.Y, 0, 1e-9) {
		t.Errorf("root.COM = %+v, want (3, 0)", root.COM)
	}
}

// TestQuadrantOfMapsToGlossaryScheme checks the {0:SW,1:SE,2:NW,3:NE}
// mapping at a fixed center.
func TestQuadrantOfMapsToGlossaryScheme(t *testing.T) {
	center := Vec2{X: 0, Y: 0}
	cases := []struct {
		pos  Vec2
		want int
	}{
		{Vec2{X: -1, Y: -1}, 0}, // SW
		{Vec2{X: 1, Y: -1}, 1},  // SE
		{Vec2{X: -1, Y: 1}, 2},  // NW
		{Vec2{X: 1, Y: 1}, 3},   // NE
	}
	for _, tc := range cases {
		if got := quadrantOf(center, tc.pos); got != tc.want {
			t.Errorf("quadrantOf(%+v) = %d, want %d", tc.pos, got, tc.want)
		}
	}
}

// TestBuildTreeQuadrantSplit is §8 scenario 4: four stars one per
// quadrant around the origin (the bounds pass gives a root centered at
// the origin with size 1), inserted in the listed order, end as exactly
// four leaves at indices 3, 2, 0, 1 respectively (NE, NW, SW, SE, which
// is also the insertion order by position).
func TestBuildTreeQuadrantSplit(t *testing.T) {
	stars := []Star{
		{Pos: Vec2{X: 0.5, Y: 0.5}, Mass: 1},
		{Pos: Vec2{X: -0.5, Y: 0.5}, Mass: 1},
		{Pos: Vec2{X: -0.5, Y: -0.5}, Mass: 1},
		{Pos: Vec2{X: 0.5, Y: -0.5}, Mass: 1},
	}
	arena := newQuadArena(2 * len(stars))
	if err := buildTree(arena, stars); err != nil {
		t.Fatal(err)
	}
	root := arena.root()

	wantQuadrantForStar := []int{3, 2, 0, 1}
	for starIdx, wantQuadrant := range wantQuadrantForStar {
		slot := root.Children[wantQuadrant]
		if slot.kind != slotStar {
			t.Fatalf("children[%d].kind = %v, want slotStar", wantQuadrant, slot.kind)
		}
		if int(slot.index) != starIdx {
			t.Errorf("children[%d] holds star %d, want star %d", wantQuadrant, slot.index, starIdx)
		}
	}
}

// TestInvariantsHoldAfterBuild checks §8's build-phase invariants 1-6
// against a moderately sized random cloud.
func TestInvariantsHoldAfterBuild(t *testing.T) {
	cfg := Config{Stars: 200, GalaxyDensity: 0.01, StarSpeed: 1, Accuracy: 0.8, Epsilon: 1e-3, Gravity: 1, Speed: 1, MinFPS: 30}
	stars := make([]Star, cfg.Stars)
	seedStars(stars, cfg, newRand64(1))

	arena := newQuadArena(2 * cfg.Stars)
	if err := buildTree(arena, stars); err != nil {
		t.Fatal(err)
	}
	root := arena.root()

	var totalMass, comX, comY float64
	for _, s := range stars {
		totalMass += s.Mass
		comX += s.Mass * s.Pos.X
		comY += s.Mass * s.Pos.Y
	}
	comX /= totalMass
	comY /= totalMass

	tol := float64(cfg.Stars) * 1e-9
	if !approxEqual(root.Mass, totalMass, tol) {
		t.Errorf("invariant 1 (mass conservation): root.Mass=%v want %v", root.Mass, totalMass)
	}
	if !approxEqual(root.COM.X, comX, tol) || !approxEqual(root.COM.Y, comY, tol) {
		t.Errorf("invariant 2 (COM conservation): root.COM=%+v want (%v, %v)", root.COM, comX, comY)
	}

	half := root.Size / 2
	for _, s := range stars {
		if math.Abs(s.Pos.X-root.Center.X) > half+1e-9 || math.Abs(s.Pos.Y-root.Center.Y) > half+1e-9 {
			t.Fatalf("invariant 3 (containment) violated for star %+v under root %+v", s, root)
		}
	}

	seen := map[int32]bool{}
	var walk func(idx int)
	walk = func(idx int) {
		q := arena.at(idx)
		if q.Size <= 0 {
			t.Errorf("invariant 4 (squareness): quad %d has non-positive size %v", idx, q.Size)
		}
		for slotIdx, slot := range q.Children {
			switch slot.kind {
			case slotQuad:
				child := arena.at(int(slot.index))
				if quadrantOf(q.Center, child.Center) != slotIdx {
					t.Errorf("invariant 5 (child placement): child quad %d sits in slot %d of quad %d but its center %+v quadrants to %d under center %+v",
						slot.index, slotIdx, idx, child.Center, quadrantOf(q.Center, child.Center), q.Center)
				}
				walk(int(slot.index))
			case slotStar:
				if seen[slot.index] {
					t.Errorf("invariant 6 (leaf uniqueness): star %d referenced twice", slot.index)
				}
				seen[slot.index] = true
				star := stars[slot.index]
				if quadrantOf(q.Center, star.Pos) != slotIdx {
					t.Errorf("invariant 5 (child placement): star %d sits in slot %d but quadrantOf says %d",
						slot.index, slotIdx, quadrantOf(q.Center, star.Pos))
				}
			}
		}
	}
	walk(0)
	if len(seen) != len(stars) {
		t.Errorf("expected all %d stars reachable as leaves, found %d", len(stars), len(seen))
	}
}
