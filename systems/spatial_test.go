package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/kotlot/components"
)

var testArenaSize = r2.Vec{X: 1280, Y: 800}

// ---------- Quadrants ----------

func TestQuadrantOf(t *testing.T) {
	tests := []struct {
		p    r2.Vec
		want Quadrant
	}{
		{r2.Vec{X: 1, Y: 1}, NE},
		{r2.Vec{X: -1, Y: 1}, NW},
		{r2.Vec{X: 1, Y: -1}, SE},
		{r2.Vec{X: -1, Y: -1}, SW},
		{r2.Vec{}, SW},
		{r2.Vec{X: 0, Y: 5}, NW},
		{r2.Vec{X: 5, Y: 0}, SE},
	}
	for _, tc := range tests {
		if got := QuadrantOf(tc.p); got != tc.want {
			t.Errorf("QuadrantOf(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestArenaFollow(t *testing.T) {
	a := NewArena(1280, 800, r2.Vec{})
	if a.Shown != SW {
		t.Fatalf("initial quadrant = %v, want SW", a.Shown)
	}

	if a.Follow(r2.Vec{X: -10, Y: -10}) {
		t.Error("Follow reported a flip within the same quadrant")
	}
	if !a.Follow(r2.Vec{X: 10, Y: 10}) || a.Shown != NE || !a.Changed {
		t.Errorf("expected flip to NE, got %v changed=%v", a.Shown, a.Changed)
	}
	a.Follow(r2.Vec{X: 20, Y: 20})
	if a.Changed {
		t.Error("Changed not cleared on the next Follow")
	}
}

func TestToroidalDelta(t *testing.T) {
	a := NewArena(1280, 800, r2.Vec{})

	d := a.Delta(r2.Vec{X: 600, Y: 0}, r2.Vec{X: -600, Y: 0})
	if d.X != 80 || d.Y != 0 {
		t.Errorf("delta across the seam = %v, want (80, 0)", d)
	}
	d = a.Delta(r2.Vec{X: 0, Y: -390}, r2.Vec{X: 0, Y: 390})
	if d.Y != -20 {
		t.Errorf("vertical delta across the seam = %v, want -20", d.Y)
	}
	d = a.Delta(r2.Vec{X: 10, Y: 10}, r2.Vec{X: 50, Y: -20})
	if d.X != 40 || d.Y != -30 {
		t.Errorf("direct delta = %v, want (40, -30)", d)
	}
}

// ---------- Wrapping ----------

func TestWrapAxis(t *testing.T) {
	tests := []struct {
		name             string
		pos, speed, want float64
	}{
		{"inside", 100, 50, 100},
		{"past east moving out", 641, 10, -640},
		{"past west moving out", -641, -10, 640},
		{"past east moving in", 641, -10, 641},
		{"past west at rest", -641, 0, -641},
		{"on the bound", 640, 10, 640},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WrapAxis(tc.pos, tc.speed, 640); got != tc.want {
				t.Errorf("WrapAxis(%v, %v) = %v, want %v", tc.pos, tc.speed, got, tc.want)
			}
		})
	}
}

func TestMoveWrapsAndKeepsVelocity(t *testing.T) {
	half := r2.Scale(0.5, testArenaSize)
	tr := components.NewTransform(639, -399, 0, 1)
	mv := components.Movement{Speed: r2.Vec{X: 120, Y: -120}, Dampening: 1}

	Move(&tr, &mv, half, 1.0/60)

	if tr.Translation.X != -640 {
		t.Errorf("x = %v, want -640", tr.Translation.X)
	}
	if tr.Translation.Y != 400 {
		t.Errorf("y = %v, want 400", tr.Translation.Y)
	}
	if mv.Speed != (r2.Vec{X: 120, Y: -120}) {
		t.Errorf("speed changed by wrap: %v", mv.Speed)
	}
}

func TestMoveDampening(t *testing.T) {
	half := r2.Scale(0.5, testArenaSize)
	tr := components.NewTransform(0, 0, 0, 1)
	mv := components.Movement{Speed: r2.Vec{X: 100}, Dampening: 0.5}

	Move(&tr, &mv, half, 1)

	if tr.Translation.X != 100 {
		t.Errorf("x = %v, want 100 (translate before decay)", tr.Translation.X)
	}
	if math.Abs(mv.Speed.X-50) > 1e-9 {
		t.Errorf("speed = %v, want 50", mv.Speed.X)
	}
}

func TestMovementSystemUpdate(t *testing.T) {
	w := ecs.NewWorld()
	arena := NewArena(testArenaSize.X, testArenaSize.Y, r2.Vec{})
	sys := NewMovementSystem(w, arena)

	mapper := ecs.NewMap2[components.Transform, components.Movement](w)
	tr := components.NewTransform(0, 399, 0, 1)
	e := mapper.NewEntity(&tr, &components.Movement{Speed: r2.Vec{Y: 120}, Dampening: 1})

	sys.Update(1.0 / 60)

	got, _ := mapper.Get(e)
	if got.Translation.Y != -400 {
		t.Errorf("y = %v, want -400", got.Translation.Y)
	}
}

// ---------- Ghosts ----------

func TestGhostOffsetTable(t *testing.T) {
	w, h := testArenaSize.X, testArenaSize.Y
	want := map[Quadrant][3]r2.Vec{
		NW: {{X: -w}, {X: -w, Y: h}, {Y: h}},
		NE: {{Y: h}, {X: w, Y: h}, {X: w}},
		SE: {{X: w}, {X: w, Y: -h}, {Y: -h}},
		SW: {{Y: -h}, {X: -w, Y: -h}, {X: -w}},
	}

	for q, offsets := range want {
		for id, off := range offsets {
			if got := GhostOffset(q, uint8(id), testArenaSize); got != off {
				t.Errorf("GhostOffset(%v, %d) = %v, want %v", q, id, got, off)
			}
		}
	}
}

func TestGhostOffsetPointsAway(t *testing.T) {
	// Ghosts sit in the torus copies adjacent to the shown quadrant, so
	// every offset component points toward it.
	signs := map[Quadrant]r2.Vec{NE: {X: 1, Y: 1}, NW: {X: -1, Y: 1}, SE: {X: 1, Y: -1}, SW: {X: -1, Y: -1}}
	for q, s := range signs {
		for id := uint8(0); id < components.GhostCount; id++ {
			off := GhostOffset(q, id, testArenaSize)
			if off.X*s.X < 0 || off.Y*s.Y < 0 {
				t.Errorf("GhostOffset(%v, %d) = %v points away from %v", q, id, off, q)
			}
		}
	}
}

func TestGhostOffsetPanicsOnInvalid(t *testing.T) {
	tests := []struct {
		name string
		q    Quadrant
		id   uint8
	}{
		{"id out of range", NE, 3},
		{"unknown quadrant", Quadrant(9), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			GhostOffset(tc.q, tc.id, testArenaSize)
		})
	}
}

func TestGhostSystemUpdate(t *testing.T) {
	w := ecs.NewWorld()
	arena := NewArena(testArenaSize.X, testArenaSize.Y, r2.Vec{X: 1, Y: 1})
	sys := NewGhostSystem(w, arena)

	ghostMapper := ecs.NewMap2[components.Transform, components.Outline](w)
	primaryMapper := ecs.NewMap3[components.Transform, components.GhostSet, components.Outline](w)

	var set components.GhostSet
	for id := range set.Ghosts {
		tr := components.NewTransform(0, 0, 0, 1)
		set.Ghosts[id] = ghostMapper.NewEntity(&tr, &components.Outline{})
	}
	primaryTr := components.NewTransform(100, -50, 0.2, 0.7)
	primaryTr.Rotation = 1.25
	primary := primaryMapper.NewEntity(&primaryTr, &set, &components.Outline{Enabled: true})

	// A ghost already gone is skipped.
	w.RemoveEntity(set.Ghosts[2])

	arena.Follow(r2.Vec{X: -1, Y: -1})
	sys.Update(w)

	ptr, _, _ := primaryMapper.Get(primary)
	for id := 0; id < 2; id++ {
		gtr, outline := ghostMapper.Get(set.Ghosts[id])
		want := GhostTransform(*ptr, SW, uint8(id), testArenaSize)
		if *gtr != want {
			t.Errorf("ghost %d transform = %+v, want %+v", id, *gtr, want)
		}
		if !outline.Enabled {
			t.Errorf("ghost %d outline not mirrored", id)
		}
	}
}

// ---------- Tween ----------

func TestTweenSystemUpdate(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewTweenSystem(w)
	mapper := ecs.NewMap2[components.Transform, components.TweenScale](w)

	tr := components.NewTransform(0, 0, 0, 0.4)
	tween := components.NewTweenScale(0.4, 0.75, 1.0)
	e := mapper.NewEntity(&tr, &tween)

	sys.Update(0.6)

	got, tw := mapper.Get(e)
	if got.Scale.X != 0.75 || got.Scale.Y != 0.75 {
		t.Errorf("scale = %v, want clamped to 0.75", got.Scale)
	}
	if tw.Increase {
		t.Error("tween should reverse at the max bound")
	}
}

// ---------- Contacts ----------

func TestClassify(t *testing.T) {
	tests := []struct {
		a, b     components.ColliderType
		want     Interaction
		wantSwap bool
	}{
		{components.ColliderMissile, components.ColliderEnemy, InteractMissileEnemy, false},
		{components.ColliderEnemy, components.ColliderMissile, InteractMissileEnemy, true},
		{components.ColliderShip, components.ColliderLoot, InteractShipLoot, false},
		{components.ColliderLoot, components.ColliderShip, InteractShipLoot, true},
		{components.ColliderCursor, components.ColliderEnemy, InteractCursorEnemy, false},
		{components.ColliderLoot, components.ColliderCursor, InteractCursorLoot, true},
		{components.ColliderShip, components.ColliderEnemy, InteractNone, false},
		{components.ColliderEnemy, components.ColliderEnemy, InteractNone, false},
	}
	for _, tc := range tests {
		kind, swap := Classify(tc.a, tc.b)
		if kind != tc.want || swap != tc.wantSwap {
			t.Errorf("Classify(%v, %v) = %v,%v want %v,%v", tc.a, tc.b, kind, swap, tc.want, tc.wantSwap)
		}
	}
}

// ---------- Loot and steering ----------

func TestRollLootDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	counts := map[string]int{}
	const n = 3000
	for i := 0; i < n; i++ {
		loot, ok := RollLoot(rng, 200, 150)
		switch {
		case !ok:
			counts["none"]++
		case loot.Kind == components.LootIncreasedRateOfFire:
			if loot.Percent != 200 {
				t.Fatalf("rate of fire percent = %d", loot.Percent)
			}
			counts["rof"]++
		default:
			if loot.Percent != 150 {
				t.Fatalf("munition percent = %d", loot.Percent)
			}
			counts["mun"]++
		}
	}
	for k, c := range counts {
		if c < n/4 || c > n*5/12 {
			t.Errorf("%s drawn %d times of %d, expected about a third", k, c, n)
		}
	}
}

func TestTurnToward(t *testing.T) {
	if got := TurnToward(0, 1, 0.1); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("limited turn = %v, want 0.1", got)
	}
	if got := TurnToward(0, 0.05, 0.1); math.Abs(got-0.05) > 1e-12 {
		t.Errorf("short turn = %v, want 0.05", got)
	}
	// The short way round crosses +-Pi.
	if got := TurnToward(3, -3, 0.1); got <= 3 && got > 0 {
		t.Errorf("turned the long way: %v", got)
	}
}
