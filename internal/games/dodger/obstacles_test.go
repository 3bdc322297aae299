package dodger

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/neon-dodger/internal/config"
)

func TestSpawnGeometry(t *testing.T) {
	cfg := config.DefaultDodgerConfig()

	tests := []struct {
		name  string
		scale float64
		wantX float64
		wantW float64
		wantH float64
		wantY float64
	}{
		// x = width + bar width + margin, all scaled
		{"unit scale", 1, 800 + 98, 38, 80, 480 - 80},
		{"double scale", 2, 800 + 196, 76, 160, 600 - 240 - 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(cfg, Viewport{Width: 800, Height: 600, Scale: tt.scale})
			om := NewObstacleManager(cfg.Obstacles, newConstRand())

			o := om.spawn(w)
			if o.Kind != Bar || o.Lane != 1 {
				t.Fatalf("spawned %v in lane %d, want bar in lane 1", o.Kind, o.Lane)
			}
			if o.X != tt.wantX || o.W != tt.wantW || o.H != tt.wantH || o.Y != tt.wantY {
				t.Errorf("obstacle = %+v, want x=%v w=%v h=%v y=%v", o, tt.wantX, tt.wantW, tt.wantH, tt.wantY)
			}
			if o.Passed {
				t.Error("new obstacle already passed")
			}
		})
	}
}

func TestGateSitsAboveGap(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	cfg.Obstacles.BarChance = 0
	w := NewWorld(cfg, testViewport)
	om := NewObstacleManager(cfg.Obstacles, rand.New(rand.NewSource(1)))

	o := om.spawn(w)
	if o.Kind != Gate {
		t.Fatalf("Kind = %v, want gate", o.Kind)
	}
	if o.W != 22 || o.H != 150 {
		t.Errorf("gate size = %vx%v, want 22x150", o.W, o.H)
	}
	if o.Rect().Bottom() != w.Floor-28 {
		t.Errorf("gate bottom = %v, want %v", o.Rect().Bottom(), w.Floor-28)
	}
}

func TestUpdateSpawnsOnFirstFrame(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	w := NewWorld(cfg, testViewport)
	om := NewObstacleManager(cfg.Obstacles, newConstRand())

	om.Update(0.016, 0, w, 400)
	if len(om.Obstacles()) != 1 {
		t.Fatalf("got %d obstacles after first frame, want 1", len(om.Obstacles()))
	}
	// Jitter is exactly 1 with the constant source
	if !approx(om.SpawnTimer(), 1.15) {
		t.Errorf("SpawnTimer = %v, want 1.15", om.SpawnTimer())
	}
	if got, want := om.Obstacles()[0].X, 898-260*0.016; !approx(got, want) {
		t.Errorf("X = %v, want %v", got, want)
	}

	om.Update(0.5, 0, w, 400)
	if len(om.Obstacles()) != 1 {
		t.Errorf("spawned before the timer ran out")
	}
}

func TestJitterRange(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	w := NewWorld(cfg, testViewport)
	om := NewObstacleManager(cfg.Obstacles, rand.New(rand.NewSource(7)))

	for i := 0; i < 200; i++ {
		om.spawnTimer = 0
		om.Update(0, 0, w, 400)
		if got := om.SpawnTimer(); got < 1.15*0.75 || got > 1.15*1.25 {
			t.Fatalf("SpawnTimer = %v outside jitter range", got)
		}
		lane := om.Obstacles()[len(om.Obstacles())-1].Lane
		if lane < 0 || lane >= LaneCount {
			t.Fatalf("lane %d out of range", lane)
		}
	}
}

func TestPassScoredOnce(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	w := NewWorld(cfg, testViewport)
	om := NewObstacleManager(cfg.Obstacles, newConstRand())
	om.spawnTimer = 100
	om.obstacles = append(om.obstacles, Obstacle{Kind: Bar, X: 370, W: 38, H: 80})

	// Right edge 408 is not yet behind the player at 400
	if n := om.Update(0, 0, w, 400); n != 0 {
		t.Fatalf("passed = %d, want 0", n)
	}
	if n := om.Update(0.05, 0, w, 400); n != 1 {
		t.Fatalf("passed = %d, want 1", n)
	}
	for i := 0; i < 10; i++ {
		if n := om.Update(0.016, 0, w, 400); n != 0 {
			t.Fatalf("obstacle scored again on frame %d", i)
		}
	}
	if !om.Obstacles()[0].Passed {
		t.Error("Passed flag not set")
	}
}

func TestCullIsStable(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	w := NewWorld(cfg, testViewport)
	om := NewObstacleManager(cfg.Obstacles, newConstRand())
	om.spawnTimer = 100
	om.obstacles = append(om.obstacles,
		Obstacle{X: -200, W: 38, Lane: 0},
		Obstacle{X: -150, W: 38, Lane: 1},
		Obstacle{X: 100, W: 38, Lane: 2},
		Obstacle{X: -98, W: 38, Lane: 0}, // right edge exactly at the threshold stays
		Obstacle{X: 300, W: 22, Lane: 1},
	)

	om.Update(0, 0, w, 0)

	got := om.Obstacles()
	wantX := []float64{100, -98, 300}
	if len(got) != len(wantX) {
		t.Fatalf("got %d obstacles, want %d", len(got), len(wantX))
	}
	for i, o := range got {
		if o.X != wantX[i] {
			t.Errorf("obstacle %d X = %v, want %v", i, o.X, wantX[i])
		}
	}
}

func TestObstacleReset(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	w := NewWorld(cfg, testViewport)
	om := NewObstacleManager(cfg.Obstacles, newConstRand())
	om.Update(0.016, 0, w, 400)

	om.Reset()
	if len(om.Obstacles()) != 0 || om.SpawnTimer() != 0 {
		t.Errorf("after reset: %d obstacles, timer %v", len(om.Obstacles()), om.SpawnTimer())
	}
}
