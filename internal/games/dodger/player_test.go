package dodger

import (
	"testing"

	"github.com/vovakirdan/neon-dodger/internal/config"
)

func TestNewPlayer(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	w := NewWorld(cfg, testViewport)
	p := NewPlayer(cfg, w)

	if p.Lane != 1 || p.X != 400 || p.Y != 420 {
		t.Errorf("player = lane %d at (%v, %v), want lane 1 at (400, 420)", p.Lane, p.X, p.Y)
	}
	if !p.Grounded {
		t.Error("new player should be grounded")
	}
	if p.Size != 26 {
		t.Errorf("Size = %v, want 26", p.Size)
	}
}

func TestDashLaneBounds(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	w := NewWorld(cfg, testViewport)
	p := NewPlayer(cfg, w)
	p.Lane = 0
	p.X = w.Lanes[0]

	// 0 -> 1 -> 2, then clamped.
	wantLanes := []int{1, 2, 2}
	wantMoved := []bool{true, true, false}
	for i := range wantLanes {
		moved := p.Dash(1, w, cfg.Physics.DashGain)
		if moved != wantMoved[i] || p.Lane != wantLanes[i] {
			t.Fatalf("dash %d: lane=%d moved=%v, want lane=%d moved=%v",
				i+1, p.Lane, moved, wantLanes[i], wantMoved[i])
		}
	}

	for i := 0; i < 5; i++ {
		p.Dash(-1, w, cfg.Physics.DashGain)
		if p.Lane < 0 || p.Lane >= LaneCount {
			t.Fatalf("lane %d out of range", p.Lane)
		}
	}
	if p.Lane != 0 {
		t.Errorf("Lane = %d, want 0", p.Lane)
	}
}

func TestDashImpulse(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	w := NewWorld(cfg, testViewport)
	p := NewPlayer(cfg, w)

	p.Dash(-1, w, cfg.Physics.DashGain)
	if want := (192.0 - 400.0) * 7; p.VX != want {
		t.Errorf("VX = %v, want %v", p.VX, want)
	}

	// Edge dash leaves velocity untouched
	p.VX = 12
	p.Dash(-1, w, cfg.Physics.DashGain)
	if p.VX != 12 {
		t.Errorf("edge dash changed VX to %v", p.VX)
	}
}

func TestDashConvergesToLane(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	w := NewWorld(cfg, testViewport)
	p := NewPlayer(cfg, w)

	p.Dash(1, w, cfg.Physics.DashGain)
	for i := 0; i < 120; i++ {
		p.Integrate(1.0/60, w, cfg.Physics.DashDamping, cfg.Physics.DampingFPS)
	}
	// 7/60 * sum(0.86^k) = 7/60/0.14 of the distance, about 83%.
	if p.X < 500 || p.X > 608 {
		t.Errorf("X = %v, want between old and new lane centers", p.X)
	}
	if p.VX > 1e-3 {
		t.Errorf("VX = %v, want decayed to ~0", p.VX)
	}
}

func TestJump(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	w := NewWorld(cfg, testViewport)
	p := NewPlayer(cfg, w)

	if !p.Jump(820) {
		t.Fatal("grounded jump rejected")
	}
	if p.VY != -820 || p.Grounded {
		t.Errorf("after jump VY=%v grounded=%v, want -820 false", p.VY, p.Grounded)
	}
	if p.Jump(820) {
		t.Error("airborne jump accepted")
	}

	for i := 0; i < 200 && !p.Grounded; i++ {
		p.Integrate(0.016, w, cfg.Physics.DashDamping, cfg.Physics.DampingFPS)
		if p.Y > w.Ground {
			t.Fatalf("player below ground: %v", p.Y)
		}
	}
	if !p.Grounded || p.Y != w.Ground || p.VY != 0 {
		t.Errorf("landing: grounded=%v y=%v vy=%v", p.Grounded, p.Y, p.VY)
	}
}
