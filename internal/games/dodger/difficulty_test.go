package dodger

import (
	"testing"

	"github.com/vovakirdan/neon-dodger/internal/config"
)

func TestSpawnInterval(t *testing.T) {
	cfg := config.DefaultDodgerConfig().Obstacles

	tests := []struct {
		d    float64
		want float64
	}{
		{0, 1.15},
		{1, 0.7},
		{1.5, 0.475},
		{2, 0.45},
		{10, 0.45},
	}
	for _, tt := range tests {
		if got := SpawnInterval(tt.d, cfg); !approx(got, tt.want) {
			t.Errorf("SpawnInterval(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestObstacleSpeed(t *testing.T) {
	cfg := config.DefaultDodgerConfig().Obstacles

	tests := []struct {
		d, scale float64
		want     float64
	}{
		{0, 1, 260},
		{1, 1, 520},
		{1, 2, 1040},
		{0.5, 1, 390},
	}
	for _, tt := range tests {
		if got := ObstacleSpeed(tt.d, cfg, tt.scale); !approx(got, tt.want) {
			t.Errorf("ObstacleSpeed(%v, %v) = %v, want %v", tt.d, tt.scale, got, tt.want)
		}
	}
}

func TestNextDifficulty(t *testing.T) {
	if got := NextDifficulty(1, 0.5, 0.06); !approx(got, 1.03) {
		t.Errorf("NextDifficulty = %v, want 1.03", got)
	}
	if got := NextDifficulty(1, 0.5, 0); got != 1 {
		t.Errorf("fixed ramp changed difficulty to %v", got)
	}
}
