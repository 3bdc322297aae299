package dodger

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/neon-dodger/internal/config"
	"github.com/vovakirdan/neon-dodger/internal/core"
)

const frame = 16 * time.Millisecond

var testViewport = Viewport{Width: 800, Height: 600, Scale: 1}

// constSource always yields the same value. With 1<<62 every obstacle is
// a lane 1 bar and every jitter factor is exactly 1.
type constSource int64

func (c constSource) Int63() int64 { return int64(c) }
func (constSource) Seed(int64)     {}

func newConstRand() *rand.Rand {
	return rand.New(constSource(1 << 62))
}

func newTestSession(t *testing.T, store BestStore) *Session {
	t.Helper()
	return NewSession(config.DefaultDodgerConfig(), testViewport, 42, store)
}

// newScriptedSession returns a session whose obstacles are all lane 1 bars.
func newScriptedSession(t *testing.T, store BestStore) *Session {
	t.Helper()
	s := newTestSession(t, store)
	s.obstacles = NewObstacleManager(s.cfg.Obstacles, newConstRand())
	return s
}

func frameOf(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type failingStore struct {
	sets int
}

var errStoreDown = errors.New("store down")

func (f *failingStore) Get() (int, error) { return 0, errStoreDown }

func (f *failingStore) Set(int) error {
	f.sets++
	return errStoreDown
}
