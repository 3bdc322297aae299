package dodger

// BestStore persists the best score across sessions.
type BestStore interface {
	Get() (int, error)
	Set(score int) error
}

// MemoryBest is an in-process BestStore.
type MemoryBest struct {
	best int
}

// Get returns the stored best score.
func (m *MemoryBest) Get() (int, error) {
	return m.best, nil
}

// Set stores the best score.
func (m *MemoryBest) Set(score int) error {
	m.best = score
	return nil
}
