package storage

// BestScore adapts a Store to the game's best-score contract.
type BestScore struct {
	store *Store
	key   string
}

// NewBestScore returns a best-score view of store under key.
// An empty key selects DefaultBestKey.
func NewBestScore(store *Store, key string) *BestScore {
	if key == "" {
		key = DefaultBestKey
	}
	return &BestScore{store: store, key: key}
}

// Get returns the stored best score.
func (b *BestScore) Get() (int, error) {
	return b.store.Best(b.key)
}

// Set records score as the best score.
func (b *BestScore) Set(score int) error {
	return b.store.SetBest(b.key, score)
}
