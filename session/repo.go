package session

// Repo defines durable storage for the session snapshot.
type Repo interface {
	// Save persists the snapshot, replacing any previous one
	Save(snap Snapshot) error

	// Load retrieves the stored snapshot. Returns (nil, nil) when nothing
	// is stored; errors are reserved for storage failures.
	Load() (*Snapshot, error)

	// Clear removes the stored snapshot. Clearing an empty slot is a no-op.
	Clear() error
}
