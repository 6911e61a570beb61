// Package filerepo persists the session snapshot as a JSON file under the
// client's data directory.
package filerepo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/lexlink/lexlink-cli/internal/errors"
	"github.com/lexlink/lexlink-cli/session"
)

const sessionFile = "session.json"

var _ session.Repo = (*FileSessionRepo)(nil)

// FileSessionRepo stores the snapshot at <dataDir>/session.json with 0600
// permissions.
type FileSessionRepo struct {
	filePath string
	lock     sync.Mutex
}

// New creates the repo, ensuring the data directory exists.
func New(dataDir string) (*FileSessionRepo, error) {
	if dataDir == "" {
		return nil, errors.Wrapf(errors.ErrStorageUnavailable, "[filerepo.New] data directory is required")
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "[filerepo.New] creating data directory")
	}
	return &FileSessionRepo{filePath: filepath.Join(dataDir, sessionFile)}, nil
}

func (r *FileSessionRepo) Save(snap session.Snapshot) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "[FileSessionRepo.Save] marshalling snapshot")
	}
	if err := os.WriteFile(r.filePath, data, 0o600); err != nil {
		return errors.Wrapf(err, "[FileSessionRepo.Save] writing %s", r.filePath)
	}
	return nil
}

func (r *FileSessionRepo) Load() (*session.Snapshot, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "[FileSessionRepo.Load] reading %s", r.filePath)
	}

	var snap session.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrapf(err, "[FileSessionRepo.Load] unmarshalling snapshot")
	}
	return &snap, nil
}

func (r *FileSessionRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if err := os.Remove(r.filePath); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "[FileSessionRepo.Clear] removing %s", r.filePath)
	}
	return nil
}
