// Package filerepo persists the credential pair as a JSON file under the
// client's data directory, surviving process restarts the way browser
// local storage survives reloads.
package filerepo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/lexlink/lexlink-cli/internal/errors"
	"github.com/lexlink/lexlink-cli/model"
	"github.com/lexlink/lexlink-cli/token"
)

const credentialsFile = "credentials.json"

var _ token.Repo = (*FileTokenRepo)(nil)

// FileTokenRepo stores the pair at <dataDir>/credentials.json with 0600
// permissions. A mutex serializes writers so concurrent refreshes always
// leave a complete pair on disk.
type FileTokenRepo struct {
	filePath string
	lock     sync.Mutex
}

// New creates the repo, ensuring the data directory exists.
func New(dataDir string) (*FileTokenRepo, error) {
	if dataDir == "" {
		return nil, errors.Wrapf(errors.ErrStorageUnavailable, "[filerepo.New] data directory is required")
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "[filerepo.New] creating data directory")
	}
	return &FileTokenRepo{filePath: filepath.Join(dataDir, credentialsFile)}, nil
}

func (r *FileTokenRepo) Save(creds model.Credentials) error {
	if !creds.Complete() {
		return errors.ErrPartialCredentials
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "[FileTokenRepo.Save] marshalling credentials")
	}
	if err := os.WriteFile(r.filePath, data, 0o600); err != nil {
		return errors.Wrapf(err, "[FileTokenRepo.Save] writing %s", r.filePath)
	}
	return nil
}

func (r *FileTokenRepo) Load() (*model.Credentials, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "[FileTokenRepo.Load] reading %s", r.filePath)
	}

	var creds model.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, errors.Wrapf(err, "[FileTokenRepo.Load] unmarshalling credentials")
	}
	if !creds.Complete() {
		// A half-written slot is treated as no credentials at all.
		return nil, nil
	}
	return &creds, nil
}

func (r *FileTokenRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if err := os.Remove(r.filePath); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "[FileTokenRepo.Clear] removing %s", r.filePath)
	}
	return nil
}
