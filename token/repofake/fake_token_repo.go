package repofake

import (
	"sync"

	"github.com/lexlink/lexlink-cli/internal/errors"
	"github.com/lexlink/lexlink-cli/model"
	"github.com/lexlink/lexlink-cli/token"
)

var _ token.Repo = (*FakeTokenRepo)(nil)

// FakeTokenRepo is an in-memory token.Repo for tests.
type FakeTokenRepo struct {
	creds *model.Credentials
	lock  sync.RWMutex

	// Optional failure injection
	SaveErr  error
	LoadErr  error
	ClearErr error

	SaveCalls  int
	ClearCalls int
}

func NewFakeTokenRepo() *FakeTokenRepo {
	return &FakeTokenRepo{}
}

func (r *FakeTokenRepo) Save(creds model.Credentials) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.SaveCalls++
	if r.SaveErr != nil {
		return r.SaveErr
	}
	if !creds.Complete() {
		return errors.ErrPartialCredentials
	}
	copied := creds
	r.creds = &copied
	return nil
}

func (r *FakeTokenRepo) Load() (*model.Credentials, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	if r.creds == nil {
		return nil, nil
	}
	copied := *r.creds
	return &copied, nil
}

func (r *FakeTokenRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.ClearCalls++
	if r.ClearErr != nil {
		return r.ClearErr
	}
	r.creds = nil
	return nil
}
