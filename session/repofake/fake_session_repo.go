package repofake

import (
	"sync"

	"github.com/lexlink/lexlink-cli/session"
)

var _ session.Repo = (*FakeSessionRepo)(nil)

// FakeSessionRepo is an in-memory session.Repo for tests.
type FakeSessionRepo struct {
	snap *session.Snapshot
	lock sync.RWMutex

	// Optional failure injection
	SaveErr error
	LoadErr error

	SaveCalls  int
	ClearCalls int
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{}
}

func (r *FakeSessionRepo) Save(snap session.Snapshot) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.SaveCalls++
	if r.SaveErr != nil {
		return r.SaveErr
	}
	copied := snap
	r.snap = &copied
	return nil
}

func (r *FakeSessionRepo) Load() (*session.Snapshot, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	if r.snap == nil {
		return nil, nil
	}
	copied := *r.snap
	return &copied, nil
}

func (r *FakeSessionRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.ClearCalls++
	r.snap = nil
	return nil
}
