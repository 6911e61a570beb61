// Package session holds the process-wide record of who is logged in,
// durable across restarts. Consumers read a Snapshot; transitions go
// through the Store's explicit operations.
package session

import "github.com/lexlink/lexlink-cli/model"

// Snapshot is the persisted session state. IsAuthenticated is true iff
// User and Tokens are both present; every transition maintains this
// atomically. The transient loading flag is deliberately not part of the
// snapshot and is never persisted.
type Snapshot struct {
	User            *model.User          `json:"user"`
	Tokens          *model.Credentials   `json:"tokens"`
	LawyerProfile   *model.LawyerProfile `json:"lawyerProfile"`
	IsAuthenticated bool                 `json:"isAuthenticated"`
}

// anonymous is the empty state sessions start from and return to.
func anonymous() Snapshot {
	return Snapshot{}
}
