// Package token stores the client's credential pair and inspects access
// tokens locally. Token issuance and verification belong to the backend;
// this package only keeps what the backend handed out.
package token

import "github.com/lexlink/lexlink-cli/model"

// Repo defines durable storage for the credential pair. The pair is a
// single slot: Save replaces both tokens, Clear removes both. A Save with
// an incomplete pair must fail so the store can never hold half a
// credential set.
type Repo interface {
	// Save persists the pair, replacing any previous one
	Save(creds model.Credentials) error

	// Load retrieves the stored pair. Returns (nil, nil) when nothing is
	// stored; errors are reserved for storage failures.
	Load() (*model.Credentials, error)

	// Clear removes the stored pair. Clearing an empty slot is a no-op.
	Clear() error
}
